package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hiring-platform-api/internal/dto"
	"github.com/yukikurage/hiring-platform-api/internal/middleware"
	"github.com/yukikurage/hiring-platform-api/internal/models"
	"github.com/yukikurage/hiring-platform-api/internal/services"
	"github.com/yukikurage/hiring-platform-api/internal/utils"
)

type JobHandler struct {
	jobService *services.JobService
}

func NewJobHandler(jobService *services.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// CreateJob posts a DRAFT job in the recruiter's organization
func (h *JobHandler) CreateJob(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	type CreateJobRequest struct {
		Title        string               `json:"title" binding:"required,max=255"`
		Description  string               `json:"description" binding:"required"`
		Location     *string              `json:"location" binding:"omitempty,max=255"`
		SalaryRange  *string              `json:"salary_range" binding:"omitempty,max=100"`
		Requirements []string             `json:"requirements"`
		Visibility   models.JobVisibility `json:"visibility"`
	}

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), p, services.CreateJobInput{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		SalaryRange:  req.SalaryRange,
		Requirements: req.Requirements,
		Visibility:   req.Visibility,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToJobDTO(*job))
}

// GetJob returns a job. Anonymous callers only see PUBLIC ONGOING jobs.
func (h *JobHandler) GetJob(c *gin.Context) {
	var caller *services.Principal
	if p, ok := middleware.GetPrincipal(c); ok {
		caller = &p
	}

	job, err := h.jobService.Get(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJobDTO(*job))
}

// UpdateJob patches a job owned by the caller
func (h *JobHandler) UpdateJob(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	type UpdateJobRequest struct {
		Title        *string               `json:"title" binding:"omitempty,max=255"`
		Description  *string               `json:"description"`
		Location     *string               `json:"location" binding:"omitempty,max=255"`
		SalaryRange  *string               `json:"salary_range" binding:"omitempty,max=100"`
		Requirements *[]string             `json:"requirements"`
		Visibility   *models.JobVisibility `json:"visibility"`
		Status       *models.JobStatus     `json:"status"`
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	job, err := h.jobService.Update(c.Request.Context(), p, c.Param("id"), services.UpdateJobInput{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		SalaryRange:  req.SalaryRange,
		Requirements: req.Requirements,
		Visibility:   req.Visibility,
		Status:       req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJobDTO(*job))
}

// ChangeJobStatus moves a job through its lifecycle
func (h *JobHandler) ChangeJobStatus(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	type ChangeStatusRequest struct {
		Status models.JobStatus `json:"status" binding:"required"`
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	job, err := h.jobService.ChangeStatus(c.Request.Context(), p, c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJobDTO(*job))
}

// DeleteJob deletes a job and its applications
func (h *JobHandler) DeleteJob(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	if err := h.jobService.Delete(c.Request.Context(), p, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Job deleted successfully",
	})
}

// ListMyJobs returns the caller's jobs, newest first
func (h *JobHandler) ListMyJobs(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.ListMine(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJobListResponse(jobs))
}

// ListOrganizationJobs returns every job of an organization the caller belongs to
func (h *JobHandler) ListOrganizationJobs(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.ListByOrganization(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJobListResponse(jobs))
}

// ListPublicJobs returns PUBLIC ONGOING jobs. Pagination applies only when page is given.
func (h *JobHandler) ListPublicJobs(c *gin.Context) {
	var page *utils.PaginationParams
	if params, requested := utils.GetPaginationParams(c); requested {
		page = &params
	}

	jobs, total, err := h.jobService.ListPublic(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}

	response := dto.ToJobListResponse(jobs)
	if page != nil {
		response.Pagination = &utils.PaginationResponse{
			Page:  page.Page,
			Limit: page.Limit,
			Total: total,
		}
	}
	c.JSON(http.StatusOK, response)
}
