package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hiring-platform-api/internal/dto"
	"github.com/yukikurage/hiring-platform-api/internal/models"
	"github.com/yukikurage/hiring-platform-api/internal/services"
)

type ApplicationHandler struct {
	appService *services.ApplicationService
}

func NewApplicationHandler(appService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{appService: appService}
}

// Apply submits the caller's application to a job
func (h *ApplicationHandler) Apply(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	app, err := h.appService.Apply(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToApplicationDTO(*app))
}

// ListJobApplications returns applications for a job owned by the caller
func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	apps, err := h.appService.ListByJob(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": dto.ToApplicationDTOs(apps),
	})
}

// ListMyApplications returns the caller's applications with job context
func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	apps, err := h.appService.ListMine(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": dto.ToApplicationDTOs(apps),
	})
}

func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	app, err := h.appService.GetByID(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToApplicationDTO(*app))
}

// UpdateApplicationStatus moves an application through the hiring pipeline
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	type UpdateStatusRequest struct {
		Status models.ApplicationStatus `json:"status" binding:"required"`
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	app, err := h.appService.UpdateStatus(c.Request.Context(), p, c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToApplicationDTO(*app))
}
