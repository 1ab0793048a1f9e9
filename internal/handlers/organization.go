package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hiring-platform-api/internal/dto"
	"github.com/yukikurage/hiring-platform-api/internal/models"
	"github.com/yukikurage/hiring-platform-api/internal/services"
)

type OrganizationHandler struct {
	orgService *services.OrganizationService
}

func NewOrganizationHandler(orgService *services.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

// CreateOrganization creates a new organization owned by the caller
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	type CreateOrgRequest struct {
		Name     string                 `json:"name" binding:"required,max=255"`
		Slug     string                 `json:"slug" binding:"required,max=100"`
		Plan     models.Plan            `json:"plan"`
		Settings map[string]interface{} `json:"settings"`
	}

	var req CreateOrgRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	org, err := h.orgService.Create(c.Request.Context(), p, services.CreateOrganizationInput{
		Name:     req.Name,
		Slug:     req.Slug,
		Plan:     req.Plan,
		Settings: req.Settings,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrganizationDTO(*org))
}

// GetOrganization returns organization details with members
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	details, err := h.orgService.GetByID(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toDetailDTO(details))
}

// GetMyOrganization returns the caller's organization
func (h *OrganizationHandler) GetMyOrganization(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	details, err := h.orgService.GetMine(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toDetailDTO(details))
}

func toDetailDTO(d *services.OrganizationDetails) dto.OrganizationDetailDTO {
	return dto.ToOrganizationDetailDTO(*d.Organization, d.Members, d.Counts.Members, d.Counts.Jobs)
}

// UpdateOrganization patches name, slug, plan or settings
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	type UpdateOrgRequest struct {
		Name     *string                `json:"name" binding:"omitempty,max=255"`
		Slug     *string                `json:"slug" binding:"omitempty,max=100"`
		Plan     *models.Plan           `json:"plan"`
		Settings map[string]interface{} `json:"settings"`
	}

	var req UpdateOrgRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	org, err := h.orgService.Update(c.Request.Context(), p, c.Param("id"), services.UpdateOrganizationInput{
		Name:     req.Name,
		Slug:     req.Slug,
		Plan:     req.Plan,
		Settings: req.Settings,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationDTO(*org))
}

// DeleteOrganization deletes an organization with its jobs and applications
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	if err := h.orgService.Delete(c.Request.Context(), p, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Organization deleted successfully",
	})
}

// ListMembers returns all members of an organization
func (h *OrganizationHandler) ListMembers(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	members, err := h.orgService.ListMembers(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"members": dto.ToUserDTOs(members),
	})
}

// AddMember adds a registered user by email or reports a pending invitation
func (h *OrganizationHandler) AddMember(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	type AddMemberRequest struct {
		Email string      `json:"email" binding:"required,email"`
		Role  models.Role `json:"role" binding:"required"`
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	result, err := h.orgService.AddMember(c.Request.Context(), p, c.Param("id"), services.AddMemberInput{
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	response := dto.AddMemberResponse{Message: result.Message, Invited: result.Invited}
	status := http.StatusOK
	if result.Member != nil {
		member := dto.ToUserDTO(*result.Member)
		response.Member = &member
		status = http.StatusCreated
	}
	c.JSON(status, response)
}

// UpdateMember changes a member's role or name
func (h *OrganizationHandler) UpdateMember(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	type UpdateMemberRequest struct {
		Role      *models.Role `json:"role"`
		FirstName *string      `json:"first_name" binding:"omitempty,max=100"`
		LastName  *string      `json:"last_name" binding:"omitempty,max=100"`
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	member, err := h.orgService.UpdateMember(c.Request.Context(), p, c.Param("id"), c.Param("userId"), services.UpdateMemberInput{
		Role:      req.Role,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*member))
}

// RemoveMember unlinks a member from the organization
func (h *OrganizationHandler) RemoveMember(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	if err := h.orgService.RemoveMember(c.Request.Context(), p, c.Param("id"), c.Param("userId")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Member removed successfully",
	})
}
