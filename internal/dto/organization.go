package dto

import (
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/yukikurage/hiring-platform-api/internal/models"
)

// OrganizationDTO represents an organization in API responses
type OrganizationDTO struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Slug      string                 `json:"slug"`
	Plan      models.Plan            `json:"plan"`
	Settings  map[string]interface{} `json:"settings"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// OrganizationSummaryDTO is the organization shown next to jobs
type OrganizationSummaryDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// OrganizationDetailDTO represents an organization with its members
type OrganizationDetailDTO struct {
	OrganizationDTO
	Members     []UserDTO `json:"members"`
	MemberCount int64     `json:"member_count"`
	JobCount    int64     `json:"job_count"`
}

// AddMemberResponse is either the added member or an invitation notice
type AddMemberResponse struct {
	Message string   `json:"message"`
	Invited bool     `json:"invited"`
	Member  *UserDTO `json:"member,omitempty"`
}

// ToOrganizationDTO converts an organization to DTO
func ToOrganizationDTO(org models.Organization) OrganizationDTO {
	settings := map[string]interface{}(org.Settings)
	if settings == nil {
		settings = map[string]interface{}{}
	}
	return OrganizationDTO{
		ID:        org.ID,
		Name:      org.Name,
		Slug:      org.Slug,
		Plan:      org.Plan,
		Settings:  settings,
		CreatedAt: org.CreatedAt,
		UpdatedAt: org.UpdatedAt,
	}
}

// ToOrganizationSummaryDTO returns nil when the relation was not loaded
func ToOrganizationSummaryDTO(org models.Organization) *OrganizationSummaryDTO {
	if org.ID == "" {
		return nil
	}
	return &OrganizationSummaryDTO{ID: org.ID, Name: org.Name, Slug: org.Slug}
}

// ToOrganizationDetailDTO converts organization with members to detailed DTO
func ToOrganizationDetailDTO(org models.Organization, members []models.User, memberCount, jobCount int64) OrganizationDetailDTO {
	return OrganizationDetailDTO{
		OrganizationDTO: ToOrganizationDTO(org),
		Members:         ToUserDTOs(members),
		MemberCount:     memberCount,
		JobCount:        jobCount,
	}
}

// ToUserDTOs converts a member list
func ToUserDTOs(users []models.User) []UserDTO {
	return slice.Map(users, func(_ int, u models.User) UserDTO {
		return ToUserDTO(u)
	})
}
