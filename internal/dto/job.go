package dto

import (
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/yukikurage/hiring-platform-api/internal/models"
	"github.com/yukikurage/hiring-platform-api/internal/utils"
)

// JobDTO represents a job in API responses
type JobDTO struct {
	ID             string                  `json:"id"`
	Title          string                  `json:"title"`
	Description    string                  `json:"description"`
	Location       *string                 `json:"location"`
	SalaryRange    *string                 `json:"salary_range"`
	Requirements   []string                `json:"requirements"`
	Visibility     models.JobVisibility    `json:"visibility"`
	Status         models.JobStatus        `json:"status"`
	RecruiterID    string                  `json:"recruiter_id"`
	OrganizationID string                  `json:"organization_id"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
	Recruiter      *UserSummaryDTO         `json:"recruiter,omitempty"`
	Organization   *OrganizationSummaryDTO `json:"organization,omitempty"`
}

// JobListResponse represents a list of jobs, paginated when requested
type JobListResponse struct {
	Jobs       []JobDTO                  `json:"jobs"`
	Pagination *utils.PaginationResponse `json:"pagination,omitempty"`
}

// ToJobDTO converts a job to DTO
func ToJobDTO(job models.Job) JobDTO {
	requirements := job.Requirements
	if requirements == nil {
		requirements = []string{}
	}
	return JobDTO{
		ID:             job.ID,
		Title:          job.Title,
		Description:    job.Description,
		Location:       job.Location,
		SalaryRange:    job.SalaryRange,
		Requirements:   requirements,
		Visibility:     job.Visibility,
		Status:         job.Status,
		RecruiterID:    job.RecruiterID,
		OrganizationID: job.OrganizationID,
		CreatedAt:      job.CreatedAt,
		UpdatedAt:      job.UpdatedAt,
		Recruiter:      ToUserSummaryDTO(job.Recruiter),
		Organization:   ToOrganizationSummaryDTO(job.Organization),
	}
}

// ToJobListResponse converts jobs to a list response
func ToJobListResponse(jobs []models.Job) JobListResponse {
	return JobListResponse{
		Jobs: slice.Map(jobs, func(_ int, j models.Job) JobDTO {
			return ToJobDTO(j)
		}),
	}
}
