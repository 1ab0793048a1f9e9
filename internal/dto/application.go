package dto

import (
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/yukikurage/hiring-platform-api/internal/models"
)

// ApplicationJobDTO is the job shown next to an application
type ApplicationJobDTO struct {
	ID           string                  `json:"id"`
	Title        string                  `json:"title"`
	Status       models.JobStatus        `json:"status"`
	Organization *OrganizationSummaryDTO `json:"organization,omitempty"`
}

// ApplicationDTO represents an application in API responses
type ApplicationDTO struct {
	ID          string                   `json:"id"`
	JobID       string                   `json:"job_id"`
	CandidateID string                   `json:"candidate_id"`
	Status      models.ApplicationStatus `json:"status"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
	Job         *ApplicationJobDTO       `json:"job,omitempty"`
	Candidate   *UserSummaryDTO          `json:"candidate,omitempty"`
}

// ToApplicationDTO converts an application to DTO
func ToApplicationDTO(app models.Application) ApplicationDTO {
	out := ApplicationDTO{
		ID:          app.ID,
		JobID:       app.JobID,
		CandidateID: app.CandidateID,
		Status:      app.Status,
		CreatedAt:   app.CreatedAt,
		UpdatedAt:   app.UpdatedAt,
		Candidate:   ToUserSummaryDTO(app.Candidate),
	}
	if app.Job.ID != "" {
		out.Job = &ApplicationJobDTO{
			ID:           app.Job.ID,
			Title:        app.Job.Title,
			Status:       app.Job.Status,
			Organization: ToOrganizationSummaryDTO(app.Job.Organization),
		}
	}
	return out
}

// ToApplicationDTOs converts a list of applications
func ToApplicationDTOs(apps []models.Application) []ApplicationDTO {
	return slice.Map(apps, func(_ int, a models.Application) ApplicationDTO {
		return ToApplicationDTO(a)
	})
}
