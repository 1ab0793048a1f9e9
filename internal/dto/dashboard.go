package dto

import (
	"github.com/yukikurage/hiring-platform-api/internal/models"
	"github.com/yukikurage/hiring-platform-api/internal/services"
)

// DashboardStatsDTO represents recruiter dashboard numbers
type DashboardStatsDTO struct {
	TotalJobs           int64                              `json:"total_jobs"`
	ActiveJobs          int64                              `json:"active_jobs"`
	DraftJobs           int64                              `json:"draft_jobs"`
	ClosedJobs          int64                              `json:"closed_jobs"`
	TotalApplications   int64                              `json:"total_applications"`
	ApplicationsByStage map[models.ApplicationStatus]int64 `json:"applications_by_stage"`
	RecentApplications  []ApplicationDTO                   `json:"recent_applications"`
}

// ToDashboardStatsDTO converts dashboard stats to DTO
func ToDashboardStatsDTO(stats *services.DashboardStats) DashboardStatsDTO {
	return DashboardStatsDTO{
		TotalJobs:           stats.TotalJobs,
		ActiveJobs:          stats.ActiveJobs,
		DraftJobs:           stats.DraftJobs,
		ClosedJobs:          stats.ClosedJobs,
		TotalApplications:   stats.TotalApplications,
		ApplicationsByStage: stats.ApplicationsByStage,
		RecentApplications:  ToApplicationDTOs(stats.RecentApplications),
	}
}
