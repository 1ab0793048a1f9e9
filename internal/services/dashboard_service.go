package services

import (
	"context"
	"fmt"

	"github.com/yukikurage/hiring-platform-api/internal/constants"
	"github.com/yukikurage/hiring-platform-api/internal/models"
	"github.com/yukikurage/hiring-platform-api/internal/repository"
	"golang.org/x/sync/errgroup"
)

// DashboardService aggregates a recruiter's jobs and applications.
type DashboardService struct {
	jobRepo repository.JobRepository
	appRepo repository.ApplicationRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(jobRepo repository.JobRepository, appRepo repository.ApplicationRepository) *DashboardService {
	return &DashboardService{
		jobRepo: jobRepo,
		appRepo: appRepo,
	}
}

// DashboardStats summarizes the caller's hiring pipeline.
type DashboardStats struct {
	TotalJobs           int64
	ActiveJobs          int64
	DraftJobs           int64
	ClosedJobs          int64
	TotalApplications   int64
	ApplicationsByStage map[models.ApplicationStatus]int64
	RecentApplications  []models.Application
}

// RecruiterStats counts the caller's jobs and the applications they received.
func (s *DashboardService) RecruiterStats(ctx context.Context, p Principal) (*DashboardStats, error) {
	if !p.HasRole(models.RoleRecruiter, models.RoleAdmin) {
		return nil, ErrDashboardForbidden
	}

	var (
		stats      DashboardStats
		stageCount = make([]int64, len(models.ApplicationStatuses))
	)

	eg, ctx := errgroup.WithContext(ctx)
	countJobs := func(dst *int64, status *models.JobStatus) {
		eg.Go(func() error {
			n, err := s.jobRepo.CountByRecruiter(ctx, p.UserID, status)
			*dst = n
			return err
		})
	}
	countJobs(&stats.TotalJobs, nil)
	countJobs(&stats.ActiveJobs, jobStatus(models.JobStatusOngoing))
	countJobs(&stats.DraftJobs, jobStatus(models.JobStatusDraft))
	countJobs(&stats.ClosedJobs, jobStatus(models.JobStatusClosed))

	eg.Go(func() error {
		n, err := s.appRepo.CountByRecruiter(ctx, p.UserID, nil)
		stats.TotalApplications = n
		return err
	})
	for i, status := range models.ApplicationStatuses {
		eg.Go(func() error {
			n, err := s.appRepo.CountByRecruiter(ctx, p.UserID, &status)
			stageCount[i] = n
			return err
		})
	}
	eg.Go(func() error {
		apps, err := s.appRepo.RecentByRecruiter(ctx, p.UserID, constants.RecentApplicationsLimit)
		stats.RecentApplications = apps
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}

	stats.ApplicationsByStage = make(map[models.ApplicationStatus]int64, len(stageCount))
	for i, status := range models.ApplicationStatuses {
		stats.ApplicationsByStage[status] = stageCount[i]
	}
	return &stats, nil
}

func jobStatus(s models.JobStatus) *models.JobStatus {
	return &s
}
