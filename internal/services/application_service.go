package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/hiring-platform-api/internal/models"
	"github.com/yukikurage/hiring-platform-api/internal/repository"
)

// ApplicationService provides business logic for job applications.
type ApplicationService struct {
	appRepo repository.ApplicationRepository
	jobRepo repository.JobRepository
}

// NewApplicationService creates a new ApplicationService.
func NewApplicationService(appRepo repository.ApplicationRepository, jobRepo repository.JobRepository) *ApplicationService {
	return &ApplicationService{
		appRepo: appRepo,
		jobRepo: jobRepo,
	}
}

// Apply creates an APPLIED application for the calling candidate.
func (s *ApplicationService) Apply(ctx context.Context, p Principal, jobID string) (*models.Application, error) {
	if p.Role != models.RoleCandidate {
		return nil, ErrCandidateOnly
	}

	job, err := s.findJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != models.JobStatusOngoing {
		return nil, ErrJobNotAccepting
	}

	if _, err := s.appRepo.FindByJobAndCandidate(ctx, jobID, p.UserID); err == nil {
		return nil, ErrAlreadyApplied
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check application: %w", err)
	}

	app := &models.Application{
		JobID:       jobID,
		CandidateID: p.UserID,
		Status:      models.ApplicationStatusApplied,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		// The unique index decides concurrent applies.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyApplied
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return app, nil
}

// ListByJob returns a job's applications to the recruiter who owns the job.
func (s *ApplicationService) ListByJob(ctx context.Context, p Principal, jobID string) ([]models.Application, error) {
	if p.Role != models.RoleRecruiter {
		return nil, ErrRecruiterOnly
	}

	job, err := s.findJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !p.ManagesJob(job) {
		return nil, ErrJobOwnerOnly
	}

	apps, err := s.appRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

// ListMine returns the calling candidate's applications.
func (s *ApplicationService) ListMine(ctx context.Context, p Principal) ([]models.Application, error) {
	if p.Role != models.RoleCandidate {
		return nil, ErrCandidateOnly
	}

	apps, err := s.appRepo.ListByCandidate(ctx, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

// UpdateStatus moves an application through the hiring pipeline.
func (s *ApplicationService) UpdateStatus(ctx context.Context, p Principal, appID string, status models.ApplicationStatus) (*models.Application, error) {
	app, err := s.find(ctx, appID, "Job")
	if err != nil {
		return nil, err
	}
	if !p.ManagesJob(&app.Job) {
		return nil, ErrApplicationForbidden
	}
	if !status.Valid() {
		return nil, ErrInvalidApplicationStatus
	}
	if app.Status == status {
		return app, nil
	}
	if !app.Status.CanTransitionTo(status) {
		return nil, newError(KindConflict, fmt.Sprintf("%s: %s -> %s", ErrApplicationTransition.Message, app.Status, status))
	}

	if err := s.appRepo.UpdateStatus(ctx, app, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to update application: %w", err)
	}
	app.Status = status
	return app, nil
}

// GetByID returns an application to its candidate or to the recruiter owning the job.
func (s *ApplicationService) GetByID(ctx context.Context, p Principal, appID string) (*models.Application, error) {
	app, err := s.find(ctx, appID, "Job", "Job.Organization", "Candidate")
	if err != nil {
		return nil, err
	}

	switch {
	case p.ManagesJob(&app.Job):
	case p.Role == models.RoleCandidate && app.CandidateID == p.UserID:
	default:
		return nil, ErrApplicationForbidden
	}
	return app, nil
}

func (s *ApplicationService) find(ctx context.Context, appID string, preload ...string) (*models.Application, error) {
	app, err := s.appRepo.FindByID(ctx, appID, preload...)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}
	return app, nil
}

func (s *ApplicationService) findJob(ctx context.Context, jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return job, nil
}
