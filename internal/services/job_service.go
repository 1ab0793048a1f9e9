package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/hiring-platform-api/internal/models"
	"github.com/yukikurage/hiring-platform-api/internal/repository"
	"github.com/yukikurage/hiring-platform-api/internal/utils"
)

// JobService provides business logic for job postings.
type JobService struct {
	jobRepo repository.JobRepository
}

// NewJobService creates a new JobService.
func NewJobService(jobRepo repository.JobRepository) *JobService {
	return &JobService{jobRepo: jobRepo}
}

// CreateJobInput represents parameters to create a job.
type CreateJobInput struct {
	Title        string
	Description  string
	Location     *string
	SalaryRange  *string
	Requirements []string
	Visibility   models.JobVisibility
}

// Create posts a new DRAFT job in the recruiter's current organization.
func (s *JobService) Create(ctx context.Context, p Principal, input CreateJobInput) (*models.Job, error) {
	if p.Role != models.RoleRecruiter {
		return nil, ErrRecruiterOnly
	}
	if p.OrganizationID == nil {
		return nil, ErrNoOrganization
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrJobTitleRequired
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, ErrJobDescriptionRequired
	}

	visibility := input.Visibility
	if visibility == "" {
		visibility = models.JobVisibilityPublic
	}
	if !visibility.Valid() {
		return nil, ErrInvalidVisibility
	}

	requirements := input.Requirements
	if requirements == nil {
		requirements = []string{}
	}

	job := &models.Job{
		Title:          title,
		Description:    description,
		Location:       input.Location,
		SalaryRange:    input.SalaryRange,
		Requirements:   requirements,
		Visibility:     visibility,
		Status:         models.JobStatusDraft,
		RecruiterID:    p.UserID,
		OrganizationID: *p.OrganizationID,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

// Get returns a job with recruiter and organization. Open public jobs are visible to
// anyone, including a nil principal; other jobs only to their organization and admins.
func (s *JobService) Get(ctx context.Context, p *Principal, jobID string) (*models.Job, error) {
	job, err := s.find(ctx, jobID, "Recruiter", "Organization")
	if err != nil {
		return nil, err
	}

	if job.Visibility == models.JobVisibilityPublic && job.Status == models.JobStatusOngoing {
		return job, nil
	}
	if p != nil && (p.IsAdmin() || p.InOrganization(job.OrganizationID)) {
		return job, nil
	}
	return nil, ErrJobNotFound
}

// UpdateJobInput is a partial patch; nil fields are left unchanged.
type UpdateJobInput struct {
	Title        *string
	Description  *string
	Location     *string
	SalaryRange  *string
	Requirements *[]string
	Visibility   *models.JobVisibility
	Status       *models.JobStatus
}

// Update patches a job. Only the recruiter who created it may do so.
func (s *JobService) Update(ctx context.Context, p Principal, jobID string, input UpdateJobInput) (*models.Job, error) {
	job, err := s.findOwned(ctx, p, jobID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrJobTitleRequired
		}
		job.Title = title
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if description == "" {
			return nil, ErrJobDescriptionRequired
		}
		job.Description = description
	}
	if input.Location != nil {
		job.Location = input.Location
	}
	if input.SalaryRange != nil {
		job.SalaryRange = input.SalaryRange
	}
	if input.Requirements != nil {
		job.Requirements = *input.Requirements
		if job.Requirements == nil {
			job.Requirements = []string{}
		}
	}
	if input.Visibility != nil {
		if !input.Visibility.Valid() {
			return nil, ErrInvalidVisibility
		}
		job.Visibility = *input.Visibility
	}
	if input.Status != nil {
		if err := checkJobTransition(job.Status, *input.Status); err != nil {
			return nil, err
		}
		job.Status = *input.Status
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return job, nil
}

// ChangeStatus moves a job along its lifecycle. Re-applying the current status is a no-op.
func (s *JobService) ChangeStatus(ctx context.Context, p Principal, jobID string, status models.JobStatus) (*models.Job, error) {
	if !status.Valid() {
		return nil, ErrInvalidJobStatus
	}

	job, err := s.findOwned(ctx, p, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status == status {
		return job, nil
	}
	if err := checkJobTransition(job.Status, status); err != nil {
		return nil, err
	}

	job.Status = status
	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to update job status: %w", err)
	}
	return job, nil
}

// Delete removes a job and its applications.
func (s *JobService) Delete(ctx context.Context, p Principal, jobID string) error {
	if _, err := s.findOwned(ctx, p, jobID); err != nil {
		return err
	}

	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrJobNotFound
		}
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}

// ListMine returns the caller's jobs, newest first.
func (s *JobService) ListMine(ctx context.Context, p Principal) ([]models.Job, error) {
	if p.Role != models.RoleRecruiter {
		return nil, ErrRecruiterOnly
	}

	jobs, err := s.jobRepo.ListByRecruiter(ctx, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// ListByOrganization returns an organization's jobs to its members and admins.
func (s *JobService) ListByOrganization(ctx context.Context, p Principal, orgID string) ([]models.Job, error) {
	if !p.IsAdmin() && !p.InOrganization(orgID) {
		return nil, ErrNotOrganizationMember
	}

	jobs, err := s.jobRepo.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// ListPublic returns open public jobs. A nil page returns all of them.
func (s *JobService) ListPublic(ctx context.Context, page *utils.PaginationParams) ([]models.Job, int64, error) {
	jobs, total, err := s.jobRepo.ListPublic(ctx, page)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list public jobs: %w", err)
	}
	return jobs, total, nil
}

func (s *JobService) find(ctx context.Context, jobID string, preload ...string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID, preload...)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return job, nil
}

func (s *JobService) findOwned(ctx context.Context, p Principal, jobID string) (*models.Job, error) {
	job, err := s.find(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !p.ManagesJob(job) {
		return nil, ErrJobOwnerOnly
	}
	return job, nil
}

func checkJobTransition(from, to models.JobStatus) error {
	if !to.Valid() {
		return ErrInvalidJobStatus
	}
	if !from.CanTransitionTo(to) {
		return newError(KindConflict, fmt.Sprintf("%s: %s -> %s", ErrJobTransition.Message, from, to))
	}
	return nil
}
