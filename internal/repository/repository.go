package repository

import (
	"context"

	"github.com/yukikurage/hiring-platform-api/internal/models"
	"github.com/yukikurage/hiring-platform-api/internal/utils"
)

//go:generate mockgen -source=./repository.go -package=mocks -destination=mocks/repository.mock.go

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id string) (*models.User, error)

	// FindByEmail finds a user by email (exact match)
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// Update saves every column of the user
	Update(ctx context.Context, user *models.User) error

	// AssignOrganization links a user without an organization to orgID and sets their role.
	// It returns ErrAlreadyInOrganization if the user is linked to any organization.
	AssignOrganization(ctx context.Context, userID, orgID string, role models.Role) error

	// ClearOrganization unlinks a user from orgID. The user record is kept.
	ClearOrganization(ctx context.Context, userID, orgID string) error
}

// OrganizationRepository defines the interface for organization data access
type OrganizationRepository interface {
	// CreateWithOwner creates the organization and links the owner to it in one transaction.
	CreateWithOwner(ctx context.Context, org *models.Organization, ownerID string) error

	// FindByID finds an organization by ID
	FindByID(ctx context.Context, id string) (*models.Organization, error)

	// FindBySlug finds an organization by slug
	FindBySlug(ctx context.Context, slug string) (*models.Organization, error)

	// Update updates an organization
	Update(ctx context.Context, org *models.Organization) error

	// Delete deletes an organization, its jobs and their applications, and unlinks its members
	Delete(ctx context.Context, id string) error

	// ListMembers lists all members of an organization
	ListMembers(ctx context.Context, orgID string) ([]models.User, error)

	// Counts returns the number of members and jobs of an organization
	Counts(ctx context.Context, orgID string) (OrganizationCounts, error)
}

// OrganizationCounts holds aggregate sizes of an organization
type OrganizationCounts struct {
	Members int64
	Jobs    int64
}

// JobRepository defines the interface for job data access
type JobRepository interface {
	// Create creates a new job
	Create(ctx context.Context, job *models.Job) error

	// FindByID finds a job by ID with optional preloading
	FindByID(ctx context.Context, id string, preload ...string) (*models.Job, error)

	// Update updates a job
	Update(ctx context.Context, job *models.Job) error

	// Delete deletes a job and its applications
	Delete(ctx context.Context, id string) error

	// ListByRecruiter lists a recruiter's jobs, newest first
	ListByRecruiter(ctx context.Context, recruiterID string) ([]models.Job, error)

	// ListByOrganization lists an organization's jobs, newest first
	ListByOrganization(ctx context.Context, orgID string) ([]models.Job, error)

	// ListPublic lists PUBLIC and ONGOING jobs, newest first, with their organization.
	// A nil page returns every match.
	ListPublic(ctx context.Context, page *utils.PaginationParams) ([]models.Job, int64, error)

	// CountByRecruiter counts a recruiter's jobs, optionally restricted to one status
	CountByRecruiter(ctx context.Context, recruiterID string, status *models.JobStatus) (int64, error)
}

// ApplicationRepository defines the interface for application data access
type ApplicationRepository interface {
	// Create creates a new application. A second application for the same
	// (job, candidate) pair returns ErrDuplicate.
	Create(ctx context.Context, app *models.Application) error

	// FindByID finds an application by ID with optional preloading
	FindByID(ctx context.Context, id string, preload ...string) (*models.Application, error)

	// FindByJobAndCandidate finds the application of a candidate to a job
	FindByJobAndCandidate(ctx context.Context, jobID, candidateID string) (*models.Application, error)

	// UpdateStatus sets the status of an application
	UpdateStatus(ctx context.Context, app *models.Application, status models.ApplicationStatus) error

	// ListByJob lists a job's applications with their candidate, newest first
	ListByJob(ctx context.Context, jobID string) ([]models.Application, error)

	// ListByCandidate lists a candidate's applications with job and organization, newest first
	ListByCandidate(ctx context.Context, candidateID string) ([]models.Application, error)

	// CountByRecruiter counts applications to a recruiter's jobs, optionally restricted to one status
	CountByRecruiter(ctx context.Context, recruiterID string, status *models.ApplicationStatus) (int64, error)

	// RecentByRecruiter returns the latest applications to a recruiter's jobs
	RecentByRecruiter(ctx context.Context, recruiterID string, limit int) ([]models.Application, error)
}
