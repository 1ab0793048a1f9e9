package repository

import (
	"context"

	"github.com/pkg/errors"
	"github.com/yukikurage/hiring-platform-api/internal/database"
	"github.com/yukikurage/hiring-platform-api/internal/models"
	"github.com/yukikurage/hiring-platform-api/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormJobRepository is a GORM implementation of JobRepository
type GormJobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *gorm.DB) JobRepository {
	return &GormJobRepository{db: db}
}

// Create creates a new job
func (r *GormJobRepository) Create(ctx context.Context, job *models.Job) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(job).Error, "create job")
}

// FindByID finds a job by ID with optional preloading
func (r *GormJobRepository) FindByID(ctx context.Context, id string, preload ...string) (*models.Job, error) {
	var job models.Job
	query := r.db.WithContext(ctx)

	// Apply preloading if specified
	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.Where("id = ?", id).First(&job).Error; err != nil {
		return nil, translate(err, "find job")
	}

	return &job, nil
}

// Update updates a job
func (r *GormJobRepository) Update(ctx context.Context, job *models.Job) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(job).Error, "update job")
}

// Delete hard deletes a job together with its applications
func (r *GormJobRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return errors.Wrap(err, "delete job applications")
		}

		res := tx.Where("id = ?", id).Delete(&models.Job{})
		if res.Error != nil {
			return errors.Wrap(res.Error, "delete job")
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// ListByRecruiter lists jobs created by a recruiter
func (r *GormJobRepository) ListByRecruiter(ctx context.Context, recruiterID string) ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.WithContext(ctx).
		Where("recruiter_id = ?", recruiterID).
		Scopes(database.Newest("jobs")).
		Find(&jobs).Error; err != nil {
		return nil, translate(err, "list jobs by recruiter")
	}
	return jobs, nil
}

// ListByOrganization lists jobs of an organization
func (r *GormJobRepository) ListByOrganization(ctx context.Context, orgID string) ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Scopes(database.Newest("jobs")).
		Find(&jobs).Error; err != nil {
		return nil, translate(err, "list jobs by organization")
	}
	return jobs, nil
}

// ListPublic lists open public jobs with their organization
func (r *GormJobRepository) ListPublic(ctx context.Context, page *utils.PaginationParams) ([]models.Job, int64, error) {
	public := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.Job{}).
			Where("jobs.visibility = ? AND jobs.status = ?", models.JobVisibilityPublic, models.JobStatusOngoing)
	}

	var total int64
	if err := public().Count(&total).Error; err != nil {
		return nil, 0, translate(err, "count public jobs")
	}

	query := public().Preload("Organization").Scopes(database.Newest("jobs"))
	if page != nil {
		query = query.Scopes(database.Paginate(*page))
	}

	var jobs []models.Job
	if err := query.Find(&jobs).Error; err != nil {
		return nil, 0, translate(err, "list public jobs")
	}
	return jobs, total, nil
}

// CountByRecruiter counts a recruiter's jobs
func (r *GormJobRepository) CountByRecruiter(ctx context.Context, recruiterID string, status *models.JobStatus) (int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Job{}).Where("recruiter_id = ?", recruiterID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, translate(err, "count jobs")
	}
	return count, nil
}
