package repository

import (
	"context"

	"github.com/yukikurage/hiring-platform-api/internal/database"
	"github.com/yukikurage/hiring-platform-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormApplicationRepository is a GORM implementation of ApplicationRepository
type GormApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &GormApplicationRepository{db: db}
}

// Create creates a new application
func (r *GormApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(app).Error, "create application")
}

// FindByID finds an application by ID with optional preloading
func (r *GormApplicationRepository) FindByID(ctx context.Context, id string, preload ...string) (*models.Application, error) {
	var app models.Application
	query := r.db.WithContext(ctx)
	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.Where("id = ?", id).First(&app).Error; err != nil {
		return nil, translate(err, "find application")
	}
	return &app, nil
}

// FindByJobAndCandidate finds a candidate's application to a job
func (r *GormApplicationRepository) FindByJobAndCandidate(ctx context.Context, jobID, candidateID string) (*models.Application, error) {
	var app models.Application
	if err := r.db.WithContext(ctx).
		Where("job_id = ? AND candidate_id = ?", jobID, candidateID).
		First(&app).Error; err != nil {
		return nil, translate(err, "find application by job and candidate")
	}
	return &app, nil
}

// UpdateStatus sets the status of an application
func (r *GormApplicationRepository) UpdateStatus(ctx context.Context, app *models.Application, status models.ApplicationStatus) error {
	res := r.db.WithContext(ctx).Model(app).Update("status", status)
	if res.Error != nil {
		return translate(res.Error, "update application status")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByJob lists a job's applications with the candidate loaded
func (r *GormApplicationRepository) ListByJob(ctx context.Context, jobID string) ([]models.Application, error) {
	var apps []models.Application
	if err := r.db.WithContext(ctx).
		Preload("Candidate").
		Where("job_id = ?", jobID).
		Scopes(database.Newest("applications")).
		Find(&apps).Error; err != nil {
		return nil, translate(err, "list applications by job")
	}
	return apps, nil
}

// ListByCandidate lists a candidate's applications with job and organization loaded
func (r *GormApplicationRepository) ListByCandidate(ctx context.Context, candidateID string) ([]models.Application, error) {
	var apps []models.Application
	if err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Job.Organization").
		Where("candidate_id = ?", candidateID).
		Scopes(database.Newest("applications")).
		Find(&apps).Error; err != nil {
		return nil, translate(err, "list applications by candidate")
	}
	return apps, nil
}

// CountByRecruiter counts applications to a recruiter's jobs
func (r *GormApplicationRepository) CountByRecruiter(ctx context.Context, recruiterID string, status *models.ApplicationStatus) (int64, error) {
	query := r.byRecruiter(ctx, recruiterID)
	if status != nil {
		query = query.Where("applications.status = ?", *status)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, translate(err, "count applications")
	}
	return count, nil
}

// RecentByRecruiter returns the newest applications to a recruiter's jobs
func (r *GormApplicationRepository) RecentByRecruiter(ctx context.Context, recruiterID string, limit int) ([]models.Application, error) {
	var apps []models.Application
	if err := r.byRecruiter(ctx, recruiterID).
		Preload("Candidate").
		Preload("Job").
		Scopes(database.Newest("applications")).
		Limit(limit).
		Find(&apps).Error; err != nil {
		return nil, translate(err, "list recent applications")
	}
	return apps, nil
}

func (r *GormApplicationRepository) byRecruiter(ctx context.Context, recruiterID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Application{}).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.recruiter_id = ?", recruiterID)
}
