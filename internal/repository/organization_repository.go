package repository

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/yukikurage/hiring-platform-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrganizationRepository is a GORM implementation of OrganizationRepository
type GormOrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new OrganizationRepository
func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &GormOrganizationRepository{db: db}
}

// CreateWithOwner creates an organization and links its owner atomically.
func (r *GormOrganizationRepository) CreateWithOwner(ctx context.Context, org *models.Organization, ownerID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(org).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicate
			}
			return fmt.Errorf("%w: %v", ErrCreateOrganization, err)
		}

		res := tx.Model(&models.User{}).
			Where("id = ? AND organization_id IS NULL", ownerID).
			Update("organization_id", org.ID)
		if res.Error != nil {
			return fmt.Errorf("%w: %v", ErrLinkOrganizationOwner, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyInOrganization
		}

		return nil
	})
}

// FindByID finds an organization by ID
func (r *GormOrganizationRepository) FindByID(ctx context.Context, id string) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&org).Error; err != nil {
		return nil, translate(err, "find organization")
	}
	return &org, nil
}

// FindBySlug finds an organization by slug
func (r *GormOrganizationRepository) FindBySlug(ctx context.Context, slug string) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&org).Error; err != nil {
		return nil, translate(err, "find organization by slug")
	}
	return &org, nil
}

// Update updates an organization
func (r *GormOrganizationRepository) Update(ctx context.Context, org *models.Organization) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(org).Error, "update organization")
}

// Delete deletes an organization and all related data in a transaction
func (r *GormOrganizationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		jobIDs := tx.Model(&models.Job{}).Select("id").Where("organization_id = ?", id)

		// Delete all applications to the organization's jobs
		if err := tx.Where("job_id IN (?)", jobIDs).Delete(&models.Application{}).Error; err != nil {
			return errors.Wrap(err, "delete organization applications")
		}

		// Delete all jobs in the organization
		if err := tx.Where("organization_id = ?", id).Delete(&models.Job{}).Error; err != nil {
			return errors.Wrap(err, "delete organization jobs")
		}

		// Unlink members; the users themselves are kept
		if err := tx.Model(&models.User{}).Where("organization_id = ?", id).
			Update("organization_id", nil).Error; err != nil {
			return errors.Wrap(err, "unlink organization members")
		}

		res := tx.Where("id = ?", id).Delete(&models.Organization{})
		if res.Error != nil {
			return errors.Wrap(res.Error, "delete organization")
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		return nil
	})
}

// ListMembers lists all members of an organization
func (r *GormOrganizationRepository) ListMembers(ctx context.Context, orgID string) ([]models.User, error) {
	var members []models.User
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at ASC").
		Find(&members).Error; err != nil {
		return nil, translate(err, "list organization members")
	}
	return members, nil
}

// Counts returns member and job counts for an organization
func (r *GormOrganizationRepository) Counts(ctx context.Context, orgID string) (OrganizationCounts, error) {
	var counts OrganizationCounts
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.User{}).Where("organization_id = ?", orgID).Count(&counts.Members).Error; err != nil {
		return counts, translate(err, "count organization members")
	}
	if err := db.Model(&models.Job{}).Where("organization_id = ?", orgID).Count(&counts.Jobs).Error; err != nil {
		return counts, translate(err, "count organization jobs")
	}
	return counts, nil
}
