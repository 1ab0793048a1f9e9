package repository

import (
	"context"

	"github.com/yukikurage/hiring-platform-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(user).Error, "create user")
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err, "find user")
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err, "find user by email")
	}
	return &user, nil
}

// Update saves a user
func (r *GormUserRepository) Update(ctx context.Context, user *models.User) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(user).Error, "update user")
}

// AssignOrganization links a user to an organization if they have none yet.
// The organization_id IS NULL guard makes the check and the write one statement.
func (r *GormUserRepository) AssignOrganization(ctx context.Context, userID, orgID string, role models.Role) error {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ? AND organization_id IS NULL", userID).
		Updates(map[string]interface{}{
			"organization_id": orgID,
			"role":            role,
		})
	if res.Error != nil {
		return translate(res.Error, "assign organization")
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyInOrganization
	}
	return nil
}

// ClearOrganization unlinks a user from an organization
func (r *GormUserRepository) ClearOrganization(ctx context.Context, userID, orgID string) error {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ? AND organization_id = ?", userID, orgID).
		Update("organization_id", nil)
	if res.Error != nil {
		return translate(res.Error, "clear organization")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
