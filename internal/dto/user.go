package dto

import (
	"time"

	"github.com/yukikurage/hiring-platform-api/internal/models"
)

// UserDTO is the safe projection of a user. It never carries the password hash.
type UserDTO struct {
	ID             string      `json:"id"`
	Email          string      `json:"email"`
	FirstName      *string     `json:"first_name"`
	LastName       *string     `json:"last_name"`
	Role           models.Role `json:"role"`
	OrganizationID *string     `json:"organization_id"`
	Verified       bool        `json:"verified"`
	CreatedAt      time.Time   `json:"created_at"`
}

// UserSummaryDTO is the minimal user shown next to jobs and applications
type UserSummaryDTO struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

// ToUserDTO converts a user to DTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:             user.ID,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Role:           user.Role,
		OrganizationID: user.OrganizationID,
		Verified:       user.Verified,
		CreatedAt:      user.CreatedAt,
	}
}

// ToUserSummaryDTO returns nil when the relation was not loaded
func ToUserSummaryDTO(user models.User) *UserSummaryDTO {
	if user.ID == "" {
		return nil
	}
	return &UserSummaryDTO{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}
