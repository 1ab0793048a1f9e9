package models

import "time"

type Role string

const (
	RoleCandidate     Role = "CANDIDATE"
	RoleRecruiter     Role = "RECRUITER"
	RoleHiringManager Role = "HIRING_MANAGER"
	RoleAdmin         Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCandidate, RoleRecruiter, RoleHiringManager, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID             string    `gorm:"type:varchar(36);primarykey" json:"id"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash   string    `gorm:"type:varchar(255);not null" json:"-"`
	FirstName      *string   `gorm:"type:varchar(100)" json:"first_name"`
	LastName       *string   `gorm:"type:varchar(100)" json:"last_name"`
	Role           Role      `gorm:"type:varchar(20);not null;default:'CANDIDATE'" json:"role"`
	OrganizationID *string   `gorm:"type:varchar(36);index" json:"organization_id"`
	Verified       bool      `gorm:"not null;default:false" json:"verified"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"-"`
}

// InOrganization reports whether the user currently belongs to orgID.
func (u *User) InOrganization(orgID string) bool {
	return u.OrganizationID != nil && *u.OrganizationID == orgID
}
