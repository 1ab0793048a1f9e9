package models

import (
	"time"

	"gorm.io/datatypes"
)

type Plan string

const (
	PlanFree         Plan = "FREE"
	PlanStarter      Plan = "STARTER"
	PlanProfessional Plan = "PROFESSIONAL"
	PlanEnterprise   Plan = "ENTERPRISE"
)

func (p Plan) Valid() bool {
	switch p {
	case PlanFree, PlanStarter, PlanProfessional, PlanEnterprise:
		return true
	}
	return false
}

type Organization struct {
	ID        string            `gorm:"type:varchar(36);primarykey" json:"id"`
	Name      string            `gorm:"type:varchar(255);not null" json:"name"`
	Slug      string            `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug"`
	Plan      Plan              `gorm:"type:varchar(20);not null;default:'FREE'" json:"plan"`
	Settings  datatypes.JSONMap `json:"settings"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`

	// Relations
	Members []User `gorm:"foreignKey:OrganizationID" json:"members,omitempty"`
	Jobs    []Job  `gorm:"foreignKey:OrganizationID" json:"jobs,omitempty"`
}
