package models

import "time"

type JobStatus string

const (
	JobStatusDraft   JobStatus = "DRAFT"
	JobStatusOngoing JobStatus = "ONGOING"
	JobStatusClosed  JobStatus = "CLOSED"
)

type JobVisibility string

const (
	JobVisibilityPublic  JobVisibility = "PUBLIC"
	JobVisibilityPrivate JobVisibility = "PRIVATE"
)

func (v JobVisibility) Valid() bool {
	return v == JobVisibilityPublic || v == JobVisibilityPrivate
}

type Job struct {
	ID             string        `gorm:"type:varchar(36);primarykey" json:"id"`
	Title          string        `gorm:"type:varchar(255);not null" json:"title"`
	Description    string        `gorm:"type:text;not null" json:"description"`
	Location       *string       `gorm:"type:varchar(255)" json:"location"`
	SalaryRange    *string       `gorm:"type:varchar(100)" json:"salary_range"`
	Requirements   []string      `gorm:"serializer:json" json:"requirements"`
	Visibility     JobVisibility `gorm:"type:varchar(20);not null;default:'PUBLIC';index:idx_jobs_listing,priority:1" json:"visibility"`
	Status         JobStatus     `gorm:"type:varchar(20);not null;default:'DRAFT';index:idx_jobs_listing,priority:2" json:"status"`
	RecruiterID    string        `gorm:"type:varchar(36);not null;index" json:"recruiter_id"`
	OrganizationID string        `gorm:"type:varchar(36);not null;index" json:"organization_id"`
	CreatedAt      time.Time     `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`

	// Relations
	Recruiter    User         `gorm:"foreignKey:RecruiterID" json:"-"`
	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
}
