package models

import "time"

type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "APPLIED"
	ApplicationStatusScreening   ApplicationStatus = "SCREENING"
	ApplicationStatusInterview   ApplicationStatus = "INTERVIEW"
	ApplicationStatusShortlisted ApplicationStatus = "SHORTLISTED"
	ApplicationStatusOffer       ApplicationStatus = "OFFER"
	ApplicationStatusHired       ApplicationStatus = "HIRED"
	ApplicationStatusRejected    ApplicationStatus = "REJECTED"
)

// ApplicationStatuses lists every stage in pipeline order.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusApplied,
	ApplicationStatusScreening,
	ApplicationStatusInterview,
	ApplicationStatusShortlisted,
	ApplicationStatusOffer,
	ApplicationStatusHired,
	ApplicationStatusRejected,
}

// (job_id, candidate_id) is unique so concurrent applies cannot both insert.
type Application struct {
	ID          string            `gorm:"type:varchar(36);primarykey" json:"id"`
	JobID       string            `gorm:"type:varchar(36);not null;uniqueIndex:idx_applications_job_candidate,priority:1" json:"job_id"`
	CandidateID string            `gorm:"type:varchar(36);not null;uniqueIndex:idx_applications_job_candidate,priority:2;index" json:"candidate_id"`
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:'APPLIED';index" json:"status"`
	CreatedAt   time.Time         `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`

	// Relations
	Job       Job  `gorm:"foreignKey:JobID" json:"-"`
	Candidate User `gorm:"foreignKey:CandidateID" json:"-"`
}
