package services

import "github.com/yukikurage/hiring-platform-api/internal/models"

// Principal is the caller of a service operation, loaded from the store on every request.
type Principal struct {
	UserID         string
	Email          string
	Role           models.Role
	OrganizationID *string
}

// PrincipalFromUser builds a Principal from the live user record.
func PrincipalFromUser(u *models.User) Principal {
	return Principal{
		UserID:         u.ID,
		Email:          u.Email,
		Role:           u.Role,
		OrganizationID: u.OrganizationID,
	}
}

func (p Principal) HasRole(roles ...models.Role) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

func (p Principal) InOrganization(orgID string) bool {
	return p.OrganizationID != nil && *p.OrganizationID == orgID
}

func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

// ManagesJob reports whether p is the job's recruiter and still a recruiter
// member of the job's organization.
func (p Principal) ManagesJob(job *models.Job) bool {
	return p.Role == models.RoleRecruiter &&
		p.InOrganization(job.OrganizationID) &&
		job.RecruiterID == p.UserID
}
