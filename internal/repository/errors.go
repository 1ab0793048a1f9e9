package repository

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("repository: duplicate key")
	// ErrAlreadyInOrganization is returned when a user is already linked to an organization.
	ErrAlreadyInOrganization = errors.New("repository: user already belongs to an organization")
	// ErrCreateOrganization is returned when inserting the organization fails inside CreateWithOwner.
	ErrCreateOrganization = errors.New("repository: create organization failed")
	// ErrLinkOrganizationOwner is returned when linking the owner fails inside CreateWithOwner.
	// The organization insert has been rolled back.
	ErrLinkOrganizationOwner = errors.New("repository: link organization owner failed")
)

// translate maps GORM errors onto repository errors and wraps anything else.
func translate(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return errors.Wrap(err, op)
	}
}
