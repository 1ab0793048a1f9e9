package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// newID assigns a UUID when the caller did not pick one.
func newID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// BeforeCreate hooks

func (u *User) BeforeCreate(tx *gorm.DB) error {
	newID(&u.ID)
	return nil
}

func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	newID(&o.ID)
	return nil
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	newID(&j.ID)
	return nil
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	newID(&a.ID)
	return nil
}
