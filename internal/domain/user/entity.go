package user

import (
	"time"
)

type (
	ID uint64

	// User is a single contact-form record. BirthDate carries a date only,
	// the time part is always midnight UTC.
	User struct {
		ID        ID
		Name      string
		Email     string
		Phone     string
		Position  string
		BirthDate time.Time
		Message   string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User

	// Patch carries a partial update: nil fields are left untouched.
	Patch struct {
		Name      *string
		Email     *string
		Phone     *string
		Position  *string
		BirthDate *time.Time
		Message   *string
	}
)
