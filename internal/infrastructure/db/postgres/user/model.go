package user

import (
	"time"
)

type (
	User struct {
		ID        uint64
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
)
