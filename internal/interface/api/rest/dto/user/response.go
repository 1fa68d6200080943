package user

import (
	"time"
)

type (
	User struct {
		ID        uint64    `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Phone     string    `json:"phone"`
		Position  string    `json:"position"`
		BirthDate string    `json:"birthDate"`
		Message   string    `json:"message"`
		CreatedAt time.Time `json:"createdAt"`
		UpdatedAt time.Time `json:"updatedAt"`
	}
	Users        []User
	ResponseData struct {
		Data Users `json:"data"`
	}
)
