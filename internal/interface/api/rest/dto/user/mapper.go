package user

import (
	"strings"
	"time"

	"contact-manager-api/internal/domain/user"
)

const birthDateLayout = "2006-01-02"

func ToResponseUser(uDomain user.User) User {
	var u = User{
		ID:        uint64(uDomain.ID),
		Name:      uDomain.Name,
		Email:     uDomain.Email,
		Phone:     uDomain.Phone,
		Position:  uDomain.Position,
		BirthDate: uDomain.BirthDate.Format(birthDateLayout),
		Message:   uDomain.Message,
		CreatedAt: uDomain.CreatedAt,
		UpdatedAt: uDomain.UpdatedAt,
	}

	return u
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

// ToDomainUser assumes req already passed validation, so the birth date
// parses. Email is stored in its canonical lowercased form.
func ToDomainUser(req CreateRequest) user.User {
	d, _ := time.Parse(birthDateLayout, strings.TrimSpace(req.BirthDate))

	var u = user.User{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:     strings.TrimSpace(req.Phone),
		Position:  strings.TrimSpace(req.Position),
		BirthDate: d,
		Message:   strings.TrimSpace(req.Message),
	}

	return u
}

// ToDomainPatch carries over only the supplied fields, normalized the same
// way as on create.
func ToDomainPatch(req UpdateRequest) user.Patch {
	var p user.Patch

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		p.Name = &name
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		p.Email = &email
	}
	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		p.Phone = &phone
	}
	if req.Position != nil {
		position := strings.TrimSpace(*req.Position)
		p.Position = &position
	}
	if req.BirthDate != nil {
		d, _ := time.Parse(birthDateLayout, strings.TrimSpace(*req.BirthDate))
		p.BirthDate = &d
	}
	if req.Message != nil {
		message := strings.TrimSpace(*req.Message)
		p.Message = &message
	}

	return p
}
