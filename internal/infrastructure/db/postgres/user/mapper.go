package user

import (
	domain "contact-manager-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		ID:        domain.ID(model.ID),
		Name:      model.Name,
		Email:     model.Email,
		Phone:     model.Phone,
		Position:  model.Position,
		BirthDate: model.BirthDate,
		Message:   model.Message,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return u
}

func fromDBModels(models *Users) domain.Users {
	us := make(domain.Users, len(*models))
	for idx, u := range *models {
		us[idx] = fromDBModel(u)
	}

	return us
}
