package user

type (
	// CreateRequest is the POST /users payload; every field is required.
	CreateRequest struct {
		Name      string `json:"name"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		Position  string `json:"position"`
		BirthDate string `json:"birthDate"`
		Message   string `json:"message"`
	}

	// UpdateRequest is the PUT /users/:user_id payload; absent fields stay nil
	// and are left untouched.
	UpdateRequest struct {
		Name      *string `json:"name"`
		Email     *string `json:"email"`
		Phone     *string `json:"phone"`
		Position  *string `json:"position"`
		BirthDate *string `json:"birthDate"`
		Message   *string `json:"message"`
	}
)
