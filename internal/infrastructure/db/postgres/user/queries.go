package user

const (
	SelectUsers = `
		SELECT id, name, email, phone, position, birth_date, message, created_at, updated_at
		FROM users
		ORDER BY created_at DESC, id DESC
	`
	SelectUserByID = `
		SELECT id, name, email, phone, position, birth_date, message, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	SelectUserByEmail = `
		SELECT id, name, email, phone, position, birth_date, message, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	InsertUser = `
		INSERT INTO users (name, email, phone, position, birth_date, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING
		  id, name, email, phone, position, birth_date, message, created_at, updated_at
	`
	UpdateUserByID = `
		UPDATE users
		SET name = COALESCE($1, name),
		    email = COALESCE($2, email),
		    phone = COALESCE($3, phone),
		    position = COALESCE($4, position),
		    birth_date = COALESCE($5, birth_date),
		    message = COALESCE($6, message),
		    updated_at = now()
		WHERE id = $7
		RETURNING
		  id, name, email, phone, position, birth_date, message, created_at, updated_at
	`
	DeleteUserByID = `
		DELETE FROM users
		WHERE id = $1
		RETURNING
		  id, name, email, phone, position, birth_date, message, created_at, updated_at
	`
)
