package user

import (
	"context"
)

type Repository interface {
	FetchUsers(ctx context.Context) (Users, error)
	FetchUserByID(ctx context.Context, id ID) (*User, error)
	FetchUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, req User) (*User, error)
	UpdateUser(ctx context.Context, id ID, patch Patch) (*User, error)
	DeleteUser(ctx context.Context, id ID) (*User, error)
}
