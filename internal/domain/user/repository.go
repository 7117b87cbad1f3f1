package user

import (
	"context"
)

type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	// List returns every user ordered by creation time.
	List(ctx context.Context) ([]User, error)
	// LockForUpdate serializes writes for one user until the surrounding
	// transaction ends. It returns ErrUserNotFound for unknown ids.
	LockForUpdate(ctx context.Context, id string) error
}
