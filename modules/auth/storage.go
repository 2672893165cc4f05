package auth

import (
	"context"

	"github.com/google/uuid"
)

// Storage persists user accounts.
type Storage interface {
	// CreateUser stores a new user. Returns ErrEmailAlreadyExists when the
	// email is taken.
	CreateUser(ctx context.Context, user *User) error

	// GetUserByID returns ErrUserNotFound when absent.
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)

	// GetUserByEmail returns ErrUserNotFound when absent. The email is
	// expected in normalized form.
	GetUserByEmail(ctx context.Context, email string) (*User, error)

	// UpdatePasswordHash replaces the stored credential for the user.
	UpdatePasswordHash(ctx context.Context, userID uuid.UUID, hash []byte) error
}
