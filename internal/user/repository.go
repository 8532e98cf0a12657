package user

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("user not found")

// Repository persists user records. Email uniqueness is enforced by callers,
// not by implementations.
type Repository interface {
	// GetByEmail returns ErrNotFound when no record matches
	GetByEmail(ctx context.Context, email string) (*User, error)
	// Create inserts u and sets u.ID
	Create(ctx context.Context, u *User) error
}
