package course

import (
	"context"
	"errors"
)

// ErrInvalidID is returned when an id cannot be parsed by the backend
var ErrInvalidID = errors.New("invalid course id")

// Repository persists courses. Update and Delete on an unknown id succeed
// without effect.
type Repository interface {
	// List returns every course, or only those whose category equals the
	// filter when it is non-empty. Store order is preserved.
	List(ctx context.Context, category string) ([]Course, error)
	// Create inserts c and sets c.ID
	Create(ctx context.Context, c *Course) error
	Update(ctx context.Context, id string, patch Patch) error
	Delete(ctx context.Context, id string) error
}
