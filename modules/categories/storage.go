package categories

import (
	"context"

	"github.com/google/uuid"
)

// Storage persists categories.
type Storage interface {
	// Create stores a new category. The name is expected lowercased.
	// Returns ErrAlreadyExists when the user already has the name.
	Create(ctx context.Context, category *Category) error

	// ListByUser returns the user's categories ordered by creation time.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Category, error)

	// Rename changes the name of the category matched by id and owner.
	// Returns ErrCategoryNotFound when absent, ErrAlreadyExists on a name
	// collision.
	Rename(ctx context.Context, id, userID uuid.UUID, name string) error

	// Delete removes the category matched by id and owner. Deleting an
	// absent category is not an error.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
