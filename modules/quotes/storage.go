package quotes

import (
	"context"

	"github.com/google/uuid"
)

// Storage persists quotes.
type Storage interface {
	// Create stores a new quote.
	Create(ctx context.Context, quote *Quote) error

	// GetByID returns any user's quote; share resolution uses it. Returns
	// ErrQuoteNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*Quote, error)

	// ListByUser returns the user's quotes newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Quote, error)

	// Update rewrites text, author, and category of the quote matched by
	// both id and owner. Returns ErrQuoteNotFound when no such quote.
	Update(ctx context.Context, quote *Quote) error

	// Delete removes the quote matched by id and owner. Deleting an absent
	// quote is not an error.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
