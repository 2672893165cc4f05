package session

import (
	"context"

	"github.com/google/uuid"
)

// Store defines the interface for session persistence.
//
// Implementations enforce the single-active-session policy: Create removes
// any prior sessions for the same user before storing the new one, atomically
// where the backend allows it.
type Store interface {
	// Create stores a new session, replacing prior sessions of the user.
	Create(ctx context.Context, session *Session) error

	// Get retrieves a session by identifier. Returns ErrSessionNotFound
	// when absent; expiry is the caller's concern.
	Get(ctx context.Context, id uuid.UUID) (*Session, error)

	// Delete removes a session by identifier. Deleting an absent session
	// is not an error.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUserID removes all sessions of a user.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteExpired removes all sessions whose expiry has passed.
	DeleteExpired(ctx context.Context) error
}
