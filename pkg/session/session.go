package session

import (
	"time"

	"github.com/google/uuid"
)

// Session represents one authenticated browser context. The ID doubles as
// the client-visible cookie value; it carries no meaning beyond being a
// lookup key.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// New creates a session for the given user with a fresh random identifier.
func New(userID uuid.UUID, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.New(),
		UserID:    userID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
}

// IsExpired returns true if the session's expiry timestamp has passed.
func (s *Session) IsExpired() bool {
	return s != nil && time.Now().After(s.ExpiresAt)
}

// ParseID validates a client-supplied session identifier. Only the UUID v4
// shape issued by New is accepted; anything else is rejected before any
// store lookup happens.
func ParseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrInvalidSessionID
	}
	if id.Version() != 4 || id.Variant() != uuid.RFC4122 {
		return uuid.Nil, ErrInvalidSessionID
	}
	return id, nil
}
