package session

import "errors"

var (
	// ErrSessionNotFound indicates no session was found for the identifier.
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrSessionExpired indicates the session's expiry timestamp has passed.
	ErrSessionExpired = errors.New("session.expired")

	// ErrInvalidSession indicates a nil or incomplete session record.
	ErrInvalidSession = errors.New("session.invalid")

	// ErrInvalidSessionID indicates a client-supplied identifier that does
	// not match the issued token shape.
	ErrInvalidSessionID = errors.New("session.invalid_id")

	// ErrNotAuthenticated is the single "no usable session" answer the
	// manager gives callers, whatever the underlying cause.
	ErrNotAuthenticated = errors.New("session.not_authenticated")

	// ErrCreateFailed indicates the session could not be stored or its
	// cookie could not be written.
	ErrCreateFailed = errors.New("session.create_failed")
)
