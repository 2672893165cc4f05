package share

import "errors"

var (
	// ErrInvalidToken indicates a malformed or tampered share token.
	ErrInvalidToken = errors.New("share.invalid_token")
	// ErrQuoteNotFound indicates the shared quote no longer exists, or the
	// caller tried to share a quote they do not own.
	ErrQuoteNotFound = errors.New("share.quote_not_found")
)
