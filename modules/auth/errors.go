package auth

import "errors"

var (
	// ErrUserNotFound indicates no account exists for the lookup key.
	ErrUserNotFound = errors.New("auth.user_not_found")
	// ErrEmailAlreadyExists indicates a sign-up with a registered email.
	ErrEmailAlreadyExists = errors.New("auth.email_already_exists")
	// ErrInvalidCredentials is the single failure for any sign-in problem,
	// so responses never reveal whether the email is registered.
	ErrInvalidCredentials = errors.New("auth.invalid_credentials")
	// ErrTokenInvalid indicates a malformed or tampered reset token.
	ErrTokenInvalid = errors.New("auth.token_invalid")
	// ErrTokenExpired indicates a reset token past its TTL.
	ErrTokenExpired = errors.New("auth.token_expired")
	// ErrStorageFailed wraps backend failures that are not domain errors.
	ErrStorageFailed = errors.New("auth.storage_failed")
)
