package email

import "errors"

var (
	// ErrInvalidParams indicates the send parameters failed validation.
	ErrInvalidParams = errors.New("email.invalid_params")
	// ErrInvalidConfig indicates a sender could not be constructed from config.
	ErrInvalidConfig = errors.New("email.invalid_config")
	// ErrSendFailed wraps transport-level delivery failures.
	ErrSendFailed = errors.New("email.send_failed")
)
