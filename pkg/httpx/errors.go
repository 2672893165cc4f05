package httpx

import "errors"

var (
	// ErrUnsupportedMedia indicates a missing or non-JSON content type.
	ErrUnsupportedMedia = errors.New("httpx.unsupported_media_type")
	// ErrInvalidBody indicates an unreadable or malformed request body.
	ErrInvalidBody = errors.New("httpx.invalid_body")
	// ErrBodyTooLarge indicates the request body exceeded MaxJSONBodySize.
	ErrBodyTooLarge = errors.New("httpx.body_too_large")
)
