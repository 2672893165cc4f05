package quotes

import "errors"

var (
	// ErrQuoteNotFound indicates no quote exists for the id, or it belongs
	// to another user.
	ErrQuoteNotFound = errors.New("quotes.not_found")
	// ErrStorageFailed wraps backend failures that are not domain errors.
	ErrStorageFailed = errors.New("quotes.storage_failed")
)
