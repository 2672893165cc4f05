package categories

import "errors"

var (
	// ErrCategoryNotFound indicates no category exists for the id, or it
	// belongs to another user.
	ErrCategoryNotFound = errors.New("categories.not_found")
	// ErrAlreadyExists indicates the user already has a category with the
	// normalized name.
	ErrAlreadyExists = errors.New("categories.already_exists")
	// ErrStorageFailed wraps backend failures that are not domain errors.
	ErrStorageFailed = errors.New("categories.storage_failed")
)
