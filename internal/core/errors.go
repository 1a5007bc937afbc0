package core

import "errors"

var (
	// ErrNotFound indicates the requested resource does not exist or has been tombstoned.
	ErrNotFound = errors.New("not found")
	// ErrDeclined indicates a well-formed request that violates a business rule.
	ErrDeclined = errors.New("declined")
	// ErrConflict indicates an explicit order assignment collides with another active lesson.
	ErrConflict = errors.New("conflict")
	// ErrValidation represents user input validation failures.
	ErrValidation = errors.New("validation error")
	// ErrStoreFailure indicates the entity store could not complete a read or commit.
	ErrStoreFailure = errors.New("store failure")
	// ErrInvalidPageToken indicates pagination tokens are malformed.
	ErrInvalidPageToken = errors.New("invalid page token")
)
