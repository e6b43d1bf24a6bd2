package store

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the Store's operations. The API layer maps them
// onto HTTP statuses; everything else wraps them with entity context.
var (
	// ErrNotFound: the unit, run, or connection does not exist (or is hidden
	// from the requesting user, which callers report the same way).
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists: a unique constraint fired — typically the
	// (unit_id, event_id) index rejecting a redelivered event's second run.
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput: the write shape failed validation before touching
	// the database.
	ErrInvalidInput = errors.New("invalid input")

	// ErrWaitQueue: the run row was persisted but its wait-queue entry could
	// not be reconciled. The caller must revert the run out of waiting rather
	// than silently lose the timer.
	ErrWaitQueue = errors.New("wait queue update failed")
)

// ValidationError reports which field of a write shape was rejected.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
