package assessment

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced assessment does not exist.
// An empty history is not an error.
var ErrNotFound = errors.New("assessment not found")

// ValidationError reports an input that failed required-field, type or
// enum constraints. It is detected before any computation or write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
