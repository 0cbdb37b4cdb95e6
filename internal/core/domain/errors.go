package domain

import (
	"errors"
	"fmt"
)

var ErrUnauthenticated = errors.New("authentication required")
var ErrForbidden = errors.New("access forbidden")
var ErrSessionNotFound = errors.New("session not found")

// ErrValidation is the base error for malformed caller input. Use
// NewValidationError to attach the offending field.
var ErrValidation = errors.New("validation failed")

// NewValidationError wraps ErrValidation with the field at fault so the
// transport layer can surface it.
func NewValidationError(field, msg string) error {
	return fmt.Errorf("%w: %s %s", ErrValidation, field, msg)
}
