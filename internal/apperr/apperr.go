// Package apperr defines the failure kinds shared by every portal module.
// Domain sentinels wrap one of these so callers can classify with errors.Is
// without depending on the module that produced the error.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation indicates missing or malformed required input.
	ErrValidation = errors.New("validation error")
	// ErrNotFound indicates a referenced id does not resolve in its collection.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates the operation would violate a uniqueness invariant.
	ErrConflict = errors.New("conflict")
	// ErrAuthentication indicates a login credential mismatch.
	ErrAuthentication = errors.New("authentication failed")
)

// Validation wraps ErrValidation with a caller-facing message.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrValidation)
}

// NotFound wraps ErrNotFound with a caller-facing message.
func NotFound(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

// Conflict wraps ErrConflict with a caller-facing message.
func Conflict(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrConflict)
}
