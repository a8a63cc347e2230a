// Package apperr defines the sentinel errors shared across the scheduling,
// store and handler layers. Callers should use errors.Is to match the
// sentinels and errors.As to extract validation detail.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized means the request carried no usable credential.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden means the credential is valid but lacks the capability.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound means a referenced appointment or user does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict means the requested slot overlaps an existing booking,
	// whether detected by the pre-check or by the store's own constraint.
	ErrConflict = errors.New("slot conflict")

	// ErrStore wraps persistence failures. Never retried here.
	ErrStore = errors.New("store error")
)

// ValidationError carries field-level detail for malformed input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validation builds a ValidationError for a field.
func Validation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Storef wraps an underlying persistence failure under ErrStore.
func Storef(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStore, op, err)
}
