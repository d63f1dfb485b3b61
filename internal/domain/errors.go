package domain

import (
	"errors"
	"fmt"
)

// ErrMissingField signals that a required document field is not set.
var ErrMissingField = errors.New("missing required field")

// MissingFieldError wraps ErrMissingField with the name of the offending field.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %q", ErrMissingField.Error(), e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// NewMissingField creates a missing field error.
func NewMissingField(field string) error {
	return &MissingFieldError{Field: field}
}
