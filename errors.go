package docmanager

import "github.com/kailas-cloud/docmanager/internal/domain"

// ErrMissingField is returned by Save when a required field is not set.
// Use errors.Is() to check and errors.As() with *MissingFieldError for the field name.
var ErrMissingField = domain.ErrMissingField

// MissingFieldError names the field that failed validation.
type MissingFieldError = domain.MissingFieldError
