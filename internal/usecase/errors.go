package usecase

import (
	"errors"
	"fmt"

	"club-booking/pkg/utils"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrConflict          = errors.New("conflict")
	ErrStaleAvailability = errors.New("availability is out of date, reload the seat map")
	ErrSeatUnavailable   = errors.New("seat is not available")
)

// ValidationError maps field names to messages, like the form validators in the browser.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, utils.FormatValidationErrors(e.Fields))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func newValidationError(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

func fieldError(field, message string) error {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// validate runs the struct validator and wraps the field map.
func validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return newValidationError(errs)
	}
	return nil
}
