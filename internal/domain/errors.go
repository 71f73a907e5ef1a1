package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrValidation         = errors.New("validation error")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("concurrent modification")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrUnknownTag         = errors.New("unknown tag")
)

// Entity-specific errors. Each one still matches its sentinel via errors.Is.
var (
	ErrQuestionNotFound = fmt.Errorf("question %w", ErrNotFound)
	ErrAnswerNotFound   = fmt.Errorf("answer %w", ErrNotFound)
	ErrTagNotFound      = fmt.Errorf("tag %w", ErrNotFound)
	ErrDuplicateSlug    = fmt.Errorf("tag slug %w with different attributes", ErrAlreadyExists)
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// UnknownTagError reports a tag slug that is absent from the registry.
type UnknownTagError struct {
	Slug string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("unknown tag %q", e.Slug)
}

func (e *UnknownTagError) Unwrap() error { return ErrUnknownTag }
