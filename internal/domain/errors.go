package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrInvalidFilter = errors.New("invalid filter")
	ErrInvalidID     = errors.New("invalid id")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
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

// FilterError reports a list query parameter that could not be decoded.
type FilterError struct {
	Param  string
	Reason string
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("filter %s: %s", e.Param, e.Reason)
}

func (e *FilterError) Unwrap() error { return ErrInvalidFilter }

// NewFilterError creates a FilterError for a single query parameter.
func NewFilterError(param, reason string) *FilterError {
	return &FilterError{Param: param, Reason: reason}
}

// IDError reports a malformed identifier in a filter, path or body.
type IDError struct {
	Field string
	Value string
}

func (e *IDError) Error() string {
	return fmt.Sprintf("invalid id %q in %s", e.Value, e.Field)
}

func (e *IDError) Unwrap() error { return ErrInvalidID }
