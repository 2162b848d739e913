package errdef

import (
	"errors"
	"fmt"
)

func NewBadRequest(format string, a ...any) error {
	return badRequest{fmt.Errorf(format, a...)}
}

type badRequest struct{ error }

func IsBadRequest(err error) bool {
	var e badRequest
	return errors.As(err, &e)
}

// NewNotFound creates an error representing a resource that could not be found.
func NewNotFound(format string, a ...any) error {
	return notFound{fmt.Errorf(format, a...)}
}

type notFound struct{ error }

// IsNotFound returns true if err is an error representing a resource that could not be found and false otherwise.
func IsNotFound(err error) bool {
	var e notFound
	return errors.As(err, &e)
}

// NewConflict creates an error representing a conflicting state.
func NewConflict(format string, a ...any) error {
	return conflict{fmt.Errorf(format, a...)}
}

type conflict struct{ error }

// IsConflict returns true if err is an error representing a conflict and false otherwise.
func IsConflict(err error) bool {
	var e conflict
	return errors.As(err, &e)
}

func NewUnsupportedMediaType(format string, a ...any) error {
	return unsupportedMediaType{fmt.Errorf(format, a...)}
}

type unsupportedMediaType struct{ error }

func IsUnsupportedMediaType(err error) bool {
	var e unsupportedMediaType
	return errors.As(err, &e)
}

// NewUnavailable creates an error representing a feature or upstream that cannot serve the
// request right now, e.g. an integration without credentials.
func NewUnavailable(format string, a ...any) error {
	return unavailable{fmt.Errorf(format, a...)}
}

type unavailable struct{ error }

// IsUnavailable returns true if err is an error representing an unavailable feature and false otherwise.
func IsUnavailable(err error) bool {
	var e unavailable
	return errors.As(err, &e)
}

// NewBadGateway creates an error representing a failing upstream service.
func NewBadGateway(format string, a ...any) error {
	return badGateway{fmt.Errorf(format, a...)}
}

type badGateway struct{ error }

func IsBadGateway(err error) bool {
	var e badGateway
	return errors.As(err, &e)
}

func NewTooManyRequests(format string, a ...any) error {
	return tooManyRequests{fmt.Errorf(format, a...)}
}

type tooManyRequests struct{ error }

func IsTooManyRequests(err error) bool {
	var e tooManyRequests
	return errors.As(err, &e)
}

// FieldError describes a single payload field that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewValidation creates an error representing a payload that failed validation. The offending
// fields are retrievable using ValidationFields.
func NewValidation(fields []FieldError, format string, a ...any) error {
	return validation{error: fmt.Errorf(format, a...), fields: fields}
}

type validation struct {
	error
	fields []FieldError
}

// IsValidation returns true if err is an error representing a payload that failed validation
// and false otherwise.
func IsValidation(err error) bool {
	var e validation
	return errors.As(err, &e)
}

// ValidationFields returns the fields attached to a validation error, or nil if err is not one.
func ValidationFields(err error) []FieldError {
	var e validation
	if errors.As(err, &e) {
		return e.fields
	}
	return nil
}
