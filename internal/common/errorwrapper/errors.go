package errorwrapper

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is matched by errors.Is for every ValidationError
// and for failed config validation.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ContextError prefixes an underlying error with what was being done.
type ContextError struct {
	Context string
	Err     error
}

func (e *ContextError) Error() string {
	if e.Err == nil {
		return e.Context + ": <nil>"
	}
	return e.Context + ": " + e.Err.Error()
}

func (e *ContextError) Unwrap() error {
	return e.Err
}

// WrapError records context around err. A nil err still yields an error.
func WrapError(err error, context string) error {
	return &ContextError{Context: context, Err: err}
}

// WrapErrorf is WrapError with a formatted context.
func WrapErrorf(err error, format string, args ...any) error {
	return &ContextError{Context: fmt.Sprintf(format, args...), Err: err}
}

// ValidationError rejects one config or option value.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// NewValidationError creates a ValidationError
func NewValidationError(field string, value any, reason string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}
