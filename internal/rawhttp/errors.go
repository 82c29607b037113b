package rawhttp

import (
	"errors"
	"fmt"
)

// ErrorKind tags a RequestError with one of the three failure classes.
type ErrorKind int

const (
	// KindInvalidURL means the URL did not parse or had no host
	KindInvalidURL ErrorKind = iota
	// KindConnection covers connect, write and read failures
	KindConnection
	// KindSerialization means the JSON body could not be encoded
	KindSerialization
)

// String returns the human-readable prefix of the kind
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidURL:
		return "invalid URL"
	case KindConnection:
		return "connection error"
	case KindSerialization:
		return "serialization error"
	default:
		return "unknown error"
	}
}

// RequestError is returned by Client.Request.
type RequestError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// NewInvalidURLError creates a RequestError of kind KindInvalidURL.
func NewInvalidURLError(message string, err error) error {
	return &RequestError{Kind: KindInvalidURL, Message: message, Err: err}
}

// NewConnectionError creates a RequestError of kind KindConnection.
func NewConnectionError(err error) error {
	return &RequestError{Kind: KindConnection, Message: err.Error(), Err: err}
}

// NewSerializationError creates a RequestError of kind KindSerialization.
func NewSerializationError(err error) error {
	return &RequestError{Kind: KindSerialization, Message: err.Error(), Err: err}
}

func hasKind(err error, kind ErrorKind) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.Kind == kind
}

// IsInvalidURL reports whether err is an invalid URL error
func IsInvalidURL(err error) bool { return hasKind(err, KindInvalidURL) }

// IsConnectionError reports whether err is a connection error
func IsConnectionError(err error) bool { return hasKind(err, KindConnection) }

// IsSerializationError reports whether err is a serialization error
func IsSerializationError(err error) bool { return hasKind(err, KindSerialization) }

// ValidationError represents an invalid client setting.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s' (value: %v): %s", e.Field, e.Value, e.Message)
}
