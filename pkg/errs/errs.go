package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnauthorized is returned for any HTTP 401 from the backend. It is
	// the one signal that forces a logout, regardless of which call saw it.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentialFormat is returned when a bearer credential cannot
	// be decoded into usable claims (malformed token or missing subject id).
	// Callers treat it as "not authenticated", never as a crash.
	ErrInvalidCredentialFormat = errors.New("invalid credential format")
)

// NewFieldError creates a validation failure for one field.
func NewFieldError(field string, messages ...string) *FieldError {
	return &FieldError{Field: field, Messages: messages}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, strings.Join(e.Messages, ", "))
}

// NewValidationErrors creates a collector, optionally pre-seeded.
func NewValidationErrors(errs ...*FieldError) *ValidationErrors {
	return &ValidationErrors{errors: errs}
}

func (c *ValidationErrors) Add(err *FieldError) *ValidationErrors {
	c.errors = append(c.errors, err)
	return c
}

func (c *ValidationErrors) HasError() bool {
	return len(c.errors) > 0
}

func (c *ValidationErrors) Errors() []*FieldError {
	return c.errors
}

func (c *ValidationErrors) Error() string {
	var msgs []string
	for _, err := range c.errors {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, ", ")
}

// NewTransportError wraps a network-level failure seen during op.
func NewTransportError(op string, cause error) *TransportError {
	return &TransportError{Op: op, Cause: cause}
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure during %s: %v", e.Op, e.Cause)
}

func (e *TransportError) Unwrap() error { return e.Cause }

// NewGatewayError creates a verification-verdict failure.
func NewGatewayError(code, message string) *GatewayError {
	return &GatewayError{Code: code, Message: message}
}

func (e *GatewayError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("payment verification failed: %s", e.Message)
	}
	return "payment verification failed"
}

// NewRemoteError creates a generic backend rejection.
func NewRemoteError(code, message string) *RemoteError {
	return &RemoteError{Code: code, Message: message}
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request rejected by backend (code %q)", e.Code)
}

// IsTransport reports whether err is (or wraps) a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
