// Package derrors defines the error taxonomy shared by every domain service.
// Services return coded errors; the transport layer applies one consistent
// mapping from code to HTTP status.
package derrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies a failure class.
type Code string

const (
	// CodeInvalidInput marks a caller contract violation: an invalid or
	// out-of-range parameter. Rejected before any generation work begins,
	// never retried.
	CodeInvalidInput Code = "invalid_input"

	// CodeNotFound marks a missing resource.
	CodeNotFound Code = "not_found"

	// CodeConfiguration marks a capability requested with no generator
	// registered. It indicates a startup ordering bug, not a transient
	// condition.
	CodeConfiguration Code = "configuration_error"

	// CodeProvider marks an unexpected internal failure during content
	// synthesis, enriched at the generator boundary with the domain and
	// operation name.
	CodeProvider Code = "provider_error"

	// CodeInternal marks any other unexpected failure.
	CodeInternal Code = "internal_error"
)

// Error is a coded domain error.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New constructs a coded error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf constructs a coded error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying cause. A nil cause
// returns nil so call sites can wrap unconditionally.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Err: err}
}

// WrapProvider converts an unexpected synthesis failure into the uniform
// provider-error kind, recording which domain operation failed. Coded errors
// pass through untouched so contract violations keep their status mapping.
func WrapProvider(domain, operation string, err error) error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		return err
	}
	return &Error{
		Code:    CodeProvider,
		Message: fmt.Sprintf("%s: %s failed", domain, operation),
		Err:     err,
	}
}

// CodeOf extracts the code from an error chain, defaulting to CodeInternal.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps a code to the HTTP status the transport layer returns.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConfiguration, CodeProvider, CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
