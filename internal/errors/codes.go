// Package errors defines the coded errors returned by the resolution
// facade. A span that simply does not resolve is not an error inside the
// engine; the facade turns it into NO_MATCH only where callers ask for a
// single answer.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode classifies a facade error.
type ErrorCode string

const (
	// ErrCodeNoMatch means no resolver accepted the span.
	ErrCodeNoMatch ErrorCode = "NO_MATCH"
	// ErrCodeMalformedInput means the span or its kind is unusable.
	ErrCodeMalformedInput ErrorCode = "MALFORMED_INPUT"
	// ErrCodeInvariantViolation means a resolver produced an inconsistent
	// result.
	ErrCodeInvariantViolation ErrorCode = "INVARIANT_VIOLATION"
	// ErrCodeInvalidArgument indicates invalid input parameters.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeContextCanceled indicates the operation was canceled.
	ErrCodeContextCanceled ErrorCode = "CONTEXT_CANCELED"
)

// ResolveError is a coded error with optional details.
type ResolveError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *ResolveError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *ResolveError) Unwrap() error {
	return e.Cause
}

// WithContext adds a detail to the error.
func (e *ResolveError) WithContext(key string, value any) *ResolveError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// NoMatch reports a span no resolver accepted.
func NoMatch(text string) *ResolveError {
	return &ResolveError{
		Code:    ErrCodeNoMatch,
		Message: fmt.Sprintf("no time expression in %q", text),
	}
}

// MalformedInput reports an unusable span.
func MalformedInput(msg string) *ResolveError {
	return &ResolveError{Code: ErrCodeMalformedInput, Message: msg}
}

// InvariantViolation reports an inconsistent resolver result.
func InvariantViolation(msg string) *ResolveError {
	return &ResolveError{Code: ErrCodeInvariantViolation, Message: msg}
}

// InvalidArgument creates an invalid argument error.
func InvalidArgument(msg string) *ResolveError {
	return &ResolveError{Code: ErrCodeInvalidArgument, Message: msg}
}

// ContextCanceled creates a context canceled error.
func ContextCanceled(cause error) *ResolveError {
	return &ResolveError{Code: ErrCodeContextCanceled, Message: "operation canceled", Cause: cause}
}

// Wrap wraps an existing error with a code.
func Wrap(cause error, code ErrorCode, msg string) *ResolveError {
	return &ResolveError{Code: code, Message: msg, Cause: cause}
}

// IsCode reports whether err, or anything it wraps, carries code.
func IsCode(err error, code ErrorCode) bool {
	var re *ResolveError
	if stderrors.As(err, &re) {
		return re.Code == code
	}
	return false
}

// CodeOf extracts the code of err, or def when err is not coded.
func CodeOf(err error, def ErrorCode) ErrorCode {
	var re *ResolveError
	if stderrors.As(err, &re) {
		return re.Code
	}
	return def
}
