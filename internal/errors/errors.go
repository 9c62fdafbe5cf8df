// Package errors provides the typed failures surfaced by an index run.
//
// Every failure carries a Kind. Callers branch on the kind with IsKind or
// errors.Is against a sentinel built by one of the constructors.
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind string

const (
	// KindMissingCapability means an external backend (PDF reader, office
	// converter) is not available. Raised before extraction starts.
	KindMissingCapability Kind = "missing_capability"
	// KindUnsupportedInput means the input cannot be opened or has an
	// unrecognized type. No partial index is produced.
	KindUnsupportedInput Kind = "unsupported_input"
	// KindIOFailure means writing the rendered index failed. The rendered
	// output is still in memory and the write can be retried.
	KindIOFailure Kind = "io_failure"
	// KindConfig means the configuration file or flags are invalid.
	KindConfig Kind = "config"
)

// Error is the structured failure type.
type Error struct {
	Kind    Kind
	Message string
	Cause   error

	// Suggestion is an optional hint for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// WithSuggestion sets an actionable hint and returns the error.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// New creates an Error of the given kind.
func New(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// MissingCapability reports an unavailable backend.
func MissingCapability(message string, cause error) *Error {
	return New(KindMissingCapability, message, cause)
}

// UnsupportedInput reports an input that cannot be read.
func UnsupportedInput(message string, cause error) *Error {
	return New(KindUnsupportedInput, message, cause)
}

// IOFailure reports a failed write of the rendered output.
func IOFailure(message string, cause error) *Error {
	return New(KindIOFailure, message, cause)
}

// ConfigError reports invalid configuration.
func ConfigError(message string, cause error) *Error {
	return New(KindConfig, message, cause)
}

// IsKind reports whether err or anything it wraps is an *Error of kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the kind of the first *Error in err's chain, or "".
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// GetSuggestion returns the suggestion of the first *Error in err's chain.
func GetSuggestion(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Suggestion
	}
	return ""
}
