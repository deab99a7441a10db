package sdk

import (
	"errors"
	"fmt"
)

// Sentinel errors for common SDK error conditions.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrInvalidUnit indicates a unit string matched no known alias, or a
	// unit value has no entry in the scale table.
	ErrInvalidUnit = errors.New("invalid unit")

	// ErrUnknownEncoding indicates an integer encoding maps to no known unit.
	ErrUnknownEncoding = errors.New("unit encoding not understood")

	// ErrMissingEncoding indicates a unit value has no integer encoding.
	ErrMissingEncoding = errors.New("no encoding exists for unit")
)

// Error kinds categorize errors by their type.
const (
	// KindValidation represents errors related to input validation.
	KindValidation = "validation"

	// KindNotFound represents errors where a lookup found no match.
	KindNotFound = "not_found"

	// KindEncoding represents errors in the compact integer encoding layer.
	KindEncoding = "encoding"

	// KindInternal represents internal SDK errors.
	KindInternal = "internal"
)

// Error is a structured error type that wraps underlying errors with
// additional context about the operation that failed and the category of
// error.
//
// Error implements the error interface and supports error unwrapping,
// making it compatible with errors.Is() and errors.As().
//
// Example usage:
//
//	err := &Error{
//		Op:   "units.Parse",
//		Kind: KindValidation,
//		Err:  ErrInvalidUnit,
//	}
type Error struct {
	// Op is the operation that failed (e.g., "units.Parse", "units.Encode").
	Op string

	// Kind categorizes the error (e.g., KindValidation, KindEncoding).
	Kind string

	// Err is the underlying error that caused this error.
	Err error

	// Context provides additional context about the error (optional).
	// This typically holds the offending input value and, where applicable,
	// the valid alternatives.
	Context map[string]any
}

// Error implements the error interface, returning a formatted error message
// that includes the operation, kind, and underlying error.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("sdk: %s: %s", e.Op, e.Kind)
	}

	if len(e.Context) > 0 {
		return fmt.Sprintf("sdk: %s (%s): %v [context: %+v]", e.Op, e.Kind, e.Err, e.Context)
	}

	return fmt.Sprintf("sdk: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and errors.As()
// to work correctly with wrapped errors.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error matching for Error, allowing comparison based on
// the underlying error or the Error itself.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	// Check if target is an *Error with matching Kind
	if t, ok := target.(*Error); ok {
		// Match if both Op and Kind are the same, or if Kind matches and Op is empty in target
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}

	// Delegate to underlying error
	return errors.Is(e.Err, target)
}

// WithContext returns a new Error with the provided context added.
// This is useful for attaching the offending input to an error.
//
// Example:
//
//	err := NewValidationError("units.Parse", ErrInvalidUnit).
//		WithContext(map[string]any{"unit": "furlongs"})
func (e *Error) WithContext(ctx map[string]any) *Error {
	newErr := *e
	if newErr.Context == nil {
		newErr.Context = make(map[string]any)
	}
	for k, v := range ctx {
		newErr.Context[k] = v
	}
	return &newErr
}

// NewValidationError creates a new Error with KindValidation.
func NewValidationError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindValidation,
		Err:  err,
	}
}

// NewNotFoundError creates a new Error with KindNotFound.
func NewNotFoundError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindNotFound,
		Err:  err,
	}
}

// NewEncodingError creates a new Error with KindEncoding.
func NewEncodingError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindEncoding,
		Err:  err,
	}
}

// NewInternalError creates a new Error with KindInternal.
func NewInternalError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindInternal,
		Err:  err,
	}
}
