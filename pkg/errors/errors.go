// Package errors provides structured error types for unitwiz.
//
// Every public operation either returns a well-typed result or fails with an
// *Error carrying one of the codes below. The core never retries, coerces or
// swallows errors; callers branch on the code.
//
// # Error Codes
//
//   - LOAD_ERROR: a backend library is unavailable or failed its probe
//   - INVALID_FORM: an operation referenced an unknown or unloaded form
//   - PARSE_ERROR: malformed textual input (carries the input and the form)
//   - TYPE_MISMATCH: an object of the wrong kind was passed (unit vs quantity)
//   - DIMENSION_MISMATCH: a unit does not have the expected dimension
//   - UNSUPPORTED_DIMENSION: a translation target cannot express a dimension
//   - UNSUPPORTED_UNIT: a unit has no equivalent in the translation target
//
// # Usage
//
//	q, err := wizard.ParseQuantity("1.5 kcal")
//	if errors.Is(err, errors.ErrCodeParse) {
//	    // Handle malformed input
//	}
//
//	// Wrap backend errors
//	err := errors.Wrap(errors.ErrCodeParse, origErr, "cannot parse %q", text)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the unitwiz taxonomy.
const (
	// Registry errors
	ErrCodeLoad        Code = "LOAD_ERROR"
	ErrCodeInvalidForm Code = "INVALID_FORM"

	// Input errors
	ErrCodeParse        Code = "PARSE_ERROR"
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeTypeMismatch Code = "TYPE_MISMATCH"

	// Dimension errors
	ErrCodeDimensionMismatch    Code = "DIMENSION_MISMATCH"
	ErrCodeUnsupportedDimension Code = "UNSUPPORTED_DIMENSION"
	ErrCodeUnsupportedUnit      Code = "UNSUPPORTED_UNIT"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Form    string // Form involved in the failure (optional)
	Input   string // Offending input text (optional)
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is lets errors.Is match a bare code against the error chain:
//
//	errors.Is(err, errors.ErrCodeParse)
func (e *Error) Is(target error) bool {
	if c, ok := target.(Code); ok {
		return e.Code == c
	}
	return false
}

// Error makes Code usable as an errors.Is target.
func (c Code) Error() string { return string(c) }

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// WithForm records the form involved in the failure and returns e.
func (e *Error) WithForm(form string) *Error {
	e.Form = form
	return e
}

// WithInput records the offending input and returns e.
func (e *Error) WithInput(input string) *Error {
	e.Input = input
	return e
}

// Parse builds a PARSE_ERROR for text that form could not read.
func Parse(form, input string, cause error) *Error {
	e := New(ErrCodeParse, "%s cannot parse %q", form, input)
	e.Form = form
	e.Input = input
	e.Cause = cause
	return e
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
