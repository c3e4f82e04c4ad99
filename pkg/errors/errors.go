// Package errors provides structured error types for the gridplot library.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library, CLI and render service
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: configuration/input validation failures (fatal)
//   - NOT_FOUND_*: resource not found
//   - INTERNAL_*: unexpected internal errors
//
// Recoverable anomalies (overlapping cells, unsupported objects, adjusted
// bounds, unknown config keys) are not errors; they are emitted as warning
// events through the observability package and figure generation continues.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidSpan, "column %d out of range", col)
//	if errors.IsConfiguration(err) {
//	    // caller passed a malformed figure definition
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "failed to render %s", name)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors: malformed structural input. These fail fast
	// since no sane figure can be produced from them.
	ErrCodeInvalidGrid    Code = "INVALID_GRID"
	ErrCodeInvalidRatio   Code = "INVALID_RATIO"
	ErrCodeInvalidMargin  Code = "INVALID_MARGIN"
	ErrCodeInvalidSpan    Code = "INVALID_SPAN"
	ErrCodeInvalidLegend  Code = "INVALID_LEGEND"
	ErrCodeInvalidStyle   Code = "INVALID_STYLE"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidData    Code = "INVALID_DATA"
	ErrCodeNoFreeCells    Code = "NO_FREE_CELLS"
	ErrCodeNoCurrentPlot  Code = "NO_CURRENT_PLOT"
	ErrCodeShareCycle     Code = "SHARE_CYCLE"
	ErrCodeAlreadyCreated Code = "ALREADY_CREATED"
	ErrCodeNotCreated     Code = "NOT_CREATED"

	// Resource not found errors
	ErrCodeNotFound       Code = "NOT_FOUND"
	ErrCodeFileNotFound   Code = "FILE_NOT_FOUND"
	ErrCodeFigureNotFound Code = "FIGURE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// configurationCodes is the set of codes that represent caller-side
// configuration mistakes rather than runtime failures.
var configurationCodes = map[Code]bool{
	ErrCodeInvalidGrid:    true,
	ErrCodeInvalidRatio:   true,
	ErrCodeInvalidMargin:  true,
	ErrCodeInvalidSpan:    true,
	ErrCodeInvalidLegend:  true,
	ErrCodeInvalidStyle:   true,
	ErrCodeInvalidConfig:  true,
	ErrCodeInvalidFormat:  true,
	ErrCodeInvalidData:    true,
	ErrCodeNoFreeCells:    true,
	ErrCodeNoCurrentPlot:  true,
	ErrCodeShareCycle:     true,
	ErrCodeAlreadyCreated: true,
	ErrCodeNotCreated:     true,
}

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
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

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// IsConfiguration reports whether err is a configuration error, i.e. the
// caller handed the library a malformed figure definition.
func IsConfiguration(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return configurationCodes[e.Code]
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
