// Package errors carries the error classification shared by storage
// drivers and the HTTP layer. Every failure crossing a package boundary
// is tagged with a Code so callers can branch without string matching.
package errors

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Code classifies an error for callers.
type Code string

const (
	CodeNotFound   Code = "NOT_FOUND"
	CodeValidation Code = "VALIDATION"
	CodeTransport  Code = "TRANSPORT"
	CodeParse      Code = "PARSE"
	CodeAuth       Code = "AUTH"
)

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// NotFound reports that the requested record does not exist.
func NotFound(format string, args ...any) *Error {
	return newError(CodeNotFound, nil, format, args...)
}

// Validation reports a rejected request payload.
func Validation(format string, args ...any) *Error {
	return newError(CodeValidation, nil, format, args...)
}

// Transport wraps a network or upstream failure.
func Transport(cause error, format string, args ...any) *Error {
	return newError(CodeTransport, cause, format, args...)
}

// Parse wraps a malformed payload or corrupt stored data.
func Parse(cause error, format string, args ...any) *Error {
	return newError(CodeParse, cause, format, args...)
}

// Auth reports a failed access check.
func Auth(format string, args ...any) *Error {
	return newError(CodeAuth, nil, format, args...)
}

// CodeOf extracts the classification of err, or an empty Code when the
// chain carries none.
func CodeOf(err error) Code {
	var coded *Error
	if pkgerrors.As(err, &coded) {
		return coded.Code
	}
	return ""
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}
