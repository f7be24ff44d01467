// Package errors defines the coded errors returned across couplingviz.
//
// Every failure that reaches the command line carries a [Code] naming its
// category, a message written for the person running the tool, and, when
// the failure came from somewhere else, the original error as its cause.
//
// # Error Codes
//
//   - INVALID_INPUT, INVALID_PATH, INVALID_CONFIG: the run was asked to do
//     something it cannot, and nothing was written
//   - READ_FAILED, PARSE_FAILED: a source file could not be used; the scan
//     records these per file and keeps going
//   - WRITE_FAILED, RENDER_FAILED: an artifact could not be produced
//   - INTERNAL_ERROR: a broken invariant inside the program
//
// # Usage
//
//	if err := errors.ValidateSourceRoot(root); err != nil {
//	    return err // INVALID_PATH
//	}
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    return errors.Wrap(errors.ErrCodeReadFailed, err, "read %s", path)
//	}
//
//	if errors.Is(err, errors.ErrCodeParseFailed) {
//	    // skip the file
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code is the category of an [Error]. Codes are stable strings so they can
// be matched by scripts that parse log output.
type Code string

const (
	// ErrCodeInvalidInput reports missing or malformed command-line arguments.
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	// ErrCodeInvalidPath reports a source or output path that is not a usable directory.
	ErrCodeInvalidPath Code = "INVALID_PATH"
	// ErrCodeInvalidConfig reports a configuration value that fails validation.
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// ErrCodeReadFailed reports a file or directory that could not be read.
	ErrCodeReadFailed Code = "READ_FAILED"
	// ErrCodeParseFailed reports a source file with a syntax error.
	ErrCodeParseFailed Code = "PARSE_FAILED"
	// ErrCodeWriteFailed reports an artifact that could not be written.
	ErrCodeWriteFailed Code = "WRITE_FAILED"
	// ErrCodeRenderFailed reports a renderer or Graphviz failure.
	ErrCodeRenderFailed Code = "RENDER_FAILED"

	// ErrCodeInternal reports a condition that should be impossible.
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error couples a [Code] with a message and an optional cause.
type Error struct {
	Code    Code   // Category of the failure
	Message string // What went wrong, in terms of the run
	Cause   error  // Error that triggered this one, may be nil
}

// Error formats the error as "CODE: message" followed by ": cause" when a
// cause is present.
func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

// Unwrap exposes the cause to the standard errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New returns an Error without a cause. The message is built with
// fmt.Sprintf from format and args.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an Error whose cause is err. Use it when a lower-level
// failure should be reported under one of this package's codes.
func Wrap(code Code, err error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: err}
}

// Is reports whether the first *Error found in err's chain has code.
// It returns false for nil and for errors that carry no code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the first *Error in err's chain, or "" when
// there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the text shown on the terminal. The code prefix is
// left out because it means little to a person; the cause is kept since it
// usually names the file or system call that failed. Errors without a code
// are returned unchanged.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}
