// Package errors defines the coded error type shared by every alx package.
// Callers and tests branch on the ErrorCode, never on message text.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode is a stable identifier for a class of failure
type ErrorCode string

const (
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// alias validation
	ErrInvalidName    ErrorCode = "INVALID_NAME"
	ErrInvalidCommand ErrorCode = "INVALID_COMMAND"
	ErrDuplicateName  ErrorCode = "DUPLICATE_NAME"
	ErrImportRejected ErrorCode = "IMPORT_REJECTED"

	// store files and exchange formats
	ErrCorruptFile       ErrorCode = "CORRUPT_FILE"
	ErrIOFailure         ErrorCode = "IO_FAILURE"
	ErrUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"

	// script generation
	ErrUnsupportedCommand ErrorCode = "UNSUPPORTED_COMMAND"
	ErrUnsupportedShell   ErrorCode = "UNSUPPORTED_SHELL"

	ErrConfigLoad ErrorCode = "CONFIG_LOAD"
)

// AlxError carries a code, a human message, optional structured details
// (path, name, line...) and the underlying cause.
type AlxError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func build(cause error, code ErrorCode, message string) *AlxError {
	return &AlxError{
		Code:    code,
		Message: message,
		Details: map[string]interface{}{},
		Wrapped: cause,
	}
}

// New returns an error with code and message
func New(code ErrorCode, message string) *AlxError {
	return build(nil, code, message)
}

// Newf is New with a format string
func Newf(code ErrorCode, format string, args ...interface{}) *AlxError {
	return build(nil, code, fmt.Sprintf(format, args...))
}

// Wrap attaches code and message to cause. A nil cause yields nil so call
// sites can wrap unconditionally.
func Wrap(cause error, code ErrorCode, message string) *AlxError {
	if cause == nil {
		return nil
	}
	return build(cause, code, message)
}

// Wrapf is Wrap with a format string
func Wrapf(cause error, code ErrorCode, format string, args ...interface{}) *AlxError {
	if cause == nil {
		return nil
	}
	return build(cause, code, fmt.Sprintf(format, args...))
}

func (e *AlxError) Error() string {
	msg := "[" + string(e.Code) + "] " + e.Message
	if e.Wrapped == nil {
		return msg
	}
	return msg + ": " + e.Wrapped.Error()
}

func (e *AlxError) Unwrap() error { return e.Wrapped }

// Is reports whether target is an AlxError with the same code
func (e *AlxError) Is(target error) bool {
	t, ok := target.(*AlxError)
	return ok && t.Code == e.Code
}

// WithDetail sets one detail and returns e for chaining
func (e *AlxError) WithDetail(key string, value interface{}) *AlxError {
	return e.WithDetails(map[string]interface{}{key: value})
}

// WithDetails merges details into e
func (e *AlxError) WithDetails(details map[string]interface{}) *AlxError {
	if e.Details == nil {
		e.Details = make(map[string]interface{}, len(details))
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

func find(err error) (*AlxError, bool) {
	var alxErr *AlxError
	if errors.As(err, &alxErr) {
		return alxErr, true
	}
	return nil, false
}

// IsErrorCode reports whether the outermost AlxError in err's chain has code
func IsErrorCode(err error, code ErrorCode) bool {
	e, ok := find(err)
	return ok && e.Code == code
}

// GetErrorCode returns the code of the outermost AlxError, or ErrUnknown
func GetErrorCode(err error) ErrorCode {
	if e, ok := find(err); ok {
		return e.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details of the outermost AlxError, or nil
func GetErrorDetails(err error) map[string]interface{} {
	if e, ok := find(err); ok {
		return e.Details
	}
	return nil
}
