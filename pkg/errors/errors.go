package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Manifest errors
	ErrManifest ErrorCode = "MANIFEST_INVALID"

	// Pipeline errors, one per fallible stage
	ErrResolve    ErrorCode = "RESOLVE"
	ErrPrepackage ErrorCode = "PREPACKAGE"
	ErrAssemble   ErrorCode = "ASSEMBLE"
	ErrCleanup    ErrorCode = "CLEANUP"
)

// PackagerError represents a structured error with code and details
type PackagerError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PackagerError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PackagerError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PackagerError) Is(target error) bool {
	var targetErr *PackagerError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PackagerError with the given code and message
func New(code ErrorCode, message string) *PackagerError {
	return &PackagerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PackagerError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PackagerError {
	return &PackagerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PackagerError
func Wrap(err error, code ErrorCode, message string) *PackagerError {
	if err == nil {
		return nil
	}
	return &PackagerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PackagerError {
	if err == nil {
		return nil
	}
	return &PackagerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PackagerError) WithDetail(key string, value interface{}) *PackagerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *PackagerError) WithDetails(details map[string]interface{}) *PackagerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var pkgErr *PackagerError
	if errors.As(err, &pkgErr) {
		return pkgErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PackagerError
func GetErrorCode(err error) ErrorCode {
	var pkgErr *PackagerError
	if errors.As(err, &pkgErr) {
		return pkgErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PackagerError
func GetErrorDetails(err error) map[string]interface{} {
	var pkgErr *PackagerError
	if errors.As(err, &pkgErr) {
		return pkgErr.Details
	}
	return nil
}
