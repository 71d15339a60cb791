package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode represents a structured error code
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Validation errors
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"

	// External tool errors
	ErrCodeExternalTool ErrorCode = "EXTERNAL_TOOL"
	ErrCodeToolTimeout  ErrorCode = "TOOL_TIMEOUT"
	ErrCodeToolMissing  ErrorCode = "TOOL_MISSING"

	// Internal errors
	ErrCodeInternal ErrorCode = "INTERNAL"

	// Authentication errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
)

// AppError represents a structured application error
type AppError struct {
	Code     ErrorCode              `json:"code"`
	Message  string                 `json:"message"`
	Details  map[string]interface{} `json:"details,omitempty"`
	Cause    error                  `json:"-"`
	HTTPCode int                    `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// GetHTTPCode returns the appropriate HTTP status code
func (e *AppError) GetHTTPCode() int {
	if e.HTTPCode != 0 {
		return e.HTTPCode
	}
	return getDefaultHTTPCode(e.Code)
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: getDefaultHTTPCode(code),
	}
}

// Wrap wraps an existing error with an AppError
func Wrap(cause error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Cause:    cause,
		HTTPCode: getDefaultHTTPCode(code),
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(cause error, code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Cause:    cause,
		HTTPCode: getDefaultHTTPCode(code),
	}
}

// getDefaultHTTPCode returns the default HTTP status code for an error code
func getDefaultHTTPCode(code ErrorCode) int {
	switch code {
	case ErrCodeInvalidInput, ErrCodeMissingField:
		return http.StatusBadRequest
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeToolTimeout:
		return http.StatusGatewayTimeout
	case ErrCodeExternalTool, ErrCodeToolMissing:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ExternalToolError creates an external tool error
func ExternalToolError(tool string, cause error) *AppError {
	return Wrap(cause, ErrCodeExternalTool, fmt.Sprintf("external tool '%s' error", tool)).
		WithDetail("tool", tool)
}

// ToolTimeoutError creates a tool timeout error
func ToolTimeoutError(tool string, cause error) *AppError {
	return Wrap(cause, ErrCodeToolTimeout, fmt.Sprintf("tool '%s' timed out", tool)).
		WithDetail("tool", tool)
}

// ToolMissingError creates an error for an unreachable external tool
func ToolMissingError(tool string, cause error) *AppError {
	return Wrap(cause, ErrCodeToolMissing, fmt.Sprintf("tool '%s' is not installed or not on PATH", tool)).
		WithDetail("tool", tool)
}

// Is checks if an error is of a specific type
func Is(err error, code ErrorCode) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return ErrCodeInternal
}
