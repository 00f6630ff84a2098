// Package errors provides the standardized error type reported by the probe.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeFileNotFound         ErrorCode = "FILE_NOT_FOUND"
	ErrCodeImageEncodeFailed    ErrorCode = "IMAGE_ENCODE_FAILED"
	ErrCodeRequestFailed        ErrorCode = "REQUEST_FAILED"
	ErrCodeRequestTimeout       ErrorCode = "REQUEST_TIMEOUT"
	ErrCodeUnexpected           ErrorCode = "UNEXPECTED_ERROR"
	ErrCodeInvalidConfiguration ErrorCode = "INVALID_CONFIGURATION"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`

	cause error
}

func (e *StandardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("StandardError[%s]: %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *StandardError) Unwrap() error {
	return e.cause
}

// ==========================
// 2. Error Constructors
// ==========================

// NewFileNotFoundError reports a missing source image.
func NewFileNotFoundError(path string) *StandardError {
	return &StandardError{
		Code:      ErrCodeFileNotFound,
		Message:   "Image file not found",
		Details:   fmt.Sprintf("path: %s", path),
		Retryable: false,
		Metadata:  map[string]interface{}{"path": path},
		Timestamp: time.Now().UTC(),
	}
}

// NewImageEncodeFailedError reports a read or encode failure for an existing path.
func NewImageEncodeFailedError(path string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeImageEncodeFailed,
		Message:   "Failed to read and encode image",
		Details:   err.Error(),
		Retryable: false,
		Metadata:  map[string]interface{}{"path": path},
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewRequestFailedError reports a transport-level failure (DNS, connect, reset).
func NewRequestFailedError(endpoint string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRequestFailed,
		Message:   "Request to API endpoint failed",
		Details:   err.Error(),
		Retryable: true,
		Metadata:  map[string]interface{}{"endpoint": endpoint},
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewRequestTimeoutError reports a request that exceeded its deadline.
func NewRequestTimeoutError(endpoint string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRequestTimeout,
		Message:   "Request to API endpoint timed out",
		Details:   err.Error(),
		Retryable: true,
		Metadata:  map[string]interface{}{"endpoint": endpoint},
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewUnexpectedError wraps anything that is neither a transport nor an input failure.
func NewUnexpectedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnexpected,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewInvalidConfigurationError reports a configuration value that cannot be used.
func NewInvalidConfigurationError(field, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidConfiguration,
		Message:   fmt.Sprintf("Invalid configuration for %s", field),
		Details:   details,
		Retryable: false,
		Metadata:  map[string]interface{}{"field": field},
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// CodeOf returns the code of the first StandardError in err's chain, or "".
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ""
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}

// ToLogFields flattens a StandardError for structured logging.
func (e *StandardError) ToLogFields() map[string]interface{} {
	fields := map[string]interface{}{
		"errorCode":    string(e.Code),
		"errorMessage": e.Message,
		"retryable":    e.Retryable,
	}
	if e.Details != "" {
		fields["errorDetails"] = e.Details
	}
	for k, v := range e.Metadata {
		fields[k] = v
	}
	return fields
}
