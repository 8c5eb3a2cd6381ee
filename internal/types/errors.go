package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a specific error type
type ErrorCode string

const (
	// Engine errors. These indicate a control-flow defect in the
	// caller and are never recoverable mid-run.
	ErrInvalidCard  ErrorCode = "INVALID_CARD"
	ErrInvalidState ErrorCode = "INVALID_STATE"

	// Setup errors
	ErrConfiguration    ErrorCode = "CONFIGURATION"
	ErrStrategyNotFound ErrorCode = "STRATEGY_NOT_FOUND"

	// System errors
	ErrStorage ErrorCode = "STORAGE"
)

// SimError represents a simulation-related error
type SimError struct {
	Code    ErrorCode
	Message string
	Err     error // Underlying error, if any
}

// Error implements the error interface
func (e *SimError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *SimError) Unwrap() error {
	return e.Err
}

// NewSimError creates a new SimError
func NewSimError(code ErrorCode, message string) *SimError {
	return &SimError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error in a SimError
func WrapError(code ErrorCode, message string, err error) *SimError {
	return &SimError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsSimError checks if an error is a SimError with a specific code
func IsSimError(err error, code ErrorCode) bool {
	var simErr *SimError
	if err == nil {
		return false
	}
	if !errors.As(err, &simErr) {
		return false
	}
	return simErr.Code == code
}
