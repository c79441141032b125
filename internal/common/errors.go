package common

import (
	"errors"
	"fmt"
)

// Common error types used across the application
var (
	// ErrInvalidInput indicates invalid user input
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidConfiguration indicates configuration issues
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// WrapError wraps an error with additional context information
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// WrapErrorf wraps an error with formatted context information
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// NewError creates a new error with a formatted message
func NewError(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// ValidationError represents validation errors with field-specific information
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s': %s (value: %v)", e.Field, e.Message, e.Value)
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// ParseError indicates that input markup could not be interpreted as a
// content tree. Merely unusual markup is tolerated; only unprocessable
// input produces this error.
type ParseError struct {
	Side    string
	Reason  string
	Wrapped error
}

func (e *ParseError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("parse failure for %s document: %s: %v", e.Side, e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("parse failure for %s document: %s", e.Side, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}

// NewParseError creates a new parse error
func NewParseError(side, reason string, wrapped error) *ParseError {
	return &ParseError{
		Side:    side,
		Reason:  reason,
		Wrapped: wrapped,
	}
}

// ComparisonError wraps any failure during segmentation, alignment or
// diffing into a single aggregate error. Partial results are never
// returned alongside it.
type ComparisonError struct {
	Stage   string
	Wrapped error
}

func (e *ComparisonError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("comparison failed during %s: %v", e.Stage, e.Wrapped)
	}
	return fmt.Sprintf("comparison failed during %s", e.Stage)
}

func (e *ComparisonError) Unwrap() error {
	return e.Wrapped
}

// NewComparisonError creates a new comparison error
func NewComparisonError(stage string, wrapped error) *ComparisonError {
	return &ComparisonError{
		Stage:   stage,
		Wrapped: wrapped,
	}
}

// GetRootCause returns the root cause of an error by unwrapping all wrapped errors
func GetRootCause(err error) error {
	for {
		wrapped := errors.Unwrap(err)
		if wrapped == nil {
			return err
		}
		err = wrapped
	}
}
