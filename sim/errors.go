package sim

import (
	"fmt"
)

// ErrorCode represents different types of simulator errors
type ErrorCode int

const (
	// Generic errors
	ErrCodeUnknown ErrorCode = iota
	ErrCodeInternal

	// Configuration errors
	ErrCodeInvalidFrameCapacity
	ErrCodeUnknownPolicy
	ErrCodeInvalidConfig

	// Input errors (raised by the console layer, never by the core)
	ErrCodeMalformedNumber
	ErrCodeValueOutOfRange
	ErrCodeEmptyReferenceString
	ErrCodeTooManyReferences
	ErrCodeInvalidMenuChoice
)

// SimError represents a simulator error with context
type SimError struct {
	Code    ErrorCode
	Message string
	Op      string // Operation that failed
	Err     error  // Underlying error (if any)
}

// Error implements the error interface
func (e *SimError) Error() string {
	if e.Op != "" {
		if e.Err != nil {
			return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
		}
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *SimError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches a specific error code
func (e *SimError) Is(target error) bool {
	if t, ok := target.(*SimError); ok {
		return e.Code == t.Code
	}
	return false
}

// NewSimError creates a new simulator error
func NewSimError(code ErrorCode, op, message string, err error) *SimError {
	return &SimError{
		Code:    code,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

// Helper functions for common errors

func ErrInvalidFrameCapacity(op string, capacity int) *SimError {
	return NewSimError(
		ErrCodeInvalidFrameCapacity,
		op,
		fmt.Sprintf("frame capacity must be at least 1, got %d", capacity),
		nil,
	)
}

func ErrUnknownPolicy(op, policy string) *SimError {
	return NewSimError(
		ErrCodeUnknownPolicy,
		op,
		fmt.Sprintf("unknown replacement policy %q", policy),
		nil,
	)
}

func ErrMalformedNumber(op, raw string, err error) *SimError {
	return NewSimError(
		ErrCodeMalformedNumber,
		op,
		fmt.Sprintf("%q is not a valid number", raw),
		err,
	)
}

func ErrValueOutOfRange(op string, value, min, max int) *SimError {
	return NewSimError(
		ErrCodeValueOutOfRange,
		op,
		fmt.Sprintf("value %d out of range [%d, %d]", value, min, max),
		nil,
	)
}

func ErrEmptyReferenceString(op string) *SimError {
	return NewSimError(
		ErrCodeEmptyReferenceString,
		op,
		"reference string cannot be empty",
		nil,
	)
}

func ErrTooManyReferences(op string, count, max int) *SimError {
	return NewSimError(
		ErrCodeTooManyReferences,
		op,
		fmt.Sprintf("reference string has %d entries, maximum is %d", count, max),
		nil,
	)
}

func ErrInvalidMenuChoice(op, choice string) *SimError {
	return NewSimError(
		ErrCodeInvalidMenuChoice,
		op,
		fmt.Sprintf("invalid choice %q", choice),
		nil,
	)
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	if se, ok := err.(*SimError); ok {
		return se.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrCodeUnknown
func GetErrorCode(err error) ErrorCode {
	if se, ok := err.(*SimError); ok {
		return se.Code
	}
	return ErrCodeUnknown
}
