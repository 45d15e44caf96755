package errors

import (
	"errors"
	"fmt"
)

// Error types for the failure categories the allocator can report
type ErrorType string

const (
	ErrorTypeExhaustion     ErrorType = "resource_exhaustion"
	ErrorTypeUnknownPointer ErrorType = "unknown_pointer"
)

// ErrOutOfMemory is the sentinel cause for every resource_exhaustion error.
// Callers on the recoverable contract match it with errors.Is.
var ErrOutOfMemory = errors.New("out of memory")

// StructuredError provides error context for allocator failures
type StructuredError struct {
	Type      ErrorType
	Operation string
	Message   string
	Cause     error
}

// Error implements the error interface
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %s: %v", e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Operation, e.Message)
}

// Unwrap returns the underlying cause
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new structured error
func New(errType ErrorType, operation, message string) *StructuredError {
	return &StructuredError{
		Type:      errType,
		Operation: operation,
		Message:   message,
	}
}

// Wrap wraps an existing error with allocator context
func Wrap(err error, errType ErrorType, operation, message string) *StructuredError {
	if err == nil {
		return nil
	}
	return &StructuredError{
		Type:      errType,
		Operation: operation,
		Message:   message,
		Cause:     err,
	}
}

// NewExhaustion reports a failed backing allocation during the given
// operation. The result unwraps to ErrOutOfMemory.
func NewExhaustion(operation string, size int) *StructuredError {
	return &StructuredError{
		Type:      ErrorTypeExhaustion,
		Operation: operation,
		Message:   fmt.Sprintf("backing allocator failed for %d bytes", size),
		Cause:     ErrOutOfMemory,
	}
}
