package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuredError_Error(t *testing.T) {
	// Test error without cause
	err := New(ErrorTypeUnknownPointer, "free", "pointer not registered")
	expected := "[unknown_pointer] free: pointer not registered"
	assert.Equal(t, expected, err.Error())

	// Test error with cause
	cause := errors.New("underlying error")
	err = Wrap(cause, ErrorTypeExhaustion, "alloc", "backing allocation failed")
	assert.Contains(t, err.Error(), "[resource_exhaustion] alloc: backing allocation failed")
	assert.Contains(t, err.Error(), "underlying error")
	assert.Equal(t, cause, err.Unwrap())
}

func TestNewExhaustion(t *testing.T) {
	err := NewExhaustion("realloc", 4096)

	assert.Equal(t, ErrorTypeExhaustion, err.Type)
	assert.Equal(t, "realloc", err.Operation)
	assert.Contains(t, err.Message, "4096")

	// Must unwrap to the sentinel so callers can errors.Is it
	assert.True(t, errors.Is(err, ErrOutOfMemory))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrorTypeExhaustion, "op", "msg"))
}

func TestErrorTypeString(t *testing.T) {
	assert.Equal(t, "resource_exhaustion", string(ErrorTypeExhaustion))
	assert.Equal(t, "unknown_pointer", string(ErrorTypeUnknownPointer))
}
