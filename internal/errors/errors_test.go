package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Creation(t *testing.T) {
	err := NewValidationError("validation failed",
		ValidationDetail{Field: "quantity", Message: "quantity must be at least 1"},
	)

	assert.Equal(t, "validation failed", err.Error())
	assert.Len(t, err.Details, 1)
	assert.Equal(t, "quantity", err.Details[0].Field)
}

func TestValidationError_IsValidationError(t *testing.T) {
	err := NewValidationError("bad input")

	ve, ok := IsValidationError(err)
	assert.True(t, ok)
	assert.NotNil(t, ve)

	_, ok = IsValidationError(errors.New("other"))
	assert.False(t, ok)
}

func TestNotFoundError_Creation(t *testing.T) {
	err := NewNotFoundError("order with id 42 not found")

	assert.Equal(t, "order with id 42 not found", err.Error())

	nfe, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)
}

func TestNotFoundError_WithOtherError(t *testing.T) {
	_, ok := IsNotFoundError(errors.New("something else"))
	assert.False(t, ok)
}

func TestResolutionError(t *testing.T) {
	err := NewResolutionError("customer-property link not found")

	assert.Equal(t, "customer-property link not found", err.Error())

	re, ok := IsResolutionError(err)
	assert.True(t, ok)
	assert.NotNil(t, re)

	_, ok = IsResolutionError(NewNotFoundError("not the same kind"))
	assert.False(t, ok)
}

func TestConflictError(t *testing.T) {
	err := NewConflictError("order is canceled")

	assert.Equal(t, "order is canceled", err.Error())

	ce, ok := IsConflictError(err)
	assert.True(t, ok)
	assert.NotNil(t, ce)
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternalError("querying orders", cause)

	assert.Equal(t, "querying orders: connection refused", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestInternalError_NoCause(t *testing.T) {
	err := NewInternalError("something broke", nil)

	assert.Equal(t, "something broke", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
