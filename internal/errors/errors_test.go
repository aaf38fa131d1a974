package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("client with id 3 not found")

	assert.Equal(t, "client with id 3 not found", err.Error())

	nfe, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.Equal(t, "client with id 3 not found", nfe.Message)

	_, ok = IsNotFoundError(errors.New("something else"))
	assert.False(t, ok)
}

func TestValidationError_WithDetails(t *testing.T) {
	err := NewValidationError("invalid request",
		ValidationDetail{Field: "name", Message: "name is required"},
	)

	ve, ok := IsValidationError(err)
	assert.True(t, ok)
	assert.Len(t, ve.Details, 1)
	assert.Equal(t, "name", ve.Details[0].Field)
}

func TestConflictError(t *testing.T) {
	err := NewConflictError("duplicate entry")

	ce, ok := IsConflictError(err)
	assert.True(t, ok)
	assert.Equal(t, "duplicate entry", ce.Error())
}

func TestDeadlockError(t *testing.T) {
	err := NewDeadlockError("max retries exceeded")

	_, ok := IsDeadlockError(err)
	assert.True(t, ok)

	_, ok = IsDeadlockError(NewConflictError("duplicate entry"))
	assert.False(t, ok)
}

func TestInternalError_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternalError("query failed", cause)

	assert.Equal(t, "query failed: connection refused", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestProductNotFoundError(t *testing.T) {
	err := NewProductNotFoundError(5)

	assert.Equal(t, "product with id 5 not found", err.Error())

	pe, ok := IsProductNotFoundError(err)
	assert.True(t, ok)
	assert.Equal(t, 5, pe.ProductID)
}

func TestStockNotFoundError(t *testing.T) {
	err := NewStockNotFoundError(9)

	assert.Equal(t, "no stock available today for product 9", err.Error())

	se, ok := IsStockNotFoundError(err)
	assert.True(t, ok)
	assert.Equal(t, 9, se.ProductID)
}

func TestInsufficientStockError(t *testing.T) {
	err := NewInsufficientStockError(1, 100, 150)

	assert.Equal(t, "product 1 has insufficient stock: available 100ml, requested 150ml", err.Error())

	ie, ok := IsInsufficientStockError(err)
	assert.True(t, ok)
	assert.Equal(t, 100, ie.Available)
	assert.Equal(t, 150, ie.Requested)

	// The stock error kinds do not overlap.
	_, ok = IsStockNotFoundError(err)
	assert.False(t, ok)
	_, ok = IsProductNotFoundError(err)
	assert.False(t, ok)
}
