package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "despensa/internal/errors"

	"github.com/stretchr/testify/assert"
)

func writeAndDecode(t *testing.T, err error) (int, ErrorResponse) {
	t.Helper()

	rec := httptest.NewRecorder()
	assert.NoError(t, WriteError(rec, err))

	var body ErrorResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	return rec.Code, body
}

func TestWriteError_ProductNotFound(t *testing.T) {
	status, body := writeAndDecode(t, apperrors.NewProductNotFoundError(5))

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, TypeNotFound, body.Error.Type)
	assert.Equal(t, "product with id 5 not found", body.Error.Message)

	details := body.Error.Details.(map[string]interface{})
	assert.Equal(t, float64(5), details["product_id"])
}

func TestWriteError_StockNotFound(t *testing.T) {
	status, body := writeAndDecode(t, apperrors.NewStockNotFoundError(9))

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, TypeNotFound, body.Error.Type)
}

func TestWriteError_InsufficientStockIs422WithDetails(t *testing.T) {
	status, body := writeAndDecode(t, apperrors.NewInsufficientStockError(1, 40, 60))

	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, TypeValidation, body.Error.Type)

	details := body.Error.Details.(map[string]interface{})
	assert.Equal(t, float64(1), details["product_id"])
	assert.Equal(t, float64(40), details["available"])
	assert.Equal(t, float64(60), details["requested"])
}

func TestWriteError_Validation(t *testing.T) {
	status, body := writeAndDecode(t, apperrors.NewValidationError("invalid request",
		apperrors.ValidationDetail{Field: "quantity", Message: "quantity must be positive"},
	))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, TypeValidation, body.Error.Type)

	details := body.Error.Details.([]interface{})
	assert.Len(t, details, 1)
}

func TestWriteError_ConflictAndDeadlockAreIntegrity(t *testing.T) {
	status, body := writeAndDecode(t, apperrors.NewConflictError("duplicate entry"))
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, TypeIntegrity, body.Error.Type)

	status, body = writeAndDecode(t, apperrors.NewDeadlockError("max retries exceeded"))
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, TypeIntegrity, body.Error.Type)
}

func TestWriteError_UnknownErrorDoesNotLeakMessage(t *testing.T) {
	status, body := writeAndDecode(t, errors.New("dial tcp 10.0.0.5:3306: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, TypeInternal, body.Error.Type)
	assert.Equal(t, "an unexpected error occurred", body.Error.Message)
}

func TestIsDomainError(t *testing.T) {
	assert.True(t, IsDomainError(apperrors.NewProductNotFoundError(1)))
	assert.True(t, IsDomainError(apperrors.NewInsufficientStockError(1, 10, 20)))
	assert.True(t, IsDomainError(apperrors.NewValidationError("bad")))
	assert.False(t, IsDomainError(errors.New("boom")))
	assert.False(t, IsDomainError(apperrors.NewInternalError("query failed", nil)))
}
