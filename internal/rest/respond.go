package rest

import (
	"encoding/json"
	"net/http"

	apperrors "despensa/internal/errors"
)

const (
	TypeNotFound   = "not_found"
	TypeValidation = "validation_error"
	TypeIntegrity  = "integrity_error"
	TypeInternal   = "internal_error"
)

type ErrorInfo struct {
	Type    string      `json:"type"`
	Message string      `json:"message"`
	Details interface{} `json:"details"`
}

type ErrorResponse struct {
	Error ErrorInfo `json:"error"`
}

type ProductDetail struct {
	ProductID int `json:"product_id"`
}

type InsufficientStockDetail struct {
	ProductID int `json:"product_id"`
	Available int `json:"available"`
	Requested int `json:"requested"`
}

func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// WriteError maps a domain error to the stable error body shared by every
// endpoint. Unknown errors are reported as internal_error without leaking
// their message.
func WriteError(w http.ResponseWriter, err error) error {
	switch {
	case isProductNotFound(err):
		pe, _ := apperrors.IsProductNotFoundError(err)
		return writeError(w, http.StatusNotFound, TypeNotFound, pe.Error(), ProductDetail{ProductID: pe.ProductID})

	case isStockNotFound(err):
		se, _ := apperrors.IsStockNotFoundError(err)
		return writeError(w, http.StatusNotFound, TypeNotFound, se.Error(), ProductDetail{ProductID: se.ProductID})

	case isNotFound(err):
		return writeError(w, http.StatusNotFound, TypeNotFound, err.Error(), nil)

	case isInsufficientStock(err):
		ie, _ := apperrors.IsInsufficientStockError(err)
		return writeError(w, http.StatusUnprocessableEntity, TypeValidation, ie.Error(), InsufficientStockDetail{
			ProductID: ie.ProductID,
			Available: ie.Available,
			Requested: ie.Requested,
		})

	case isValidation(err):
		ve, _ := apperrors.IsValidationError(err)
		return writeError(w, http.StatusBadRequest, TypeValidation, ve.Message, ve.Details)

	case isConflict(err), isDeadlock(err):
		return writeError(w, http.StatusConflict, TypeIntegrity, err.Error(), nil)

	default:
		return writeError(w, http.StatusInternalServerError, TypeInternal, "an unexpected error occurred", nil)
	}
}

// IsDomainError reports whether err belongs to the translated taxonomy,
// as opposed to an unexpected internal failure.
func IsDomainError(err error) bool {
	return isProductNotFound(err) || isStockNotFound(err) || isNotFound(err) ||
		isInsufficientStock(err) || isValidation(err) || isConflict(err) || isDeadlock(err)
}

func writeError(w http.ResponseWriter, status int, errType, message string, details interface{}) error {
	return WriteJSON(w, status, ErrorResponse{
		Error: ErrorInfo{
			Type:    errType,
			Message: message,
			Details: details,
		},
	})
}

func isProductNotFound(err error) bool {
	_, ok := apperrors.IsProductNotFoundError(err)
	return ok
}

func isStockNotFound(err error) bool {
	_, ok := apperrors.IsStockNotFoundError(err)
	return ok
}

func isNotFound(err error) bool {
	_, ok := apperrors.IsNotFoundError(err)
	return ok
}

func isInsufficientStock(err error) bool {
	_, ok := apperrors.IsInsufficientStockError(err)
	return ok
}

func isValidation(err error) bool {
	_, ok := apperrors.IsValidationError(err)
	return ok
}

func isConflict(err error) bool {
	_, ok := apperrors.IsConflictError(err)
	return ok
}

func isDeadlock(err error) bool {
	_, ok := apperrors.IsDeadlockError(err)
	return ok
}
