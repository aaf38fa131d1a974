package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"despensa/internal/domain"
	"despensa/internal/dto"
	apperrors "despensa/internal/errors"
	"despensa/internal/rest"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxBatchItems = 100

type AvailabilityUseCase interface {
	GetAvailableProducts(ctx context.Context) ([]domain.StockEntry, error)
	UpdateAvailability(ctx context.Context, items []dto.BatchItem) ([]domain.StockEntry, error)
}

type ConsumeStockUseCase interface {
	ConsumeStock(ctx context.Context, items []dto.BatchItem) ([]domain.StockEntry, error)
}

type StockController struct {
	availability AvailabilityUseCase
	consumption  ConsumeStockUseCase
	logger       *zap.Logger
}

func NewStockController(availability AvailabilityUseCase, consumption ConsumeStockUseCase, logger *zap.Logger) *StockController {
	return &StockController{
		availability: availability,
		consumption:  consumption,
		logger:       logger,
	}
}

func (c *StockController) GetAvailableProducts(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	entries, err := c.availability.GetAvailableProducts(r.Context())
	if err != nil {
		c.writeError(w, logger, err)
		return
	}

	c.writeJSON(w, logger, http.StatusOK, toBatchResponse(entries))
}

func (c *StockController) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	req, ok := c.decodeBatch(w, logger, r)
	if !ok {
		return
	}

	// Availability may be set to zero; only negatives are rejected.
	if err := validateBatch(req, 0); err != nil {
		c.writeError(w, logger, err)
		return
	}

	entries, err := c.availability.UpdateAvailability(r.Context(), toBatchItems(req))
	if err != nil {
		c.writeError(w, logger, err)
		return
	}

	c.writeJSON(w, logger, http.StatusOK, toBatchResponse(entries))
}

func (c *StockController) ConsumeStock(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	req, ok := c.decodeBatch(w, logger, r)
	if !ok {
		return
	}

	if err := validateBatch(req, 1); err != nil {
		c.writeError(w, logger, err)
		return
	}

	entries, err := c.consumption.ConsumeStock(r.Context(), toBatchItems(req))
	if err != nil {
		c.writeError(w, logger, err)
		return
	}

	c.writeJSON(w, logger, http.StatusOK, toBatchResponse(entries))
}

func (c *StockController) requestLogger() *zap.Logger {
	return c.logger.With(zap.String("traceId", uuid.New().String()))
}

func (c *StockController) decodeBatch(w http.ResponseWriter, logger *zap.Logger, r *http.Request) (dto.StockBatchRequest, bool) {
	var req dto.StockBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeError(w, logger, apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		}))
		return dto.StockBatchRequest{}, false
	}
	return req, true
}

func validateBatch(req dto.StockBatchRequest, minQuantity int) error {
	var details []apperrors.ValidationDetail

	if len(req.Products) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "products",
			Message: "products must not be empty",
		})
	}

	if len(req.Products) > maxBatchItems {
		details = append(details, apperrors.ValidationDetail{
			Field:   "products",
			Message: "products exceeds maximum of " + strconv.Itoa(maxBatchItems),
		})
	}

	productIDMap := make(map[int]bool)

	for idx, item := range req.Products {
		if item.ProductID <= 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "products[" + strconv.Itoa(idx) + "].product_id",
				Message: "each product_id must be a positive integer",
			})
		}

		if productIDMap[item.ProductID] {
			details = append(details, apperrors.ValidationDetail{
				Field:   "products[" + strconv.Itoa(idx) + "].product_id",
				Message: "product_id must not be duplicated",
			})
		}
		productIDMap[item.ProductID] = true

		if item.Quantity < minQuantity {
			details = append(details, apperrors.ValidationDetail{
				Field:   "products[" + strconv.Itoa(idx) + "].quantity",
				Message: "quantity must be at least " + strconv.Itoa(minQuantity),
			})
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func toBatchItems(req dto.StockBatchRequest) []dto.BatchItem {
	items := make([]dto.BatchItem, len(req.Products))
	for i, p := range req.Products {
		items[i] = dto.BatchItem{
			ProductID: p.ProductID,
			Quantity:  p.Quantity,
		}
	}
	return items
}

func toBatchResponse(entries []domain.StockEntry) dto.StockBatchResponse {
	products := make([]dto.StockProductDTO, len(entries))
	for i, e := range entries {
		products[i] = dto.StockProductDTO{
			ProductID: e.ProductID,
			Quantity:  e.Quantity,
		}
	}
	return dto.StockBatchResponse{Products: products}
}

func (c *StockController) writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	if rest.IsDomainError(err) {
		logger.Warn("request rejected", zap.Error(err))
	} else {
		logger.Error("unexpected error", zap.Error(err))
	}

	if writeErr := rest.WriteError(w, err); writeErr != nil {
		logger.Error("failed to encode error response", zap.Error(writeErr))
	}
}

func (c *StockController) writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	if err := rest.WriteJSON(w, status, data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}
