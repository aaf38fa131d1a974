package service

import (
	"context"
	"time"

	"despensa/internal/domain"
	"despensa/internal/dto"
	apperrors "despensa/internal/errors"

	"go.uber.org/zap"
)

type AvailabilityService struct {
	store    LedgerStore
	products ProductFinder
	logger   *zap.Logger
}

func NewAvailabilityService(store LedgerStore, products ProductFinder, logger *zap.Logger) *AvailabilityService {
	return &AvailabilityService{
		store:    store,
		products: products,
		logger:   logger,
	}
}

// GetAvailable lists the day's entries with quantity above zero. Readers do
// not lock; they see committed state only.
func (s *AvailabilityService) GetAvailable(ctx context.Context, day time.Time) ([]domain.StockEntry, error) {
	return s.store.GetToday(ctx, day)
}

// UpdateAvailability sets the day's quantity for every item in one
// transaction. An unknown product aborts the whole batch, so readers never
// observe a partial update.
func (s *AvailabilityService) UpdateAvailability(ctx context.Context, day time.Time, items []dto.BatchItem) ([]domain.StockEntry, error) {
	for _, item := range items {
		if _, err := s.products.FindByID(ctx, item.ProductID); err != nil {
			if _, ok := apperrors.IsNotFoundError(err); ok {
				return nil, apperrors.NewProductNotFoundError(item.ProductID)
			}
			return nil, err
		}
	}

	updated := make([]domain.StockEntry, 0, len(items))

	err := s.store.WithinTx(ctx, func(ledger Ledger) error {
		for _, item := range items {
			entry, err := ledger.UpsertToday(ctx, day, item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			updated = append(updated, *entry)
		}
		return nil
	})

	if err != nil {
		s.logger.Warn("availability update rolled back", zap.Int("itemCount", len(items)), zap.Error(err))
		return nil, err
	}

	s.logger.Info("availability updated", zap.Int("itemCount", len(items)))
	return updated, nil
}
