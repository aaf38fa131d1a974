package service

import (
	"context"
	"time"

	"despensa/internal/domain"
	"despensa/internal/dto"
	apperrors "despensa/internal/errors"

	"go.uber.org/zap"
)

type ConsumptionService struct {
	store  LedgerStore
	logger *zap.Logger
}

func NewConsumptionService(store LedgerStore, logger *zap.Logger) *ConsumptionService {
	return &ConsumptionService{
		store:  store,
		logger: logger,
	}
}

// Consume decrements the day's stock for every item or for none. Locks are
// acquired in slice order; callers must pass items sorted by product id so
// concurrent batches cannot deadlock each other. Any failure rolls back the
// whole batch.
func (s *ConsumptionService) Consume(ctx context.Context, day time.Time, items []dto.BatchItem) ([]domain.StockEntry, error) {
	updated := make([]domain.StockEntry, 0, len(items))

	err := s.store.WithinTx(ctx, func(ledger Ledger) error {
		for _, item := range items {
			entry, err := ledger.LockAndGetToday(ctx, day, item.ProductID)
			if err != nil {
				return err
			}

			if !entry.CanConsume(item.Quantity) {
				return apperrors.NewInsufficientStockError(item.ProductID, entry.Quantity, item.Quantity)
			}

			entry.Quantity -= item.Quantity
			if err := ledger.Save(ctx, entry); err != nil {
				return err
			}

			updated = append(updated, *entry)
		}
		return nil
	})

	if err != nil {
		s.logger.Warn("stock consumption rolled back", zap.Int("itemCount", len(items)), zap.Error(err))
		return nil, err
	}

	s.logger.Info("stock consumed", zap.Int("itemCount", len(items)))
	return updated, nil
}
