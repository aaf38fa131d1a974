package usecase

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"time"

	"despensa/internal/domain"
	"despensa/internal/dto"
	apperrors "despensa/internal/errors"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

type ConsumptionService interface {
	Consume(ctx context.Context, day time.Time, items []dto.BatchItem) ([]domain.StockEntry, error)
}

type ConsumeStockUseCase struct {
	consumptionSvc   ConsumptionService
	logger           *zap.Logger
	maxRetryAttempts int
}

func NewConsumeStockUseCase(consumptionSvc ConsumptionService, logger *zap.Logger, maxRetryAttempts int) *ConsumeStockUseCase {
	return &ConsumeStockUseCase{
		consumptionSvc:   consumptionSvc,
		logger:           logger,
		maxRetryAttempts: maxRetryAttempts,
	}
}

func (uc *ConsumeStockUseCase) ConsumeStock(ctx context.Context, items []dto.BatchItem) ([]domain.StockEntry, error) {
	// One calendar day for the whole batch, even across midnight.
	day := domain.Today()

	uc.logger.Info("stock consumption started", zap.Int("itemCount", len(items)))

	// Lock in canonical product-id order so overlapping concurrent batches
	// cannot deadlock each other. The response keeps the caller's order.
	sorted := make([]dto.BatchItem, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ProductID < sorted[j].ProductID })

	entries, err := uc.consumeWithRetry(ctx, day, sorted)
	if err != nil {
		return nil, err
	}

	return reorderToCallerOrder(items, entries), nil
}

func (uc *ConsumeStockUseCase) consumeWithRetry(ctx context.Context, day time.Time, items []dto.BatchItem) ([]domain.StockEntry, error) {
	maxAttempts := uc.maxRetryAttempts
	backoffs := []time.Duration{0, 100 * time.Millisecond, 200 * time.Millisecond}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		entries, err := uc.consumptionSvc.Consume(ctx, day, items)
		if err == nil {
			return entries, nil
		}

		if isDeadlockError(err) {
			if attempt < maxAttempts {
				backoff := backoffs[(attempt-1)%len(backoffs)]
				jitter := time.Duration(float64(backoff) * (0.8 + rand.Float64()*0.4))
				time.Sleep(jitter)
				uc.logger.Warn("deadlock detected, retrying", zap.Int("attempt", attempt), zap.Int("maxAttempts", maxAttempts))
				continue
			}
			break
		}

		return nil, err
	}

	return nil, apperrors.NewDeadlockError("max retries exceeded")
}

// reorderToCallerOrder maps entries back to the order the caller submitted.
// Product ids are unique within a batch (enforced at validation).
func reorderToCallerOrder(items []dto.BatchItem, entries []domain.StockEntry) []domain.StockEntry {
	byProduct := make(map[int]domain.StockEntry, len(entries))
	for _, e := range entries {
		byProduct[e.ProductID] = e
	}

	ordered := make([]domain.StockEntry, 0, len(items))
	for _, item := range items {
		if e, ok := byProduct[item.ProductID]; ok {
			ordered = append(ordered, e)
		}
	}
	return ordered
}

func isDeadlockError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1213 || mysqlErr.Number == 1205
	}
	return false
}
