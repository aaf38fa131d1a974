package usecase

import (
	"context"
	"sort"
	"time"

	"despensa/internal/domain"
	"despensa/internal/dto"

	"go.uber.org/zap"
)

type AvailabilityService interface {
	GetAvailable(ctx context.Context, day time.Time) ([]domain.StockEntry, error)
	UpdateAvailability(ctx context.Context, day time.Time, items []dto.BatchItem) ([]domain.StockEntry, error)
}

type AvailabilityUseCase struct {
	availabilitySvc AvailabilityService
	logger          *zap.Logger
}

func NewAvailabilityUseCase(availabilitySvc AvailabilityService, logger *zap.Logger) *AvailabilityUseCase {
	return &AvailabilityUseCase{
		availabilitySvc: availabilitySvc,
		logger:          logger,
	}
}

func (uc *AvailabilityUseCase) GetAvailableProducts(ctx context.Context) ([]domain.StockEntry, error) {
	return uc.availabilitySvc.GetAvailable(ctx, domain.Today())
}

func (uc *AvailabilityUseCase) UpdateAvailability(ctx context.Context, items []dto.BatchItem) ([]domain.StockEntry, error) {
	// One calendar day for the whole batch, even across midnight.
	day := domain.Today()

	uc.logger.Info("availability update started", zap.Int("itemCount", len(items)))

	// Upserts take row locks too; keep the same canonical order as the
	// consumption path.
	sorted := make([]dto.BatchItem, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ProductID < sorted[j].ProductID })

	entries, err := uc.availabilitySvc.UpdateAvailability(ctx, day, sorted)
	if err != nil {
		return nil, err
	}

	return reorderToCallerOrder(items, entries), nil
}
