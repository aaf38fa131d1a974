package stock

import (
	"database/sql"

	"despensa/internal/config"
	productrepo "despensa/internal/product/repository"
	"despensa/internal/stock/controller"
	stockrepo "despensa/internal/stock/repository"
	"despensa/internal/stock/service"
	"despensa/internal/stock/usecase"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, cfg *config.Config, logger *zap.Logger) *controller.StockController {
	ledgerStore := stockrepo.NewMySQLStockEntryRepository(db, cfg.Stock.TxTimeout)
	productRepo := productrepo.NewMySQLProductRepository(db)

	availabilitySvc := service.NewAvailabilityService(ledgerStore, productRepo, logger)
	consumptionSvc := service.NewConsumptionService(ledgerStore, logger)

	availabilityUC := usecase.NewAvailabilityUseCase(availabilitySvc, logger)
	consumeUC := usecase.NewConsumeStockUseCase(consumptionSvc, logger, cfg.Stock.MaxRetryAttempts)

	return controller.NewStockController(availabilityUC, consumeUC, logger)
}
