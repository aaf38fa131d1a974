package product

import (
	"database/sql"

	"despensa/internal/product/repository"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLProductRepository(db)
	svc := NewService(repo)
	return NewController(svc, logger)
}
