package client

import (
	"database/sql"

	"despensa/internal/client/repository"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLClientRepository(db)
	svc := NewService(repo)
	return NewController(svc, logger)
}
