package service

import (
	"context"
	"time"

	"despensa/internal/domain"
)

// Ledger is the transaction-scoped view of the stock ledger. Every method
// operates inside the transaction opened by LedgerStore.WithinTx; locks
// acquired through LockAndGetToday are held until that transaction ends.
type Ledger interface {
	LockAndGetToday(ctx context.Context, day time.Time, productID int) (*domain.StockEntry, error)
	UpsertToday(ctx context.Context, day time.Time, productID, quantity int) (*domain.StockEntry, error)
	Save(ctx context.Context, entry *domain.StockEntry) error
}

// LedgerStore is the durable store for stock entries. WithinTx runs fn in
// one transaction, committing only when fn returns nil and rolling back
// otherwise.
type LedgerStore interface {
	GetToday(ctx context.Context, day time.Time) ([]domain.StockEntry, error)
	WithinTx(ctx context.Context, fn func(ledger Ledger) error) error
}

// ProductFinder resolves product ids against the catalog, read-only.
type ProductFinder interface {
	FindByID(ctx context.Context, id int) (*domain.Product, error)
}
