package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"despensa/internal/domain"
	apperrors "despensa/internal/errors"
	"despensa/internal/stock/service"
)

const dateLayout = "2006-01-02"

type MySQLStockEntryRepository struct {
	db        *sql.DB
	txTimeout time.Duration
}

func NewMySQLStockEntryRepository(db *sql.DB, txTimeout time.Duration) *MySQLStockEntryRepository {
	return &MySQLStockEntryRepository{db: db, txTimeout: txTimeout}
}

func (r *MySQLStockEntryRepository) GetToday(ctx context.Context, day time.Time) ([]domain.StockEntry, error) {
	query := `
		SELECT ap.id, ap.productId, ap.date, ap.quantityMl
		FROM AvailableProduct ap
		INNER JOIN Product p ON p.id = ap.productId
		WHERE ap.date = ? AND ap.quantityMl > 0
		ORDER BY ap.productId
	`

	rows, err := r.db.QueryContext(ctx, query, day.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("querying today's stock: %w", err)
	}
	defer rows.Close()

	var entries []domain.StockEntry
	for rows.Next() {
		var e domain.StockEntry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.Date, &e.Quantity); err != nil {
			return nil, fmt.Errorf("scanning stock entry row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stock entry rows: %w", err)
	}

	return entries, nil
}

// WithinTx opens one transaction for a whole batch. fn gets a ledger bound
// to that transaction; commit happens only when fn returns nil.
func (r *MySQLStockEntryRepository) WithinTx(ctx context.Context, fn func(ledger service.Ledger) error) error {
	txCtx, cancel := context.WithTimeout(ctx, r.txTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	// MySQL ignores rollback if already committed.
	defer tx.Rollback()

	if err := fn(&txLedger{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// txLedger is the transaction-bound implementation handed to WithinTx
// callbacks. Row locks taken here live until the transaction ends.
type txLedger struct {
	tx *sql.Tx
}

func (l *txLedger) LockAndGetToday(ctx context.Context, day time.Time, productID int) (*domain.StockEntry, error) {
	query := `
		SELECT id, productId, date, quantityMl
		FROM AvailableProduct
		WHERE productId = ? AND date = ?
		FOR UPDATE
	`

	var e domain.StockEntry
	err := l.tx.QueryRowContext(ctx, query, productID, day.Format(dateLayout)).Scan(
		&e.ID, &e.ProductID, &e.Date, &e.Quantity,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewStockNotFoundError(productID)
	}
	if err != nil {
		return nil, fmt.Errorf("locking stock entry for product %d: %w", productID, err)
	}

	return &e, nil
}

func (l *txLedger) UpsertToday(ctx context.Context, day time.Time, productID, quantity int) (*domain.StockEntry, error) {
	// The unique key on (productId, date) turns concurrent inserts for the
	// same pair into updates instead of duplicate rows.
	query := `
		INSERT INTO AvailableProduct (productId, date, quantityMl)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE quantityMl = VALUES(quantityMl)
	`

	if _, err := l.tx.ExecContext(ctx, query, productID, day.Format(dateLayout), quantity); err != nil {
		return nil, fmt.Errorf("upserting stock entry for product %d: %w", productID, err)
	}

	var e domain.StockEntry
	selectQuery := `
		SELECT id, productId, date, quantityMl
		FROM AvailableProduct
		WHERE productId = ? AND date = ?
	`
	err := l.tx.QueryRowContext(ctx, selectQuery, productID, day.Format(dateLayout)).Scan(
		&e.ID, &e.ProductID, &e.Date, &e.Quantity,
	)
	if err != nil {
		return nil, fmt.Errorf("reading back stock entry for product %d: %w", productID, err)
	}

	return &e, nil
}

func (l *txLedger) Save(ctx context.Context, entry *domain.StockEntry) error {
	query := `UPDATE AvailableProduct SET quantityMl = ? WHERE id = ?`

	if _, err := l.tx.ExecContext(ctx, query, entry.Quantity, entry.ID); err != nil {
		return fmt.Errorf("saving stock entry %d: %w", entry.ID, err)
	}

	return nil
}
