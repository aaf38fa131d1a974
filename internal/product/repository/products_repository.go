package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"despensa/internal/domain"
	apperrors "despensa/internal/errors"
)

type MySQLProductRepository struct {
	db *sql.DB
}

func NewMySQLProductRepository(db *sql.DB) *MySQLProductRepository {
	return &MySQLProductRepository{db: db}
}

func (r *MySQLProductRepository) Insert(ctx context.Context, product domain.Product) (int, error) {
	prices, err := marshalPrices(product.Prices)
	if err != nil {
		return 0, err
	}

	query := `INSERT INTO Product (name, description, prices) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, product.Name, product.Description, prices)
	if err != nil {
		return 0, fmt.Errorf("inserting product: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return int(lastInsertID), nil
}

func (r *MySQLProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT id, name, description, prices FROM Product ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}

func (r *MySQLProductRepository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	query := `SELECT id, name, description, prices FROM Product WHERE id = ?`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *MySQLProductRepository) Update(ctx context.Context, product domain.Product) error {
	prices, err := marshalPrices(product.Prices)
	if err != nil {
		return err
	}

	query := `UPDATE Product SET name = ?, description = ?, prices = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, product.Name, product.Description, prices, product.ID)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		if _, findErr := r.FindByID(ctx, product.ID); findErr != nil {
			return findErr
		}
	}

	return nil
}

func (r *MySQLProductRepository) Delete(ctx context.Context, id int) error {
	// Ledger rows cascade via the AvailableProduct foreign key.
	query := `DELETE FROM Product WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}

	return nil
}

func scanProduct(scan func(dest ...interface{}) error) (*domain.Product, error) {
	var p domain.Product
	var prices []byte

	if err := scan(&p.ID, &p.Name, &p.Description, &prices); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning product row: %w", err)
	}

	if len(prices) > 0 {
		if err := json.Unmarshal(prices, &p.Prices); err != nil {
			return nil, fmt.Errorf("decoding product prices: %w", err)
		}
	}

	return &p, nil
}

func marshalPrices(prices []domain.Price) ([]byte, error) {
	if prices == nil {
		prices = []domain.Price{}
	}
	data, err := json.Marshal(prices)
	if err != nil {
		return nil, fmt.Errorf("encoding product prices: %w", err)
	}
	return data, nil
}
