package repository

import (
	"context"
	"database/sql"
	"fmt"

	"despensa/internal/domain"
	apperrors "despensa/internal/errors"
)

type MySQLClientRepository struct {
	db *sql.DB
}

func NewMySQLClientRepository(db *sql.DB) *MySQLClientRepository {
	return &MySQLClientRepository{db: db}
}

func (r *MySQLClientRepository) Insert(ctx context.Context, client domain.Client) (int, error) {
	query := `INSERT INTO Client (name, phone) VALUES (?, ?)`

	result, err := r.db.ExecContext(ctx, query, client.Name, client.Phone)
	if err != nil {
		return 0, fmt.Errorf("inserting client: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return int(lastInsertID), nil
}

func (r *MySQLClientRepository) FindAll(ctx context.Context) ([]domain.Client, error) {
	query := `SELECT id, name, phone FROM Client ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying clients: %w", err)
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone); err != nil {
			return nil, fmt.Errorf("scanning client row: %w", err)
		}
		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating client rows: %w", err)
	}

	return clients, nil
}

func (r *MySQLClientRepository) FindByID(ctx context.Context, id int) (*domain.Client, error) {
	query := `SELECT id, name, phone FROM Client WHERE id = ?`

	var c domain.Client
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Phone)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("client with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying client by id: %w", err)
	}

	return &c, nil
}

func (r *MySQLClientRepository) InsertAddress(ctx context.Context, address domain.Address) (int, error) {
	query := `
		INSERT INTO Address (clientId, street, number, neighborhood, city, state, zipCode, complement, reference, nickname)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		address.ClientID, address.Street, address.Number, address.Neighborhood,
		address.City, address.State, address.ZipCode,
		address.Complement, address.Reference, address.Nickname,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting address: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return int(lastInsertID), nil
}

func (r *MySQLClientRepository) FindAddressesByClientID(ctx context.Context, clientID int) ([]domain.Address, error) {
	query := `
		SELECT id, clientId, street, number, neighborhood, city, state, zipCode, complement, reference, nickname
		FROM Address
		WHERE clientId = ?
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("querying addresses: %w", err)
	}
	defer rows.Close()

	var addresses []domain.Address
	for rows.Next() {
		var a domain.Address
		err := rows.Scan(
			&a.ID, &a.ClientID, &a.Street, &a.Number, &a.Neighborhood,
			&a.City, &a.State, &a.ZipCode, &a.Complement, &a.Reference, &a.Nickname,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning address row: %w", err)
		}
		addresses = append(addresses, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating address rows: %w", err)
	}

	return addresses, nil
}
