package client

import (
	"context"

	"despensa/internal/domain"
)

type Service interface {
	Create(ctx context.Context, client domain.Client) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Get(ctx context.Context, id int) (*domain.Client, []domain.Address, error)
	AddAddress(ctx context.Context, clientID int, address domain.Address) (*domain.Address, error)
	ListAddresses(ctx context.Context, clientID int) ([]domain.Address, error)
}

type Repository interface {
	Insert(ctx context.Context, client domain.Client) (int, error)
	FindAll(ctx context.Context) ([]domain.Client, error)
	FindByID(ctx context.Context, id int) (*domain.Client, error)
	InsertAddress(ctx context.Context, address domain.Address) (int, error)
	FindAddressesByClientID(ctx context.Context, clientID int) ([]domain.Address, error)
}
