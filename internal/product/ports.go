package product

import (
	"context"

	"despensa/internal/domain"
)

type Service interface {
	Create(ctx context.Context, product domain.Product) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int) (*domain.Product, error)
	Update(ctx context.Context, product domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int) error
}

type Repository interface {
	Insert(ctx context.Context, product domain.Product) (int, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	Update(ctx context.Context, product domain.Product) error
	Delete(ctx context.Context, id int) error
}
