package product

import (
	"context"

	"despensa/internal/domain"
)

type productService struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &productService{repo: repo}
}

func (s *productService) Create(ctx context.Context, product domain.Product) (*domain.Product, error) {
	id, err := s.repo.Insert(ctx, product)
	if err != nil {
		return nil, err
	}
	product.ID = id
	return &product, nil
}

func (s *productService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *productService) Get(ctx context.Context, id int) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *productService) Update(ctx context.Context, product domain.Product) (*domain.Product, error) {
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, product.ID)
}

func (s *productService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
