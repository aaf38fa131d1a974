package client

import (
	"context"

	"despensa/internal/domain"
)

type clientService struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &clientService{repo: repo}
}

func (s *clientService) Create(ctx context.Context, client domain.Client) (*domain.Client, error) {
	id, err := s.repo.Insert(ctx, client)
	if err != nil {
		return nil, err
	}
	client.ID = id
	return &client, nil
}

func (s *clientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.repo.FindAll(ctx)
}

func (s *clientService) Get(ctx context.Context, id int) (*domain.Client, []domain.Address, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	addresses, err := s.repo.FindAddressesByClientID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return c, addresses, nil
}

func (s *clientService) AddAddress(ctx context.Context, clientID int, address domain.Address) (*domain.Address, error) {
	if _, err := s.repo.FindByID(ctx, clientID); err != nil {
		return nil, err
	}

	address.ClientID = clientID
	id, err := s.repo.InsertAddress(ctx, address)
	if err != nil {
		return nil, err
	}
	address.ID = id
	return &address, nil
}

func (s *clientService) ListAddresses(ctx context.Context, clientID int) ([]domain.Address, error) {
	if _, err := s.repo.FindByID(ctx, clientID); err != nil {
		return nil, err
	}
	return s.repo.FindAddressesByClientID(ctx, clientID)
}
