package service

import (
	"context"

	"github.com/omg-lab/omg-backend/internal/entity"
	"github.com/omg-lab/omg-backend/internal/repository"
)

// ClienteService is the read-side lookup used during pedido creation.
type ClienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) *ClienteService {
	return &ClienteService{repo: repo}
}

// Get returns the cliente or repository.ErrNotFound.
func (s *ClienteService) Get(ctx context.Context, id int) (*entity.Cliente, error) {
	return s.repo.Get(ctx, id)
}
