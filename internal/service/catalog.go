package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/omg-lab/omg-backend/internal/entity"
	"github.com/omg-lab/omg-backend/internal/repository"
)

// CatalogService resolves free-text catalog labels to rows, creating
// missing ones on the fly.
type CatalogService struct {
	repo repository.CatalogRepository
}

func NewCatalogService(repo repository.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// Resolve returns the existing row whose label matches the input after
// trimming and lower-casing, or creates one carrying the original,
// untouched label. Two concurrent misses on the same label can both
// insert; the lookup is not serialized.
func (s *CatalogService) Resolve(ctx context.Context, kind entity.CatalogKind, label string) (*entity.CatalogItem, error) {
	item, err := s.repo.FindByNormalizedLabel(ctx, kind, label)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to resolve %s %q: %w", kind, label, err)
	}

	item = &entity.CatalogItem{Label: label}
	if err := s.repo.Create(ctx, kind, item); err != nil {
		return nil, fmt.Errorf("failed to create %s %q: %w", kind, label, err)
	}
	return item, nil
}
