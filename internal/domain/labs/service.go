package labs

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	repo CategoryRepository
}

func NewService(repo CategoryRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateCategory(ctx context.Context, cat *Category) error {
	if cat.Name == "" {
		return fmt.Errorf("category name is required")
	}
	return s.repo.Create(ctx, cat)
}

func (s *Service) GetCategory(ctx context.Context, id uuid.UUID) (*Category, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateCategory surfaces ErrNotFound when the category does not exist;
// updates never upsert.
func (s *Service) UpdateCategory(ctx context.Context, cat *Category) error {
	if cat.Name == "" {
		return fmt.Errorf("category name is required")
	}
	return s.repo.Update(ctx, cat)
}

func (s *Service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context, limit, offset int) ([]*Category, int, error) {
	return s.repo.List(ctx, limit, offset)
}
