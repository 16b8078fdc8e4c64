// AngelaMos | 2026
// service.go

package category

import (
	"context"
	"errors"

	"github.com/carterperez-dev/inventory-api/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateCategory(
	ctx context.Context,
	req CreateCategoryRequest,
) (*Category, error) {
	category := &Category{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *Service) GetCategory(
	ctx context.Context,
	id int64,
) (*Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateCategory(
	ctx context.Context,
	id int64,
	patch UpdateCategoryRequest,
) (*Category, error) {
	return s.repo.Update(ctx, id, patch)
}

func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	return s.repo.SoftDelete(ctx, id)
}

// CategoryExists lets other stores validate incoming category ids without
// caring about the row itself. A soft-deleted category does not exist.
func (s *Service) CategoryExists(ctx context.Context, id int64) (bool, error) {
	_, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

func (s *Service) ListCategories(
	ctx context.Context,
	params ListCategoriesParams,
) ([]Category, int, error) {
	return s.repo.List(ctx, params)
}
