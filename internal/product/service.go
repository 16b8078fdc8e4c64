// AngelaMos | 2026
// service.go

package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/carterperez-dev/inventory-api/internal/core"
)

// CategoryChecker is the slice of the category store the product service
// needs: existence checks for incoming category ids.
type CategoryChecker interface {
	CategoryExists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo       Repository
	categories CategoryChecker
}

func NewService(repo Repository, categories CategoryChecker) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
	}
}

func (s *Service) CreateProduct(
	ctx context.Context,
	req CreateProductRequest,
) (*Product, error) {
	if err := s.checkCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	product := &Product{
		Name:          req.Name,
		Description:   req.Description,
		CategoryID:    req.CategoryID,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.resolveCategoryName(ctx, product)

	return product, nil
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateProduct patches the row, then resolves the category label in a
// second, independent statement. A concurrent category delete between the
// two can leave the label stale or empty; that race is accepted, not
// guarded by a transaction.
func (s *Service) UpdateProduct(
	ctx context.Context,
	id int64,
	patch UpdateProductRequest,
) (*Product, error) {
	if patch.CategoryID != nil {
		if err := s.checkCategory(ctx, *patch.CategoryID); err != nil {
			return nil, err
		}
	}

	product, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.resolveCategoryName(ctx, product)

	return product, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *Service) ListProducts(
	ctx context.Context,
	params ListProductsParams,
) ([]Product, int, error) {
	return s.repo.List(ctx, params)
}

func (s *Service) checkCategory(ctx context.Context, categoryID int64) error {
	exists, err := s.categories.CategoryExists(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("check category: %w", err)
	}

	if !exists {
		return fmt.Errorf(
			"category %d does not exist: %w",
			categoryID,
			core.ErrInvalidInput,
		)
	}

	return nil
}

func (s *Service) resolveCategoryName(ctx context.Context, product *Product) {
	name, err := s.repo.CategoryName(ctx, product.CategoryID)
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		return
	}
	product.CategoryName = name
}
