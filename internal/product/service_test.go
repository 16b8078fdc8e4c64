// AngelaMos | 2026
// service_test.go

package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/inventory-api/internal/core"
)

type stubChecker struct {
	exists bool
	err    error
	calls  []int64
}

func (s *stubChecker) CategoryExists(
	ctx context.Context,
	id int64,
) (bool, error) {
	s.calls = append(s.calls, id)
	return s.exists, s.err
}

type stubRepo struct {
	product      *Product
	categoryName string
	err          error

	createdProduct *Product
	updatePatch    *UpdateProductRequest
	updateID       int64
}

func (s *stubRepo) Create(ctx context.Context, product *Product) error {
	if s.err != nil {
		return s.err
	}
	product.ID = 1
	s.createdProduct = product
	return nil
}

func (s *stubRepo) GetByID(ctx context.Context, id int64) (*Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.product, nil
}

func (s *stubRepo) Update(
	ctx context.Context,
	id int64,
	patch UpdateProductRequest,
) (*Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.updateID = id
	s.updatePatch = &patch
	return s.product, nil
}

func (s *stubRepo) SoftDelete(ctx context.Context, id int64) error {
	return s.err
}

func (s *stubRepo) List(
	ctx context.Context,
	params ListProductsParams,
) ([]Product, int, error) {
	return nil, 0, s.err
}

func (s *stubRepo) CategoryName(
	ctx context.Context,
	categoryID int64,
) (string, error) {
	if s.categoryName == "" {
		return "", core.ErrNotFound
	}
	return s.categoryName, nil
}

func TestCreateProduct_UnknownCategory(t *testing.T) {
	checker := &stubChecker{exists: false}
	svc := NewService(&stubRepo{}, checker)

	_, err := svc.CreateProduct(context.Background(), CreateProductRequest{
		Name:       "Widget",
		CategoryID: 99,
		Price:      4.5,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
	assert.Equal(t, []int64{99}, checker.calls)
}

func TestCreateProduct_ResolvesCategoryName(t *testing.T) {
	repo := &stubRepo{categoryName: "Cables"}
	svc := NewService(repo, &stubChecker{exists: true})

	product, err := svc.CreateProduct(context.Background(), CreateProductRequest{
		Name:       "HDMI Cable",
		CategoryID: 3,
		Price:      12.0,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), product.ID)
	assert.Equal(t, "Cables", product.CategoryName)
}

func TestUpdateProduct_SkipsCategoryCheckWhenAbsent(t *testing.T) {
	checker := &stubChecker{exists: true}
	repo := &stubRepo{product: &Product{ID: 5, CategoryID: 2}}
	svc := NewService(repo, checker)

	name := "Renamed"
	_, err := svc.UpdateProduct(context.Background(), 5, UpdateProductRequest{
		Name: &name,
	})

	require.NoError(t, err)
	assert.Empty(t, checker.calls)
	require.NotNil(t, repo.updatePatch)
	assert.Equal(t, int64(5), repo.updateID)
}

func TestUpdateProduct_ChecksNewCategory(t *testing.T) {
	checker := &stubChecker{exists: false}
	svc := NewService(&stubRepo{}, checker)

	categoryID := int64(42)
	_, err := svc.UpdateProduct(context.Background(), 5, UpdateProductRequest{
		CategoryID: &categoryID,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
	assert.Equal(t, []int64{42}, checker.calls)
}

func TestUpdateProduct_MissingCategoryLeavesEmptyLabel(t *testing.T) {
	// The label lookup runs as a second statement after the update; a
	// category deleted in between yields an empty label, not an error.
	repo := &stubRepo{
		product:      &Product{ID: 5, CategoryID: 2},
		categoryName: "",
	}
	svc := NewService(repo, &stubChecker{exists: true})

	name := "Renamed"
	product, err := svc.UpdateProduct(context.Background(), 5, UpdateProductRequest{
		Name: &name,
	})

	require.NoError(t, err)
	assert.Empty(t, product.CategoryName)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	repo := &stubRepo{err: core.ErrNotFound}
	svc := NewService(repo, &stubChecker{exists: true})

	_, err := svc.UpdateProduct(context.Background(), 404, UpdateProductRequest{})

	assert.ErrorIs(t, err, core.ErrNotFound)
}
