// AngelaMos | 2026
// service_test.go

package category

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/inventory-api/internal/core"
)

type stubRepo struct {
	category *Category
	err      error
}

func (s *stubRepo) Create(ctx context.Context, category *Category) error {
	return s.err
}

func (s *stubRepo) GetByID(ctx context.Context, id int64) (*Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.category, nil
}

func (s *stubRepo) Update(
	ctx context.Context,
	id int64,
	patch UpdateCategoryRequest,
) (*Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.category, nil
}

func (s *stubRepo) SoftDelete(ctx context.Context, id int64) error {
	return s.err
}

func (s *stubRepo) List(
	ctx context.Context,
	params ListCategoriesParams,
) ([]Category, int, error) {
	return nil, 0, s.err
}

func TestCategoryExists(t *testing.T) {
	t.Run("active category", func(t *testing.T) {
		svc := NewService(&stubRepo{category: &Category{ID: 3}})

		exists, err := svc.CategoryExists(context.Background(), 3)

		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("soft-deleted category reads as absent", func(t *testing.T) {
		svc := NewService(&stubRepo{err: core.ErrNotFound})

		exists, err := svc.CategoryExists(context.Background(), 3)

		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		storeErr := errors.New("connection reset")
		svc := NewService(&stubRepo{err: storeErr})

		_, err := svc.CategoryExists(context.Background(), 3)

		assert.ErrorIs(t, err, storeErr)
	})
}
