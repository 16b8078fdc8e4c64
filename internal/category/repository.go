// AngelaMos | 2026
// repository.go

package category

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/inventory-api/internal/core"
)

const categoryColumns = `id, name, description, is_active, created_at, updated_at`

type Repository interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, id int64) (*Category, error)
	Update(
		ctx context.Context,
		id int64,
		patch UpdateCategoryRequest,
	) (*Category, error)
	SoftDelete(ctx context.Context, id int64) error
	List(
		ctx context.Context,
		params ListCategoriesParams,
	) ([]Category, int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, category *Category) error {
	query := `
		INSERT INTO categories (name, description)
		VALUES ($1, $2)
		RETURNING id, is_active, created_at, updated_at`

	err := r.db.GetContext(ctx, category, query,
		category.Name,
		category.Description,
	)
	if err != nil {
		if core.IsUniqueViolation(err) {
			return fmt.Errorf("create category: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create category: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id int64,
) (*Category, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM categories
		WHERE id = $1 AND is_active = true`, categoryColumns)

	var category Category
	err := r.db.GetContext(ctx, &category, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get category: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	return &category, nil
}

func (r *repository) Update(
	ctx context.Context,
	id int64,
	patch UpdateCategoryRequest,
) (*Category, error) {
	b := core.NewUpdateBuilder()

	if patch.Name != nil {
		b.Set("name", *patch.Name)
	}
	if patch.Description != nil {
		b.Set("description", *patch.Description)
	}
	if patch.IsActive != nil {
		b.Set("is_active", *patch.IsActive)
	}

	if b.Empty() {
		return r.GetByID(ctx, id)
	}

	query, args := b.Build("categories", id, categoryColumns)

	var category Category
	err := r.db.GetContext(ctx, &category, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update category: %w", core.ErrNotFound)
	}
	if err != nil {
		if core.IsUniqueViolation(err) {
			return nil, fmt.Errorf("update category: %w", core.ErrDuplicateKey)
		}
		return nil, fmt.Errorf("update category: %w", err)
	}

	return &category, nil
}

func (r *repository) SoftDelete(ctx context.Context, id int64) error {
	query := `
		UPDATE categories
		SET is_active = false, updated_at = NOW()
		WHERE id = $1 AND is_active = true`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete category: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) List(
	ctx context.Context,
	params ListCategoriesParams,
) ([]Category, int, error) {
	params.Normalize()

	b := core.NewListBuilder("is_active = true")
	b.Search(params.Search, "name", "description")

	countQuery, countArgs := b.CountQuery("categories")
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}

	pageQuery, pageArgs := b.PageQuery(
		"categories",
		categoryColumns,
		"name ASC",
		params.Limit,
		params.Offset(),
	)

	var categories []Category
	if err := r.db.SelectContext(ctx, &categories, pageQuery, pageArgs...); err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}

	return categories, total, nil
}
