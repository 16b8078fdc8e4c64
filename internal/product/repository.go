// AngelaMos | 2026
// repository.go

package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/inventory-api/internal/core"
)

const productColumns = `id, name, description, category_id, price,
		stock_quantity, is_active, created_at, updated_at`

const joinedColumns = `p.id, p.name, p.description, p.category_id, p.price,
		p.stock_quantity, p.is_active, p.created_at, p.updated_at,
		COALESCE(c.name, '') AS category_name`

const joinedTable = `products p
		LEFT JOIN categories c ON c.id = p.category_id AND c.is_active = true`

type Repository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, id int64) (*Product, error)
	Update(
		ctx context.Context,
		id int64,
		patch UpdateProductRequest,
	) (*Product, error)
	SoftDelete(ctx context.Context, id int64) error
	List(ctx context.Context, params ListProductsParams) ([]Product, int, error)
	CategoryName(ctx context.Context, categoryID int64) (string, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, product *Product) error {
	query := `
		INSERT INTO products (name, description, category_id, price, stock_quantity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_active, created_at, updated_at`

	err := r.db.GetContext(ctx, product, query,
		product.Name,
		product.Description,
		product.CategoryID,
		product.Price,
		product.StockQuantity,
	)
	if err != nil {
		if core.IsUniqueViolation(err) {
			return fmt.Errorf("create product: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create product: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE p.id = $1 AND p.is_active = true`, joinedColumns, joinedTable)

	var product Product
	err := r.db.GetContext(ctx, &product, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get product: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	return &product, nil
}

// Update applies a sparse patch and returns the bare row. The caller
// resolves the category label in a separate statement; the two are not
// wrapped in a transaction.
func (r *repository) Update(
	ctx context.Context,
	id int64,
	patch UpdateProductRequest,
) (*Product, error) {
	b := core.NewUpdateBuilder()

	if patch.Name != nil {
		b.Set("name", *patch.Name)
	}
	if patch.Description != nil {
		b.Set("description", *patch.Description)
	}
	if patch.CategoryID != nil {
		b.Set("category_id", *patch.CategoryID)
	}
	if patch.Price != nil {
		b.Set("price", *patch.Price)
	}
	if patch.StockQuantity != nil {
		b.Set("stock_quantity", *patch.StockQuantity)
	}
	if patch.IsActive != nil {
		b.Set("is_active", *patch.IsActive)
	}

	if b.Empty() {
		return r.GetByID(ctx, id)
	}

	query, args := b.Build("products", id, productColumns)

	var product Product
	err := r.db.GetContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update product: %w", core.ErrNotFound)
	}
	if err != nil {
		if core.IsUniqueViolation(err) {
			return nil, fmt.Errorf("update product: %w", core.ErrDuplicateKey)
		}
		return nil, fmt.Errorf("update product: %w", err)
	}

	return &product, nil
}

func (r *repository) SoftDelete(ctx context.Context, id int64) error {
	query := `
		UPDATE products
		SET is_active = false, updated_at = NOW()
		WHERE id = $1 AND is_active = true`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete product: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) List(
	ctx context.Context,
	params ListProductsParams,
) ([]Product, int, error) {
	params.Normalize()

	b := core.NewListBuilder("p.is_active = true")
	b.Search(params.Search, "p.name", "p.description")
	if params.CategoryID > 0 {
		b.Where("p.category_id", params.CategoryID)
	}

	countQuery, countArgs := b.CountQuery(joinedTable)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	pageQuery, pageArgs := b.PageQuery(
		joinedTable,
		joinedColumns,
		"p.created_at DESC",
		params.Limit,
		params.Offset(),
	)

	var products []Product
	if err := r.db.SelectContext(ctx, &products, pageQuery, pageArgs...); err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}

	return products, total, nil
}

func (r *repository) CategoryName(
	ctx context.Context,
	categoryID int64,
) (string, error) {
	query := `
		SELECT name
		FROM categories
		WHERE id = $1 AND is_active = true`

	var name string
	err := r.db.GetContext(ctx, &name, query, categoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("get category name: %w", core.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("get category name: %w", err)
	}

	return name, nil
}
