// AngelaMos | 2026
// store.go

package admin

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// InventoryCounts is a snapshot of the active rows in the system, surfaced
// on the admin stats endpoint.
type InventoryCounts struct {
	Users      int64 `db:"users" json:"users"`
	Categories int64 `db:"categories" json:"categories"`
	Products   int64 `db:"products" json:"products"`
	OutOfStock int64 `db:"out_of_stock" json:"outOfStock"`
	LowStock   int64 `db:"low_stock" json:"lowStock"`
	TotalStock int64 `db:"total_stock" json:"totalStock"`
}

const lowStockThreshold = 10

type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Counts(ctx context.Context) (InventoryCounts, error) {
	query := fmt.Sprintf(`
		SELECT
			(SELECT COUNT(*) FROM users WHERE is_active = true) AS users,
			(SELECT COUNT(*) FROM categories WHERE is_active = true) AS categories,
			(SELECT COUNT(*) FROM products WHERE is_active = true) AS products,
			(SELECT COUNT(*) FROM products WHERE is_active = true AND stock_quantity = 0) AS out_of_stock,
			(SELECT COUNT(*) FROM products WHERE is_active = true AND stock_quantity > 0 AND stock_quantity < %d) AS low_stock,
			(SELECT COALESCE(SUM(stock_quantity), 0) FROM products WHERE is_active = true) AS total_stock`,
		lowStockThreshold,
	)

	var counts InventoryCounts
	if err := s.db.GetContext(ctx, &counts, query); err != nil {
		return InventoryCounts{}, fmt.Errorf("loading inventory counts: %w", err)
	}

	return counts, nil
}
