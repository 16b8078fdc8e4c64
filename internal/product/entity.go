// AngelaMos | 2026
// entity.go

package product

import (
	"time"
)

type Product struct {
	ID            int64     `db:"id"`
	Name          string    `db:"name"`
	Description   string    `db:"description"`
	CategoryID    int64     `db:"category_id"`
	Price         float64   `db:"price"`
	StockQuantity int       `db:"stock_quantity"`
	IsActive      bool      `db:"is_active"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`

	// CategoryName is resolved from the categories table on reads. It is
	// not a column of products and is absent on bare-row operations.
	CategoryName string `db:"category_name"`
}
