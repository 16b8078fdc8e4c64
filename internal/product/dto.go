// AngelaMos | 2026
// dto.go

package product

import (
	"time"
)

type CreateProductRequest struct {
	Name          string  `json:"name"          validate:"required,min=1,max=200"`
	Description   string  `json:"description"   validate:"omitempty,max=1000"`
	CategoryID    int64   `json:"categoryId"    validate:"required,gt=0"`
	Price         float64 `json:"price"         validate:"required,gte=0"`
	StockQuantity int     `json:"stockQuantity" validate:"gte=0"`
}

// UpdateProductRequest is a sparse patch. Presence is key-presence, not
// truthiness: a price of 0, a stock of 0, or isActive=false all take
// effect when the pointer is set.
type UpdateProductRequest struct {
	Name          *string  `json:"name,omitempty"          validate:"omitempty,min=1,max=200"`
	Description   *string  `json:"description,omitempty"   validate:"omitempty,max=1000"`
	CategoryID    *int64   `json:"categoryId,omitempty"    validate:"omitempty,gt=0"`
	Price         *float64 `json:"price,omitempty"         validate:"omitempty,gte=0"`
	StockQuantity *int     `json:"stockQuantity,omitempty" validate:"omitempty,gte=0"`
	IsActive      *bool    `json:"isActive,omitempty"`
}

type ProductResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	CategoryID    int64     `json:"categoryId"`
	CategoryName  string    `json:"categoryName"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stockQuantity"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type ListProductsParams struct {
	Page       int
	Limit      int
	Search     string
	CategoryID int64
}

func (p *ListProductsParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

func (p *ListProductsParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

func ToProductResponse(p *Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		CategoryID:    p.CategoryID,
		CategoryName:  p.CategoryName,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func ToProductResponseList(products []Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, ToProductResponse(&p))
	}
	return responses
}
