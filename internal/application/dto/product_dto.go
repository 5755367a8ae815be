package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto.
type CreateProductRequest struct {
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	CategoryID    string          `json:"category_id"`
	UnitOfMeasure string          `json:"unit_of_measure"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	ReorderLevel  int64           `json:"reorder_level"`
}

// UpdateProductRequest edición de producto. El SKU es inmutable y no aparece.
type UpdateProductRequest struct {
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	CategoryID    string           `json:"category_id"`
	UnitOfMeasure string           `json:"unit_of_measure"`
	Price         *decimal.Decimal `json:"price"`
	Cost          *decimal.Decimal `json:"cost"`
	ReorderLevel  *int64           `json:"reorder_level"`
	Active        *bool            `json:"active"`
}

// ProductResponse representación pública del producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	CategoryID    string          `json:"category_id,omitempty"`
	UnitOfMeasure string          `json:"unit_of_measure"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	ReorderLevel  int64           `json:"reorder_level"`
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"created_at"`
}

// LocationBalanceDTO saldo de un producto en una ubicación.
type LocationBalanceDTO struct {
	LocationID string `json:"location_id"`
	Quantity   int64  `json:"quantity"`
}

// ProductDetailResponse producto más su stock por ubicación.
type ProductDetailResponse struct {
	Product         ProductResponse      `json:"product"`
	StockByLocation []LocationBalanceDTO `json:"stock_by_location"`
	TotalStock      int64                `json:"total_stock"`
}

// CreateCategoryRequest alta de categoría.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse representación pública de la categoría.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
