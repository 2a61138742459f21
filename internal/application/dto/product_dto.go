package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest cuerpo de POST /api/products.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	SKU         string          `json:"sku"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
}

// UpdateProductRequest cuerpo de PATCH /api/products/:id.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	SKU         *string          `json:"sku"`
	Category    *string          `json:"category"`
	Active      *bool            `json:"active"`
}

// AdjustStockRequest cuerpo de POST /api/products/:id/stock.
// Quantity puede ser negativo (salida); el stock resultante no puede ser < 0.
type AdjustStockRequest struct {
	Quantity int `json:"quantity"`
}

// ProductResponse representación de un producto en la API.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	SKU         string          `json:"sku"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category,omitempty"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
