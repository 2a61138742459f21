package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest cuerpo de POST /api/sales.
// SaleDate acepta RFC3339 o fecha simple (2006-01-02).
type CreateSaleRequest struct {
	ProductID string `json:"product_id"`
	SellerID  string `json:"seller_id"`
	Quantity  int    `json:"quantity"`
	SaleDate  string `json:"sale_date"`
	Note      string `json:"note"`
}

// UpdateSaleRequest cuerpo de PATCH /api/sales/:id. Campos nil no se tocan.
type UpdateSaleRequest struct {
	ProductID *string `json:"product_id"`
	Quantity  *int    `json:"quantity"`
	SaleDate  *string `json:"sale_date"`
	Note      *string `json:"note"`
	Status    *string `json:"status"`
}

// ListSalesQuery filtros de GET /api/sales.
type ListSalesQuery struct {
	SellerID  string `query:"seller_id"`
	ProductID string `query:"product_id"`
	Status    string `query:"status"`
	DateFrom  string `query:"date_from"`
	DateTo    string `query:"date_to"`
}

// SaleResponse representación de una venta en la API.
type SaleResponse struct {
	ID                string          `json:"id"`
	ProductID         string          `json:"product_id"`
	SellerID          string          `json:"seller_id"`
	Quantity          int             `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	TotalValue        decimal.Decimal `json:"total_value"`
	CommissionPercent decimal.Decimal `json:"commission_percent"`
	CommissionValue   decimal.Decimal `json:"commission_value"`
	SaleDate          time.Time       `json:"sale_date"`
	Note              string          `json:"note,omitempty"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// SaleListResponse respuesta de GET /api/sales.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Total int            `json:"total"`
}
