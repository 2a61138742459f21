package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSellerRequest cuerpo de POST /api/sellers.
// CommissionPercent nil aplica la tarifa por defecto (5%).
type CreateSellerRequest struct {
	Name              string           `json:"name"`
	Email             string           `json:"email"`
	TaxID             string           `json:"tax_id"`
	Phone             string           `json:"phone"`
	CommissionPercent *decimal.Decimal `json:"commission_percent"`
}

// UpdateSellerRequest cuerpo de PATCH /api/sellers/:id.
type UpdateSellerRequest struct {
	Name              *string          `json:"name"`
	Email             *string          `json:"email"`
	TaxID             *string          `json:"tax_id"`
	Phone             *string          `json:"phone"`
	Active            *bool            `json:"active"`
	CommissionPercent *decimal.Decimal `json:"commission_percent"`
}

// SellerResponse representación de un vendedor en la API.
type SellerResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	TaxID             string          `json:"tax_id"`
	Phone             string          `json:"phone,omitempty"`
	Active            bool            `json:"active"`
	CommissionPercent decimal.Decimal `json:"commission_percent"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
