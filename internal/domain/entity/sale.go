package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una venta. Una venta nunca se borra
// físicamente: cancelarla es pasar Status a SaleStatusCancelled.
const (
	SaleStatusFinalized = "finalized"
	SaleStatusCancelled = "cancelled"
	SaleStatusPending   = "pending"
)

// Sale representa una venta registrada.
//
// UnitPrice y CommissionPercent son snapshots tomados del producto y del
// vendedor en el momento de la creación; cambios posteriores en el catálogo
// o en la tarifa del vendedor no alteran ventas ya registradas.
type Sale struct {
	ID                string
	ProductID         string
	SellerID          string
	Quantity          int
	UnitPrice         decimal.Decimal // precio del producto al crear (snapshot)
	TotalValue        decimal.Decimal // round2(UnitPrice * Quantity)
	CommissionPercent decimal.Decimal // tarifa del vendedor al crear (snapshot)
	CommissionValue   decimal.Decimal // round2(TotalValue * CommissionPercent / 100)
	SaleDate          time.Time       // fecha de la venta, provista por el caller
	Note              string
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ValidSaleStatus indica si s es uno de los estados conocidos.
func ValidSaleStatus(s string) bool {
	return s == SaleStatusFinalized || s == SaleStatusCancelled || s == SaleStatusPending
}
