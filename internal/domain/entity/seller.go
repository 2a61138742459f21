package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Seller representa un vendedor que gana comisión sobre sus ventas.
// Email y TaxID son únicos. CommissionPercent es la tarifa vigente; las
// ventas ya registradas conservan su propio snapshot.
type Seller struct {
	ID                string
	Name              string
	Email             string
	TaxID             string // documento fiscal (CPF/NIT), único
	Phone             string
	Active            bool
	CommissionPercent decimal.Decimal // porcentaje, ej. 5 = 5%
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
