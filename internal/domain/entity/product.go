package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Price es el precio vigente; cada venta guarda su propio snapshot.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	SKU         string // código único
	Stock       int
	Category    string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
