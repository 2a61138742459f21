// Package sales contiene los servicios de dominio del cálculo monetario de
// una venta: valor total y comisión, siempre redondeados a 2 decimales.
package sales

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Round2 redondea a 2 decimales (half away from zero, no banker's rounding).
// Se aplica en cada derivación monetaria para que los valores persistidos ya
// sean canónicos, no solo los de salida.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// TotalValue calcula el valor total de la venta: round2(unitPrice * quantity).
func TotalValue(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return Round2(unitPrice.Mul(decimal.NewFromInt(int64(quantity))))
}

// Commission calcula la comisión: round2(totalValue * percent / 100).
// percent es el snapshot guardado en la venta, nunca la tarifa vigente.
func Commission(totalValue, percent decimal.Decimal) decimal.Decimal {
	return Round2(totalValue.Mul(percent).Div(hundred))
}
