package sales_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ventas-api/internal/domain/sales"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// Caso de referencia: precio 3000, cantidad 2, comisión 5% → 6000.00 / 300.00.
func TestTotalValueYCommission_CasoBase(t *testing.T) {
	total := sales.TotalValue(dec("3000"), 2)
	assert.True(t, total.Equal(dec("6000.00")), "total = %s", total)

	com := sales.Commission(total, dec("5"))
	assert.True(t, com.Equal(dec("300.00")), "comisión = %s", com)
}

// 1999.99 * 5% = 99.9995 → debe redondear hacia arriba a 100.00.
func TestCommission_RedondeoHalfAwayFromZero(t *testing.T) {
	com := sales.Commission(dec("1999.99"), dec("5"))
	assert.True(t, com.Equal(dec("100.00")), "comisión = %s", com)
}

func TestRound2_MaximoDosDecimales(t *testing.T) {
	casos := []string{"0", "0.005", "1.004", "10.999", "1234.56789", "-2.345", "99.9995"}
	for _, c := range casos {
		r := sales.Round2(dec(c))
		assert.LessOrEqual(t, int(-r.Exponent()), 2, "Round2(%s) = %s tiene más de 2 decimales", c, r)
	}
}

func TestRound2_NegativosSeAlejanDeCero(t *testing.T) {
	assert.True(t, sales.Round2(dec("-2.345")).Equal(dec("-2.35")))
}

func TestTotalValue_PrecioConTresDecimales(t *testing.T) {
	// 3 * 0.335 = 1.005 → 1.01 (half away from zero)
	total := sales.TotalValue(dec("0.335"), 3)
	assert.True(t, total.Equal(dec("1.01")), "total = %s", total)
}

func TestCommission_PorcentajeCero(t *testing.T) {
	com := sales.Commission(dec("500.00"), decimal.Zero)
	assert.True(t, com.IsZero())
}
