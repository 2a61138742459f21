package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Period acota un rango de fechas sobre sale_date. From y To son opcionales.
// Con ToExclusive el límite superior es abierto (sale_date < To), como usan
// las ventanas del dashboard; si no, ambos extremos son inclusivos.
type Period struct {
	From        *time.Time
	To          *time.Time
	ToExclusive bool
}

// RankingFilter parámetros del ranking de vendedores.
// Limit <= 0 significa sin límite (desglose del reporte mensual).
type RankingFilter struct {
	Period Period
	Limit  int
}

// CommissionFilter parámetros del reporte de comisiones.
type CommissionFilter struct {
	SellerID string
	Period   Period
}

// SellerRankingRow fila agregada del ranking por vendedor.
type SellerRankingRow struct {
	SellerID        string
	SellerName      string
	TotalValue      decimal.Decimal
	SalesCount      int64
	TotalCommission decimal.Decimal
	AverageTicket   decimal.Decimal
}

// PeriodTotalsRow agregados globales de un período.
type PeriodTotalsRow struct {
	TotalValue      decimal.Decimal
	SalesCount      int64
	TotalCommission decimal.Decimal
	AverageTicket   decimal.Decimal
}

// SellerCommissionRow fila agregada del reporte de comisiones.
type SellerCommissionRow struct {
	SellerID          string
	SellerName        string
	SellerEmail       string
	CommissionPercent decimal.Decimal
	TotalCommission   decimal.Decimal
	TotalValue        decimal.Decimal
	SalesCount        int64
}

// ReportRepository consultas agregadas de solo lectura sobre las ventas.
// Todas las consultas consideran únicamente ventas con status finalized.
type ReportRepository interface {
	// SellerRanking agrupa por vendedor y ordena por TotalValue DESC,
	// con SellerID ASC como desempate determinista.
	SellerRanking(ctx context.Context, filter RankingFilter) ([]SellerRankingRow, error)
	// PeriodTotals agrega el período completo; devuelve ceros si no hay ventas.
	PeriodTotals(ctx context.Context, period Period) (PeriodTotalsRow, error)
	// SellerCommissions agrupa por vendedor y ordena por TotalCommission DESC.
	SellerCommissions(ctx context.Context, filter CommissionFilter) ([]SellerCommissionRow, error)
}
