package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura sobre las ventas.
// Todas filtran status = finalized: las canceladas y pendientes nunca suman.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// periodConds agrega los predicados de fecha del período a conds/args.
// Con ToExclusive el límite superior es sale_date < To (ventanas del
// dashboard); si no, sale_date <= To.
func periodConds(p repository.Period, args []any) (string, []any) {
	var conds string
	if p.From != nil {
		args = append(args, *p.From)
		conds += " AND s.sale_date >= $" + strconv.Itoa(len(args))
	}
	if p.To != nil {
		args = append(args, *p.To)
		op := "<="
		if p.ToExclusive {
			op = "<"
		}
		conds += " AND s.sale_date " + op + " $" + strconv.Itoa(len(args))
	}
	return conds, args
}

// SellerRanking agrupa las ventas finalizadas por vendedor y las ordena por
// valor total descendente. El desempate por seller_id hace el orden
// determinista cuando dos vendedores empatan en total.
func (r *ReportRepo) SellerRanking(ctx context.Context, filter repository.RankingFilter) ([]repository.SellerRankingRow, error) {
	args := []any{entity.SaleStatusFinalized}
	conds, args := periodConds(filter.Period, args)

	query := `
	SELECT
	    s.seller_id,
	    v.name                         AS seller_name,
	    SUM(s.total_value)             AS total_value,
	    COUNT(s.id)                    AS sales_count,
	    SUM(s.commission_value)        AS total_commission,
	    ROUND(AVG(s.total_value), 2)   AS average_ticket
	FROM sales s
	JOIN sellers v ON v.id = s.seller_id
	WHERE s.status = $1` + conds + `
	GROUP BY s.seller_id, v.name
	ORDER BY total_value DESC, s.seller_id ASC`

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("reports.SellerRanking: %w", err)
	}
	defer rows.Close()

	var results []repository.SellerRankingRow
	for rows.Next() {
		var row repository.SellerRankingRow
		if err := rows.Scan(
			&row.SellerID, &row.SellerName, &row.TotalValue,
			&row.SalesCount, &row.TotalCommission, &row.AverageTicket,
		); err != nil {
			return nil, fmt.Errorf("reports.SellerRanking scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// PeriodTotals agrega el período completo. COALESCE devuelve ceros cuando el
// período no tiene ventas (nunca error ni NULL).
func (r *ReportRepo) PeriodTotals(ctx context.Context, period repository.Period) (repository.PeriodTotalsRow, error) {
	args := []any{entity.SaleStatusFinalized}
	conds, args := periodConds(period, args)

	query := `
	SELECT
	    COALESCE(SUM(s.total_value), 0)           AS total_value,
	    COUNT(s.id)                               AS sales_count,
	    COALESCE(SUM(s.commission_value), 0)      AS total_commission,
	    COALESCE(ROUND(AVG(s.total_value), 2), 0) AS average_ticket
	FROM sales s
	WHERE s.status = $1` + conds

	var row repository.PeriodTotalsRow
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&row.TotalValue, &row.SalesCount, &row.TotalCommission, &row.AverageTicket,
	)
	if err != nil {
		return repository.PeriodTotalsRow{}, fmt.Errorf("reports.PeriodTotals: %w", err)
	}
	return row, nil
}

// SellerCommissions agrupa por vendedor con sus datos de contacto y tarifa
// vigente, ordenado por comisión acumulada descendente.
func (r *ReportRepo) SellerCommissions(ctx context.Context, filter repository.CommissionFilter) ([]repository.SellerCommissionRow, error) {
	args := []any{entity.SaleStatusFinalized}
	conds, args := periodConds(filter.Period, args)
	if filter.SellerID != "" {
		args = append(args, filter.SellerID)
		conds += " AND s.seller_id = $" + strconv.Itoa(len(args))
	}

	query := `
	SELECT
	    s.seller_id,
	    v.name                   AS seller_name,
	    v.email                  AS seller_email,
	    v.commission_percent,
	    SUM(s.commission_value)  AS total_commission,
	    SUM(s.total_value)       AS total_value,
	    COUNT(s.id)              AS sales_count
	FROM sales s
	JOIN sellers v ON v.id = s.seller_id
	WHERE s.status = $1` + conds + `
	GROUP BY s.seller_id, v.name, v.email, v.commission_percent
	ORDER BY total_commission DESC, s.seller_id ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("reports.SellerCommissions: %w", err)
	}
	defer rows.Close()

	var results []repository.SellerCommissionRow
	for rows.Next() {
		var row repository.SellerCommissionRow
		if err := rows.Scan(
			&row.SellerID, &row.SellerName, &row.SellerEmail, &row.CommissionPercent,
			&row.TotalCommission, &row.TotalValue, &row.SalesCount,
		); err != nil {
			return nil, fmt.Errorf("reports.SellerCommissions scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
