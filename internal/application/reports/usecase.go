// Package reports contiene los casos de uso de reportes y analítica de
// ventas: ranking de vendedores, reporte mensual, comisiones y dashboard.
// Todas las operaciones son lecturas puras sobre ventas finalizadas.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/jhoicas/ventas-api/internal/domain/sales"
)

const (
	defaultRankingLimit = 10
	dashboardTopSellers = 5 // vendedores en el widget del dashboard
)

// ReportUseCase genera los reportes a partir del ReportRepository.
// No accede directamente a la tabla de ventas; delega todo en el repositorio.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo}
}

// Ranking devuelve el top de vendedores por valor total vendido, con empate
// resuelto por ID de vendedor. limit <= 0 aplica el tope por defecto (10).
// From/To acotan sale_date de forma inclusiva.
func (uc *ReportUseCase) Ranking(ctx context.Context, limit int, from, to *time.Time) ([]dto.SellerRankingDTO, error) {
	if limit <= 0 {
		limit = defaultRankingLimit
	}
	rows, err := uc.reportRepo.SellerRanking(ctx, repository.RankingFilter{
		Period: repository.Period{From: from, To: to},
		Limit:  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("reporte ranking: %w", err)
	}
	return toRankingDTOs(rows), nil
}

// Monthly genera el reporte completo de un mes: totales del período más el
// desglose por vendedor (sin límite, ordenado por valor total descendente).
// La ventana es inclusiva en ambos extremos: [día 1 00:00:00.000,
// último día 23:59:59.999]. Un mes sin ventas devuelve totales en cero y
// desglose vacío, nunca error.
func (uc *ReportUseCase) Monthly(ctx context.Context, month, year int) (*dto.MonthlyReportDTO, error) {
	if month < 1 || month > 12 {
		return nil, domain.ErrInvalidInput
	}
	if year < 2000 || year > 2100 {
		return nil, domain.ErrInvalidInput
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	period := repository.Period{From: &start, To: &end}

	totals, err := uc.reportRepo.PeriodTotals(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("reporte mensual: totales: %w", err)
	}
	breakdown, err := uc.reportRepo.SellerRanking(ctx, repository.RankingFilter{Period: period})
	if err != nil {
		return nil, fmt.Errorf("reporte mensual: desglose: %w", err)
	}

	return &dto.MonthlyReportDTO{
		Month:           month,
		Year:            year,
		TotalValue:      sales.Round2(totals.TotalValue),
		SalesCount:      totals.SalesCount,
		TotalCommission: sales.Round2(totals.TotalCommission),
		AverageTicket:   sales.Round2(totals.AverageTicket),
		Sellers:         toRankingDTOs(breakdown),
	}, nil
}

// Commissions devuelve las comisiones acumuladas por vendedor, ordenadas por
// comisión total descendente. sellerID vacío incluye a todos.
func (uc *ReportUseCase) Commissions(ctx context.Context, sellerID string, from, to *time.Time) ([]dto.SellerCommissionDTO, error) {
	if sellerID != "" {
		if _, err := uuid.Parse(sellerID); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	rows, err := uc.reportRepo.SellerCommissions(ctx, repository.CommissionFilter{
		SellerID: sellerID,
		Period:   repository.Period{From: from, To: to},
	})
	if err != nil {
		return nil, fmt.Errorf("reporte comisiones: %w", err)
	}
	out := make([]dto.SellerCommissionDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SellerCommissionDTO{
			SellerID:          r.SellerID,
			SellerName:        r.SellerName,
			SellerEmail:       r.SellerEmail,
			CommissionPercent: r.CommissionPercent,
			TotalCommission:   sales.Round2(r.TotalCommission),
			TotalValue:        sales.Round2(r.TotalValue),
			SalesCount:        r.SalesCount,
		})
	}
	return out, nil
}

// Dashboard construye el resumen del día y del mes en curso.
//
// A diferencia del reporte mensual, las ventanas son semi-abiertas:
// hoy = [medianoche, medianoche+1d) y mes = [día 1, día 1 del mes siguiente).
//
// Tres consultas en paralelo:
//  1. PeriodTotals(hoy)
//  2. PeriodTotals(mes)
//  3. SellerRanking(mes, top 5)
func (uc *ReportUseCase) Dashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := todayStart.AddDate(0, 0, 1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonth := monthStart.AddDate(0, 1, 0)

	todayPeriod := repository.Period{From: &todayStart, To: &tomorrow, ToExclusive: true}
	monthPeriod := repository.Period{From: &monthStart, To: &nextMonth, ToExclusive: true}

	type totalsResult struct {
		row repository.PeriodTotalsRow
		err error
	}
	type rankingResult struct {
		rows []repository.SellerRankingRow
		err  error
	}

	todayCh := make(chan totalsResult, 1)
	monthCh := make(chan totalsResult, 1)
	topCh := make(chan rankingResult, 1)

	go func() {
		row, err := uc.reportRepo.PeriodTotals(ctx, todayPeriod)
		todayCh <- totalsResult{row, err}
	}()
	go func() {
		row, err := uc.reportRepo.PeriodTotals(ctx, monthPeriod)
		monthCh <- totalsResult{row, err}
	}()
	go func() {
		rows, err := uc.reportRepo.SellerRanking(ctx, repository.RankingFilter{
			Period: monthPeriod,
			Limit:  dashboardTopSellers,
		})
		topCh <- rankingResult{rows, err}
	}()

	today := <-todayCh
	month := <-monthCh
	top := <-topCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: totales de hoy: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: totales del mes: %w", month.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top vendedores: %w", top.err)
	}

	return &dto.DashboardDTO{
		SalesToday:      sales.Round2(today.row.TotalValue),
		SalesMonth:      sales.Round2(month.row.TotalValue),
		CommissionToday: sales.Round2(today.row.TotalCommission),
		CommissionMonth: sales.Round2(month.row.TotalCommission),
		AvgTicketToday:  sales.Round2(today.row.AverageTicket),
		AvgTicketMonth:  sales.Round2(month.row.AverageTicket),
		TopSellersMonth: toRankingDTOs(top.rows),
	}, nil
}

func toRankingDTOs(rows []repository.SellerRankingRow) []dto.SellerRankingDTO {
	out := make([]dto.SellerRankingDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SellerRankingDTO{
			SellerID:        r.SellerID,
			SellerName:      r.SellerName,
			TotalValue:      sales.Round2(r.TotalValue),
			SalesCount:      r.SalesCount,
			TotalCommission: sales.Round2(r.TotalCommission),
			AverageTicket:   sales.Round2(r.AverageTicket),
		})
	}
	return out
}
