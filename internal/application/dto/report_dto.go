package dto

import "github.com/shopspring/decimal"

// SellerRankingDTO posición de un vendedor en el ranking por valor vendido.
type SellerRankingDTO struct {
	SellerID        string          `json:"seller_id"`
	SellerName      string          `json:"seller_name"`
	TotalValue      decimal.Decimal `json:"total_value"`
	SalesCount      int64           `json:"sales_count"`
	TotalCommission decimal.Decimal `json:"total_commission"`
	AverageTicket   decimal.Decimal `json:"average_ticket"` // ticket medio del grupo
}

// MonthlyReportDTO respuesta de GET /api/reports/monthly.
type MonthlyReportDTO struct {
	Month           int                `json:"month"`
	Year            int                `json:"year"`
	TotalValue      decimal.Decimal    `json:"total_value"`
	SalesCount      int64              `json:"sales_count"`
	TotalCommission decimal.Decimal    `json:"total_commission"`
	AverageTicket   decimal.Decimal    `json:"average_ticket"`
	Sellers         []SellerRankingDTO `json:"sellers"` // desglose sin límite, total DESC
}

// SellerCommissionDTO comisiones acumuladas de un vendedor.
type SellerCommissionDTO struct {
	SellerID          string          `json:"seller_id"`
	SellerName        string          `json:"seller_name"`
	SellerEmail       string          `json:"seller_email"`
	CommissionPercent decimal.Decimal `json:"commission_percent"` // tarifa vigente del vendedor
	TotalCommission   decimal.Decimal `json:"total_commission"`
	TotalValue        decimal.Decimal `json:"total_value"`
	SalesCount        int64           `json:"sales_count"`
}

// DashboardDTO respuesta de GET /api/reports/dashboard.
// Ventanas semi-abiertas: hoy = [medianoche, medianoche+1d);
// mes = [día 1, día 1 del mes siguiente).
type DashboardDTO struct {
	SalesToday      decimal.Decimal    `json:"sales_today"`
	SalesMonth      decimal.Decimal    `json:"sales_month"`
	CommissionToday decimal.Decimal    `json:"commission_today"`
	CommissionMonth decimal.Decimal    `json:"commission_month"`
	AvgTicketToday  decimal.Decimal    `json:"avg_ticket_today"`
	AvgTicketMonth  decimal.Decimal    `json:"avg_ticket_month"`
	TopSellersMonth []SellerRankingDTO `json:"top_sellers_month"`
}
