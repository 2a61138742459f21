package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/reports"
	"github.com/jhoicas/ventas-api/internal/domain"
)

// ReportHandler maneja las peticiones HTTP de reportes (protegido).
type ReportHandler struct {
	uc  *reports.ReportUseCase
	pdf *reports.PDFUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *reports.ReportUseCase, pdf *reports.PDFUseCase) *ReportHandler {
	return &ReportHandler{uc: uc, pdf: pdf}
}

// Ranking godoc
// @Summary      Ranking de vendedores
// @Description  Vendedores ordenados por valor vendido descendente (solo ventas finalizadas).
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        limit      query  int     false  "Máximo de posiciones (por defecto 10)"
// @Param        date_from  query  string  false  "Fecha mínima (2006-01-02 o RFC3339)"
// @Param        date_to    query  string  false  "Fecha máxima (2006-01-02 o RFC3339)"
// @Success      200  {array}   dto.SellerRankingDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/ranking [get]
func (h *ReportHandler) Ranking(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	from, ok := parseDateQuery(c, "date_from")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date_from inválida"})
	}
	to, ok := parseDateQuery(c, "date_to")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date_to inválida"})
	}
	out, err := h.uc.Ranking(c.UserContext(), limit, from, to)
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// Monthly godoc
// @Summary      Reporte mensual
// @Description  Totales y desglose por vendedor del mes calendario indicado.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        month  query  int  true  "Mes (1-12)"
// @Param        year   query  int  true  "Año (2000-2100)"
// @Success      200  {object}  dto.MonthlyReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/monthly [get]
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	month := c.QueryInt("month", 0)
	year := c.QueryInt("year", 0)
	out, err := h.uc.Monthly(c.UserContext(), month, year)
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// MonthlyPDF godoc
// @Summary      Reporte mensual en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        month  query  int  true  "Mes (1-12)"
// @Param        year   query  int  true  "Año (2000-2100)"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/monthly/pdf [get]
func (h *ReportHandler) MonthlyPDF(c *fiber.Ctx) error {
	month := c.QueryInt("month", 0)
	year := c.QueryInt("year", 0)
	pdfBytes, filename, err := h.pdf.DownloadMonthlyPDF(c.UserContext(), month, year)
	if err != nil {
		return reportError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// Commissions godoc
// @Summary      Comisiones por vendedor
// @Description  Comisiones acumuladas sobre ventas finalizadas, con filtro opcional de vendedor y período.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        seller_id  query  string  false  "Filtrar por vendedor"
// @Param        date_from  query  string  false  "Fecha mínima (2006-01-02 o RFC3339)"
// @Param        date_to    query  string  false  "Fecha máxima (2006-01-02 o RFC3339)"
// @Success      200  {array}   dto.SellerCommissionDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/commissions [get]
func (h *ReportHandler) Commissions(c *fiber.Ctx) error {
	from, ok := parseDateQuery(c, "date_from")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date_from inválida"})
	}
	to, ok := parseDateQuery(c, "date_to")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date_to inválida"})
	}
	out, err := h.uc.Commissions(c.UserContext(), c.Query("seller_id"), from, to)
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      Dashboard de ventas
// @Description  KPIs del día y del mes en curso más el top de vendedores del mes.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.UserContext())
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// parseDateQuery parsea un query param de fecha opcional.
// Acepta 2006-01-02 o RFC3339; ok=false si el valor existe pero es inválido.
func parseDateQuery(c *fiber.Ctx, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, true
	}
	if t, err := time.ParseInLocation("2006-01-02", raw, time.Local); err == nil {
		return &t, true
	}
	return nil, false
}

// reportError mapea errores de dominio de reportes a su status HTTP.
func reportError(c *fiber.Ctx, err error) error {
	if err == domain.ErrInvalidInput {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
