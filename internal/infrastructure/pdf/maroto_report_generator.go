// Package pdf implementa la versión descargable del reporte mensual de ventas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de Ventas │ Mes/Año                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Ventas / Cantidad / Comisiones / Ticket medio     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Vendedor | Ventas | Cant. | Comisión | Ticket medio │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/reports"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

var _ reports.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa reports.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateMonthlyReportPDF genera el PDF del reporte mensual y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateMonthlyReportPDF(_ context.Context, report *dto.MonthlyReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte Mensual de Ventas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	for _, r := range sellerRows(report.Sellers) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y período (der).
func headerRow(report *dto.MonthlyReportDTO) core.Row {
	period := fmt.Sprintf("%s %d", monthNames[report.Month-1], report.Year)
	return row.New(14).Add(
		col.New(7).Add(
			text.New("REPORTE MENSUAL DE VENTAS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(period, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2,
			}),
		),
	)
}

// totalsRow: los cuatro KPIs del período.
func totalsRow(report *dto.MonthlyReportDTO) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 6}),
		)
	}
	return row.New(14).Add(
		kpi("Total vendido", "$ "+report.TotalValue.StringFixed(2)),
		kpi("Ventas", fmt.Sprintf("%d", report.SalesCount)),
		kpi("Comisiones", "$ "+report.TotalCommission.StringFixed(2)),
		kpi("Ticket medio", "$ "+report.AverageTicket.StringFixed(2)),
	)
}

// tableHeaderRow: cabecera de la tabla por vendedor.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Vendedor", 5, align.Left),
		h("Total vendido", 2, align.Right),
		h("Ventas", 1, align.Center),
		h("Comisión", 2, align.Right),
		h("Ticket medio", 2, align.Right),
	)
}

// sellerRows: una fila por vendedor, en el mismo orden del reporte.
func sellerRows(sellers []dto.SellerRankingDTO) []core.Row {
	result := make([]core.Row, 0, len(sellers))
	for _, s := range sellers {
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(s.SellerName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(s.TotalValue.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", s.SalesCount), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(s.TotalCommission.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(s.AverageTicket.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return result
}
