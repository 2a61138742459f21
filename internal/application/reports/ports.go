package reports

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/application/dto"
)

// ReportPDFGenerator renderiza el reporte mensual como documento PDF.
// La implementación vive en infrastructure/pdf (Maroto).
type ReportPDFGenerator interface {
	GenerateMonthlyReportPDF(ctx context.Context, report *dto.MonthlyReportDTO) ([]byte, error)
}
