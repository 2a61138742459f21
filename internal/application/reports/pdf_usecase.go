package reports

import (
	"context"
	"fmt"
)

// PDFUseCase genera la versión descargable (PDF) del reporte mensual.
type PDFUseCase struct {
	reports   *ReportUseCase
	generator ReportPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(reports *ReportUseCase, generator ReportPDFGenerator) *PDFUseCase {
	return &PDFUseCase{reports: reports, generator: generator}
}

// DownloadMonthlyPDF arma el reporte mensual y lo renderiza como PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrInvalidInput     si mes o año están fuera de rango.
func (uc *PDFUseCase) DownloadMonthlyPDF(ctx context.Context, month, year int) (pdfBytes []byte, filename string, err error) {
	report, err := uc.reports.Monthly(ctx, month, year)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateMonthlyReportPDF(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar reporte mensual: %w", err)
	}
	filename = fmt.Sprintf("reporte-ventas-%04d-%02d.pdf", year, month)
	return pdfBytes, filename, nil
}
