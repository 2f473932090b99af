package report

import "github.com/jhoicas/Farmacia-api/internal/application/dto"

// CSVRenderer serializa un reporte del libro de inventario a CSV.
type CSVRenderer interface {
	RenderLedgerCSV(report *dto.LedgerReportDTO) ([]byte, error)
}

// PDFRenderer serializa un reporte del libro de inventario a PDF.
type PDFRenderer interface {
	RenderLedgerPDF(report *dto.LedgerReportDTO) ([]byte, error)
}
