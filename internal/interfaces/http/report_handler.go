package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/report"
	"github.com/jhoicas/Farmacia-api/internal/domain"
)

// ReportHandler expone el libro de inventario en JSON, CSV y PDF (protegido).
type ReportHandler struct {
	uc *report.LedgerUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.LedgerUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Ledger godoc
// @Summary      Libro de inventario
// @Description  Deriva la apertura hacia atrás desde el balance actual para el
//               período pedido. location_id=warehouse usa la variante de bodega;
//               cualquier otro ID usa la variante de sucursal.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  true   "warehouse o ID de sucursal"
// @Param        medicine_id  query  string  false  "filtrar un solo medicamento"
// @Param        from         query  string  true   "yyyy-MM-dd (inclusive)"
// @Param        to           query  string  true   "yyyy-MM-dd (inclusive)"
// @Success      200  {object}  dto.LedgerReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/ledger [get]
func (h *ReportHandler) Ledger(c *fiber.Ctx) error {
	req, errResp := parseLedgerRequest(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*errResp)
	}
	out, err := h.uc.Generate(c.Context(), req)
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(out)
}

// LedgerCSV godoc
// @Summary      Libro de inventario en CSV
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Param        location_id  query  string  true   "warehouse o ID de sucursal"
// @Param        medicine_id  query  string  false  "filtrar un solo medicamento"
// @Param        from         query  string  true   "yyyy-MM-dd (inclusive)"
// @Param        to           query  string  true   "yyyy-MM-dd (inclusive)"
// @Success      200  {string}  string  "archivo CSV"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/ledger/csv [get]
func (h *ReportHandler) LedgerCSV(c *fiber.Ctx) error {
	req, errResp := parseLedgerRequest(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*errResp)
	}
	data, filename, err := h.uc.ExportCSV(c.Context(), req)
	if err != nil {
		return ledgerError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}

// LedgerPDF godoc
// @Summary      Libro de inventario en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        location_id  query  string  true   "warehouse o ID de sucursal"
// @Param        medicine_id  query  string  false  "filtrar un solo medicamento"
// @Param        from         query  string  true   "yyyy-MM-dd (inclusive)"
// @Param        to           query  string  true   "yyyy-MM-dd (inclusive)"
// @Success      200  {string}  string  "archivo PDF"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/ledger/pdf [get]
func (h *ReportHandler) LedgerPDF(c *fiber.Ctx) error {
	req, errResp := parseLedgerRequest(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*errResp)
	}
	data, filename, err := h.uc.ExportPDF(c.Context(), req)
	if err != nil {
		return ledgerError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}

func parseLedgerRequest(c *fiber.Ctx) (dto.LedgerReportRequest, *dto.ErrorResponse) {
	var req dto.LedgerReportRequest
	if err := c.QueryParser(&req); err != nil {
		return req, &dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"}
	}
	return req, nil
}

func ledgerError(c *fiber.Ctx, err error) error {
	if err == domain.ErrDateRangeRequired {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DATE_RANGE_REQUIRED", Message: "from y to son obligatorios (yyyy-MM-dd)"})
	}
	if err == domain.ErrInvalidInput {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas o ubicación inválidos"})
	}
	if err == domain.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sucursal no encontrada"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
