package export

import (
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/report"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ report.PDFRenderer = (*PDFRenderer)(nil)

// PDFRenderer serializa el libro de inventario a PDF usando Maroto v2.
// Página A4 horizontal: la variante de bodega tiene diez columnas.
type PDFRenderer struct{}

// NewPDFRenderer construye el renderer.
func NewPDFRenderer() *PDFRenderer { return &PDFRenderer{} }

// RenderLedgerPDF genera el PDF del reporte y devuelve sus bytes.
func (r *PDFRenderer) RenderLedgerPDF(rep *dto.LedgerReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Libro de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if rep.Variant == dto.LedgerVariantWarehouse {
		m.AddRows(warehouseHeaderRow())
		for _, r := range warehouseDetailRows(rep.WarehouseRows) {
			m.AddRows(r)
		}
	} else {
		m.AddRows(storeHeaderRow())
		for _, r := range storeDetailRows(rep.StoreRows) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// titleRow: nombre de la ubicación + período del reporte.
func titleRow(rep *dto.LedgerReportDTO) core.Row {
	periodo := fmt.Sprintf("Período: %s – %s",
		rep.From.Format("02/01/2006"), rep.To.Format("02/01/2006"))
	return row.New(14).Add(
		col.New(7).Add(
			text.New("Libro de Inventario — "+rep.LocationName, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New(periodo, props.Text{Size: 8, Top: 8, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Generado: "+rep.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
		),
	)
}

func headerCol(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 7, Align: a, Color: colorPrimary, Top: 2,
	}))
}

func qtyCol(n int64, size int) core.Col {
	return col.New(size).Add(text.New(strconv.FormatInt(n, 10), props.Text{
		Size: 7, Align: align.Right, Top: 1, Right: 1,
	}))
}

func nameCol(name string, size int) core.Col {
	return col.New(size).Add(text.New(name, props.Text{
		Size: 7, Align: align.Left, Top: 1, Left: 1,
	}))
}

func warehouseHeaderRow() core.Row {
	return row.New(8).Add(
		headerCol("Medicamento", 2, align.Left),
		headerCol("Laboratorio", 2, align.Left),
		headerCol("Apertura", 1, align.Right),
		headerCol("Recibido", 1, align.Right),
		headerCol("Stock Total", 1, align.Right),
		headerCol("Dev. Sucursal", 1, align.Right),
		headerCol("Dev. Lab.", 1, align.Right),
		headerCol("Trasladado", 1, align.Right),
		headerCol("Dañado", 1, align.Right),
		headerCol("Saldo", 1, align.Right),
	)
}

func warehouseDetailRows(rows []dto.WarehouseLedgerRowDTO) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(6).Add(
			nameCol(r.MedicineName, 2),
			nameCol(r.ManufacturerName, 2),
			qtyCol(r.Opening, 1),
			qtyCol(r.Received, 1),
			qtyCol(r.TotalStock, 1),
			qtyCol(r.ReturnedFromStore, 1),
			qtyCol(r.ReturnedToManufacturer, 1),
			qtyCol(r.Transferred, 1),
			qtyCol(r.Damaged, 1),
			qtyCol(r.Balance, 1),
		))
	}
	return result
}

func storeHeaderRow() core.Row {
	return row.New(8).Add(
		headerCol("Medicamento", 4, align.Left),
		headerCol("Apertura", 1, align.Right),
		headerCol("Recibido", 1, align.Right),
		headerCol("Ventas", 2, align.Right),
		headerCol("Devuelto", 1, align.Right),
		headerCol("Dañado", 1, align.Right),
		headerCol("Saldo", 2, align.Right),
	)
}

func storeDetailRows(rows []dto.StoreLedgerRowDTO) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(6).Add(
			nameCol(r.MedicineName, 4),
			qtyCol(r.Opening, 1),
			qtyCol(r.Received, 1),
			qtyCol(r.Sales, 2),
			qtyCol(r.Returned, 1),
			qtyCol(r.Damaged, 1),
			qtyCol(r.Balance, 2),
		))
	}
	return result
}
