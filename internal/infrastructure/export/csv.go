// Package export serializa los reportes a los formatos de descarga (CSV y PDF).
package export

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/report"
)

// Formato CSV de los reportes: los textos van SIEMPRE entre comillas dobles
// (escapando `"` como `""`), las cantidades enteras van sin comillas y los
// montos con dos decimales. encoding/csv solo comilla cuando es necesario,
// por eso el serializador es propio.

// kind de celda.
type cellKind int

const (
	kindString cellKind = iota
	kindInt
	kindMoney
)

// Cell una celda tipada del CSV.
type Cell struct {
	kind cellKind
	s    string
	n    int64
	d    decimal.Decimal
}

// String celda de texto: siempre entre comillas.
func String(s string) Cell { return Cell{kind: kindString, s: s} }

// Int celda de cantidad entera: sin comillas.
func Int(n int64) Cell { return Cell{kind: kindInt, n: n} }

// Money celda de monto: dos decimales, sin comillas.
func Money(d decimal.Decimal) Cell { return Cell{kind: kindMoney, d: d} }

func (c Cell) render(buf *bytes.Buffer) {
	switch c.kind {
	case kindString:
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(c.s, `"`, `""`))
		buf.WriteByte('"')
	case kindInt:
		buf.WriteString(strconv.FormatInt(c.n, 10))
	case kindMoney:
		buf.WriteString(c.d.StringFixed(2))
	}
}

// renderTable serializa filas de celdas con CRLF como separador de registro.
func renderTable(rows [][]Cell) []byte {
	var buf bytes.Buffer
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				buf.WriteByte(',')
			}
			cell.render(&buf)
		}
		buf.WriteString("\r\n")
	}
	return buf.Bytes()
}

var _ report.CSVRenderer = (*CSVRenderer)(nil)

// CSVRenderer serializa reportes a CSV.
type CSVRenderer struct{}

// NewCSVRenderer construye el renderer.
func NewCSVRenderer() *CSVRenderer { return &CSVRenderer{} }

// RenderLedgerCSV serializa el libro de inventario. El orden de columnas es
// fijo por variante y la primera fila es la cabecera.
func (r *CSVRenderer) RenderLedgerCSV(rep *dto.LedgerReportDTO) ([]byte, error) {
	if rep.Variant == dto.LedgerVariantWarehouse {
		return renderTable(warehouseRows(rep)), nil
	}
	return renderTable(storeRows(rep)), nil
}

func warehouseRows(rep *dto.LedgerReportDTO) [][]Cell {
	rows := make([][]Cell, 0, len(rep.WarehouseRows)+1)
	rows = append(rows, []Cell{
		String("Medicamento"), String("Laboratorio"), String("Apertura"),
		String("Recibido"), String("Stock Total"), String("Devuelto por Sucursal"),
		String("Devuelto a Laboratorio"), String("Trasladado"), String("Dañado"), String("Saldo"),
	})
	for _, row := range rep.WarehouseRows {
		rows = append(rows, []Cell{
			String(row.MedicineName), String(row.ManufacturerName), Int(row.Opening),
			Int(row.Received), Int(row.TotalStock), Int(row.ReturnedFromStore),
			Int(row.ReturnedToManufacturer), Int(row.Transferred), Int(row.Damaged), Int(row.Balance),
		})
	}
	return rows
}

func storeRows(rep *dto.LedgerReportDTO) [][]Cell {
	rows := make([][]Cell, 0, len(rep.StoreRows)+1)
	rows = append(rows, []Cell{
		String("Medicamento"), String("Apertura"), String("Recibido"),
		String("Ventas"), String("Devuelto"), String("Dañado"), String("Saldo"),
	})
	for _, row := range rep.StoreRows {
		rows = append(rows, []Cell{
			String(row.MedicineName), Int(row.Opening), Int(row.Received),
			Int(row.Sales), Int(row.Returned), Int(row.Damaged), Int(row.Balance),
		})
	}
	return rows
}

// RenderSalesCSV serializa el listado de ventas, una fila por línea vendida.
func (r *CSVRenderer) RenderSalesCSV(sales *dto.SaleListResponse) ([]byte, error) {
	rows := make([][]Cell, 0, len(sales.Items)+1)
	rows = append(rows, []Cell{
		String("Factura"), String("Sucursal"), String("Fecha"),
		String("Medicamento"), String("Cantidad"), String("Precio"), String("Subtotal"),
	})
	for _, sale := range sales.Items {
		for _, item := range sale.Items {
			rows = append(rows, []Cell{
				String(sale.InvoiceID), String(sale.StoreID), String(sale.CreatedAt.Format("2006-01-02")),
				String(item.MedicineID), Int(item.Quantity), Money(item.Price), Money(item.Subtotal),
			})
		}
	}
	return renderTable(rows), nil
}
