package export

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
)

func TestRenderLedgerCSV_Bodega_FormatoDeColumnas(t *testing.T) {
	rep := &dto.LedgerReportDTO{
		Variant: dto.LedgerVariantWarehouse,
		WarehouseRows: []dto.WarehouseLedgerRowDTO{
			{
				MedicineName: "Acetaminofén 500mg", ManufacturerName: "Genfar",
				Opening: 80, Received: 50, TotalStock: 130, ReturnedFromStore: 0,
				ReturnedToManufacturer: 0, Transferred: 30, Damaged: 0, Balance: 100,
			},
		},
	}

	data, err := NewCSVRenderer().RenderLedgerCSV(rep)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\r\n"), "\r\n")
	require.Len(t, lines, 2)

	// Cabecera: textos siempre entre comillas.
	assert.Equal(t,
		`"Medicamento","Laboratorio","Apertura","Recibido","Stock Total","Devuelto por Sucursal","Devuelto a Laboratorio","Trasladado","Dañado","Saldo"`,
		lines[0])
	// Fila: textos comillados, cantidades enteras sin comillas.
	assert.Equal(t, `"Acetaminofén 500mg","Genfar",80,50,130,0,0,30,0,100`, lines[1])
}

func TestRenderLedgerCSV_Sucursal_FormatoDeColumnas(t *testing.T) {
	rep := &dto.LedgerReportDTO{
		Variant: dto.LedgerVariantStore,
		StoreRows: []dto.StoreLedgerRowDTO{
			{MedicineName: "Ibuprofeno 400mg", Opening: 25, Received: 40, Sales: 45, Returned: 0, Damaged: 0, Balance: 20},
		},
	}

	data, err := NewCSVRenderer().RenderLedgerCSV(rep)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\r\n"), "\r\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"Medicamento","Apertura","Recibido","Ventas","Devuelto","Dañado","Saldo"`, lines[0])
	assert.Equal(t, `"Ibuprofeno 400mg",25,40,45,0,0,20`, lines[1])
}

func TestRenderLedgerCSV_ComillasDentroDelTexto_SeEscapan(t *testing.T) {
	rep := &dto.LedgerReportDTO{
		Variant: dto.LedgerVariantStore,
		StoreRows: []dto.StoreLedgerRowDTO{
			{MedicineName: `Suero "Pediátrico" 90ml`, Balance: 5},
		},
	}

	data, err := NewCSVRenderer().RenderLedgerCSV(rep)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"Suero ""Pediátrico"" 90ml"`)
}

func TestRenderSalesCSV_MontosConDosDecimales(t *testing.T) {
	created := time.Date(2026, 3, 10, 15, 30, 0, 0, time.Local)
	sales := &dto.SaleListResponse{
		Items: []dto.SaleResponse{
			{
				InvoiceID: "f-001",
				StoreID:   "store-1",
				CreatedAt: created,
				Items: []dto.SaleItemResponse{
					{MedicineID: "med-1", Quantity: 3, Price: decimal.RequireFromString("1250.5"), Subtotal: decimal.RequireFromString("3751.5")},
				},
			},
		},
		Total: 1,
	}

	data, err := NewCSVRenderer().RenderSalesCSV(sales)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\r\n"), "\r\n")
	require.Len(t, lines, 2)
	// Montos con dos decimales y sin comillas; la fecha como texto comillado.
	assert.Equal(t, `"f-001","store-1","2026-03-10","med-1",3,1250.50,3751.50`, lines[1])
}
