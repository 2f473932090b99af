package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

const (
	medParacetamol = "MED001"
	medIbuprofeno  = "MED002"
	storeNorte     = "STR002"
)

var (
	// Período de prueba: todo junio de 2025, hora local.
	junIni = time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	junFin = time.Date(2025, 6, 30, 0, 0, 0, 0, time.Local)
	// Una fecha cualquiera dentro del período.
	jun15 = time.Date(2025, 6, 15, 10, 30, 0, 0, time.Local)
)

func testCatalog() []entity.Medicine {
	return []entity.Medicine{
		{ID: medParacetamol, Name: "Paracetamol 500mg", ManufacturerName: "Genfar"},
		{ID: medIbuprofeno, Name: "Ibuprofeno 400mg", ManufacturerName: "MK"},
	}
}

func testPeriod(t *testing.T) ledger.Period {
	t.Helper()
	p, err := ledger.NewPeriod(junIni, junFin)
	require.NoError(t, err)
	return p
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario de referencia bodega: balance 100, compra 50, traslado saliente 30.
// apertura = 100 − 50 − 0 + 30 + 0 + 0 = 80; totalStock = 80 + 50 + 0 = 130.
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeWarehouse_EscenarioReferencia(t *testing.T) {
	in := ledger.Input{
		LocationID: entity.LocationWarehouse,
		Period:     testPeriod(t),
		Catalog:    testCatalog(),
		Snapshot: []entity.InventoryItem{
			{LocationID: entity.LocationWarehouse, MedicineID: medParacetamol, Quantity: 100},
		},
		Movements: ledger.MovementSet{
			Purchases: []entity.Purchase{
				{InvoiceID: "PUR-1", Date: jun15, Items: []entity.PurchaseItem{
					{MedicineID: medParacetamol, Quantity: 50},
				}},
			},
			Transfers: []entity.Transfer{
				{ID: "TRF-1", From: entity.LocationWarehouse, To: storeNorte, Date: jun15,
					Type: entity.TransferTypeTransfer,
					Items: []entity.TransferItem{
						{MedicineID: medParacetamol, Quantity: 30},
					}},
			},
		},
	}

	rows, err := ledger.ComputeWarehouse(in)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, int64(50), row.Received)
	assert.Equal(t, int64(30), row.Transferred)
	assert.Equal(t, int64(0), row.ReturnedFromStore)
	assert.Equal(t, int64(0), row.ReturnedToManufacturer)
	assert.Equal(t, int64(0), row.Damaged)
	assert.Equal(t, int64(80), row.Opening, "apertura = 100 − 50 + 30")
	assert.Equal(t, int64(130), row.TotalStock, "totalStock = 80 + 50 + 0")
	assert.Equal(t, int64(100), row.Balance)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario de referencia sucursal: balance 20, recibido 40, ventas 45.
// apertura = 20 − 40 + 45 + 0 + 0 = 25.
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeStore_EscenarioReferencia(t *testing.T) {
	in := ledger.Input{
		LocationID: storeNorte,
		Period:     testPeriod(t),
		Catalog:    testCatalog(),
		Snapshot: []entity.InventoryItem{
			{LocationID: storeNorte, MedicineID: medIbuprofeno, Quantity: 20},
		},
		Movements: ledger.MovementSet{
			Transfers: []entity.Transfer{
				{ID: "TRF-2", From: entity.LocationWarehouse, To: storeNorte, Date: jun15,
					Type: entity.TransferTypeTransfer,
					Items: []entity.TransferItem{
						{MedicineID: medIbuprofeno, Quantity: 40},
					}},
			},
			Sales: []entity.Sale{
				{InvoiceID: "INV-1", StoreID: storeNorte, CreatedAt: jun15,
					Items: []entity.SaleItem{
						{MedicineID: medIbuprofeno, Quantity: 45},
					}},
			},
		},
	}

	rows, err := ledger.ComputeStore(in)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, int64(40), row.Received)
	assert.Equal(t, int64(45), row.Sales)
	assert.Equal(t, int64(0), row.Returned)
	assert.Equal(t, int64(0), row.Damaged)
	assert.Equal(t, int64(25), row.Opening, "apertura = 20 − 40 + 45")
	assert.Equal(t, int64(20), row.Balance)
}

// ──────────────────────────────────────────────────────────────────────────────
// Identidad de balance: apertura + entradas − salidas == balance en toda fila,
// por construcción, incluso con datos inconsistentes entre snapshot y movimientos.
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeWarehouse_IdentidadDeBalance(t *testing.T) {
	in := ledger.Input{
		LocationID: entity.LocationWarehouse,
		Period:     testPeriod(t),
		Catalog:    testCatalog(),
		Snapshot: []entity.InventoryItem{
			{LocationID: entity.LocationWarehouse, MedicineID: medParacetamol, Quantity: 7},
			{LocationID: entity.LocationWarehouse, MedicineID: medIbuprofeno, Quantity: 0},
		},
		Movements: ledger.MovementSet{
			Purchases: []entity.Purchase{
				{Date: jun15, Items: []entity.PurchaseItem{
					{MedicineID: medParacetamol, Quantity: 13},
					{MedicineID: medIbuprofeno, Quantity: 5},
				}},
			},
			Transfers: []entity.Transfer{
				{From: entity.LocationWarehouse, To: storeNorte, Date: jun15,
					Items: []entity.TransferItem{{MedicineID: medParacetamol, Quantity: 4}}},
				{From: storeNorte, To: entity.LocationWarehouse, Date: jun15,
					Type:  entity.TransferTypeReturn,
					Items: []entity.TransferItem{{MedicineID: medIbuprofeno, Quantity: 2}}},
			},
			ManufacturerReturns: []entity.ManufacturerReturn{
				{Date: jun15, Items: []entity.ReturnItem{{MedicineID: medParacetamol, Quantity: 1}}},
			},
			Damages: []entity.DamageLog{
				{LocationID: entity.LocationWarehouse, MedicineID: medIbuprofeno, Quantity: 3, Date: jun15},
			},
		},
	}

	rows, err := ledger.ComputeWarehouse(in)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	for _, row := range rows {
		inflows := row.Received + row.ReturnedFromStore
		outflows := row.Transferred + row.ReturnedToManufacturer + row.Damaged
		assert.Equal(t, row.Balance, row.Opening+inflows-outflows,
			"apertura + entradas − salidas debe igualar el balance para %s", row.MedicineID)
	}
}

func TestComputeStore_IdentidadDeBalance(t *testing.T) {
	in := ledger.Input{
		LocationID: storeNorte,
		Period:     testPeriod(t),
		Catalog:    testCatalog(),
		Snapshot: []entity.InventoryItem{
			{LocationID: storeNorte, MedicineID: medParacetamol, Quantity: 11},
		},
		Movements: ledger.MovementSet{
			Transfers: []entity.Transfer{
				{From: entity.LocationWarehouse, To: storeNorte, Date: jun15,
					Items: []entity.TransferItem{{MedicineID: medParacetamol, Quantity: 6}}},
				{From: storeNorte, To: entity.LocationWarehouse, Date: jun15,
					Type:  entity.TransferTypeReturn,
					Items: []entity.TransferItem{{MedicineID: medParacetamol, Quantity: 2}}},
			},
			Sales: []entity.Sale{
				{StoreID: storeNorte, CreatedAt: jun15,
					Items: []entity.SaleItem{{MedicineID: medParacetamol, Quantity: 9}}},
			},
			Damages: []entity.DamageLog{
				{LocationID: storeNorte, MedicineID: medParacetamol, Quantity: 1, Date: jun15},
			},
		},
	}

	rows, err := ledger.ComputeStore(in)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	inflows := row.Received
	outflows := row.Sales + row.Returned + row.Damaged
	assert.Equal(t, row.Balance, row.Opening+inflows-outflows)
}

// ──────────────────────────────────────────────────────────────────────────────
// Estabilidad sin movimientos: apertura == balance y columnas en cero.
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeWarehouse_SinMovimientos_AperturaIgualBalance(t *testing.T) {
	in := ledger.Input{
		LocationID: entity.LocationWarehouse,
		Period:     testPeriod(t),
		Catalog:    testCatalog(),
		Snapshot: []entity.InventoryItem{
			{LocationID: entity.LocationWarehouse, MedicineID: medParacetamol, Quantity: 42},
		},
	}

	rows, err := ledger.ComputeWarehouse(in)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, int64(42), row.Opening)
	assert.Equal(t, int64(42), row.Balance)
	assert.Equal(t, int64(42), row.TotalStock)
	assert.Zero(t, row.Received)
	assert.Zero(t, row.ReturnedFromStore)
	assert.Zero(t, row.ReturnedToManufacturer)
	assert.Zero(t, row.Transferred)
	assert.Zero(t, row.Damaged)
}

// Un movimiento fuera del período no debe afectar las columnas.
func TestComputeWarehouse_MovimientoFueraDelPeriodo_SeIgnora(t *testing.T) {
	julio := time.Date(2025, 7, 10, 9, 0, 0, 0, time.Local)
	in := ledger.Input{
		LocationID: entity.LocationWarehouse,
		Period:     testPeriod(t),
		Catalog:    testCatalog(),
		Snapshot: []entity.InventoryItem{
			{LocationID: entity.LocationWarehouse, MedicineID: medParacetamol, Quantity: 10},
		},
		Movements: ledger.MovementSet{
			Purchases: []entity.Purchase{
				{Date: julio, Items: []entity.PurchaseItem{{MedicineID: medParacetamol, Quantity: 99}}},
			},
		},
	}

	rows, err := ledger.ComputeWarehouse(in)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].Received)
	assert.Equal(t, int64(10), rows[0].Opening)
}

// ──────────────────────────────────────────────────────────────────────────────
// Inclusividad de los límites del período: un movimiento exactamente en
// inicio-de-día(from) o fin-de-día(to) entra; un milisegundo afuera, no.
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeWarehouse_LimitesDelPeriodoInclusivos(t *testing.T) {
	p := testPeriod(t)

	cases := []struct {
		name     string
		date     time.Time
		included bool
	}{
		{"exactamente inicio de día from", p.From(), true},
		{"exactamente fin de día to", p.To(), true},
		{"un milisegundo antes de from", p.From().Add(-time.Millisecond), false},
		{"un milisegundo después de to", p.To().Add(time.Millisecond), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := ledger.Input{
				LocationID: entity.LocationWarehouse,
				Period:     p,
				Catalog:    testCatalog(),
				Snapshot: []entity.InventoryItem{
					{LocationID: entity.LocationWarehouse, MedicineID: medParacetamol, Quantity: 10},
				},
				Movements: ledger.MovementSet{
					Purchases: []entity.Purchase{
						{Date: tc.date, Items: []entity.PurchaseItem{{MedicineID: medParacetamol, Quantity: 5}}},
					},
				},
			}
			rows, err := ledger.ComputeWarehouse(in)
			require.NoError(t, err)
			require.Len(t, rows, 1)
			if tc.included {
				assert.Equal(t, int64(5), rows[0].Received)
			} else {
				assert.Zero(t, rows[0].Received)
			}
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Asimetría bodega/sucursal: el MISMO traslado debe contarse como salida en la
// fila de bodega y como entrada en la fila de sucursal; nunca doble entrada ni
// desaparecer de ambos lados.
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeWarehouseYStore_TrasladoNoSeDuplicaNiDesaparece(t *testing.T) {
	transfer := entity.Transfer{
		ID: "TRF-9", From: entity.LocationWarehouse, To: storeNorte, Date: jun15,
		Type:  entity.TransferTypeTransfer,
		Items: []entity.TransferItem{{MedicineID: medParacetamol, Quantity: 30}},
	}
	snapshot := []entity.InventoryItem{
		{LocationID: entity.LocationWarehouse, MedicineID: medParacetamol, Quantity: 70},
		{LocationID: storeNorte, MedicineID: medParacetamol, Quantity: 30},
	}
	movements := ledger.MovementSet{Transfers: []entity.Transfer{transfer}}

	whRows, err := ledger.ComputeWarehouse(ledger.Input{
		LocationID: entity.LocationWarehouse,
		Period:     testPeriod(t),
		Catalog:    testCatalog(),
		Snapshot:   snapshot,
		Movements:  movements,
	})
	require.NoError(t, err)
	require.Len(t, whRows, 1)

	stRows, err := ledger.ComputeStore(ledger.Input{
		LocationID: storeNorte,
		Period:     testPeriod(t),
		Catalog:    testCatalog(),
		Snapshot:   snapshot,
		Movements:  movements,
	})
	require.NoError(t, err)
	require.Len(t, stRows, 1)

	assert.Equal(t, int64(30), whRows[0].Transferred, "salida en bodega")
	assert.Zero(t, whRows[0].ReturnedFromStore, "no debe contarse como entrada en bodega")
	assert.Equal(t, int64(30), stRows[0].Received, "entrada en sucursal")
	assert.Zero(t, stRows[0].Returned, "no debe contarse como salida en sucursal")
}

// La devolución sucursal -> bodega se atribuye en espejo.
func TestComputeWarehouseYStore_DevolucionSucursalBodega(t *testing.T) {
	devolucion := entity.Transfer{
		ID: "TRF-10", From: storeNorte, To: entity.LocationWarehouse, Date: jun15,
		Type:  entity.TransferTypeReturn,
		Items: []entity.TransferItem{{MedicineID: medIbuprofeno, Quantity: 8}},
	}
	snapshot := []entity.InventoryItem{
		{LocationID: entity.LocationWarehouse, MedicineID: medIbuprofeno, Quantity: 8},
		{LocationID: storeNorte, MedicineID: medIbuprofeno, Quantity: 0},
	}
	movements := ledger.MovementSet{Transfers: []entity.Transfer{devolucion}}

	whRows, err := ledger.ComputeWarehouse(ledger.Input{
		LocationID: entity.LocationWarehouse,
		Period:     testPeriod(t),
		Catalog:    testCatalog(),
		Snapshot:   snapshot,
		Movements:  movements,
	})
	require.NoError(t, err)
	require.Len(t, whRows, 1)
	assert.Equal(t, int64(8), whRows[0].ReturnedFromStore)

	stRows, err := ledger.ComputeStore(ledger.Input{
		LocationID: storeNorte,
		Period:     testPeriod(t),
		Catalog:    testCatalog(),
		Snapshot:   snapshot,
		Movements:  movements,
	})
	require.NoError(t, err)
	require.Len(t, stRows, 1)
	assert.Equal(t, int64(8), stRows[0].Returned)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alcance de medicamentos
// ──────────────────────────────────────────────────────────────────────────────

// Un medicamento agotado (sin snapshot) pero con ventas en el período debe
// aparecer en el reporte: la unión snapshot ∪ movimientos evita ocultarlo.
func TestComputeStore_MedicamentoAgotadoConVentas_Aparece(t *testing.T) {
	in := ledger.Input{
		LocationID: storeNorte,
		Period:     testPeriod(t),
		Catalog:    testCatalog(),
		Snapshot:   nil, // totalmente agotado
		Movements: ledger.MovementSet{
			Sales: []entity.Sale{
				{StoreID: storeNorte, CreatedAt: jun15,
					Items: []entity.SaleItem{{MedicineID: medParacetamol, Quantity: 12}}},
			},
		},
	}

	rows, err := ledger.ComputeStore(in)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(0), rows[0].Balance)
	assert.Equal(t, int64(12), rows[0].Sales)
	assert.Equal(t, int64(12), rows[0].Opening, "apertura = 0 + 12 ventas")
}

// La misma unión aplica en bodega: una compra del período a un medicamento
// ya agotado también genera fila.
func TestComputeWarehouse_MedicamentoSoloEnMovimientos_Aparece(t *testing.T) {
	in := ledger.Input{
		LocationID: entity.LocationWarehouse,
		Period:     testPeriod(t),
		Catalog:    testCatalog(),
		Snapshot:   nil,
		Movements: ledger.MovementSet{
			ManufacturerReturns: []entity.ManufacturerReturn{
				{Date: jun15, Items: []entity.ReturnItem{{MedicineID: medIbuprofeno, Quantity: 4}}},
			},
		},
	}

	rows, err := ledger.ComputeWarehouse(in)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, medIbuprofeno, rows[0].MedicineID)
	assert.Equal(t, int64(4), rows[0].ReturnedToManufacturer)
	assert.Equal(t, int64(4), rows[0].Opening)
}

// Un medicamento referenciado por movimientos pero ausente del catálogo
// maestro se descarta en silencio (guardia de integridad de datos).
func TestComputeWarehouse_MedicamentoFueraDeCatalogo_SeDescarta(t *testing.T) {
	in := ledger.Input{
		LocationID: entity.LocationWarehouse,
		Period:     testPeriod(t),
		Catalog:    testCatalog(),
		Snapshot: []entity.InventoryItem{
			{LocationID: entity.LocationWarehouse, MedicineID: "MED-FANTASMA", Quantity: 50},
			{LocationID: entity.LocationWarehouse, MedicineID: medParacetamol, Quantity: 10},
		},
	}

	rows, err := ledger.ComputeWarehouse(in)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, medParacetamol, rows[0].MedicineID)
}

// Alcance puntual: solo el medicamento pedido, aunque otros tengan movimiento.
func TestComputeWarehouse_AlcancePuntual(t *testing.T) {
	in := ledger.Input{
		LocationID: entity.LocationWarehouse,
		MedicineID: medIbuprofeno,
		Period:     testPeriod(t),
		Catalog:    testCatalog(),
		Snapshot: []entity.InventoryItem{
			{LocationID: entity.LocationWarehouse, MedicineID: medParacetamol, Quantity: 100},
			{LocationID: entity.LocationWarehouse, MedicineID: medIbuprofeno, Quantity: 60},
		},
	}

	rows, err := ledger.ComputeWarehouse(in)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, medIbuprofeno, rows[0].MedicineID)
	assert.Equal(t, int64(60), rows[0].Balance)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeWarehouse_PeriodoVacio_RetornaError(t *testing.T) {
	_, err := ledger.ComputeWarehouse(ledger.Input{
		LocationID: entity.LocationWarehouse,
		Catalog:    testCatalog(),
	})
	assert.ErrorIs(t, err, domain.ErrDateRangeRequired)
}

func TestComputeStore_UbicacionBodega_RetornaError(t *testing.T) {
	_, err := ledger.ComputeStore(ledger.Input{
		LocationID: entity.LocationWarehouse,
		Period:     testPeriod(t),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Las filas se emiten ordenadas por nombre de medicamento (salida determinista).
func TestComputeWarehouse_FilasOrdenadasPorNombre(t *testing.T) {
	in := ledger.Input{
		LocationID: entity.LocationWarehouse,
		Period:     testPeriod(t),
		Catalog:    testCatalog(),
		Snapshot: []entity.InventoryItem{
			{LocationID: entity.LocationWarehouse, MedicineID: medParacetamol, Quantity: 1},
			{LocationID: entity.LocationWarehouse, MedicineID: medIbuprofeno, Quantity: 1},
		},
	}

	rows, err := ledger.ComputeWarehouse(in)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ibuprofeno 400mg", rows[0].MedicineName)
	assert.Equal(t, "Paracetamol 500mg", rows[1].MedicineName)
}
