package dto

import "time"

// Variantes del libro de inventario.
const (
	LedgerVariantWarehouse = "warehouse"
	LedgerVariantStore     = "store"
)

// LedgerReportRequest query params para GET /api/reports/ledger.
// From y To son obligatorios (yyyy-MM-dd): el reporte nunca asume "todo el histórico".
type LedgerReportRequest struct {
	LocationID string `query:"location_id" validate:"required"`
	MedicineID string `query:"medicine_id"` // vacío = todos
	From       string `query:"from" validate:"required"`
	To         string `query:"to" validate:"required"`
}

// WarehouseLedgerRowDTO fila del libro de bodega.
type WarehouseLedgerRowDTO struct {
	MedicineID             string `json:"medicine_id"`
	MedicineName           string `json:"medicine_name"`
	ManufacturerName       string `json:"manufacturer_name"`
	Opening                int64  `json:"opening"`
	Received               int64  `json:"received"`
	TotalStock             int64  `json:"total_stock"`
	ReturnedFromStore      int64  `json:"returned_from_store"`
	ReturnedToManufacturer int64  `json:"returned_to_manufacturer"`
	Transferred            int64  `json:"transferred"`
	Damaged                int64  `json:"damaged"`
	Balance                int64  `json:"balance"`
}

// StoreLedgerRowDTO fila del libro de sucursal.
type StoreLedgerRowDTO struct {
	MedicineID   string `json:"medicine_id"`
	MedicineName string `json:"medicine_name"`
	Opening      int64  `json:"opening"`
	Received     int64  `json:"received"`
	Sales        int64  `json:"sales"`
	Returned     int64  `json:"returned"`
	Damaged      int64  `json:"damaged"`
	Balance      int64  `json:"balance"`
}

// LedgerReportDTO reporte completo de una corrida del motor de conciliación.
// Exactamente una de WarehouseRows/StoreRows está poblada según Variant.
type LedgerReportDTO struct {
	LocationID    string                  `json:"location_id"`
	LocationName  string                  `json:"location_name"`
	Variant       string                  `json:"variant"` // warehouse | store
	From          time.Time               `json:"from"`
	To            time.Time               `json:"to"`
	GeneratedAt   time.Time               `json:"generated_at"`
	WarehouseRows []WarehouseLedgerRowDTO `json:"warehouse_rows,omitempty"`
	StoreRows     []StoreLedgerRowDTO     `json:"store_rows,omitempty"`
}
