package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItemResponse existencia actual de un medicamento en una ubicación.
type InventoryItemResponse struct {
	LocationID   string    `json:"location_id"`
	MedicineID   string    `json:"medicine_id"`
	MedicineName string    `json:"medicine_name"`
	Quantity     int64     `json:"quantity"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// InventoryListResponse snapshot de una ubicación.
type InventoryListResponse struct {
	LocationID string                  `json:"location_id"`
	Items      []InventoryItemResponse `json:"items"`
	Total      int                     `json:"total"`
}

// PurchaseItemRequest línea de compra.
type PurchaseItemRequest struct {
	MedicineID   string          `json:"medicine_id" validate:"required"`
	Quantity     int64           `json:"quantity" validate:"required,gt=0"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
}

// RegisterPurchaseRequest body para POST /api/purchases.
type RegisterPurchaseRequest struct {
	ManufacturerID string                `json:"manufacturer_id" validate:"required"`
	Date           string                `json:"date"` // yyyy-MM-dd; vacío = hoy
	Items          []PurchaseItemRequest `json:"items" validate:"required,min=1"`
}

// PurchaseResponse salida de una compra.
type PurchaseResponse struct {
	InvoiceID      string                `json:"invoice_id"`
	ManufacturerID string                `json:"manufacturer_id"`
	Date           time.Time             `json:"date"`
	Items          []PurchaseItemRequest `json:"items"`
	TotalAmount    decimal.Decimal       `json:"total_amount"`
}

// TransferItemRequest línea de traslado.
type TransferItemRequest struct {
	MedicineID string `json:"medicine_id" validate:"required"`
	Quantity   int64  `json:"quantity" validate:"required,gt=0"`
}

// RegisterTransferRequest body para POST /api/transfers.
// Type=transfer: bodega -> sucursal. Type=return: sucursal -> bodega.
type RegisterTransferRequest struct {
	From  string                `json:"from" validate:"required"`
	To    string                `json:"to" validate:"required"`
	Type  string                `json:"type"` // transfer | return
	Date  string                `json:"date"` // yyyy-MM-dd; vacío = hoy
	Items []TransferItemRequest `json:"items" validate:"required,min=1"`
}

// TransferResponse salida de un traslado.
type TransferResponse struct {
	ID     string                `json:"id"`
	From   string                `json:"from"`
	To     string                `json:"to"`
	Type   string                `json:"type"`
	Status string                `json:"status"`
	Date   time.Time             `json:"date"`
	Items  []TransferItemRequest `json:"items"`
}

// ReturnItemRequest línea de devolución a laboratorio.
type ReturnItemRequest struct {
	MedicineID string `json:"medicine_id" validate:"required"`
	Quantity   int64  `json:"quantity" validate:"required,gt=0"`
}

// RegisterManufacturerReturnRequest body para POST /api/manufacturer-returns.
type RegisterManufacturerReturnRequest struct {
	ManufacturerID string              `json:"manufacturer_id" validate:"required"`
	Date           string              `json:"date"` // yyyy-MM-dd; vacío = hoy
	Reason         string              `json:"reason"`
	Items          []ReturnItemRequest `json:"items" validate:"required,min=1"`
}

// RegisterDamageRequest body para POST /api/inventory/damages.
type RegisterDamageRequest struct {
	LocationID string `json:"location_id" validate:"required"`
	MedicineID string `json:"medicine_id" validate:"required"`
	Quantity   int64  `json:"quantity" validate:"required,gt=0"`
	Date       string `json:"date"` // yyyy-MM-dd; vacío = hoy
	Reason     string `json:"reason" validate:"required"`
}

// PurchaseListResponse listado de compras.
type PurchaseListResponse struct {
	Items []PurchaseResponse `json:"items"`
	Total int                `json:"total"`
}

// TransferListResponse listado de traslados.
type TransferListResponse struct {
	Items []TransferResponse `json:"items"`
	Total int                `json:"total"`
}

// ManufacturerReturnResponse salida de una devolución a laboratorio.
type ManufacturerReturnResponse struct {
	ID             string              `json:"id"`
	ManufacturerID string              `json:"manufacturer_id"`
	Date           time.Time           `json:"date"`
	Reason         string              `json:"reason"`
	Items          []ReturnItemRequest `json:"items"`
}

// ManufacturerReturnListResponse listado de devoluciones a laboratorio.
type ManufacturerReturnListResponse struct {
	Items []ManufacturerReturnResponse `json:"items"`
	Total int                          `json:"total"`
}

// DamageLogResponse salida de una baja registrada.
type DamageLogResponse struct {
	ID         string    `json:"id"`
	LocationID string    `json:"location_id"`
	MedicineID string    `json:"medicine_id"`
	Quantity   int64     `json:"quantity"`
	Date       time.Time `json:"date"`
	Reason     string    `json:"reason"`
}

// DamageLogListResponse listado de bajas.
type DamageLogListResponse struct {
	Items []DamageLogResponse `json:"items"`
	Total int                 `json:"total"`
}
