package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de venta. Price vacío = precio de venta del catálogo.
type SaleItemRequest struct {
	MedicineID string           `json:"medicine_id" validate:"required"`
	Quantity   int64            `json:"quantity" validate:"required,gt=0"`
	Price      *decimal.Decimal `json:"price"`
}

// CreateSaleRequest body para POST /api/sales.
type CreateSaleRequest struct {
	StoreID   string            `json:"store_id" validate:"required"`
	PatientID string            `json:"patient_id"` // opcional: venta de mostrador
	Items     []SaleItemRequest `json:"items" validate:"required,min=1"`
}

// SaleItemResponse línea de venta con precio resuelto.
type SaleItemResponse struct {
	MedicineID string          `json:"medicine_id"`
	Quantity   int64           `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	InvoiceID   string             `json:"invoice_id"`
	StoreID     string             `json:"store_id"`
	PatientID   string             `json:"patient_id,omitempty"`
	Items       []SaleItemResponse `json:"items"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	CreatedAt   time.Time          `json:"created_at"`
}

// SaleListResponse listado de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Total int            `json:"total"`
}
