package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItem línea de una compra a laboratorio.
type PurchaseItem struct {
	MedicineID   string
	Quantity     int64
	PricePerUnit decimal.Decimal
}

// Purchase representa una compra a laboratorio: siempre entra a la bodega central.
type Purchase struct {
	InvoiceID      string
	ManufacturerID string
	Date           time.Time
	Items          []PurchaseItem
	TotalAmount    decimal.Decimal
	CreatedAt      time.Time
	CreatedBy      string // UserID
}
