package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem línea de una venta.
type SaleItem struct {
	MedicineID string
	Quantity   int64
	Price      decimal.Decimal // precio unitario de venta
}

// Sale representa una venta en sucursal: resta stock de la sucursal.
type Sale struct {
	InvoiceID   string
	StoreID     string
	PatientID   string // opcional: venta de mostrador sin paciente registrado
	Items       []SaleItem
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
	SoldBy      string // UserID
}
