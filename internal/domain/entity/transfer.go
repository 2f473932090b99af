package entity

import "time"

// Tipos y estados de traslado.
const (
	TransferTypeTransfer = "transfer" // bodega -> sucursal
	TransferTypeReturn   = "return"   // sucursal -> bodega

	TransferStatusCompleted = "completed"
)

// TransferItem línea de un traslado.
type TransferItem struct {
	MedicineID string
	Quantity   int64
}

// Transfer representa un traslado de stock entre ubicaciones: resta en From, suma en To.
// Type=return marca la devolución sucursal -> bodega; la aritmética es la misma.
type Transfer struct {
	ID        string
	From      string // LocationID origen
	To        string // LocationID destino
	Date      time.Time
	Items     []TransferItem
	Status    string
	Type      string // transfer | return
	CreatedAt time.Time
	CreatedBy string
}
