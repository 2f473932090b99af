package entity

import "time"

// ReturnItem línea de una devolución a laboratorio.
type ReturnItem struct {
	MedicineID string
	Quantity   int64
}

// ManufacturerReturn representa una devolución de la bodega al laboratorio:
// el stock sale permanentemente del sistema.
type ManufacturerReturn struct {
	ID             string
	ManufacturerID string
	Date           time.Time
	Items          []ReturnItem
	Reason         string
	CreatedAt      time.Time
	CreatedBy      string
}
