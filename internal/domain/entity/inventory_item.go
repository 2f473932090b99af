package entity

import "time"

// InventoryItem representa la existencia actual de un medicamento en una ubicación
// (bodega o sucursal). Es el balance autoritativo: el libro de inventario deriva
// la apertura hacia atrás desde esta cantidad, nunca al revés.
type InventoryItem struct {
	LocationID   string
	MedicineID   string
	MedicineName string
	Quantity     int64
	UpdatedAt    time.Time
}
