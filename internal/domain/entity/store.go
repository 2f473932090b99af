package entity

import "time"

// LocationWarehouse es el ID fijo de la bodega central. Las sucursales usan su propio ID.
// Topología fija: una bodega central y N sucursales de venta.
const LocationWarehouse = "warehouse"

// Store representa una sucursal de venta al público, abastecida por traslados desde la bodega.
type Store struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
