package repository

import "github.com/jhoicas/Farmacia-api/internal/domain/entity"

// InventoryRepository define el puerto para consultar/actualizar existencias
// por ubicación+medicamento. Usado dentro de transacciones para garantizar consistencia.
type InventoryRepository interface {
	Get(locationID, medicineID string) (*entity.InventoryItem, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(locationID, medicineID string) (*entity.InventoryItem, error)
	Upsert(item *entity.InventoryItem) error
	// ListByLocation devuelve el snapshot completo de una ubicación.
	ListByLocation(locationID string) ([]*entity.InventoryItem, error)
}
