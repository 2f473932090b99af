package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de existencias. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventoryColumns = `location_id, medicine_id, medicine_name, quantity, updated_at`

// Get obtiene la existencia actual de un medicamento en una ubicación.
// Si no hay fila, retorna un item con cantidad 0.
func (r *InventoryRepo) Get(locationID, medicineID string) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE location_id = $1 AND medicine_id = $2`
	return r.getOne(query, locationID, medicineID)
}

// GetForUpdate obtiene la existencia y bloquea la fila para update (SELECT FOR UPDATE).
// Una fila inexistente produce un item con cantidad 0; el Upsert posterior la crea.
func (r *InventoryRepo) GetForUpdate(locationID, medicineID string) (*entity.InventoryItem, error) {
	query := `
		SELECT ` + inventoryColumns + ` FROM inventory
		WHERE location_id = $1 AND medicine_id = $2
		FOR UPDATE`
	return r.getOne(query, locationID, medicineID)
}

func (r *InventoryRepo) getOne(query, locationID, medicineID string) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := r.q.QueryRow(context.Background(), query, locationID, medicineID).Scan(
		&item.LocationID, &item.MedicineID, &item.MedicineName, &item.Quantity, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.InventoryItem{LocationID: locationID, MedicineID: medicineID, Quantity: 0}, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &item, nil
}

// Upsert inserta o actualiza la existencia (por ubicación y medicamento).
func (r *InventoryRepo) Upsert(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory (location_id, medicine_id, medicine_name, quantity, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (location_id, medicine_id)
		DO UPDATE SET medicine_name = EXCLUDED.medicine_name, quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		item.LocationID, item.MedicineID, item.MedicineName, item.Quantity, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert inventory: %w", err)
	}
	return nil
}

// ListByLocation devuelve el snapshot completo de una ubicación, ordenado por nombre.
func (r *InventoryRepo) ListByLocation(locationID string) ([]*entity.InventoryItem, error) {
	query := `
		SELECT ` + inventoryColumns + ` FROM inventory
		WHERE location_id = $1
		ORDER BY medicine_name, medicine_id`
	rows, err := r.q.Query(context.Background(), query, locationID)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var items []*entity.InventoryItem
	for rows.Next() {
		var item entity.InventoryItem
		if err := rows.Scan(&item.LocationID, &item.MedicineID, &item.MedicineName, &item.Quantity, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}
