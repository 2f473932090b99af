package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var _ repository.ManufacturerReturnRepository = (*ManufacturerReturnRepo)(nil)

// ManufacturerReturnRepo implementación de ManufacturerReturnRepository sobre PostgreSQL.
// Encabezado en manufacturer_returns, líneas en manufacturer_return_items.
type ManufacturerReturnRepo struct {
	q Querier
}

// NewManufacturerReturnRepository construye el adaptador de devoluciones a laboratorio.
func NewManufacturerReturnRepository(q Querier) *ManufacturerReturnRepo {
	return &ManufacturerReturnRepo{q: q}
}

// Create persiste el encabezado y las líneas de una devolución.
// Debe ejecutarse dentro de una transacción para que ambas escrituras sean atómicas.
func (r *ManufacturerReturnRepo) Create(ret *entity.ManufacturerReturn) error {
	ctx := context.Background()
	query := `
		INSERT INTO manufacturer_returns (id, manufacturer_id, date, reason, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		ret.ID, ret.ManufacturerID, ret.Date, ret.Reason, ret.CreatedAt, ret.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert manufacturer return: %w", err)
	}
	for _, item := range ret.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO manufacturer_return_items (return_id, medicine_id, quantity)
			VALUES ($1, $2, $3)`,
			ret.ID, item.MedicineID, item.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert manufacturer return item: %w", err)
		}
	}
	return nil
}

// ListAll devuelve todas las devoluciones con sus líneas (las consume el motor de conciliación).
func (r *ManufacturerReturnRepo) ListAll() ([]*entity.ManufacturerReturn, error) {
	ctx := context.Background()
	rows, err := r.q.Query(ctx, `
		SELECT id, manufacturer_id, date, reason, created_at, created_by
		FROM manufacturer_returns ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("list manufacturer returns: %w", err)
	}
	defer rows.Close()

	var returns []*entity.ManufacturerReturn
	byID := map[string]*entity.ManufacturerReturn{}
	for rows.Next() {
		var ret entity.ManufacturerReturn
		if err := rows.Scan(&ret.ID, &ret.ManufacturerID, &ret.Date, &ret.Reason, &ret.CreatedAt, &ret.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan manufacturer return: %w", err)
		}
		returns = append(returns, &ret)
		byID[ret.ID] = &ret
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := r.q.Query(ctx, `SELECT return_id, medicine_id, quantity FROM manufacturer_return_items`)
	if err != nil {
		return nil, fmt.Errorf("list manufacturer return items: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var returnID string
		var item entity.ReturnItem
		if err := itemRows.Scan(&returnID, &item.MedicineID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan manufacturer return item: %w", err)
		}
		if ret, ok := byID[returnID]; ok {
			ret.Items = append(ret.Items, item)
		}
	}
	return returns, itemRows.Err()
}
