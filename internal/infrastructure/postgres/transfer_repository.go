package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación de TransferRepository sobre PostgreSQL (usable con pool o tx).
// Encabezado en transfers, líneas en transfer_items.
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador de traslados. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persiste el encabezado y las líneas de un traslado.
// Debe ejecutarse dentro de una transacción para que ambas escrituras sean atómicas.
func (r *TransferRepo) Create(transfer *entity.Transfer) error {
	ctx := context.Background()
	query := `
		INSERT INTO transfers (id, from_location, to_location, date, status, type, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		transfer.ID, transfer.From, transfer.To, transfer.Date,
		transfer.Status, transfer.Type, transfer.CreatedAt, transfer.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	for _, item := range transfer.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO transfer_items (transfer_id, medicine_id, quantity)
			VALUES ($1, $2, $3)`,
			transfer.ID, item.MedicineID, item.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert transfer item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un traslado con sus líneas. Retorna (nil, nil) si no existe.
func (r *TransferRepo) GetByID(id string) (*entity.Transfer, error) {
	ctx := context.Background()
	var t entity.Transfer
	err := r.q.QueryRow(ctx, `
		SELECT id, from_location, to_location, date, status, type, created_at, created_by
		FROM transfers WHERE id = $1`, id).Scan(
		&t.ID, &t.From, &t.To, &t.Date, &t.Status, &t.Type, &t.CreatedAt, &t.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT medicine_id, quantity FROM transfer_items WHERE transfer_id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get transfer items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.TransferItem
		if err := rows.Scan(&item.MedicineID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan transfer item: %w", err)
		}
		t.Items = append(t.Items, item)
	}
	return &t, rows.Err()
}

// ListAll devuelve todos los traslados con sus líneas (los consume el motor de conciliación).
func (r *TransferRepo) ListAll() ([]*entity.Transfer, error) {
	ctx := context.Background()
	rows, err := r.q.Query(ctx, `
		SELECT id, from_location, to_location, date, status, type, created_at, created_by
		FROM transfers ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	var transfers []*entity.Transfer
	byID := map[string]*entity.Transfer{}
	for rows.Next() {
		var t entity.Transfer
		if err := rows.Scan(&t.ID, &t.From, &t.To, &t.Date, &t.Status, &t.Type, &t.CreatedAt, &t.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		transfers = append(transfers, &t)
		byID[t.ID] = &t
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := r.q.Query(ctx, `SELECT transfer_id, medicine_id, quantity FROM transfer_items`)
	if err != nil {
		return nil, fmt.Errorf("list transfer items: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var transferID string
		var item entity.TransferItem
		if err := itemRows.Scan(&transferID, &item.MedicineID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan transfer item: %w", err)
		}
		if t, ok := byID[transferID]; ok {
			t.Items = append(t.Items, item)
		}
	}
	return transfers, itemRows.Err()
}
