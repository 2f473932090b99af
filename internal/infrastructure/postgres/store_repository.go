package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación de StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador de sucursales.
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

const storeColumns = `id, name, address, phone, created_at, updated_at`

// Create persiste una nueva sucursal.
func (r *StoreRepo) Create(store *entity.Store) error {
	query := `INSERT INTO stores (` + storeColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		store.ID, store.Name, store.Address, store.Phone, store.CreatedAt, store.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID obtiene una sucursal por ID. Retorna (nil, nil) si no existe.
func (r *StoreRepo) GetByID(id string) (*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE id = $1`
	var s entity.Store
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Address, &s.Phone, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}

// Update actualiza una sucursal existente.
func (r *StoreRepo) Update(store *entity.Store) error {
	query := `UPDATE stores SET name = $2, address = $3, phone = $4, updated_at = $5 WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		store.ID, store.Name, store.Address, store.Phone, store.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update store: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve una página de sucursales ordenada por nombre.
func (r *StoreRepo) List(limit, offset int) ([]*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores ORDER BY name, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	var stores []*entity.Store
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.Phone, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		stores = append(stores, &s)
	}
	return stores, rows.Err()
}
