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

var _ repository.ManufacturerRepository = (*ManufacturerRepo)(nil)

// ManufacturerRepo implementación de ManufacturerRepository sobre PostgreSQL.
type ManufacturerRepo struct {
	q Querier
}

// NewManufacturerRepository construye el adaptador de laboratorios.
func NewManufacturerRepository(q Querier) *ManufacturerRepo {
	return &ManufacturerRepo{q: q}
}

const manufacturerColumns = `id, name, contact_person, phone, email, address, created_at, updated_at`

// Create persiste un nuevo laboratorio.
func (r *ManufacturerRepo) Create(manufacturer *entity.Manufacturer) error {
	query := `
		INSERT INTO manufacturers (` + manufacturerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		manufacturer.ID, manufacturer.Name, manufacturer.ContactPerson, manufacturer.Phone,
		manufacturer.Email, manufacturer.Address, manufacturer.CreatedAt, manufacturer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert manufacturer: %w", err)
	}
	return nil
}

// GetByID obtiene un laboratorio por ID. Retorna (nil, nil) si no existe.
func (r *ManufacturerRepo) GetByID(id string) (*entity.Manufacturer, error) {
	query := `SELECT ` + manufacturerColumns + ` FROM manufacturers WHERE id = $1`
	var m entity.Manufacturer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Name, &m.ContactPerson, &m.Phone, &m.Email, &m.Address, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get manufacturer: %w", err)
	}
	return &m, nil
}

// Update actualiza un laboratorio existente.
func (r *ManufacturerRepo) Update(manufacturer *entity.Manufacturer) error {
	query := `
		UPDATE manufacturers
		SET name = $2, contact_person = $3, phone = $4, email = $5, address = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		manufacturer.ID, manufacturer.Name, manufacturer.ContactPerson, manufacturer.Phone,
		manufacturer.Email, manufacturer.Address, manufacturer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update manufacturer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve una página de laboratorios ordenada por nombre.
func (r *ManufacturerRepo) List(limit, offset int) ([]*entity.Manufacturer, error) {
	query := `SELECT ` + manufacturerColumns + ` FROM manufacturers ORDER BY name, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list manufacturers: %w", err)
	}
	defer rows.Close()

	var manufacturers []*entity.Manufacturer
	for rows.Next() {
		var m entity.Manufacturer
		if err := rows.Scan(&m.ID, &m.Name, &m.ContactPerson, &m.Phone, &m.Email, &m.Address, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan manufacturer: %w", err)
		}
		manufacturers = append(manufacturers, &m)
	}
	return manufacturers, rows.Err()
}
