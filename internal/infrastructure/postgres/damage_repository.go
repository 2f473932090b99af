package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var _ repository.DamageRepository = (*DamageRepo)(nil)

// DamageRepo implementación de DamageRepository sobre PostgreSQL.
type DamageRepo struct {
	q Querier
}

// NewDamageRepository construye el adaptador de bajas por daño.
func NewDamageRepository(q Querier) *DamageRepo {
	return &DamageRepo{q: q}
}

// Create persiste una baja por daño o vencimiento.
func (r *DamageRepo) Create(log *entity.DamageLog) error {
	query := `
		INSERT INTO damage_logs (id, location_id, medicine_id, quantity, date, reason, recorded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.LocationID, log.MedicineID, log.Quantity,
		log.Date, log.Reason, log.RecordedBy, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert damage log: %w", err)
	}
	return nil
}

// ListAll devuelve todas las bajas (las consume el motor de conciliación).
func (r *DamageRepo) ListAll() ([]*entity.DamageLog, error) {
	query := `
		SELECT id, location_id, medicine_id, quantity, date, reason, recorded_by, created_at
		FROM damage_logs ORDER BY date, id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list damage logs: %w", err)
	}
	defer rows.Close()

	var logs []*entity.DamageLog
	for rows.Next() {
		var log entity.DamageLog
		if err := rows.Scan(&log.ID, &log.LocationID, &log.MedicineID, &log.Quantity, &log.Date, &log.Reason, &log.RecordedBy, &log.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan damage log: %w", err)
		}
		logs = append(logs, &log)
	}
	return logs, rows.Err()
}
