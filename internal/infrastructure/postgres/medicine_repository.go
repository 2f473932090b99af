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

var _ repository.MedicineRepository = (*MedicineRepo)(nil)

// MedicineRepo implementación del puerto MedicineRepository sobre PostgreSQL (usable con pool o tx).
type MedicineRepo struct {
	q Querier
}

// NewMedicineRepository construye el adaptador del catálogo. Pasar pool o tx (Querier).
func NewMedicineRepository(q Querier) *MedicineRepo {
	return &MedicineRepo{q: q}
}

const medicineColumns = `id, name, manufacturer_id, manufacturer_name, purchase_price, selling_price, store_min_stock_level, created_at, updated_at`

// Create persiste un nuevo medicamento.
func (r *MedicineRepo) Create(medicine *entity.Medicine) error {
	query := `
		INSERT INTO medicines (` + medicineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		medicine.ID, medicine.Name, medicine.ManufacturerID, medicine.ManufacturerName,
		medicine.PurchasePrice, medicine.SellingPrice, medicine.StoreMinStockLevel,
		medicine.CreatedAt, medicine.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert medicine: %w", err)
	}
	return nil
}

// GetByID obtiene un medicamento por ID. Retorna (nil, nil) si no existe.
func (r *MedicineRepo) GetByID(id string) (*entity.Medicine, error) {
	query := `SELECT ` + medicineColumns + ` FROM medicines WHERE id = $1`
	m, err := scanMedicine(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get medicine: %w", err)
	}
	return m, nil
}

// Update actualiza un medicamento existente.
func (r *MedicineRepo) Update(medicine *entity.Medicine) error {
	query := `
		UPDATE medicines
		SET name = $2, manufacturer_id = $3, manufacturer_name = $4, purchase_price = $5,
		    selling_price = $6, store_min_stock_level = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		medicine.ID, medicine.Name, medicine.ManufacturerID, medicine.ManufacturerName,
		medicine.PurchasePrice, medicine.SellingPrice, medicine.StoreMinStockLevel, medicine.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update medicine: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un medicamento del catálogo.
func (r *MedicineRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM medicines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete medicine: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve una página del catálogo ordenada por nombre.
func (r *MedicineRepo) List(limit, offset int) ([]*entity.Medicine, error) {
	query := `SELECT ` + medicineColumns + ` FROM medicines ORDER BY name, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list medicines: %w", err)
	}
	defer rows.Close()
	return collectMedicines(rows)
}

// ListAll devuelve el catálogo completo.
func (r *MedicineRepo) ListAll() ([]*entity.Medicine, error) {
	query := `SELECT ` + medicineColumns + ` FROM medicines ORDER BY name, id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all medicines: %w", err)
	}
	defer rows.Close()
	return collectMedicines(rows)
}

// ListLowStock devuelve los medicamentos cuyo stock en alguna sucursal está
// por debajo del mínimo configurado. Los que no tienen fila de inventario en
// una sucursal cuentan como stock cero.
func (r *MedicineRepo) ListLowStock() ([]*entity.Medicine, error) {
	query := `
		SELECT DISTINCT m.id, m.name, m.manufacturer_id, m.manufacturer_name,
		       m.purchase_price, m.selling_price, m.store_min_stock_level,
		       m.created_at, m.updated_at
		FROM medicines m
		CROSS JOIN stores s
		LEFT JOIN inventory i ON i.location_id = s.id AND i.medicine_id = m.id
		WHERE m.store_min_stock_level > 0
		  AND COALESCE(i.quantity, 0) < m.store_min_stock_level
		ORDER BY m.name, m.id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list low stock medicines: %w", err)
	}
	defer rows.Close()
	return collectMedicines(rows)
}

func scanMedicine(row pgx.Row) (*entity.Medicine, error) {
	var m entity.Medicine
	err := row.Scan(
		&m.ID, &m.Name, &m.ManufacturerID, &m.ManufacturerName,
		&m.PurchasePrice, &m.SellingPrice, &m.StoreMinStockLevel,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectMedicines(rows pgx.Rows) ([]*entity.Medicine, error) {
	var medicines []*entity.Medicine
	for rows.Next() {
		m, err := scanMedicine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan medicine: %w", err)
		}
		medicines = append(medicines, m)
	}
	return medicines, rows.Err()
}
