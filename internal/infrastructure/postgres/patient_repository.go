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

var _ repository.PatientRepository = (*PatientRepo)(nil)

// PatientRepo implementación de PatientRepository sobre PostgreSQL.
type PatientRepo struct {
	q Querier
}

// NewPatientRepository construye el adaptador de pacientes.
func NewPatientRepository(q Querier) *PatientRepo {
	return &PatientRepo{q: q}
}

const patientColumns = `id, name, document, phone, email, address, created_at, updated_at`

// Create persiste un nuevo paciente. Documento duplicado -> ErrDuplicate.
func (r *PatientRepo) Create(patient *entity.Patient) error {
	query := `INSERT INTO patients (` + patientColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		patient.ID, patient.Name, patient.Document, patient.Phone,
		patient.Email, patient.Address, patient.CreatedAt, patient.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert patient: %w", err)
	}
	return nil
}

// GetByID obtiene un paciente por ID. Retorna (nil, nil) si no existe.
func (r *PatientRepo) GetByID(id string) (*entity.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients WHERE id = $1`
	return r.getOne(query, id)
}

// GetByDocument obtiene un paciente por documento de identidad.
func (r *PatientRepo) GetByDocument(document string) (*entity.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients WHERE document = $1`
	return r.getOne(query, document)
}

func (r *PatientRepo) getOne(query string, arg any) (*entity.Patient, error) {
	var p entity.Patient
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Name, &p.Document, &p.Phone, &p.Email, &p.Address, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return &p, nil
}

// Update actualiza un paciente existente.
func (r *PatientRepo) Update(patient *entity.Patient) error {
	query := `
		UPDATE patients SET name = $2, document = $3, phone = $4, email = $5, address = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		patient.ID, patient.Name, patient.Document, patient.Phone,
		patient.Email, patient.Address, patient.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update patient: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve una página de pacientes ordenada por nombre.
func (r *PatientRepo) List(limit, offset int) ([]*entity.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients ORDER BY name, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()

	var patients []*entity.Patient
	for rows.Next() {
		var p entity.Patient
		if err := rows.Scan(&p.ID, &p.Name, &p.Document, &p.Phone, &p.Email, &p.Address, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		patients = append(patients, &p)
	}
	return patients, rows.Err()
}
