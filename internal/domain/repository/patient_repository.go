package repository

import "github.com/jhoicas/Farmacia-api/internal/domain/entity"

// PatientRepository define el puerto de persistencia para pacientes.
type PatientRepository interface {
	Create(patient *entity.Patient) error
	GetByID(id string) (*entity.Patient, error)
	GetByDocument(document string) (*entity.Patient, error)
	Update(patient *entity.Patient) error
	List(limit, offset int) ([]*entity.Patient, error)
}
