package repository

import "github.com/jhoicas/Farmacia-api/internal/domain/entity"

// MedicineRepository define el puerto de persistencia para el catálogo de medicamentos (DIP).
type MedicineRepository interface {
	Create(medicine *entity.Medicine) error
	GetByID(id string) (*entity.Medicine, error)
	Update(medicine *entity.Medicine) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Medicine, error)
	// ListAll devuelve el catálogo completo; lo usa el motor de conciliación.
	ListAll() ([]*entity.Medicine, error)
	// ListLowStock devuelve los medicamentos bajo el mínimo en alguna sucursal.
	ListLowStock() ([]*entity.Medicine, error)
}
