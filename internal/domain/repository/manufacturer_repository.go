package repository

import "github.com/jhoicas/Farmacia-api/internal/domain/entity"

// ManufacturerRepository define el puerto de persistencia para laboratorios.
type ManufacturerRepository interface {
	Create(manufacturer *entity.Manufacturer) error
	GetByID(id string) (*entity.Manufacturer, error)
	Update(manufacturer *entity.Manufacturer) error
	List(limit, offset int) ([]*entity.Manufacturer, error)
}
