package repository

import "github.com/jhoicas/Farmacia-api/internal/domain/entity"

// StoreRepository define el puerto de persistencia para sucursales.
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id string) (*entity.Store, error)
	Update(store *entity.Store) error
	List(limit, offset int) ([]*entity.Store, error)
}
