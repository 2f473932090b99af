package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// StoreUseCase casos de uso CRUD para sucursales.
type StoreUseCase struct {
	repo repository.StoreRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo}
}

// Create crea una sucursal.
func (uc *StoreUseCase) Create(in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	now := time.Now()
	store := &entity.Store{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// GetByID obtiene una sucursal por ID.
func (uc *StoreUseCase) GetByID(id string) (*dto.StoreResponse, error) {
	store, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, nil
	}
	return toStoreResponse(store), nil
}

// Update actualiza una sucursal.
func (uc *StoreUseCase) Update(id string, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	store, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, nil
	}
	if in.Name != nil {
		store.Name = *in.Name
	}
	if in.Address != nil {
		store.Address = *in.Address
	}
	if in.Phone != nil {
		store.Phone = *in.Phone
	}
	store.UpdatedAt = time.Now()
	if err := uc.repo.Update(store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// List lista sucursales con paginación.
func (uc *StoreUseCase) List(limit, offset int) (*dto.StoreListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StoreResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStoreResponse(s))
	}
	return &dto.StoreListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		Address:   s.Address,
		Phone:     s.Phone,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
