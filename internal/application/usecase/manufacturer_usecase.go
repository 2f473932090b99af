package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// ManufacturerUseCase casos de uso CRUD para laboratorios.
type ManufacturerUseCase struct {
	repo repository.ManufacturerRepository
}

// NewManufacturerUseCase construye el caso de uso.
func NewManufacturerUseCase(repo repository.ManufacturerRepository) *ManufacturerUseCase {
	return &ManufacturerUseCase{repo: repo}
}

// Create crea un laboratorio.
func (uc *ManufacturerUseCase) Create(in dto.CreateManufacturerRequest) (*dto.ManufacturerResponse, error) {
	now := time.Now()
	manufacturer := &entity.Manufacturer{
		ID:            uuid.New().String(),
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Email:         in.Email,
		Address:       in.Address,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(manufacturer); err != nil {
		return nil, err
	}
	return toManufacturerResponse(manufacturer), nil
}

// GetByID obtiene un laboratorio por ID.
func (uc *ManufacturerUseCase) GetByID(id string) (*dto.ManufacturerResponse, error) {
	manufacturer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if manufacturer == nil {
		return nil, nil
	}
	return toManufacturerResponse(manufacturer), nil
}

// Update actualiza un laboratorio.
func (uc *ManufacturerUseCase) Update(id string, in dto.UpdateManufacturerRequest) (*dto.ManufacturerResponse, error) {
	manufacturer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if manufacturer == nil {
		return nil, nil
	}
	if in.Name != nil {
		manufacturer.Name = *in.Name
	}
	if in.ContactPerson != nil {
		manufacturer.ContactPerson = *in.ContactPerson
	}
	if in.Phone != nil {
		manufacturer.Phone = *in.Phone
	}
	if in.Email != nil {
		manufacturer.Email = *in.Email
	}
	if in.Address != nil {
		manufacturer.Address = *in.Address
	}
	manufacturer.UpdatedAt = time.Now()
	if err := uc.repo.Update(manufacturer); err != nil {
		return nil, err
	}
	return toManufacturerResponse(manufacturer), nil
}

// List lista laboratorios con paginación.
func (uc *ManufacturerUseCase) List(limit, offset int) (*dto.ManufacturerListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ManufacturerResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toManufacturerResponse(m))
	}
	return &dto.ManufacturerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toManufacturerResponse(m *entity.Manufacturer) *dto.ManufacturerResponse {
	if m == nil {
		return nil
	}
	return &dto.ManufacturerResponse{
		ID:            m.ID,
		Name:          m.Name,
		ContactPerson: m.ContactPerson,
		Phone:         m.Phone,
		Email:         m.Email,
		Address:       m.Address,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
