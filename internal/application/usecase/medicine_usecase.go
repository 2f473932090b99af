package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// MedicineUseCase casos de uso CRUD para el catálogo de medicamentos.
// ManufacturerName se desnormaliza al crear/actualizar para que los reportes
// no necesiten un join adicional.
type MedicineUseCase struct {
	repo             repository.MedicineRepository
	manufacturerRepo repository.ManufacturerRepository
}

// NewMedicineUseCase construye el caso de uso.
func NewMedicineUseCase(repo repository.MedicineRepository, manufacturerRepo repository.ManufacturerRepository) *MedicineUseCase {
	return &MedicineUseCase{repo: repo, manufacturerRepo: manufacturerRepo}
}

// Create crea un medicamento. Valida que el laboratorio exista.
func (uc *MedicineUseCase) Create(in dto.CreateMedicineRequest) (*dto.MedicineResponse, error) {
	manufacturer, err := uc.manufacturerRepo.GetByID(in.ManufacturerID)
	if err != nil {
		return nil, err
	}
	if manufacturer == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	medicine := &entity.Medicine{
		ID:                 uuid.New().String(),
		Name:               in.Name,
		ManufacturerID:     manufacturer.ID,
		ManufacturerName:   manufacturer.Name,
		PurchasePrice:      in.PurchasePrice,
		SellingPrice:       in.SellingPrice,
		StoreMinStockLevel: in.StoreMinStockLevel,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(medicine); err != nil {
		return nil, err
	}
	return toMedicineResponse(medicine), nil
}

// GetByID obtiene un medicamento por ID.
func (uc *MedicineUseCase) GetByID(id string) (*dto.MedicineResponse, error) {
	medicine, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, nil
	}
	return toMedicineResponse(medicine), nil
}

// Update actualiza un medicamento.
func (uc *MedicineUseCase) Update(id string, in dto.UpdateMedicineRequest) (*dto.MedicineResponse, error) {
	medicine, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, nil
	}
	if in.Name != nil {
		medicine.Name = *in.Name
	}
	if in.ManufacturerID != nil {
		manufacturer, err := uc.manufacturerRepo.GetByID(*in.ManufacturerID)
		if err != nil {
			return nil, err
		}
		if manufacturer == nil {
			return nil, domain.ErrNotFound
		}
		medicine.ManufacturerID = manufacturer.ID
		medicine.ManufacturerName = manufacturer.Name
	}
	if in.PurchasePrice != nil {
		medicine.PurchasePrice = *in.PurchasePrice
	}
	if in.SellingPrice != nil {
		medicine.SellingPrice = *in.SellingPrice
	}
	if in.StoreMinStockLevel != nil {
		medicine.StoreMinStockLevel = *in.StoreMinStockLevel
	}
	medicine.UpdatedAt = time.Now()
	if err := uc.repo.Update(medicine); err != nil {
		return nil, err
	}
	return toMedicineResponse(medicine), nil
}

// List lista medicamentos con paginación.
func (uc *MedicineUseCase) List(limit, offset int) (*dto.MedicineListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MedicineResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMedicineResponse(m))
	}
	return &dto.MedicineListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListLowStock lista los medicamentos cuyo stock en alguna sucursal está por
// debajo del mínimo configurado.
func (uc *MedicineUseCase) ListLowStock() (*dto.MedicineListResponse, error) {
	list, err := uc.repo.ListLowStock()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MedicineResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMedicineResponse(m))
	}
	return &dto.MedicineListResponse{Items: items}, nil
}

// Delete elimina un medicamento por ID.
func (uc *MedicineUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toMedicineResponse(m *entity.Medicine) *dto.MedicineResponse {
	if m == nil {
		return nil
	}
	return &dto.MedicineResponse{
		ID:                 m.ID,
		Name:               m.Name,
		ManufacturerID:     m.ManufacturerID,
		ManufacturerName:   m.ManufacturerName,
		PurchasePrice:      m.PurchasePrice,
		SellingPrice:       m.SellingPrice,
		StoreMinStockLevel: m.StoreMinStockLevel,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}
