package inventory

import (
	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// QueryUseCase consulta de solo lectura sobre el snapshot de inventario.
type QueryUseCase struct {
	inventoryRepo repository.InventoryRepository
	storeRepo     repository.StoreRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(inventoryRepo repository.InventoryRepository, storeRepo repository.StoreRepository) *QueryUseCase {
	return &QueryUseCase{inventoryRepo: inventoryRepo, storeRepo: storeRepo}
}

// ListByLocation devuelve el snapshot completo de una ubicación
// (bodega o sucursal), ordenado por nombre de medicamento.
func (uc *QueryUseCase) ListByLocation(locationID string) (*dto.InventoryListResponse, error) {
	if locationID == "" {
		return nil, domain.ErrInvalidInput
	}
	if locationID != entity.LocationWarehouse {
		store, err := uc.storeRepo.GetByID(locationID)
		if err != nil {
			return nil, err
		}
		if store == nil {
			return nil, domain.ErrNotFound
		}
	}

	items, err := uc.inventoryRepo.ListByLocation(locationID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.InventoryItemResponse{
			LocationID:   item.LocationID,
			MedicineID:   item.MedicineID,
			MedicineName: item.MedicineName,
			Quantity:     item.Quantity,
			UpdatedAt:    item.UpdatedAt,
		})
	}
	return &dto.InventoryListResponse{
		LocationID: locationID,
		Items:      out,
		Total:      len(out),
	}, nil
}
