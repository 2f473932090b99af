package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMedicineRequest entrada para crear un medicamento.
type CreateMedicineRequest struct {
	Name               string          `json:"name" validate:"required,min=1,max=200"`
	ManufacturerID     string          `json:"manufacturer_id" validate:"required"`
	PurchasePrice      decimal.Decimal `json:"purchase_price"`
	SellingPrice       decimal.Decimal `json:"selling_price"`
	StoreMinStockLevel int64           `json:"store_min_stock_level"`
}

// UpdateMedicineRequest entrada para actualizar un medicamento.
type UpdateMedicineRequest struct {
	Name               *string          `json:"name" validate:"omitempty,min=1,max=200"`
	ManufacturerID     *string          `json:"manufacturer_id"`
	PurchasePrice      *decimal.Decimal `json:"purchase_price"`
	SellingPrice       *decimal.Decimal `json:"selling_price"`
	StoreMinStockLevel *int64           `json:"store_min_stock_level"`
}

// MedicineResponse salida de un medicamento.
type MedicineResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	ManufacturerID     string          `json:"manufacturer_id"`
	ManufacturerName   string          `json:"manufacturer_name"`
	PurchasePrice      decimal.Decimal `json:"purchase_price"`
	SellingPrice       decimal.Decimal `json:"selling_price"`
	StoreMinStockLevel int64           `json:"store_min_stock_level"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// MedicineListResponse lista paginada de medicamentos.
type MedicineListResponse struct {
	Items []MedicineResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
