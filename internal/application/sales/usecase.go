// Package sales implementa la venta en sucursal: descuenta stock de la
// sucursal de forma transaccional y persiste la factura con sus líneas.
package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// SaleUseCase registra y consulta ventas.
type SaleUseCase struct {
	txRunner     inventory.TxRunner
	saleRepo     repository.SaleRepository
	medicineRepo repository.MedicineRepository
	storeRepo    repository.StoreRepository
	patientRepo  repository.PatientRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	txRunner inventory.TxRunner,
	saleRepo repository.SaleRepository,
	medicineRepo repository.MedicineRepository,
	storeRepo repository.StoreRepository,
	patientRepo repository.PatientRepository,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:     txRunner,
		saleRepo:     saleRepo,
		medicineRepo: medicineRepo,
		storeRepo:    storeRepo,
		patientRepo:  patientRepo,
	}
}

// CreateSale registra una venta: bloquea el stock de la sucursal, verifica
// suficiencia por línea y descuenta dentro de la misma transacción. El precio
// de línea ausente se resuelve contra el precio de venta del catálogo.
func (uc *SaleUseCase) CreateSale(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.StoreID == "" || in.StoreID == entity.LocationWarehouse || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	store, err := uc.storeRepo.GetByID(in.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	if in.PatientID != "" {
		patient, err := uc.patientRepo.GetByID(in.PatientID)
		if err != nil {
			return nil, err
		}
		if patient == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	total := decimal.Zero
	items := make([]entity.SaleItem, 0, len(in.Items))
	for _, line := range in.Items {
		if line.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		medicine, err := uc.medicineRepo.GetByID(line.MedicineID)
		if err != nil {
			return nil, err
		}
		if medicine == nil {
			return nil, domain.ErrNotFound
		}
		price := medicine.SellingPrice
		if line.Price != nil {
			price = *line.Price
		}
		total = total.Add(price.Mul(decimal.NewFromInt(line.Quantity)))
		items = append(items, entity.SaleItem{
			MedicineID: line.MedicineID,
			Quantity:   line.Quantity,
			Price:      price,
		})
	}

	sale := &entity.Sale{
		InvoiceID:   uuid.New().String(),
		StoreID:     in.StoreID,
		PatientID:   in.PatientID,
		Items:       items,
		TotalAmount: total,
		CreatedAt:   now,
		SoldBy:      userID,
	}

	err = uc.txRunner.Run(ctx, func(repos inventory.TxRepos) error {
		for _, item := range items {
			stock, err := repos.Inventory.GetForUpdate(in.StoreID, item.MedicineID)
			if err != nil {
				return err
			}
			if stock.Quantity < item.Quantity {
				return domain.ErrInsufficientStock
			}
			stock.Quantity -= item.Quantity
			stock.UpdatedAt = now
			if err := repos.Inventory.Upsert(stock); err != nil {
				return err
			}
		}
		return repos.Sales.Create(sale)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// ListSales devuelve todas las ventas registradas.
func (uc *SaleUseCase) ListSales() (*dto.SaleListResponse, error) {
	sales, err := uc.saleRepo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, sale := range sales {
		out = append(out, *toSaleResponse(sale))
	}
	return &dto.SaleListResponse{Items: out, Total: len(out)}, nil
}

// GetSale obtiene una venta por su número de factura.
func (uc *SaleUseCase) GetSale(invoiceID string) (*dto.SaleResponse, error) {
	if invoiceID == "" {
		return nil, domain.ErrInvalidInput
	}
	sale, err := uc.saleRepo.GetByInvoiceID(invoiceID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, dto.SaleItemResponse{
			MedicineID: item.MedicineID,
			Quantity:   item.Quantity,
			Price:      item.Price,
			Subtotal:   item.Price.Mul(decimal.NewFromInt(item.Quantity)),
		})
	}
	return &dto.SaleResponse{
		InvoiceID:   s.InvoiceID,
		StoreID:     s.StoreID,
		PatientID:   s.PatientID,
		Items:       items,
		TotalAmount: s.TotalAmount,
		CreatedAt:   s.CreatedAt,
	}
}
