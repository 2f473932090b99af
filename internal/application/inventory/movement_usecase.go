package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// MovementUseCase registra los movimientos de stock de forma transaccional:
// compras (entrada a bodega), traslados (bodega <-> sucursal), devoluciones a
// laboratorio y bajas por daño. Cada operación bloquea las filas de inventario
// afectadas (SELECT FOR UPDATE) y hace Commit/Rollback como unidad.
//
// El motor de conciliación nunca escribe stock: estos escritores son los únicos
// que mutan el snapshot, de modo que el balance autoritativo siempre refleja
// los movimientos persistidos.
type MovementUseCase struct {
	txRunner         TxRunner
	medicineRepo     repository.MedicineRepository
	storeRepo        repository.StoreRepository
	manufacturerRepo repository.ManufacturerRepository
	purchaseRepo     repository.PurchaseRepository
	transferRepo     repository.TransferRepository
	returnRepo       repository.ManufacturerReturnRepository
	damageRepo       repository.DamageRepository
}

// NewMovementUseCase construye el caso de uso. Los repositorios de movimiento
// se usan solo para los listados; las escrituras pasan por el TxRunner.
func NewMovementUseCase(
	txRunner TxRunner,
	medicineRepo repository.MedicineRepository,
	storeRepo repository.StoreRepository,
	manufacturerRepo repository.ManufacturerRepository,
	purchaseRepo repository.PurchaseRepository,
	transferRepo repository.TransferRepository,
	returnRepo repository.ManufacturerReturnRepository,
	damageRepo repository.DamageRepository,
) *MovementUseCase {
	return &MovementUseCase{
		txRunner:         txRunner,
		medicineRepo:     medicineRepo,
		storeRepo:        storeRepo,
		manufacturerRepo: manufacturerRepo,
		purchaseRepo:     purchaseRepo,
		transferRepo:     transferRepo,
		returnRepo:       returnRepo,
		damageRepo:       damageRepo,
	}
}

// RegisterPurchase registra una compra a laboratorio: suma stock en bodega y
// persiste el encabezado con sus líneas en la misma transacción.
func (uc *MovementUseCase) RegisterPurchase(ctx context.Context, userID string, in dto.RegisterPurchaseRequest) (*dto.PurchaseResponse, error) {
	if in.ManufacturerID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	manufacturer, err := uc.manufacturerRepo.GetByID(in.ManufacturerID)
	if err != nil || manufacturer == nil {
		return nil, domain.ErrNotFound
	}
	date, err := parseDay(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	medicines, err := uc.resolveMedicines(itemMedicineIDs(in.Items))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	total := decimal.Zero
	items := make([]entity.PurchaseItem, 0, len(in.Items))
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		price := item.PricePerUnit
		if price.IsZero() {
			price = medicines[item.MedicineID].PurchasePrice
		}
		total = total.Add(price.Mul(decimal.NewFromInt(item.Quantity)))
		items = append(items, entity.PurchaseItem{
			MedicineID:   item.MedicineID,
			Quantity:     item.Quantity,
			PricePerUnit: price,
		})
	}

	purchase := &entity.Purchase{
		InvoiceID:      uuid.New().String(),
		ManufacturerID: manufacturer.ID,
		Date:           date,
		Items:          items,
		TotalAmount:    total,
		CreatedAt:      now,
		CreatedBy:      userID,
	}

	err = uc.txRunner.Run(ctx, func(repos TxRepos) error {
		for _, item := range items {
			if err := addStock(repos.Inventory, entity.LocationWarehouse, medicines[item.MedicineID], item.Quantity, now); err != nil {
				return err
			}
		}
		return repos.Purchases.Create(purchase)
	})
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(purchase), nil
}

// RegisterTransfer registra un traslado: resta en origen (con verificación de
// stock suficiente) y suma en destino, en la misma transacción.
// Type=transfer exige bodega -> sucursal; Type=return exige sucursal -> bodega.
func (uc *MovementUseCase) RegisterTransfer(ctx context.Context, userID string, in dto.RegisterTransferRequest) (*dto.TransferResponse, error) {
	if in.From == "" || in.To == "" || in.From == in.To || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	transferType := in.Type
	if transferType == "" {
		transferType = entity.TransferTypeTransfer
	}
	switch transferType {
	case entity.TransferTypeTransfer:
		if in.From != entity.LocationWarehouse {
			return nil, domain.ErrInvalidInput
		}
		if err := uc.requireStore(in.To); err != nil {
			return nil, err
		}
	case entity.TransferTypeReturn:
		if in.To != entity.LocationWarehouse {
			return nil, domain.ErrInvalidInput
		}
		if err := uc.requireStore(in.From); err != nil {
			return nil, err
		}
	default:
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDay(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	ids := make([]string, 0, len(in.Items))
	items := make([]entity.TransferItem, 0, len(in.Items))
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		ids = append(ids, item.MedicineID)
		items = append(items, entity.TransferItem{MedicineID: item.MedicineID, Quantity: item.Quantity})
	}
	medicines, err := uc.resolveMedicines(ids)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	transfer := &entity.Transfer{
		ID:        uuid.New().String(),
		From:      in.From,
		To:        in.To,
		Date:      date,
		Items:     items,
		Status:    entity.TransferStatusCompleted,
		Type:      transferType,
		CreatedAt: now,
		CreatedBy: userID,
	}

	err = uc.txRunner.Run(ctx, func(repos TxRepos) error {
		for _, item := range items {
			if err := removeStock(repos.Inventory, in.From, item.MedicineID, item.Quantity, now); err != nil {
				return err
			}
			if err := addStock(repos.Inventory, in.To, medicines[item.MedicineID], item.Quantity, now); err != nil {
				return err
			}
		}
		return repos.Transfers.Create(transfer)
	})
	if err != nil {
		return nil, err
	}
	return toTransferResponse(transfer), nil
}

// RegisterManufacturerReturn registra una devolución a laboratorio: el stock
// sale permanentemente de la bodega.
func (uc *MovementUseCase) RegisterManufacturerReturn(ctx context.Context, userID string, in dto.RegisterManufacturerReturnRequest) error {
	if in.ManufacturerID == "" || len(in.Items) == 0 {
		return domain.ErrInvalidInput
	}
	manufacturer, err := uc.manufacturerRepo.GetByID(in.ManufacturerID)
	if err != nil || manufacturer == nil {
		return domain.ErrNotFound
	}
	date, err := parseDay(in.Date)
	if err != nil {
		return domain.ErrInvalidInput
	}

	items := make([]entity.ReturnItem, 0, len(in.Items))
	ids := make([]string, 0, len(in.Items))
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
		ids = append(ids, item.MedicineID)
		items = append(items, entity.ReturnItem{MedicineID: item.MedicineID, Quantity: item.Quantity})
	}
	if _, err := uc.resolveMedicines(ids); err != nil {
		return err
	}

	now := time.Now()
	ret := &entity.ManufacturerReturn{
		ID:             uuid.New().String(),
		ManufacturerID: manufacturer.ID,
		Date:           date,
		Items:          items,
		Reason:         in.Reason,
		CreatedAt:      now,
		CreatedBy:      userID,
	}

	return uc.txRunner.Run(ctx, func(repos TxRepos) error {
		for _, item := range items {
			if err := removeStock(repos.Inventory, entity.LocationWarehouse, item.MedicineID, item.Quantity, now); err != nil {
				return err
			}
		}
		return repos.Returns.Create(ret)
	})
}

// RegisterDamage registra una baja por daño o vencimiento en bodega o sucursal.
func (uc *MovementUseCase) RegisterDamage(ctx context.Context, userID string, in dto.RegisterDamageRequest) error {
	if in.LocationID == "" || in.MedicineID == "" || in.Quantity <= 0 || in.Reason == "" {
		return domain.ErrInvalidInput
	}
	if in.LocationID != entity.LocationWarehouse {
		if err := uc.requireStore(in.LocationID); err != nil {
			return err
		}
	}
	if _, err := uc.resolveMedicines([]string{in.MedicineID}); err != nil {
		return err
	}
	date, err := parseDay(in.Date)
	if err != nil {
		return domain.ErrInvalidInput
	}

	now := time.Now()
	log := &entity.DamageLog{
		ID:         uuid.New().String(),
		LocationID: in.LocationID,
		MedicineID: in.MedicineID,
		Quantity:   in.Quantity,
		Date:       date,
		Reason:     in.Reason,
		RecordedBy: userID,
		CreatedAt:  now,
	}

	return uc.txRunner.Run(ctx, func(repos TxRepos) error {
		if err := removeStock(repos.Inventory, in.LocationID, in.MedicineID, in.Quantity, now); err != nil {
			return err
		}
		return repos.Damages.Create(log)
	})
}

// ── helpers ───────────────────────────────────────────────────────────────────

// addStock bloquea la fila de inventario y suma la cantidad.
func addStock(invRepo repository.InventoryRepository, locationID string, medicine *entity.Medicine, quantity int64, now time.Time) error {
	item, err := invRepo.GetForUpdate(locationID, medicine.ID)
	if err != nil {
		return err
	}
	item.MedicineName = medicine.Name
	item.Quantity += quantity
	item.UpdatedAt = now
	return invRepo.Upsert(item)
}

// removeStock bloquea la fila de inventario, verifica suficiencia y resta.
func removeStock(invRepo repository.InventoryRepository, locationID, medicineID string, quantity int64, now time.Time) error {
	item, err := invRepo.GetForUpdate(locationID, medicineID)
	if err != nil {
		return err
	}
	if item.Quantity < quantity {
		return domain.ErrInsufficientStock
	}
	item.Quantity -= quantity
	item.UpdatedAt = now
	return invRepo.Upsert(item)
}

// resolveMedicines valida que todos los IDs existan en el catálogo.
func (uc *MovementUseCase) resolveMedicines(ids []string) (map[string]*entity.Medicine, error) {
	medicines := make(map[string]*entity.Medicine, len(ids))
	for _, id := range ids {
		if _, ok := medicines[id]; ok {
			continue
		}
		medicine, err := uc.medicineRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		if medicine == nil {
			return nil, domain.ErrNotFound
		}
		medicines[id] = medicine
	}
	return medicines, nil
}

func (uc *MovementUseCase) requireStore(storeID string) error {
	store, err := uc.storeRepo.GetByID(storeID)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.ErrNotFound
	}
	return nil
}

func itemMedicineIDs(items []dto.PurchaseItemRequest) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.MedicineID)
	}
	return ids
}

// parseDay interpreta yyyy-MM-dd en hora local; vacío = ahora.
func parseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// ListPurchases lista todas las compras registradas.
func (uc *MovementUseCase) ListPurchases() (*dto.PurchaseListResponse, error) {
	list, err := uc.purchaseRepo.ListAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPurchaseResponse(p))
	}
	return &dto.PurchaseListResponse{Items: items, Total: len(items)}, nil
}

// ListTransfers lista todos los traslados registrados.
func (uc *MovementUseCase) ListTransfers() (*dto.TransferListResponse, error) {
	list, err := uc.transferRepo.ListAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransferResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTransferResponse(t))
	}
	return &dto.TransferListResponse{Items: items, Total: len(items)}, nil
}

// ListManufacturerReturns lista todas las devoluciones a laboratorio.
func (uc *MovementUseCase) ListManufacturerReturns() (*dto.ManufacturerReturnListResponse, error) {
	list, err := uc.returnRepo.ListAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ManufacturerReturnResponse, 0, len(list))
	for _, r := range list {
		lines := make([]dto.ReturnItemRequest, 0, len(r.Items))
		for _, item := range r.Items {
			lines = append(lines, dto.ReturnItemRequest{MedicineID: item.MedicineID, Quantity: item.Quantity})
		}
		items = append(items, dto.ManufacturerReturnResponse{
			ID:             r.ID,
			ManufacturerID: r.ManufacturerID,
			Date:           r.Date,
			Reason:         r.Reason,
			Items:          lines,
		})
	}
	return &dto.ManufacturerReturnListResponse{Items: items, Total: len(items)}, nil
}

// ListDamages lista todas las bajas registradas.
func (uc *MovementUseCase) ListDamages() (*dto.DamageLogListResponse, error) {
	list, err := uc.damageRepo.ListAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.DamageLogResponse, 0, len(list))
	for _, d := range list {
		items = append(items, dto.DamageLogResponse{
			ID:         d.ID,
			LocationID: d.LocationID,
			MedicineID: d.MedicineID,
			Quantity:   d.Quantity,
			Date:       d.Date,
			Reason:     d.Reason,
		})
	}
	return &dto.DamageLogListResponse{Items: items, Total: len(items)}, nil
}

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	items := make([]dto.PurchaseItemRequest, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, dto.PurchaseItemRequest{
			MedicineID:   item.MedicineID,
			Quantity:     item.Quantity,
			PricePerUnit: item.PricePerUnit,
		})
	}
	return &dto.PurchaseResponse{
		InvoiceID:      p.InvoiceID,
		ManufacturerID: p.ManufacturerID,
		Date:           p.Date,
		Items:          items,
		TotalAmount:    p.TotalAmount,
	}
}

func toTransferResponse(t *entity.Transfer) *dto.TransferResponse {
	items := make([]dto.TransferItemRequest, 0, len(t.Items))
	for _, item := range t.Items {
		items = append(items, dto.TransferItemRequest{MedicineID: item.MedicineID, Quantity: item.Quantity})
	}
	return &dto.TransferResponse{
		ID:     t.ID,
		From:   t.From,
		To:     t.To,
		Type:   t.Type,
		Status: t.Status,
		Date:   t.Date,
		Items:  items,
	}
}
