// Package report orquesta el motor de conciliación: carga catálogo, snapshot y
// movimientos, corre la variante correcta (bodega o sucursal) y expone el
// resultado como JSON, CSV o PDF.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/ledger"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// Nombre visible de la bodega central en reportes.
const warehouseLabel = "Bodega Central"

// LedgerUseCase genera el libro de inventario de una ubicación.
type LedgerUseCase struct {
	medicineRepo  repository.MedicineRepository
	storeRepo     repository.StoreRepository
	inventoryRepo repository.InventoryRepository
	purchaseRepo  repository.PurchaseRepository
	transferRepo  repository.TransferRepository
	returnRepo    repository.ManufacturerReturnRepository
	damageRepo    repository.DamageRepository
	saleRepo      repository.SaleRepository

	csv CSVRenderer
	pdf PDFRenderer
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	medicineRepo repository.MedicineRepository,
	storeRepo repository.StoreRepository,
	inventoryRepo repository.InventoryRepository,
	purchaseRepo repository.PurchaseRepository,
	transferRepo repository.TransferRepository,
	returnRepo repository.ManufacturerReturnRepository,
	damageRepo repository.DamageRepository,
	saleRepo repository.SaleRepository,
	csv CSVRenderer,
	pdf PDFRenderer,
) *LedgerUseCase {
	return &LedgerUseCase{
		medicineRepo:  medicineRepo,
		storeRepo:     storeRepo,
		inventoryRepo: inventoryRepo,
		purchaseRepo:  purchaseRepo,
		transferRepo:  transferRepo,
		returnRepo:    returnRepo,
		damageRepo:    damageRepo,
		saleRepo:      saleRepo,
		csv:           csv,
		pdf:           pdf,
	}
}

// Generate corre el motor para la ubicación y el período pedidos.
// El rango de fechas es obligatorio y se valida ANTES de tocar la persistencia.
func (uc *LedgerUseCase) Generate(ctx context.Context, req dto.LedgerReportRequest) (*dto.LedgerReportDTO, error) {
	period, err := parsePeriod(req.From, req.To)
	if err != nil {
		return nil, err
	}
	if req.LocationID == "" {
		return nil, domain.ErrInvalidInput
	}

	locationName := warehouseLabel
	variant := dto.LedgerVariantWarehouse
	if req.LocationID != entity.LocationWarehouse {
		store, err := uc.storeRepo.GetByID(req.LocationID)
		if err != nil {
			return nil, err
		}
		if store == nil {
			return nil, domain.ErrNotFound
		}
		locationName = store.Name
		variant = dto.LedgerVariantStore
	}

	input, err := uc.loadInput(ctx, req.LocationID, req.MedicineID, period)
	if err != nil {
		return nil, err
	}

	out := &dto.LedgerReportDTO{
		LocationID:   req.LocationID,
		LocationName: locationName,
		Variant:      variant,
		From:         period.From(),
		To:           period.To(),
		GeneratedAt:  time.Now(),
	}
	if variant == dto.LedgerVariantWarehouse {
		rows, err := ledger.ComputeWarehouse(input)
		if err != nil {
			return nil, err
		}
		out.WarehouseRows = toWarehouseDTOs(rows)
	} else {
		rows, err := ledger.ComputeStore(input)
		if err != nil {
			return nil, err
		}
		out.StoreRows = toStoreDTOs(rows)
	}
	return out, nil
}

// ExportCSV genera el reporte y lo serializa a CSV.
// Retorna los bytes y el nombre de archivo sugerido.
func (uc *LedgerUseCase) ExportCSV(ctx context.Context, req dto.LedgerReportRequest) ([]byte, string, error) {
	report, err := uc.Generate(ctx, req)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.csv.RenderLedgerCSV(report)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: serializar CSV: %w", err)
	}
	return data, reportFilename(report, "csv"), nil
}

// ExportPDF genera el reporte y lo serializa a PDF.
func (uc *LedgerUseCase) ExportPDF(ctx context.Context, req dto.LedgerReportRequest) ([]byte, string, error) {
	report, err := uc.Generate(ctx, req)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.pdf.RenderLedgerPDF(report)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: serializar PDF: %w", err)
	}
	return data, reportFilename(report, "pdf"), nil
}

// loadInput carga catálogo, snapshot y las cinco colecciones de movimientos en
// paralelo. El motor filtra por fecha y ubicación en memoria.
func (uc *LedgerUseCase) loadInput(ctx context.Context, locationID, medicineID string, period ledger.Period) (ledger.Input, error) {
	type catalogResult struct {
		medicines []*entity.Medicine
		err       error
	}
	type snapshotResult struct {
		items []*entity.InventoryItem
		err   error
	}
	type movementsResult struct {
		set ledger.MovementSet
		err error
	}

	catalogCh := make(chan catalogResult, 1)
	snapshotCh := make(chan snapshotResult, 1)
	movementsCh := make(chan movementsResult, 1)

	go func() {
		medicines, err := uc.medicineRepo.ListAll()
		catalogCh <- catalogResult{medicines, err}
	}()
	go func() {
		items, err := uc.inventoryRepo.ListByLocation(locationID)
		snapshotCh <- snapshotResult{items, err}
	}()
	go func() {
		set, err := uc.loadMovements()
		movementsCh <- movementsResult{set, err}
	}()

	catalog := <-catalogCh
	snapshot := <-snapshotCh
	movements := <-movementsCh

	if catalog.err != nil {
		return ledger.Input{}, fmt.Errorf("reporte: cargar catálogo: %w", catalog.err)
	}
	if snapshot.err != nil {
		return ledger.Input{}, fmt.Errorf("reporte: cargar snapshot: %w", snapshot.err)
	}
	if movements.err != nil {
		return ledger.Input{}, movements.err
	}
	if err := ctx.Err(); err != nil {
		return ledger.Input{}, err
	}

	medicines := make([]entity.Medicine, 0, len(catalog.medicines))
	for _, m := range catalog.medicines {
		medicines = append(medicines, *m)
	}
	items := make([]entity.InventoryItem, 0, len(snapshot.items))
	for _, it := range snapshot.items {
		items = append(items, *it)
	}

	return ledger.Input{
		LocationID: locationID,
		MedicineID: medicineID,
		Period:     period,
		Catalog:    medicines,
		Snapshot:   items,
		Movements:  movements.set,
	}, nil
}

func (uc *LedgerUseCase) loadMovements() (ledger.MovementSet, error) {
	var set ledger.MovementSet

	purchases, err := uc.purchaseRepo.ListAll()
	if err != nil {
		return set, fmt.Errorf("reporte: cargar compras: %w", err)
	}
	for _, p := range purchases {
		set.Purchases = append(set.Purchases, *p)
	}

	transfers, err := uc.transferRepo.ListAll()
	if err != nil {
		return set, fmt.Errorf("reporte: cargar traslados: %w", err)
	}
	for _, t := range transfers {
		set.Transfers = append(set.Transfers, *t)
	}

	returns, err := uc.returnRepo.ListAll()
	if err != nil {
		return set, fmt.Errorf("reporte: cargar devoluciones: %w", err)
	}
	for _, r := range returns {
		set.ManufacturerReturns = append(set.ManufacturerReturns, *r)
	}

	damages, err := uc.damageRepo.ListAll()
	if err != nil {
		return set, fmt.Errorf("reporte: cargar bajas: %w", err)
	}
	for _, d := range damages {
		set.Damages = append(set.Damages, *d)
	}

	sales, err := uc.saleRepo.ListAll()
	if err != nil {
		return set, fmt.Errorf("reporte: cargar ventas: %w", err)
	}
	for _, s := range sales {
		set.Sales = append(set.Sales, *s)
	}

	return set, nil
}

// parsePeriod interpreta from/to como yyyy-MM-dd en hora local.
func parsePeriod(from, to string) (ledger.Period, error) {
	if from == "" || to == "" {
		return ledger.Period{}, domain.ErrDateRangeRequired
	}
	f, err := time.ParseInLocation("2006-01-02", from, time.Local)
	if err != nil {
		return ledger.Period{}, domain.ErrInvalidInput
	}
	t, err := time.ParseInLocation("2006-01-02", to, time.Local)
	if err != nil {
		return ledger.Period{}, domain.ErrInvalidInput
	}
	return ledger.NewPeriod(f, t)
}

// reportFilename arma el nombre de descarga: {locationId}_stock_report_{yyyy-MM-dd}.{ext}
func reportFilename(report *dto.LedgerReportDTO, ext string) string {
	return fmt.Sprintf("%s_stock_report_%s.%s", report.LocationID, report.GeneratedAt.Format("2006-01-02"), ext)
}

func toWarehouseDTOs(rows []ledger.WarehouseRow) []dto.WarehouseLedgerRowDTO {
	out := make([]dto.WarehouseLedgerRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.WarehouseLedgerRowDTO{
			MedicineID:             r.MedicineID,
			MedicineName:           r.MedicineName,
			ManufacturerName:       r.ManufacturerName,
			Opening:                r.Opening,
			Received:               r.Received,
			TotalStock:             r.TotalStock,
			ReturnedFromStore:      r.ReturnedFromStore,
			ReturnedToManufacturer: r.ReturnedToManufacturer,
			Transferred:            r.Transferred,
			Damaged:                r.Damaged,
			Balance:                r.Balance,
		})
	}
	return out
}

func toStoreDTOs(rows []ledger.StoreRow) []dto.StoreLedgerRowDTO {
	out := make([]dto.StoreLedgerRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StoreLedgerRowDTO{
			MedicineID:   r.MedicineID,
			MedicineName: r.MedicineName,
			Opening:      r.Opening,
			Received:     r.Received,
			Sales:        r.Sales,
			Returned:     r.Returned,
			Damaged:      r.Damaged,
			Balance:      r.Balance,
		})
	}
	return out
}
