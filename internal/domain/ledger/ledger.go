// Package ledger implementa el motor de conciliación del libro de inventario
// (servicio de dominio puro, sin I/O).
//
// Dado el snapshot actual de existencias y las colecciones completas de
// movimientos fechados (compras, traslados, devoluciones a laboratorio, bajas
// por daño y ventas), deriva para un período la apertura, los totales por
// categoría y el saldo por medicamento.
//
// Invariante de carga: la apertura se deriva HACIA ATRÁS desde el balance
// actual, nunca reconstruyendo historia previa al snapshot:
//
//	apertura = balance − entradas_del_período + salidas_del_período
//
// Por construcción, apertura + entradas − salidas == balance en cada fila.
package ledger

import (
	"sort"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// MovementSet agrupa las colecciones completas de movimientos ya cargadas.
// El motor filtra por fecha y ubicación; no consulta rangos a la persistencia.
type MovementSet struct {
	Purchases           []entity.Purchase
	Transfers           []entity.Transfer
	ManufacturerReturns []entity.ManufacturerReturn
	Damages             []entity.DamageLog
	Sales               []entity.Sale
}

// Input parámetros de una corrida del motor.
type Input struct {
	LocationID string // entity.LocationWarehouse o el ID de una sucursal
	MedicineID string // vacío = todos los medicamentos de la ubicación
	Period     Period
	Catalog    []entity.Medicine
	Snapshot   []entity.InventoryItem
	Movements  MovementSet
}

// WarehouseRow fila del libro de bodega.
type WarehouseRow struct {
	MedicineID             string
	MedicineName           string
	ManufacturerName       string
	Opening                int64
	Received               int64 // compras a laboratorio
	TotalStock             int64 // apertura + recibido + devuelto por sucursales
	ReturnedFromStore      int64 // traslados entrantes (devoluciones de sucursal)
	ReturnedToManufacturer int64
	Transferred            int64 // traslados salientes a sucursales
	Damaged                int64
	Balance                int64
}

// StoreRow fila del libro de sucursal.
type StoreRow struct {
	MedicineID   string
	MedicineName string
	Opening      int64
	Received     int64 // traslados entrantes desde bodega
	Sales        int64
	Returned     int64 // traslados salientes (devolución a bodega)
	Damaged      int64
	Balance      int64
}

// ComputeWarehouse genera el libro de la bodega central para el período.
//
// Política de bodega: entradas = compras + traslados entrantes; salidas =
// traslados salientes + devoluciones a laboratorio + daños.
//
// apertura = balance − recibido − devueltoPorSucursal + trasladado + devueltoALaboratorio + dañado
func ComputeWarehouse(in Input) ([]WarehouseRow, error) {
	if in.Period.IsZero() {
		return nil, domain.ErrDateRangeRequired
	}
	catalog := catalogByID(in.Catalog)
	balances := balancesAt(in.Snapshot, entity.LocationWarehouse)

	type totals struct {
		received, returnedFromStore, returnedToMfr, transferred, damaged int64
	}
	byMedicine := map[string]*totals{}
	get := func(id string) *totals {
		t, ok := byMedicine[id]
		if !ok {
			t = &totals{}
			byMedicine[id] = t
		}
		return t
	}

	for _, p := range in.Movements.Purchases {
		if !in.Period.Contains(p.Date) {
			continue
		}
		for _, item := range p.Items {
			get(item.MedicineID).received += item.Quantity
		}
	}
	for _, t := range in.Movements.Transfers {
		if !in.Period.Contains(t.Date) {
			continue
		}
		switch {
		case t.To == entity.LocationWarehouse:
			for _, item := range t.Items {
				get(item.MedicineID).returnedFromStore += item.Quantity
			}
		case t.From == entity.LocationWarehouse:
			for _, item := range t.Items {
				get(item.MedicineID).transferred += item.Quantity
			}
		}
	}
	for _, r := range in.Movements.ManufacturerReturns {
		if !in.Period.Contains(r.Date) {
			continue
		}
		for _, item := range r.Items {
			get(item.MedicineID).returnedToMfr += item.Quantity
		}
	}
	for _, d := range in.Movements.Damages {
		if d.LocationID != entity.LocationWarehouse || !in.Period.Contains(d.Date) {
			continue
		}
		get(d.MedicineID).damaged += d.Quantity
	}

	rows := make([]WarehouseRow, 0, len(balances))
	for _, id := range candidateIDs(in.MedicineID, balances, movementKeys(byMedicine)) {
		med, ok := catalog[id]
		if !ok {
			// Referencia fuera del catálogo maestro: se descarta en silencio.
			continue
		}
		balance := balances[id]
		t := byMedicine[id]
		if t == nil {
			t = &totals{}
		}
		opening := balance - t.received - t.returnedFromStore +
			t.transferred + t.returnedToMfr + t.damaged
		rows = append(rows, WarehouseRow{
			MedicineID:             id,
			MedicineName:           med.Name,
			ManufacturerName:       med.ManufacturerName,
			Opening:                opening,
			Received:               t.received,
			TotalStock:             opening + t.received + t.returnedFromStore,
			ReturnedFromStore:      t.returnedFromStore,
			ReturnedToManufacturer: t.returnedToMfr,
			Transferred:            t.transferred,
			Damaged:                t.damaged,
			Balance:                balance,
		})
	}
	sortWarehouseRows(rows)
	return rows, nil
}

// ComputeStore genera el libro de una sucursal para el período.
//
// Política de sucursal: entradas = traslados entrantes desde bodega; salidas =
// ventas + traslados salientes (devolución a bodega) + daños.
//
// apertura = balance − recibido + ventas + devuelto + dañado
func ComputeStore(in Input) ([]StoreRow, error) {
	if in.Period.IsZero() {
		return nil, domain.ErrDateRangeRequired
	}
	if in.LocationID == "" || in.LocationID == entity.LocationWarehouse {
		return nil, domain.ErrInvalidInput
	}
	catalog := catalogByID(in.Catalog)
	balances := balancesAt(in.Snapshot, in.LocationID)

	type totals struct {
		received, sales, returned, damaged int64
	}
	byMedicine := map[string]*totals{}
	get := func(id string) *totals {
		t, ok := byMedicine[id]
		if !ok {
			t = &totals{}
			byMedicine[id] = t
		}
		return t
	}

	for _, t := range in.Movements.Transfers {
		if !in.Period.Contains(t.Date) {
			continue
		}
		switch {
		case t.To == in.LocationID:
			for _, item := range t.Items {
				get(item.MedicineID).received += item.Quantity
			}
		case t.From == in.LocationID:
			for _, item := range t.Items {
				get(item.MedicineID).returned += item.Quantity
			}
		}
	}
	for _, s := range in.Movements.Sales {
		if s.StoreID != in.LocationID || !in.Period.Contains(s.CreatedAt) {
			continue
		}
		for _, item := range s.Items {
			get(item.MedicineID).sales += item.Quantity
		}
	}
	for _, d := range in.Movements.Damages {
		if d.LocationID != in.LocationID || !in.Period.Contains(d.Date) {
			continue
		}
		get(d.MedicineID).damaged += d.Quantity
	}

	rows := make([]StoreRow, 0, len(balances))
	for _, id := range candidateIDs(in.MedicineID, balances, movementKeys(byMedicine)) {
		med, ok := catalog[id]
		if !ok {
			continue
		}
		balance := balances[id]
		t := byMedicine[id]
		if t == nil {
			t = &totals{}
		}
		opening := balance - t.received + t.sales + t.returned + t.damaged
		rows = append(rows, StoreRow{
			MedicineID:   id,
			MedicineName: med.Name,
			Opening:      opening,
			Received:     t.received,
			Sales:        t.sales,
			Returned:     t.returned,
			Damaged:      t.damaged,
			Balance:      balance,
		})
	}
	sortStoreRows(rows)
	return rows, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func catalogByID(medicines []entity.Medicine) map[string]entity.Medicine {
	m := make(map[string]entity.Medicine, len(medicines))
	for _, med := range medicines {
		m[med.ID] = med
	}
	return m
}

// balancesAt indexa el snapshot por medicamento para una ubicación.
func balancesAt(snapshot []entity.InventoryItem, locationID string) map[string]int64 {
	m := map[string]int64{}
	for _, item := range snapshot {
		if item.LocationID == locationID {
			m[item.MedicineID] += item.Quantity
		}
	}
	return m
}

func movementKeys[T any](byMedicine map[string]*T) []string {
	keys := make([]string, 0, len(byMedicine))
	for id := range byMedicine {
		keys = append(keys, id)
	}
	return keys
}

// candidateIDs resuelve el alcance: un medicamento puntual, o la unión de los
// presentes en el snapshot con los referenciados por movimientos del período
// (para no ocultar medicamentos totalmente agotados).
func candidateIDs(medicineID string, balances map[string]int64, moved []string) []string {
	if medicineID != "" {
		return []string{medicineID}
	}
	seen := map[string]bool{}
	ids := make([]string, 0, len(balances)+len(moved))
	for id := range balances {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, id := range moved {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

func sortWarehouseRows(rows []WarehouseRow) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].MedicineName != rows[j].MedicineName {
			return rows[i].MedicineName < rows[j].MedicineName
		}
		return rows[i].MedicineID < rows[j].MedicineID
	})
}

func sortStoreRows(rows []StoreRow) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].MedicineName != rows[j].MedicineName {
			return rows[i].MedicineName < rows[j].MedicineName
		}
		return rows[i].MedicineID < rows[j].MedicineID
	})
}
