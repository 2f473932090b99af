package repository

import "github.com/jhoicas/Farmacia-api/internal/domain/entity"

// Puertos de persistencia para los registros de movimiento. Los métodos ListAll
// existen porque el motor de conciliación consume las colecciones completas y
// filtra por fecha y ubicación en memoria, no en la consulta.

// PurchaseRepository persiste compras a laboratorio (encabezado + líneas).
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	GetByInvoiceID(invoiceID string) (*entity.Purchase, error)
	ListAll() ([]*entity.Purchase, error)
}

// TransferRepository persiste traslados entre ubicaciones.
type TransferRepository interface {
	Create(transfer *entity.Transfer) error
	GetByID(id string) (*entity.Transfer, error)
	ListAll() ([]*entity.Transfer, error)
}

// ManufacturerReturnRepository persiste devoluciones a laboratorio.
type ManufacturerReturnRepository interface {
	Create(ret *entity.ManufacturerReturn) error
	ListAll() ([]*entity.ManufacturerReturn, error)
}

// DamageRepository persiste bajas por daño o vencimiento.
type DamageRepository interface {
	Create(log *entity.DamageLog) error
	ListAll() ([]*entity.DamageLog, error)
}

// SaleRepository persiste ventas en sucursal (encabezado + líneas).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByInvoiceID(invoiceID string) (*entity.Sale, error)
	ListAll() ([]*entity.Sale, error)
}
