package inventory

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// TxRepos agrupa los repositorios atados a una misma transacción de BD.
type TxRepos struct {
	Inventory repository.InventoryRepository
	Purchases repository.PurchaseRepository
	Transfers repository.TransferRepository
	Returns   repository.ManufacturerReturnRepository
	Damages   repository.DamageRepository
	Sales     repository.SaleRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad para los escritores de movimientos:
// el registro del movimiento y la mutación del stock conmutan o revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}
