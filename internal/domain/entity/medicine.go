package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medicine representa un medicamento del catálogo maestro.
// ManufacturerName viene desnormalizado del laboratorio para reportes sin join adicional.
type Medicine struct {
	ID                 string
	Name               string
	ManufacturerID     string
	ManufacturerName   string
	PurchasePrice      decimal.Decimal // precio de compra al laboratorio
	SellingPrice       decimal.Decimal // precio de venta al público
	StoreMinStockLevel int64           // mínimo sugerido por sucursal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
