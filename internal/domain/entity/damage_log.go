package entity

import "time"

// DamageLog representa una baja por daño, vencimiento o pérdida en una ubicación.
// El stock sale permanentemente del sistema.
type DamageLog struct {
	ID         string
	LocationID string
	MedicineID string
	Quantity   int64
	Date       time.Time
	Reason     string
	RecordedBy string // UserID
	CreatedAt  time.Time
}
