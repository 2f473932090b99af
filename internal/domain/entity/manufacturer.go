package entity

import "time"

// Manufacturer representa un laboratorio o proveedor de medicamentos.
type Manufacturer struct {
	ID            string
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
