package entity

import "time"

// Patient representa un paciente o cliente de la farmacia.
type Patient struct {
	ID        string
	Name      string
	Document  string // cédula o documento de identidad
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
