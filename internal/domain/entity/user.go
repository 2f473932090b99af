package entity

import "time"

// Roles de usuario de la aplicación.
const (
	RoleAdmin        = "admin"
	RoleFarmaceutico = "farmaceutico" // gestiona catálogo y reportes
	RoleBodeguero    = "bodeguero"    // compras, traslados, daños
	RoleCajero       = "cajero"       // ventas en sucursal
)

// User representa un usuario de la aplicación.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin, farmaceutico, bodeguero, cajero
	Status       string // active, disabled
	StoreID      string // sucursal asignada (vacío para admin/bodeguero)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
