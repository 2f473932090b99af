package http

import "github.com/jhoicas/Farmacia-api/internal/domain/entity"

// Rutas lógicas de la API para el control de acceso por rol.
const (
	RouteCatalogRead   = "catalog.read"   // medicamentos, laboratorios, sucursales
	RouteCatalogWrite  = "catalog.write"  // altas y modificaciones de catálogo
	RoutePatients      = "patients"       // pacientes (lectura y escritura)
	RouteInventoryRead = "inventory.read" // snapshot de existencias
	RouteMovements     = "movements"      // compras, traslados, devoluciones, bajas
	RouteSales         = "sales"          // ventas en sucursal
	RouteReports       = "reports"        // libro de inventario y exportes
)

// accessPolicy mapea rol -> rutas lógicas permitidas. Admin accede a todo.
var accessPolicy = map[string]map[string]bool{
	entity.RoleFarmaceutico: {
		RouteCatalogRead:   true,
		RouteCatalogWrite:  true,
		RoutePatients:      true,
		RouteInventoryRead: true,
		RouteReports:       true,
	},
	entity.RoleBodeguero: {
		RouteCatalogRead:   true,
		RouteInventoryRead: true,
		RouteMovements:     true,
		RouteReports:       true,
	},
	entity.RoleCajero: {
		RouteCatalogRead:   true,
		RoutePatients:      true,
		RouteInventoryRead: true,
		RouteSales:         true,
	},
}

// CanAccess indica si un rol puede acceder a una ruta lógica.
func CanAccess(role, routeID string) bool {
	if role == entity.RoleAdmin {
		return true
	}
	return accessPolicy[role][routeID]
}
