package http_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apphttp "github.com/jhoicas/Farmacia-api/internal/interfaces/http"
)

func TestCanAccess_MatrizDeRoles(t *testing.T) {
	cases := []struct {
		role    string
		routeID string
		want    bool
	}{
		// admin: todo
		{"admin", apphttp.RouteCatalogWrite, true},
		{"admin", apphttp.RouteMovements, true},
		{"admin", apphttp.RouteSales, true},
		{"admin", apphttp.RouteReports, true},

		// farmaceutico: catálogo, pacientes y reportes; sin movimientos ni ventas
		{"farmaceutico", apphttp.RouteCatalogWrite, true},
		{"farmaceutico", apphttp.RouteReports, true},
		{"farmaceutico", apphttp.RouteMovements, false},
		{"farmaceutico", apphttp.RouteSales, false},

		// bodeguero: movimientos y reportes; sin escritura de catálogo ni ventas
		{"bodeguero", apphttp.RouteMovements, true},
		{"bodeguero", apphttp.RouteReports, true},
		{"bodeguero", apphttp.RouteCatalogWrite, false},
		{"bodeguero", apphttp.RouteSales, false},

		// cajero: ventas y pacientes; sin movimientos ni reportes
		{"cajero", apphttp.RouteSales, true},
		{"cajero", apphttp.RoutePatients, true},
		{"cajero", apphttp.RouteMovements, false},
		{"cajero", apphttp.RouteReports, false},

		// rol desconocido o vacío: nada
		{"vendedor", apphttp.RouteSales, false},
		{"", apphttp.RouteCatalogRead, false},
	}

	for _, tc := range cases {
		got := apphttp.CanAccess(tc.role, tc.routeID)
		assert.Equal(t, tc.want, got, "role=%s routeID=%s", tc.role, tc.routeID)
	}
}

func TestCanAccess_TodosLosRolesLeenCatalogo(t *testing.T) {
	for _, role := range []string{"admin", "farmaceutico", "bodeguero", "cajero"} {
		assert.True(t, apphttp.CanAccess(role, apphttp.RouteCatalogRead),
			"%s debe poder leer el catálogo", role)
	}
}
