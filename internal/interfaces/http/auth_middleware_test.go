package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/Farmacia-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Farmacia-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "farmacia-api-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireRoute para autorizar el acceso por ruta lógica
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(routeID string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRoute(routeID),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRoute
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El rol tiene acceso a la ruta lógica → HTTP 200.
func TestRequireRoute_BodegueroAccedeAMovimientos(t *testing.T) {
	app := buildTestApp(apphttp.RouteMovements)
	resp := doRequest(t, app, tokenForRole(t, "bodeguero"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"bodeguero debe poder registrar movimientos")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
	assert.Equal(t, "bodeguero", body["role"])
}

// Caso 1b: Admin accede a cualquier ruta lógica → HTTP 200.
func TestRequireRoute_AdminAccedeATodo(t *testing.T) {
	for _, routeID := range []string{
		apphttp.RouteCatalogWrite, apphttp.RouteMovements,
		apphttp.RouteSales, apphttp.RouteReports,
	} {
		app := buildTestApp(routeID)
		resp := doRequest(t, app, tokenForRole(t, "admin"))
		assert.Equal(t, http.StatusOK, resp.StatusCode,
			"admin debe acceder a %s", routeID)
		resp.Body.Close()
	}
}

// Caso 2: El rol no tiene la ruta lógica → HTTP 403 Forbidden.
func TestRequireRoute_CajeroBloqueadoEnMovimientos(t *testing.T) {
	app := buildTestApp(apphttp.RouteMovements)
	resp := doRequest(t, app, tokenForRole(t, "cajero"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"cajero no debe poder registrar movimientos de bodega")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Caso 2b: Cajero bloqueado en reportes; bodeguero bloqueado en ventas.
func TestRequireRoute_CrucesDeRolesBloqueados(t *testing.T) {
	app := buildTestApp(apphttp.RouteReports)
	resp := doRequest(t, app, tokenForRole(t, "cajero"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	app = buildTestApp(apphttp.RouteSales)
	resp = doRequest(t, app, tokenForRole(t, "bodeguero"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

// Caso 3: Sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequireRoute_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(apphttp.RouteCatalogRead)
	resp := doRequest(t, app, "") // sin header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 4: Token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestRequireRoute_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(apphttp.RouteCatalogRead)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "farmaceutico"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "farmaceutico", body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse con role
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_ConRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "bodeguero", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "bodeguero", role)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
