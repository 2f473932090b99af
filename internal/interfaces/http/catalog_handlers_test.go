package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Farmacia-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de catálogo
// ──────────────────────────────────────────────────────────────────────────────

// fakeMedicineRepo retorna (nil, nil) para IDs desconocidos, igual que el
// adaptador de PostgreSQL.
type fakeMedicineRepo struct {
	medicines map[string]*entity.Medicine
}

func (r *fakeMedicineRepo) Create(m *entity.Medicine) error { r.medicines[m.ID] = m; return nil }
func (r *fakeMedicineRepo) GetByID(id string) (*entity.Medicine, error) {
	return r.medicines[id], nil
}
func (r *fakeMedicineRepo) Update(m *entity.Medicine) error { r.medicines[m.ID] = m; return nil }
func (r *fakeMedicineRepo) Delete(id string) error          { delete(r.medicines, id); return nil }
func (r *fakeMedicineRepo) List(limit, offset int) ([]*entity.Medicine, error) {
	return nil, nil
}
func (r *fakeMedicineRepo) ListAll() ([]*entity.Medicine, error)      { return nil, nil }
func (r *fakeMedicineRepo) ListLowStock() ([]*entity.Medicine, error) { return nil, nil }

type fakeManufacturerRepo struct {
	manufacturers map[string]*entity.Manufacturer
}

func (r *fakeManufacturerRepo) Create(m *entity.Manufacturer) error {
	r.manufacturers[m.ID] = m
	return nil
}
func (r *fakeManufacturerRepo) GetByID(id string) (*entity.Manufacturer, error) {
	return r.manufacturers[id], nil
}
func (r *fakeManufacturerRepo) Update(m *entity.Manufacturer) error {
	r.manufacturers[m.ID] = m
	return nil
}
func (r *fakeManufacturerRepo) List(limit, offset int) ([]*entity.Manufacturer, error) {
	return nil, nil
}

type fakeStoreRepo struct {
	stores map[string]*entity.Store
}

func (r *fakeStoreRepo) Create(s *entity.Store) error { r.stores[s.ID] = s; return nil }
func (r *fakeStoreRepo) GetByID(id string) (*entity.Store, error) {
	return r.stores[id], nil
}
func (r *fakeStoreRepo) Update(s *entity.Store) error { r.stores[s.ID] = s; return nil }
func (r *fakeStoreRepo) List(limit, offset int) ([]*entity.Store, error) {
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// IDs desconocidos deben responder 404, nunca 200 con cuerpo null
// ──────────────────────────────────────────────────────────────────────────────

func TestMedicineHandler_GetByID_NoExiste_Retorna404(t *testing.T) {
	repo := &fakeMedicineRepo{medicines: map[string]*entity.Medicine{}}
	handler := apphttp.NewMedicineHandler(usecase.NewMedicineUseCase(repo, &fakeManufacturerRepo{manufacturers: map[string]*entity.Manufacturer{}}))

	app := fiber.New()
	app.Get("/api/medicines/:id", handler.GetByID)

	req := httptest.NewRequest(http.MethodGet, "/api/medicines/no-existe", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "un ID desconocido debe responder 404")
}

func TestMedicineHandler_Update_NoExiste_Retorna404(t *testing.T) {
	repo := &fakeMedicineRepo{medicines: map[string]*entity.Medicine{}}
	handler := apphttp.NewMedicineHandler(usecase.NewMedicineUseCase(repo, &fakeManufacturerRepo{manufacturers: map[string]*entity.Manufacturer{}}))

	app := fiber.New()
	app.Put("/api/medicines/:id", handler.Update)

	req := httptest.NewRequest(http.MethodPut, "/api/medicines/no-existe", strings.NewReader(`{"name":"Ibuprofeno 400mg"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "actualizar un ID desconocido debe responder 404")
}

func TestManufacturerHandler_GetByID_NoExiste_Retorna404(t *testing.T) {
	handler := apphttp.NewManufacturerHandler(usecase.NewManufacturerUseCase(&fakeManufacturerRepo{manufacturers: map[string]*entity.Manufacturer{}}))

	app := fiber.New()
	app.Get("/api/manufacturers/:id", handler.GetByID)

	req := httptest.NewRequest(http.MethodGet, "/api/manufacturers/no-existe", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "un laboratorio desconocido debe responder 404")
}

func TestStoreHandler_GetByID_NoExiste_Retorna404(t *testing.T) {
	handler := apphttp.NewStoreHandler(usecase.NewStoreUseCase(&fakeStoreRepo{stores: map[string]*entity.Store{}}))

	app := fiber.New()
	app.Get("/api/stores/:id", handler.GetByID)

	req := httptest.NewRequest(http.MethodGet, "/api/stores/no-existe", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "una sucursal desconocida debe responder 404")
}

func TestStoreHandler_GetByID_Existente_Retorna200(t *testing.T) {
	repo := &fakeStoreRepo{stores: map[string]*entity.Store{
		"store-1": {ID: "store-1", Name: "Sucursal Centro"},
	}}
	handler := apphttp.NewStoreHandler(usecase.NewStoreUseCase(repo))

	app := fiber.New()
	app.Get("/api/stores/:id", handler.GetByID)

	req := httptest.NewRequest(http.MethodGet, "/api/stores/store-1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
