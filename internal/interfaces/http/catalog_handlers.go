package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/internal/domain"
)

// Handlers de catálogo: laboratorios, sucursales y pacientes. Comparten la
// misma forma CRUD que el de medicamentos.

// ManufacturerHandler maneja el catálogo de laboratorios (protegido).
type ManufacturerHandler struct {
	uc *usecase.ManufacturerUseCase
}

// NewManufacturerHandler construye el handler.
func NewManufacturerHandler(uc *usecase.ManufacturerUseCase) *ManufacturerHandler {
	return &ManufacturerHandler{uc: uc}
}

// Create godoc
// @Summary      Crear laboratorio
// @Tags         manufacturers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateManufacturerRequest  true  "name, contact_person, phone, email, address"
// @Success      201   {object}  dto.ManufacturerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/manufacturers [post]
func (h *ManufacturerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateManufacturerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre requerido"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el laboratorio ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener laboratorio
// @Tags         manufacturers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del laboratorio"
// @Success      200  {object}  dto.ManufacturerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/manufacturers/{id} [get]
func (h *ManufacturerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "laboratorio no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar laboratorio
// @Tags         manufacturers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "ID del laboratorio"
// @Param        body  body  dto.UpdateManufacturerRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.ManufacturerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/manufacturers/{id} [put]
func (h *ManufacturerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateManufacturerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "laboratorio no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "laboratorio no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar laboratorios
// @Tags         manufacturers
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ManufacturerListResponse
// @Router       /api/manufacturers [get]
func (h *ManufacturerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// StoreHandler maneja el catálogo de sucursales (protegido).
type StoreHandler struct {
	uc *usecase.StoreUseCase
}

// NewStoreHandler construye el handler.
func NewStoreHandler(uc *usecase.StoreUseCase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// Create godoc
// @Summary      Crear sucursal
// @Tags         stores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStoreRequest  true  "name, address, phone"
// @Success      201   {object}  dto.StoreResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stores [post]
func (h *StoreHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre requerido"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la sucursal ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener sucursal
// @Tags         stores
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la sucursal"
// @Success      200  {object}  dto.StoreResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{id} [get]
func (h *StoreHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sucursal no encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar sucursal
// @Tags         stores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la sucursal"
// @Param        body  body  dto.UpdateStoreRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.StoreResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stores/{id} [put]
func (h *StoreHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sucursal no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sucursal no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar sucursales
// @Tags         stores
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StoreListResponse
// @Router       /api/stores [get]
func (h *StoreHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// PatientHandler maneja el catálogo de pacientes (protegido).
type PatientHandler struct {
	uc *usecase.PatientUseCase
}

// NewPatientHandler construye el handler.
func NewPatientHandler(uc *usecase.PatientUseCase) *PatientHandler {
	return &PatientHandler{uc: uc}
}

// Create godoc
// @Summary      Crear paciente
// @Tags         patients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePatientRequest  true  "name, document, phone, email, address"
// @Success      201   {object}  dto.PatientResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/patients [post]
func (h *PatientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePatientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre y documento son requeridos"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un paciente con ese documento"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener paciente
// @Tags         patients
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del paciente"
// @Success      200  {object}  dto.PatientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/patients/{id} [get]
func (h *PatientHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "paciente no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar paciente
// @Tags         patients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del paciente"
// @Param        body  body  dto.UpdatePatientRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.PatientResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/patients/{id} [put]
func (h *PatientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePatientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "paciente no encontrado"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un paciente con ese documento"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "paciente no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar pacientes
// @Tags         patients
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PatientListResponse
// @Router       /api/patients [get]
func (h *PatientHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
