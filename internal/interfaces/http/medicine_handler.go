package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/internal/domain"
)

// MedicineHandler maneja el catálogo de medicamentos (protegido).
type MedicineHandler struct {
	uc *usecase.MedicineUseCase
}

// NewMedicineHandler construye el handler.
func NewMedicineHandler(uc *usecase.MedicineUseCase) *MedicineHandler {
	return &MedicineHandler{uc: uc}
}

// Create godoc
// @Summary      Crear medicamento
// @Tags         medicines
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMedicineRequest  true  "name, manufacturer_id, purchase_price, selling_price"
// @Success      201   {object}  dto.MedicineResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/medicines [post]
func (h *MedicineHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMedicineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "laboratorio no encontrado"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el medicamento ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener medicamento
// @Tags         medicines
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del medicamento"
// @Success      200  {object}  dto.MedicineResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/medicines/{id} [get]
func (h *MedicineHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "medicamento no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar medicamento
// @Tags         medicines
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del medicamento"
// @Param        body  body  dto.UpdateMedicineRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.MedicineResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/medicines/{id} [put]
func (h *MedicineHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMedicineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "medicamento o laboratorio no encontrado"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "medicamento no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar medicamento
// @Tags         medicines
// @Security     Bearer
// @Param        id  path  string  true  "ID del medicamento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/medicines/{id} [delete]
func (h *MedicineHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "medicamento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar medicamentos
// @Tags         medicines
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo por página (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Param        low_stock  query  bool  false  "solo medicamentos bajo el mínimo de sucursal"
// @Success      200  {object}  dto.MedicineListResponse
// @Router       /api/medicines [get]
func (h *MedicineHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()
	if c.QueryBool("low_stock") {
		out, err := h.uc.ListLowStock()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(out)
	}
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
