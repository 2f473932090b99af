package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	"github.com/jhoicas/Farmacia-api/internal/domain"
)

// InventoryHandler maneja el snapshot de existencias y las bajas por daño (protegido).
type InventoryHandler struct {
	query    *inventory.QueryUseCase
	movement *inventory.MovementUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(query *inventory.QueryUseCase, movement *inventory.MovementUseCase) *InventoryHandler {
	return &InventoryHandler{query: query, movement: movement}
}

// ListByLocation godoc
// @Summary      Existencias de una ubicación
// @Description  Snapshot actual de la bodega ("warehouse") o de una sucursal.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        locationId  path  string  true  "warehouse o ID de sucursal"
// @Success      200  {object}  dto.InventoryListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{locationId} [get]
func (h *InventoryHandler) ListByLocation(c *fiber.Ctx) error {
	out, err := h.query.ListByLocation(c.Params("locationId"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ubicación no encontrada"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ubicación inválida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RegisterDamage godoc
// @Summary      Registrar baja por daño o vencimiento
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterDamageRequest  true  "location_id, medicine_id, quantity, reason, date"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/damages [post]
func (h *InventoryHandler) RegisterDamage(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterDamageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.movement.RegisterDamage(c.Context(), userID, in); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "medicamento o ubicación no encontrada"})
		}
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para la baja"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "baja registrada"})
}

// ListDamages godoc
// @Summary      Listar bajas por daño o vencimiento
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DamageLogListResponse
// @Router       /api/inventory/damages [get]
func (h *InventoryHandler) ListDamages(c *fiber.Ctx) error {
	out, err := h.movement.ListDamages()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
