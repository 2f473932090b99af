package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	"github.com/jhoicas/Farmacia-api/internal/domain"
)

// Handlers de los movimientos de stock con documento propio: compras,
// traslados y devoluciones a laboratorio.

// PurchaseHandler maneja las compras a laboratorio (protegido).
type PurchaseHandler struct {
	uc *inventory.MovementUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *inventory.MovementUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar compra a laboratorio
// @Description  Suma stock en bodega y persiste la factura de compra con sus líneas.
// @Tags         purchases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterPurchaseRequest  true  "manufacturer_id, date, items"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *PurchaseHandler) Register(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterPurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegisterPurchase(c.Context(), userID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "laboratorio o medicamento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// TransferHandler maneja los traslados bodega <-> sucursal (protegido).
type TransferHandler struct {
	uc *inventory.MovementUseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(uc *inventory.MovementUseCase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar traslado de stock
// @Description  type=transfer: bodega -> sucursal. type=return: sucursal -> bodega.
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterTransferRequest  true  "from, to, type, date, items"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transfers [post]
func (h *TransferHandler) Register(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegisterTransfer(c.Context(), userID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "origen, destino o tipo inválidos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sucursal o medicamento no encontrado"})
		}
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente en origen"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ManufacturerReturnHandler maneja las devoluciones a laboratorio (protegido).
type ManufacturerReturnHandler struct {
	uc *inventory.MovementUseCase
}

// NewManufacturerReturnHandler construye el handler.
func NewManufacturerReturnHandler(uc *inventory.MovementUseCase) *ManufacturerReturnHandler {
	return &ManufacturerReturnHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar devolución a laboratorio
// @Description  El stock sale permanentemente de la bodega.
// @Tags         manufacturer-returns
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterManufacturerReturnRequest  true  "manufacturer_id, date, reason, items"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/manufacturer-returns [post]
func (h *ManufacturerReturnHandler) Register(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterManufacturerReturnRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.RegisterManufacturerReturn(c.Context(), userID, in); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "laboratorio o medicamento no encontrado"})
		}
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente en bodega"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "devolución registrada"})
}

// List godoc
// @Summary      Listar compras a laboratorio
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PurchaseListResponse
// @Router       /api/purchases [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListPurchases()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar traslados de stock
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TransferListResponse
// @Router       /api/transfers [get]
func (h *TransferHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListTransfers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar devoluciones a laboratorio
// @Tags         manufacturer-returns
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ManufacturerReturnListResponse
// @Router       /api/manufacturer-returns [get]
func (h *ManufacturerReturnHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListManufacturerReturns()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
