package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestion-almacenes/almacenes-api/internal/application/dto"
	"github.com/gestion-almacenes/almacenes-api/internal/application/orders"
)

// OrderLineHandler maneja las peticiones HTTP para líneas de orden (protegido).
type OrderLineHandler struct {
	uc *orders.LineUseCase
}

// NewOrderLineHandler construye el handler.
func NewOrderLineHandler(uc *orders.LineUseCase) *OrderLineHandler {
	return &OrderLineHandler{uc: uc}
}

// Create godoc
// @Summary      Agregar línea a una orden en borrador
// @Tags         order-lines
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LineRequest  true  "Datos de la línea con su desglose por empaques"
// @Success      201   {object}  dto.LineResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/order-lines [post]
func (h *OrderLineHandler) Create(c *fiber.Ctx) error {
	var in dto.LineRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.OrderID == "" || in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "order_id y product_id son requeridos"})
	}
	out, err := h.uc.CreateLine(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar línea de una orden en borrador
// @Tags         order-lines
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "ID de la línea"
// @Param        body  body  dto.LineRequest  true  "Datos de la línea"
// @Success      200   {object}  dto.LineResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/order-lines/{id} [put]
func (h *OrderLineHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.LineRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateLine(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar línea de una orden en borrador
// @Tags         order-lines
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la línea"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/order-lines/{id} [delete]
func (h *OrderLineHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.DeleteLine(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByID godoc
// @Summary      Obtener línea por ID
// @Tags         order-lines
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la línea"
// @Success      200  {object}  dto.LineResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/order-lines/{id} [get]
func (h *OrderLineHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByOrder godoc
// @Summary      Listar líneas de una orden
// @Tags         order-lines
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {array}  dto.LineResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/lines [get]
func (h *OrderLineHandler) ListByOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")
	if orderID == "" {
		return missingID(c)
	}
	out, err := h.uc.ListByOrder(c.UserContext(), orderID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
