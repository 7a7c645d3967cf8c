package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestion-almacenes/almacenes-api/internal/application/dto"
	"github.com/gestion-almacenes/almacenes-api/internal/application/usecase"
)

// OrderTypeHandler maneja las peticiones HTTP para tipos de orden (protegido).
type OrderTypeHandler struct {
	uc *usecase.OrderTypeUseCase
}

// NewOrderTypeHandler construye el handler.
func NewOrderTypeHandler(uc *usecase.OrderTypeUseCase) *OrderTypeHandler {
	return &OrderTypeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tipo de orden
// @Tags         order-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OrderTypeRequest  true  "Datos del tipo (action: RECEIPT o DISPATCH)"
// @Success      201   {object}  dto.OrderTypeResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/order-types [post]
func (h *OrderTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.OrderTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Code == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code y name son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar tipo de orden
// @Tags         order-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID del tipo"
// @Param        body  body  dto.OrderTypeRequest  true  "Datos del tipo"
// @Success      200   {object}  dto.OrderTypeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/order-types/{id} [put]
func (h *OrderTypeHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.OrderTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tipo de orden (borrado lógico)
// @Tags         order-types
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tipo"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/order-types/{id} [delete]
func (h *OrderTypeHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByID godoc
// @Summary      Obtener tipo de orden por ID
// @Tags         order-types
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tipo"
// @Success      200  {object}  dto.OrderTypeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/order-types/{id} [get]
func (h *OrderTypeHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar tipos de orden
// @Tags         order-types
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.OrderTypeResponse
// @Router       /api/order-types [get]
func (h *OrderTypeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
