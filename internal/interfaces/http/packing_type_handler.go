package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestion-almacenes/almacenes-api/internal/application/dto"
	"github.com/gestion-almacenes/almacenes-api/internal/application/usecase"
)

// PackingTypeHandler maneja las peticiones HTTP para tipos de empaque (protegido).
type PackingTypeHandler struct {
	uc *usecase.PackingTypeUseCase
}

// NewPackingTypeHandler construye el handler.
func NewPackingTypeHandler(uc *usecase.PackingTypeUseCase) *PackingTypeHandler {
	return &PackingTypeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tipo de empaque
// @Tags         packing-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PackingTypeRequest  true  "Datos del empaque (capacity 0 = sin límite)"
// @Success      201   {object}  dto.PackingTypeResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/packing-types [post]
func (h *PackingTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.PackingTypeRequest
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
// @Summary      Actualizar tipo de empaque
// @Tags         packing-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del empaque"
// @Param        body  body  dto.PackingTypeRequest  true  "Datos del empaque"
// @Success      200   {object}  dto.PackingTypeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/packing-types/{id} [put]
func (h *PackingTypeHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.PackingTypeRequest
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
// @Summary      Eliminar tipo de empaque (borrado lógico)
// @Tags         packing-types
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del empaque"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/packing-types/{id} [delete]
func (h *PackingTypeHandler) Delete(c *fiber.Ctx) error {
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
// @Summary      Obtener tipo de empaque por ID
// @Tags         packing-types
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del empaque"
// @Success      200  {object}  dto.PackingTypeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/packing-types/{id} [get]
func (h *PackingTypeHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar tipos de empaque
// @Tags         packing-types
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.PackingTypeResponse
// @Router       /api/packing-types [get]
func (h *PackingTypeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
