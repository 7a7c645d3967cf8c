package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestion-almacenes/almacenes-api/internal/application/dto"
	"github.com/gestion-almacenes/almacenes-api/internal/application/usecase"
)

// StorehouseHandler maneja las peticiones HTTP para almacenes (protegido).
type StorehouseHandler struct {
	uc *usecase.StorehouseUseCase
}

// NewStorehouseHandler construye el handler.
func NewStorehouseHandler(uc *usecase.StorehouseUseCase) *StorehouseHandler {
	return &StorehouseHandler{uc: uc}
}

// Create godoc
// @Summary      Crear almacén
// @Tags         storehouses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StorehouseRequest  true  "Datos del almacén"
// @Success      201   {object}  dto.StorehouseResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/storehouses [post]
func (h *StorehouseHandler) Create(c *fiber.Ctx) error {
	var in dto.StorehouseRequest
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
// @Summary      Actualizar almacén
// @Tags         storehouses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del almacén"
// @Param        body  body  dto.StorehouseRequest  true  "Datos del almacén"
// @Success      200   {object}  dto.StorehouseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/storehouses/{id} [put]
func (h *StorehouseHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.StorehouseRequest
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
// @Summary      Eliminar almacén (borrado lógico)
// @Tags         storehouses
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del almacén"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      410  {object}  dto.ErrorResponse
// @Router       /api/storehouses/{id} [delete]
func (h *StorehouseHandler) Delete(c *fiber.Ctx) error {
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
// @Summary      Obtener almacén por ID
// @Tags         storehouses
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del almacén"
// @Success      200  {object}  dto.StorehouseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/storehouses/{id} [get]
func (h *StorehouseHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar almacenes
// @Tags         storehouses
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.StorehouseResponse
// @Router       /api/storehouses [get]
func (h *StorehouseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StorehouseTypeHandler maneja las peticiones HTTP para tipos de almacén (protegido).
type StorehouseTypeHandler struct {
	uc *usecase.StorehouseTypeUseCase
}

// NewStorehouseTypeHandler construye el handler.
func NewStorehouseTypeHandler(uc *usecase.StorehouseTypeUseCase) *StorehouseTypeHandler {
	return &StorehouseTypeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tipo de almacén
// @Tags         storehouse-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StorehouseTypeRequest  true  "Datos del tipo"
// @Success      201   {object}  dto.StorehouseTypeResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/storehouse-types [post]
func (h *StorehouseTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.StorehouseTypeRequest
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
// @Summary      Actualizar tipo de almacén
// @Tags         storehouse-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del tipo"
// @Param        body  body  dto.StorehouseTypeRequest  true  "Datos del tipo"
// @Success      200   {object}  dto.StorehouseTypeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/storehouse-types/{id} [put]
func (h *StorehouseTypeHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.StorehouseTypeRequest
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
// @Summary      Eliminar tipo de almacén (borrado lógico)
// @Tags         storehouse-types
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tipo"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/storehouse-types/{id} [delete]
func (h *StorehouseTypeHandler) Delete(c *fiber.Ctx) error {
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
// @Summary      Obtener tipo de almacén por ID
// @Tags         storehouse-types
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tipo"
// @Success      200  {object}  dto.StorehouseTypeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/storehouse-types/{id} [get]
func (h *StorehouseTypeHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar tipos de almacén
// @Tags         storehouse-types
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.StorehouseTypeResponse
// @Router       /api/storehouse-types [get]
func (h *StorehouseTypeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
