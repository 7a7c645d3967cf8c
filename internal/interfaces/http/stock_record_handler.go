package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestion-almacenes/almacenes-api/internal/application/dto"
	"github.com/gestion-almacenes/almacenes-api/internal/application/usecase"
)

// stockRecordRequest body para registrar un par (almacén, producto).
// El saldo nace en cero; solo el motor de órdenes lo mueve.
type stockRecordRequest struct {
	StorehouseID string `json:"storehouse_id"`
	ProductID    string `json:"product_id"`
}

// StockRecordHandler maneja las peticiones HTTP para registros de stock (protegido).
type StockRecordHandler struct {
	uc *usecase.StockRecordUseCase
}

// NewStockRecordHandler construye el handler.
func NewStockRecordHandler(uc *usecase.StockRecordUseCase) *StockRecordHandler {
	return &StockRecordHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar par (almacén, producto) con stock cero
// @Tags         stock-records
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  stockRecordRequest  true  "Par almacén/producto"
// @Success      201   {object}  dto.StockRecordResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/stock-records [post]
func (h *StockRecordHandler) Create(c *fiber.Ctx) error {
	var in stockRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.StorehouseID == "" || in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "storehouse_id y product_id son requeridos"})
	}
	out, err := h.uc.Create(in.StorehouseID, in.ProductID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener registro de stock por ID
// @Tags         stock-records
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.StockRecordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-records/{id} [get]
func (h *StockRecordHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar registros de stock
// @Tags         stock-records
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.StockRecordResponse
// @Router       /api/stock-records [get]
func (h *StockRecordHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
