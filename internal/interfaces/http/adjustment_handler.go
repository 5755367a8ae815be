package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/application/inventory"
	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
)

// AdjustmentHandler ajustes por conteo físico. Crear un ajuste lo aplica
// en el acto: el documento nace DONE.
type AdjustmentHandler struct {
	engine *inventory.Engine
	query  *usecase.AdjustmentQueryUseCase
}

// NewAdjustmentHandler construye el handler.
func NewAdjustmentHandler(engine *inventory.Engine, query *usecase.AdjustmentQueryUseCase) *AdjustmentHandler {
	return &AdjustmentHandler{engine: engine, query: query}
}

// Create godoc
// @Summary      Crear y aplicar ajuste de inventario
// @Tags         adjustments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAdjustmentRequest  true  "Datos del ajuste"
// @Success      201   {object}  dto.AdjustmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/adjustments [post]
func (h *AdjustmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	adjustment, err := h.engine.CreateAdjustment(c.Context(), inventory.AdjustmentInput{
		ProductID:       in.ProductID,
		LocationID:      in.LocationID,
		QuantityCounted: in.QuantityCounted,
		Reason:          in.Reason,
		ActorID:         GetUserID(c),
		Notes:           in.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usecase.ToAdjustmentResponse(adjustment))
}

// List godoc
// @Summary      Listar ajustes
// @Tags         adjustments
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        limit       query  int     false  "Límite"  default(100)
// @Success      200  {array}  dto.AdjustmentResponse
// @Router       /api/adjustments [get]
func (h *AdjustmentHandler) List(c *fiber.Ctx) error {
	out, err := h.query.List(c.Query("product_id"), c.QueryInt("limit", 100))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener ajuste
// @Tags         adjustments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ajuste"
// @Success      200  {object}  dto.AdjustmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/adjustments/{id} [get]
func (h *AdjustmentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.query.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ajuste no encontrado"})
	}
	return c.JSON(out)
}
