package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/application/inventory"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// StockHandler consultas de saldos y libro de movimientos (solo lectura).
type StockHandler struct {
	query *inventory.StockQuery
}

// NewStockHandler construye el handler.
func NewStockHandler(query *inventory.StockQuery) *StockHandler {
	return &StockHandler{query: query}
}

// GetBalance godoc
// @Summary      Saldo de un producto en una ubicación (cero si no hay registro)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        productId   path  string  true  "ID del producto"
// @Param        locationId  path  string  true  "ID de la ubicación"
// @Success      200  {object}  dto.BalanceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/{productId}/{locationId} [get]
func (h *StockHandler) GetBalance(c *fiber.Ctx) error {
	productID := c.Params("productId")
	locationID := c.Params("locationId")
	qty, err := h.query.GetBalance(productID, locationID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.BalanceResponse{ProductID: productID, LocationID: locationID, Quantity: qty})
}

// GetBalancesByProduct godoc
// @Summary      Saldos de un producto en todas sus ubicaciones
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {array}  dto.BalanceResponse
// @Router       /api/stock/{productId} [get]
func (h *StockHandler) GetBalancesByProduct(c *fiber.Ctx) error {
	balances, err := h.query.GetBalancesByProduct(c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.BalanceResponse, 0, len(balances))
	for _, b := range balances {
		out = append(out, dto.BalanceResponse{ProductID: b.ProductID, LocationID: b.LocationID, Quantity: b.Quantity})
	}
	return c.JSON(out)
}

// ListMovements godoc
// @Summary      Libro de movimientos, del más reciente al más antiguo
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id   query  string  false  "Filtrar por producto"
// @Param        location_id  query  string  false  "Filtrar por ubicación"
// @Param        type         query  string  false  "RECEIPT | DELIVERY | TRANSFER_OUT | TRANSFER_IN | ADJUSTMENT"
// @Param        limit        query  int     false  "Límite"  default(50)
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	movements, err := h.query.ListMovements(repository.MovementFilter{
		ProductID:  c.Query("product_id"),
		LocationID: c.Query("location_id"),
		Type:       c.Query("type"),
		Limit:      c.QueryInt("limit", 50),
	})
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.MovementResponse{
			ID:             m.ID,
			ProductID:      m.ProductID,
			LocationID:     m.LocationID,
			Delta:          m.Delta,
			Type:           m.Type,
			SourceDocument: m.SourceDocument,
			CreatedAt:      m.CreatedAt,
			CreatedBy:      m.CreatedBy,
		})
	}
	return c.JSON(out)
}
