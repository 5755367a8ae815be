package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
)

// DashboardHandler indicadores agregados para el tablero.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetKPIs godoc
// @Summary      Indicadores del tablero
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardKPIResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetKPIs(c *fiber.Ctx) error {
	out, err := h.uc.GetKPIs()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
