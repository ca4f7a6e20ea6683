package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/gestione-fascicoli/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del resumen del dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve el número total de clientes y de fascicoli.
// GET /dashboard/summary
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	counts, err := h.uc.GetCounts(c.UserContext())
	if err != nil {
		return writeReadError(c, err)
	}
	return c.JSON(counts)
}
