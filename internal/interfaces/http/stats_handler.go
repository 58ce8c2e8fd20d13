package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/plantnet/marketplace-api/internal/application/analytics"
	"github.com/plantnet/marketplace-api/internal/application/dto"
)

// StatsHandler admin dashboard report.
type StatsHandler struct {
	uc *analytics.StatsUseCase
}

// NewStatsHandler builds the handler.
func NewStatsHandler(uc *analytics.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// AdminStats godoc
// @Summary      Marketplace totals plus the revenue-by-day series
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AdminStatsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /admin-stats [get]
func (h *StatsHandler) AdminStats(c *fiber.Ctx) error {
	out, err := h.uc.AdminStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
