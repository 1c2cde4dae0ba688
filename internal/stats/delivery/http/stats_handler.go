package http

import (
	"net/http"

	"github.com/Anxten/senti-quant/internal/stats/dto"
	"github.com/Anxten/senti-quant/internal/stats/service"
	"github.com/Anxten/senti-quant/pkg/logger"

	"github.com/labstack/echo/v4"
)

// StatsHandler handles HTTP requests for pipeline aggregates.
type StatsHandler struct {
	statsService service.StatsService
	logger       *logger.Logger
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService, logger *logger.Logger) *StatsHandler {
	return &StatsHandler{statsService: statsService, logger: logger}
}

// RegisterRoutes registers the stats routes to the Echo group.
func (h *StatsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetOverview)
	g.GET("/sentiment", h.GetSentimentDistribution)
}

// GetOverview returns table-level counts and the average integrity score.
func (h *StatsHandler) GetOverview(c echo.Context) error {
	overview, err := h.statsService.GetOverview(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to load overview stats", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, overview)
}

// GetSentimentDistribution returns the label breakdown of scored articles.
func (h *StatsHandler) GetSentimentDistribution(c echo.Context) error {
	distribution, err := h.statsService.GetSentimentDistribution(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to load sentiment distribution", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, distribution)
}
