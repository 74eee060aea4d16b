package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/technoschool/technoschool-api/internal/service"
	"github.com/technoschool/technoschool-api/pkg/response"
)

// StatsHandler exposes the statistics and health endpoints.
type StatsHandler struct {
	service *service.StatsService
	metrics *service.MetricsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(svc *service.StatsService, metrics *service.MetricsService) *StatsHandler {
	return &StatsHandler{service: svc, metrics: metrics}
}

// Get godoc
// @Summary Row-count statistics
// @Description Counts of contacts, enrollments, and users
// @Tags Stats
// @Produce json
// @Success 200 {object} models.Stats
// @Failure 500 {object} map[string]string
// @Router /api/stats [get]
func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, stats)
}

// Health godoc
// @Summary Health check
// @Tags Stats
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/health [get]
func (h *StatsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Server is running"})
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *StatsHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}
