package handlers

import (
	"net/http"

	"suraksha/internal/models"
	"suraksha/internal/storage"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles service health check requests
type HealthHandler struct {
	store storage.Store
}

// NewHealthHandler creates a new health check handler
func NewHealthHandler(store storage.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health godoc
// @Summary Health check
// @Description Check service and storage health
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse "Service healthy"
// @Failure 503 {object} models.ErrorResponse "Storage unavailable"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "storage connection failed"})
		return
	}
	c.JSON(http.StatusOK, models.HealthResponse{Status: "healthy"})
}
