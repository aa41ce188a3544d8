package handlers

import (
	"net/http"

	"suraksha/internal/alert"
	"suraksha/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MonitorHandler controls the background security monitor
type MonitorHandler struct {
	monitor *alert.Monitor
	logger  *zap.Logger
}

// NewMonitorHandler creates a new monitor handler
func NewMonitorHandler(monitor *alert.Monitor, logger *zap.Logger) *MonitorHandler {
	return &MonitorHandler{monitor: monitor, logger: logger}
}

// Start godoc
// @Summary Start monitoring
// @Description Start the periodic background security scan
// @Tags monitor
// @Produce json
// @Success 200 {object} models.MonitorStatusResponse "Monitor status"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /monitor/start [post]
func (h *MonitorHandler) Start(c *gin.Context) {
	if err := h.monitor.Start(); err != nil {
		h.logger.Error("Failed to start monitor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to start monitor"})
		return
	}
	c.JSON(http.StatusOK, models.MonitorStatusResponse{Active: h.monitor.Active()})
}

// Stop godoc
// @Summary Stop monitoring
// @Description Stop the periodic background security scan
// @Tags monitor
// @Produce json
// @Success 200 {object} models.MonitorStatusResponse "Monitor status"
// @Router /monitor/stop [post]
func (h *MonitorHandler) Stop(c *gin.Context) {
	h.monitor.Stop()
	c.JSON(http.StatusOK, models.MonitorStatusResponse{Active: h.monitor.Active()})
}

// Status godoc
// @Summary Monitor status
// @Description Report whether the background monitor is running
// @Tags monitor
// @Produce json
// @Success 200 {object} models.MonitorStatusResponse "Monitor status"
// @Router /monitor/status [get]
func (h *MonitorHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, models.MonitorStatusResponse{Active: h.monitor.Active()})
}
