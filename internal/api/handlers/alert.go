package handlers

import (
	"net/http"

	"suraksha/internal/alert"
	"suraksha/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AlertHandler handles HTTP requests for the alert ledger
type AlertHandler struct {
	ledger *alert.Ledger
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(ledger *alert.Ledger) *AlertHandler {
	return &AlertHandler{ledger: ledger}
}

// List godoc
// @Summary List alerts
// @Description Return recorded alerts, most recent first
// @Tags alerts
// @Produce json
// @Success 200 {array} models.Alert "Alerts"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /alerts [get]
func (h *AlertHandler) List(c *gin.Context) {
	alerts, err := h.ledger.Alerts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load alerts"})
		return
	}
	if alerts == nil {
		alerts = []models.Alert{}
	}
	c.JSON(http.StatusOK, alerts)
}

// Resolve godoc
// @Summary Resolve an alert
// @Description Mark an alert resolved; unknown ids are accepted silently
// @Tags alerts
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} models.SuccessResponse "Alert resolved"
// @Failure 400 {object} models.ErrorResponse "Invalid alert id"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /alerts/{id}/resolve [post]
func (h *AlertHandler) Resolve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid alert id"})
		return
	}

	if err := h.ledger.Resolve(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to resolve alert"})
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse{Message: "alert resolved"})
}

// Delete godoc
// @Summary Delete an alert
// @Description Remove an alert; unknown ids are accepted silently
// @Tags alerts
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} models.SuccessResponse "Alert deleted"
// @Failure 400 {object} models.ErrorResponse "Invalid alert id"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /alerts/{id} [delete]
func (h *AlertHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid alert id"})
		return
	}

	if err := h.ledger.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to delete alert"})
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse{Message: "alert deleted"})
}

// HealthScore godoc
// @Summary Cyber health score
// @Description Return the derived health score in [0,100]
// @Tags alerts
// @Produce json
// @Success 200 {object} models.HealthScoreResponse "Health score"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /alerts/health-score [get]
func (h *AlertHandler) HealthScore(c *gin.Context) {
	score, err := h.ledger.HealthScore(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to compute health score"})
		return
	}
	c.JSON(http.StatusOK, models.HealthScoreResponse{Score: score})
}
