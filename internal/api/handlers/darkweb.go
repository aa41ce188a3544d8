package handlers

import (
	"net/http"

	"suraksha/internal/darkweb"
	"suraksha/internal/models"

	"github.com/gin-gonic/gin"
)

// DarkWebHandler handles simulated dark-web breach lookups
type DarkWebHandler struct {
	service *darkweb.Service
}

// NewDarkWebHandler creates a new dark-web handler
func NewDarkWebHandler(service *darkweb.Service) *DarkWebHandler {
	return &DarkWebHandler{service: service}
}

// Check godoc
// @Summary Run a breach check
// @Description Check the given identifiers against known breach sources
// @Tags darkweb
// @Accept json
// @Produce json
// @Param request body models.DarkWebCheckRequest true "Check request"
// @Success 200 {array} models.Breach "Breach records"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /darkweb/check [post]
func (h *DarkWebHandler) Check(c *gin.Context) {
	var req models.DarkWebCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request format"})
		return
	}

	records, err := h.service.CheckBreaches(c.Request.Context(), req.Email, req.GSTNumber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "breach check failed"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// List godoc
// @Summary List breach records
// @Description Return the breach records from the most recent check
// @Tags darkweb
// @Produce json
// @Success 200 {array} models.Breach "Breach records"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /darkweb/breaches [get]
func (h *DarkWebHandler) List(c *gin.Context) {
	records, err := h.service.Breaches(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load breach records"})
		return
	}
	if records == nil {
		records = []models.Breach{}
	}
	c.JSON(http.StatusOK, records)
}
