package handlers

import (
	"net/http"

	"suraksha/internal/alert"
	"suraksha/internal/auth"
	"suraksha/internal/models"
	"suraksha/internal/notify"
	"suraksha/internal/repository"
	"suraksha/internal/scanner"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScanHandler handles HTTP requests for the threat analyses
type ScanHandler struct {
	scanner       *scanner.Scanner
	ledger        *alert.Ledger
	notifications repository.NotificationRepository
	dispatcher    notify.Dispatcher
	logger        *zap.Logger
}

// NewScanHandler creates a new scan handler
func NewScanHandler(
	sc *scanner.Scanner,
	ledger *alert.Ledger,
	notifications repository.NotificationRepository,
	dispatcher notify.Dispatcher,
	logger *zap.Logger,
) *ScanHandler {
	return &ScanHandler{
		scanner:       sc,
		ledger:        ledger,
		notifications: notifications,
		dispatcher:    dispatcher,
		logger:        logger,
	}
}

// userLanguage returns the authenticated user's alert language
func userLanguage(c *gin.Context) string {
	if user := auth.GetUserFromContext(c); user != nil && user.Language != "" {
		return user.Language
	}
	return models.SupportedLanguages[0]
}

// ScanEmail godoc
// @Summary Analyze an email
// @Description Score an email against the phishing rule tables
// @Tags scan
// @Accept json
// @Produce json
// @Param request body models.EmailScanRequest true "Email to analyze"
// @Success 200 {object} models.EmailAnalysis "Analysis result"
// @Failure 400 {object} models.ErrorResponse "Invalid request format"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /scan/email [post]
func (h *ScanHandler) ScanEmail(c *gin.Context) {
	var req models.EmailScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	analysis := h.scanner.AnalyzeEmail(req.Content, req.Sender, req.Subject)

	if err := h.notifications.Insert(c.Request.Context(), analysis); err != nil {
		h.logger.Error("failed to record email analysis", zap.Error(err))
	}

	if analysis.IsPhishing {
		severity := models.SeverityMedium
		if analysis.RiskScore > 60 {
			severity = models.SeverityHigh
		}
		a := models.NewAlert(
			"Phishing Email Detected",
			"Suspicious email from "+req.Sender,
			severity,
			models.CategoryPhishing,
		)
		if err := h.ledger.RecordAlert(c.Request.Context(), a); err != nil {
			h.logger.Error("failed to record phishing alert", zap.Error(err))
		} else {
			h.dispatcher.Notify(a.Title, a.Description)
			h.dispatcher.Speak("Phishing Email Detected", userLanguage(c), severity)
		}
	}

	c.JSON(http.StatusOK, analysis)
}

// ScanWebsite godoc
// @Summary Analyze a website URL
// @Description Score a URL against the malicious-domain rule tables
// @Tags scan
// @Accept json
// @Produce json
// @Param request body models.WebsiteScanRequest true "URL to analyze"
// @Success 200 {object} models.ThreatAnalysis "Analysis result"
// @Failure 400 {object} models.ErrorResponse "Invalid request format"
// @Router /scan/website [post]
func (h *ScanHandler) ScanWebsite(c *gin.Context) {
	var req models.WebsiteScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	analysis := h.scanner.AnalyzeWebsite(req.URL)

	if analysis.IsMalware || analysis.IsPhishing {
		severity := models.SeverityMedium
		category := models.CategorySuspicious
		message := "Suspicious Website"
		if analysis.IsMalware {
			severity = models.SeverityHigh
			category = models.CategoryMalware
			message = "Malware Detected"
		}
		a := models.NewAlert("Suspicious Website Detected", "Threats found at "+req.URL, severity, category)
		if err := h.ledger.RecordAlert(c.Request.Context(), a); err != nil {
			h.logger.Error("failed to record website alert", zap.Error(err))
		} else {
			h.dispatcher.Notify(a.Title, a.Description)
			h.dispatcher.Speak(message, userLanguage(c), severity)
		}
	}

	c.JSON(http.StatusOK, analysis)
}

// ScanFile godoc
// @Summary Analyze a file
// @Description Score a file by extension, size, and filename
// @Tags scan
// @Accept json
// @Produce json
// @Param request body models.FileScanRequest true "File to analyze"
// @Success 200 {object} models.FileAnalysis "Analysis result"
// @Failure 400 {object} models.ErrorResponse "Invalid request format"
// @Router /scan/file [post]
func (h *ScanHandler) ScanFile(c *gin.Context) {
	var req models.FileScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	analysis := h.scanner.AnalyzeFile(req.Path, req.Name)

	entry := models.ScanHistoryEntry{
		Timestamp:    analysis.ScanDate,
		ThreatsFound: len(analysis.Threats),
		FilesScanned: 1,
	}
	if err := h.ledger.RecordScanHistory(c.Request.Context(), entry); err != nil {
		h.logger.Error("failed to record scan history", zap.Error(err))
	}

	if analysis.IsMalware {
		a := models.NewAlert(
			"Malicious File Detected",
			"High risk file: "+req.Name,
			models.SeverityHigh,
			models.CategoryMalware,
		)
		if err := h.ledger.RecordAlert(c.Request.Context(), a); err != nil {
			h.logger.Error("failed to record file alert", zap.Error(err))
		} else {
			h.dispatcher.Notify(a.Title, a.Description)
			h.dispatcher.Speak("Malware Detected", userLanguage(c), models.SeverityHigh)
		}
	}

	c.JSON(http.StatusOK, analysis)
}

// History godoc
// @Summary Scan history
// @Description Return recorded scan passes, most recent first
// @Tags scan
// @Produce json
// @Success 200 {array} models.ScanHistoryEntry "Scan history"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /scan/history [get]
func (h *ScanHandler) History(c *gin.Context) {
	entries, err := h.ledger.History(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load scan history"})
		return
	}
	if entries == nil {
		entries = []models.ScanHistoryEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

// Notifications godoc
// @Summary Email analysis history
// @Description Return recorded email analyses, most recent first
// @Tags scan
// @Produce json
// @Success 200 {array} models.EmailAnalysis "Email analyses"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /scan/notifications [get]
func (h *ScanHandler) Notifications(c *gin.Context) {
	history, err := h.notifications.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load notification history"})
		return
	}
	if history == nil {
		history = []models.EmailAnalysis{}
	}
	c.JSON(http.StatusOK, history)
}
