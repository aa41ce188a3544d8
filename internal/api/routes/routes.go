// Package routes handles the setup and configuration of API routes
package routes

import (
	"suraksha/internal/alert"
	"suraksha/internal/api/handlers"
	"suraksha/internal/api/middleware"
	"suraksha/internal/auth"
	"suraksha/internal/config"
	"suraksha/internal/darkweb"
	"suraksha/internal/email"
	"suraksha/internal/notify"
	"suraksha/internal/repository/kv"
	"suraksha/internal/scanner"
	"suraksha/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRoutes configures all API routes and their handlers. The
// returned monitor is started and stopped by the caller.
func SetupRoutes(cfg *config.Config, store storage.Store, mailer email.Sender, logger *zap.Logger) (*gin.Engine, *alert.Monitor) {
	// Create router
	r := gin.Default()

	// Apply compression middleware globally
	r.Use(middleware.Compression(middleware.DefaultCompressionConfig()))

	// Apply rate limiting to all routes
	r.Use(middleware.NewRateLimiter(cfg).Middleware())

	// Initialize repositories
	userRepo := kv.NewUserRepository(store)
	sessionRepo := kv.NewSessionRepository(store)
	challengeRepo := kv.NewChallengeRepository(store)
	alertRepo := kv.NewAlertRepository(store)
	historyRepo := kv.NewScanHistoryRepository(store)
	breachRepo := kv.NewBreachRepository(store)
	notificationRepo := kv.NewNotificationRepository(store)

	// Initialize services
	authService := auth.NewService(cfg, userRepo, sessionRepo, challengeRepo, mailer, logger)
	dispatcher := notify.NewLogDispatcher(logger)
	ledger := alert.NewLedger(alertRepo, historyRepo)
	monitor := alert.NewMonitor(ledger, dispatcher, cfg.Monitor, logger)
	threatScanner := scanner.New(scanner.NewOSFileInfo())
	darkwebService := darkweb.NewService(breachRepo)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authService, userRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(store)
	authHandler := handlers.NewAuthHandler(authService, logger)
	scanHandler := handlers.NewScanHandler(threatScanner, ledger, notificationRepo, dispatcher, logger)
	alertHandler := handlers.NewAlertHandler(ledger)
	monitorHandler := handlers.NewMonitorHandler(monitor, logger)
	darkwebHandler := handlers.NewDarkWebHandler(darkwebService)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		// Health check (no authentication required)
		v1.GET("/health", healthHandler.Health)

		// Auth routes
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", authMiddleware.AuthRequired(), authHandler.Logout)
			authGroup.GET("/me", authMiddleware.AuthRequired(), authHandler.Me)
			authGroup.POST("/otp/send", authHandler.SendOTP)
			authGroup.POST("/otp/verify", authHandler.VerifyOTP)
			authGroup.POST("/otp/resend", authHandler.ResendOTP)
		}

		// Scan routes (requires authentication)
		scans := v1.Group("/scan")
		scans.Use(authMiddleware.AuthRequired())
		{
			scans.POST("/email", scanHandler.ScanEmail)
			scans.POST("/website", scanHandler.ScanWebsite)
			scans.POST("/file", scanHandler.ScanFile)
			scans.GET("/history", scanHandler.History)
			scans.GET("/notifications", scanHandler.Notifications)
		}

		// Alert routes (requires authentication)
		alerts := v1.Group("/alerts")
		alerts.Use(authMiddleware.AuthRequired())
		{
			alerts.GET("", alertHandler.List)
			alerts.GET("/health-score", alertHandler.HealthScore)
			alerts.POST("/:id/resolve", alertHandler.Resolve)
			alerts.DELETE("/:id", alertHandler.Delete)
		}

		// Monitor routes (requires authentication)
		monitorGroup := v1.Group("/monitor")
		monitorGroup.Use(authMiddleware.AuthRequired())
		{
			monitorGroup.POST("/start", monitorHandler.Start)
			monitorGroup.POST("/stop", monitorHandler.Stop)
			monitorGroup.GET("/status", monitorHandler.Status)
		}

		// Dark-web routes (requires authentication)
		darkwebGroup := v1.Group("/darkweb")
		darkwebGroup.Use(authMiddleware.AuthRequired())
		{
			darkwebGroup.POST("/check", darkwebHandler.Check)
			darkwebGroup.GET("/breaches", darkwebHandler.List)
		}
	}

	return r, monitor
}
