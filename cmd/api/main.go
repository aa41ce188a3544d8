// Package main provides the entry point for the Suraksha API server
// @title Suraksha API
// @version 1.0
// @description Suraksha mobile security backend.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token authentication
// @Security BearerAuth
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"suraksha/internal/api/routes"
	"suraksha/internal/config"
	"suraksha/internal/email"
	"suraksha/internal/storage"
	"suraksha/internal/validation"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Parse command line flags
	envFile := flag.String("env", ".env", "Path to env file")
	flag.Parse()

	// Load environment file
	if err := godotenv.Load(*envFile); err != nil && *envFile == ".env" {
		log.Printf("Warning: %v", err)
	}

	// Load configuration
	cfg := &config.Config{}
	if err := cfg.LoadFromEnv(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize the key-value store
	var store storage.Store
	switch cfg.Backend() {
	case config.StoreMemory:
		store = storage.NewMemoryStore()
		logger.Info("Using in-memory store")
	default:
		rs, err := storage.NewRedisStore(cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer rs.Close()
		store = rs
	}

	// Initialize validators
	validation.Initialize()

	// Setup routes
	router, monitor := routes.SetupRoutes(cfg, store, email.NewService(cfg.Email), logger)

	if cfg.Monitor.StartOnBoot {
		if err := monitor.Start(); err != nil {
			logger.Fatal("Failed to start security monitor", zap.Error(err))
		}
	}
	defer monitor.Stop()

	// Convert port string to int
	port, err := strconv.Atoi(cfg.API.Port)
	if err != nil {
		logger.Fatal("Invalid port number", zap.Error(err))
	}

	// Create server with graceful shutdown
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Give outstanding requests 5 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
