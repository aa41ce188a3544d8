// Package config loads the application configuration from environment
// variables
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"suraksha/internal/email"
	"suraksha/internal/storage"
)

// Config represents the application configuration
type Config struct {
	// API contains API server configuration
	API APIConfig
	// Auth contains authentication configuration
	Auth AuthConfig
	// Redis contains key-value store configuration
	Redis storage.RedisConfig
	// Email contains SMTP transport configuration
	Email email.Config
	// Monitor contains background monitoring configuration
	Monitor MonitorConfig

	// Rate Limiting Configuration
	RateLimit struct {
		Requests int // Number of requests allowed per window
		Window   int // Time window in seconds
		Burst    int // Maximum burst size
	}
}

// APIConfig contains API server settings
type APIConfig struct {
	// Port is the server port to listen on
	Port string
}

// AuthConfig contains authentication settings
type AuthConfig struct {
	// JWTSecret is the secret key used to sign JWT tokens
	JWTSecret string
	// JWTExpiration is the JWT token expiration time in hours
	JWTExpiration int
	// OTPTTL is how long an issued one-time code stays valid
	OTPTTL time.Duration
	// RegistrationOpen determines if new user registration is allowed
	RegistrationOpen bool
}

// MonitorConfig contains background monitoring settings
type MonitorConfig struct {
	// Schedule is the scan interval in cron format with seconds
	// (e.g. "@every 30s")
	Schedule string
	// StartOnBoot starts the monitor together with the server
	StartOnBoot bool
	// NetworkThreatProbability is the per-tick chance of a simulated
	// network threat
	NetworkThreatProbability float64
	// AppThreatProbability is the per-tick chance of a simulated
	// malicious app behavior finding
	AppThreatProbability float64
}

// StoreBackend selects the persistence backend ("redis" or "memory")
type StoreBackend string

const (
	StoreRedis  StoreBackend = "redis"
	StoreMemory StoreBackend = "memory"
)

// Backend returns the configured store backend
func (c *Config) Backend() StoreBackend {
	if getEnvOrDefault("STORE_BACKEND", "redis") == "memory" {
		return StoreMemory
	}
	return StoreRedis
}

// LoadFromEnv retrieves configuration from environment variables
func (c *Config) LoadFromEnv() error {
	c.API = APIConfig{
		Port: getEnvOrDefault("API_PORT", "8080"),
	}
	c.Redis = storage.RedisConfig{
		Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		Username: os.Getenv("REDIS_USERNAME"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       getEnvAsInt("REDIS_DB", 0),
	}
	c.Auth = AuthConfig{
		JWTSecret:        os.Getenv("JWT_SECRET"),
		JWTExpiration:    getEnvAsInt("JWT_EXPIRATION_HOURS", 24),
		OTPTTL:           time.Duration(getEnvAsInt("OTP_TTL_SECONDS", 300)) * time.Second,
		RegistrationOpen: getEnvAsBool("REGISTRATION_OPEN", true),
	}
	c.Email = email.Config{
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvAsInt("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		FromAddress:  os.Getenv("SMTP_FROM"),
	}
	c.Monitor = MonitorConfig{
		Schedule:                 getEnvOrDefault("MONITOR_SCHEDULE", "@every 30s"),
		StartOnBoot:              getEnvAsBool("MONITOR_START_ON_BOOT", true),
		NetworkThreatProbability: getEnvAsFloat("MONITOR_NETWORK_THREAT_PROBABILITY", 0.10),
		AppThreatProbability:     getEnvAsFloat("MONITOR_APP_THREAT_PROBABILITY", 0.05),
	}

	// Load rate limit configuration
	c.RateLimit.Requests = getEnvAsInt("RATE_LIMIT_REQUESTS", 1000)
	c.RateLimit.Window = getEnvAsInt("RATE_LIMIT_WINDOW", 60)
	c.RateLimit.Burst = getEnvAsInt("RATE_LIMIT_BURST", 50)

	// Validate required fields
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	return nil
}

// getEnvAsInt retrieves an environment variable and converts it to an integer
func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

// getEnvAsBool retrieves an environment variable and converts it to a boolean
func getEnvAsBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

// getEnvAsFloat retrieves an environment variable and converts it to a float
func getEnvAsFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvOrDefault(key string, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
