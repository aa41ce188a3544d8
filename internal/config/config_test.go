package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestLoadFromEnv tests loading configuration from environment variables
func TestLoadFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret_key")
	t.Setenv("API_PORT", "9090")
	t.Setenv("REDIS_ADDR", "redis.local:6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("OTP_TTL_SECONDS", "120")
	t.Setenv("MONITOR_SCHEDULE", "@every 10s")
	t.Setenv("MONITOR_NETWORK_THREAT_PROBABILITY", "0.25")

	cfg := &Config{}
	require.NoError(t, cfg.LoadFromEnv())

	require.Equal(t, "9090", cfg.API.Port)
	require.Equal(t, "redis.local:6380", cfg.Redis.Addr)
	require.Equal(t, 2, cfg.Redis.DB)
	require.Equal(t, "test_secret_key", cfg.Auth.JWTSecret)
	require.Equal(t, 24, cfg.Auth.JWTExpiration)
	require.Equal(t, 2*time.Minute, cfg.Auth.OTPTTL)
	require.True(t, cfg.Auth.RegistrationOpen)
	require.Equal(t, "@every 10s", cfg.Monitor.Schedule)
	require.Equal(t, 0.25, cfg.Monitor.NetworkThreatProbability)
	require.Equal(t, 0.05, cfg.Monitor.AppThreatProbability)
	require.Equal(t, 1000, cfg.RateLimit.Requests)
}

func TestLoadFromEnvDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret_key")

	cfg := &Config{}
	require.NoError(t, cfg.LoadFromEnv())

	require.Equal(t, "8080", cfg.API.Port)
	require.Equal(t, "localhost:6379", cfg.Redis.Addr)
	require.Equal(t, 5*time.Minute, cfg.Auth.OTPTTL)
	require.Equal(t, "@every 30s", cfg.Monitor.Schedule)
	require.Equal(t, 0.10, cfg.Monitor.NetworkThreatProbability)
	require.True(t, cfg.Monitor.StartOnBoot)
}

func TestLoadFromEnvRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg := &Config{}
	require.Error(t, cfg.LoadFromEnv())
}

func TestBackend(t *testing.T) {
	cfg := &Config{}

	t.Setenv("STORE_BACKEND", "memory")
	require.Equal(t, StoreMemory, cfg.Backend())

	t.Setenv("STORE_BACKEND", "redis")
	require.Equal(t, StoreRedis, cfg.Backend())

	t.Setenv("STORE_BACKEND", "")
	require.Equal(t, StoreRedis, cfg.Backend())
}
