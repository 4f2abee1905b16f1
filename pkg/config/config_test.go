package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Addr())
	assert.Equal(t, 50, cfg.Server.RateLimitPerSecond)
	assert.True(t, cfg.Observability.MetricsEnabled)
	assert.Equal(t, slog.LevelInfo, cfg.Observability.LogLevel)
	assert.Equal(t, 2*time.Second, cfg.Booking.GatewayDelay)
	assert.InDelta(t, 0.1, cfg.Booking.GatewayFailureRate, 1e-9)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("CORS_ORIGINS", "https://discoverrwanda.rw, http://localhost:3000")
	t.Setenv("BOOKING_GATEWAY_DELAY", "50ms")
	t.Setenv("BOOKING_GATEWAY_FAILURE_RATE", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, slog.LevelDebug, cfg.Observability.LogLevel)
	assert.False(t, cfg.Observability.MetricsEnabled)
	assert.Equal(t, []string{"https://discoverrwanda.rw", "http://localhost:3000"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 50*time.Millisecond, cfg.Booking.GatewayDelay)
	assert.Zero(t, cfg.Booking.GatewayFailureRate)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("port out of range", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "70000")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("failure rate out of range", func(t *testing.T) {
		t.Setenv("BOOKING_GATEWAY_FAILURE_RATE", "1.5")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("malformed numbers fall back to defaults", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "not-a-number")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 8000, cfg.Server.Port)
	})
}
