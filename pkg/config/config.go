// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all service settings.
type Config struct {
	Server        ServerConfig
	Observability ObservabilityConfig
	Booking       BookingConfig
}

type ServerConfig struct {
	Host               string
	Port               int
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	ShutdownTimeout    time.Duration
	RateLimitPerSecond int
	RateLimitBurst     int
	CORSOrigins        []string
}

type ObservabilityConfig struct {
	MetricsEnabled bool
	LogLevel       slog.Level
	LogJSON        bool
}

type BookingConfig struct {
	// GatewayDelay is the simulated backend latency for booking submissions.
	GatewayDelay time.Duration
	// GatewayFailureRate is the simulated rejection fraction (0..1).
	GatewayFailureRate float64
}

// Load reads the configuration from the environment, with working defaults
// for local development.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:               envString("SERVER_HOST", "0.0.0.0"),
			Port:               envInt("SERVER_PORT", 8000),
			ReadTimeout:        envDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:       envDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout:    envDuration("SERVER_SHUTDOWN_TIMEOUT", 15*time.Second),
			RateLimitPerSecond: envInt("RATE_LIMIT_PER_SECOND", 50),
			RateLimitBurst:     envInt("RATE_LIMIT_BURST", 100),
			CORSOrigins:        envStrings("CORS_ORIGINS", []string{"http://localhost:3000"}),
		},
		Observability: ObservabilityConfig{
			MetricsEnabled: envBool("METRICS_ENABLED", true),
			LogLevel:       parseLogLevel(envString("LOG_LEVEL", "info")),
			LogJSON:        envBool("LOG_JSON", true),
		},
		Booking: BookingConfig{
			GatewayDelay:       envDuration("BOOKING_GATEWAY_DELAY", 2*time.Second),
			GatewayFailureRate: envFloat("BOOKING_GATEWAY_FAILURE_RATE", 0.1),
		},
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid server port %d", cfg.Server.Port)
	}
	if cfg.Booking.GatewayFailureRate < 0 || cfg.Booking.GatewayFailureRate > 1 {
		return nil, fmt.Errorf("booking gateway failure rate must be in [0,1], got %g", cfg.Booking.GatewayFailureRate)
	}

	return cfg, nil
}

// Addr returns the host:port listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envStrings(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
