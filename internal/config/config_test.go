package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "load default configuration",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "0.0.0.0", cfg.ServerHost)
				assert.Equal(t, 8080, cfg.ServerPort)
				assert.Equal(t, 10*time.Second, cfg.ServerShutdownTimeout)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, 65536, cfg.CalculatorMaxInputLength)
				assert.True(t, cfg.RateLimitEnabled)
				assert.Equal(t, 50.0, cfg.RateLimitRequestsPerSec)
				assert.Equal(t, 100, cfg.RateLimitBurst)
				assert.False(t, cfg.CORSEnabled)
				assert.Equal(t, "", cfg.CORSAllowOrigins)
				assert.True(t, cfg.MetricsEnabled)
				assert.Equal(t, "strcalc", cfg.MetricsNamespace)
				assert.Equal(t, 8081, cfg.MetricsPort)
			},
		},
		{
			name: "load custom server configuration",
			envVars: map[string]string{
				"SERVER_HOST":                     "localhost",
				"SERVER_PORT":                     "9090",
				"SERVER_SHUTDOWN_TIMEOUT_SECONDS": "3",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "localhost", cfg.ServerHost)
				assert.Equal(t, 9090, cfg.ServerPort)
				assert.Equal(t, 3*time.Second, cfg.ServerShutdownTimeout)
			},
		},
		{
			name: "load custom calculator and rate limit configuration",
			envVars: map[string]string{
				"CALCULATOR_MAX_INPUT_LENGTH": "128",
				"RATE_LIMIT_ENABLED":          "false",
				"RATE_LIMIT_REQUESTS_PER_SEC": "2.5",
				"RATE_LIMIT_BURST":            "5",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 128, cfg.CalculatorMaxInputLength)
				assert.False(t, cfg.RateLimitEnabled)
				assert.Equal(t, 2.5, cfg.RateLimitRequestsPerSec)
				assert.Equal(t, 5, cfg.RateLimitBurst)
			},
		},
		{
			name: "load custom metrics and cors configuration",
			envVars: map[string]string{
				"METRICS_ENABLED":    "false",
				"METRICS_NAMESPACE":  "calc",
				"METRICS_PORT":       "9191",
				"CORS_ENABLED":       "true",
				"CORS_ALLOW_ORIGINS": "https://example.com",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.MetricsEnabled)
				assert.Equal(t, "calc", cfg.MetricsNamespace)
				assert.Equal(t, 9191, cfg.MetricsPort)
				assert.True(t, cfg.CORSEnabled)
				assert.Equal(t, "https://example.com", cfg.CORSAllowOrigins)
			},
		},
		{
			name: "load custom log level",
			envVars: map[string]string{
				"LOG_LEVEL": "debug",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()

			for key, value := range tt.envVars {
				err := os.Setenv(key, value)
				require.NoError(t, err)
			}

			cfg := Load()

			tt.validate(t, cfg)
		})
	}
}

func TestGetGinMode(t *testing.T) {
	tests := []struct {
		logLevel string
		expected string
	}{
		{logLevel: "debug", expected: "debug"},
		{logLevel: "info", expected: "release"},
		{logLevel: "error", expected: "release"},
		{logLevel: "", expected: "release"},
	}

	for _, tt := range tests {
		t.Run(tt.logLevel, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.logLevel}
			assert.Equal(t, tt.expected, cfg.GetGinMode())
		})
	}
}
