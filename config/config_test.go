package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server:    ServerConfig{Port: "3000"},
		API:       APIConfig{BaseURL: "https://api.example.com/api/v1"},
		Session:   SessionConfig{TokenStore: "memory"},
		Toast:     ToastConfig{DefaultDurationMS: 3000},
		Booking:   BookingConfig{DraftTTLMinutes: 30},
		RateLimit: RateLimitConfig{RequestsPerSecond: 10, Burst: 20},
	}
}

// chdirTemp keeps a developer's .env out of Load.
func chdirTemp(t *testing.T) {
	t.Helper()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(originalDir) })
}

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected bool
	}{
		{
			name:     "development environment",
			config:   &Config{Server: ServerConfig{AppEnv: "development"}},
			expected: true,
		},
		{
			name:     "debug gin mode",
			config:   &Config{Server: ServerConfig{GinMode: "debug"}},
			expected: true,
		},
		{
			name:     "release mode",
			config:   &Config{Server: ServerConfig{GinMode: "release", AppEnv: "production"}},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.IsDevelopment())
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(c *Config)
		errorMsg string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:     "missing port",
			mutate:   func(c *Config) { c.Server.Port = "" },
			errorMsg: "PORT is required",
		},
		{
			name:     "relative base URL",
			mutate:   func(c *Config) { c.API.BaseURL = "/api/v1" },
			errorMsg: "API_BASE_URL must be an absolute URL",
		},
		{
			name:     "unknown token store",
			mutate:   func(c *Config) { c.Session.TokenStore = "keychain" },
			errorMsg: "TOKEN_STORE must be",
		},
		{
			name:     "zero toast duration",
			mutate:   func(c *Config) { c.Toast.DefaultDurationMS = 0 },
			errorMsg: "TOAST_DURATION_MS must be positive",
		},
		{
			name:     "zero draft ttl",
			mutate:   func(c *Config) { c.Booking.DraftTTLMinutes = 0 },
			errorMsg: "BOOKING_DRAFT_TTL_MINUTES must be positive",
		},
		{
			name: "profiling without endpoint",
			mutate: func(c *Config) {
				c.Profiling.Enabled = true
			},
			errorMsg: "O11Y_PROFILING_ENDPOINT is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:3000", cfg.Address())
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, "file", cfg.Session.TokenStore)
	assert.Equal(t, 3000, cfg.Toast.DefaultDurationMS)
	assert.Equal(t, 30, cfg.Booking.DraftTTLMinutes)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.Server.AllowedOrigins)
}

func TestLoad_WithEnvironmentVariables(t *testing.T) {
	chdirTemp(t)

	t.Setenv("PORT", "9000")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("API_BASE_URL", "http://localhost:5000/api/v1/")
	t.Setenv("TOKEN_STORE", "MEMORY")
	t.Setenv("BOOKING_DRAFT_TTL_MINUTES", "5")
	t.Setenv("ALLOWED_CORS_ORIGINS", " http://a.test , ,http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "http://localhost:5000/api/v1", cfg.API.BaseURL)
	assert.Equal(t, "memory", cfg.Session.TokenStore)
	assert.Equal(t, 5, cfg.Booking.DraftTTLMinutes)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
}

func TestLoad_ValidationFailure(t *testing.T) {
	chdirTemp(t)
	t.Setenv("TOKEN_STORE", "registry")

	cfg, err := Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}
