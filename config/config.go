package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// DefaultAPIBaseURL is the hosted booking backend.
const DefaultAPIBaseURL = "https://flight-booking-system-backend-api.onrender.com/api/v1"

// Config holds all application configuration
//
//nolint:govet // Field alignment optimization would reduce readability
type Config struct {
	Server        ServerConfig
	API           APIConfig
	Session       SessionConfig
	Toast         ToastConfig
	Booking       BookingConfig
	RateLimit     RateLimitConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
	Profiling     ProfilingConfig
}

type ServerConfig struct {
	Host           string
	Port           string
	GinMode        string
	AppEnv         string
	AppName        string
	AllowedOrigins []string
}

type APIConfig struct {
	BaseURL string
}

type SessionConfig struct {
	TokenStore string // "file" or "memory"
	TokenFile  string // empty means ~/.skybook/token
}

type ToastConfig struct {
	DefaultDurationMS int
}

type BookingConfig struct {
	DraftTTLMinutes int
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

type LoggingConfig struct {
	Level string
	Dir   string
}

type ObservabilityConfig struct {
	ExporterEndpoint  string
	ServiceName       string
	ServiceNamespace  string
	ServiceVersion    string
	ServiceInstanceID string
}

type ProfilingConfig struct {
	Enabled               bool
	Endpoint              string
	AppName               string
	SampleTypes           string
	UploadIntervalSeconds int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("HOST", "127.0.0.1")
	v.SetDefault("PORT", "3000")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("APP_NAME", "SkyBook")
	v.SetDefault("ALLOWED_CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")
	v.SetDefault("API_BASE_URL", DefaultAPIBaseURL)
	v.SetDefault("TOKEN_STORE", "file")
	v.SetDefault("TOKEN_FILE", "")
	v.SetDefault("TOAST_DURATION_MS", 3000)
	v.SetDefault("BOOKING_DRAFT_TTL_MINUTES", 30)
	v.SetDefault("RATE_LIMIT_RPS", 20)
	v.SetDefault("RATE_LIMIT_BURST", 40)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "")
	v.SetDefault("O11Y_EXPORTER_ENDPOINT", "") // OTLP over HTTP, empty disables tracing
	v.SetDefault("O11Y_SERVICE_NAME", "skybook-web")
	v.SetDefault("O11Y_SERVICE_NAMESPACE", "skybook")
	v.SetDefault("O11Y_SERVICE_VERSION", "1.0.0")
	v.SetDefault("O11Y_PROFILING_ENABLED", false)
	v.SetDefault("O11Y_PROFILING_APP_NAME", "skybook-web")
	v.SetDefault("O11Y_PROFILING_SAMPLE_TYPES", "cpu,alloc_space,goroutines")
	v.SetDefault("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS", 15)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	cfg := &Config{
		Server: ServerConfig{
			Host:           v.GetString("HOST"),
			Port:           v.GetString("PORT"),
			GinMode:        v.GetString("GIN_MODE"),
			AppEnv:         v.GetString("APP_ENV"),
			AppName:        v.GetString("APP_NAME"),
			AllowedOrigins: splitList(v.GetString("ALLOWED_CORS_ORIGINS")),
		},
		API: APIConfig{
			BaseURL: strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
		},
		Session: SessionConfig{
			TokenStore: strings.ToLower(v.GetString("TOKEN_STORE")),
			TokenFile:  v.GetString("TOKEN_FILE"),
		},
		Toast: ToastConfig{
			DefaultDurationMS: v.GetInt("TOAST_DURATION_MS"),
		},
		Booking: BookingConfig{
			DraftTTLMinutes: v.GetInt("BOOKING_DRAFT_TTL_MINUTES"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             v.GetInt("RATE_LIMIT_BURST"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		Observability: ObservabilityConfig{
			ExporterEndpoint:  v.GetString("O11Y_EXPORTER_ENDPOINT"),
			ServiceName:       v.GetString("O11Y_SERVICE_NAME"),
			ServiceNamespace:  v.GetString("O11Y_SERVICE_NAMESPACE"),
			ServiceVersion:    v.GetString("O11Y_SERVICE_VERSION"),
			ServiceInstanceID: v.GetString("SERVICE_INSTANCE_ID"),
		},
		Profiling: ProfilingConfig{
			Enabled:               v.GetBool("O11Y_PROFILING_ENABLED"),
			Endpoint:              v.GetString("O11Y_PROFILING_ENDPOINT"),
			AppName:               v.GetString("O11Y_PROFILING_APP_NAME"),
			SampleTypes:           v.GetString("O11Y_PROFILING_SAMPLE_TYPES"),
			UploadIntervalSeconds: v.GetInt("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.API.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("API_BASE_URL must be an absolute URL, got %q", c.API.BaseURL)
	}

	switch c.Session.TokenStore {
	case "file", "memory":
	default:
		return fmt.Errorf("TOKEN_STORE must be \"file\" or \"memory\", got %q", c.Session.TokenStore)
	}

	if c.Toast.DefaultDurationMS <= 0 {
		return fmt.Errorf("TOAST_DURATION_MS must be positive")
	}
	if c.Booking.DraftTTLMinutes <= 0 {
		return fmt.Errorf("BOOKING_DRAFT_TTL_MINUTES must be positive")
	}
	if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}

	if c.Profiling.Enabled && c.Profiling.Endpoint == "" {
		return fmt.Errorf("O11Y_PROFILING_ENDPOINT is required when profiling is enabled")
	}

	return nil
}

// Address returns the listen address of the page host.
func (c *Config) Address() string {
	return c.Server.Host + ":" + c.Server.Port
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.GinMode == "debug"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.AppEnv == "production"
}

func splitList(raw string) []string {
	out := []string{}
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
