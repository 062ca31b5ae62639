// Package config loads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"route-resolver-service/internal/domain"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Upper bound for any history page.
const MaxHistoryLimit = 100

// Config is the complete runtime configuration shared by the binaries.
type Config struct {
	Port string

	// Route text endpoints, tried in order.
	PrimaryURL   string
	SecondaryURL string
	// Base for relative endpoint URLs (the dev-server proxy).
	ProxyBaseURL string
	HTTPTimeout  time.Duration

	// Routes and reservations CRUD backend.
	CatalogBaseURL string

	// Resolution log storage. DatabaseURL (PostgreSQL) wins over DBPath (SQLite);
	// with neither set no history is kept.
	DatabaseURL string
	DBPath      string

	// Default page size for the history endpoint.
	HistoryLimit int

	// Browser origins allowed to call the HTTP API.
	AllowedOrigins []string

	LogLevel  string
	LogFormat string
}

// LoadDotEnv loads .env when present. A missing file is not an error.
func LoadDotEnv() bool {
	return godotenv.Load() == nil
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	timeout, err := GetDuration("ROUTE_HTTP_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	historyLimit, err := GetInt("HISTORY_LIMIT", 20)
	if err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg := &Config{
		Port:           Get("PORT", "8080"),
		PrimaryURL:     Get("ROUTE_PRIMARY_URL", "http://localhost:8082/api/ruta"),
		SecondaryURL:   Get("ROUTE_SECONDARY_URL", "/api2/ruta"),
		ProxyBaseURL:   Get("ROUTE_PROXY_BASE_URL", "http://localhost:3000"),
		HTTPTimeout:    timeout,
		CatalogBaseURL: Get("CATALOG_BASE_URL", "http://localhost:8080"),
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DBPath:         strings.TrimSpace(os.Getenv("DB_PATH")),
		HistoryLimit:   historyLimit,
		AllowedOrigins: GetList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:*"}),
		LogLevel:       Get("LOG_LEVEL", "info"),
		LogFormat:      Get("LOG_FORMAT", "json"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the settings that would otherwise fail at query time.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.PrimaryURL) == "" {
		return errors.New("ROUTE_PRIMARY_URL is required")
	}
	if strings.TrimSpace(c.SecondaryURL) == "" {
		return errors.New("ROUTE_SECONDARY_URL is required")
	}
	for _, raw := range []string{c.PrimaryURL, c.SecondaryURL} {
		if _, err := url.Parse(raw); err != nil {
			return fmt.Errorf("invalid route url %q: %w", raw, err)
		}
	}

	if c.ProxyBaseURL != "" {
		u, err := url.Parse(c.ProxyBaseURL)
		if err != nil || !u.IsAbs() {
			return fmt.Errorf("ROUTE_PROXY_BASE_URL must be an absolute url, got %q", c.ProxyBaseURL)
		}
	}

	if c.HTTPTimeout <= 0 {
		return errors.New("ROUTE_HTTP_TIMEOUT must be positive")
	}

	if c.HistoryLimit < 1 || c.HistoryLimit > MaxHistoryLimit {
		return fmt.Errorf("HISTORY_LIMIT must be between 1 and %d", MaxHistoryLimit)
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return nil
}

// EndpointTemplates returns the route text endpoints in fallback order.
func (c *Config) EndpointTemplates() []domain.EndpointTemplate {
	return []domain.EndpointTemplate{
		{Name: "primary", URL: c.PrimaryURL},
		{Name: "secondary", URL: c.SecondaryURL},
	}
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetList splits a comma-separated value, dropping blank items.
func GetList(key string, fallback []string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

// GetDuration parses key with time.ParseDuration. An unset key yields fallback;
// a malformed value is an error.
func GetDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, v, err)
	}
	return d, nil
}

// GetInt parses key as a base-10 integer. An unset key yields fallback;
// a malformed value is an error.
func GetInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q: %w", key, v, err)
	}
	return n, nil
}
