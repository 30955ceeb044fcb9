package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr        = ":8080"
	defaultBaseURL     = "http://localhost:8080"
	defaultSessionTTL  = 30 * time.Minute
	defaultUIRateLimit = 120
	defaultMaxSessions = 10000
)

// Provider exposes the configuration values the application reads at runtime.
// Tests can supply their own implementation instead of touching the environment.
type Provider interface {
	GetAddr() string
	GetAppBaseURL() string
	GetLogFormat() string
	GetLogLevel() string
	GetCatalogPath() string
	GetSessionTTL() time.Duration
	GetUIRateLimit() int
	GetMaxSessions() int
}

// Config holds all configuration for the application.
type Config struct {
	Addr        string
	AppBaseURL  string
	LogFormat   string
	LogLevel    string
	CatalogPath string
	SessionTTL  time.Duration
	UIRateLimit int
	MaxSessions int
}

// New loads configuration from a .env file (if present) and the environment.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function. Missing or malformed values
// fall back to defaults.
func FromEnv(getenv func(string) string) *Config {
	cfg := &Config{
		Addr:        getenv("APP_ADDR"),
		AppBaseURL:  getenv("APP_BASE_URL"),
		LogFormat:   getenv("LOG_FORMAT"),
		LogLevel:    getenv("LOG_LEVEL"),
		CatalogPath: getenv("CATALOG_PATH"),
		SessionTTL:  defaultSessionTTL,
		UIRateLimit: defaultUIRateLimit,
		MaxSessions: defaultMaxSessions,
	}

	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}
	if cfg.AppBaseURL == "" {
		cfg.AppBaseURL = defaultBaseURL
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if raw := getenv("SESSION_TTL"); raw != "" {
		if ttl, err := time.ParseDuration(raw); err == nil && ttl > 0 {
			cfg.SessionTTL = ttl
		} else {
			log.Printf("Ignoring invalid SESSION_TTL %q, using %s", raw, defaultSessionTTL)
		}
	}
	if raw := getenv("UI_RATE_LIMIT"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.UIRateLimit = n
		} else {
			log.Printf("Ignoring invalid UI_RATE_LIMIT %q, using %d", raw, defaultUIRateLimit)
		}
	}
	if raw := getenv("MAX_PAGE_SESSIONS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.MaxSessions = n
		} else {
			log.Printf("Ignoring invalid MAX_PAGE_SESSIONS %q, using %d", raw, defaultMaxSessions)
		}
	}

	return cfg
}

func (c *Config) GetAddr() string              { return c.Addr }
func (c *Config) GetAppBaseURL() string        { return c.AppBaseURL }
func (c *Config) GetLogFormat() string         { return c.LogFormat }
func (c *Config) GetLogLevel() string          { return c.LogLevel }
func (c *Config) GetCatalogPath() string       { return c.CatalogPath }
func (c *Config) GetSessionTTL() time.Duration { return c.SessionTTL }
func (c *Config) GetUIRateLimit() int          { return c.UIRateLimit }
func (c *Config) GetMaxSessions() int          { return c.MaxSessions }
