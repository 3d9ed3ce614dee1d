package main

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	envDevelopment = "development"
	envProduction  = "production"
)

// developmentOrigins are the frontend origins allowed outside production
var developmentOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}

// Config holds the gateway settings. It is built once at startup and never mutated.
type Config struct {
	Port            string
	UpstreamURL     string
	Environment     string
	AllowedOrigins  []string
	MaxTextLength   int
	MaxBodyBytes    int64
	UpstreamTimeout time.Duration
	ServiceName     string
	GinMode         string
	LogLevel        string
}

// DefaultConfig returns the development configuration
func DefaultConfig() Config {
	return Config{
		Port:            "5000",
		UpstreamURL:     "http://localhost:5001",
		Environment:     envDevelopment,
		AllowedOrigins:  append([]string(nil), developmentOrigins...),
		MaxTextLength:   50000,
		MaxBodyBytes:    10 << 20,
		UpstreamTimeout: 30 * time.Second,
		ServiceName:     "fake-news-gateway",
		GinMode:         "debug",
		LogLevel:        "INFO",
	}
}

// LoadConfig reads the configuration from environment variables
func LoadConfig() (Config, error) {
	return loadConfig(os.Getenv)
}

func loadConfig(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if v := getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := getenv("UPSTREAM_URL"); v != "" {
		cfg.UpstreamURL = strings.TrimRight(v, "/")
	}
	if v := getenv("APP_ENV"); v != "" {
		cfg.Environment = strings.ToLower(v)
	}
	if v := getenv("SERVICE_NAME"); v != "" {
		cfg.ServiceName = v
	}
	if v := getenv("GIN_MODE"); v != "" {
		cfg.GinMode = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToUpper(v)
	}

	if v := getenv("MAX_TEXT_LENGTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("MAX_TEXT_LENGTH must be a positive integer, got %q", v)
		}
		cfg.MaxTextLength = n
	}
	if v := getenv("MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("MAX_BODY_BYTES must be a positive integer, got %q", v)
		}
		cfg.MaxBodyBytes = n
	}
	if v := getenv("UPSTREAM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("UPSTREAM_TIMEOUT must be a positive duration, got %q", v)
		}
		cfg.UpstreamTimeout = d
	}

	switch cfg.Environment {
	case envDevelopment:
	case envProduction:
		cfg.AllowedOrigins = splitList(getenv("ALLOWED_ORIGINS"))
	default:
		return Config{}, fmt.Errorf("APP_ENV must be %q or %q, got %q", envDevelopment, envProduction, cfg.Environment)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the invariants the router relies on
func (c Config) Validate() error {
	u, err := url.Parse(c.UpstreamURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("UPSTREAM_URL must be an absolute http(s) URL, got %q", c.UpstreamURL)
	}
	if len(c.AllowedOrigins) == 0 {
		return errors.New("ALLOWED_ORIGINS must list at least one origin in production")
	}
	for _, o := range c.AllowedOrigins {
		if o == "*" {
			return errors.New("wildcard origin is not allowed together with credentials")
		}
		if !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("origin %q must start with http:// or https://", o)
		}
	}
	if c.MaxTextLength <= 0 || c.MaxBodyBytes <= 0 || c.UpstreamTimeout <= 0 {
		return errors.New("size limits and timeout must be positive")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, strings.TrimRight(p, "/"))
		}
	}
	return out
}
