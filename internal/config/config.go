package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Addr            string `validate:"required"`
	LogFormat       string `validate:"oneof=text json"`
	LogLevel        string `validate:"oneof=debug info warn error"`
	ContactURL      string `validate:"required,url"`
	LogoBaseURL     string `validate:"required,url"`
	LogoProbe       bool
	LogoTimeout     time.Duration `validate:"gt=0"`
	ChartAssetsHost string        `validate:"omitempty,url"`
	ContentDir      string        `validate:"omitempty,dir"`
	RateLimit       float64       `validate:"gte=0"`
	Metrics         bool
	Pprof           bool
}

// Defaults used when an environment variable is unset.
const (
	DefaultAddr        = ":8080"
	DefaultContactURL  = "https://t.me/hlabs_ai"
	DefaultLogoBaseURL = "https://logo.clearbit.com/"
	DefaultLogoTimeout = 3 * time.Second
	DefaultRateLimit   = 20
)

// New loads .env when present, then reads the environment and validates the
// result.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup, which has the signature of
// os.LookupEnv so tests can supply a map.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return def
	}

	var errs []error
	cfg := &Config{
		Addr:            get("APP_ADDR", DefaultAddr),
		LogFormat:       get("LOG_FORMAT", "text"),
		LogLevel:        get("LOG_LEVEL", "info"),
		ContactURL:      get("CONTACT_URL", DefaultContactURL),
		LogoBaseURL:     get("LOGO_BASE_URL", DefaultLogoBaseURL),
		ChartAssetsHost: get("CHART_ASSETS_HOST", ""),
		ContentDir:      get("CONTENT_DIR", ""),
		LogoTimeout:     DefaultLogoTimeout,
		RateLimit:       DefaultRateLimit,
		Metrics:         true,
	}

	parseBool := func(key string, dst *bool) {
		if v := get(key, ""); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
			}
			*dst = b
		}
	}
	parseBool("LOGO_PROBE", &cfg.LogoProbe)
	parseBool("METRICS_ENABLED", &cfg.Metrics)
	parseBool("PPROF_ENABLED", &cfg.Pprof)

	if v := get("LOGO_PROBE_TIMEOUT", ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("LOGO_PROBE_TIMEOUT: %w", err))
		}
		cfg.LogoTimeout = d
	}
	if v := get("RATE_LIMIT", ""); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("RATE_LIMIT: %w", err))
		}
		cfg.RateLimit = f
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("config: %w", errors.Join(errs...))
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
