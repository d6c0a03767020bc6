// Package config handles loading and validating the MKM client configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Marketplace API roots. All requests ask for JSON output.
const (
	ProductionBaseURL = "https://api.cardmarket.com/ws/v2.0/output.json"
	SandboxBaseURL    = "https://sandbox.cardmarket.com/ws/v2.0/output.json"
)

// MaxPageSize is the largest maxResults value the marketplace accepts on
// paginated article endpoints.
const MaxPageSize = 1000

// Config is the top-level application configuration.
type Config struct {
	MKM     MKMConfig     `yaml:"mkm"`
	Logging LoggingConfig `yaml:"logging"`
}

// MKMConfig defines the marketplace API endpoint and the dedicated-app
// credentials used to sign requests.
type MKMConfig struct {
	BaseURL           string          `yaml:"base_url"`
	Sandbox           bool            `yaml:"sandbox"`
	AppToken          string          `yaml:"app_token"`
	AppSecret         string          `yaml:"app_secret"`
	AccessToken       string          `yaml:"access_token"`
	AccessTokenSecret string          `yaml:"access_token_secret"`
	Timeout           time.Duration   `yaml:"timeout"`
	PageSize          int             `yaml:"page_size"`
	RateLimit         RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines optional client-side request throttling. A zero
// PerSecond disables throttling.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyMKMDefaults(&cfg.MKM)
	applyLoggingDefaults(&cfg.Logging)
}

func applyMKMDefaults(m *MKMConfig) {
	if m.BaseURL == "" {
		m.BaseURL = ProductionBaseURL
		if m.Sandbox {
			m.BaseURL = SandboxBaseURL
		}
	}
	if m.Timeout == 0 {
		m.Timeout = 30 * time.Second
	}
	if m.PageSize == 0 {
		m.PageSize = 100
	}
	applyRateLimitDefaults(&m.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond > 0 && r.Burst == 0 {
		r.Burst = 1
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if err := ValidateBaseURL(cfg.MKM.BaseURL); err != nil {
		errs = append(errs, fmt.Errorf("mkm.base_url: %w", err))
	}
	if cfg.MKM.AppToken == "" {
		errs = append(errs, fmt.Errorf("mkm.app_token is required"))
	}
	if cfg.MKM.AppSecret == "" {
		errs = append(errs, fmt.Errorf("mkm.app_secret is required"))
	}
	if cfg.MKM.AccessToken == "" {
		errs = append(errs, fmt.Errorf("mkm.access_token is required"))
	}
	if cfg.MKM.AccessTokenSecret == "" {
		errs = append(errs, fmt.Errorf("mkm.access_token_secret is required"))
	}
	if cfg.MKM.PageSize < 1 || cfg.MKM.PageSize > MaxPageSize {
		errs = append(
			errs,
			fmt.Errorf("mkm.page_size must be between 1 and %d (got %d)", MaxPageSize, cfg.MKM.PageSize),
		)
	}
	if cfg.MKM.RateLimit.PerSecond < 0 {
		errs = append(errs, fmt.Errorf("mkm.rate_limit.per_second must not be negative"))
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(
			errs,
			fmt.Errorf("logging.format must be one of: text, json (got %q)", cfg.Logging.Format),
		)
	}

	return errors.Join(errs...)
}

// ValidateBaseURL checks that raw is an absolute http(s) URL.
func ValidateBaseURL(raw string) error {
	if raw == "" {
		return errors.New("is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https (got %q)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host is missing in %q", raw)
	}
	return nil
}
