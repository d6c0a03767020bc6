package main

import "errors"

// KnownMetrics is the set of metric names exported by the mkm client plus
// recording rule names referenced in dashboards and alerts. Histogram series
// suffixes (_bucket, _sum, _count) resolve to their base name.
var KnownMetrics = map[string]bool{
	// API call metrics.
	"mkm_api_requests_total":           true,
	"mkm_api_request_duration_seconds": true,
	"mkm_api_no_results_total":         true,

	// Request quota reported by the marketplace.
	"mkm_request_limit_count": true,
	"mkm_request_limit_max":   true,

	// Client-side throttling.
	"mkm_rate_limiter_wait_seconds": true,

	// Recording rules.
	"mkm:api_requests:rate5m":   true,
	"mkm:api_errors:rate5m":     true,
	"mkm:api_no_results:rate5m": true,
	"mkm:quota_used:ratio":      true,

	// node_exporter textfile collector.
	"node_textfile_mtime_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
