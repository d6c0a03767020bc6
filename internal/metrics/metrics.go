// Package metrics defines Prometheus metrics for the MKM client.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mkm"

// API call metrics.
var (
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Total number of marketplace API requests by endpoint and response status.",
	}, []string{"endpoint", "status"})

	APIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Duration of marketplace API requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})

	APINoResultsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_no_results_total",
		Help:      "Total number of 204 No Content responses by endpoint.",
	}, []string{"endpoint"})
)

// Request quota metrics, as reported by the marketplace in response headers.
var (
	RequestLimitCount = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "request_limit_count",
		Help:      "Requests used in the current marketplace quota window.",
	})

	RequestLimitMax = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "request_limit_max",
		Help:      "Request allowance of the current marketplace quota window.",
	})
)

// Client-side throttling metrics.
var (
	RateLimiterWaitDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "rate_limiter_wait_seconds",
		Help:      "Time spent waiting on the client-side rate limiter.",
		Buckets:   prometheus.DefBuckets,
	})
)

// WriteTextfile writes the current value of every registered metric to path
// in the text exposition format, for pickup by node_exporter's textfile
// collector.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
