package panels

import "github.com/grafana/grafana-foundation-sdk/go/timeseries"

// RequestRate returns a timeseries panel showing the marketplace API request
// rate per endpoint.
func RequestRate() *timeseries.PanelBuilder {
	return newTimeseries("Request Rate", "Marketplace API requests per second by endpoint", ThirdWidth).
		WithTarget(PromQuery(
			`sum by (endpoint) (rate(mkm_api_requests_total[5m]))`,
			"{{endpoint}}", "A",
		)).
		Unit("reqps").
		Legend(tableLegend("mean", "max")).
		Tooltip(multiTooltip())
}

// LatencyPercentiles returns a timeseries panel showing p50, p95, and p99
// marketplace API latencies.
func LatencyPercentiles() *timeseries.PanelBuilder {
	b := newTimeseries("Latency Percentiles", "Marketplace API request duration percentiles", ThirdWidth).
		Unit("s").
		Legend(tableLegend("mean", "max")).
		Tooltip(multiTooltip())

	for _, q := range []struct{ quantile, legend, ref string }{
		{"0.50", "p50", "A"},
		{"0.95", "p95", "B"},
		{"0.99", "p99", "C"},
	} {
		b.WithTarget(PromQuery(
			`histogram_quantile(`+q.quantile+`, sum(rate(mkm_api_request_duration_seconds_bucket[5m])) by (le))`,
			q.legend, q.ref,
		))
	}
	return b
}

// ErrorRate returns a timeseries panel showing failed requests as a
// percentage of all requests. Transport failures count as errors.
func ErrorRate() *timeseries.PanelBuilder {
	return newTimeseries("Error Rate %", "Non-2xx and unsent requests as percentage of total requests", ThirdWidth).
		WithTarget(PromQuery(
			`mkm:api_errors:rate5m / mkm:api_requests:rate5m * 100`,
			"error %", "A",
		)).
		Unit("percent").
		Thresholds(warnCritical(1, 5)).
		ColorScheme(byThreshold())
}
