package panels

import "github.com/grafana/grafana-foundation-sdk/go/timeseries"

// RateLimiterWait returns a timeseries panel showing how long requests wait
// on the client-side rate limiter.
func RateLimiterWait() *timeseries.PanelBuilder {
	return newTimeseries("Rate Limiter Wait", "Time spent waiting for a request slot", FullWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(mkm_rate_limiter_wait_seconds_bucket[5m])) by (le))`,
			"p95",
			"A",
		)).
		WithTarget(PromQuery(
			`sum(rate(mkm_rate_limiter_wait_seconds_sum[5m])) / sum(rate(mkm_rate_limiter_wait_seconds_count[5m]))`,
			"mean",
			"B",
		)).
		Unit("s").
		Legend(tableLegend("mean", "max")).
		Tooltip(multiTooltip())
}
