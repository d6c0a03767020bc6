package rules

// AlertRules returns a PrometheusRule CR containing alert rules for the mkm
// client's marketplace usage.
func AlertRules() PrometheusRule {
	return newPrometheusRule("mkm-alerts", "mkm-alerts",
		Rule{
			Alert: "MkmQuotaHigh",
			Expr:  `mkm:quota_used:ratio > 0.8`,
			For:   "5m",
			Labels: map[string]string{
				"severity": "warning",
			},
			Annotations: map[string]string{
				"summary":     "Cardmarket request quota is above 80%",
				"description": "X-Request-Limit-Count has passed 80% of X-Request-Limit-Max.",
			},
		},
		Rule{
			Alert: "MkmQuotaExhausted",
			Expr:  `increase(mkm_api_requests_total{status="429"}[5m]) > 0`,
			For:   "0m",
			Labels: map[string]string{
				"severity": "critical",
			},
			Annotations: map[string]string{
				"summary":     "Cardmarket request quota has been exhausted",
				"description": "The marketplace is answering 429 Too Many Requests until the quota window resets.",
			},
		},
		Rule{
			Alert: "MkmAuthFailures",
			Expr:  `increase(mkm_api_requests_total{status="401"}[15m]) > 0`,
			For:   "0m",
			Labels: map[string]string{
				"severity": "critical",
			},
			Annotations: map[string]string{
				"summary":     "Cardmarket rejected the app credentials",
				"description": "Requests are failing with 401 Unauthorized. Check the app and access tokens.",
			},
		},
		Rule{
			Alert: "MkmHighErrorRate",
			Expr:  `mkm:api_errors:rate5m / mkm:api_requests:rate5m > 0.05`,
			For:   "10m",
			Labels: map[string]string{
				"severity": "warning",
			},
			Annotations: map[string]string{
				"summary":     "High marketplace API error rate",
				"description": "More than 5% of marketplace requests failed over the last 10 minutes.",
			},
		},
		Rule{
			Alert: "MkmThrottled",
			Expr:  `histogram_quantile(0.95, sum(rate(mkm_rate_limiter_wait_seconds_bucket[10m])) by (le)) > 5`,
			For:   "10m",
			Labels: map[string]string{
				"severity": "info",
			},
			Annotations: map[string]string{
				"summary":     "Client-side rate limiter is the bottleneck",
				"description": "p95 wait on the rate limiter has exceeded 5s. Consider raising rate_limit.per_second.",
			},
		},
	)
}
