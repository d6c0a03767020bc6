package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return newPrometheusRule("mkm-recording-rules", "mkm-recording",
		Rule{
			Record: "mkm:api_requests:rate5m",
			Expr:   `sum(rate(mkm_api_requests_total[5m]))`,
		},
		Rule{
			Record: "mkm:api_errors:rate5m",
			Expr:   `sum(rate(mkm_api_requests_total{status!~"200|201|204|206"}[5m]))`,
		},
		Rule{
			Record: "mkm:api_no_results:rate5m",
			Expr:   `sum(rate(mkm_api_no_results_total[5m]))`,
		},
		Rule{
			Record: "mkm:quota_used:ratio",
			Expr:   `mkm_request_limit_count / (mkm_request_limit_max > 0)`,
		},
	)
}
