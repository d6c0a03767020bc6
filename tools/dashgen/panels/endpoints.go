package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// StatusBreakdown returns a timeseries panel showing the response rate per
// HTTP status.
func StatusBreakdown() *timeseries.PanelBuilder {
	return newTimeseries("Responses by Status", "Marketplace responses per second by status code", ThirdWidth).
		WithTarget(PromQuery(
			`sum by (status) (rate(mkm_api_requests_total[5m]))`,
			"{{status}}", "A",
		)).
		Unit("reqps").
		Tooltip(multiTooltip())
}

// NoResults returns a timeseries panel showing 204 No Content responses per
// endpoint over the last hour.
func NoResults() *timeseries.PanelBuilder {
	return newTimeseries("No Results (1h)", "204 responses per endpoint in the last hour", ThirdWidth).
		WithTarget(PromQuery(
			`sum by (endpoint) (increase(mkm_api_no_results_total[1h]))`,
			"{{endpoint}}", "A",
		)).
		Legend(tableLegend("max"))
}

// AuthFailures returns a stat panel showing the number of 401 responses in
// the past 24 hours.
func AuthFailures() *stat.PanelBuilder {
	return newStat("Auth Failures (24h)", "Requests rejected with 401 Unauthorized in the last 24 hours", ThirdWidth, TSHeight).
		WithTarget(PromQuery(`sum(increase(mkm_api_requests_total{status="401"}[24h]))`, "", "A")).
		Thresholds(warnCritical(1, 3)).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
