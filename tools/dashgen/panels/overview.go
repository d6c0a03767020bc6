package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/gauge"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

// QuotaGauge returns a gauge panel showing the marketplace request quota
// used, as a percentage of the allowance.
func QuotaGauge() *gauge.PanelBuilder {
	return gauge.NewPanelBuilder().
		Title("Quota Used %").
		Description("X-Request-Limit-Count as a percentage of X-Request-Limit-Max").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`max(mkm:quota_used:ratio) * 100`, "", "A")).
		Unit("percent").
		Min(0).
		Max(100).
		Thresholds(warnCritical(QuotaWarnPercent, QuotaCriticalPercent)).
		ColorScheme(byThreshold())
}

// QuotaCountStat returns a stat panel showing requests used in the current
// quota window.
func QuotaCountStat() *stat.PanelBuilder {
	return newStat("Requests Used", "Last reported X-Request-Limit-Count", StatWidth, StatHeight).
		WithTarget(PromQuery(`max(mkm_request_limit_count)`, "", "A")).
		GraphMode(common.BigValueGraphModeArea)
}

// QuotaMaxStat returns a stat panel showing the request allowance.
func QuotaMaxStat() *stat.PanelBuilder {
	return newStat("Request Allowance", "Last reported X-Request-Limit-Max", StatWidth, StatHeight).
		WithTarget(PromQuery(`max(mkm_request_limit_max)`, "", "A")).
		GraphMode(common.BigValueGraphModeNone).
		TextMode(common.BigValueTextModeValue)
}

// LastRunStat returns a stat panel showing the time since the CLI last wrote
// its metrics textfile. Yellow after a day, red after three.
func LastRunStat() *stat.PanelBuilder {
	return newStat("Since Last Run", "Age of the mkm metrics textfile picked up by node_exporter", StatWidth, StatHeight).
		WithTarget(PromQuery(
			`time() - max(node_textfile_mtime_seconds{file=~".*mkm.*"})`,
			"", "A",
		)).
		Unit("s").
		Thresholds(warnCritical(86400, 3*86400)).
		GraphMode(common.BigValueGraphModeNone)
}
