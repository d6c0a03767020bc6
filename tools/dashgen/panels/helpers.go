// Package panels provides Grafana dashboard panel builders for the mkm
// client metrics. Panels share one datasource variable and a small set of
// defaults applied by newTimeseries and newStat.
package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/cog"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// Panel dimensions on the 24-column grid. Rows hold four stats or three
// timeseries side by side.
const (
	StatWidth  = 6
	StatHeight = 4

	ThirdWidth = 8
	TSHeight   = 8

	FullWidth = 24
)

// QuotaWarnPercent and QuotaCriticalPercent are the thresholds, as a share of
// the marketplace's request allowance, used by the quota panels and alerts.
const (
	QuotaWarnPercent     = 80
	QuotaCriticalPercent = 95
)

// DSRef returns a datasource reference pointing at the ${datasource}
// template variable.
func DSRef() dashboard.DataSourceRef {
	return dashboard.DataSourceRef{
		Type: cog.ToPtr("prometheus"),
		Uid:  cog.ToPtr("${datasource}"),
	}
}

// PromQuery builds a Prometheus query target with the given expression,
// legend format, and ref ID.
func PromQuery(expr, legendFormat, refID string) *prometheus.DataqueryBuilder {
	return prometheus.NewDataqueryBuilder().
		Expr(expr).
		LegendFormat(legendFormat).
		RefId(refID)
}

// newTimeseries returns a line panel with the defaults every mkm
// timeseries shares. Callers add targets and override thresholds.
func newTimeseries(title, description string, span uint32) *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(DSRef()).
		Height(TSHeight).
		Span(span).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(thresholds("green")).
		ColorScheme(paletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// newStat returns a single-value panel colored by its thresholds.
func newStat(title, description string, span, height uint32) *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(DSRef()).
		Height(height).
		Span(span).
		Thresholds(thresholds("green")).
		ColorScheme(byThreshold())
}

// step is one threshold boundary: values at or above at take color.
type step struct {
	at    float64
	color string
}

// thresholds builds absolute thresholds starting at base and changing color
// at each step.
func thresholds(base string, steps ...step) cog.Builder[dashboard.ThresholdsConfig] {
	out := make([]dashboard.Threshold, 0, len(steps)+1)
	out = append(out, dashboard.Threshold{Color: base})
	for _, s := range steps {
		out = append(out, dashboard.Threshold{Value: cog.ToPtr(s.at), Color: s.color})
	}
	return dashboard.NewThresholdsConfigBuilder().
		Mode(dashboard.ThresholdsModeAbsolute).
		Steps(out)
}

// warnCritical is the green/yellow/red scheme used by quota and error panels.
func warnCritical(warn, critical float64) cog.Builder[dashboard.ThresholdsConfig] {
	return thresholds("green", step{at: warn, color: "yellow"}, step{at: critical, color: "red"})
}

func byThreshold() cog.Builder[dashboard.FieldColor] {
	return dashboard.NewFieldColorBuilder().
		Mode(dashboard.FieldColorModeIdThresholds)
}

func paletteClassic() cog.Builder[dashboard.FieldColor] {
	return dashboard.NewFieldColorBuilder().
		Mode(dashboard.FieldColorModeIdPaletteClassic)
}

// tableLegend shows the legend as a table under the graph with the given
// calculation columns.
func tableLegend(calcs ...string) *common.VizLegendOptionsBuilder {
	return common.NewVizLegendOptionsBuilder().
		DisplayMode(common.LegendDisplayModeTable).
		Placement(common.LegendPlacementBottom).
		Calcs(calcs)
}

// multiTooltip lists every series, highest first.
func multiTooltip() *common.VizTooltipOptionsBuilder {
	return common.NewVizTooltipOptionsBuilder().
		Mode(common.TooltipDisplayModeMulti).
		Sort(common.SortOrderDescending)
}
