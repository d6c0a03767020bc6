// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/mkm/tools/dashgen/panels"
)

// BuildOverview constructs the MKM Client dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("MKM Client").
		Uid("mkm-client").
		Tags([]string{"mkm", "cardmarket"}).
		Refresh("1m").
		Time("now-24h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Quota.
	b.WithRow(dashboard.NewRowBuilder("Quota").
		WithPanel(panels.QuotaGauge()).
		WithPanel(panels.QuotaCountStat()).
		WithPanel(panels.QuotaMaxStat()).
		WithPanel(panels.LastRunStat()))

	// Row 2: API.
	b.WithRow(dashboard.NewRowBuilder("API").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Responses.
	b.WithRow(dashboard.NewRowBuilder("Responses").
		WithPanel(panels.StatusBreakdown()).
		WithPanel(panels.NoResults()).
		WithPanel(panels.AuthFailures()))

	// Row 4: Throttling.
	b.WithRow(dashboard.NewRowBuilder("Throttling").
		WithPanel(panels.RateLimiterWait()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
