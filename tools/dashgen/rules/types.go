// Package rules generates the mkm recording and alert rules as Kubernetes
// PrometheusRule custom resources.
package rules

// Defaults stamped on every generated PrometheusRule.
const (
	apiVersion = "monitoring.coreos.com/v1"
	kind       = "PrometheusRule"

	// Namespace the rules are deployed to, next to the node_exporter that
	// scrapes the mkm metrics textfile.
	Namespace = "monitoring"
)

// PrometheusRule is a Prometheus Operator custom resource holding one or more
// rule groups.
type PrometheusRule struct {
	APIVersion string                 `yaml:"apiVersion"`
	Kind       string                 `yaml:"kind"`
	Metadata   PrometheusRuleMetadata `yaml:"metadata"`
	Spec       PrometheusRuleSpec     `yaml:"spec"`
}

// PrometheusRuleMetadata holds the CR name, namespace and labels.
type PrometheusRuleMetadata struct {
	Name      string            `yaml:"name"`
	Namespace string            `yaml:"namespace"`
	Labels    map[string]string `yaml:"labels,omitempty"`
}

// PrometheusRuleSpec holds the rule groups.
type PrometheusRuleSpec struct {
	Groups []RuleGroup `yaml:"groups"`
}

// RuleGroup is a named collection of recording or alerting rules.
type RuleGroup struct {
	Name     string `yaml:"name"`
	Interval string `yaml:"interval,omitempty"`
	Rules    []Rule `yaml:"rules"`
}

// Rule is either a recording rule (Record set) or an alert (Alert set).
type Rule struct {
	Record      string            `yaml:"record,omitempty"`
	Alert       string            `yaml:"alert,omitempty"`
	Expr        string            `yaml:"expr"`
	For         string            `yaml:"for,omitempty"`
	Labels      map[string]string `yaml:"labels,omitempty"`
	Annotations map[string]string `yaml:"annotations,omitempty"`
}

// newPrometheusRule wraps a single group named after the CR, with the
// labels the operator's rule selector and the mkm dashboards expect.
func newPrometheusRule(name, group string, rules ...Rule) PrometheusRule {
	return PrometheusRule{
		APIVersion: apiVersion,
		Kind:       kind,
		Metadata: PrometheusRuleMetadata{
			Name:      name,
			Namespace: Namespace,
			Labels: map[string]string{
				"prometheus":                "system-rules-prometheus",
				"app.kubernetes.io/name":    "mkm",
				"app.kubernetes.io/part-of": "mkm",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{{Name: group, Rules: rules}},
		},
	}
}
