// Package validate checks generated dashboards and rules for PromQL syntax
// errors and references to metrics the client does not export.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/mkm/tools/dashgen/rules"
)

// Result collects problems found during validation. Errors make the
// artifact unusable; warnings are worth a look but do not fail generation.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// knownMetric reports whether name, or its histogram base name, is in known.
func knownMetric(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}

// Expr parses expr and reports unknown metric names. where identifies the
// expression in messages.
func Expr(expr, where string, known map[string]bool) Result {
	var res Result
	checkExpr(&res, expr, where, known)
	return res
}

func checkExpr(res *Result, expr, where string, known map[string]bool) {
	if strings.TrimSpace(expr) == "" {
		res.errorf("%s: empty expression", where)
		return
	}

	ast, err := parser.ParseExpr(expr)
	if err != nil {
		res.errorf("%s: parsing %q: %v", where, expr, err)
		return
	}

	parser.Inspect(ast, func(node parser.Node, _ []parser.Node) error {
		vs, ok := node.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !knownMetric(vs.Name, known) {
			res.errorf("%s: unknown metric %q", where, vs.Name)
		}
		return nil
	})
}

// Dashboard validates every query target in dash. Panels are located by
// walking the dashboard's JSON form, so rows and nested panels are covered
// without knowing each panel type.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result

	data, err := json.Marshal(dash)
	if err != nil {
		res.errorf("marshaling dashboard: %v", err)
		return res
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		res.errorf("unmarshaling dashboard: %v", err)
		return res
	}

	titles := make(map[string]int)
	walkPanels(doc["panels"], func(panel map[string]any) {
		title, _ := panel["title"].(string)
		if panel["type"] == "row" {
			return
		}
		titles[title]++

		targets, _ := panel["targets"].([]any)
		if len(targets) == 0 {
			res.warnf("panel %q has no targets", title)
		}
		for _, t := range targets {
			target, _ := t.(map[string]any)
			expr, _ := target["expr"].(string)
			refID, _ := target["refId"].(string)
			checkExpr(&res, expr, fmt.Sprintf("panel %q target %s", title, refID), known)
		}
	})

	for title, n := range titles {
		if n > 1 {
			res.warnf("panel title %q used %d times", title, n)
		}
	}
	return res
}

func walkPanels(v any, fn func(map[string]any)) {
	list, _ := v.([]any)
	for _, item := range list {
		panel, ok := item.(map[string]any)
		if !ok {
			continue
		}
		fn(panel)
		walkPanels(panel["panels"], fn)
	}
}

// Rules validates every expression in cr. Recording rules must be named
// with a known metric, and alerts must carry a severity label.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result
	for _, group := range cr.Spec.Groups {
		for i, rule := range group.Rules {
			where := fmt.Sprintf("group %s rule %d", group.Name, i)
			switch {
			case rule.Record != "":
				where = "record " + rule.Record
				if !known[rule.Record] {
					res.errorf("%s: record name is not a known metric", where)
				}
			case rule.Alert != "":
				where = "alert " + rule.Alert
				if rule.Labels["severity"] == "" {
					res.warnf("%s: missing severity label", where)
				}
			default:
				res.errorf("%s: neither record nor alert is set", where)
			}
			checkExpr(&res, rule.Expr, where, known)
		}
	}
	return res
}
