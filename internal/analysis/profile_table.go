package analysis

import (
	"strings"
)

// ProfileTable is the rendered form of a profile: one row per metric, one column per
// profiled variable.
type ProfileTable struct {
	Metrics   []string
	Variables []string
	// Cells[i][j] is metric i of variable j.
	Cells [][]string
}

func newProfileTable(metrics []string) *ProfileTable {
	return &ProfileTable{Metrics: metrics, Cells: make([][]string, len(metrics))}
}

// addVariable appends one column; values must follow Metrics order.
func (p *ProfileTable) addVariable(name string, values []string) {
	p.Variables = append(p.Variables, name)
	for i := range p.Metrics {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		p.Cells[i] = append(p.Cells[i], v)
	}
}

// Value looks up one cell by metric and variable name.
func (p *ProfileTable) Value(metric, variable string) (string, bool) {
	mi, vi := -1, -1
	for i, m := range p.Metrics {
		if m == metric {
			mi = i
			break
		}
	}
	for j, v := range p.Variables {
		if v == variable {
			vi = j
			break
		}
	}
	if mi < 0 || vi < 0 {
		return "", false
	}
	return p.Cells[mi][vi], true
}

// Markdown renders the table as a GitHub-flavored markdown table.
func (p *ProfileTable) Markdown() string {
	var b strings.Builder
	b.WriteString("| metric")
	for _, v := range p.Variables {
		b.WriteString(" | ")
		b.WriteString(safeName(v))
	}
	b.WriteString(" |\n|---")
	for range p.Variables {
		b.WriteString("|---")
	}
	b.WriteString("|\n")
	for i, m := range p.Metrics {
		b.WriteString("| ")
		b.WriteString(m)
		for _, c := range p.Cells[i] {
			b.WriteString(" | ")
			b.WriteString(safeVal(c))
		}
		b.WriteString(" |\n")
	}
	return b.String()
}

func safeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "(unnamed)"
	}
	return safeVal(s)
}

func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }
