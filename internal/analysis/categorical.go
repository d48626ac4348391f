package analysis

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/edakit/internal/table"
)

// CategoricalProfile describes one categorical column.
type CategoricalProfile struct {
	Name string
	Kind table.Kind
	// Categories counts distinct non-missing values.
	Categories int
	// Observations counts all cells, missing included.
	Observations int
	Missing      int
	// MissingFraction is Missing/Observations, unrounded.
	MissingFraction float64
	// Values lists distinct values in first-seen order; nil stands for missing.
	Values []any
	// Modes holds the most frequent values; absent ranks are placeholders.
	Modes []FrequencyEntry
}

// ProfileCategorical profiles the named columns.
func (a *Analyzer) ProfileCategorical(t *table.Table, names []string) ([]CategoricalProfile, []Diagnostic, error) {
	cols, err := lookup(t, names)
	if err != nil {
		return nil, nil, err
	}
	if len(cols) > 0 && t.NumRows() == 0 {
		return nil, nil, ErrEmptyTable
	}
	out := make([]CategoricalProfile, 0, len(cols))
	for _, c := range cols {
		out = append(out, profileCategorical(c, a.opt.CategoricalModes, a.opt.ModesIncludeMissing))
	}
	return out, nil, nil
}

func profileCategorical(c *table.Column, modes int, includeMissing bool) CategoricalProfile {
	p := CategoricalProfile{Name: c.Name, Kind: c.Kind, Observations: len(c.Values)}
	seen := make(map[string]struct{})
	sawMissing := false
	for _, v := range c.Values {
		if table.IsMissing(v) {
			p.Missing++
			if !sawMissing {
				sawMissing = true
				p.Values = append(p.Values, nil)
			}
			continue
		}
		k := cellKey(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		p.Values = append(p.Values, v)
	}
	p.Categories = len(seen)
	p.MissingFraction = float64(p.Missing) / float64(p.Observations)
	p.Modes = frequencies(c.Values, includeMissing).Top(modes)
	return p
}

// CategoricalTable renders categorical profiles as a metric-by-variable table.
func CategoricalTable(profiles []CategoricalProfile) *ProfileTable {
	modes := 0
	for _, p := range profiles {
		if len(p.Modes) > modes {
			modes = len(p.Modes)
		}
	}
	metrics := []string{"type", "categories", "observations", "missing", "missing fraction", "distinct values"}
	for i := 1; i <= modes; i++ {
		metrics = append(metrics, fmt.Sprintf("mode %d (value/count/percent)", i))
	}
	pt := newProfileTable(metrics)
	for _, p := range profiles {
		vals := []string{
			p.Kind.String(),
			itoa(p.Categories),
			itoa(p.Observations),
			itoa(p.Missing),
			formatFloat(p.MissingFraction),
			formatValues(p.Values),
		}
		for _, m := range p.Modes {
			vals = append(vals, formatMode(m))
		}
		pt.addVariable(p.Name, vals)
	}
	return pt
}

func formatValues(vs []any) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatValue(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatMode(e FrequencyEntry) string {
	if e.IsPlaceholder() {
		return "-"
	}
	return fmt.Sprintf("%s / %d / %s", formatValue(e.Value), e.Count, e.Percent)
}
