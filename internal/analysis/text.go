package analysis

import (
	"math"
	"unicode/utf8"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/KaramelBytes/edakit/internal/table"
)

// TextProfile describes one free-text column. Lengths count characters of non-missing
// string cells; they are NaN when Degenerate.
type TextProfile struct {
	Name             string
	Kind             table.Kind
	Observations     int
	Distinct         int
	DistinctFraction float64
	MeanLength       float64
	MinLength        float64
	MaxLength        float64
	Degenerate       bool
}

// ProfileText profiles the named columns.
func (a *Analyzer) ProfileText(t *table.Table, names []string) ([]TextProfile, []Diagnostic, error) {
	cols, err := lookup(t, names)
	if err != nil {
		return nil, nil, err
	}
	if len(cols) > 0 && t.NumRows() == 0 {
		return nil, nil, ErrEmptyTable
	}
	var (
		out   []TextProfile
		diags []Diagnostic
	)
	for _, c := range cols {
		p := profileText(c)
		if p.Degenerate {
			diags = append(diags, a.diagnose(c.Name, &DegenerateColumnError{Column: c.Name, Kind: c.Kind}))
		}
		out = append(out, p)
	}
	return out, diags, nil
}

func profileText(c *table.Column) TextProfile {
	p := TextProfile{Name: c.Name, Kind: c.Kind, Observations: len(c.Values)}
	seen := make(map[string]struct{})
	var lengths []float64
	for _, v := range c.Values {
		if table.IsMissing(v) {
			continue
		}
		seen[cellKey(v)] = struct{}{}
		// Non-string cells have no length and are skipped, not coerced.
		if s, ok := v.(string); ok {
			lengths = append(lengths, float64(utf8.RuneCountInString(s)))
		}
	}
	p.Distinct = len(seen)
	p.DistinctFraction = float64(p.Distinct) / float64(p.Observations)
	if len(lengths) == 0 {
		nan := math.NaN()
		p.MeanLength, p.MinLength, p.MaxLength = nan, nan, nan
		p.Degenerate = true
		return p
	}
	p.MeanLength = stat.Mean(lengths, nil)
	p.MinLength = floats.Min(lengths)
	p.MaxLength = floats.Max(lengths)
	return p
}

var textMetrics = []string{
	"type", "observations", "distinct values", "distinct fraction",
	"mean length", "min length", "max length",
}

// TextTable renders text profiles as a metric-by-variable table.
func TextTable(profiles []TextProfile) *ProfileTable {
	pt := newProfileTable(textMetrics)
	for _, p := range profiles {
		pt.addVariable(p.Name, []string{
			p.Kind.String(),
			itoa(p.Observations),
			itoa(p.Distinct),
			formatFloat(p.DistinctFraction),
			formatStat(p.MeanLength),
			formatStat(p.MinLength),
			formatStat(p.MaxLength),
		})
	}
	return pt
}
