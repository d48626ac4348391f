package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/KaramelBytes/edakit/internal/table"
)

// ValueCount pairs an observed value with its number of occurrences.
type ValueCount struct {
	Value any
	Count int
}

// NumericProfile describes one numeric column. Statistics exclude missing cells and are
// rounded to two decimals. When Degenerate is set every statistic is NaN.
type NumericProfile struct {
	Name       string
	Kind       table.Kind
	Count      int
	Mean       float64
	Std        float64
	Q25        float64
	Q50        float64
	Q75        float64
	Min        float64
	Max        float64
	Distinct   int
	Top        []ValueCount
	Degenerate bool
}

// ProfileNumeric profiles the named columns. An absent name fails the whole call;
// per-column failures and degenerate columns are returned as diagnostics.
func (a *Analyzer) ProfileNumeric(t *table.Table, names []string) ([]NumericProfile, []Diagnostic, error) {
	cols, err := lookup(t, names)
	if err != nil {
		return nil, nil, err
	}
	var (
		out   []NumericProfile
		diags []Diagnostic
	)
	for _, c := range cols {
		p, err := profileNumeric(c, a.opt.NumericTopValues)
		if err != nil {
			diags = append(diags, a.diagnose(c.Name, err))
			continue
		}
		if p.Degenerate {
			diags = append(diags, a.diagnose(c.Name, &DegenerateColumnError{Column: c.Name, Kind: c.Kind}))
		}
		out = append(out, p)
	}
	return out, diags, nil
}

func profileNumeric(c *table.Column, topN int) (NumericProfile, error) {
	p := NumericProfile{Name: c.Name, Kind: c.Kind}
	data := make([]float64, 0, len(c.Values))
	var kept []any
	for i, v := range c.Values {
		if table.IsMissing(v) {
			continue
		}
		f, ok := table.AsFloat(v)
		if !ok {
			return p, fmt.Errorf("row %d: non-numeric value %v (%T)", i, v, v)
		}
		data = append(data, f)
		kept = append(kept, v)
	}
	p.Count = len(data)
	if p.Count == 0 {
		nan := math.NaN()
		p.Mean, p.Std, p.Q25, p.Q50, p.Q75, p.Min, p.Max = nan, nan, nan, nan, nan, nan, nan
		p.Degenerate = true
		return p, nil
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return p, fmt.Errorf("mean: %w", err)
	}
	p.Mean = round(mean, 2)
	p.Std = math.NaN()
	if p.Count > 1 {
		sd, err := stats.StandardDeviationSample(data)
		if err != nil {
			return p, fmt.Errorf("std: %w", err)
		}
		p.Std = round(sd, 2)
	}
	lo, err := stats.Min(data)
	if err != nil {
		return p, fmt.Errorf("min: %w", err)
	}
	hi, err := stats.Max(data)
	if err != nil {
		return p, fmt.Errorf("max: %w", err)
	}
	p.Min, p.Max = round(lo, 2), round(hi, 2)

	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)
	p.Q25 = round(quantile(sorted, 0.25), 2)
	p.Q50 = round(quantile(sorted, 0.50), 2)
	p.Q75 = round(quantile(sorted, 0.75), 2)

	freq := frequencies(kept, false)
	p.Distinct = len(freq)
	for i := 0; i < len(freq) && i < topN; i++ {
		p.Top = append(p.Top, ValueCount{Value: freq[i].Value, Count: freq[i].Count})
	}
	return p, nil
}

// quantile interpolates linearly between the closest ranks of a sorted sample.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

var numericMetrics = []string{
	"type", "observations", "mean", "std", "25%", "50%", "75%", "min", "max",
	"distinct values", "top values",
}

// NumericTable renders numeric profiles as a metric-by-variable table.
func NumericTable(profiles []NumericProfile) *ProfileTable {
	pt := newProfileTable(numericMetrics)
	for _, p := range profiles {
		pt.addVariable(p.Name, []string{
			p.Kind.String(),
			itoa(p.Count),
			formatStat(p.Mean),
			formatStat(p.Std),
			formatStat(p.Q25),
			formatStat(p.Q50),
			formatStat(p.Q75),
			formatStat(p.Min),
			formatStat(p.Max),
			itoa(p.Distinct),
			formatTop(p.Top),
		})
	}
	return pt
}

func formatTop(top []ValueCount) string {
	if len(top) == 0 {
		return "-"
	}
	s := ""
	for i, vc := range top {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s(%d)", formatValue(vc.Value), vc.Count)
	}
	return s
}
