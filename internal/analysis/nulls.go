package analysis

import (
	"fmt"
	"sort"

	"github.com/KaramelBytes/edakit/internal/table"
)

// ColumnNulls is the missing-value tally of one column.
type ColumnNulls struct {
	Name    string
	Missing int
	// Percent of rows missing, rounded to one decimal.
	Percent float64
}

// NullReport lists columns with at least one missing value, most affected first.
type NullReport []ColumnNulls

// Total sums the missing counts of all reported columns.
func (r NullReport) Total() int {
	n := 0
	for _, c := range r {
		n += c.Missing
	}
	return n
}

// ColumnNulls counts missing values per column and prints how many columns are affected.
func (a *Analyzer) ColumnNulls(t *table.Table) (NullReport, error) {
	rows := t.NumRows()
	if rows == 0 {
		return nil, ErrEmptyTable
	}
	var rep NullReport
	for _, c := range t.Columns() {
		miss := c.Missing()
		if miss == 0 {
			continue
		}
		rep = append(rep, ColumnNulls{
			Name:    c.Name,
			Missing: miss,
			Percent: round(100*float64(miss)/float64(rows), 1),
		})
	}
	// Same denominator for every column, so ordering by count orders by unrounded percent.
	sort.SliceStable(rep, func(i, j int) bool { return rep[i].Missing > rep[j].Missing })
	fmt.Fprintf(a.out, "The table has %d columns.\nThere are %d columns with missing values.\n", t.NumCols(), len(rep))
	a.log.Debug().Int("columns", t.NumCols()).Int("columns_with_nulls", len(rep)).Msg("column null report")
	return rep, nil
}

// rowMissing returns the number of missing cells in each row.
func rowMissing(t *table.Table) []int {
	counts := make([]int, t.NumRows())
	for _, c := range t.Columns() {
		for i, v := range c.Values {
			if table.IsMissing(v) {
				counts[i]++
			}
		}
	}
	return counts
}

// RowNullCount returns how many rows have at least one missing value and prints the
// share of rows affected.
func (a *Analyzer) RowNullCount(t *table.Table) (int, error) {
	rows := t.NumRows()
	if rows == 0 {
		return 0, ErrEmptyTable
	}
	n := 0
	for _, m := range rowMissing(t) {
		if m > 0 {
			n++
		}
	}
	fmt.Fprintf(a.out, "There are %d rows with at least one missing value.\n", n)
	fmt.Fprintf(a.out, "They represent %.2f%% of all rows.\n", 100*float64(n)/float64(rows))
	return n, nil
}

// RowNulls is the missing-value tally of one row.
type RowNulls struct {
	Row     int
	Label   string
	Missing int
}

// TopNullRows lists rows with missing values, most missing first, truncated to limit.
// A non-positive limit uses Options.TopNullRows.
func (a *Analyzer) TopNullRows(t *table.Table, limit int) []RowNulls {
	if limit <= 0 {
		limit = a.opt.TopNullRows
	}
	var out []RowNulls
	for i, m := range rowMissing(t) {
		if m > 0 {
			out = append(out, RowNulls{Row: i, Label: t.RowLabel(i), Missing: m})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Missing > out[j].Missing })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
