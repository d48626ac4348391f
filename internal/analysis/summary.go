package analysis

import "github.com/KaramelBytes/edakit/internal/table"

// Overview is the dataset-level profile.
type Overview struct {
	Columns int
	Rows    int
	Cells   int

	Numeric     int
	Date        int
	Categorical int
	Text        int

	MissingCells int
	// MissingPercent is missing cells over total cells, one decimal, e.g. "8.3%".
	MissingPercent string
	Duplicates     int
	// DuplicatePercent is duplicate rows over total cells (not rows), unrounded.
	DuplicatePercent string
}

// Metric is one labelled row of the overview.
type Metric struct {
	Name  string
	Value string
}

// Summarize builds the dataset overview. It reuses ColumnNulls, so the column null
// summary lines are printed as well.
func (a *Analyzer) Summarize(t *table.Table) (*Overview, error) {
	nulls, err := a.ColumnNulls(t)
	if err != nil {
		return nil, err
	}
	b := Classify(t)
	o := &Overview{
		Columns:     t.NumCols(),
		Rows:        t.NumRows(),
		Numeric:     b.Count(table.Numeric),
		Date:        b.Count(table.DateCategory),
		Categorical: b.Count(table.CategoricalCategory),
		Text:        b.Count(table.TextCategory),
	}
	o.Cells = o.Columns * o.Rows
	o.MissingCells = nulls.Total()
	o.MissingPercent = percentString(round(float64(o.MissingCells)/float64(o.Cells)*100, 1))
	o.Duplicates = DuplicateCount(t)
	o.DuplicatePercent = percentString(float64(o.Duplicates) / float64(o.Cells) * 100)
	a.log.Debug().
		Int("rows", o.Rows).
		Int("columns", o.Columns).
		Int("missing", o.MissingCells).
		Int("duplicates", o.Duplicates).
		Msg("dataset summarized")
	return o, nil
}

// Metrics returns the overview rows in their fixed order.
func (o *Overview) Metrics() []Metric {
	return []Metric{
		{"Total variables", itoa(o.Columns)},
		{"Observations", itoa(o.Rows)},
		{"Total cells", itoa(o.Cells)},
		{"Numeric variables", itoa(o.Numeric)},
		{"Date variables", itoa(o.Date)},
		{"Categorical variables", itoa(o.Categorical)},
		{"Text variables", itoa(o.Text)},
		{"Missing values", itoa(o.MissingCells)},
		{"Missing values (%)", o.MissingPercent},
		{"Duplicate rows", itoa(o.Duplicates)},
		{"Duplicate rows (%)", o.DuplicatePercent},
	}
}

// Table renders the overview as a single-column profile table.
func (o *Overview) Table() *ProfileTable {
	ms := o.Metrics()
	names := make([]string, len(ms))
	vals := make([]string, len(ms))
	for i, m := range ms {
		names[i] = m.Name
		vals[i] = m.Value
	}
	p := newProfileTable(names)
	p.addVariable("Result", vals)
	return p
}

// Markdown renders the overview under a [DATASET SUMMARY] header.
func (o *Overview) Markdown() string {
	return "[DATASET SUMMARY]\n" + o.Table().Markdown()
}
