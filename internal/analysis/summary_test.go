package analysis

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/edakit/internal/table"
)

func TestClassifyUsesDeclaredKindOnly(t *testing.T) {
	tbl := table.MustNew(
		table.NewColumn("n", table.Integer, int64(1)),
		table.NewColumn("zip", table.Text, "01234"),
		table.NewColumn("f", table.Float, 1.5),
		table.NewColumn("when", table.Date, time.Now()),
		table.NewColumn("g", table.Categorical, "a"),
	)
	b := Classify(tbl)
	assert.Equal(t, []string{"n", "f"}, b.Numeric)
	assert.Equal(t, []string{"when"}, b.Date)
	assert.Equal(t, []string{"g"}, b.Categorical)
	assert.Equal(t, []string{"zip"}, b.Text, "digit-only text stays text")
	assert.Equal(t, 2, b.Count(table.Numeric))
	assert.Equal(t, 1, b.Count(table.DateCategory))
}

func TestDuplicateCount(t *testing.T) {
	assert.Equal(t, 1, DuplicateCount(peopleTable()))
	assert.Equal(t, []bool{false, false, true}, DuplicateMask(peopleTable()))
	assert.Zero(t, DuplicateCount(sparseTable()))

	withMissing := table.MustNew(
		table.NewColumn("a", table.Float, math.NaN(), nil, 1.0, 1.0),
		table.NewColumn("b", table.Text, "x", "x", nil, nil),
	)
	assert.Equal(t, 2, DuplicateCount(withMissing), "missing cells compare equal")

	same := table.MustNew(table.NewColumn("a", table.Integer, int64(7), int64(7), int64(7), int64(7)))
	assert.Equal(t, same.NumRows()-1, DuplicateCount(same))

	assert.Zero(t, DuplicateCount(table.MustNew()))
}

func TestSummarize(t *testing.T) {
	a, out, _ := newTestAnalyzer(t)
	o, err := a.Summarize(sparseTable())
	require.NoError(t, err)

	assert.Equal(t, 4, o.Columns)
	assert.Equal(t, 4, o.Rows)
	assert.Equal(t, 16, o.Cells)
	assert.Equal(t, 2, o.Numeric)
	assert.Equal(t, 0, o.Date)
	assert.Equal(t, 1, o.Categorical)
	assert.Equal(t, 1, o.Text)
	assert.Equal(t, 6, o.MissingCells)
	assert.Equal(t, "37.5%", o.MissingPercent)
	assert.Equal(t, 0, o.Duplicates)
	assert.Equal(t, "0.0%", o.DuplicatePercent)
	assert.Contains(t, out.String(), "There are 4 columns with missing values.")

	ms := o.Metrics()
	require.Len(t, ms, 11)
	assert.Equal(t, Metric{Name: "Total variables", Value: "4"}, ms[0])
	assert.Equal(t, Metric{Name: "Duplicate rows (%)", Value: "0.0%"}, ms[10])
}

func TestSummarizeKeepsDuplicatePercentQuirks(t *testing.T) {
	a, _, _ := newTestAnalyzer(t)
	o, err := a.Summarize(peopleTable())
	require.NoError(t, err)
	assert.Equal(t, 9, o.Cells)
	assert.Equal(t, 1, o.Duplicates)
	// Denominator is cells, not rows, and the value is not rounded.
	assert.Equal(t, "11.11111111111111%", o.DuplicatePercent)
	assert.Equal(t, "0.0%", o.MissingPercent)

	md := o.Markdown()
	assert.Contains(t, md, "[DATASET SUMMARY]")
	assert.Contains(t, md, "| Duplicate rows | 1 |")
	v, ok := o.Table().Value("Total cells", "Result")
	require.True(t, ok)
	assert.Equal(t, "9", v)
}

func TestSummarizeEmptyTable(t *testing.T) {
	a, _, _ := newTestAnalyzer(t)
	_, err := a.Summarize(table.MustNew(table.NewColumn("a", table.Text)))
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func TestDuplicateCountSeparatorInsideCells(t *testing.T) {
	tbl := table.MustNew(
		table.NewColumn("a", table.Text, "a\x1es:b", "a"),
		table.NewColumn("b", table.Text, "c", "b\x1es:c"),
	)
	assert.Zero(t, DuplicateCount(tbl))
	assert.NotEqual(t, cellKey("a\x1es:b")+cellKey("c"), cellKey("a")+cellKey("b\x1es:c"))
}
