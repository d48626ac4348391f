package table

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRecordsParsesDeclaredKinds(t *testing.T) {
	header := []string{"id", "score", "when", "group", "note"}
	kinds := []Kind{Integer, Float, Date, Categorical, Text}
	records := [][]string{
		{"1", "1.000,5", "2021-03-04", "A", "first"},
		{"2", "", "04/03/2021", "B", " second "},
		{"3", "0,25"},
	}

	tbl, err := FromRecords(header, kinds, records, NumberFormat{Decimal: ',', Thousands: '.'})
	require.NoError(t, err)
	require.Equal(t, 3, tbl.NumRows())
	require.Equal(t, 5, tbl.NumCols())

	score, err := tbl.Column("score")
	require.NoError(t, err)
	assert.Equal(t, 1000.5, score.Values[0])
	assert.Nil(t, score.Values[1])
	assert.Equal(t, 0.25, score.Values[2])
	assert.Equal(t, 1, score.Missing())

	when, _ := tbl.Column("when")
	assert.Equal(t, time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC), when.Values[0])
	assert.Nil(t, when.Values[2])

	note, _ := tbl.Column("note")
	assert.Equal(t, " second ", note.Values[1], "string cells are kept verbatim")
}

func TestFromRecordsRejectsBadCell(t *testing.T) {
	_, err := FromRecords([]string{"n"}, []Kind{Integer}, [][]string{{"1"}, {"x"}}, NumberFormat{})
	var ce *CastError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "n", ce.Column)
	assert.Equal(t, 1, ce.Row)
}

func TestParseNumberAutoDetect(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1.000,5", 1000.5},
		{"1,000.5", 1000.5},
		{"0,5", 0.5},
		{"12%", 12},
		{"-99.13", -99.13},
		{"1e3", 1000},
	}
	for _, tc := range cases {
		got, ok := ParseNumber(tc.in, NumberFormat{})
		require.True(t, ok, tc.in)
		assert.InDelta(t, tc.want, got, 1e-9, tc.in)
	}
	_, ok := ParseNumber("abc", NumberFormat{})
	assert.False(t, ok)
}

func TestColumnLookupFailsFast(t *testing.T) {
	tbl := MustNew(NewColumn("a", Integer, int64(1)))
	_, err := tbl.Column("b")
	var mc *MissingColumnError
	require.True(t, errors.As(err, &mc))
	assert.Equal(t, "b", mc.Name)
}

func TestNewValidatesShape(t *testing.T) {
	_, err := New(NewColumn("a", Integer, int64(1)), NewColumn("b", Text, "x", "y"))
	require.Error(t, err)

	_, err = New(NewColumn("a", Integer, int64(1)), NewColumn("a", Text, "x"))
	var dup *DuplicateColumnError
	require.ErrorAs(t, err, &dup)

	_, err = New(NewColumn("a", Kind(0), int64(1)))
	require.Error(t, err)
}

func TestRenameColumnsCollisionLeavesTableUntouched(t *testing.T) {
	tbl := MustNew(NewColumn("Name", Text, "x"), NewColumn("name", Text, "y"))
	err := tbl.RenameColumns(func(s string) string { return "name" })
	var dup *DuplicateColumnError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, []string{"Name", "name"}, tbl.Names())

	require.NoError(t, tbl.RenameColumns(func(s string) string { return s + "_x" }))
	assert.Equal(t, []string{"Name_x", "name_x"}, tbl.Names())
	_, err = tbl.Column("Name_x")
	assert.NoError(t, err)
}

func TestCloneIsIndependent(t *testing.T) {
	tbl := MustNew(NewColumn("a", Text, "x", "y"))
	require.NoError(t, tbl.SetLabels([]string{"r1", "r2"}))
	cp := tbl.Clone()
	c, _ := cp.Column("a")
	c.Values[0] = "changed"
	require.NoError(t, cp.RenameColumns(func(string) string { return "b" }))

	orig, err := tbl.Column("a")
	require.NoError(t, err)
	assert.Equal(t, "x", orig.Values[0])
	assert.Equal(t, "r2", cp.RowLabel(1))
}

func TestRowLabelDefault(t *testing.T) {
	tbl := MustNew(NewColumn("a", Text, "x", "y"))
	assert.Equal(t, "row 1", tbl.RowLabel(1))
	assert.Equal(t, []any{"y"}, tbl.Row(1))
	assert.Error(t, tbl.SetLabels([]string{"only-one"}))
}

func TestCast(t *testing.T) {
	c := NewColumn("lat", Text, " 19.43", nil, "-99.1")
	require.NoError(t, c.Cast(Float))
	assert.Equal(t, Float, c.Kind)
	assert.Equal(t, []any{19.43, nil, -99.1}, c.Values)

	c = NewColumn("n", Float, 1.0, math.NaN(), 3.0)
	require.NoError(t, c.Cast(Integer))
	assert.Equal(t, []any{int64(1), nil, int64(3)}, c.Values)

	c = NewColumn("g", Text, "a", int64(2))
	require.NoError(t, c.Cast(Categorical))
	assert.Equal(t, []any{"a", int64(2)}, c.Values)

	c = NewColumn("bad", Text, "1.5", "nope")
	var ce *CastError
	require.ErrorAs(t, c.Cast(Float), &ce)
	assert.Equal(t, 1, ce.Row)
	assert.Equal(t, Text, c.Kind, "failed cast keeps the column unchanged")
}

func TestIsMissing(t *testing.T) {
	assert.True(t, IsMissing(nil))
	assert.True(t, IsMissing(math.NaN()))
	assert.False(t, IsMissing(""))
	assert.False(t, IsMissing(0.0))
}

func TestKindCategory(t *testing.T) {
	assert.Equal(t, Numeric, Integer.Category())
	assert.Equal(t, Numeric, Float.Category())
	assert.Equal(t, DateCategory, Date.Category())
	assert.Equal(t, CategoricalCategory, Categorical.Category())
	assert.Equal(t, TextCategory, Text.Category())

	k, err := ParseKind("category")
	require.NoError(t, err)
	assert.Equal(t, Categorical, k)
	_, err = ParseKind("blob")
	assert.Error(t, err)
}
