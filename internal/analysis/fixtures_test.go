package analysis

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"

	"github.com/KaramelBytes/edakit/internal/table"
)

// newTestAnalyzer returns an analyzer whose printed lines and logs are captured.
func newTestAnalyzer(t *testing.T) (*Analyzer, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	opt := DefaultOptions()
	opt.Out = out
	opt.Logger = zerolog.New(logs).Level(zerolog.DebugLevel)
	return New(opt), out, logs
}

// peopleTable is the three-row example with one duplicated row.
func peopleTable() *table.Table {
	return table.MustNew(
		table.NewColumn("id", table.Integer, int64(1), int64(2), int64(2)),
		table.NewColumn("name", table.Text, "Álvaro ", "ana", "ana"),
		table.NewColumn("city", table.Categorical, "CDMX", "cdmx", "cdmx"),
	)
}

// sparseTable has missing cells spread over several rows and columns.
//
//	row | a   | b   | c    | d
//	0   | 1   | x   | nil  | p
//	1   | nil | y   | nil  | q
//	2   | 3   | nil | 2.5  | p
//	3   | 4   | x   | nil  | nil
func sparseTable() *table.Table {
	return table.MustNew(
		table.NewColumn("a", table.Integer, int64(1), nil, int64(3), int64(4)),
		table.NewColumn("b", table.Categorical, "x", "y", nil, "x"),
		table.NewColumn("c", table.Float, nil, nil, 2.5, nil),
		table.NewColumn("d", table.Text, "p", "q", "p", nil),
	)
}
