package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Column is a named, typed sequence of cells. A nil cell or a float NaN is missing.
type Column struct {
	Name   string
	Kind   Kind
	Values []any
}

// NewColumn builds a column from the given cells.
func NewColumn(name string, kind Kind, values ...any) *Column {
	return &Column{Name: name, Kind: kind, Values: values}
}

// Len returns the number of cells.
func (c *Column) Len() int { return len(c.Values) }

// Missing counts missing cells.
func (c *Column) Missing() int {
	n := 0
	for _, v := range c.Values {
		if IsMissing(v) {
			n++
		}
	}
	return n
}

// IsMissing reports whether v is the missing marker (nil or NaN).
func IsMissing(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(x)
	case float32:
		return math.IsNaN(float64(x))
	}
	return false
}

// Table is an ordered set of equal-length columns with unique names.
type Table struct {
	cols   []*Column
	index  map[string]int
	labels []string
}

// New validates the columns and builds a table. Columns are not copied.
func New(cols ...*Column) (*Table, error) {
	t := &Table{index: make(map[string]int, len(cols))}
	for _, c := range cols {
		if err := t.AddColumn(c); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// MustNew is New that panics on error; intended for fixtures.
func MustNew(cols ...*Column) *Table {
	t, err := New(cols...)
	if err != nil {
		panic(err)
	}
	return t
}

// AddColumn appends a column. Its length must match the existing row count.
func (t *Table) AddColumn(c *Column) error {
	if c == nil {
		return fmt.Errorf("add column: nil column")
	}
	if !c.Kind.Valid() {
		return fmt.Errorf("add column %q: invalid kind %s", c.Name, c.Kind)
	}
	if _, dup := t.index[c.Name]; dup {
		return &DuplicateColumnError{Name: c.Name}
	}
	if len(t.cols) > 0 && c.Len() != t.NumRows() {
		return fmt.Errorf("add column %q: has %d rows, table has %d", c.Name, c.Len(), t.NumRows())
	}
	t.index[c.Name] = len(t.cols)
	t.cols = append(t.cols, c)
	return nil
}

// NumRows returns the row count.
func (t *Table) NumRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}

// NumCols returns the column count.
func (t *Table) NumCols() int { return len(t.cols) }

// Columns returns the columns in declaration order.
func (t *Table) Columns() []*Column { return t.cols }

// Names returns the column names in declaration order.
func (t *Table) Names() []string {
	out := make([]string, len(t.cols))
	for i, c := range t.cols {
		out[i] = c.Name
	}
	return out
}

// Column looks a column up by name.
func (t *Table) Column(name string) (*Column, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, &MissingColumnError{Name: name}
	}
	return t.cols[i], nil
}

// Row returns the cells of row i across all columns.
func (t *Table) Row(i int) []any {
	row := make([]any, len(t.cols))
	for j, c := range t.cols {
		row[j] = c.Values[i]
	}
	return row
}

// SetLabels assigns row labels. A nil slice restores the default labels.
func (t *Table) SetLabels(labels []string) error {
	if labels != nil && len(labels) != t.NumRows() {
		return fmt.Errorf("set labels: got %d labels for %d rows", len(labels), t.NumRows())
	}
	t.labels = labels
	return nil
}

// RowLabel returns the label of row i, "row <i>" unless labels were set.
func (t *Table) RowLabel(i int) string {
	if t.labels != nil {
		return t.labels[i]
	}
	return "row " + strconv.Itoa(i)
}

// RenameColumns applies fn to every column name. On a collision the table is left unchanged.
func (t *Table) RenameColumns(fn func(string) string) error {
	names := make([]string, len(t.cols))
	index := make(map[string]int, len(t.cols))
	for i, c := range t.cols {
		n := fn(c.Name)
		if _, dup := index[n]; dup {
			return &DuplicateColumnError{Name: n}
		}
		index[n] = i
		names[i] = n
	}
	for i, c := range t.cols {
		c.Name = names[i]
	}
	t.index = index
	return nil
}

// Clone returns a deep copy of the table structure; cell values are copied by value.
func (t *Table) Clone() *Table {
	out := &Table{index: make(map[string]int, len(t.cols))}
	for i, c := range t.cols {
		vals := make([]any, len(c.Values))
		copy(vals, c.Values)
		out.cols = append(out.cols, &Column{Name: c.Name, Kind: c.Kind, Values: vals})
		out.index[c.Name] = i
	}
	if t.labels != nil {
		out.labels = append([]string(nil), t.labels...)
	}
	return out
}

// Cast converts every non-missing cell to the representation of kind and retags the column.
// Categorical and Text keep cell values as they are.
func (c *Column) Cast(kind Kind) error {
	if !kind.Valid() {
		return fmt.Errorf("cast %q: invalid kind %s", c.Name, kind)
	}
	if kind.IsString() {
		c.Kind = kind
		return nil
	}
	out := make([]any, len(c.Values))
	for i, v := range c.Values {
		if IsMissing(v) {
			out[i] = nil
			continue
		}
		cv, err := convert(v, kind)
		if err != nil {
			return &CastError{Column: c.Name, Row: i, Kind: kind, Err: err}
		}
		out[i] = cv
	}
	c.Values = out
	c.Kind = kind
	return nil
}

func convert(v any, kind Kind) (any, error) {
	switch kind {
	case Integer:
		switch x := v.(type) {
		case int64:
			return x, nil
		case int:
			return int64(x), nil
		case float64:
			if x != math.Trunc(x) {
				return nil, fmt.Errorf("%v is not integral", x)
			}
			return int64(x), nil
		case string:
			n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
			if err != nil {
				return nil, err
			}
			return n, nil
		}
	case Float:
		if f, ok := AsFloat(v); ok {
			return f, nil
		}
		if s, ok := v.(string); ok {
			return strconv.ParseFloat(strings.TrimSpace(s), 64)
		}
	case Date:
		switch x := v.(type) {
		case time.Time:
			return x, nil
		case string:
			tm, ok := ParseDate(x)
			if !ok {
				return nil, fmt.Errorf("parse %q as date", x)
			}
			return tm, nil
		}
	}
	return nil, fmt.Errorf("unsupported %T value for %s", v, kind)
}

// AsFloat widens numeric cells to float64.
func AsFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int64:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	}
	return 0, false
}
