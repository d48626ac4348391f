package analysis

import (
	"errors"
	"fmt"

	"github.com/KaramelBytes/edakit/internal/table"
)

// ErrEmptyTable is returned by operations whose result divides by the row or cell count
// when the table has no rows.
var ErrEmptyTable = errors.New("table has no rows")

// DegenerateColumnError marks a column with no usable values for the requested statistics.
// It is reported as a Diagnostic; profiling of other columns continues.
type DegenerateColumnError struct {
	Column string
	Kind   table.Kind
}

func (e *DegenerateColumnError) Error() string {
	return fmt.Sprintf("column %q (%s) has no non-missing values; statistics undefined", e.Column, e.Kind)
}

// Diagnostic records a per-column problem collected while profiling.
type Diagnostic struct {
	Column string
	Err    error
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %v", d.Column, d.Err)
}

func (d Diagnostic) Unwrap() error { return d.Err }
