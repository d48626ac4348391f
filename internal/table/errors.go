package table

import "fmt"

// MissingColumnError indicates a lookup of a column name the table does not have.
type MissingColumnError struct {
	Name string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("column %q not found", e.Name)
}

// DuplicateColumnError indicates two columns would share a name.
type DuplicateColumnError struct {
	Name string
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("duplicate column name %q", e.Name)
}

// CastError reports the first cell that could not be converted to the target kind.
type CastError struct {
	Column string
	Row    int
	Kind   Kind
	Err    error
}

func (e *CastError) Error() string {
	return fmt.Sprintf("cast column %q to %s: row %d: %v", e.Column, e.Kind, e.Row, e.Err)
}

func (e *CastError) Unwrap() error { return e.Err }
