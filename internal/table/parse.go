package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// NumberFormat describes locale separators for numeric parsing.
// Zero values auto-detect per value.
type NumberFormat struct {
	Decimal   rune
	Thousands rune
}

// FromRecords builds a table from string records, parsing each cell according to the
// declared kind of its column. Empty (whitespace-only) cells are missing.
func FromRecords(header []string, kinds []Kind, records [][]string, nf NumberFormat) (*Table, error) {
	if len(header) != len(kinds) {
		return nil, fmt.Errorf("from records: %d names for %d kinds", len(header), len(kinds))
	}
	cols := make([]*Column, len(header))
	for j := range header {
		cols[j] = &Column{Name: header[j], Kind: kinds[j], Values: make([]any, len(records))}
	}
	for i, rec := range records {
		if len(rec) > len(header) {
			return nil, fmt.Errorf("from records: row %d has %d fields, want %d", i, len(rec), len(header))
		}
		for j, c := range cols {
			raw := ""
			if j < len(rec) {
				raw = rec[j]
			}
			v, err := parseCell(raw, c.Kind, nf)
			if err != nil {
				return nil, &CastError{Column: c.Name, Row: i, Kind: c.Kind, Err: err}
			}
			c.Values[i] = v
		}
	}
	return New(cols...)
}

func parseCell(raw string, kind Kind, nf NumberFormat) (any, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	switch kind {
	case Integer:
		f, ok := ParseNumber(raw, nf)
		if !ok || f != math.Trunc(f) {
			return nil, fmt.Errorf("parse %q as integer", raw)
		}
		return int64(f), nil
	case Float:
		f, ok := ParseNumber(raw, nf)
		if !ok {
			return nil, fmt.Errorf("parse %q as float", raw)
		}
		return f, nil
	case Date:
		t, ok := ParseDate(strings.TrimSpace(raw))
		if !ok {
			return nil, fmt.Errorf("parse %q as date", raw)
		}
		return t, nil
	case Categorical, Text:
		return raw, nil
	}
	return nil, fmt.Errorf("invalid kind %s", kind)
}

var dateLayouts = []string{
	time.RFC3339, "2006-01-02", "2006/01/02", "02/01/2006", "01/02/2006",
	"2006-01-02 15:04", "2006-01-02 15:04:05", "1/2/2006 15:04", "1/2/2006 15:04:05",
}

// ParseDate tries the supported layouts in order.
func ParseDate(s string) (time.Time, bool) {
	for _, l := range dateLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseNumber parses a locale-formatted number such as "1.000,5", "1,000.5" or "12%".
func ParseNumber(s string, nf NumberFormat) (float64, bool) {
	raw := strings.TrimSpace(s)
	raw = strings.ReplaceAll(raw, "%", "")
	raw = strings.ReplaceAll(raw, "\u00A0", " ")
	raw = strings.TrimSpace(raw)
	dec := nf.Decimal
	thou := nf.Thousands
	if dec == 0 {
		cpos := strings.LastIndex(raw, ",")
		dpos := strings.LastIndex(raw, ".")
		switch {
		case cpos >= 0 && dpos >= 0:
			if cpos > dpos {
				dec, thou = ',', '.'
			} else {
				dec, thou = '.', ','
			}
		case cpos >= 0:
			dec = ','
		default:
			dec = '.'
		}
	}
	if thou == 0 {
		for _, sep := range []rune{',', '.', ' '} {
			if sep != dec {
				raw = strings.ReplaceAll(raw, string(sep), "")
			}
		}
	} else if thou != dec {
		raw = strings.ReplaceAll(raw, string(thou), "")
	}
	if dec != '.' {
		raw = strings.ReplaceAll(raw, string(dec), ".")
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
