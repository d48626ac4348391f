package analysis

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/KaramelBytes/edakit/internal/table"
)

// DuplicateMask marks every row identical to an earlier row across all columns.
// The first occurrence is not marked. Missing cells compare equal to each other.
func DuplicateMask(t *table.Table) []bool {
	rows := t.NumRows()
	mask := make([]bool, rows)
	seen := make(map[string]struct{}, rows)
	cols := t.Columns()
	var b strings.Builder
	for i := 0; i < rows; i++ {
		b.Reset()
		for _, c := range cols {
			writeKey(&b, c.Values[i])
		}
		k := b.String()
		if _, ok := seen[k]; ok {
			mask[i] = true
			continue
		}
		seen[k] = struct{}{}
	}
	return mask
}

// DuplicateCount counts rows equal to an earlier row.
func DuplicateCount(t *table.Table) int {
	n := 0
	for _, d := range DuplicateMask(t) {
		if d {
			n++
		}
	}
	return n
}

func writeKey(b *strings.Builder, v any) {
	if table.IsMissing(v) {
		b.WriteString("\x00na")
		b.WriteByte(0x1e)
		return
	}
	switch x := v.(type) {
	case string:
		writeLenPrefixed(b, "s:", x)
	case int64:
		b.WriteString("n:")
		b.WriteString(strconv.FormatInt(x, 10))
	case float64:
		b.WriteString("n:")
		if x == math.Trunc(x) && math.Abs(x) < 1<<53 {
			b.WriteString(strconv.FormatInt(int64(x), 10))
		} else {
			b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
		}
	case time.Time:
		b.WriteString("t:")
		b.WriteString(x.UTC().Format(time.RFC3339Nano))
	default:
		writeLenPrefixed(b, fmt.Sprintf("%T:", v), fmt.Sprintf("%v", v))
	}
	b.WriteByte(0x1e)
}

// writeLenPrefixed writes tag, the byte length of s, then s, so separators inside s
// cannot shift cell boundaries.
func writeLenPrefixed(b *strings.Builder, tag, s string) {
	b.WriteString(tag)
	b.WriteString(strconv.Itoa(len(s)))
	b.WriteByte(':')
	b.WriteString(s)
}

// cellKey is the comparable form of a cell used for counting. Values that compare equal
// under DuplicateMask share a key, and unhashable cells such as slices are keyed by their
// printed form.
func cellKey(v any) string {
	var b strings.Builder
	writeKey(&b, v)
	return b.String()
}
