package analysis

import (
	"sort"

	"github.com/KaramelBytes/edakit/internal/table"
)

// FrequencyEntry is one observed value with its count and share of observations.
type FrequencyEntry struct {
	Value   any
	Missing bool
	Count   int
	// Share is Count over the denominator, in [0,1].
	Share float64
	// Percent is Share*100 rounded to two decimals, e.g. "33.33%".
	Percent string
}

// IsPlaceholder reports whether the entry fills an absent rank.
func (e FrequencyEntry) IsPlaceholder() bool { return e.Count == 0 }

// FrequencyTable holds value counts ordered by count, most frequent first.
type FrequencyTable []FrequencyEntry

// Frequencies counts the values of one column. With includeMissing, missing cells form
// their own bucket and count toward the denominator; otherwise they are ignored.
// Ties keep first-encountered order. Cells equal under DuplicateMask share a bucket,
// represented by the first one seen.
func Frequencies(t *table.Table, column string, includeMissing bool) (FrequencyTable, error) {
	c, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	if t.NumRows() == 0 {
		return nil, ErrEmptyTable
	}
	return frequencies(c.Values, includeMissing), nil
}

func frequencies(values []any, includeMissing bool) FrequencyTable {
	var out FrequencyTable
	pos := make(map[string]int)
	missingPos := -1
	total := 0
	for _, v := range values {
		if table.IsMissing(v) {
			if !includeMissing {
				continue
			}
			total++
			if missingPos < 0 {
				missingPos = len(out)
				out = append(out, FrequencyEntry{Missing: true})
			}
			out[missingPos].Count++
			continue
		}
		total++
		k := cellKey(v)
		i, ok := pos[k]
		if !ok {
			i = len(out)
			pos[k] = i
			out = append(out, FrequencyEntry{Value: v})
		}
		out[i].Count++
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	for i := range out {
		out[i].Share = float64(out[i].Count) / float64(total)
		out[i].Percent = percentString(round(out[i].Share*100, 2))
	}
	return out
}

// Top returns the first n entries, padding with placeholders when fewer exist.
func (f FrequencyTable) Top(n int) []FrequencyEntry {
	out := make([]FrequencyEntry, n)
	copy(out, f)
	return out
}

// Table renders the frequency table with count and percent rows per value.
func (f FrequencyTable) Table() *ProfileTable {
	p := newProfileTable([]string{"count", "percent"})
	for _, e := range f {
		p.addVariable(formatValue(e.Value), []string{itoa(e.Count), e.Percent})
	}
	return p
}
