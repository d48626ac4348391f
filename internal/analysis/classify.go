package analysis

import "github.com/KaramelBytes/edakit/internal/table"

// Buckets partitions column names by declared kind, in declaration order.
type Buckets struct {
	Numeric     []string
	Date        []string
	Categorical []string
	Text        []string
}

// Classify buckets columns by their declared kind only; cell values are never inspected.
func Classify(t *table.Table) Buckets {
	var b Buckets
	for _, c := range t.Columns() {
		switch c.Kind.Category() {
		case table.Numeric:
			b.Numeric = append(b.Numeric, c.Name)
		case table.DateCategory:
			b.Date = append(b.Date, c.Name)
		case table.CategoricalCategory:
			b.Categorical = append(b.Categorical, c.Name)
		case table.TextCategory:
			b.Text = append(b.Text, c.Name)
		}
	}
	return b
}

// Names returns the columns in one bucket.
func (b Buckets) Names(c table.Category) []string {
	switch c {
	case table.Numeric:
		return b.Numeric
	case table.DateCategory:
		return b.Date
	case table.CategoricalCategory:
		return b.Categorical
	case table.TextCategory:
		return b.Text
	}
	return nil
}

// Count returns the number of columns in one bucket.
func (b Buckets) Count(c table.Category) int { return len(b.Names(c)) }
