package analysis

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/edakit/internal/table"
)

// Profiles holds the per-variable profiles of a table, one group per type bucket.
type Profiles struct {
	Buckets     Buckets
	Numeric     []NumericProfile
	Categorical []CategoricalProfile
	Text        []TextProfile
	// Diagnostics collects per-column problems; the affected columns may be absent above.
	Diagnostics []Diagnostic
}

// ProfileVariables classifies the table once and runs each bucket through its profiler.
// Date columns are classified but not profiled.
func (a *Analyzer) ProfileVariables(t *table.Table) (*Profiles, error) {
	if t.NumRows() == 0 {
		return nil, ErrEmptyTable
	}
	b := Classify(t)
	out := &Profiles{Buckets: b}
	for _, cat := range []table.Category{table.Numeric, table.DateCategory, table.CategoricalCategory, table.TextCategory} {
		names := b.Names(cat)
		if len(names) == 0 {
			continue
		}
		var (
			diags []Diagnostic
			err   error
		)
		switch cat {
		case table.Numeric:
			out.Numeric, diags, err = a.ProfileNumeric(t, names)
		case table.CategoricalCategory:
			out.Categorical, diags, err = a.ProfileCategorical(t, names)
		case table.TextCategory:
			out.Text, diags, err = a.ProfileText(t, names)
		case table.DateCategory:
			a.log.Debug().Strs("columns", names).Msg("date columns are not profiled")
		}
		if err != nil {
			return nil, fmt.Errorf("profile %s columns: %w", cat, err)
		}
		out.Diagnostics = append(out.Diagnostics, diags...)
	}
	a.log.Info().
		Int("numeric", len(out.Numeric)).
		Int("categorical", len(out.Categorical)).
		Int("text", len(out.Text)).
		Int("diagnostics", len(out.Diagnostics)).
		Msg("variables profiled")
	return out, nil
}

// Markdown renders all three profile groups plus any diagnostics.
func (p *Profiles) Markdown() string {
	var b strings.Builder
	b.WriteString("[NUMERIC VARIABLES]\n")
	if len(p.Numeric) == 0 {
		b.WriteString("No numeric variables.\n")
	} else {
		b.WriteString(NumericTable(p.Numeric).Markdown())
	}
	b.WriteString("\n[CATEGORICAL VARIABLES]\n")
	if len(p.Categorical) == 0 {
		b.WriteString("No categorical variables.\n")
	} else {
		b.WriteString(CategoricalTable(p.Categorical).Markdown())
	}
	b.WriteString("\n[TEXT VARIABLES]\n")
	if len(p.Text) == 0 {
		b.WriteString("No text variables.\n")
	} else {
		b.WriteString(TextTable(p.Text).Markdown())
	}
	if len(p.Diagnostics) > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, d := range p.Diagnostics {
			b.WriteString("- ")
			b.WriteString(d.Error())
			b.WriteString("\n")
		}
	}
	return b.String()
}

// lookup resolves every name before any work starts so a bad name fails fast.
func lookup(t *table.Table, names []string) ([]*table.Column, error) {
	cols := make([]*table.Column, 0, len(names))
	for _, n := range names {
		c, err := t.Column(n)
		if err != nil {
			return nil, err
		}
		cols = append(cols, c)
	}
	return cols, nil
}

func (a *Analyzer) diagnose(column string, err error) Diagnostic {
	a.log.Warn().Str("column", column).Err(err).Msg("column profiling issue")
	return Diagnostic{Column: column, Err: err}
}
