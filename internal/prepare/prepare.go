// Package prepare turns a raw table into an analysis-ready one with a per-dataset recipe.
//
// A Recipe is a template: copy DefaultRecipe and change the column names for a dataset of
// a different shape. Steps always run in the same order: typo fixes on the raw column
// names, the full normalize pipeline, categorical coercion, then composite splits.
package prepare

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/KaramelBytes/edakit/internal/normalize"
	"github.com/KaramelBytes/edakit/internal/table"
)

// TypoFix replaces the whole cell with Correction when it contains Match, ignoring case.
type TypoFix struct {
	Column     string `mapstructure:"column" yaml:"column"`
	Match      string `mapstructure:"match" yaml:"match"`
	Correction string `mapstructure:"correction" yaml:"correction"`
}

// Split breaks a "a,b" string column on its first comma into two float columns.
type Split struct {
	Column string `mapstructure:"column" yaml:"column"`
	First  string `mapstructure:"first" yaml:"first"`
	Second string `mapstructure:"second" yaml:"second"`
}

// Recipe lists the corrections to apply. Categorical and Splits name columns after
// normalization; Typos name them before it.
type Recipe struct {
	Typos       []TypoFix `mapstructure:"typos" yaml:"typos"`
	Categorical []string  `mapstructure:"categorical" yaml:"categorical"`
	Splits      []Split   `mapstructure:"splits" yaml:"splits"`
}

// DefaultRecipe is the preparation of the Mexico City water consumption dataset.
func DefaultRecipe() Recipe {
	return Recipe{
		Typos: []TypoFix{{Column: "nomgeo", Match: "Talpan", Correction: "Tlalpan"}},
		Categorical: []string{
			"bimestre", "indice_des", "nomgeo", "alcaldia", "colonia", "gid",
		},
		Splits: []Split{{Column: "geo_point", First: "latitud", Second: "longitud"}},
	}
}

// Prepare applies r to a copy of t and returns the copy. t is never modified.
func Prepare(t *table.Table, r Recipe, logger zerolog.Logger) (*table.Table, error) {
	out := t.Clone()
	for _, fix := range r.Typos {
		n, err := fixTypo(out, fix)
		if err != nil {
			return nil, fmt.Errorf("typo fix: %w", err)
		}
		logger.Debug().Str("column", fix.Column).Str("match", fix.Match).Int("cells", n).Msg("typo corrected")
	}
	if err := normalize.Standardize(out); err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	for _, name := range r.Categorical {
		c, err := out.Column(name)
		if err != nil {
			return nil, fmt.Errorf("categorical: %w", err)
		}
		if err := c.Cast(table.Categorical); err != nil {
			return nil, fmt.Errorf("categorical: %w", err)
		}
	}
	for _, s := range r.Splits {
		if err := split(out, s); err != nil {
			return nil, fmt.Errorf("split %s: %w", s.Column, err)
		}
		logger.Debug().Str("column", s.Column).Str("first", s.First).Str("second", s.Second).Msg("column split")
	}
	logger.Info().Int("rows", out.NumRows()).Int("columns", out.NumCols()).Msg("dataset prepared")
	return out, nil
}

func fixTypo(t *table.Table, fix TypoFix) (int, error) {
	c, err := t.Column(fix.Column)
	if err != nil {
		return 0, err
	}
	match := strings.ToLower(fix.Match)
	n := 0
	for i, v := range c.Values {
		s, ok := v.(string)
		if !ok || !strings.Contains(strings.ToLower(s), match) {
			continue
		}
		c.Values[i] = fix.Correction
		n++
	}
	return n, nil
}

// split writes the two halves into s.First and s.Second, replacing existing columns of
// those names. A cell without a comma leaves the second half missing.
func split(t *table.Table, s Split) error {
	src, err := t.Column(s.Column)
	if err != nil {
		return err
	}
	first := make([]any, src.Len())
	second := make([]any, src.Len())
	for i, v := range src.Values {
		if table.IsMissing(v) {
			continue
		}
		str, ok := v.(string)
		if !ok {
			return &table.CastError{Column: s.Column, Row: i, Kind: table.Float, Err: fmt.Errorf("not a string: %v", v)}
		}
		a, b, found := strings.Cut(str, ",")
		if first[i], err = parseHalf(a); err != nil {
			return &table.CastError{Column: s.First, Row: i, Kind: table.Float, Err: err}
		}
		if !found {
			continue
		}
		if second[i], err = parseHalf(b); err != nil {
			return &table.CastError{Column: s.Second, Row: i, Kind: table.Float, Err: err}
		}
	}
	if err := setColumn(t, s.First, first); err != nil {
		return err
	}
	return setColumn(t, s.Second, second)
}

func parseHalf(s string) (any, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func setColumn(t *table.Table, name string, values []any) error {
	if c, err := t.Column(name); err == nil {
		c.Kind = table.Float
		c.Values = values
		return nil
	}
	return t.AddColumn(table.NewColumn(name, table.Float, values...))
}
