// Package normalize standardizes column names and string cells of a table in place.
//
// Each transform touches column names and the string cells of categorical and text
// columns; other cells pass through unchanged. Standardize runs them in a fixed order
// and is idempotent.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/KaramelBytes/edakit/internal/table"
)

// Transform rewrites a table in place.
type Transform func(*table.Table) error

// Pipeline is the order Standardize applies.
var Pipeline = []Transform{UnderscoreNames, Lowercase, StripAccents, Trim, CollapseSpaces}

// Standardize applies Pipeline to t.
func Standardize(t *table.Table) error {
	for _, tr := range Pipeline {
		if err := tr(t); err != nil {
			return err
		}
	}
	return nil
}

// UnderscoreNames replaces every whitespace character in column names with '_'.
// Cells are not touched.
func UnderscoreNames(t *table.Table) error {
	return t.RenameColumns(func(s string) string {
		return strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return '_'
			}
			return r
		}, s)
	})
}

// Lowercase lowercases names and string cells.
func Lowercase(t *table.Table) error {
	return apply(t, lower)
}

// StripAccents removes diacritics (á→a, ü→u, ñ→n, ...) from names and string cells and
// drops any character that still has no ASCII form.
func StripAccents(t *table.Table) error {
	return apply(t, asciiFold)
}

// Trim removes leading and trailing whitespace from names and string cells.
func Trim(t *table.Table) error {
	return apply(t, strings.TrimSpace)
}

// CollapseSpaces replaces runs of two or more spaces with a single space.
func CollapseSpaces(t *table.Table) error {
	return apply(t, collapse)
}

var multiSpace = regexp.MustCompile(` {2,}`)

func collapse(s string) string { return multiSpace.ReplaceAllString(s, " ") }

func lower(s string) string { return cases.Lower(language.Und).String(s) }

// asciiFold decomposes canonically, drops combining marks, then drops non-ASCII leftovers.
// Canonical (not compatibility) decomposition keeps the output stable under Lowercase,
// which keeps Standardize idempotent.
func asciiFold(s string) string {
	tr := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
	)
	out, _, err := transform.String(tr, s)
	if err != nil {
		return s
	}
	return out
}

// apply runs fn over names and the string cells of string-kind columns.
func apply(t *table.Table, fn func(string) string) error {
	if err := t.RenameColumns(fn); err != nil {
		return err
	}
	for _, c := range t.Columns() {
		if !c.Kind.IsString() {
			continue
		}
		for i, v := range c.Values {
			if s, ok := v.(string); ok {
				c.Values[i] = fn(s)
			}
		}
	}
	return nil
}
