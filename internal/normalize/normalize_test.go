package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/edakit/internal/table"
)

func peopleTable() *table.Table {
	return table.MustNew(
		table.NewColumn("id", table.Integer, int64(1), int64(2), int64(2)),
		table.NewColumn("name", table.Text, "Álvaro ", "ana", "ana"),
		table.NewColumn("city", table.Categorical, "CDMX", "cdmx", "cdmx"),
	)
}

func values(t *testing.T, tbl *table.Table, name string) []any {
	t.Helper()
	c, err := tbl.Column(name)
	require.NoError(t, err)
	return c.Values
}

func TestStandardizePeople(t *testing.T) {
	tbl := peopleTable()
	require.NoError(t, Standardize(tbl))

	assert.Equal(t, []any{"alvaro", "ana", "ana"}, values(t, tbl, "name"))
	assert.Equal(t, []any{"cdmx", "cdmx", "cdmx"}, values(t, tbl, "city"))
	assert.Equal(t, []any{int64(1), int64(2), int64(2)}, values(t, tbl, "id"))
}

func TestStandardizeIsIdempotent(t *testing.T) {
	tbl := table.MustNew(
		table.NewColumn("Código  Postal", table.Text, "  Ñandú   Güero ", nil, "ÀÉÎÕÜ"),
		table.NewColumn("Alcaldía", table.Categorical, "Álvaro Obregón", "TLALPAN ", nil),
	)
	require.NoError(t, Standardize(tbl))
	first := tbl.Clone()
	require.NoError(t, Standardize(tbl))

	assert.Equal(t, first.Names(), tbl.Names())
	for _, name := range tbl.Names() {
		a, _ := first.Column(name)
		b, _ := tbl.Column(name)
		assert.Equal(t, a.Values, b.Values, name)
	}
	assert.Equal(t, []string{"codigo__postal", "alcaldia"}, tbl.Names())
	assert.Equal(t, []any{"nandu guero", nil, "aeiou"}, values(t, tbl, "codigo__postal"))
	assert.Equal(t, []any{"alvaro obregon", "tlalpan", nil}, values(t, tbl, "alcaldia"))
}

func TestStripAccents(t *testing.T) {
	cases := map[string]string{
		"á": "a", "é": "e", "í": "i", "ó": "o", "ú": "u",
		"Á": "A", "É": "E", "Í": "I", "Ó": "O", "Ú": "U",
		"ü": "u", "Ü": "U", "ñ": "n", "Ñ": "N",
		"ç":  "c",
		"€5": "5",
	}
	for in, want := range cases {
		assert.Equal(t, want, asciiFold(in), in)
	}
}

func TestUnderscoreNamesOnlyTouchesNames(t *testing.T) {
	tbl := table.MustNew(table.NewColumn("first name\tx", table.Text, "a b"))
	require.NoError(t, UnderscoreNames(tbl))
	assert.Equal(t, []string{"first_name_x"}, tbl.Names())
	assert.Equal(t, []any{"a b"}, values(t, tbl, "first_name_x"))
}

func TestTransformsSkipNonStringCells(t *testing.T) {
	tbl := table.MustNew(
		table.NewColumn("Mixed", table.Text, "  A  B ", int64(3), nil),
		table.NewColumn("F", table.Float, 1.5, nil, 2.0),
	)
	require.NoError(t, Lowercase(tbl))
	require.NoError(t, Trim(tbl))
	require.NoError(t, CollapseSpaces(tbl))
	assert.Equal(t, []any{"a b", int64(3), nil}, values(t, tbl, "mixed"))
	assert.Equal(t, []any{1.5, nil, 2.0}, values(t, tbl, "f"))
}

func TestLowercaseNameCollision(t *testing.T) {
	tbl := table.MustNew(
		table.NewColumn("A", table.Text, "x"),
		table.NewColumn("a", table.Text, "y"),
	)
	var dup *table.DuplicateColumnError
	assert.ErrorAs(t, Lowercase(tbl), &dup)
	assert.Equal(t, []string{"A", "a"}, tbl.Names())
}
