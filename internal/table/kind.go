package table

import (
	"fmt"
	"strings"
)

// Kind is the declared scalar type of a column.
type Kind uint8

const (
	Integer Kind = iota + 1
	Float
	Date
	Categorical
	Text
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Date:
		return "date"
	case Categorical:
		return "categorical"
	case Text:
		return "text"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= Integer && k <= Text
}

// IsString reports whether cells of this kind are expected to hold strings.
func (k Kind) IsString() bool {
	return k == Categorical || k == Text
}

// ParseKind accepts the String() labels plus a few common aliases.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "integer", "int", "int64":
		return Integer, nil
	case "float", "float64", "double":
		return Float, nil
	case "date", "datetime":
		return Date, nil
	case "categorical", "category":
		return Categorical, nil
	case "text", "string", "object":
		return Text, nil
	}
	return 0, fmt.Errorf("unknown column kind %q", s)
}

// Category is the type bucket a Kind belongs to.
type Category uint8

const (
	Numeric Category = iota + 1
	DateCategory
	CategoricalCategory
	TextCategory
)

func (c Category) String() string {
	switch c {
	case Numeric:
		return "numeric"
	case DateCategory:
		return "date"
	case CategoricalCategory:
		return "categorical"
	case TextCategory:
		return "text"
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// Category maps a kind onto its bucket. Integer and Float share Numeric.
func (k Kind) Category() Category {
	switch k {
	case Integer, Float:
		return Numeric
	case Date:
		return DateCategory
	case Categorical:
		return CategoricalCategory
	case Text:
		return TextCategory
	}
	panic(fmt.Sprintf("table: invalid kind %d", uint8(k)))
}
