package table

import (
	"cmp"
	"strconv"
	"strings"
)

// Numeric builds a comparator over a numeric projection of the record.
func Numeric[T any](value func(T) float64) func(a, b T) int {
	return func(a, b T) int {
		return cmp.Compare(value(a), value(b))
	}
}

// Currency builds a comparator that parses the rendered cell back to a number, so
// "₹1,250.00" sorts after "₹980.00".
func Currency[T any](render func(T) string) func(a, b T) int {
	return func(a, b T) int {
		return cmp.Compare(ParseAmount(render(a)), ParseAmount(render(b)))
	}
}

// ParseAmount strips currency symbols and grouping separators and parses the rest.
// Unparseable input is 0.
func ParseAmount(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

// Query is one request against a table.
type Query struct {
	Filter     string
	Sort       SortState
	Visibility Visibility
}

// Apply filters then sorts rows.
func (t *Table[T]) Apply(rows []T, q Query) ([]T, error) {
	return t.Sort(t.Filter(rows, q.Filter), q.Sort)
}
