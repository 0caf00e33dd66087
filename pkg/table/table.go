// Package table is the filter/sort/column-visibility/export engine shared by every
// admin list view.
package table

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ActionsKey is the conventional key of the row-actions column.
const ActionsKey = "actions"

var (
	ErrUnknownColumn   = errors.New("unknown column")
	ErrPinnedColumn    = errors.New("column cannot be hidden")
	ErrDuplicateColumn = errors.New("duplicate column key")
	ErrNotSortable     = errors.New("column is not sortable")
)

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection maps free text to a Direction, defaulting to Asc.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), string(Desc)) {
		return Desc
	}
	return Asc
}

// SortState is the {key, direction} pair set by clicking a column header.
type SortState struct {
	Key       string    `json:"key"`
	Direction Direction `json:"direction"`
}

// Click returns the state after clicking the header of key: the same key flips the
// direction, a different key starts ascending.
func (s SortState) Click(key string) SortState {
	if s.Key == key {
		if s.Direction == Asc {
			return SortState{Key: key, Direction: Desc}
		}
		return SortState{Key: key, Direction: Asc}
	}
	return SortState{Key: key, Direction: Asc}
}

// IsZero reports whether no sort is set.
func (s SortState) IsZero() bool {
	return s.Key == ""
}

// Column describes one column of a Table.
type Column[T any] struct {
	Key   string
	Title string
	// Value renders the cell. Nil for action columns.
	Value func(T) string
	// Compare overrides the default lowercase string comparison. It returns <0, 0, >0.
	Compare func(a, b T) int
	// Pinned columns are always visible.
	Pinned bool
	// Action columns hold row controls, not data. They are skipped by filter and export.
	Action bool
}

// ColumnInfo is the serialisable description of a column.
type ColumnInfo struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	Visible  bool   `json:"visible"`
	Pinned   bool   `json:"pinned"`
	Sortable bool   `json:"sortable"`
}

// Table is a set of column descriptors over records of type T.
type Table[T any] struct {
	columns []Column[T]
	index   map[string]int
}

// New builds a Table. Column keys must be unique. A column with no Value must be an Action.
func New[T any](columns ...Column[T]) (*Table[T], error) {
	t := &Table[T]{
		columns: make([]Column[T], 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	for _, c := range columns {
		if c.Key == "" {
			return nil, fmt.Errorf("column with empty key: %w", ErrUnknownColumn)
		}
		if _, dup := t.index[c.Key]; dup {
			return nil, fmt.Errorf("%s: %w", c.Key, ErrDuplicateColumn)
		}
		if c.Value == nil && !c.Action {
			return nil, fmt.Errorf("column %s has no value extractor", c.Key)
		}
		t.index[c.Key] = len(t.columns)
		t.columns = append(t.columns, c)
	}
	return t, nil
}

// MustNew is New for static table definitions.
func MustNew[T any](columns ...Column[T]) *Table[T] {
	t, err := New(columns...)
	if err != nil {
		panic(err)
	}
	return t
}

// Columns returns the column descriptors in display order.
func (t *Table[T]) Columns() []Column[T] {
	out := make([]Column[T], len(t.columns))
	copy(out, t.columns)
	return out
}

// Column looks up a column by key.
func (t *Table[T]) Column(key string) (Column[T], bool) {
	i, ok := t.index[key]
	if !ok {
		return Column[T]{}, false
	}
	return t.columns[i], true
}

// Info describes the columns under the given visibility.
func (t *Table[T]) Info(v Visibility) []ColumnInfo {
	out := make([]ColumnInfo, 0, len(t.columns))
	for _, c := range t.columns {
		out = append(out, ColumnInfo{
			Key:      c.Key,
			Title:    c.Title,
			Visible:  t.isVisible(v, c),
			Pinned:   c.Pinned,
			Sortable: !c.Action,
		})
	}
	return out
}

// Filter keeps the records where some value column contains query, case-insensitively.
// Hidden columns still take part. Whitespace in the query is significant. Only the
// empty query keeps everything.
func (t *Table[T]) Filter(rows []T, query string) []T {
	needle := strings.ToLower(query)
	if needle == "" {
		out := make([]T, len(rows))
		copy(out, rows)
		return out
	}

	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if t.matches(row, needle) {
			out = append(out, row)
		}
	}
	return out
}

func (t *Table[T]) matches(row T, needle string) bool {
	for _, c := range t.columns {
		if c.Action {
			continue
		}
		if strings.Contains(strings.ToLower(c.Value(row)), needle) {
			return true
		}
	}
	return false
}

// Sort returns a stably sorted copy of rows. A zero SortState leaves the order unchanged.
func (t *Table[T]) Sort(rows []T, s SortState) ([]T, error) {
	out := make([]T, len(rows))
	copy(out, rows)
	if s.IsZero() {
		return out, nil
	}

	c, ok := t.Column(s.Key)
	if !ok {
		return nil, fmt.Errorf("%s: %w", s.Key, ErrUnknownColumn)
	}
	if c.Action {
		return nil, fmt.Errorf("%s: %w", s.Key, ErrNotSortable)
	}

	cmp := c.Compare
	if cmp == nil {
		cmp = func(a, b T) int {
			return strings.Compare(strings.ToLower(c.Value(a)), strings.ToLower(c.Value(b)))
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if s.Direction == Desc {
			return cmp(out[i], out[j]) > 0
		}
		return cmp(out[i], out[j]) < 0
	})
	return out, nil
}

// Cells renders the visible, non-action cells of rows, in column order.
func (t *Table[T]) Cells(rows []T, v Visibility) [][]string {
	cols := t.dataColumns(v)
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, 0, len(cols))
		for _, c := range cols {
			cells = append(cells, c.Value(row))
		}
		out = append(out, cells)
	}
	return out
}

// Records renders each row as a key → cell map of its visible, non-action columns.
func (t *Table[T]) Records(rows []T, v Visibility) []map[string]string {
	cols := t.dataColumns(v)
	out := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		rec := make(map[string]string, len(cols))
		for _, c := range cols {
			rec[c.Key] = c.Value(row)
		}
		out = append(out, rec)
	}
	return out
}

// Headers returns the titles of the visible, non-action columns.
func (t *Table[T]) Headers(v Visibility) []string {
	cols := t.dataColumns(v)
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		out = append(out, c.Title)
	}
	return out
}

func (t *Table[T]) dataColumns(v Visibility) []Column[T] {
	out := make([]Column[T], 0, len(t.columns))
	for _, c := range t.columns {
		if c.Action || !t.isVisible(v, c) {
			continue
		}
		out = append(out, c)
	}
	return out
}
