package table

import "fmt"

// Visibility maps column keys to shown/hidden. Keys that are absent are shown.
type Visibility map[string]bool

// Clone copies v.
func (v Visibility) Clone() Visibility {
	out := make(Visibility, len(v))
	for k, shown := range v {
		out[k] = shown
	}
	return out
}

// DefaultVisibility shows every column.
func (t *Table[T]) DefaultVisibility() Visibility {
	v := make(Visibility, len(t.columns))
	for _, c := range t.columns {
		v[c.Key] = true
	}
	return v
}

// Normalize drops unknown keys from v and forces pinned columns visible.
func (t *Table[T]) Normalize(v Visibility) Visibility {
	out := t.DefaultVisibility()
	for k, shown := range v {
		c, ok := t.Column(k)
		if !ok || c.Pinned {
			continue
		}
		out[k] = shown
	}
	return out
}

// ToggleColumn flips the visibility of key and returns the new map. Pinned columns
// cannot be toggled.
func (t *Table[T]) ToggleColumn(v Visibility, key string) (Visibility, error) {
	c, ok := t.Column(key)
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, ErrUnknownColumn)
	}
	if c.Pinned {
		return nil, fmt.Errorf("%s: %w", key, ErrPinnedColumn)
	}
	out := t.Normalize(v)
	out[key] = !out[key]
	return out, nil
}

func (t *Table[T]) isVisible(v Visibility, c Column[T]) bool {
	if c.Pinned {
		return true
	}
	shown, ok := v[c.Key]
	return !ok || shown
}
