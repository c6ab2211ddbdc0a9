// Package terrain maps terrain classifications to traversal modifiers.
//
// A Model is an immutable lookup table built once per run and shared by
// reference with the cost model and the search. Unknown classes and
// classes mapped to Impassable are never entered.
package terrain

import (
	"fmt"
	"sort"
)

// Model is an immutable Class → Modifier table.
// The zero value is an empty model in which every class is impassable.
type Model struct {
	table map[Class]Modifier
}

// NewModel validates entries and returns a Model holding a private copy.
// Returns ErrEmptyModel for no entries and ErrBadModifier for any modifier
// that is neither in (0, 1] nor Impassable.
// Complexity: O(n).
func NewModel(entries map[Class]Modifier) (*Model, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyModel
	}
	table := make(map[Class]Modifier, len(entries))
	for c, m := range entries {
		if m != Impassable && !m.Passable() {
			return nil, fmt.Errorf("%w: %s=%g", ErrBadModifier, c, float64(m))
		}
		table[c] = m
	}

	return &Model{table: table}, nil
}

// DefaultModel returns the ten canonical classes of the orienteering legend.
func DefaultModel() *Model {
	return &Model{table: map[Class]Modifier{
		OpenLand:             0.2,
		RoughMeadow:          0.7,
		EasyMovementForest:   0.3,
		SlowRunForest:        0.5,
		WalkForest:           0.4,
		ImpassableVegetation: Impassable,
		LakeSwampMarsh:       Impassable,
		PavedRoad:            0.1,
		Footpath:             0.1,
		OutOfBounds:          Impassable,
	}}
}

// Extend returns a new Model with overrides applied on top of m.
// m itself is left untouched.
func (m *Model) Extend(overrides map[Class]Modifier) (*Model, error) {
	merged := make(map[Class]Modifier, len(m.table)+len(overrides))
	for c, v := range m.table {
		merged[c] = v
	}
	for c, v := range overrides {
		merged[c] = v
	}

	return NewModel(merged)
}

// Lookup returns the modifier for c and whether c may be entered.
// Unknown classes report (Impassable, false).
func (m *Model) Lookup(c Class) (Modifier, bool) {
	v, ok := m.table[c]
	if !ok || !v.Passable() {
		return Impassable, false
	}

	return v, true
}

// Len returns the number of known classes.
func (m *Model) Len() int { return len(m.table) }

// Classes returns the known classes sorted by their #rrggbb form.
func (m *Model) Classes() []Class {
	out := make([]Class, 0, len(m.table))
	for c := range m.table {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })

	return out
}
