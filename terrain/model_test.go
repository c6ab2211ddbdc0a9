package terrain_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terrapath/terrain"
)

// TestDefaultModel checks the canonical legend: ten classes, three of them impassable.
func TestDefaultModel(t *testing.T) {
	m := terrain.DefaultModel()
	assert.Equal(t, 10, m.Len())

	passable := map[terrain.Class]terrain.Modifier{
		terrain.OpenLand:           0.2,
		terrain.RoughMeadow:        0.7,
		terrain.EasyMovementForest: 0.3,
		terrain.SlowRunForest:      0.5,
		terrain.WalkForest:         0.4,
		terrain.PavedRoad:          0.1,
		terrain.Footpath:           0.1,
	}
	for c, want := range passable {
		got, ok := m.Lookup(c)
		assert.True(t, ok, "class %s should be passable", c)
		assert.Equal(t, want, got, "class %s", c)
	}

	for _, c := range []terrain.Class{terrain.ImpassableVegetation, terrain.LakeSwampMarsh, terrain.OutOfBounds} {
		got, ok := m.Lookup(c)
		assert.False(t, ok, "class %s should be impassable", c)
		assert.Equal(t, terrain.Impassable, got)
	}
}

// TestLookup_Unknown verifies that unrecognised classes are impassable.
func TestLookup_Unknown(t *testing.T) {
	m := terrain.DefaultModel()
	got, ok := m.Lookup(terrain.Class{R: 1, G: 2, B: 3})
	assert.False(t, ok)
	assert.Equal(t, terrain.Impassable, got)

	var zero terrain.Model
	_, ok = zero.Lookup(terrain.OpenLand)
	assert.False(t, ok, "zero Model knows no classes")
}

// TestNewModel_Errors covers empty tables and out-of-range modifiers.
func TestNewModel_Errors(t *testing.T) {
	cases := []struct {
		name    string
		entries map[terrain.Class]terrain.Modifier
		err     error
	}{
		{"Empty", nil, terrain.ErrEmptyModel},
		{"Zero", map[terrain.Class]terrain.Modifier{terrain.OpenLand: 0}, terrain.ErrBadModifier},
		{"AboveOne", map[terrain.Class]terrain.Modifier{terrain.OpenLand: 1.5}, terrain.ErrBadModifier},
		{"NegativeNotSentinel", map[terrain.Class]terrain.Modifier{terrain.OpenLand: -0.5}, terrain.ErrBadModifier},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := terrain.NewModel(tc.entries)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestExtend verifies overrides produce a new model and leave the base untouched.
func TestExtend(t *testing.T) {
	base := terrain.DefaultModel()
	swamp := terrain.LakeSwampMarsh
	bridge := terrain.Class{R: 10, G: 20, B: 30}

	ext, err := base.Extend(map[terrain.Class]terrain.Modifier{swamp: 0.9, bridge: 1})
	require.NoError(t, err)
	assert.Equal(t, 11, ext.Len())

	got, ok := ext.Lookup(swamp)
	assert.True(t, ok)
	assert.Equal(t, terrain.Modifier(0.9), got)

	_, ok = base.Lookup(swamp)
	assert.False(t, ok, "base model must not change")

	_, err = base.Extend(map[terrain.Class]terrain.Modifier{bridge: 2})
	assert.ErrorIs(t, err, terrain.ErrBadModifier)
}

// TestParseClass covers valid and malformed colour strings.
func TestParseClass(t *testing.T) {
	c, err := terrain.ParseClass("#F89412")
	require.NoError(t, err)
	assert.Equal(t, terrain.OpenLand, c)
	assert.Equal(t, "#f89412", c.String())

	c, err = terrain.ParseClass("0000ff")
	require.NoError(t, err)
	assert.Equal(t, terrain.LakeSwampMarsh, c)

	for _, bad := range []string{"", "#fff", "#gggggg", "#1234567"} {
		_, err := terrain.ParseClass(bad)
		assert.ErrorIs(t, err, terrain.ErrBadClass, "input %q", bad)
	}
}

// TestClassOf drops alpha and un-premultiplies.
func TestClassOf(t *testing.T) {
	assert.Equal(t, terrain.RoughMeadow, terrain.ClassOf(color.NRGBA{R: 255, G: 192, B: 0, A: 255}))
	assert.Equal(t, terrain.Footpath, terrain.ClassOf(color.Black))
	assert.Equal(t, terrain.EasyMovementForest, terrain.ClassOf(color.White))
}

// TestClasses returns a stable, sorted listing.
func TestClasses(t *testing.T) {
	classes := terrain.DefaultModel().Classes()
	require.Len(t, classes, 10)
	assert.Equal(t, terrain.Footpath, classes[0])
	for i := 1; i < len(classes); i++ {
		assert.Less(t, classes[i-1].String(), classes[i].String())
	}
}
