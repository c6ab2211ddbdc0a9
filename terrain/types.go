// Package terrain defines terrain classifications, traversal modifiers
// and the sentinel errors of the terrain subpackage.
package terrain

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
)

// Sentinel errors for terrain model construction and parsing.
var (
	// ErrBadModifier indicates a modifier outside (0, 1] that is not the Impassable sentinel.
	ErrBadModifier = errors.New("terrain: modifier must be in (0, 1] or Impassable")
	// ErrBadClass indicates a classification string that is not of the form #RRGGBB.
	ErrBadClass = errors.New("terrain: class must be formatted as #RRGGBB")
	// ErrEmptyModel indicates a model built from zero entries.
	ErrEmptyModel = errors.New("terrain: model must contain at least one class")
)

// Modifier is the relative ease of movement through a cell, in (0, 1].
// Lower is easier. The Impassable sentinel marks cells that cannot be entered.
type Modifier float64

// Impassable is the sentinel Modifier for cells excluded from any path.
const Impassable Modifier = -1

// Passable reports whether m is a usable traversal modifier.
func (m Modifier) Passable() bool {
	return m > 0 && m <= 1
}

// Class is a terrain classification, encoded as the RGB colour of its
// pixel on the terrain raster. Alpha is ignored.
type Class struct {
	R, G, B uint8
}

// Canonical classifications of the orienteering map legend.
var (
	OpenLand             = Class{248, 148, 18}
	RoughMeadow          = Class{255, 192, 0}
	EasyMovementForest   = Class{255, 255, 255}
	SlowRunForest        = Class{2, 208, 60}
	WalkForest           = Class{2, 136, 40}
	ImpassableVegetation = Class{5, 73, 24}
	LakeSwampMarsh       = Class{0, 0, 255}
	PavedRoad            = Class{71, 51, 3}
	Footpath             = Class{0, 0, 0}
	OutOfBounds          = Class{205, 0, 101}
)

// ClassOf converts any colour to its Class, dropping alpha.
func ClassOf(c color.Color) Class {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Class{R: n.R, G: n.G, B: n.B}
}

// String formats the class as #rrggbb.
func (c Class) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseClass parses a "#RRGGBB" (or "RRGGBB") string into a Class.
func ParseClass(s string) (Class, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Class{}, fmt.Errorf("%w: %q", ErrBadClass, s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Class{}, fmt.Errorf("%w: %q: %v", ErrBadClass, s, err)
	}

	return Class{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
