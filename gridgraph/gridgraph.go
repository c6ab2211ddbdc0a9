// Package gridgraph provides utilities to treat a rasterised terrain, a
// grid of classification colours aligned with a grid of elevation samples,
// as an implicit 4-connected graph. It supports:
//
//   - Validation and deep copy of both layers
//   - Bounds checks and orthogonal neighbour enumeration
//   - Identification of connected components of passable cells
//
// Cells whose class the terrain.Model marks impassable are walls.
package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/terrapath/terrain"
)

// NewGrid constructs a Grid from non-empty, rectangular, equally sized
// terrain and elevation layers. Both are deep-copied to ensure immutability.
// Returns ErrEmptyGrid if a layer has no rows or no columns,
// ErrNonRectangular if any row length differs and
// ErrDimensionMismatch if the layers differ in size.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(classes [][]terrain.Class, elevation [][]float64) (*Grid, error) {
	if len(classes) == 0 || len(classes[0]) == 0 || len(elevation) == 0 || len(elevation[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(classes), len(classes[0])
	for _, row := range classes {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	for _, row := range elevation {
		if len(row) != len(elevation[0]) {
			return nil, ErrNonRectangular
		}
	}
	if len(elevation) != h || len(elevation[0]) != w {
		return nil, fmt.Errorf("%w: terrain %dx%d, elevation %dx%d",
			ErrDimensionMismatch, w, h, len(elevation[0]), len(elevation))
	}

	// Deep copy to prevent external mutation
	cls := make([][]terrain.Class, h)
	elev := make([][]float64, h)
	for y := 0; y < h; y++ {
		cls[y] = make([]terrain.Class, w)
		copy(cls[y], classes[y])
		elev[y] = make([]float64, w)
		copy(elev[y], elevation[y])
	}

	return &Grid{
		Width:           w,
		Height:          h,
		Classes:         cls,
		Elevation:       elev,
		neighborOffsets: [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}},
	}, nil
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// CheckBounds returns an ErrOutOfBounds-wrapped error naming c when it lies outside the grid.
func (g *Grid) CheckBounds(c Coordinate) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: (%s) not in %dx%d", ErrOutOfBounds, c, g.Width, g.Height)
	}
	return nil
}

// NeighborOffsets returns the precomputed orthogonal offsets N, E, S, W.
// Complexity: O(1).
func (g *Grid) NeighborOffsets() [][2]int {
	return g.neighborOffsets
}

// Neighbors appends to buf the in-bounds orthogonal neighbours of c and returns it.
// Cells on the grid edge simply have fewer neighbours.
func (g *Grid) Neighbors(c Coordinate, buf []Coordinate) []Coordinate {
	for _, d := range g.neighborOffsets {
		n := c.Offset(d)
		if g.InBounds(n) {
			buf = append(buf, n)
		}
	}
	return buf
}

// ClassAt returns the terrain class of c. c must be in bounds.
func (g *Grid) ClassAt(c Coordinate) terrain.Class {
	return g.Classes[c.Y][c.X]
}

// ElevationAt returns the elevation sample of c. c must be in bounds.
func (g *Grid) ElevationAt(c Coordinate) float64 {
	return g.Elevation[c.Y][c.X]
}

// Distance3D is the Euclidean distance between a and b treating the
// elevation sample as a third axis: sqrt(dx² + dy² + dz²).
// Planar offsets are in cells, so the result mixes units.
func (g *Grid) Distance3D(a, b Coordinate) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	dz := g.ElevationAt(a) - g.ElevationAt(b)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Index maps c to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(c Coordinate) int {
	return c.Y*g.Width + c.X
}

// Coordinate converts a row-major index back to a Coordinate.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coordinate {
	return Coordinate{X: idx % g.Width, Y: idx / g.Width}
}
