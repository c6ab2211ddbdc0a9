// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/terrapath.
package gridgraph

import (
	"errors"
	"strconv"

	"github.com/katalvlaran/terrapath/terrain"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrDimensionMismatch indicates the terrain and elevation layers differ in size.
	ErrDimensionMismatch = errors.New("gridgraph: terrain and elevation layers must have equal dimensions")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
)

// Coordinate addresses a single cell: X is the column, Y the row.
type Coordinate struct {
	X, Y int
}

// C is shorthand for Coordinate{X: x, Y: y}.
func C(x, y int) Coordinate { return Coordinate{X: x, Y: y} }

// Offset returns c shifted by d = {dx, dy}.
func (c Coordinate) Offset(d [2]int) Coordinate {
	return Coordinate{X: c.X + d[0], Y: c.Y + d[1]}
}

// String formats c as "x,y", the vertex ID convention of this module.
func (c Coordinate) String() string {
	return strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y)
}

// Grid holds the two aligned, immutable layers of a run:
// Classes[y][x] is the terrain classification of a cell and
// Elevation[y][x] its elevation sample. Width and Height are fixed.
// neighborOffsets is precomputed for 4-directional adjacency (N, E, S, W).
type Grid struct {
	Width, Height   int
	Classes         [][]terrain.Class
	Elevation       [][]float64
	neighborOffsets [][2]int
}
