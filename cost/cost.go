// Package cost computes the A* heuristic and per-edge traversal costs over
// a terrain grid.
//
// Heuristic mixes planar cell offsets with the elevation delta in a single
// Euclidean metric. The units differ, so the estimate is not admissible in
// general: large climbs inflate it.
//
// EdgeCost for a move from → to is the sum of
//
//  1. planar real-world distance: CellHeight when the column is unchanged,
//     CellWidth when the row is unchanged, hypot(CellWidth, CellHeight) otherwise;
//  2. |elevation(to) − elevation(from)|;
//  3. max(0, elevation(to)) × modifier(to) / 2, the terrain-weighted effort.
//
// Terms 1 and 2 form Step, the real-world distance increment accumulated
// along a path.
package cost

import (
	"fmt"
	"math"

	"github.com/katalvlaran/terrapath/gridgraph"
	"github.com/katalvlaran/terrapath/terrain"
)

// Model evaluates costs against one immutable grid and terrain table.
// It holds no mutable state and is safe for concurrent use.
type Model struct {
	grid     *gridgraph.Grid
	terrain  *terrain.Model
	opts     Options
	diagonal float64
}

// New returns a cost Model over g and t.
// Returns ErrNilInput for nil inputs and ErrBadCellSize for invalid options.
func New(g *gridgraph.Grid, t *terrain.Model, opts ...Option) (*Model, error) {
	if g == nil || t == nil {
		return nil, ErrNilInput
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%w: width=%g height=%g", err, cfg.CellWidth, cfg.CellHeight)
	}

	return &Model{
		grid:     g,
		terrain:  t,
		opts:     cfg,
		diagonal: math.Hypot(cfg.CellWidth, cfg.CellHeight),
	}, nil
}

// Grid returns the grid the model evaluates.
func (m *Model) Grid() *gridgraph.Grid { return m.grid }

// Terrain returns the terrain table the model evaluates.
func (m *Model) Terrain() *terrain.Model { return m.terrain }

// Options returns the effective options.
func (m *Model) Options() Options { return m.opts }

// Heuristic is the 3-D Euclidean distance between cur and target:
// sqrt(dx² + dy² + dz²) with dz taken from the elevation layer.
// It is zero exactly when cur and target share both planar position and elevation.
func (m *Model) Heuristic(cur, target gridgraph.Coordinate) float64 {
	return m.grid.Distance3D(cur, target)
}

// Passable reports whether c may be entered, with its modifier.
func (m *Model) Passable(c gridgraph.Coordinate) (terrain.Modifier, bool) {
	return m.terrain.Lookup(m.grid.ClassAt(c))
}

// Planar is the real-world horizontal distance of a move from → to.
func (m *Model) Planar(from, to gridgraph.Coordinate) float64 {
	switch {
	case from.X == to.X:
		return m.opts.CellHeight
	case from.Y == to.Y:
		return m.opts.CellWidth
	default:
		return m.diagonal
	}
}

// Step is the real-world distance increment of a move: planar distance
// plus the absolute elevation change.
func (m *Model) Step(from, to gridgraph.Coordinate) float64 {
	return m.Planar(from, to) + math.Abs(m.grid.ElevationAt(to)-m.grid.ElevationAt(from))
}

// Effort is the terrain-weighted elevation effort of entering c:
// max(0, elevation) × modifier / 2. Returns ErrImpassable for walls.
func (m *Model) Effort(c gridgraph.Coordinate) (float64, error) {
	mod, ok := m.Passable(c)
	if !ok {
		return 0, fmt.Errorf("%w: (%s) class %s", ErrImpassable, c, m.grid.ClassAt(c))
	}
	return math.Max(0, m.grid.ElevationAt(c)) * float64(mod) / 2, nil
}

// EdgeCost returns the non-negative cost of moving from → to, or
// ErrImpassable if to cannot be entered.
func (m *Model) EdgeCost(from, to gridgraph.Coordinate) (float64, error) {
	effort, err := m.Effort(to)
	if err != nil {
		return 0, err
	}
	return m.Step(from, to) + effort, nil
}
