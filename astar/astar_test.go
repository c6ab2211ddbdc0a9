// Package astar_test contains unit tests for the A* implementation.
// These tests validate the search under both termination modes, the
// unreachable and truncated outcomes, and input validation.
package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terrapath/astar"
	"github.com/katalvlaran/terrapath/cost"
	"github.com/katalvlaran/terrapath/gridgraph"
	"github.com/katalvlaran/terrapath/terrain"
)

const eps = 1e-9

// legend maps mask runes to classes: '.' open land, 'w' walk forest,
// 'r' paved road, '#' lake.
var legend = map[rune]terrain.Class{
	'.': terrain.OpenLand,
	'w': terrain.WalkForest,
	'r': terrain.PavedRoad,
	'#': terrain.LakeSwampMarsh,
}

// buildModel creates a cost model from a class mask and an elevation layer.
// A nil elevation means flat terrain at elevation 0.
func buildModel(t *testing.T, elev [][]float64, rows ...string) *cost.Model {
	t.Helper()
	cls := make([][]terrain.Class, len(rows))
	for y, r := range rows {
		for _, ch := range r {
			c, ok := legend[ch]
			require.True(t, ok, "unknown mask rune %q", ch)
			cls[y] = append(cls[y], c)
		}
	}
	if elev == nil {
		elev = make([][]float64, len(rows))
		for y := range elev {
			elev[y] = make([]float64, len(cls[y]))
		}
	}
	g, err := gridgraph.NewGrid(cls, elev)
	require.NoError(t, err)
	m, err := cost.New(g, terrain.DefaultModel())
	require.NoError(t, err)
	return m
}

// assertAdjacentChain checks every consecutive pair is orthogonally adjacent.
func assertAdjacentChain(t *testing.T, p []gridgraph.Coordinate) {
	t.Helper()
	for i := 1; i < len(p); i++ {
		dx, dy := p[i].X-p[i-1].X, p[i].Y-p[i-1].Y
		if dx*dx+dy*dy != 1 {
			t.Fatalf("path step %d: %s → %s is not orthogonal", i, p[i-1], p[i])
		}
	}
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestSearch_NilModel(t *testing.T) {
	_, err := astar.Search(nil, gridgraph.C(0, 0), gridgraph.C(0, 0))
	require.ErrorIs(t, err, astar.ErrNilModel)
}

func TestSearch_OutOfBounds(t *testing.T) {
	m := buildModel(t, nil, "...", "...")
	_, err := astar.Search(m, gridgraph.C(-1, 0), gridgraph.C(1, 1))
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	_, err = astar.Search(m, gridgraph.C(0, 0), gridgraph.C(3, 1))
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

func TestSearch_BadOptions(t *testing.T) {
	m := buildModel(t, nil, "..")
	_, err := astar.Search(m, gridgraph.C(0, 0), gridgraph.C(1, 0), astar.WithMaxExpansions(-1))
	require.ErrorIs(t, err, astar.ErrOptionViolation)
	_, err = astar.Search(m, gridgraph.C(0, 0), gridgraph.C(1, 0), astar.WithTermination(astar.Termination(7)))
	require.ErrorIs(t, err, astar.ErrOptionViolation)
}

// ------------------------------------------------------------------------
// 2. Outcomes shared by both termination modes
// ------------------------------------------------------------------------

var modes = []astar.Termination{astar.TerminateOnDiscovery, astar.TerminateOnPop}

// TestSearch_SameCell: a same-cell pair yields a single-node path at distance zero.
func TestSearch_SameCell(t *testing.T) {
	m := buildModel(t, [][]float64{{3, 4}, {5, 6}}, "..", "..")
	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			for y := 0; y < 2; y++ {
				for x := 0; x < 2; x++ {
					c := gridgraph.C(x, y)
					res, err := astar.Search(m, c, c, astar.WithTermination(mode))
					require.NoError(t, err)
					assert.True(t, res.Reached)
					assert.Equal(t, []gridgraph.Coordinate{c}, res.Path)
					assert.Zero(t, res.Distance)
				}
			}
		})
	}
}

// TestSearch_SameCellImpassable: a lake cell is still its own target; the
// search never expands it and reports a zero-length route in both modes.
func TestSearch_SameCellImpassable(t *testing.T) {
	m := buildModel(t, nil, "#.", "..")
	c := gridgraph.C(0, 0)
	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			res, err := astar.Search(m, c, c, astar.WithTermination(mode))
			require.NoError(t, err)
			assert.True(t, res.Reached)
			assert.False(t, res.Truncated)
			assert.Equal(t, []gridgraph.Coordinate{c}, res.Path)
			assert.Empty(t, res.Partial)
			assert.Zero(t, res.Distance)
			assert.Zero(t, res.Cost)
			assert.Zero(t, res.Expanded)
		})
	}
}

// TestSearch_Uniform3x3 is the reference scenario: flat uniform 3×3 grid,
// (0,0) → (2,2) gives a 5-cell Manhattan path with non-decreasing distance.
func TestSearch_Uniform3x3(t *testing.T) {
	m := buildModel(t, nil, "...", "...", "...")
	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			records := map[gridgraph.Coordinate]astar.Node{}
			res, err := astar.Search(m, gridgraph.C(0, 0), gridgraph.C(2, 2),
				astar.WithTermination(mode),
				astar.WithOnFinalize(func(at gridgraph.Coordinate, n astar.Node) { records[at] = n }),
			)
			require.NoError(t, err)
			require.True(t, res.Reached)
			require.Len(t, res.Path, 5)
			assert.Equal(t, gridgraph.C(0, 0), res.Path[0])
			assert.Equal(t, gridgraph.C(2, 2), res.Path[4])
			assertAdjacentChain(t, res.Path)
			assert.InDelta(t, 2*cost.DefaultCellWidth+2*cost.DefaultCellHeight, res.Distance, eps)

			// Cumulative distance never decreases along the finalised prefix.
			prev := -1.0
			for _, c := range res.Path[:4] {
				n, ok := records[c]
				require.True(t, ok, "path cell %s was not finalised", c)
				assert.GreaterOrEqual(t, n.Distance, prev)
				prev = n.Distance
			}
			assert.GreaterOrEqual(t, res.Distance, prev)
		})
	}
}

// TestSearch_WalledSource: every neighbour of the source is impassable, so any
// other target is unreachable and the frontier is exhausted.
func TestSearch_WalledSource(t *testing.T) {
	m := buildModel(t, nil,
		".#...",
		"#....",
		".....",
	)
	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			res, err := astar.Search(m, gridgraph.C(0, 0), gridgraph.C(4, 2), astar.WithTermination(mode))
			require.NoError(t, err)
			assert.False(t, res.Reached)
			assert.False(t, res.Truncated)
			assert.Empty(t, res.Path)
			assert.Equal(t, []gridgraph.Coordinate{gridgraph.C(0, 0)}, res.Partial)
			assert.Equal(t, 1, res.Expanded)
		})
	}
}

// TestSearch_ImpassableTarget never records the target cell.
func TestSearch_ImpassableTarget(t *testing.T) {
	m := buildModel(t, nil, "..#")
	for _, mode := range modes {
		res, err := astar.Search(m, gridgraph.C(0, 0), gridgraph.C(2, 0), astar.WithTermination(mode))
		require.NoError(t, err)
		assert.False(t, res.Reached, mode.String())
		// Closest approach is the cell next to the lake.
		assert.Equal(t, []gridgraph.Coordinate{gridgraph.C(0, 0), gridgraph.C(1, 0)}, res.Partial, mode.String())
		assert.InDelta(t, cost.DefaultCellWidth, res.Distance, eps)
	}
}

// TestSearch_AroundLake routes around an obstacle.
func TestSearch_AroundLake(t *testing.T) {
	m := buildModel(t, nil,
		"...",
		".#.",
		"...",
	)
	for _, mode := range modes {
		res, err := astar.Search(m, gridgraph.C(1, 0), gridgraph.C(1, 2), astar.WithTermination(mode))
		require.NoError(t, err)
		require.True(t, res.Reached, mode.String())
		require.Len(t, res.Path, 5)
		assertAdjacentChain(t, res.Path)
		for _, c := range res.Path {
			assert.NotEqual(t, gridgraph.C(1, 1), c, "path crosses the lake")
		}
	}
}

// TestSearch_MaxExpansions stops early and reports a truncated, unreached result.
func TestSearch_MaxExpansions(t *testing.T) {
	m := buildModel(t, nil, "..........")
	res, err := astar.Search(m, gridgraph.C(0, 0), gridgraph.C(9, 0), astar.WithMaxExpansions(3))
	require.NoError(t, err)
	assert.False(t, res.Reached)
	assert.True(t, res.Truncated)
	assert.Equal(t, 3, res.Expanded)
	assert.Equal(t, gridgraph.C(2, 0), res.Partial[len(res.Partial)-1])
}

// TestSearch_FinalizedOnce: the lazy-deletion frontier may hold duplicates,
// yet no cell is ever finalised twice.
func TestSearch_FinalizedOnce(t *testing.T) {
	elev := [][]float64{
		{0, 9, 1, 0},
		{4, 0, 7, 2},
		{1, 3, 0, 5},
		{0, 2, 6, 0},
	}
	m := buildModel(t, elev, "....", ".w..", "..r.", "....")
	seen := map[gridgraph.Coordinate]int{}
	res, err := astar.Search(m, gridgraph.C(0, 0), gridgraph.C(3, 3),
		astar.WithTermination(astar.TerminateOnPop),
		astar.WithOnFinalize(func(at gridgraph.Coordinate, _ astar.Node) { seen[at]++ }),
	)
	require.NoError(t, err)
	require.True(t, res.Reached)
	for c, n := range seen {
		assert.Equal(t, 1, n, "cell %s finalised %d times", c, n)
	}
	assert.Equal(t, len(seen), res.Expanded)
}

// ------------------------------------------------------------------------
// 3. Termination modes differ
// ------------------------------------------------------------------------

// TestSearch_TerminationModes pins the intended behaviour of both goal tests.
//
// Grid (flat at elevation 10):
//
//	S(open)   B(open)
//	A(walk)   T(open)
//
// A is popped before B (lower f), so discovery termination stops as soon as
// A discovers T and returns S→A→T. The pop test waits until T is popped, by
// which time B has relaxed T with a cheaper entry: S→B→T.
func TestSearch_TerminationModes(t *testing.T) {
	elev := [][]float64{{10, 10}, {10, 10}}
	m := buildModel(t, elev, "..", "w.")
	src, dst := gridgraph.C(0, 0), gridgraph.C(1, 1)

	// Discovery: approximate goal test, kept for compatibility with the
	// reference planner.
	disc, err := astar.Search(m, src, dst, astar.WithTermination(astar.TerminateOnDiscovery))
	require.NoError(t, err)
	require.True(t, disc.Reached)
	assert.Equal(t, []gridgraph.Coordinate{src, gridgraph.C(0, 1), dst}, disc.Path)
	assert.InDelta(t, 9.55+10.29+1, disc.Cost, eps)

	// Pop: strict goal test, finds the cheaper route.
	pop, err := astar.Search(m, src, dst, astar.WithTermination(astar.TerminateOnPop))
	require.NoError(t, err)
	require.True(t, pop.Reached)
	assert.Equal(t, []gridgraph.Coordinate{src, gridgraph.C(1, 0), dst}, pop.Path)
	assert.InDelta(t, 11.29+7.55+1, pop.Cost, eps)

	assert.Less(t, pop.Cost, disc.Cost)
	assert.InDelta(t, disc.Distance, pop.Distance, eps, "both routes cover one row and one column")
}

func TestParseTermination(t *testing.T) {
	for s, want := range map[string]astar.Termination{
		"":          astar.TerminateOnDiscovery,
		"discovery": astar.TerminateOnDiscovery,
		"pop":       astar.TerminateOnPop,
	} {
		got, err := astar.ParseTermination(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := astar.ParseTermination("eager")
	assert.ErrorIs(t, err, astar.ErrOptionViolation)
	assert.Equal(t, "Termination(9)", astar.Termination(9).String())
}
