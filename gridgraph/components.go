package gridgraph

import "github.com/katalvlaran/terrapath/terrain"

// ConnectedComponents finds all contiguous regions of passable cells
// (cells whose class m.Lookup accepts) under 4-connectivity.
// Returns a slice of components; each component is a slice of cell-indices
// (row-major) in BFS order from its first cell in scan order.
//
// To convert an index back to a Coordinate, use Coordinate(idx).
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents(m *terrain.Model) [][]int {
	comps, _ := g.components(m)
	return comps
}

// ComponentLabels returns, for every row-major cell index, the index of the
// passable component containing it, or -1 for impassable cells.
// Two cells can only be joined by a path if their labels are equal and ≥ 0.
func (g *Grid) ComponentLabels(m *terrain.Model) []int {
	_, labels := g.components(m)
	return labels
}

func (g *Grid) components(m *terrain.Model) ([][]int, []int) {
	total := g.Width * g.Height
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	passable := func(c Coordinate) bool {
		_, ok := m.Lookup(g.ClassAt(c))
		return ok
	}

	offsets := g.NeighborOffsets()
	var comps [][]int
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c0 := Coordinate{X: x, Y: y}
			i0 := g.Index(c0)
			if labels[i0] >= 0 || !passable(c0) {
				continue // already labelled or wall
			}
			// BFS to collect component
			id := len(comps)
			queue := []int{i0}
			labels[i0] = id
			for qi := 0; qi < len(queue); qi++ {
				u := g.Coordinate(queue[qi])
				for _, d := range offsets {
					v := u.Offset(d)
					if !g.InBounds(v) || !passable(v) {
						continue
					}
					vi := g.Index(v)
					if labels[vi] < 0 {
						labels[vi] = id
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps, labels
}
