package astar

import (
	"fmt"

	"github.com/katalvlaran/terrapath/gridgraph"
)

// Reconstruct walks predecessor links from terminal back to the node marked
// Source and returns the visited coordinates in terminal → source order,
// together with the terminal's cumulative distance. The distance is read
// from the terminal record, not summed along the walk.
//
// The walk is bounded by len(nodes): a longer chain means the links form a
// cycle and ErrCycle is returned. ErrNoRecord is returned when terminal, or
// any predecessor on the way, has no record.
//
// Complexity: O(path length).
func Reconstruct(nodes map[gridgraph.Coordinate]Node, terminal gridgraph.Coordinate) ([]gridgraph.Coordinate, float64, error) {
	last, ok := nodes[terminal]
	if !ok {
		return nil, 0, fmt.Errorf("%w: (%s)", ErrNoRecord, terminal)
	}

	path := make([]gridgraph.Coordinate, 0, 16)
	for cur := terminal; ; {
		n, ok := nodes[cur]
		if !ok {
			return nil, 0, fmt.Errorf("%w: predecessor (%s)", ErrNoRecord, cur)
		}
		path = append(path, cur)
		if n.Source {
			break
		}
		if len(path) > len(nodes) {
			return nil, 0, fmt.Errorf("%w: from (%s)", ErrCycle, terminal)
		}
		cur = n.Parent
	}

	return path, last.Distance, nil
}

// Reverse reverses p in place.
func Reverse(p []gridgraph.Coordinate) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}
