package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/terrapath/cost"
	"github.com/katalvlaran/terrapath/gridgraph"
)

// Search runs A* from src to dst over the grid of m.
//
// Returns:
//
//   - *Result with Reached=true and the source → target Path on success.
//   - *Result with Reached=false, an empty Path and the best Partial chain
//     when the frontier is exhausted (or MaxExpansions is hit). This is not
//     an error: an unreachable target is an expected outcome.
//   - err for invalid input only.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilModel).
//  2. Options must be valid (ErrOptionViolation).
//  3. src and dst must lie inside the grid (gridgraph.ErrOutOfBounds).
//
// Complexity:
//
//   - Time:  O(N log N), N = cells discovered (each relaxation may push).
//   - Space: O(N) for the node table, visited set and frontier.
func Search(m *cost.Model, src, dst gridgraph.Coordinate, opts ...Option) (*Result, error) {
	// 1) Validate model is non-nil
	if m == nil {
		return nil, ErrNilModel
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Validate endpoints; the grid border is a wall, so only the
	//    endpoints themselves need checking.
	g := m.Grid()
	if err := g.CheckBounds(src); err != nil {
		return nil, fmt.Errorf("astar: source: %w", err)
	}
	if err := g.CheckBounds(dst); err != nil {
		return nil, fmt.Errorf("astar: target: %w", err)
	}

	r := &runner{
		model:   m,
		grid:    g,
		options: cfg,
		src:     src,
		dst:     dst,
		nodes:   make(map[gridgraph.Coordinate]Node),
		visited: make(map[gridgraph.Coordinate]bool),
		pq:      make(frontier, 0, 64),
		buf:     make([]gridgraph.Coordinate, 0, 4),
	}
	r.init()
	r.process()

	return r.result()
}

// runner holds the mutable state for a single A* execution. None of it
// outlives the call.
type runner struct {
	model   *cost.Model
	grid    *gridgraph.Grid
	options Options
	src     gridgraph.Coordinate
	dst     gridgraph.Coordinate

	nodes   map[gridgraph.Coordinate]Node // discovered cells and their records
	visited map[gridgraph.Coordinate]bool // finalised cells; never relaxed again
	pq      frontier                      // open list with lazy deletion

	reached   bool
	truncated bool
	terminal  gridgraph.Coordinate
	expanded  int
	buf       []gridgraph.Coordinate
}

// init records the source with no predecessor, priority h(src) and zero
// cost and distance, and pushes it onto the frontier.
func (r *runner) init() {
	h := r.model.Heuristic(r.src, r.dst)
	r.nodes[r.src] = Node{Source: true, Heuristic: h, Priority: h}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &frontierItem{at: r.src, priority: h, heuristic: h})

	// A source that is its own target is reached before anything is popped,
	// in either mode and whatever its terrain.
	if r.src == r.dst {
		r.reach(r.src)
	}
}

// process is the main loop. It pops the lowest-priority entry, drops it if
// stale or impassable, and otherwise relaxes its neighbours and finalises it.
//
// Loop termination conditions:
//
//   - The target is reached (per Options.Termination).
//   - The frontier becomes empty: the target is unreachable.
//   - MaxExpansions nodes have been finalised.
func (r *runner) process() {
	for !r.reached && r.pq.Len() > 0 {
		u := heap.Pop(&r.pq).(*frontierItem).at

		// Stale entry for an already finalised cell: discard, never reprocess.
		if r.visited[u] {
			continue
		}

		// Only the source can be impassable here; neighbours that are walls
		// are never recorded. Finalise without expanding.
		if _, ok := r.model.Passable(u); !ok {
			r.visited[u] = true
			continue
		}

		if r.options.Termination == TerminateOnPop && u == r.dst {
			r.finalize(u)
			r.reach(u)
			return
		}

		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			r.truncated = true
			return
		}

		found := r.relax(u)
		r.finalize(u)
		if found {
			return
		}
	}
}

// relax examines the orthogonal neighbours of u that are not finalised and
// records or improves their nodes. It reports whether, under discovery
// termination, a neighbour with zero heuristic was found.
//
// Assumes r.nodes[u] exists and u is not yet finalised.
func (r *runner) relax(u gridgraph.Coordinate) bool {
	nu := r.nodes[u]
	for _, v := range r.grid.Neighbors(u, r.buf[:0]) {
		if r.visited[v] {
			continue
		}

		// Walls are excluded from expansion and never get a record.
		edge, err := r.model.EdgeCost(u, v)
		if err != nil {
			continue
		}

		h := r.model.Heuristic(v, r.dst)
		g := nu.Cost + edge
		p := h + g

		// Strictly better only; equal priorities keep the first record.
		if old, ok := r.nodes[v]; !ok || p < old.Priority {
			r.nodes[v] = Node{
				Parent:    u,
				Heuristic: h,
				Cost:      g,
				Priority:  p,
				Distance:  nu.Distance + r.model.Step(u, v),
			}
			heap.Push(&r.pq, &frontierItem{at: v, priority: p, heuristic: h})
		}

		if r.options.Termination == TerminateOnDiscovery && h == 0 {
			r.reach(v)
			return true
		}
	}

	return false
}

// finalize marks u visited and runs the OnFinalize hook.
func (r *runner) finalize(u gridgraph.Coordinate) {
	r.visited[u] = true
	r.expanded++
	r.options.OnFinalize(u, r.nodes[u])
}

func (r *runner) reach(at gridgraph.Coordinate) {
	r.reached = true
	r.terminal = at
}

// closest returns the finalised cell with the smallest heuristic, falling
// back to the source when nothing was finalised.
func (r *runner) closest() gridgraph.Coordinate {
	best, bestH := r.src, r.nodes[r.src].Heuristic
	for c := range r.visited {
		n, ok := r.nodes[c]
		if !ok {
			continue
		}
		// Ties broken by coordinate so the choice does not depend on map order.
		if n.Heuristic < bestH || (n.Heuristic == bestH && less(c, best)) {
			best, bestH = c, n.Heuristic
		}
	}
	return best
}

func less(a, b gridgraph.Coordinate) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// result reconstructs the path for the terminal (or closest) node.
func (r *runner) result() (*Result, error) {
	res := &Result{
		Source:    r.src,
		Target:    r.dst,
		Reached:   r.reached,
		Truncated: r.truncated,
		Expanded:  r.expanded,
	}

	at := r.terminal
	if !r.reached {
		at = r.closest()
	}
	chain, dist, err := Reconstruct(r.nodes, at)
	if err != nil {
		return nil, err
	}
	Reverse(chain)
	res.Distance = dist
	res.Cost = r.nodes[at].Cost
	if r.reached {
		res.Path = chain
	} else {
		res.Partial = chain
	}

	return res, nil
}
