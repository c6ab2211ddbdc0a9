// Package halo computes the small neighbourhood of cells drawn around each
// waypoint on the output map.
//
// Expansion is a breadth-first flood fill from the waypoint. It performs no
// cost accounting and shares nothing with the route search: a change to the
// cost model can never alter a halo.
package halo

import (
	"fmt"

	"github.com/katalvlaran/terrapath/gridgraph"
)

// walker encapsulates mutable expansion state.
type walker struct {
	grid  *gridgraph.Grid
	opts  Options
	seed  gridgraph.Coordinate
	queue []gridgraph.Coordinate
	seen  map[gridgraph.Coordinate]bool // visited or queued
	out   []gridgraph.Coordinate
	buf   []gridgraph.Coordinate
}

// Expand runs the bounded flood fill from seed and returns the halo cells in
// discovery order. The seed itself is not part of the result.
//
// Each dequeued cell offers its in-bounds orthogonal neighbours that were
// neither visited nor queued. A neighbour whose distance from the seed
// exceeds Options.Radius ends the expansion at once and the cells collected
// so far are returned; otherwise it is queued and recorded.
//
// Returns ErrGridNil, ErrOptionViolation or gridgraph.ErrOutOfBounds for
// invalid input.
func Expand(g *gridgraph.Grid, seed gridgraph.Coordinate, opts ...Option) ([]gridgraph.Coordinate, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := g.CheckBounds(seed); err != nil {
		return nil, fmt.Errorf("halo: seed: %w", err)
	}

	w := &walker{
		grid:  g,
		opts:  o,
		seed:  seed,
		queue: []gridgraph.Coordinate{seed},
		seen:  map[gridgraph.Coordinate]bool{seed: true},
		buf:   make([]gridgraph.Coordinate, 0, 4),
	}
	w.loop()

	return w.out, nil
}

// ExpandAll runs Expand for every seed and returns the halos in seed order.
func ExpandAll(g *gridgraph.Grid, seeds []gridgraph.Coordinate, opts ...Option) ([][]gridgraph.Coordinate, error) {
	out := make([][]gridgraph.Coordinate, 0, len(seeds))
	for i, s := range seeds {
		h, err := Expand(g, s, opts...)
		if err != nil {
			return nil, fmt.Errorf("halo: waypoint %d: %w", i, err)
		}
		out = append(out, h)
	}
	return out, nil
}

// loop processes the queue until it empties or the radius is exceeded.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		u := w.dequeue()
		for _, v := range w.grid.Neighbors(u, w.buf[:0]) {
			if w.seen[v] {
				continue
			}
			d := w.grid.Distance3D(w.seed, v)
			if d > w.opts.Radius {
				return
			}
			w.enqueue(v, d)
		}
	}
}

func (w *walker) dequeue() gridgraph.Coordinate {
	u := w.queue[0]
	w.queue = w.queue[1:]
	return u
}

// enqueue marks c seen, records it in the halo and queues it.
func (w *walker) enqueue(c gridgraph.Coordinate, d float64) {
	w.seen[c] = true
	w.out = append(w.out, c)
	w.queue = append(w.queue, c)
	w.opts.OnEnqueue(c, d)
}
