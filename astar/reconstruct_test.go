package astar_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/terrapath/astar"
	"github.com/katalvlaran/terrapath/gridgraph"
)

// TestReconstruct_Chain walks a three-node chain back to the source and reads
// the distance from the terminal record only.
func TestReconstruct_Chain(t *testing.T) {
	a, b, c := gridgraph.C(0, 0), gridgraph.C(1, 0), gridgraph.C(1, 1)
	nodes := map[gridgraph.Coordinate]astar.Node{
		a: {Source: true},
		b: {Parent: a, Distance: 4},
		c: {Parent: b, Distance: 10},
	}

	path, dist, err := astar.Reconstruct(nodes, c)
	if err != nil {
		t.Fatalf("Reconstruct error: %v", err)
	}
	if want := []gridgraph.Coordinate{c, b, a}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
	if dist != 10 {
		t.Errorf("distance = %g; want 10", dist)
	}

	astar.Reverse(path)
	if want := []gridgraph.Coordinate{a, b, c}; !reflect.DeepEqual(path, want) {
		t.Errorf("reversed = %v; want %v", path, want)
	}
}

// TestReconstruct_SourceOnly returns the single source cell.
func TestReconstruct_SourceOnly(t *testing.T) {
	a := gridgraph.C(3, 4)
	path, dist, err := astar.Reconstruct(map[gridgraph.Coordinate]astar.Node{a: {Source: true}}, a)
	if err != nil {
		t.Fatalf("Reconstruct error: %v", err)
	}
	if len(path) != 1 || path[0] != a || dist != 0 {
		t.Errorf("got (%v, %g); want ([%s], 0)", path, dist, a)
	}
}

// TestReconstruct_Errors covers missing records and cyclic links.
func TestReconstruct_Errors(t *testing.T) {
	a, b := gridgraph.C(0, 0), gridgraph.C(1, 0)

	if _, _, err := astar.Reconstruct(map[gridgraph.Coordinate]astar.Node{}, a); err == nil ||
		!errors.Is(err, astar.ErrNoRecord) {
		t.Errorf("missing terminal: got %v; want ErrNoRecord", err)
	}

	dangling := map[gridgraph.Coordinate]astar.Node{b: {Parent: a}}
	if _, _, err := astar.Reconstruct(dangling, b); !errors.Is(err, astar.ErrNoRecord) {
		t.Errorf("dangling parent: got %v; want ErrNoRecord", err)
	}

	cyclic := map[gridgraph.Coordinate]astar.Node{
		a: {Parent: b},
		b: {Parent: a},
	}
	if _, _, err := astar.Reconstruct(cyclic, a); !errors.Is(err, astar.ErrCycle) {
		t.Errorf("cycle: got %v; want ErrCycle", err)
	}
}
