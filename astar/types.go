// Package astar defines core types and configuration options
// for A* search over a terrain grid.
package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/terrapath/gridgraph"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilModel indicates that a nil *cost.Model was passed to Search.
	ErrNilModel = errors.New("astar: cost model is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrNoRecord indicates Reconstruct was asked to start from a coordinate
	// that has no node record.
	ErrNoRecord = errors.New("astar: no node record for coordinate")

	// ErrCycle indicates the predecessor chain did not reach the source within
	// len(nodes) steps.
	ErrCycle = errors.New("astar: predecessor chain does not terminate")
)

// Termination selects when the search declares the target reached.
type Termination int

const (
	// TerminateOnDiscovery halts as soon as a discovered neighbour has a
	// heuristic of exactly zero, i.e. coincides with the target, without
	// waiting for it to be popped. The path found this way is not
	// guaranteed to be the cheapest one.
	TerminateOnDiscovery Termination = iota

	// TerminateOnPop halts when the target is popped from the frontier,
	// the textbook A* goal test.
	TerminateOnPop
)

// String returns the configuration name of t.
func (t Termination) String() string {
	switch t {
	case TerminateOnDiscovery:
		return "discovery"
	case TerminateOnPop:
		return "pop"
	default:
		return fmt.Sprintf("Termination(%d)", int(t))
	}
}

// ParseTermination maps "discovery" or "pop" to a Termination.
func ParseTermination(s string) (Termination, error) {
	switch s {
	case "", "discovery":
		return TerminateOnDiscovery, nil
	case "pop":
		return TerminateOnPop, nil
	default:
		return 0, fmt.Errorf("%w: unknown termination %q", ErrOptionViolation, s)
	}
}

// Options configures the behavior of Search:
//   - Termination: goal test; TerminateOnDiscovery by default.
//   - MaxExpansions: if > 0, stop after finalising this many nodes and
//     report the target as not reached. 0 disables the cap.
//   - OnFinalize: called each time a node is finalised, with its record.
type Options struct {
	Termination   Termination
	MaxExpansions int
	OnFinalize    func(at gridgraph.Coordinate, n Node)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with discovery termination, no expansion
// cap and a no-op OnFinalize hook.
func DefaultOptions() Options {
	return Options{
		Termination:   TerminateOnDiscovery,
		MaxExpansions: 0,
		OnFinalize:    func(gridgraph.Coordinate, Node) {},
	}
}

// WithTermination selects the goal test.
func WithTermination(t Termination) Option {
	return func(o *Options) {
		switch t {
		case TerminateOnDiscovery, TerminateOnPop:
			o.Termination = t
		default:
			o.err = fmt.Errorf("%w: unknown termination %d", ErrOptionViolation, int(t))
		}
	}
}

// WithMaxExpansions caps the number of finalised nodes.
//
//	n > 0:  limit to n
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnFinalize registers a callback run each time a node is finalised.
func WithOnFinalize(fn func(at gridgraph.Coordinate, n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}

// Node is the search record of one discovered cell.
//
// Source marks the start cell, which has no predecessor; otherwise Parent is
// the cell it was reached from. Cost is the running cost g, Priority is
// Heuristic + Cost and Distance the cumulative real-world distance in metres.
type Node struct {
	Parent    gridgraph.Coordinate
	Source    bool
	Heuristic float64
	Cost      float64
	Priority  float64
	Distance  float64
}

// Result is the outcome of one source/target search.
//
//   - Path: source → target when Reached, otherwise empty.
//   - Partial: when not Reached, the chain from the source to the finalised
//     cell with the smallest heuristic (closest approach to the target).
//   - Distance: cumulative real-world distance of Path (or Partial).
//   - Cost: running cost g of the last cell of Path (or Partial).
//   - Expanded: number of finalised nodes.
//   - Truncated: the search stopped on MaxExpansions.
type Result struct {
	Source, Target gridgraph.Coordinate
	Path           []gridgraph.Coordinate
	Partial        []gridgraph.Coordinate
	Distance       float64
	Cost           float64
	Reached        bool
	Truncated      bool
	Expanded       int
}
