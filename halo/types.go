// Package halo provides tunable options and error definitions
// for the bounded waypoint neighbourhood expansion.
package halo

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/terrapath/gridgraph"
)

// DefaultRadius is the expansion cutoff, in the units of gridgraph.Grid.Distance3D.
const DefaultRadius = 5.0

// Sentinel errors for halo expansion.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("halo: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("halo: invalid option supplied")
)

// Option configures expansion behavior via functional arguments.
// If an Option is invalid (e.g. non-positive radius), it will be recorded
// internally and surfaced as ErrOptionViolation when Expand is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize expansion.
type Options struct {
	// Radius is the cutoff distance from the seed. The first neighbour found
	// beyond it ends the expansion.
	Radius float64

	// OnEnqueue is called for every cell added to the halo, with its
	// distance from the seed.
	OnEnqueue func(c gridgraph.Coordinate, dist float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Radius = DefaultRadius and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Radius:    DefaultRadius,
		OnEnqueue: func(gridgraph.Coordinate, float64) {},
	}
}

// WithRadius sets the cutoff distance.
//
//	r > 0: use r
//	r <= 0, NaN or +Inf: invalid option → ErrOptionViolation
func WithRadius(r float64) Option {
	return func(o *Options) {
		if !(r > 0) || math.IsInf(r, 1) {
			o.err = fmt.Errorf("%w: radius must be positive and finite (%g)", ErrOptionViolation, r)
			return
		}
		o.Radius = r
	}
}

// WithOnEnqueue registers a callback to run when a cell joins the halo.
func WithOnEnqueue(fn func(c gridgraph.Coordinate, dist float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}
