// Package planner provides options, errors and result types for routing
// through an ordered chain of waypoints.
package planner

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/terrapath/astar"
)

// Sentinel errors for chain planning.
var (
	// ErrNilModel is returned if New receives a nil cost model.
	ErrNilModel = errors.New("planner: cost model is nil")

	// ErrTooFewWaypoints is returned by Plan for fewer than two waypoints.
	ErrTooFewWaypoints = errors.New("planner: at least two waypoints are required")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("planner: invalid option supplied")
)

// Option configures a Planner via functional arguments.
type Option func(*Options)

// Options holds the planner configuration.
type Options struct {
	// Workers bounds the number of segments searched at once. 1 plans the
	// segments strictly in order.
	Workers int

	// Search is forwarded to every astar.Search call.
	Search []astar.Option

	// Logger receives one record per planned segment.
	Logger *slog.Logger

	// ComponentCheck skips the search for segments whose endpoints cannot
	// be joined at all; they are reported unreachable.
	ComponentCheck bool

	err error
}

// DefaultOptions returns one worker, default search options and a logger
// that discards everything.
func DefaultOptions() Options {
	return Options{
		Workers: 1,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithWorkers sets the number of concurrent segment searches (n ≥ 1).
// Each segment keeps private search state, so results do not depend on n.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithSearchOptions appends options passed to every segment search.
func WithSearchOptions(opts ...astar.Option) Option {
	return func(o *Options) {
		o.Search = append(o.Search, opts...)
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithComponentCheck labels the passable regions of the grid once and
// reports segments between different regions as unreachable without
// searching them. Such a segment's Partial holds only its source cell.
func WithComponentCheck() Option {
	return func(o *Options) {
		o.ComponentCheck = true
	}
}

// Segment is the outcome of planning one consecutive waypoint pair.
//
// Result.Source and Result.Target are always the pair's waypoints. An
// unreachable target is not an error: Reached is false and Partial holds the
// closest approach. Err is set only when the pair could not be searched,
// such as an out-of-grid waypoint.
type Segment struct {
	Index int
	astar.Result
	Err error
}
