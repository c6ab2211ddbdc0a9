package planner

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/terrapath/astar"
	"github.com/katalvlaran/terrapath/cost"
	"github.com/katalvlaran/terrapath/gridgraph"
)

// Planner routes ordered waypoint chains over one cost model.
// A Planner is immutable after New and safe for concurrent use.
type Planner struct {
	model  *cost.Model
	opts   Options
	labels []int // passable component per cell index; nil unless ComponentCheck
}

// New returns a Planner over m.
// Returns ErrNilModel or ErrOptionViolation.
func New(m *cost.Model, opts ...Option) (*Planner, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	p := &Planner{model: m, opts: cfg}
	if cfg.ComponentCheck {
		p.labels = m.Grid().ComponentLabels(m.Terrain())
	}

	return p, nil
}

// Plan searches every consecutive pair of waypoints and returns one Segment
// per pair, in chain order: len(waypoints)-1 segments.
//
// Segments are independent: each search starts from fresh state, and an
// unreachable or invalid segment never stops the ones after it. With one
// worker the segments run strictly in order; otherwise up to Workers run at
// once.
//
// Plan returns ErrTooFewWaypoints for fewer than two waypoints, and the
// context error if ctx is cancelled before every segment was started.
func (p *Planner) Plan(ctx context.Context, waypoints []gridgraph.Coordinate) ([]Segment, error) {
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewWaypoints, len(waypoints))
	}
	n := len(waypoints) - 1
	segs := make([]Segment, n)

	if p.opts.Workers == 1 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("planner: segment %d: %w", i, err)
			}
			segs[i] = p.segment(i, waypoints[i], waypoints[i+1])
		}
		return segs, nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Workers)
	for i := 0; i < n; i++ {
		i := i // per-iteration copy; go directive is 1.21
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return fmt.Errorf("planner: segment %d: %w", i, err)
			}
			segs[i] = p.segment(i, waypoints[i], waypoints[i+1])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return segs, nil
}

// segment plans a single pair. Failures are recorded, never returned.
func (p *Planner) segment(i int, from, to gridgraph.Coordinate) Segment {
	seg := Segment{Index: i, Result: astar.Result{Source: from, Target: to}}
	log := p.opts.Logger.With(
		slog.Int("segment", i),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	)

	if p.disconnected(from, to) {
		seg.Partial = []gridgraph.Coordinate{from}
		log.Warn("target unreachable", slog.String("reason", "disconnected"))
		return seg
	}

	res, err := astar.Search(p.model, from, to, p.opts.Search...)
	if err != nil {
		seg.Err = err
		log.Warn("segment failed", slog.Any("error", err))
		return seg
	}
	seg.Result = *res

	if !res.Reached {
		log.Warn("target unreachable",
			slog.Int("expanded", res.Expanded),
			slog.Bool("truncated", res.Truncated),
			slog.Int("partial", len(res.Partial)),
		)
		return seg
	}
	log.Info("segment planned",
		slog.Int("cells", len(res.Path)),
		slog.Float64("distance", res.Distance),
		slog.Int("expanded", res.Expanded),
	)

	return seg
}

// disconnected reports whether the component labels prove that no path
// joins from and to. Out-of-grid endpoints are left to the search.
func (p *Planner) disconnected(from, to gridgraph.Coordinate) bool {
	if p.labels == nil || from == to {
		return false
	}
	g := p.model.Grid()
	if !g.InBounds(from) || !g.InBounds(to) {
		return false
	}
	a, b := p.labels[g.Index(from)], p.labels[g.Index(to)]
	return a < 0 || b < 0 || a != b
}

// TotalDistance sums the distance of every reached segment.
func TotalDistance(segs []Segment) float64 {
	var sum float64
	for _, s := range segs {
		if s.Err == nil && s.Reached {
			sum += s.Distance
		}
	}
	return sum
}

// Route concatenates the paths of consecutive reached segments into a single
// cell list, dropping the joint cell repeated at each segment boundary.
// Unreached segments contribute nothing.
func Route(segs []Segment) []gridgraph.Coordinate {
	var out []gridgraph.Coordinate
	for _, s := range segs {
		if s.Err != nil || !s.Reached {
			continue
		}
		path := s.Path
		if len(out) > 0 && len(path) > 0 && out[len(out)-1] == path[0] {
			path = path[1:]
		}
		out = append(out, path...)
	}
	return out
}
