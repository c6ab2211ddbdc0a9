package config

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/terrapath/astar"
	"github.com/katalvlaran/terrapath/cost"
	"github.com/katalvlaran/terrapath/halo"
	"github.com/katalvlaran/terrapath/planner"
	"github.com/katalvlaran/terrapath/terrain"
)

// TerrainModel returns the default terrain table extended with c.Terrain.
func (c Config) TerrainModel() (*terrain.Model, error) {
	base := terrain.DefaultModel()
	if len(c.Terrain) == 0 {
		return base, nil
	}
	overrides := make(map[terrain.Class]terrain.Modifier, len(c.Terrain))
	for k, v := range c.Terrain {
		cls, err := terrain.ParseClass(k)
		if err != nil {
			return nil, fmt.Errorf("%w: terrain: %w", ErrInvalid, err)
		}
		overrides[cls] = terrain.Modifier(v)
	}
	m, err := base.Extend(overrides)
	if err != nil {
		return nil, fmt.Errorf("%w: terrain: %w", ErrInvalid, err)
	}
	return m, nil
}

// CostOptions returns the cost model options.
func (c Config) CostOptions() []cost.Option {
	return []cost.Option{cost.WithCellSize(c.Cell.Width, c.Cell.Height)}
}

// SearchOptions returns the per-segment search options.
func (c Config) SearchOptions() ([]astar.Option, error) {
	t, err := astar.ParseTermination(c.Search.Termination)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return []astar.Option{
		astar.WithTermination(t),
		astar.WithMaxExpansions(c.Search.MaxExpansions),
	}, nil
}

// HaloOptions returns the halo expansion options.
func (c Config) HaloOptions() []halo.Option {
	return []halo.Option{halo.WithRadius(c.Halo.Radius)}
}

// PlannerOptions returns the planner options, search options included.
func (c Config) PlannerOptions(logger *slog.Logger) ([]planner.Option, error) {
	search, err := c.SearchOptions()
	if err != nil {
		return nil, err
	}
	opts := []planner.Option{
		planner.WithWorkers(c.Planner.Workers),
		planner.WithSearchOptions(search...),
		planner.WithLogger(logger),
	}
	if c.Planner.ComponentCheck {
		opts = append(opts, planner.WithComponentCheck())
	}
	return opts, nil
}

// Level returns LogLevel as a slog.Level; unknown names map to Info.
func (c Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}
