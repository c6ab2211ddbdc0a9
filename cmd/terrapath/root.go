package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/terrapath/astar"
	"github.com/katalvlaran/terrapath/config"
	"github.com/katalvlaran/terrapath/cost"
	"github.com/katalvlaran/terrapath/halo"
	"github.com/katalvlaran/terrapath/loader"
	"github.com/katalvlaran/terrapath/planner"
	"github.com/katalvlaran/terrapath/render"
)

// flags holds the command line switches that override the configuration.
type flags struct {
	config   string
	geojson  string
	strict   bool
	partial  bool
	workers  int
	logLevel string
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "terrapath <terrain.png> <elevation.txt> <waypoints.txt> <out.png>",
		Short: "Plan an orienteering route over a terrain map",
		Long: `terrapath reads a terrain raster, an elevation table and an ordered list
of waypoints, finds a route between each consecutive pair of waypoints and
writes the map with the route, the waypoint halos and the total distance.`,
		Args:         cobra.ExactArgs(4),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.Level())
			return run(cmd, cfg, f, logger, args[0], args[1], args[2], args[3])
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.config, "config", "c", "", "YAML configuration file")
	fs.StringVar(&f.geojson, "geojson", "", "also write the segments as GeoJSON to this file")
	fs.BoolVar(&f.strict, "strict", false, "stop each search when the target is popped rather than discovered")
	fs.BoolVar(&f.partial, "partial", false, "draw the closest approach of unreached segments")
	fs.IntVarP(&f.workers, "workers", "w", 1, "number of segments searched concurrently")
	fs.StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	return cmd
}

// loadConfig reads the configuration and applies explicitly set flags.
func loadConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return config.Config{}, err
	}
	fs := cmd.Flags()
	if f.strict {
		cfg.Search.Termination = astar.TerminateOnPop.String()
	}
	if fs.Changed("workers") {
		cfg.Planner.Workers = f.workers
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// run loads the inputs, plans the chain and writes the outputs. Unreachable
// segments are reported but do not fail the run.
func run(cmd *cobra.Command, cfg config.Config, f flags, logger *slog.Logger, terrainPath, elevationPath, waypointsPath, outPath string) error {
	scene, err := loader.LoadScene(terrainPath, elevationPath)
	if err != nil {
		return err
	}
	wps, err := loader.WaypointsFile(waypointsPath)
	if err != nil {
		return err
	}
	if len(wps) < 2 {
		return fmt.Errorf("%s: %w", waypointsPath, planner.ErrTooFewWaypoints)
	}
	for i, wp := range wps {
		if err := scene.Grid.CheckBounds(wp); err != nil {
			return fmt.Errorf("%s: waypoint %d: %w", waypointsPath, i+1, err)
		}
	}
	logger.Debug("inputs loaded",
		slog.Int("width", scene.Grid.Width),
		slog.Int("height", scene.Grid.Height),
		slog.Int("waypoints", len(wps)),
	)

	tm, err := cfg.TerrainModel()
	if err != nil {
		return err
	}
	cm, err := cost.New(scene.Grid, tm, cfg.CostOptions()...)
	if err != nil {
		return err
	}
	popts, err := cfg.PlannerOptions(logger)
	if err != nil {
		return err
	}
	p, err := planner.New(cm, popts...)
	if err != nil {
		return err
	}

	halos, err := halo.ExpandAll(scene.Grid, wps, cfg.HaloOptions()...)
	if err != nil {
		return err
	}
	segs, err := p.Plan(cmd.Context(), wps)
	if err != nil {
		return err
	}

	var ropts []render.Option
	if f.partial {
		ropts = append(ropts, render.WithPartial(render.Orange))
	}
	if err := render.SavePNG(outPath, scene.Image, halos, segs, ropts...); err != nil {
		return err
	}
	if f.geojson != "" {
		if err := writeGeoJSON(f.geojson, segs); err != nil {
			return err
		}
	}

	report(cmd.OutOrStdout(), segs)
	logger.Info("route written", slog.String("path", outPath))
	return nil
}

func writeGeoJSON(path string, segs []planner.Segment) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer func() {
		err = errors.Join(err, out.Close())
	}()
	return render.WriteGeoJSON(out, segs)
}

// report prints one line per segment and the total distance.
func report(w io.Writer, segs []planner.Segment) {
	for _, s := range segs {
		switch {
		case s.Err != nil:
			fmt.Fprintf(w, "%d: %s -> %s error: %v\n", s.Index+1, s.Source, s.Target, s.Err)
		case s.Reached:
			fmt.Fprintf(w, "%d: %s -> %s %.2f m (%d cells)\n", s.Index+1, s.Source, s.Target, s.Distance, len(s.Path))
		default:
			fmt.Fprintf(w, "%d: %s -> %s unreachable\n", s.Index+1, s.Source, s.Target)
		}
	}
	fmt.Fprintln(w, render.Caption(segs))
}
