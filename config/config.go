// Package config loads the run configuration from YAML and environment
// variables and turns it into options for the library packages.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/terrapath/astar"
	"github.com/katalvlaran/terrapath/cost"
	"github.com/katalvlaran/terrapath/halo"
	"github.com/katalvlaran/terrapath/terrain"
)

var (
	// ErrConfig wraps every failure to read or parse a configuration.
	ErrConfig = errors.New("config: cannot load configuration")

	// ErrInvalid wraps validation failures.
	ErrInvalid = errors.New("config: invalid configuration")
)

// Config is the complete run configuration.
//
// Thread Safety: safe to read concurrently once loaded.
type Config struct {
	// Cell holds the real-world size of one raster cell in metres.
	Cell CellConfig `yaml:"cell"`

	// Search tunes each A* run.
	Search SearchConfig `yaml:"search"`

	// Halo tunes the neighbourhood drawn around each waypoint.
	Halo HaloConfig `yaml:"halo"`

	// Planner tunes chain planning.
	Planner PlannerConfig `yaml:"planner"`

	// Terrain overrides or adds "#rrggbb" → modifier entries on top of the
	// default table. -1 marks a class impassable.
	Terrain map[string]float64 `yaml:"terrain" validate:"dive,keys,terrainclass,endkeys,modifier"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// CellConfig holds the cell dimensions.
type CellConfig struct {
	Width  float64 `yaml:"width" validate:"gt=0"`
	Height float64 `yaml:"height" validate:"gt=0"`
}

// SearchConfig holds the search settings.
type SearchConfig struct {
	Termination   string `yaml:"termination" validate:"oneof=discovery pop"`
	MaxExpansions int    `yaml:"max_expansions" validate:"gte=0"`
}

// HaloConfig holds the halo settings.
type HaloConfig struct {
	Radius float64 `yaml:"radius" validate:"gt=0"`
}

// PlannerConfig holds the planner settings.
type PlannerConfig struct {
	Workers        int  `yaml:"workers" validate:"gte=1,lte=256"`
	ComponentCheck bool `yaml:"component_check"`
}

// validate is shared; custom tags are registered in init.
var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("terrainclass", validateTerrainClass)
	_ = validate.RegisterValidation("modifier", validateModifier)
}

// validateTerrainClass accepts strings terrain.ParseClass accepts.
func validateTerrainClass(fl validator.FieldLevel) bool {
	_, err := terrain.ParseClass(fl.Field().String())
	return err == nil
}

// validateModifier accepts values in (0, 1] and the impassable marker.
func validateModifier(fl validator.FieldLevel) bool {
	m := terrain.Modifier(fl.Field().Float())
	return m == terrain.Impassable || m.Passable()
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Cell: CellConfig{
			Width:  cost.DefaultCellWidth,
			Height: cost.DefaultCellHeight,
		},
		Search:   SearchConfig{Termination: astar.TerminateOnDiscovery.String()},
		Halo:     HaloConfig{Radius: halo.DefaultRadius},
		Planner:  PlannerConfig{Workers: 1},
		LogLevel: "info",
	}
}

// Load returns Default overlaid with the YAML file at path (skipped when
// path is empty) and then with TERRAPATH_* environment variables, and
// validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
		}
		if err := decode(bytes.NewReader(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
		}
	}
	if err := loadFromEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// decode reads YAML into cfg, rejecting unknown keys. An empty document
// leaves cfg unchanged.
func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// loadFromEnv applies TERRAPATH_* overrides.
func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("TERRAPATH_TERMINATION"); v != "" {
		cfg.Search.Termination = v
	}
	if v := os.Getenv("TERRAPATH_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TERRAPATH_WORKERS"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: TERRAPATH_WORKERS: %w", ErrConfig, err)
		}
		cfg.Planner.Workers = i
	}
	if v := os.Getenv("TERRAPATH_HALO_RADIUS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: TERRAPATH_HALO_RADIUS: %w", ErrConfig, err)
		}
		cfg.Halo.Radius = f
	}
	return nil
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
