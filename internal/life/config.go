package life

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"tilelife/internal/core"
)

// Config holds the startup parameters of a simulation. It is fixed for the
// lifetime of the process.
type Config struct {
	Width  int
	Height int

	TileSize     float64
	TickInterval time.Duration

	RandomizeProbability float64
	Seed                 int64

	AliveColor color.RGBA
	DeadColor  color.RGBA
}

// DefaultConfig returns the standard 100x100 board.
func DefaultConfig() Config {
	return Config{
		Width:                100,
		Height:               100,
		TileSize:             10,
		TickInterval:         100 * time.Millisecond,
		RandomizeProbability: 1.0 / 3.0,
		Seed:                 42,
		AliveColor:           color.RGBA{R: 255, G: 255, B: 255, A: 255},
		DeadColor:            color.RGBA{A: 255},
	}
}

// Validate reports the first configuration value that cannot be used.
func (c Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return errors.Errorf("grid dimensions must not be negative, got %dx%d", c.Width, c.Height)
	}
	if c.TileSize <= 0 {
		return errors.Errorf("tile size must be positive, got %v", c.TileSize)
	}
	if c.TickInterval <= 0 {
		return errors.Errorf("tick interval must be positive, got %v", c.TickInterval)
	}
	if c.RandomizeProbability < 0 || c.RandomizeProbability > 1 {
		return errors.Errorf("randomize probability must be within [0,1], got %v", c.RandomizeProbability)
	}
	return nil
}

// Size returns the configured grid dimensions.
func (c Config) Size() core.Size { return core.Size{W: c.Width, H: c.Height} }

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.Float64Var(&c.TileSize, "tile", c.TileSize, "tile size in pixels")
	fs.DurationVar(&c.TickInterval, "tick", c.TickInterval, "time between generations while playing")
	fs.Float64Var(&c.RandomizeProbability, "density", c.RandomizeProbability, "probability a cell is alive after randomize")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomize")
	fs.Func("alive", "alive cell color (#rrggbb)", colorFlag(&c.AliveColor))
	fs.Func("dead", "dead cell color (#rrggbb)", colorFlag(&c.DeadColor))
}

func colorFlag(dst *color.RGBA) func(string) error {
	return func(v string) error {
		parsed, err := ParseColor(v)
		if err != nil {
			return err
		}
		*dst = parsed
		return nil
	}
}

// FromMap populates a Config from a string map. Unknown keys and values that
// fail to parse keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["tile"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.TileSize = parsed
		}
	}
	if v, ok := cfg["tick"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			c.TickInterval = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.RandomizeProbability = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["alive"]; ok {
		if parsed, err := ParseColor(v); err == nil {
			c.AliveColor = parsed
		}
	}
	if v, ok := cfg["dead"]; ok {
		if parsed, err := ParseColor(v); err == nil {
			c.DeadColor = parsed
		}
	}
	return c
}

type fileConfig struct {
	GridWidth            *int     `json:"grid_width"`
	GridHeight           *int     `json:"grid_height"`
	TileSize             *float64 `json:"tile_size"`
	TickInterval         string   `json:"tick_interval"`
	RandomizeProbability *float64 `json:"randomize_probability"`
	Seed                 *int64   `json:"seed"`
	AliveColor           string   `json:"alive_color"`
	DeadColor            string   `json:"dead_color"`
}

// LoadConfig reads a JSON configuration file. Fields missing from the file
// keep their defaults.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	var fc fileConfig
	if err = json.Unmarshal(data, &fc); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if fc.GridWidth != nil {
		config.Width = *fc.GridWidth
	}
	if fc.GridHeight != nil {
		config.Height = *fc.GridHeight
	}
	if fc.TileSize != nil {
		config.TileSize = *fc.TileSize
	}
	if fc.TickInterval != "" {
		if config.TickInterval, err = time.ParseDuration(fc.TickInterval); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] invalid tick_interval in file: %+v", filename)
		}
	}
	if fc.RandomizeProbability != nil {
		config.RandomizeProbability = *fc.RandomizeProbability
	}
	if fc.Seed != nil {
		config.Seed = *fc.Seed
	}
	if fc.AliveColor != "" {
		if config.AliveColor, err = ParseColor(fc.AliveColor); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] invalid alive_color in file: %+v", filename)
		}
	}
	if fc.DeadColor != "" {
		if config.DeadColor, err = ParseColor(fc.DeadColor); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] invalid dead_color in file: %+v", filename)
		}
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}
	return config, nil
}

// ParseColor parses an opaque #rrggbb (or rrggbb) color.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, errors.Errorf("color %q must have the form #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(err, "parse color %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// FormatColor renders c as #rrggbb.
func FormatColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Parameters describes the configuration for display on the HUD.
func (c Config) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				{Key: "w", Label: "Width", Type: core.ParamTypeInt, Value: strconv.Itoa(c.Width)},
				{Key: "h", Label: "Height", Type: core.ParamTypeInt, Value: strconv.Itoa(c.Height)},
				{Key: "tile", Label: "Tile size", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(c.TileSize, 'f', -1, 64)},
			},
		},
		{
			Name: "Simulation",
			Params: []core.Parameter{
				{Key: "tick", Label: "Tick", Type: core.ParamTypeDuration, Value: c.TickInterval.String()},
				{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(c.RandomizeProbability, 'f', 3, 64)},
			},
		},
		{
			Name: "Colors",
			Params: []core.Parameter{
				{Key: "alive", Label: "Alive", Type: core.ParamTypeColor, Value: FormatColor(c.AliveColor)},
				{Key: "dead", Label: "Dead", Type: core.ParamTypeColor, Value: FormatColor(c.DeadColor)},
			},
		},
	}}
}
