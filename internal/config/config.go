// Package config loads the wallhop CLI configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the top-level CLI configuration.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Search SearchConfig `yaml:"search"`
	Log    LogConfig    `yaml:"log"`
	Render RenderConfig `yaml:"render"`
}

// GridConfig sizes grids generated without a map file.
type GridConfig struct {
	Rows   int `yaml:"rows"`
	Extent int `yaml:"extent"`
}

// SearchConfig holds caller-side bounds on a run.
type SearchConfig struct {
	MaxIterations int           `yaml:"max_iterations"`
	Timeout       time.Duration `yaml:"timeout"`
}

// LogConfig configures the CLI logger.
type LogConfig struct {
	Level      string `yaml:"level"`
	Timestamps bool   `yaml:"timestamps"`
}

// RenderConfig configures grid output.
type RenderConfig struct {
	Color  bool   `yaml:"color"`
	Glyphs Glyphs `yaml:"glyphs"`
}

// Glyphs maps each classification and display state to one character.
type Glyphs struct {
	Default string `yaml:"default"`
	Wall    string `yaml:"wall"`
	Start   string `yaml:"start"`
	End     string `yaml:"end"`
	Open    string `yaml:"open"`
	Closed  string `yaml:"closed"`
	Path    string `yaml:"path"`
}

// Default returns the built-in configuration. It matches the embedded
// defaults/wallhop.yaml.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Rows:   50,
			Extent: 1000,
		},
		Log: LogConfig{
			Level:      "info",
			Timestamps: true,
		},
		Render: RenderConfig{
			Color: true,
			Glyphs: Glyphs{
				Default: ".",
				Wall:    "#",
				Start:   "S",
				End:     "E",
				Open:    "o",
				Closed:  "x",
				Path:    "*",
			},
		},
	}
}

// LogLevel parses Log.Level.
func (c Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return lvl, fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	return lvl, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Grid.Rows <= 0 {
		return fmt.Errorf("%w: grid.rows must be positive, got %d", ErrInvalid, c.Grid.Rows)
	}
	if c.Grid.Extent < 0 {
		return fmt.Errorf("%w: grid.extent must be non-negative, got %d", ErrInvalid, c.Grid.Extent)
	}
	if c.Search.MaxIterations < 0 {
		return fmt.Errorf("%w: search.max_iterations must be non-negative, got %d", ErrInvalid, c.Search.MaxIterations)
	}
	if c.Search.Timeout < 0 {
		return fmt.Errorf("%w: search.timeout must be non-negative, got %s", ErrInvalid, c.Search.Timeout)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}

	g := c.Render.Glyphs
	for _, f := range []struct{ name, v string }{
		{"default", g.Default}, {"wall", g.Wall}, {"start", g.Start}, {"end", g.End},
		{"open", g.Open}, {"closed", g.Closed}, {"path", g.Path},
	} {
		if utf8.RuneCountInString(f.v) != 1 {
			return fmt.Errorf("%w: render.glyphs.%s must be a single character, got %q", ErrInvalid, f.name, f.v)
		}
	}
	return nil
}
