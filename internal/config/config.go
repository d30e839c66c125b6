// Package config provides YAML-based configuration loading for flippy.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// FlippyConfig contains all tunable configuration for the game and its hosts.
// Level presets are compiled into the simulation and are not part of it.
type FlippyConfig struct {
	Field       FieldConfig       `yaml:"field"`
	Bird        BirdConfig        `yaml:"bird"`
	Obstacles   ObstacleConfig    `yaml:"obstacles"`
	Progression ProgressionConfig `yaml:"progression"`
	Runtime     RuntimeConfig     `yaml:"runtime"`
	Log         LogConfig         `yaml:"log"`
}

// FieldConfig defines the playfield in world units (y grows upward).
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	FloorY float64 `yaml:"floor_y"`
}

// BirdConfig defines the bird's start pose and collision radius.
type BirdConfig struct {
	XRatio float64 `yaml:"x_ratio"` // Horizontal position as a fraction of field width
	YRatio float64 `yaml:"y_ratio"` // Start height as a fraction of field height
	Radius float64 `yaml:"radius"`
}

// ObstacleConfig defines pipe placement margins.
type ObstacleConfig struct {
	SafeMargin    float64 `yaml:"safe_margin"`    // Gap center keeps this distance from floor and ceiling
	MinSegment    float64 `yaml:"min_segment"`    // Minimum height of a pipe segment
	DespawnMargin float64 `yaml:"despawn_margin"` // Distance past the left edge before removal
}

// ProgressionConfig defines how the active level changes during a run.
type ProgressionConfig struct {
	Policy         Policy `yaml:"policy"`
	PointsPerLevel int    `yaml:"points_per_level"`
}

// RuntimeConfig defines host loop parameters.
type RuntimeConfig struct {
	TickRate int         `yaml:"tick_rate"`
	MaxDelta float64     `yaml:"max_delta"` // Upper bound for one Advance step, in seconds
	Restart  RestartMode `yaml:"restart"`
}

// FrameDelta returns the fixed step of one tick, in seconds.
func (r RuntimeConfig) FrameDelta() float64 {
	return 1 / float64(r.TickRate)
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// BirdX returns the bird's fixed horizontal position.
func (c FlippyConfig) BirdX() float64 {
	return c.Bird.XRatio * c.Field.Width
}

// BirdStartY returns the bird's starting height.
func (c FlippyConfig) BirdStartY() float64 {
	return c.Bird.YRatio * c.Field.Height
}

// Validate checks that the configuration describes a playable field.
func (c FlippyConfig) Validate() error {
	f := c.Field
	if f.Width <= 0 || f.Height <= 0 {
		return invalid("field size must be positive, got %vx%v", f.Width, f.Height)
	}
	if f.FloorY < 0 || f.FloorY >= f.Height {
		return invalid("floor_y %v must be within [0, %v)", f.FloorY, f.Height)
	}
	if c.Bird.XRatio <= 0 || c.Bird.XRatio >= 1 {
		return invalid("bird.x_ratio %v must be within (0, 1)", c.Bird.XRatio)
	}
	if c.Bird.YRatio <= 0 || c.Bird.YRatio >= 1 {
		return invalid("bird.y_ratio %v must be within (0, 1)", c.Bird.YRatio)
	}
	if c.Bird.Radius < 0 || 2*c.Bird.Radius >= f.Height-f.FloorY {
		return invalid("bird.radius %v does not fit between floor and ceiling", c.Bird.Radius)
	}

	o := c.Obstacles
	if o.SafeMargin < 0 || o.MinSegment < 0 || o.DespawnMargin < 0 {
		return invalid("obstacle margins must not be negative")
	}
	if f.FloorY+o.SafeMargin > f.Height-o.SafeMargin {
		return invalid("safe_margin %v leaves no room for a gap", o.SafeMargin)
	}

	if !c.Progression.Policy.Valid() {
		return invalid("unknown progression policy %q", c.Progression.Policy)
	}
	if c.Progression.PointsPerLevel <= 0 {
		return invalid("points_per_level must be positive, got %d", c.Progression.PointsPerLevel)
	}

	r := c.Runtime
	if r.TickRate <= 0 {
		return invalid("tick_rate must be positive, got %d", r.TickRate)
	}
	if r.MaxDelta <= 0 {
		return invalid("max_delta must be positive, got %v", r.MaxDelta)
	}
	if !r.Restart.Valid() {
		return invalid("unknown restart mode %q", r.Restart)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return invalid("log level %q: %v", c.Log.Level, err)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
