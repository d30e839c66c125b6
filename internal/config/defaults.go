package config

import (
	_ "embed"
)

//go:embed defaults/flippy.yaml
var defaultFlippyYAML []byte

// Default returns the hard-coded configuration.
// It matches defaults/flippy.yaml and is the last fallback when the embedded file cannot be parsed.
func Default() FlippyConfig {
	return FlippyConfig{
		Field: FieldConfig{
			Width:  400,
			Height: 700,
			FloorY: 80,
		},
		Bird: BirdConfig{
			XRatio: 0.35,
			YRatio: 0.6,
			Radius: 14,
		},
		Obstacles: ObstacleConfig{
			SafeMargin:    120,
			MinSegment:    40,
			DespawnMargin: 10,
		},
		Progression: ProgressionConfig{
			Policy:         PolicyAuto,
			PointsPerLevel: 10,
		},
		Runtime: RuntimeConfig{
			TickRate: 60,
			MaxDelta: 0.05,
			Restart:  RestartMenu,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlippyYAML
}
