package config

import (
	_ "embed"
)

//go:embed defaults/glyphflap.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/glyphflap.yaml and is used when the embedded file cannot be parsed.
func Default() GameConfig {
	return GameConfig{
		Screen: ScreenConfig{
			Width:  80,
			Height: 50,
		},
		Timing: TimingConfig{
			FrameDurationMs: 75,
		},
		Player: PlayerConfig{
			StartX: 0,
			StartY: 25,
			Glyph:  "@",
		},
		Physics: PhysicsConfig{
			Gravity:          0.2,
			TerminalVelocity: 2.0,
			FlapVelocity:     -2.0,
		},
		Obstacles: ObstacleConfig{
			BaseSize:       20,
			MinGapSize:     2,
			ShrinkPerPoint: 1,
			GapMinY:        10,
			GapMaxY:        40,
			Glyph:          "|",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
