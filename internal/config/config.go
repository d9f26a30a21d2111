// Package config provides YAML-based game configuration loading and
// difficulty presets for glyphflap.
package config

import (
	"unicode/utf8"

	"github.com/vovakirdan/glyphflap/internal/core"
)

// GameConfig contains all tunable parameters of the game.
type GameConfig struct {
	Screen    ScreenConfig   `yaml:"screen"`
	Timing    TimingConfig   `yaml:"timing"`
	Player    PlayerConfig   `yaml:"player"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
}

// ScreenConfig defines the playfield size in character cells.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the fixed physics step.
type TimingConfig struct {
	FrameDurationMs float64 `yaml:"frame_duration_ms"`
}

// PlayerConfig defines where a round starts and how the player is drawn.
type PlayerConfig struct {
	StartX int    `yaml:"start_x"`
	StartY int    `yaml:"start_y"`
	Glyph  string `yaml:"glyph"`
}

// PhysicsConfig defines gravity and flap parameters.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`           // Velocity added per physics step
	TerminalVelocity float64 `yaml:"terminal_velocity"` // Velocity cap
	FlapVelocity     float64 `yaml:"flap_velocity"`     // Velocity set by a flap (negative = up)
}

// ObstacleConfig defines obstacle generation.
type ObstacleConfig struct {
	BaseSize       int    `yaml:"base_size"`        // Gap size at score 0
	MinGapSize     int    `yaml:"min_gap_size"`     // Gap size floor
	ShrinkPerPoint int    `yaml:"shrink_per_point"` // Gap shrink per point scored
	GapMinY        int    `yaml:"gap_min_y"`        // Lowest gap center (inclusive)
	GapMaxY        int    `yaml:"gap_max_y"`        // Highest gap center (exclusive)
	Glyph          string `yaml:"glyph"`
}

// GlyphRune returns the player glyph, or '@' when unset.
func (p PlayerConfig) GlyphRune() rune {
	return firstRune(p.Glyph, '@')
}

// GlyphRune returns the wall glyph, or '|' when unset.
func (o ObstacleConfig) GlyphRune() rune {
	return firstRune(o.Glyph, '|')
}

// GapSize returns the total gap height for an obstacle created at the given score.
// The gap shrinks linearly with score and never drops below MinGapSize.
func (o ObstacleConfig) GapSize(score int) int {
	return core.Max(o.MinGapSize, o.BaseSize-o.ShrinkPerPoint*score)
}

func firstRune(s string, def rune) rune {
	if s == "" {
		return def
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return def
	}
	return r
}
