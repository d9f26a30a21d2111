package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/glyphflap/internal/core"
)

// DifficultyPreset represents a named difficulty level.
// Presets only move the starting gap size; the per-point shrink stays linear.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the accepted preset names.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// PresetNames returns the preset names as a comma-separated list.
func PresetNames() string {
	names := make([]string, 0, len(Presets()))
	for _, p := range Presets() {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}

// baseSizeDelta is the change applied to obstacles.base_size per preset.
var baseSizeDelta = map[DifficultyPreset]int{
	DifficultyEasy:   4,
	DifficultyNormal: 0,
	DifficultyHard:   -4,
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config unchanged.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	delta, ok := baseSizeDelta[preset]
	if !ok {
		return fmt.Errorf("config: unknown difficulty %q (want one of: %s)", preset, PresetNames())
	}
	cfg.Obstacles.BaseSize = core.Max(cfg.Obstacles.MinGapSize, cfg.Obstacles.BaseSize+delta)
	return nil
}
