package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the difficulty presets from easiest to hardest.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// GridForPreset returns the grid for a difficulty preset.
func GridForPreset(preset DifficultyPreset) (GridConfig, bool) {
	switch preset {
	case DifficultyEasy:
		return GridConfig{Rows: 2, Columns: 2}, true
	case DifficultyNormal:
		return GridConfig{Rows: 3, Columns: 3}, true
	case DifficultyHard:
		return GridConfig{Rows: 4, Columns: 6}, true
	default:
		return GridConfig{}, false
	}
}

// ParsePreset converts a flag value to a preset. Case is ignored.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := GridForPreset(p); !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
	return p, nil
}

// ApplyPreset replaces the grid with the preset's grid.
// Unknown presets leave the config unchanged.
func ApplyPreset(cfg *PuzzleConfig, preset DifficultyPreset) {
	if g, ok := GridForPreset(preset); ok {
		cfg.Grid = g
	}
}
