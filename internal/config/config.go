// Package config provides YAML-based puzzle configuration loading and
// difficulty presets.
package config

import (
	"github.com/vovakirdan/tui-jigsaw/internal/core"
)

// PuzzleConfig contains all configuration for one puzzle.
type PuzzleConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Canvas  CanvasConfig  `yaml:"canvas"`
	Snap    SnapConfig    `yaml:"snap"`
	Solved  SolvedConfig  `yaml:"solved"`
	Picture PictureConfig `yaml:"picture"`
}

// GridConfig defines how the picture is cut.
type GridConfig struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

// CanvasConfig defines how large the picture is drawn.
type CanvasConfig struct {
	Scale float64 `yaml:"scale"` // fraction of the play area, (0, 1]
}

// SnapConfig defines when a dropped piece joins a neighbour.
type SnapConfig struct {
	Distance int `yaml:"distance"` // cells
}

// SolvedConfig defines how exact the assembled picture must be.
type SolvedConfig struct {
	Tolerance int `yaml:"tolerance"` // cells
}

// PictureConfig selects the picture to cut up.
// Path, when set, takes precedence over Name.
type PictureConfig struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// CanvasSize returns the picture size in cells for the given play area.
func (c PuzzleConfig) CanvasSize(area core.Rect) core.Size {
	return core.Size{
		W: int(float64(area.W) * c.Canvas.Scale),
		H: int(float64(area.H) * c.Canvas.Scale),
	}
}
