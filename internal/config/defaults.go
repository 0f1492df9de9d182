package config

import (
	_ "embed"
)

//go:embed defaults/jigsaw.yaml
var defaultJigsawYAML []byte

// DefaultPuzzleConfig returns the default puzzle configuration.
// It matches defaults/jigsaw.yaml.
func DefaultPuzzleConfig() PuzzleConfig {
	return PuzzleConfig{
		Grid: GridConfig{
			Rows:    3,
			Columns: 3,
		},
		Canvas: CanvasConfig{
			Scale: 0.8,
		},
		Snap: SnapConfig{
			Distance: 3,
		},
		Solved: SolvedConfig{
			Tolerance: 0,
		},
		Picture: PictureConfig{
			Name: "sunset",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultJigsawYAML
}
