package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "jigsaw.yaml"

// Load loads the puzzle configuration.
// Search order: customPath -> ~/.jigsaw/configs/jigsaw.yaml -> ./configs/jigsaw.yaml -> embedded default
//
// Files only need to set the fields they change; the rest keep their defaults.
func Load(customPath string) (PuzzleConfig, error) {
	cfg := DefaultPuzzleConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", fileName)); ok {
		return c, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultJigsawYAML, &cfg); err != nil {
		return DefaultPuzzleConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, unparsable and invalid
// files are skipped so the next location is tried.
func tryLoad(path string) (PuzzleConfig, bool) {
	cfg := DefaultPuzzleConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jigsaw", "configs", filename)
}

// MaxGridSide bounds rows and columns; a terminal cannot show more pieces.
const MaxGridSide = 32

// Validate checks that every field is in range.
// Errors name the offending YAML field.
func (c PuzzleConfig) Validate() error {
	var errs []error
	if c.Grid.Rows < 1 || c.Grid.Rows > MaxGridSide {
		errs = append(errs, fmt.Errorf("grid.rows must be in [1, %d], got %d", MaxGridSide, c.Grid.Rows))
	}
	if c.Grid.Columns < 1 || c.Grid.Columns > MaxGridSide {
		errs = append(errs, fmt.Errorf("grid.columns must be in [1, %d], got %d", MaxGridSide, c.Grid.Columns))
	}
	if c.Canvas.Scale <= 0 || c.Canvas.Scale > 1 {
		errs = append(errs, fmt.Errorf("canvas.scale must be in (0, 1], got %g", c.Canvas.Scale))
	}
	if c.Snap.Distance < 0 {
		errs = append(errs, fmt.Errorf("snap.distance must not be negative, got %d", c.Snap.Distance))
	}
	if c.Solved.Tolerance < 0 {
		errs = append(errs, fmt.Errorf("solved.tolerance must not be negative, got %d", c.Solved.Tolerance))
	}
	if c.Picture.Name == "" && c.Picture.Path == "" {
		errs = append(errs, errors.New("picture.name or picture.path must be set"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
