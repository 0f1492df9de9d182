package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jigsaw/internal/config"
	"github.com/vovakirdan/tui-jigsaw/internal/platform/tui"
	"github.com/vovakirdan/tui-jigsaw/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a picture and difficulty picker",
	Long: `Start jigsaw in interactive menu mode.

Pick a picture with the arrow keys, choose a difficulty with left/right
and press Enter to play. Esc in a puzzle returns to the menu.

Controls:
  Up/Down/j/k     - Choose picture
  Left/Right/h/l  - Choose difficulty
  Enter/Space     - Play
  Tab             - Best times
  Q               - Quit

Examples:
  jigsaw menu
  jigsaw menu --config ./my-jigsaw.yaml
  jigsaw menu --db ./jigsaw.db`,
	Run: runMenu,
}

// presetFor finds the preset whose grid matches g, defaulting to normal.
func presetFor(g config.GridConfig) config.DifficultyPreset {
	for _, p := range config.Presets {
		if pg, _ := config.GridForPreset(p); pg == g {
			return p
		}
	}
	return config.DifficultyNormal
}

func runMenu(_ *cobra.Command, _ []string) {
	base, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open solve storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open solve database: %v\n", err)
		store = nil
	}

	cfg := terminalConfig()
	preset := presetFor(base.Grid)

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Keep size changes and the chosen difficulty for the next round
		cfg = menuResult.Config
		preset = menuResult.Preset

		if menuResult.Quit {
			break
		}

		puzzle := base
		config.ApplyPreset(&puzzle, preset)

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, puzzle.Grid)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		if menuResult.PictureID == "" {
			break
		}
		puzzle.Picture = config.PictureConfig{Name: menuResult.PictureID}

		// Fresh shuffle each round
		cfg.Seed = time.Now().UnixNano()

		backToMenu, err := tui.Run(tui.Options{
			Puzzle:  puzzle,
			Runtime: cfg,
			Store:   store,
			Logger:  logger,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running puzzle: %v\n", err)
		}
		if !backToMenu {
			break
		}
	}

	closeAll(store, closeLog)
}
