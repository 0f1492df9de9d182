package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-jigsaw/internal/config"
	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/platform/tui"
	"github.com/vovakirdan/tui-jigsaw/internal/registry"
	"github.com/vovakirdan/tui-jigsaw/internal/storage"
)

var (
	flagRows       int
	flagCols       int
	flagDifficulty string
	flagImage      string
)

var playCmd = &cobra.Command{
	Use:   "play [picture]",
	Short: "Solve a puzzle",
	Long: `Cut a picture into pieces and solve it.

The picture is a built-in name (see 'jigsaw list') or an image file given
with --image. PNG, JPEG, GIF, BMP, TIFF and WebP files are supported.

Controls:
  Mouse drag - Move a piece
  R          - Shuffle again
  P          - Peek at the whole picture
  ?          - Help
  Ctrl+S     - Save a screenshot
  Esc/Q      - Quit

Difficulty options:
  easy   - 2x2 grid
  normal - 3x3 grid
  hard   - 4x6 grid

Examples:
  jigsaw play
  jigsaw play rings --difficulty easy
  jigsaw play --image ./photo.jpg --rows 4 --cols 5
  jigsaw play sunset --config ./my-jigsaw.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Grid rows (overrides config and difficulty)")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Grid columns (overrides config and difficulty)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagImage, "image", "", "Image file to cut up instead of a built-in picture")
}

// puzzleConfig loads the config file and applies command-line overrides:
// difficulty first, then explicit rows and columns, then the picture.
func puzzleConfig(pictureID string) (config.PuzzleConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagRows > 0 {
		cfg.Grid.Rows = flagRows
	}
	if flagCols > 0 {
		cfg.Grid.Columns = flagCols
	}

	if pictureID != "" {
		cfg.Picture.Name = pictureID
		cfg.Picture.Path = ""
	}
	if flagImage != "" {
		cfg.Picture.Path = flagImage
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if cfg.Picture.Path == "" && !registry.Exists(cfg.Picture.Name) {
		return cfg, fmt.Errorf("unknown picture %q", cfg.Picture.Name)
	}
	return cfg, nil
}

// terminalConfig reads the terminal size, falling back to 80x24.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(cmd *cobra.Command, args []string) {
	pictureID := ""
	if len(args) > 0 {
		pictureID = args[0]
	}

	puzzle, err := puzzleConfig(pictureID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if pictureID != "" && !registry.Exists(pictureID) {
			fmt.Fprintln(os.Stderr, "Run 'jigsaw list' to see available pictures.")
		}
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
		// Continue without storage - the puzzle still works
		store = nil
	}

	opts := tui.Options{
		Puzzle:  puzzle,
		Runtime: terminalConfig(),
		Store:   store,
		Logger:  logger,
	}

	// Refuse to start a puzzle that cannot be cut for this terminal.
	model := tui.NewModel(opts)
	if buildErr := model.Err(); buildErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", buildErr)
		closeAll(store, closeLog)
		os.Exit(1)
	}

	// Run the puzzle that was just checked
	_, runErr := tui.RunModel(model)

	// Close store before potential exit
	closeAll(store, closeLog)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running puzzle: %v\n", runErr)
		os.Exit(1)
	}
}

func closeAll(store *storage.Store, closeLog func()) {
	if store != nil {
		store.Close()
	}
	closeLog()
}
