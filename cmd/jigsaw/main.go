// jigsaw is a picture puzzle played with the mouse in the terminal.
//
// Usage:
//
//	jigsaw list              - List built-in pictures and difficulty presets
//	jigsaw play [picture]    - Cut a picture up and solve it
//	jigsaw menu              - Pick a picture and difficulty interactively
//	jigsaw serve             - Start SSH server for remote play
//	jigsaw scores            - Show best times
//	jigsaw config            - Print the default puzzle config
//
// Global flags:
//
//	--fps <rate>         - Status line refresh rate (default: 10)
//	--seed <value>       - RNG seed for reproducible shuffles
//	--db <path>          - Database path (default: ~/.jigsaw/jigsaw.db)
//	--config <path>      - Puzzle config YAML
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Log file for interactive play
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jigsaw/internal/storage"

	// Register the built-in pictures
	_ "github.com/vovakirdan/tui-jigsaw/internal/picture"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jigsaw",
	Short: "Jigsaw - Solve picture puzzles in your terminal",
	Long: `Jigsaw cuts a picture into rectangular pieces, scatters them across
the terminal and lets you drag them back together with the mouse.
Pieces dropped next to a neighbour snap into place.

Available commands:
  list     - Show built-in pictures and difficulty presets
  play     - Solve a puzzle directly
  menu     - Interactive picture picker
  serve    - Start SSH server for remote play
  scores   - View best times
  config   - Print the default puzzle config

Examples:
  jigsaw list
  jigsaw play sunset
  jigsaw play --image ./cat.png --difficulty hard
  jigsaw menu
  jigsaw serve --ssh :2222
  jigsaw scores --rows 3 --cols 3`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 10, "Status line refresh rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to solve database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom puzzle config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", defaultLogFile, "Log file for interactive play")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
