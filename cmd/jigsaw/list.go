package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jigsaw/internal/config"
	"github.com/vovakirdan/tui-jigsaw/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in pictures and difficulty presets",
	Long:  `Shows the pictures that can be played without an image file, and the grid of each difficulty preset.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	pictures := registry.List()

	if len(pictures) == 0 {
		fmt.Println("No pictures available.")
		return
	}

	fmt.Println("Built-in pictures:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range pictures {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, p := range pictures {
		fmt.Printf("  %-*s  %s\n", maxIDLen, p.ID, p.Title)
	}

	fmt.Println()
	fmt.Println("Difficulty presets:")
	fmt.Println()
	for _, p := range config.Presets {
		g, _ := config.GridForPreset(p)
		fmt.Printf("  %-8s %dx%d (%d pieces)\n", p, g.Rows, g.Columns, g.Rows*g.Columns)
	}

	fmt.Println()
	fmt.Println("Run 'jigsaw play <id>' to solve a picture.")
}
