package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jigsaw/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default puzzle config",
	Long: `Print the built-in puzzle configuration as YAML.

Save it as ~/.jigsaw/configs/jigsaw.yaml (picked up automatically) or
anywhere else and pass it with --config. Fields left out of a file keep
their default values.

Examples:
  jigsaw config > ~/.jigsaw/configs/jigsaw.yaml
  jigsaw config > hard.yaml && jigsaw play --config hard.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
	return err
}
