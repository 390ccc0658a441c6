package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would start with, as YAML.

Search order: --config, ~/.snake/configs/snake.yaml,
./configs/snake.yaml, built-in defaults.

Examples:
  snake config
  snake config > ~/.snake/configs/snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, src, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "# source: %s\n", src)
	_, err = os.Stdout.Write(data)
	return err
}
