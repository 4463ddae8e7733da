package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alan-andrade/snake2/internal/config"
)

var flagCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the embedded default snake.yaml, or validate a config file.

Config search order when playing:
  1. --config path
  2. ~/.snake2/configs/snake.yaml
  3. ./configs/snake.yaml
  4. built-in defaults

Examples:
  snake2 config > ~/.snake2/configs/snake.yaml
  snake2 config --check ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate the given config file instead of printing defaults")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagCheck == "" {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.LoadSnake(flagCheck)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s: ok (%dx%d field, snake length %d, %d apple(s))\n",
		flagCheck, cfg.Board.Width, cfg.Board.Height, cfg.Player.InitialLength, cfg.Apples.Count)
}
