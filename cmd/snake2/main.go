// snake2 plays Snake in the terminal on top of a bounded occupancy grid.
//
// Usage:
//
//	snake2 list                 - List available variants
//	snake2 play [variant]       - Play a variant (default: snake)
//	snake2 serve                - Start SSH server for remote play
//	snake2 history [variant]    - Browse finished sessions
//	snake2 config               - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set journal path (default: ~/.snake2/sessions.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file while playing
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/alan-andrade/snake2/internal/games/snake"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
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
	Use:   "snake2",
	Short: "snake2 - Snake in your terminal",
	Long: `snake2 is a terminal Snake game built on a bounded occupancy grid.
Every cell holds at most one object: a snake segment, an apple or a wall.

Available commands:
  list     - Show all available variants
  play     - Play a variant
  serve    - Start SSH server for remote play
  history  - Browse finished sessions
  config   - Print the default configuration

Examples:
  snake2 list
  snake2 play
  snake2 play snake_seeded --difficulty hard
  snake2 serve --ssh :2222
  snake2 history snake`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake2/sessions.db", "Path to session journal")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (play only logs when set)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// fileLogger logs to --log-file, or discards when it is unset.
// The returned close func is never nil.
func fileLogger(prefix string) (*log.Logger, func(), error) {
	if flagLogFile == "" {
		l, err := newLogger(io.Discard, prefix)
		return l, func() {}, err
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, func() {}, fmt.Errorf("cannot open log file: %w", err)
	}
	l, err := newLogger(f, prefix)
	if err != nil {
		f.Close()
		return nil, func() {}, err
	}
	return l, func() { f.Close() }, nil
}
