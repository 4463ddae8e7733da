package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alan-andrade/snake2/internal/config"
	"github.com/alan-andrade/snake2/internal/core"
	"github.com/alan-andrade/snake2/internal/games/snake"
	"github.com/alan-andrade/snake2/internal/platform/tui"
	"github.com/alan-andrade/snake2/internal/registry"
	"github.com/alan-andrade/snake2/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a Snake variant",
	Long: `Start playing the specified variant (default: snake).

Variants:
  snake         - Classic board, empty cells are not stored
  snake_seeded  - Every cell starts holding an explicit Empty marker

Controls:
  Arrows/WASD/HJKL  - Steer
  P/Esc             - Pause
  R                 - Restart (after game over)
  ?                 - More keys
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Start slow, three apples on the board
  normal - Start at 30% difficulty, speeds up with every apple
  hard   - Start at 70% difficulty, no speed floor
  fixed  - No speed-up

Examples:
  snake2 play
  snake2 play snake_seeded
  snake2 play --difficulty hard
  snake2 play --config ./my-snake.yaml --log-file snake.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := string(snake.VariantClassic)
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'snake2 list' to see available variants.")
		os.Exit(1)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The alternate screen owns stdout, so logs only go to --log-file.
	logger, closeLog, err := fileLogger("snake2")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Settings for games created through the registry
	snake.SetConfigPath(flagConfig)
	snake.SetDifficultyPreset(preset)
	snake.SetLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	var journal tui.Journal
	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without the journal
		fmt.Fprintf(os.Stderr, "Warning: could not open session journal: %v\n", err)
	} else {
		journal = store
	}

	runErr := tui.Run(game, journal, cfg, localPlayer(), logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// localPlayer returns the name journaled for local sessions.
func localPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}
