package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alan-andrade/snake2/internal/platform/tui"
	"github.com/alan-andrade/snake2/internal/registry"
	"github.com/alan-andrade/snake2/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryPlain bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [variant]",
	Short: "Browse finished sessions",
	Long: `Show the journal of finished sessions.

In a terminal this opens an interactive table; use --plain or pipe the
output to print a listing instead.

Examples:
  snake2 history
  snake2 history snake_seeded --plain --limit 20
  snake2 history snake --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of sessions to print with --plain")
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print a plain listing")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the journal for the variant")
}

func runHistory(cmd *cobra.Command, args []string) {
	gameID := ""
	if len(args) > 0 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'snake2 list' to see available variants.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if gameID == "" {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a variant")
			os.Exit(1)
		}
		if err := store.ClearSessions(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared the %s journal.\n", gameID)
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagHistoryPlain && term.IsTerminal(fd) {
		width, height, err := term.GetSize(fd)
		if err != nil {
			width, height = 80, 24
		}
		if err := tui.RunHistory(store, gameID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printHistory(store, gameID)
}

func printHistory(store *storage.Store, gameID string) {
	sessions, err := store.RecentSessions(gameID, flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-13s  %-12s  %6s  %6s  %s\n", "Date", "Variant", "Player", "Length", "Apples", "Ended")
	fmt.Printf("  %-16s  %-13s  %-12s  %6s  %6s  %s\n", "----", "-------", "------", "------", "------", "-----")
	for _, s := range sessions {
		fmt.Printf("  %-16s  %-13s  %-12s  %6d  %6d  %s\n",
			s.CreatedAt.Format("2006-01-02 15:04"), s.GameID, s.Player, s.Length, s.Apples, s.EndReason)
	}

	if gameID == "" {
		stats, err := store.Stats()
		if err != nil {
			return
		}
		fmt.Println()
		for _, info := range registry.List() {
			if gs, ok := stats[info.ID]; ok {
				fmt.Printf("%s: %d sessions, longest %d, %d apples\n", info.Title, gs.Sessions, gs.Longest, gs.TotalApples)
			}
		}
		return
	}

	if longest, err := store.LongestRun(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Longest: %d\n", longest)
	}
}
