package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/alan-andrade/snake2/internal/config"
	"github.com/alan-andrade/snake2/internal/games/snake"
	"github.com/alan-andrade/snake2/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeGame   string
	flagServeConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the snake2 SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection plays its own independent session on its own board.
Finished sessions are appended to the server's journal.

Clients pick a variant with the SSH command, or get the --game default:
  ssh localhost -p 23234
  ssh localhost -p 23234 snake_seeded

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.snake2/host_key

Examples:
  snake2 serve                           # Listen on :23234 with auto-generated key
  snake2 serve --ssh :2222               # Listen on port 2222
  snake2 serve --host-key ./my_host_key  # Use specific host key
  snake2 serve --db ./sessions.db        # Use specific journal`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeGame, "game", string(snake.VariantClassic), "Variant served when the client names none")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom game config YAML")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, err := newLogger(os.Stderr, "snake2-ssh")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Fail early on a broken config instead of once per session
	if _, err := config.LoadSnake(flagServeConfig); err != nil {
		logger.Fatal("invalid config", "err", err)
	}
	snake.SetConfigPath(flagServeConfig)
	snake.SetLogger(logger)

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		GameID:      flagServeGame,
		TickRate:    flagFPS,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		logger.Fatal("cannot create server", "err", err)
	}

	fmt.Printf("Starting snake2 SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
