package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/platform/web"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the websocket host",
	Long: `Serve Pac-Man over websockets. Every connection to /play/classic or
/play/pvp runs its own game; the client sends the inputs of both seats and
receives a snapshot after every tick.

Endpoints:
  GET /healthz        - status and connected sessions
  GET /play/:mode     - websocket, mode is classic or pvp (?player=name)
  GET /scores/:game   - top scores as JSON (?limit=n)

Examples:
  arcade web
  arcade web --addr :9000 --fps 30`,
	Run: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP listen address (host:port)")
}

func runWeb(_ *cobra.Command, _ []string) {
	if flagFPS <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --fps must be positive")
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade-web",
	})

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	server := web.NewServer(web.Config{
		Address:  flagWebAddr,
		TickRate: flagFPS,
		Store:    store,
		Logger:   logger,
	})

	ctx, stop := signalContext()
	defer stop()

	runErr := server.ListenAndServe(ctx)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", runErr)
		os.Exit(1)
	}
}
