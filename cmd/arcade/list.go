package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with its player count and, when a scores database is available, how often it was played.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// Stats are optional; the list works without a database.
	var stats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, _ = store.GetAllGamesStats()
		store.Close()
	}

	fmt.Println("Available games:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-16s  %-7s  %s\n", maxIDLen, "ID", "Title", "Players", "Best")
	fmt.Printf("  %-*s  %-16s  %-7s  %s\n", maxIDLen, "--", "-----", "-------", "----")

	for _, g := range games {
		players := "1"
		if g.Versus {
			players = "2"
		}
		best := "-"
		if s, ok := stats[g.ID]; ok {
			best = fmt.Sprintf("%d (%d games)", s.HighScore, s.GamesCount)
		}
		fmt.Printf("  %-*s  %-16s  %-7s  %s\n", maxIDLen, g.ID, g.Title, players, best)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}
