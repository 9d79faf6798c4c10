package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game. For the 1v1 game
the recent match history and the win tally are shown instead.

Examples:
  arcade scores pacman
  arcade scores pacman --limit 25
  arcade scores pacman_pvp`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rows to show")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	info, ok := registry.Lookup(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	if info.Versus {
		err = printVersusHistory(store, info)
	} else {
		err = printHighScores(store, info)
	}
	store.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printHighScores(store *storage.Store, info registry.GameInfo) error {
	scores, err := store.TopScores(info.ID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", info.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-8s  %-5s  %s\n", "Rank", "Player", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %-5s  %s\n", "----", "------", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-8d  %-5d  %s\n", i+1, entry.Player, entry.Score, entry.Level, dateStr)
	}

	stats, err := store.GetGameStats(info.ID)
	if err == nil && stats != nil {
		fmt.Println()
		fmt.Printf("Best: %d   Games: %d   Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

func printVersusHistory(store *storage.Store, info registry.GameInfo) error {
	record, err := store.VersusRecord(info.ID)
	if err != nil {
		return err
	}
	matches, err := store.RecentVersusMatches(flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Match History - %s\n", info.Title)
	fmt.Printf("Pac-Man %d : %d Ghost\n", record.PacmanWins, record.GhostWins)
	fmt.Println()

	if record.PacmanWins+record.GhostWins == 0 {
		fmt.Println("No matches recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-8s  %-8s  %-5s  %s\n", "Date", "Winner", "Score", "Level", "Time")
	fmt.Printf("  %-16s  %-8s  %-8s  %-5s  %s\n", "----", "------", "-----", "-----", "----")
	for _, m := range matches {
		if m.GameID != info.ID {
			continue
		}
		winner := m.Winner
		if winner == "" {
			winner = "-"
		}
		fmt.Printf("  %-16s  %-8s  %-8d  %-5d  %d:%02d\n",
			m.CreatedAt.Local().Format("2006-01-02 15:04"), winner, m.PacScore, m.Level,
			m.Duration/60, m.Duration%60)
	}
	return nil
}
