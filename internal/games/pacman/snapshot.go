package pacman

import (
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
	"github.com/vovakirdan/tui-pacman/internal/multiplayer"
)

// Snapshot is the engine snapshot plus the match outcome, sent to hosts
// after every tick.
type Snapshot struct {
	core.Snapshot
	GameID   string `json:"game_id"`
	GameOver bool   `json:"game_over"`
	Winner   string `json:"winner,omitempty"` // "pacman" or "ghost" in versus play
	Message  string `json:"message,omitempty"`
}

// IsGameSnapshot implements multiplayer.GameSnapshot.
func (Snapshot) IsGameSnapshot() {}

// Snapshot returns the current state for transmission.
func (g *Game) Snapshot() multiplayer.GameSnapshot {
	return g.FullSnapshot()
}

// FullSnapshot is Snapshot with its concrete type.
func (g *Game) FullSnapshot() Snapshot {
	if g.engine == nil {
		return Snapshot{GameID: g.ID()}
	}
	return Snapshot{
		Snapshot: g.engine.Snapshot(),
		GameID:   g.ID(),
		GameOver: g.IsGameOver(),
		Winner:   multiplayer.SideName(g.Winner()),
		Message:  g.message(),
	}
}

var _ multiplayer.HostedGame = (*Game)(nil)
