// Package multiplayer runs hosted matches: an authoritative game loop that
// owns one game, collects input for both seats and streams snapshots to a
// session. It knows nothing about terminals or sockets.
package multiplayer

import (
	"crypto/rand"
	"encoding/base32"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// PlayerID is an alias to core.PlayerID for convenience.
type PlayerID = core.PlayerID

// Re-export player constants for convenience.
const (
	Player1 = core.Player1
	Player2 = core.Player2
)

// SessionID uniquely identifies a connection (SSH session, websocket).
type SessionID string

// MatchID uniquely identifies a hosted match.
type MatchID string

// MatchMode defines how a hosted match is configured.
type MatchMode int

const (
	// MatchModeSolo is classic single-player Pac-Man.
	MatchModeSolo MatchMode = iota

	// MatchModeLocalVersus is Pac-Man against a player-driven Blinky,
	// both seats fed by the same session.
	MatchModeLocalVersus
)

// String returns a human-readable name for the match mode.
func (m MatchMode) String() string {
	switch m {
	case MatchModeSolo:
		return "Solo"
	case MatchModeLocalVersus:
		return "Local 1v1"
	default:
		return "Unknown"
	}
}

// NewMatchID returns a random identifier such as "M-4K2Q7ZPA".
func NewMatchID() MatchID {
	b := make([]byte, 5)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand does not fail on supported platforms
		panic(err)
	}
	code := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(b)
	return MatchID("M-" + strings.ToUpper(code))
}
