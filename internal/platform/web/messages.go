package web

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/multiplayer"
)

// ClientMessage is a command sent by the browser.
type ClientMessage struct {
	Type   string `json:"type" jsonschema:"enum=direction,enum=pause,enum=resume,enum=restart"`
	Player int    `json:"player,omitempty" jsonschema:"enum=1,enum=2"` // defaults to 1
	Dir    string `json:"dir,omitempty" jsonschema:"enum=up,enum=down,enum=left,enum=right"`
}

// SnapshotMessage carries the game state after a tick.
type SnapshotMessage struct {
	Type  string `json:"type"`
	Tick  uint64 `json:"tick"`
	State any    `json:"state"`
}

// EndedMessage is sent once when the match is over.
type EndedMessage struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
	Winner string `json:"winner,omitempty"`
	Score  int    `json:"score"`
	Level  int    `json:"level"`
}

// ErrorMessage reports a rejected command.
type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ScoreMessage is one row of GET /scores/:game.
type ScoreMessage struct {
	Player    string `json:"player"`
	Score     int    `json:"score"`
	Level     int    `json:"level"`
	CreatedAt string `json:"created_at"`
}

var directionActions = map[string]core.Action{
	"up":    core.ActionUp,
	"down":  core.ActionDown,
	"left":  core.ActionLeft,
	"right": core.ActionRight,
}

// toInput converts a client command into a seat and an input frame.
func (m ClientMessage) toInput() (multiplayer.PlayerID, core.InputFrame, error) {
	player := multiplayer.Player1
	switch m.Player {
	case 0, 1:
	case 2:
		player = multiplayer.Player2
	default:
		return 0, core.InputFrame{}, fmt.Errorf("unknown player %d", m.Player)
	}

	in := core.NewInputFrame()
	switch m.Type {
	case "direction":
		a, ok := directionActions[strings.ToLower(m.Dir)]
		if !ok {
			return 0, core.InputFrame{}, fmt.Errorf("unknown direction %q", m.Dir)
		}
		in.Set(a)
	case "pause":
		in.Set(core.ActionPause)
	case "resume":
		in.Set(core.ActionConfirm)
	case "restart":
		in.Set(core.ActionRestart)
	default:
		return 0, core.InputFrame{}, fmt.Errorf("unknown message type %q", m.Type)
	}
	return player, in, nil
}

// encodeEvent converts a match event into its wire form.
func encodeEvent(evt multiplayer.SessionEvent) (any, bool) {
	switch e := evt.(type) {
	case multiplayer.SnapshotEvent:
		return SnapshotMessage{Type: "snapshot", Tick: e.Tick, State: e.Snapshot}, true
	case multiplayer.MatchEndedEvent:
		return EndedMessage{
			Type:   "ended",
			Reason: e.Reason.String(),
			Winner: multiplayer.SideName(e.Winner),
			Score:  e.Score,
			Level:  e.Level,
		}, true
	default:
		return nil, false
	}
}
