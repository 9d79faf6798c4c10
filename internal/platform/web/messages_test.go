package web

import (
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/multiplayer"
)

func TestClientMessageToInput(t *testing.T) {
	tests := []struct {
		name    string
		msg     ClientMessage
		player  multiplayer.PlayerID
		action  core.Action
		wantErr string
	}{
		{"default seat", ClientMessage{Type: "direction", Dir: "up"}, multiplayer.Player1, core.ActionUp, ""},
		{"second seat", ClientMessage{Type: "direction", Player: 2, Dir: "LEFT"}, multiplayer.Player2, core.ActionLeft, ""},
		{"pause", ClientMessage{Type: "pause"}, multiplayer.Player1, core.ActionPause, ""},
		{"resume", ClientMessage{Type: "resume", Player: 1}, multiplayer.Player1, core.ActionConfirm, ""},
		{"restart", ClientMessage{Type: "restart"}, multiplayer.Player1, core.ActionRestart, ""},
		{"bad seat", ClientMessage{Type: "pause", Player: 3}, 0, 0, "unknown player 3"},
		{"bad direction", ClientMessage{Type: "direction", Dir: "north"}, 0, 0, `unknown direction "north"`},
		{"bad type", ClientMessage{Type: "jump"}, 0, 0, `unknown message type "jump"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player, in, err := tt.msg.toInput()
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("err = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if player != tt.player || !in.Has(tt.action) {
				t.Errorf("got player %v input %+v", player, in)
			}
		})
	}
}

func TestEncodeEvent(t *testing.T) {
	msg, ok := encodeEvent(multiplayer.MatchEndedEvent{
		Reason: multiplayer.MatchEndReasonCompleted,
		Winner: multiplayer.Player2,
		Score:  1200,
		Level:  2,
	})
	if !ok {
		t.Fatal("ended event not encoded")
	}
	ended := msg.(EndedMessage)
	if ended.Type != "ended" || ended.Reason != "completed" || ended.Winner != "ghost" || ended.Score != 1200 {
		t.Errorf("ended = %+v", ended)
	}

	snap, ok := encodeEvent(multiplayer.SnapshotEvent{Tick: 7})
	if !ok || snap.(SnapshotMessage).Tick != 7 || snap.(SnapshotMessage).Type != "snapshot" {
		t.Errorf("snapshot = %+v", snap)
	}
}
