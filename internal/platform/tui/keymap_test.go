package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name   string
		versus bool
		key    tea.KeyMsg
		player core.PlayerID
		action core.Action
		quit   bool
	}{
		{"arrow solo", false, tea.KeyMsg{Type: tea.KeyLeft}, core.Player1, core.ActionLeft, false},
		{"wasd solo", false, runeKey('w'), core.Player1, core.ActionUp, false},
		{"arrow versus", true, tea.KeyMsg{Type: tea.KeyDown}, core.Player1, core.ActionDown, false},
		{"wasd versus", true, runeKey('d'), core.Player2, core.ActionRight, false},
		{"enter", true, tea.KeyMsg{Type: tea.KeyEnter}, core.Player1, core.ActionConfirm, false},
		{"space", false, tea.KeyMsg{Type: tea.KeySpace}, core.Player1, core.ActionConfirm, false},
		{"pause", false, runeKey('p'), core.Player1, core.ActionPause, false},
		{"restart", true, runeKey('r'), core.Player1, core.ActionRestart, false},
		{"back", false, tea.KeyMsg{Type: tea.KeyEsc}, core.Player1, core.ActionBack, false},
		{"quit", false, runeKey('q'), core.Player1, core.ActionQuit, true},
		{"ctrl+c", true, tea.KeyMsg{Type: tea.KeyCtrlC}, core.Player1, core.ActionQuit, true},
		{"unbound", false, runeKey('z'), core.Player1, core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km := NewKeyMapper()
			if tt.versus {
				km = NewVersusKeyMapper()
			}
			player, action, quit := km.MapKey(tt.key)
			if player != tt.player || action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v, %v; want %v, %v, %v",
					tt.key.String(), player, action, quit, tt.player, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToMultiFrame(t *testing.T) {
	km := NewVersusKeyMapper()
	frame := core.NewMultiInputFrame()

	km.MapKeyToMultiFrame(tea.KeyMsg{Type: tea.KeyUp}, &frame)
	km.MapKeyToMultiFrame(runeKey('a'), &frame)

	if !frame.Player1().Has(core.ActionUp) || frame.Player1().Has(core.ActionLeft) {
		t.Errorf("player 1 = %+v", frame.Player1())
	}
	if !frame.Player2().Has(core.ActionLeft) {
		t.Errorf("player 2 = %+v", frame.Player2())
	}
	if !km.MapKeyToMultiFrame(runeKey('q'), &frame) {
		t.Error("q was not a quit request")
	}
	if frame.Player1().Has(core.ActionQuit) {
		t.Error("quit leaked into the input frame")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		key  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.key); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.key.String(), got, tt.want)
		}
	}
}
