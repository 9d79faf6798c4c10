package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// In versus play the keyboard is split: arrows steer Pac-Man (player 1)
// and WASD steers Blinky (player 2). Solo play accepts both for player 1.
type KeyMapper struct {
	versus bool
}

// NewKeyMapper creates a key mapper for solo play.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// NewVersusKeyMapper creates a key mapper with the split keyboard layout.
func NewVersusKeyMapper() *KeyMapper {
	return &KeyMapper{versus: true}
}

var arrowKeys = map[string]core.Action{
	"up":    core.ActionUp,
	"down":  core.ActionDown,
	"left":  core.ActionLeft,
	"right": core.ActionRight,
}

var wasdKeys = map[string]core.Action{
	"w": core.ActionUp,
	"s": core.ActionDown,
	"a": core.ActionLeft,
	"d": core.ActionRight,
}

// MapKey translates a key message to an action and the player it belongs to.
// Returns whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (player core.PlayerID, action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.Player1, core.ActionQuit, true
	}

	if a, ok := arrowKeys[key]; ok {
		return core.Player1, a, false
	}
	if a, ok := wasdKeys[key]; ok {
		if km.versus {
			return core.Player2, a, false
		}
		return core.Player1, a, false
	}

	switch key {
	case "enter", " ":
		return core.Player1, core.ActionConfirm, false
	case "b", "esc":
		return core.Player1, core.ActionBack, false
	case "p":
		return core.Player1, core.ActionPause, false
	case "r":
		return core.Player1, core.ActionRestart, false
	}

	return core.Player1, core.ActionNone, false
}

// MapKeyToMultiFrame records a key press in the frame of the player it
// belongs to. Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToMultiFrame(msg tea.KeyMsg, frame *core.MultiInputFrame) bool {
	player, action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		f := frame.Player(player)
		f.Set(action)
		frame.SetPlayer(player, f)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
