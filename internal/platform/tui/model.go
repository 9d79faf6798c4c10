package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/multiplayer"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// GameModel is the Bubble Tea model that runs one game: it feeds keys in,
// steps the simulation on every tick and records the result once the game
// is over.
type GameModel struct {
	game       registry.Game
	versus     registry.VersusGame // nil for single-player games
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	player     string // name stored with scores
	inputFrame core.MultiInputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	matchID    multiplayer.MatchID
	ticks      int
	quitting   bool
	backToMenu bool
	standalone bool // quit the program instead of returning to a menu
	saved      bool // result recorded for the current game over
	saveErr    error
}

// NewGameModel creates a game model. The player name is stored with solo
// scores; an empty name is saved as anonymous.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) GameModel {
	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		player:     player,
		inputFrame: core.NewMultiInputFrame(),
		keyMapper:  NewKeyMapper(),
		matchID:    multiplayer.NewMatchID(),
	}
	if vg, ok := game.(registry.VersusGame); ok && vg.IsVersus() {
		m.versus = vg
		m.keyMapper = NewVersusKeyMapper()
	}
	return m
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The maze has a fixed size, so a resize only changes the layout.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToMultiFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu is only offered when the game is not running.
	if m.inputFrame.Player1().Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	wasOver := m.gameState.GameOver
	restarting := m.inputFrame.Player1().Has(core.ActionRestart) ||
		(m.versus != nil && m.inputFrame.Player2().Has(core.ActionRestart))

	var result core.StepResult
	if m.versus != nil {
		result = m.versus.StepMulti(m.inputFrame)
	} else {
		result = m.game.Step(m.inputFrame.Player1())
	}
	m.gameState = result.State
	m.inputFrame.Clear()

	switch {
	case (wasOver || restarting) && !m.gameState.GameOver:
		// Restarted.
		m.saved = false
		m.saveErr = nil
		m.ticks = 0
		m.matchID = multiplayer.NewMatchID()
	case !m.gameState.GameOver:
		m.ticks++
	case !m.saved:
		m.saveErr = m.saveResult()
		m.saved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveResult records a finished game: versus games as a match result,
// solo games as a score when anything was scored.
func (m GameModel) saveResult() error {
	if m.store == nil {
		return nil
	}

	if m.versus != nil {
		return m.store.SaveMatchResult(multiplayer.MatchResultData{
			MatchID:      string(m.matchID),
			GameID:       m.game.ID(),
			Winner:       multiplayer.SideName(m.versus.Winner()),
			PacScore:     m.gameState.Score,
			Level:        m.gameState.Level,
			EndReason:    multiplayer.MatchEndReasonCompleted.String(),
			DurationSecs: m.ticks / max(m.config.TickRate, 1),
		})
	}

	if m.gameState.Score <= 0 {
		return nil
	}
	_, err := m.store.SaveScore(m.game.ID(), m.player, m.gameState.Score, m.gameState.Level)
	return err
}

// saveScreenshot writes the current screen as plain text to
// ~/.arcade/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.saveErr != nil {
		out += "\n" + errorStyle.Render("could not save result: "+m.saveErr.Error())
	}
	return out
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the local terminal.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) error {
	model := NewGameModel(game, store, cfg, player)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
