package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// scriptedGame ends after a fixed number of steps and restarts on R.
type scriptedGame struct {
	versus  bool
	endAt   int
	steps   int
	score   int
	winner  core.PlayerID
	restart int
}

func (g *scriptedGame) ID() string {
	if g.versus {
		return "scripted_pvp"
	}
	return "scripted"
}

func (g *scriptedGame) Title() string                { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig)     { g.steps = 0 }
func (g *scriptedGame) Render(*core.Screen)          {}
func (g *scriptedGame) IsVersus() bool               { return g.versus }
func (g *scriptedGame) Winner() core.PlayerID        { return g.winner }
func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	multi := core.NewMultiInputFrame()
	multi.SetPlayer(core.Player1, in)
	return g.StepMulti(multi)
}

func (g *scriptedGame) StepMulti(in core.MultiInputFrame) core.StepResult {
	if in.Player1().Has(core.ActionRestart) {
		g.restart++
		g.steps = 0
	} else if g.steps < g.endAt {
		g.steps++
	}
	return core.StepResult{State: g.State()}
}

func (g *scriptedGame) State() core.GameState {
	return core.GameState{Score: g.score, Level: 2, Lives: 1, GameOver: g.steps >= g.endAt}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func tick(t *testing.T, m GameModel, n int) GameModel {
	t.Helper()
	for i := 0; i < n; i++ {
		next, _ := m.Update(TickMsg{})
		m = next.(GameModel)
	}
	return m
}

func press(m GameModel, key tea.KeyMsg) GameModel {
	next, _ := m.Update(key)
	return next.(GameModel)
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{endAt: 3, score: 120}
	m := NewGameModel(game, store, core.DefaultConfig(), "ana")

	m = tick(t, m, 10)

	scores, err := store.AllScores("scripted")
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	if s := scores[0]; s.Player != "ana" || s.Score != 120 || s.Level != 2 {
		t.Errorf("score = %+v", s)
	}

	// A restart arms saving for the next game.
	m = press(m, runeKey('r'))
	m = tick(t, m, 10)
	if game.restart != 1 {
		t.Fatalf("restarts = %d", game.restart)
	}
	scores, _ = store.AllScores("scripted")
	if len(scores) != 2 {
		t.Errorf("saved %d scores after restart, want 2", len(scores))
	}
}

func TestRestartDuringPlayStartsNewMatch(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{versus: true, endAt: 100, score: 300, winner: core.Player2}
	m := NewGameModel(game, store, core.DefaultConfig(), "ana")

	m = tick(t, m, 40)
	first := m.matchID

	m = press(m, runeKey('r'))
	m = tick(t, m, 1)
	if game.restart != 1 || m.ticks != 0 {
		t.Fatalf("restarts=%d ticks=%d, want 1 and 0", game.restart, m.ticks)
	}
	if m.matchID == first {
		t.Error("restart kept the old match id")
	}

	tick(t, m, 120)
	matches, _ := store.RecentVersusMatches(10)
	if len(matches) != 1 || matches[0].MatchID == string(first) {
		t.Errorf("matches = %+v, want one for the restarted game", matches)
	}
}

func TestGameModelSkipsZeroScore(t *testing.T) {
	store := openStore(t)
	m := NewGameModel(&scriptedGame{endAt: 1}, store, core.DefaultConfig(), "ana")

	tick(t, m, 3)

	if scores, _ := store.AllScores("scripted"); len(scores) != 0 {
		t.Errorf("zero score saved: %+v", scores)
	}
}

func TestGameModelSavesVersusResult(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{versus: true, endAt: 120, score: 900, winner: core.Player1}
	m := NewGameModel(game, store, core.DefaultConfig(), "ana")

	tick(t, m, 130)

	matches, err := store.RecentVersusMatches(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("saved %d matches, want 1", len(matches))
	}
	vm := matches[0]
	if vm.GameID != "scripted_pvp" || vm.Winner != "pacman" || vm.PacScore != 900 || vm.EndReason != "completed" {
		t.Errorf("match = %+v", vm)
	}
	if vm.Duration != 119/60 {
		t.Errorf("duration = %d", vm.Duration)
	}
	if scores, _ := store.AllScores("scripted_pvp"); len(scores) != 0 {
		t.Error("versus game saved a solo score")
	}
}

func TestBackOnlyWhenStopped(t *testing.T) {
	game := &scriptedGame{endAt: 5}
	m := NewGameModel(game, nil, core.DefaultConfig(), "")

	m = tick(t, m, 1)
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back accepted while playing")
	}

	m = tick(t, m, 10)
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back ignored after game over")
	}
}

func TestSessionFlow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pacman.yaml")
	if err := os.WriteFile(path, []byte("difficulty:\n  enabled: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	pacman.SetConfigPath(path)
	t.Cleanup(func() { pacman.SetConfigPath("") })

	cfg := core.DefaultConfig()
	var model tea.Model = NewSessionModel(openStore(t), cfg, "ana")
	send := func(msg tea.Msg) SessionModel {
		model, _ = model.Update(msg)
		return model.(SessionModel)
	}

	// Second entry is the versus game.
	send(tea.KeyMsg{Type: tea.KeyDown})
	s := send(tea.KeyMsg{Type: tea.KeyEnter})
	if s.stage != stageDifficulty || s.pending.GameID != pacman.IDVersus {
		t.Fatalf("stage = %v pending = %+v", s.stage, s.pending)
	}

	// Back returns to a fresh menu.
	s = send(tea.KeyMsg{Type: tea.KeyEsc})
	if s.stage != stageMenu || s.menu.Selected() != nil {
		t.Fatalf("stage after back = %v", s.stage)
	}

	// Pick classic on hard.
	send(tea.KeyMsg{Type: tea.KeyEnter})
	send(tea.KeyMsg{Type: tea.KeyDown})
	s = send(tea.KeyMsg{Type: tea.KeyEnter})
	if s.stage != stageGame || s.gameModel == nil {
		t.Fatalf("stage = %v", s.stage)
	}
	game, ok := s.gameModel.game.(*pacman.Game)
	if !ok || game.ID() != pacman.IDClassic {
		t.Fatalf("game = %T", s.gameModel.game)
	}
	s.gameModel.Init()
	if lives := game.Engine().Params().StartingLives; lives != 2 {
		t.Errorf("lives = %d, want 2 on hard", lives)
	}

	// Tab from the menu opens the scoreboard; esc comes back.
	s.stage = stageMenu
	model = s
	s = send(tea.KeyMsg{Type: tea.KeyTab})
	if s.stage != stageScores {
		t.Fatalf("stage = %v, want scores", s.stage)
	}
	s = send(tea.KeyMsg{Type: tea.KeyEsc})
	if s.stage != stageMenu {
		t.Errorf("stage = %v, want menu", s.stage)
	}
}
