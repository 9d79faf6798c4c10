package pacman

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	platformcore "github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

// useConfig points the package at a temporary config file so tests never
// read the user's ~/.arcade settings.
func useConfig(t *testing.T, yaml string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pacman.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	SetDifficultyPreset("")
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})
}

func newGame(t *testing.T, mode core.Mode) *Game {
	t.Helper()
	useConfig(t, "difficulty:\n  enabled: false\n")
	g := New(mode)
	g.Reset(platformcore.DefaultConfig())
	return g
}

func frame(actions ...platformcore.Action) platformcore.InputFrame {
	f := platformcore.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// playUntilOver holds Pac-Man against the left wall of his corridor and
// resumes after every death until the game ends.
func playUntilOver(t *testing.T, g *Game, maxTicks int) {
	t.Helper()
	g.Step(frame(platformcore.ActionLeft))
	for i := 0; i < maxTicks; i++ {
		if g.IsGameOver() {
			return
		}
		if g.State().Paused {
			g.Step(frame(platformcore.ActionConfirm, platformcore.ActionLeft))
			continue
		}
		g.Step(frame())
	}
	t.Fatalf("game not over after %d ticks", maxTicks)
}

func TestRegistered(t *testing.T) {
	tests := []struct {
		id     string
		title  string
		versus bool
	}{
		{IDClassic, "Pac-Man", false},
		{IDVersus, "Pac-Man (1v1)", true},
	}
	for _, tt := range tests {
		info, ok := registry.Lookup(tt.id)
		if !ok {
			t.Fatalf("%s not registered", tt.id)
		}
		if info.Title != tt.title || info.Versus != tt.versus {
			t.Errorf("%s = %+v", tt.id, info)
		}

		g, err := registry.Create(tt.id)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := g.(registry.VersusGame); !ok {
			t.Errorf("%s does not implement VersusGame", tt.id)
		}
	}
}

func TestResetUsesConfig(t *testing.T) {
	useConfig(t, `
speeds:
  pacman: 8.0
gameplay:
  lives: 2
  release_dots: [0, 5, 10, 15]
difficulty:
  enabled: false
`)
	g := New(core.ModeClassic)
	g.Reset(platformcore.DefaultConfig())

	p := g.Engine().Params()
	if p.PacmanSpeed != 8 || p.GhostSpeed != 9 {
		t.Errorf("speeds = %v/%v, want 8/9", p.PacmanSpeed, p.GhostSpeed)
	}
	if p.ReleaseDots != [4]int{0, 5, 10, 15} {
		t.Errorf("release dots = %v", p.ReleaseDots)
	}
	if st := g.State(); st.Lives != 2 || st.Level != 1 {
		t.Errorf("state = %+v", st)
	}
}

func TestHouseRelease(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want [4]int
	}{
		{"default", "speeds:\n  pacman: 11.0\n", [4]int{}},
		{"arcade", "gameplay:\n  house: arcade\n  release_dots: [0, 5, 10, 15]\n", core.ArcadeReleaseDots},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useConfig(t, tt.yaml)
			g := New(core.ModeClassic)
			g.Reset(platformcore.DefaultConfig())

			if got := g.Engine().Params().ReleaseDots; got != tt.want {
				t.Errorf("release dots = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHardPreset(t *testing.T) {
	useConfig(t, "speeds:\n  ghost: 8.0\n")
	SetDifficultyPreset("hard")

	g := New(core.ModeClassic)
	g.Reset(platformcore.DefaultConfig())

	p := g.Engine().Params()
	if want := 8.0 * (1 + 0.7*0.25); math.Abs(p.GhostSpeed-want) > 1e-9 {
		t.Errorf("ghost speed = %v, want %v", p.GhostSpeed, want)
	}
	if p.StartingLives != 2 {
		t.Errorf("lives = %d, want 2", p.StartingLives)
	}

	SetDifficultyPreset("nonsense")
	g.Reset(platformcore.DefaultConfig())
	if g.Engine().Params().StartingLives != 3 {
		t.Error("unknown preset was applied")
	}
}

func TestInstancePresetOverridesPackage(t *testing.T) {
	useConfig(t, "")
	SetDifficultyPreset("hard")

	g := New(core.ModeClassic)
	g.SetPreset("easy")
	g.Reset(platformcore.DefaultConfig())
	if lives := g.Engine().Params().StartingLives; lives != 3 {
		t.Errorf("lives = %d, want 3 from the easy preset", lives)
	}

	other := New(core.ModeClassic)
	other.Reset(platformcore.DefaultConfig())
	if lives := other.Engine().Params().StartingLives; lives != 2 {
		t.Errorf("lives = %d, want 2 from the package preset", lives)
	}
}

func TestDirectionStartsGame(t *testing.T) {
	g := newGame(t, core.ModeClassic)
	if msg := g.State().Message; msg != "READY!" {
		t.Errorf("message = %q, want READY!", msg)
	}

	g.Step(frame(platformcore.ActionLeft))

	if g.Engine().Phase() != "playing" {
		t.Fatalf("phase = %q", g.Engine().Phase())
	}
	if x := g.Engine().Pacman().Pos.X; x >= 14 {
		t.Errorf("pacman x = %v, want moving left", x)
	}
	if g.Frames() != 1 {
		t.Errorf("frames = %d", g.Frames())
	}
}

func TestRestartDuringPlay(t *testing.T) {
	g := newGame(t, core.ModeClassic)
	g.Step(frame(platformcore.ActionLeft))
	for i := 0; i < 20; i++ {
		g.Step(frame())
	}
	if g.State().Score == 0 {
		t.Fatal("no dots eaten before restart")
	}

	g.Step(frame(platformcore.ActionRestart, platformcore.ActionLeft))

	st := g.State()
	if st.Score != 0 || st.Lives != 3 || st.Message != "READY!" {
		t.Errorf("after restart = %+v", st)
	}
	if g.Engine().Ticks() != 0 || g.Frames() != 0 {
		t.Errorf("ticks=%d frames=%d, want a fresh game", g.Engine().Ticks(), g.Frames())
	}
}

func TestPauseToggle(t *testing.T) {
	g := newGame(t, core.ModeClassic)
	g.Step(frame(platformcore.ActionLeft))

	g.Step(frame(platformcore.ActionPause))
	st := g.State()
	if !st.Paused || st.Message != "PAUSED" {
		t.Fatalf("state = %+v, want paused", st)
	}
	ticks := g.Engine().Ticks()
	g.Step(frame())
	if g.Engine().Ticks() != ticks {
		t.Error("paused engine advanced")
	}

	g.Step(frame(platformcore.ActionPause))
	if g.State().Paused {
		t.Error("second pause did not resume")
	}
}

func TestPlayer2IgnoredInClassic(t *testing.T) {
	g := newGame(t, core.ModeClassic)
	in := platformcore.NewMultiInputFrame()
	in.SetPlayer(platformcore.Player2, frame(platformcore.ActionDown))

	g.StepMulti(in)

	if g.Engine().Phase() != "ready" {
		t.Errorf("player 2 started a classic game: %q", g.Engine().Phase())
	}
}

func TestPlayer2SteersBlinky(t *testing.T) {
	g := newGame(t, core.ModePvP)
	in := platformcore.NewMultiInputFrame()
	in.SetPlayer(platformcore.Player2, frame(platformcore.ActionLeft))

	g.StepMulti(in)

	blinky := g.Engine().Ghosts()[core.Blinky]
	if blinky.Pending != core.DirLeft || blinky.Dir != core.DirLeft {
		t.Errorf("blinky = %+v, want heading left", blinky)
	}
	if blinky.Pos.X >= 14 {
		t.Errorf("blinky x = %v, want moving left", blinky.Pos.X)
	}
}

func TestClassicGameOverAndRestart(t *testing.T) {
	g := newGame(t, core.ModeClassic)
	playUntilOver(t, g, 5000)

	st := g.State()
	if !st.GameOver || st.Lives != 0 || st.Message != "GAME OVER" {
		t.Errorf("state = %+v", st)
	}
	if g.Winner() != 0 {
		t.Errorf("classic winner = %v", g.Winner())
	}

	// Other input does nothing once the game is over.
	g.Step(frame(platformcore.ActionConfirm, platformcore.ActionUp))
	if !g.IsGameOver() {
		t.Fatal("game left game over without restart")
	}

	g.Step(frame(platformcore.ActionRestart))
	st = g.State()
	if st.GameOver || st.Lives != 3 || st.Score != 0 || st.Level != 1 {
		t.Errorf("after restart = %+v", st)
	}
}

func TestGhostsWinVersus(t *testing.T) {
	g := newGame(t, core.ModePvP)
	playUntilOver(t, g, 5000)

	if g.Winner() != platformcore.Player2 {
		t.Errorf("winner = %v, want P2", g.Winner())
	}
	if msg := g.State().Message; msg != "GHOST WINS" {
		t.Errorf("message = %q", msg)
	}
	if snap := g.FullSnapshot(); snap.Winner != "ghost" || !snap.GameOver {
		t.Errorf("snapshot winner=%q over=%v", snap.Winner, snap.GameOver)
	}
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		name   string
		mode   core.Mode
		phase  core.Phase
		cause  core.PauseCause
		over   bool
		winner platformcore.PlayerID
	}{
		{"classic playing", core.ModeClassic, core.PhasePlaying, core.PauseNone, false, 0},
		{"classic level clear", core.ModeClassic, core.PhasePaused, core.PauseLevelClear, false, 0},
		{"classic game over", core.ModeClassic, core.PhaseGameOver, core.PauseNone, true, 0},
		{"versus death", core.ModePvP, core.PhasePaused, core.PauseDeath, false, 0},
		{"versus user pause", core.ModePvP, core.PhasePaused, core.PauseUser, false, 0},
		{"versus level clear", core.ModePvP, core.PhasePaused, core.PauseLevelClear, true, platformcore.Player1},
		{"versus game over", core.ModePvP, core.PhaseGameOver, core.PauseNone, true, platformcore.Player2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			over, winner := outcome(tt.mode, tt.phase, tt.cause)
			if over != tt.over || winner != tt.winner {
				t.Errorf("outcome = %v, %v; want %v, %v", over, winner, tt.over, tt.winner)
			}
		})
	}
}

func TestRenderWide(t *testing.T) {
	g := newGame(t, core.ModeClassic)
	scr := platformcore.NewScreen(80, 40)
	g.Render(scr)

	if hud := scr.Row(0); !strings.Contains(hud, "Pac-Man") || !strings.Contains(hud, "Score: 0") {
		t.Errorf("hud = %q", hud)
	}

	// 56 columns of maze centered in 80 leaves 12 on the left.
	ox, oy := 12, hudHeight
	if scr.Get(ox, oy) != wallChar || scr.Get(ox+1, oy) != wallChar {
		t.Errorf("top-left wall = %q%q", scr.Get(ox, oy), scr.Get(ox+1, oy))
	}
	if c := scr.GetCell(ox, oy); c.Color != platformcore.ColorWall {
		t.Errorf("wall color = %v", c.Color)
	}
	if r := scr.Get(ox+14*2, oy+23); r != '>' {
		t.Errorf("pacman glyph = %q", r)
	}
	if c := scr.GetCell(ox+14*2, oy+11); c.Rune != ghostChar || c.Color != platformcore.ColorRed {
		t.Errorf("blinky cell = %+v", c)
	}
	if r := scr.Get(ox+1*2, oy+1); r != dotChar {
		t.Errorf("dot glyph = %q", r)
	}
	if !strings.Contains(scr.Row(oy+17), "READY!") {
		t.Errorf("message row = %q", scr.Row(oy+17))
	}
}

func TestRenderNarrow(t *testing.T) {
	g := newGame(t, core.ModeClassic)
	scr := platformcore.NewScreen(40, 33)
	g.Render(scr)

	ox, oy := 6, hudHeight
	if scr.Get(ox, oy) != wallChar || scr.Get(ox-1, oy) != ' ' {
		t.Errorf("narrow maze not at column %d", ox)
	}
	if r := scr.Get(ox+14, oy+23); r != '>' {
		t.Errorf("pacman glyph = %q", r)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newGame(t, core.ModeClassic)
	scr := platformcore.NewScreen(80, 20)
	g.Render(scr)

	if !strings.Contains(scr.String(), "Terminal too small") {
		t.Error("missing too-small message")
	}
}

func TestSnapshotJSON(t *testing.T) {
	g := newGame(t, core.ModePvP)
	data, err := json.Marshal(g.Snapshot())
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["game_id"] != IDVersus || decoded["phase"] != "ready" || decoded["mode"] != "pvp" {
		t.Errorf("snapshot = %s", data)
	}
	if _, ok := decoded["winner"]; ok {
		t.Error("winner set before the game ended")
	}
	if ghosts, _ := decoded["ghosts"].([]any); len(ghosts) != 4 {
		t.Errorf("ghosts = %v", decoded["ghosts"])
	}
}
