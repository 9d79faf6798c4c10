// Package pacman adapts the Pac-Man engine to the platform: it registers
// the classic and versus games, maps input actions to engine calls, loads
// tuning from configuration and renders into a platform screen.
package pacman

import (
	"github.com/vovakirdan/tui-pacman/internal/config"
	platformcore "github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

// Game IDs.
const (
	IDClassic = "pacman"
	IDVersus  = "pacman_pvp"
)

// Package-level variables for config/difficulty, set by the CLI before a
// game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
// Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	if p, ok := config.ParsePreset(preset); ok && preset != "" {
		difficultyPreset = p
		return
	}
	difficultyPreset = ""
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New(core.ModeClassic)
	})
	registry.Register(IDVersus, func() registry.Game {
		return New(core.ModePvP)
	})
}

// Game implements registry.VersusGame around the engine.
type Game struct {
	mode       core.Mode
	engine     *core.Game
	cfg        config.PacmanConfig
	difficulty *config.DifficultyManager
	runtime    platformcore.RuntimeConfig
	preset     *config.DifficultyPreset // overrides the package preset
	level      int                      // level the current params were built for
	frames     uint64
}

// New creates an adapter for a mode. Reset must be called before stepping.
func New(mode core.Mode) *Game {
	return &Game{mode: mode}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == core.ModePvP {
		return IDVersus
	}
	return IDClassic
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == core.ModePvP {
		return "Pac-Man (1v1)"
	}
	return "Pac-Man"
}

// SetPreset picks the difficulty preset for this game only, overriding
// SetDifficultyPreset. Hosts that serve many players use it so sessions do
// not share the package setting. Unknown names select no preset.
func (g *Game) SetPreset(name string) {
	p, ok := config.ParsePreset(name)
	if !ok || name == "" {
		p = ""
	}
	g.preset = &p
}

// IsVersus reports whether player 2 steers Blinky.
func (g *Game) IsVersus() bool {
	return g.mode == core.ModePvP
}

// Reset loads configuration and starts a fresh engine.
func (g *Game) Reset(rt platformcore.RuntimeConfig) {
	g.runtime = rt

	cfg, err := config.LoadPacman(configPath)
	if err != nil {
		cfg = config.DefaultPacmanConfig()
	}
	preset := difficultyPreset
	if g.preset != nil {
		preset = *g.preset
	}
	if preset != "" {
		config.ApplyPacmanPreset(&cfg, preset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.level = 1
	g.frames = 0
	g.engine = core.New(g.mode, g.paramsFor(g.level))
}

// paramsFor builds engine params for a maze level, scaling ghost speed and
// fright duration by difficulty.
func (g *Game) paramsFor(level int) core.Params {
	c := g.cfg
	p := core.Params{
		PacmanSpeed:      c.Speeds.Pacman,
		GhostSpeed:       g.difficulty.Speed(c.Speeds.Ghost, level),
		FrightenedFactor: c.Speeds.FrightenedFactor,
		EatenFactor:      c.Speeds.EatenFactor,
		FrightenedTime:   g.difficulty.FrightenedTime(c.Timers.Frightened, level),
		ScatterTime:      c.Timers.Scatter,
		CycleTime:        c.Timers.Cycle,
		StartingLives:    c.Gameplay.Lives,
	}
	if c.Gameplay.House == config.HouseArcade {
		p.ReleaseDots = core.ArcadeReleaseDots
	} else {
		copy(p.ReleaseDots[:], c.Gameplay.ReleaseDots)
	}
	return p
}

// Engine exposes the underlying simulation for hosts and tests.
func (g *Game) Engine() *core.Game {
	return g.engine
}

// Step advances one tick with player 1 input only.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	multi := platformcore.NewMultiInputFrame()
	multi.SetPlayer(platformcore.Player1, in)
	return g.StepMulti(multi)
}

// StepMulti advances one tick. Player 1 drives Pac-Man; in versus play
// player 2 drives Blinky. Pause toggles a running game, Confirm resumes
// after a death or level clear and Restart starts a new game at any point.
// A restart step does not advance the new game.
func (g *Game) StepMulti(in platformcore.MultiInputFrame) platformcore.StepResult {
	p1, p2 := in.Player1(), in.Player2()
	pressed := func(a platformcore.Action) bool {
		return p1.Has(a) || (g.IsVersus() && p2.Has(a))
	}

	if pressed(platformcore.ActionRestart) {
		g.Reset(g.runtime)
		return platformcore.StepResult{State: g.State()}
	}
	if g.IsGameOver() {
		return platformcore.StepResult{State: g.State()}
	}

	if pressed(platformcore.ActionPause) {
		g.engine.TogglePause()
	}
	if pressed(platformcore.ActionConfirm) {
		g.engine.Resume()
		g.syncLevel()
	}

	if a, ok := p1.PressedDirection(); ok {
		dir, _ := a.Direction()
		g.engine.SetPlayer1Direction(dir)
	}
	if g.IsVersus() {
		if a, ok := p2.PressedDirection(); ok {
			dir, _ := a.Direction()
			g.engine.SetPlayer2Direction(dir)
		}
	}

	g.engine.Tick(g.runtime.FrameMillis())
	g.frames++

	return platformcore.StepResult{State: g.State()}
}

// syncLevel retunes the engine when a new level has started.
func (g *Game) syncLevel() {
	if lvl := g.engine.Level(); lvl != g.level {
		g.level = lvl
		g.engine.SetParams(g.paramsFor(lvl))
	}
}

// IsGameOver reports whether the game has ended. A versus game also ends
// when Pac-Man clears the maze.
func (g *Game) IsGameOver() bool {
	if g.engine == nil {
		return false
	}
	over, _ := outcome(g.mode, g.engine.CurrentPhase(), g.engine.PauseCause())
	return over
}

// Winner returns Player1 when Pac-Man cleared the maze and Player2 when
// the ghosts took every life. Classic games have no winner.
func (g *Game) Winner() platformcore.PlayerID {
	if g.engine == nil {
		return 0
	}
	_, winner := outcome(g.mode, g.engine.CurrentPhase(), g.engine.PauseCause())
	return winner
}

// outcome decides whether a game in the given phase is over and who won.
func outcome(mode core.Mode, phase core.Phase, cause core.PauseCause) (bool, platformcore.PlayerID) {
	switch {
	case phase == core.PhaseGameOver && mode == core.ModePvP:
		return true, platformcore.Player2
	case phase == core.PhaseGameOver:
		return true, 0
	case mode == core.ModePvP && phase == core.PhasePaused && cause == core.PauseLevelClear:
		return true, platformcore.Player1
	default:
		return false, 0
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.engine == nil {
		return platformcore.GameState{}
	}
	pac := g.engine.Pacman()
	return platformcore.GameState{
		Score:    pac.Score,
		Level:    g.engine.Level(),
		Lives:    pac.Lives,
		GameOver: g.IsGameOver(),
		Paused:   g.engine.CurrentPhase() == core.PhasePaused,
		Message:  g.message(),
	}
}

// message is the status hint shown under the maze.
func (g *Game) message() string {
	if g.IsVersus() && g.IsGameOver() {
		if g.Winner() == platformcore.Player1 {
			return "PAC-MAN WINS"
		}
		return "GHOST WINS"
	}
	switch g.engine.CurrentPhase() {
	case core.PhaseReady:
		return "READY!"
	case core.PhaseGameOver:
		return "GAME OVER"
	case core.PhasePaused:
		switch g.engine.PauseCause() {
		case core.PauseDeath:
			return "CAUGHT!"
		case core.PauseLevelClear:
			return "LEVEL CLEAR"
		default:
			return "PAUSED"
		}
	}
	return ""
}

// Frames returns how many ticks the adapter has stepped since Reset.
func (g *Game) Frames() uint64 {
	return g.frames
}
