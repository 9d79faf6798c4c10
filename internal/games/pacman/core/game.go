package core

import (
	"fmt"
	"math"
)

// maxSlice bounds the simulated time of a single movement pass in seconds.
// Longer ticks are split so no entity skips a tile center.
const maxSlice = 1.0 / 60.0

// MaxTickMs caps the time one Tick simulates. Longer dt values are
// truncated.
const MaxTickMs = 250.0

// Game is the complete simulation state. It owns its maze and entities;
// callers observe it through accessors and Snapshot copies.
type Game struct {
	mode       Mode
	phase      Phase
	pauseCause PauseCause
	params     Params

	maze   *Maze
	pacman Pacman
	ghosts [4]Ghost

	dotsRemaining int
	dotsEaten     int // in the current level, drives house release
	level         int

	globalTimer     float64
	frightenedTimer float64
	tick            uint64
}

// Create builds a game for a mode name ("classic" or "pvp", any case)
// with the default rules.
func Create(mode string) (*Game, error) {
	m, err := ParseMode(mode)
	if err != nil {
		return nil, err
	}
	return New(m, DefaultParams()), nil
}

// MustCreate is like Create but panics on an unknown mode.
func MustCreate(mode string) *Game {
	g, err := Create(mode)
	if err != nil {
		panic(err)
	}
	return g
}

// New builds a game in PhaseReady. Zero-valued params fall back to defaults.
func New(mode Mode, p Params) *Game {
	g := &Game{
		mode:   mode,
		params: p.normalized(),
		level:  1,
	}
	g.pacman = newPacman(g.params.StartingLives)
	g.startLevel()
	return g
}

// startLevel lays a fresh maze and puts every entity at its spawn.
func (g *Game) startLevel() {
	g.maze = NewMaze()
	g.dotsRemaining = g.maze.DotsRemaining()
	g.dotsEaten = 0
	g.resetRound()
}

// resetRound returns entities to their spawns and restarts the schedule,
// keeping score, lives and the maze.
func (g *Game) resetRound() {
	lives, score := g.pacman.Lives, g.pacman.Score
	g.pacman = newPacman(lives)
	g.pacman.Score = score
	g.ghosts = newGhosts()
	g.globalTimer = 0
	g.frightenedTimer = 0
	g.phase = PhaseReady
	g.pauseCause = PauseNone
	g.releaseGhosts()
}

// releaseGhosts lets out every ghost whose dot threshold has been met.
func (g *Game) releaseGhosts() {
	for i := range g.ghosts {
		if g.dotsEaten >= g.params.ReleaseDots[i] {
			g.ghosts[i].Released = true
		}
	}
}

func (g *Game) pause(cause PauseCause) {
	g.phase = PhasePaused
	g.pauseCause = cause
}

// SetPlayer1Direction queues a turn for Pac-Man. Unknown names are ignored.
// The first valid input starts a ready game.
func (g *Game) SetPlayer1Direction(dir string) {
	d, ok := ParseDir(dir)
	if !ok {
		return
	}
	g.pacman.Pending = d
	g.start()
}

// SetPlayer2Direction queues a turn for Blinky. It is accepted in every
// mode but only steers Blinky in PvP.
func (g *Game) SetPlayer2Direction(dir string) {
	d, ok := ParseDir(dir)
	if !ok {
		return
	}
	g.ghosts[Blinky].Pending = d
	g.start()
}

func (g *Game) start() {
	if g.phase == PhaseReady {
		g.phase = PhasePlaying
	}
}

// Tick advances the simulation by dtMs milliseconds, capped at MaxTickMs.
// It does nothing unless the game is playing.
func (g *Game) Tick(dtMs float64) {
	if g.phase != PhasePlaying || !(dtMs > 0) || math.IsInf(dtMs, 0) {
		return
	}

	remaining := math.Min(dtMs, MaxTickMs) / 1000
	for remaining > 0 && g.phase == PhasePlaying {
		dt := math.Min(remaining, maxSlice)
		remaining -= dt
		g.advance(dt)
	}
	g.tick++
}

// advance runs one fixed-order pass: schedule, Pac-Man, ghosts, collisions.
func (g *Game) advance(dt float64) {
	g.updateModes(dt)
	g.movePacman(dt)
	g.moveGhosts(dt)
	g.resolveCollisions()
}

func (g *Game) movePacman(dt float64) {
	walk := func(col, row int) bool {
		return g.maze.walkable(col, row, false)
	}
	m := step(mover{pos: g.pacman.Pos, dir: g.pacman.Dir, pending: g.pacman.Pending}, g.params.PacmanSpeed*dt, walk)
	g.pacman.Pos, g.pacman.Dir = m.pos, m.dir
}

// Resume continues a paused game. After a death the round restarts from
// the spawns; after a level clear the next level begins. Both land in
// PhaseReady. A user pause returns straight to play.
func (g *Game) Resume() {
	if g.phase != PhasePaused {
		return
	}
	switch g.pauseCause {
	case PauseDeath:
		g.resetRound()
	case PauseLevelClear:
		g.level++
		g.startLevel()
	default:
		g.phase = PhasePlaying
		g.pauseCause = PauseNone
	}
}

// TogglePause pauses a running game or resumes a user-paused one.
func (g *Game) TogglePause() {
	switch {
	case g.phase == PhasePlaying:
		g.pause(PauseUser)
	case g.phase == PhasePaused && g.pauseCause == PauseUser:
		g.phase = PhasePlaying
		g.pauseCause = PauseNone
	}
}

// Mode returns "classic" or "pvp".
func (g *Game) Mode() string { return g.mode.String() }

// Phase returns "ready", "playing", "paused" or "gameover".
func (g *Game) Phase() string { return g.phase.String() }

// GameMode returns the typed mode.
func (g *Game) GameMode() Mode { return g.mode }

// CurrentPhase returns the typed phase.
func (g *Game) CurrentPhase() Phase { return g.phase }

// PauseCause explains the current pause.
func (g *Game) PauseCause() PauseCause { return g.pauseCause }

// Pacman returns a copy of Pac-Man's state.
func (g *Game) Pacman() Pacman { return g.pacman }

// Ghosts returns a copy of the four ghosts in kind order.
func (g *Game) Ghosts() [4]Ghost { return g.ghosts }

// Level is 1-based.
func (g *Game) Level() int { return g.level }

// DotsRemaining counts uneaten dots and pellets.
func (g *Game) DotsRemaining() int { return g.dotsRemaining }

// FrightenedTimer returns the seconds of fright left.
func (g *Game) FrightenedTimer() float64 { return g.frightenedTimer }

// GlobalTimer returns the scatter/chase scheduler clock.
func (g *Game) GlobalTimer() float64 { return g.globalTimer }

// Ticks counts calls to Tick that ran while playing.
func (g *Game) Ticks() uint64 { return g.tick }

// Maze returns a copy of the current maze.
func (g *Game) Maze() *Maze { return g.maze.Clone() }

// CellAt reads the live maze.
func (g *Game) CellAt(row, col int) (CellKind, bool) { return g.maze.CellAt(row, col) }

// Params returns the rules in effect.
func (g *Game) Params() Params { return g.params }

// SetParams replaces the rules from the next tick on. StartingLives only
// matters to New, so lives already granted are kept.
func (g *Game) SetParams(p Params) {
	g.params = p.normalized()
	g.releaseGhosts()
}

// Validate checks the structural invariants and reports the first violation.
func (g *Game) Validate() error {
	if n := g.maze.DotsRemaining(); n != g.dotsRemaining {
		return fmt.Errorf("pacman: dots counter %d, maze holds %d", g.dotsRemaining, n)
	}
	var seen [4]bool
	for _, gh := range g.ghosts {
		if int(gh.Kind) >= len(seen) || seen[gh.Kind] {
			return fmt.Errorf("pacman: ghost kind %v duplicated or unknown", gh.Kind)
		}
		seen[gh.Kind] = true
	}
	if g.pacman.Lives < 0 || g.pacman.Lives > MaxLives {
		return fmt.Errorf("pacman: lives %d out of range", g.pacman.Lives)
	}
	if g.phase == PhaseGameOver && g.pacman.Lives != 0 {
		return fmt.Errorf("pacman: game over with %d lives", g.pacman.Lives)
	}
	if err := checkPosition("pacman", g.pacman.Pos); err != nil {
		return err
	}
	if !g.maze.walkable(g.pacman.Pos.Tile().Col, g.pacman.Pos.Tile().Row, false) {
		return fmt.Errorf("pacman: pacman inside a wall at %v", g.pacman.Pos)
	}
	for _, gh := range g.ghosts {
		if err := checkPosition(gh.Kind.String(), gh.Pos); err != nil {
			return err
		}
		t := gh.Pos.Tile()
		if inHouse(t) {
			continue
		}
		if !g.maze.walkable(t.Col, t.Row, gh.Mode == GhostEaten) {
			return fmt.Errorf("pacman: %v inside a wall at %v", gh.Kind, gh.Pos)
		}
	}
	return nil
}

func checkPosition(name string, p Vec) error {
	if p.X < -0.5 || p.X >= MazeWidth-0.5 {
		return fmt.Errorf("pacman: %s x=%v outside the tunnel range", name, p.X)
	}
	if p.Y < 0 || p.Y >= MazeHeight {
		return fmt.Errorf("pacman: %s y=%v outside the maze", name, p.Y)
	}
	return nil
}
