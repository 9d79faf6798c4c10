package core

// PacmanSnapshot is the observable state of Pac-Man.
type PacmanSnapshot struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Dir     string  `json:"dir"`
	Pending string  `json:"pending"`
	Lives   int     `json:"lives"`
	Score   int     `json:"score"`
}

// GhostSnapshot is the observable state of one ghost.
type GhostSnapshot struct {
	Kind     string  `json:"kind"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Dir      string  `json:"dir"`
	Pending  string  `json:"pending"`
	Mode     string  `json:"mode"`
	Released bool    `json:"released"`
}

// Snapshot is a deep copy of the game suitable for rendering, comparison
// in tests and JSON transport. Maze rows run top to bottom.
type Snapshot struct {
	Mode            string          `json:"mode"`
	Phase           string          `json:"phase"`
	PauseCause      string          `json:"pause_cause"`
	Width           int             `json:"width"`
	Height          int             `json:"height"`
	Maze            [][]string      `json:"maze"`
	Pacman          PacmanSnapshot  `json:"pacman"`
	Ghosts          []GhostSnapshot `json:"ghosts"`
	DotsRemaining   int             `json:"dots_remaining"`
	Level           int             `json:"level"`
	GlobalTimer     float64         `json:"global_timer"`
	FrightenedTimer float64         `json:"frightened_timer"`
	Tick            uint64          `json:"tick"`
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	ghosts := make([]GhostSnapshot, 0, len(g.ghosts))
	for _, gh := range g.ghosts {
		ghosts = append(ghosts, GhostSnapshot{
			Kind:     gh.Kind.String(),
			X:        gh.Pos.X,
			Y:        gh.Pos.Y,
			Dir:      gh.Dir.String(),
			Pending:  gh.Pending.String(),
			Mode:     gh.Mode.String(),
			Released: gh.Released,
		})
	}

	return Snapshot{
		Mode:       g.mode.String(),
		Phase:      g.phase.String(),
		PauseCause: g.pauseCause.String(),
		Width:      MazeWidth,
		Height:     MazeHeight,
		Maze:       g.maze.Tags(),
		Pacman: PacmanSnapshot{
			X:       g.pacman.Pos.X,
			Y:       g.pacman.Pos.Y,
			Dir:     g.pacman.Dir.String(),
			Pending: g.pacman.Pending.String(),
			Lives:   g.pacman.Lives,
			Score:   g.pacman.Score,
		},
		Ghosts:          ghosts,
		DotsRemaining:   g.dotsRemaining,
		Level:           g.level,
		GlobalTimer:     g.globalTimer,
		FrightenedTimer: g.frightenedTimer,
		Tick:            g.tick,
	}
}
