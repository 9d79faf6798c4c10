package core

// Score values.
const (
	DotPoints    = 10
	PelletPoints = 50
	GhostPoints  = 200
)

// collisionRadiusSq is the squared distance below which Pac-Man and a
// ghost touch.
const collisionRadiusSq = 0.25

// resolveCollisions runs pickups, ghost contacts and the level-clear check
// after all entities have moved.
func (g *Game) resolveCollisions() {
	g.pickup()
	g.touchGhosts()

	if g.dotsRemaining == 0 && g.phase == PhasePlaying {
		g.pause(PauseLevelClear)
	}
}

func (g *Game) pickup() {
	t := g.pacman.Pos.Tile()
	cell, ok := g.maze.CellAt(t.Row, t.Col)
	if !ok || !cell.IsConsumable() {
		return
	}

	g.maze.Consume(t.Row, t.Col)
	g.dotsRemaining--
	g.dotsEaten++

	if cell == CellPowerPellet {
		g.pacman.Score += PelletPoints
		g.frighten()
	} else {
		g.pacman.Score += DotPoints
	}
	g.releaseGhosts()
}

func (g *Game) touchGhosts() {
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		if g.pacman.Pos.DistSq(gh.Pos) >= collisionRadiusSq {
			continue
		}

		switch gh.Mode {
		case GhostFrightened:
			g.pacman.Score += GhostPoints
			gh.Mode = GhostEaten
		case GhostChase, GhostScatter:
			g.loseLife()
			return
		}
	}
}

func (g *Game) loseLife() {
	if g.pacman.Lives > 0 {
		g.pacman.Lives--
	}
	if g.pacman.Lives == 0 {
		g.phase = PhaseGameOver
		g.pauseCause = PauseNone
		return
	}
	g.pause(PauseDeath)
}
