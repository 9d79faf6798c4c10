package core

import "math"

// pursuit is the Pac-Man state ghosts aim at during one tick.
type pursuit struct {
	pac    Tile
	facing Dir
	blinky Tile
}

// target picks the tile a ghost steers toward. globalTimer feeds the
// frightened wander.
func target(g *Ghost, p pursuit, globalTimer float64) Tile {
	if g.Mode != GhostEaten && inHouse(g.Pos.Tile()) {
		return HouseExit
	}

	switch g.Mode {
	case GhostScatter:
		return scatterTargets[g.Kind]
	case GhostChase:
		return chaseTarget(g, p)
	case GhostFrightened:
		seed := int(math.Floor(10*globalTimer + 3*g.Pos.X))
		return T(seed%MazeWidth, (seed*7)%MazeHeight)
	default:
		return HouseExit
	}
}

func chaseTarget(g *Ghost, p pursuit) Tile {
	switch g.Kind {
	case Blinky:
		return p.pac
	case Pinky:
		return p.pac.Add(p.facing, 4)
	case Inky:
		pivot := p.pac.Add(p.facing, 2)
		return T(2*pivot.Col-p.blinky.Col, 2*pivot.Row-p.blinky.Row)
	default:
		if p.pac.DistSq(g.Pos.Tile()) > 64 {
			return p.pac
		}
		return scatterTargets[Clyde]
	}
}

// choose returns the direction a ghost takes at the center of tile at.
// It never reverses unless every other neighbor is blocked.
func choose(at Tile, heading Dir, goal Tile, walk walkFunc) Dir {
	best := heading.Opposite()
	bestDist := -1
	for _, d := range decisionOrder {
		if d == heading.Opposite() {
			continue
		}
		n := at.Add(d, 1)
		if !walk(n.Col, n.Row) {
			continue
		}
		dist := n.DistSq(goal)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}

// ghostWalk returns the walkability predicate for a ghost in its current
// state. Eaten ghosts and ghosts still inside the house may cross the door.
func (g *Game) ghostWalk(gh *Ghost) walkFunc {
	allowHouse := gh.Mode == GhostEaten || inHouse(gh.Pos.Tile())
	return func(col, row int) bool {
		return g.maze.walkable(col, row, allowHouse)
	}
}

// ghostSpeed returns the ghost's speed in tiles per second for its mode.
func (g *Game) ghostSpeed(gh *Ghost) float64 {
	switch gh.Mode {
	case GhostFrightened:
		return g.params.GhostSpeed * g.params.FrightenedFactor
	case GhostEaten:
		return g.params.GhostSpeed * g.params.EatenFactor
	default:
		return g.params.GhostSpeed
	}
}

// steered reports whether the ghost follows player input this tick.
func (g *Game) steered(gh *Ghost) bool {
	return g.mode == ModePvP && gh.Kind == Blinky &&
		gh.Mode != GhostFrightened && gh.Mode != GhostEaten
}

// moveGhosts advances every released ghost in kind order. Inky aims using
// Blinky's position after Blinky has moved.
func (g *Game) moveGhosts(dt float64) {
	p := pursuit{
		pac:    g.pacman.Pos.Tile(),
		facing: g.pacman.Dir,
	}

	for i := range g.ghosts {
		gh := &g.ghosts[i]
		p.blinky = g.ghosts[Blinky].Pos.Tile()

		if gh.Mode == GhostEaten && gh.Pos.Tile() == HouseExit {
			gh.Mode = g.reviveMode()
		}
		if !gh.Released {
			continue
		}

		d := g.ghostSpeed(gh) * dt
		walk := g.ghostWalk(gh)

		if g.steered(gh) {
			m := step(mover{pos: gh.Pos, dir: gh.Dir, pending: gh.Pending}, d, walk)
			gh.Pos, gh.Dir = m.pos, m.dir
			continue
		}

		g.moveAIGhost(gh, d, walk, p)
	}
}

// moveAIGhost moves an AI ghost by d. When a tile center falls within
// reach it snaps there, picks a new heading and spends the rest of the
// distance on the new heading.
func (g *Game) moveAIGhost(gh *Ghost, d float64, walk walkFunc, p pursuit) {
	toCenter, center := distanceToNextCenter(gh.Pos, gh.Dir)
	if toCenter >= d {
		m := step(mover{pos: gh.Pos, dir: gh.Dir, pending: gh.Dir}, d, walk)
		gh.Pos = m.pos
		return
	}

	goal := target(gh, p, g.globalTimer)
	gh.Pos = center.Center()
	// Leaving or entering the house changes what counts as walkable.
	walk = g.ghostWalk(gh)
	gh.Dir = choose(center, gh.Dir, goal, walk)
	gh.Pending = gh.Dir

	m := step(mover{pos: gh.Pos, dir: gh.Dir, pending: gh.Dir}, d-toCenter, walk)
	gh.Pos = m.pos
}
