package core

import "math"

// globalMode is the scatter/chase phase for the given scheduler time.
func globalMode(t float64, p Params) GhostMode {
	if math.Mod(t, p.CycleTime) < p.ScatterTime {
		return GhostScatter
	}
	return GhostChase
}

// GlobalMode returns the scatter/chase phase the schedule is currently in.
func (g *Game) GlobalMode() GhostMode {
	return globalMode(g.globalTimer, g.params)
}

// reviveMode is the mode an eaten ghost takes on reaching the house exit.
func (g *Game) reviveMode() GhostMode {
	if g.frightenedTimer > 0 {
		return GhostChase
	}
	return g.GlobalMode()
}

// updateModes advances the scheduler clocks and propagates the global mode.
func (g *Game) updateModes(dt float64) {
	wasFrightened := g.frightenedTimer > 0
	if wasFrightened {
		g.frightenedTimer -= dt
		if g.frightenedTimer < 0 {
			g.frightenedTimer = 0
		}
	} else {
		g.globalTimer += dt
	}

	mode := g.GlobalMode()

	if wasFrightened && g.frightenedTimer == 0 {
		for i := range g.ghosts {
			if g.ghosts[i].Mode == GhostFrightened {
				g.ghosts[i].Mode = mode
			}
		}
		return
	}
	if g.frightenedTimer > 0 {
		return
	}

	flipped := false
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		if (gh.Mode == GhostChase || gh.Mode == GhostScatter) && gh.Mode != mode {
			gh.Mode = mode
			flipped = true
		}
	}
	if !flipped {
		return
	}
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		if gh.Mode == GhostChase || gh.Mode == GhostScatter {
			gh.reverse(g.steered(gh))
		}
	}
}

// frighten starts a power pellet: every ghost not heading home turns
// frightened and reverses.
func (g *Game) frighten() {
	g.frightenedTimer = g.params.FrightenedTime
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		if gh.Mode == GhostEaten {
			continue
		}
		steered := g.steered(gh)
		gh.Mode = GhostFrightened
		gh.reverse(steered)
	}
}
