package core

import "testing"

func TestGlobalMode(t *testing.T) {
	p := DefaultParams()
	tests := []struct {
		t    float64
		want GhostMode
	}{
		{0, GhostScatter},
		{6.99, GhostScatter},
		{7, GhostChase},
		{26.99, GhostChase},
		{27, GhostScatter},
		{34.5, GhostChase},
	}
	for _, tt := range tests {
		if got := globalMode(tt.t, p); got != tt.want {
			t.Errorf("globalMode(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestForcedReversalOnModeFlip(t *testing.T) {
	g := MustCreate("classic")
	for i := range g.ghosts {
		g.ghosts[i].Mode = GhostScatter
		g.ghosts[i].Dir = DirLeft
		g.ghosts[i].Pending = DirLeft
	}
	g.ghosts[Clyde].Mode = GhostEaten
	g.globalTimer = 6.995

	g.updateModes(0.01)

	for _, k := range []GhostKind{Blinky, Pinky, Inky} {
		gh := g.ghosts[k]
		if gh.Mode != GhostChase {
			t.Errorf("%v mode = %v, want chase", k, gh.Mode)
		}
		if gh.Dir != DirRight || gh.Pending != DirRight {
			t.Errorf("%v dir/pending = %v/%v, want right", k, gh.Dir, gh.Pending)
		}
	}
	if c := g.ghosts[Clyde]; c.Mode != GhostEaten || c.Dir != DirLeft {
		t.Errorf("eaten ghost touched by the flip: %+v", c)
	}

	// No flip on the following pass, so no second reversal.
	g.updateModes(0.01)
	if g.ghosts[Blinky].Dir != DirRight {
		t.Error("ghost reversed twice for one flip")
	}
}

func TestForcedReversalKeepsPlayerInput(t *testing.T) {
	g := MustCreate("pvp")
	g.ghosts[Blinky].Dir = DirLeft
	g.ghosts[Blinky].Pending = DirUp
	g.globalTimer = 6.995

	g.updateModes(0.01)

	b := g.ghosts[Blinky]
	if b.Dir != DirRight || b.Pending != DirUp {
		t.Errorf("steered blinky dir/pending = %v/%v, want right/up", b.Dir, b.Pending)
	}
}

func TestFrightenedFreezesSchedule(t *testing.T) {
	g := MustCreate("classic")
	g.globalTimer = 3
	g.frightenedTimer = 1

	g.updateModes(0.25)

	if g.globalTimer != 3 {
		t.Errorf("global timer advanced to %v while frightened", g.globalTimer)
	}
	if !approx(g.frightenedTimer, 0.75) {
		t.Errorf("frightened timer = %v, want 0.75", g.frightenedTimer)
	}
}

func TestFrightenedExpiry(t *testing.T) {
	g := MustCreate("classic")
	g.globalTimer = 10
	g.frightenedTimer = 0.01
	for i := range g.ghosts {
		g.ghosts[i].Mode = GhostFrightened
		g.ghosts[i].Dir = DirDown
	}
	g.ghosts[Inky].Mode = GhostEaten

	g.updateModes(0.02)

	if g.frightenedTimer != 0 {
		t.Fatalf("frightened timer = %v, want clamped to 0", g.frightenedTimer)
	}
	for _, k := range []GhostKind{Blinky, Pinky, Clyde} {
		gh := g.ghosts[k]
		if gh.Mode != GhostChase {
			t.Errorf("%v mode = %v, want chase", k, gh.Mode)
		}
		if gh.Dir != DirDown {
			t.Errorf("%v reversed on fright expiry", k)
		}
	}
	if g.ghosts[Inky].Mode != GhostEaten {
		t.Errorf("eaten ghost mode = %v", g.ghosts[Inky].Mode)
	}
}

func TestFrighten(t *testing.T) {
	g := MustCreate("classic")
	for i := range g.ghosts {
		g.ghosts[i].Mode = GhostChase
		g.ghosts[i].Dir = DirLeft
	}
	g.ghosts[Pinky].Mode = GhostEaten

	g.frighten()

	if g.frightenedTimer != DefaultParams().FrightenedTime {
		t.Errorf("frightened timer = %v", g.frightenedTimer)
	}
	for _, k := range []GhostKind{Blinky, Inky, Clyde} {
		gh := g.ghosts[k]
		if gh.Mode != GhostFrightened || gh.Dir != DirRight {
			t.Errorf("%v = %v heading %v, want frightened heading right", k, gh.Mode, gh.Dir)
		}
	}
	if p := g.ghosts[Pinky]; p.Mode != GhostEaten || p.Dir != DirLeft {
		t.Errorf("eaten ghost changed: %+v", p)
	}
}

func TestEatenGhostRevivesAtExit(t *testing.T) {
	g := MustCreate("classic")
	g.SetPlayer1Direction("left")
	g.ghosts[Pinky].Mode = GhostEaten
	g.ghosts[Pinky].Pos = HouseExit.Center()
	g.ghosts[Pinky].Dir = DirRight

	g.moveGhosts(1.0 / 60.0)

	if got := g.ghosts[Pinky].Mode; got != GhostScatter {
		t.Errorf("revived mode = %v, want scatter", got)
	}

	g.ghosts[Inky].Mode = GhostEaten
	g.ghosts[Inky].Pos = HouseExit.Center()
	g.frightenedTimer = 2
	g.moveGhosts(1.0 / 60.0)
	if got := g.ghosts[Inky].Mode; got != GhostChase {
		t.Errorf("revived mode during fright = %v, want chase", got)
	}
}
