package core_test

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
)

const frameMs = 1000.0 / 60.0

func TestFreshGame(t *testing.T) {
	g, err := core.Create("classic")
	if err != nil {
		t.Fatal(err)
	}

	if g.Phase() != "ready" {
		t.Errorf("phase = %q, want ready", g.Phase())
	}
	if g.Mode() != "classic" {
		t.Errorf("mode = %q, want classic", g.Mode())
	}
	pac := g.Pacman()
	if pac.Lives != 3 || pac.Score != 0 {
		t.Errorf("pacman lives=%d score=%d", pac.Lives, pac.Score)
	}
	if pac.Pos.Tile() != core.T(14, 23) {
		t.Errorf("pacman spawn = %v", pac.Pos.Tile())
	}
	if n := len(g.Ghosts()); n != 4 {
		t.Errorf("ghosts = %d", n)
	}
	if g.Level() != 1 {
		t.Errorf("level = %d", g.Level())
	}
	if g.DotsRemaining() != g.Maze().DotsRemaining() {
		t.Errorf("dots counter %d, maze %d", g.DotsRemaining(), g.Maze().DotsRemaining())
	}
	if err := g.Validate(); err != nil {
		t.Error(err)
	}
}

func TestModeIsCaseInsensitive(t *testing.T) {
	g, err := core.Create("PvP")
	if err != nil {
		t.Fatal(err)
	}
	if g.Mode() != "pvp" {
		t.Errorf("mode = %q", g.Mode())
	}
}

func TestStartOnInput(t *testing.T) {
	g := core.MustCreate("classic")
	g.SetPlayer1Direction("left")
	if g.Phase() != "playing" {
		t.Errorf("phase = %q, want playing", g.Phase())
	}

	g2 := core.MustCreate("pvp")
	g2.SetPlayer2Direction("down")
	if g2.Phase() != "playing" {
		t.Errorf("player 2 input: phase = %q, want playing", g2.Phase())
	}
}

func TestDotPickup(t *testing.T) {
	g := core.MustCreate("classic")
	g.SetPlayer1Direction("left")

	target := core.T(13, 23)
	for i := 0; i < 60; i++ {
		before := g.Pacman().Score
		g.Tick(frameMs)
		if g.Pacman().Pos.Tile() != target {
			continue
		}
		if got := g.Pacman().Score - before; got != core.DotPoints {
			t.Errorf("score delta = %d, want %d", got, core.DotPoints)
		}
		if c, _ := g.CellAt(target.Row, target.Col); c != core.CellEmpty {
			t.Errorf("cell = %v, want empty", c)
		}
		return
	}
	t.Fatal("pacman never reached (13, 23)")
}

func TestPowerPellet(t *testing.T) {
	g := core.MustCreate("classic")

	// Down the left corridor to (6, 23), up to row 8, left to column 1,
	// then up into the corner pellet at (1, 3).
	route := []struct {
		dir  string
		done func(core.Tile) bool
	}{
		{"left", func(t core.Tile) bool { return t.Col <= 7 }},
		{"up", func(t core.Tile) bool { return t.Row <= 9 }},
		{"left", func(t core.Tile) bool { return t.Col <= 2 }},
	}
	for _, leg := range route {
		g.SetPlayer1Direction(leg.dir)
		for i := 0; !leg.done(g.Pacman().Pos.Tile()); i++ {
			if i > 600 || g.Phase() != "playing" {
				t.Fatalf("stuck on leg %q at %v, phase %s", leg.dir, g.Pacman().Pos, g.Phase())
			}
			g.Tick(frameMs)
		}
	}

	g.SetPlayer1Direction("up")
	for i := 0; i < 600; i++ {
		before := g.Pacman().Score
		g.Tick(frameMs)
		if c, _ := g.CellAt(3, 1); c != core.CellEmpty {
			continue
		}

		if got := g.Pacman().Score - before; got != core.PelletPoints {
			t.Errorf("score delta = %d, want %d", got, core.PelletPoints)
		}
		for _, gh := range g.Ghosts() {
			if gh.Mode != core.GhostFrightened {
				t.Errorf("%v mode = %v, want frightened", gh.Kind, gh.Mode)
			}
		}
		if f := g.FrightenedTimer(); math.Abs(f-6.0) > 0.05 {
			t.Errorf("frightened timer = %v, want about 6", f)
		}
		return
	}
	t.Fatal("pacman never reached the pellet at (1, 3)")
}

func TestInvalidMode(t *testing.T) {
	_, err := core.Create("arcade")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "arcade") {
		t.Errorf("error %q does not name the mode", err)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustCreate did not panic")
		}
		if e, ok := r.(error); !ok || !strings.Contains(e.Error(), "arcade") {
			t.Errorf("panic value %v does not name the mode", r)
		}
	}()
	core.MustCreate("arcade")
}
