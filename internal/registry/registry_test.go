package registry

import (
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

type stubGame struct {
	id     string
	versus bool
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }
func (g *stubGame) IsVersus() bool { return g.versus }
func (g *stubGame) StepMulti(core.MultiInputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Winner() core.PlayerID { return 0 }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub_solo", func() Game { return &stubGame{id: "zz_stub_solo"} })
	Register("zz_stub_versus", func() Game { return &stubGame{id: "zz_stub_versus", versus: true} })

	g, err := Create("zz_stub_solo")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub_solo" {
		t.Errorf("ID = %q", g.ID())
	}

	if !Exists("zz_stub_versus") || Exists("zz_missing") {
		t.Error("Exists() reports wrong membership")
	}

	info, ok := Lookup("zz_stub_versus")
	if !ok || !info.Versus || info.Title != "Stub zz_stub_versus" {
		t.Errorf("Lookup() = %+v, %v", info, ok)
	}
	if info, _ := Lookup("zz_stub_solo"); info.Versus {
		t.Error("solo stub reported as versus")
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("zz_missing"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_stub_dup", func() Game { return &stubGame{id: "zz_stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("zz_stub_dup", func() Game { return &stubGame{id: "zz_stub_dup"} })
}
