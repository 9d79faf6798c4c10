package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

func TestEveryColorHasAStyle(t *testing.T) {
	for c := core.ColorRed; c <= core.ColorFlash; c++ {
		if _, ok := ansiCodes[c]; !ok {
			t.Errorf("color %d has no palette entry", c)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextWithColor(0, 0, "READY!", core.ColorFlash)
	s.DrawText(0, 1, "score")

	out := RenderScreen(s)
	if !strings.Contains(out, "READY!") || !strings.Contains(out, "score") {
		t.Errorf("rendered = %q", out)
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("rendered %d line breaks, want 1", got)
	}
}
