package pacman

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
)

// Layout constants.
const (
	hudHeight = 2 // status line + separator
	minWidth  = core.MazeWidth
	minHeight = core.MazeHeight + hudHeight
	wideWidth = core.MazeWidth * 2 // room for two columns per tile
)

// Visual characters for rendering.
const (
	wallChar   = '█'
	dotChar    = '·'
	pelletChar = '●'
	doorChar   = '─'
	ghostChar  = 'ᗣ'
	eyesChar   = '"'
)

// doorRow is the ghost house row drawn as the door.
var doorRow = core.HouseExit.Row + 1

var ghostColors = [4]platformcore.Color{
	core.Blinky: platformcore.ColorRed,
	core.Pinky:  platformcore.ColorPink,
	core.Inky:   platformcore.ColorCyan,
	core.Clyde:  platformcore.ColorOrange,
}

// pacmanGlyph opens the mouth toward the direction of travel.
func pacmanGlyph(d core.Dir) rune {
	switch d {
	case core.DirUp:
		return 'v'
	case core.DirDown:
		return '^'
	case core.DirRight:
		return '<'
	default:
		return '>'
	}
}

// Render draws the HUD and the maze with its actors.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}

	g.renderHUD(dst)

	if dst.Width() < minWidth || dst.Height() < minHeight {
		renderOverlay(dst, "Terminal too small", fmt.Sprintf("Need %dx%d", minWidth, minHeight))
		return
	}

	tw := 1
	if dst.Width() >= wideWidth {
		tw = 2
	}
	ox := (dst.Width() - core.MazeWidth*tw) / 2
	oy := hudHeight

	g.renderMaze(dst, ox, oy, tw)
	g.renderGhosts(dst, ox, oy, tw)
	g.renderPacman(dst, ox, oy, tw)

	if msg := g.message(); msg != "" {
		g.renderMessage(dst, msg, ox, oy, tw)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	pac := g.engine.Pacman()
	lives := strings.Repeat("● ", pac.Lives)
	hud := fmt.Sprintf(" %s  Score: %d  Level: %d  Lives: %s", g.Title(), pac.Score, g.engine.Level(), lives)
	dst.DrawTextWithColor(0, 0, hud, platformcore.ColorBrightYellow)

	hint := "P pause  Q quit"
	if g.IsVersus() {
		hint = "Arrows: Pac-Man  WASD: Blinky  " + hint
	}
	if x := dst.Width() - len(hint) - 1; x > utf8.RuneCountInString(hud)+1 {
		dst.DrawTextWithColor(x, 0, hint, platformcore.ColorGray)
	}

	for x, n := 0, dst.Width(); x < n; x++ {
		dst.Set(x, 1, '─')
	}
}

func (g *Game) renderMaze(dst *platformcore.Screen, ox, oy, tw int) {
	for row := 0; row < core.MazeHeight; row++ {
		for col := 0; col < core.MazeWidth; col++ {
			cell, _ := g.engine.CellAt(row, col)
			x, y := ox+col*tw, oy+row
			switch cell {
			case core.CellWall:
				for i := 0; i < tw; i++ {
					dst.SetWithColor(x+i, y, wallChar, platformcore.ColorWall)
				}
			case core.CellDot:
				dst.SetWithColor(x, y, dotChar, platformcore.ColorDot)
			case core.CellPowerPellet:
				// Blink while playing.
				if g.engine.CurrentPhase() != core.PhasePlaying || (g.frames/15)%2 == 0 {
					dst.SetWithColor(x, y, pelletChar, platformcore.ColorDot)
				}
			case core.CellGhostHouse:
				if row == doorRow {
					for i := 0; i < tw; i++ {
						dst.SetWithColor(x+i, y, doorChar, platformcore.ColorDoor)
					}
				}
			}
		}
	}
}

// screenCell maps a continuous position to a screen cell, reporting false
// when the actor is in the off-grid part of the tunnel.
func screenCell(p core.Vec, ox, oy, tw int) (int, int, bool) {
	col, row := int(math.Round(p.X)), int(math.Round(p.Y))
	if col < 0 || col >= core.MazeWidth || row < 0 || row >= core.MazeHeight {
		return 0, 0, false
	}
	return ox + col*tw, oy + row, true
}

func (g *Game) renderGhosts(dst *platformcore.Screen, ox, oy, tw int) {
	fright := g.engine.FrightenedTimer()
	for _, gh := range g.engine.Ghosts() {
		x, y, ok := screenCell(gh.Pos, ox, oy, tw)
		if !ok {
			continue
		}
		switch gh.Mode {
		case core.GhostEaten:
			dst.SetWithColor(x, y, eyesChar, platformcore.ColorBrightWhite)
		case core.GhostFrightened:
			c := platformcore.ColorFrightened
			if fright < 2 && (g.frames/10)%2 == 1 {
				c = platformcore.ColorFlash
			}
			dst.SetWithColor(x, y, ghostChar, c)
		default:
			dst.SetWithColor(x, y, ghostChar, ghostColors[gh.Kind])
		}
	}
}

func (g *Game) renderPacman(dst *platformcore.Screen, ox, oy, tw int) {
	pac := g.engine.Pacman()
	x, y, ok := screenCell(pac.Pos, ox, oy, tw)
	if !ok {
		return
	}
	glyph := pacmanGlyph(pac.Dir)
	if g.engine.CurrentPhase() == core.PhaseGameOver {
		glyph = 'x'
	}
	dst.SetWithColor(x, y, glyph, platformcore.ColorYellow)
}

// renderMessage prints the phase message in the open row below the ghost
// house. The hint about how to continue goes under the maze when it fits.
func (g *Game) renderMessage(dst *platformcore.Screen, msg string, ox, oy, tw int) {
	y := oy + core.PacmanSpawn.Row - 6
	mazeW := core.MazeWidth * tw
	x := ox + (mazeW-len([]rune(msg)))/2
	dst.DrawTextWithColor(x, y, msg, platformcore.ColorBrightYellow)

	var hint string
	switch {
	case g.IsGameOver():
		hint = "Press R to restart"
	case g.engine.CurrentPhase() == core.PhasePaused && g.engine.PauseCause() != core.PauseUser:
		hint = "Press Enter"
	case g.engine.CurrentPhase() == core.PhasePaused:
		hint = "Press P to continue"
	}
	if hint != "" && oy+core.MazeHeight < dst.Height() {
		dst.DrawTextCenteredWithColor(oy+core.MazeHeight, hint, platformcore.ColorGray)
	}
}

// renderOverlay draws a centered box with two lines of text.
func renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := max(len(line1), len(line2)) + 4
	box := platformcore.CenteredRect(dst.Width(), dst.Height(), w, 5)
	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, platformcore.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
