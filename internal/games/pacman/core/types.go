// Package core contains the pure Pac-Man simulation: maze, entities,
// movement, ghost AI, mode scheduling and collisions.
// It has no dependencies on rendering, input devices or the platform layer.
package core

import (
	"fmt"
	"math"
	"strings"
)

// CellKind identifies the contents of a maze cell.
type CellKind uint8

const (
	CellWall CellKind = iota
	CellDot
	CellPowerPellet
	CellGhostHouse
	CellEmpty
)

// String returns the wire tag of the cell kind.
func (c CellKind) String() string {
	switch c {
	case CellWall:
		return "wall"
	case CellDot:
		return "dot"
	case CellPowerPellet:
		return "power_pellet"
	case CellGhostHouse:
		return "ghost_house"
	case CellEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// IsConsumable reports whether Pac-Man can eat the cell.
func (c CellKind) IsConsumable() bool {
	return c == CellDot || c == CellPowerPellet
}

// Dir represents a movement direction.
type Dir uint8

const (
	DirUp Dir = iota
	DirDown
	DirLeft
	DirRight
)

// decisionOrder is the enumeration order used to break ties at intersections.
var decisionOrder = [4]Dir{DirUp, DirLeft, DirDown, DirRight}

// Delta returns the unit vector for the direction.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

// String returns the lower-case name of the direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDir converts a case-insensitive direction name.
// The second result is false for anything other than up/down/left/right.
func ParseDir(s string) (Dir, bool) {
	switch strings.ToLower(s) {
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	default:
		return DirUp, false
	}
}

// GhostKind identifies one of the four ghosts.
type GhostKind uint8

const (
	Blinky GhostKind = iota
	Pinky
	Inky
	Clyde
)

func (k GhostKind) String() string {
	switch k {
	case Blinky:
		return "blinky"
	case Pinky:
		return "pinky"
	case Inky:
		return "inky"
	case Clyde:
		return "clyde"
	default:
		return "unknown"
	}
}

// GhostMode is the behavioral state of a ghost.
type GhostMode uint8

const (
	GhostScatter GhostMode = iota
	GhostChase
	GhostFrightened
	GhostEaten
)

func (m GhostMode) String() string {
	switch m {
	case GhostScatter:
		return "scatter"
	case GhostChase:
		return "chase"
	case GhostFrightened:
		return "frightened"
	case GhostEaten:
		return "eaten"
	default:
		return "unknown"
	}
}

// Phase is the lifecycle state of a game.
type Phase uint8

const (
	PhaseReady Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// PauseCause records why a game entered PhasePaused.
type PauseCause uint8

const (
	PauseNone PauseCause = iota
	PauseUser
	PauseDeath
	PauseLevelClear
)

func (c PauseCause) String() string {
	switch c {
	case PauseNone:
		return "none"
	case PauseUser:
		return "user"
	case PauseDeath:
		return "death"
	case PauseLevelClear:
		return "level_clear"
	default:
		return "unknown"
	}
}

// Mode selects single-player or local versus play.
type Mode uint8

const (
	ModeClassic Mode = iota
	ModePvP
)

func (m Mode) String() string {
	if m == ModePvP {
		return "pvp"
	}
	return "classic"
}

// ParseMode converts a case-insensitive mode name ("classic" or "pvp").
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "classic":
		return ModeClassic, nil
	case "pvp":
		return ModePvP, nil
	default:
		return ModeClassic, fmt.Errorf("pacman: invalid game mode %q: use \"classic\" or \"pvp\"", s)
	}
}

// Vec is a continuous position in tile units.
type Vec struct {
	X, Y float64
}

// Tile returns the grid cell containing the position.
// Rounds half away from zero.
func (v Vec) Tile() Tile {
	return Tile{Col: int(math.Round(v.X)), Row: int(math.Round(v.Y))}
}

// DistSq returns the squared Euclidean distance between two positions.
func (v Vec) DistSq(o Vec) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return dx*dx + dy*dy
}

// Tile is an integer grid coordinate. Targets may lie outside the maze.
type Tile struct {
	Col, Row int
}

// T is a shorthand constructor for Tile.
func T(col, row int) Tile {
	return Tile{Col: col, Row: row}
}

// Add returns the tile offset by n steps in direction d.
func (t Tile) Add(d Dir, n int) Tile {
	dx, dy := d.Delta()
	return Tile{Col: t.Col + dx*n, Row: t.Row + dy*n}
}

// DistSq returns the squared grid distance between two tiles.
func (t Tile) DistSq(o Tile) int {
	dc := t.Col - o.Col
	dr := t.Row - o.Row
	return dc*dc + dr*dr
}

// Center returns the position of the tile center.
func (t Tile) Center() Vec {
	return Vec{X: float64(t.Col), Y: float64(t.Row)}
}
