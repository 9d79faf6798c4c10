package core

import "math"

// Maze dimensions in tiles.
const (
	MazeWidth  = 28
	MazeHeight = 31
)

// TunnelRow is the only row whose border cells are open.
const TunnelRow = 14

// Layout legend:
//
//	#  wall
//	.  dot
//	o  power pellet
//	-  ghost house
//	   empty (space)
var mazeLayout = [MazeHeight]string{
	"############################",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#o####.#####.##.#####.####o#",
	"#.####.#####.##.#####.####.#",
	"#..........................#",
	"#.####.##.########.##.####.#",
	"#.####.##.########.##.####.#",
	"#......##....##....##......#",
	"######.#####.##.#####.######",
	"######.#####.##.#####.######",
	"######.##..........##.######",
	"######.##.###--###.##.######",
	"######.##.# ---- #.##.######",
	"      ....# ---- #....      ",
	"######.##.# ---- #.##.######",
	"######.##.########.##.######",
	"######.##..........##.######",
	"######.##.########.##.######",
	"######.##.########.##.######",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#.####.#####.##.#####.####.#",
	"#o..##................##..o#",
	"###.##.##.########.##.##.###",
	"###.##.##.########.##.##.###",
	"#......##....##....##......#",
	"#.##########.##.##########.#",
	"#.##########.##.##########.#",
	"#..........................#",
	"############################",
}

// houseBounds is the ghost house interior including its walls and door.
var houseBounds = struct{ minCol, maxCol, minRow, maxRow int }{11, 16, 12, 15}

// HouseExit is the tile just above the ghost house door.
var HouseExit = T(14, 11)

// Maze is the grid of cells. The consumable layer is mutated in place
// as Pac-Man eats; everything else is fixed for the life of a level.
type Maze struct {
	cells []CellKind // row-major, MazeWidth*MazeHeight
}

// NewMaze returns a fresh copy of the built-in layout.
func NewMaze() *Maze {
	m := &Maze{cells: make([]CellKind, MazeWidth*MazeHeight)}
	for row, line := range mazeLayout {
		for col := 0; col < MazeWidth; col++ {
			m.cells[row*MazeWidth+col] = parseCell(line[col])
		}
	}
	return m
}

func parseCell(b byte) CellKind {
	switch b {
	case '#':
		return CellWall
	case '.':
		return CellDot
	case 'o':
		return CellPowerPellet
	case '-':
		return CellGhostHouse
	default:
		return CellEmpty
	}
}

// inBounds reports whether (col, row) addresses a real cell.
func inBounds(col, row int) bool {
	return col >= 0 && col < MazeWidth && row >= 0 && row < MazeHeight
}

// CellAt returns the cell at (row, col). The second result is false when
// the coordinate is outside the maze.
func (m *Maze) CellAt(row, col int) (CellKind, bool) {
	if !inBounds(col, row) {
		return CellWall, false
	}
	return m.cells[row*MazeWidth+col], true
}

// IsWalkable reports whether Pac-Man may occupy the cell containing (x, y).
// Columns beyond the horizontal edges are tunnel continuation and walkable.
func (m *Maze) IsWalkable(x, y float64) bool {
	col, row := int(math.Round(x)), int(math.Round(y))
	if row >= 0 && row < MazeHeight && (col < 0 || col >= MazeWidth) {
		return true
	}
	return m.walkable(col, row, false)
}

// walkable is the integer form used by the movement code. Off-grid
// columns are open only on the tunnel row. When allowHouse is set, ghost
// house cells count as open.
func (m *Maze) walkable(col, row int, allowHouse bool) bool {
	if row < 0 || row >= MazeHeight {
		return false
	}
	if col < 0 || col >= MazeWidth {
		return row == TunnelRow
	}
	switch m.cells[row*MazeWidth+col] {
	case CellWall:
		return false
	case CellGhostHouse:
		return allowHouse
	default:
		return true
	}
}

// DotsRemaining counts dots and power pellets still in the maze.
func (m *Maze) DotsRemaining() int {
	n := 0
	for _, c := range m.cells {
		if c.IsConsumable() {
			n++
		}
	}
	return n
}

// Consume replaces the cell with Empty. Out-of-range coordinates are ignored.
func (m *Maze) Consume(row, col int) {
	if !inBounds(col, row) {
		return
	}
	m.cells[row*MazeWidth+col] = CellEmpty
}

// Clone returns an independent copy of the maze.
func (m *Maze) Clone() *Maze {
	c := &Maze{cells: make([]CellKind, len(m.cells))}
	copy(c.cells, m.cells)
	return c
}

// Tags returns the maze as a row-major matrix of cell tags, row 0 at the top.
func (m *Maze) Tags() [][]string {
	out := make([][]string, MazeHeight)
	for row := range out {
		line := make([]string, MazeWidth)
		for col := range line {
			line[col] = m.cells[row*MazeWidth+col].String()
		}
		out[row] = line
	}
	return out
}

// inHouse reports whether a tile lies inside the ghost house rectangle.
func inHouse(t Tile) bool {
	return t.Col >= houseBounds.minCol && t.Col <= houseBounds.maxCol &&
		t.Row >= houseBounds.minRow && t.Row <= houseBounds.maxRow
}
