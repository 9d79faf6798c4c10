package core

import "math"

// walkFunc reports whether an entity may enter the cell at (col, row).
type walkFunc func(col, row int) bool

// mover is the part of an entity the movement kernel operates on.
type mover struct {
	pos     Vec
	dir     Dir
	pending Dir
}

// step advances m by distance d.
//
// A pending reversal is applied immediately. A pending 90° turn is taken
// only within d of the tile center on both axes, and only if the cell in
// the new direction is open; the entity snaps to the center when it turns.
// Once the step reaches the center of the current tile with a blocked cell
// ahead, the entity is clamped to that center. Horizontal positions wrap
// through the tunnel.
func step(m mover, d float64, walk walkFunc) mover {
	cur := m.pos.Tile()

	if m.pending != m.dir {
		if m.pending == m.dir.Opposite() {
			m.dir = m.pending
		} else if nearCenter(m.pos, cur, d) {
			next := cur.Add(m.pending, 1)
			if walk(next.Col, next.Row) {
				m.pos = cur.Center()
				m.dir = m.pending
			}
		}
	}

	dx, dy := m.dir.Delta()
	nx := m.pos.X + float64(dx)*d
	ny := m.pos.Y + float64(dy)*d

	// Signed progress past the current center along the travel axis.
	past := (nx-float64(cur.Col))*float64(dx) + (ny-float64(cur.Row))*float64(dy)
	if past >= 0 {
		ahead := cur.Add(m.dir, 1)
		if !walk(ahead.Col, ahead.Row) {
			nx, ny = float64(cur.Col), float64(cur.Row)
		}
	}

	m.pos = Vec{X: wrapX(nx), Y: ny}
	return m
}

// nearCenter reports whether pos is within d of the tile center on both axes.
func nearCenter(pos Vec, t Tile, d float64) bool {
	return math.Abs(pos.X-float64(t.Col)) <= d && math.Abs(pos.Y-float64(t.Row)) <= d
}

// wrapX applies the horizontal tunnel wrap.
func wrapX(x float64) float64 {
	const w = float64(MazeWidth)
	if x < -0.5 {
		return x + w
	}
	if x >= w-0.5 {
		return x - w
	}
	return x
}

// distanceToNextCenter returns how far an entity at pos heading dir must
// travel to reach the next tile center, counting its own center when it
// has not yet passed it. The result is in [0, 1).
func distanceToNextCenter(pos Vec, dir Dir) (float64, Tile) {
	cur := pos.Tile()
	dx, dy := dir.Delta()
	ahead := (float64(cur.Col)-pos.X)*float64(dx) + (float64(cur.Row)-pos.Y)*float64(dy)
	if ahead >= 0 {
		return ahead, cur
	}
	return ahead + 1, cur.Add(dir, 1)
}
