// Package core provides the platform types shared by games and hosts:
// screens, input frames and runtime configuration. It has no terminal
// dependencies so game adapters stay testable.
package core

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle with the given position and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// CenteredRect returns a w×h rectangle centered in an outer area.
// Offsets never go negative when the area is too small.
func CenteredRect(outerW, outerH, w, h int) Rect {
	return Rect{X: max(0, (outerW-w)/2), Y: max(0, (outerH-h)/2), W: w, H: h}
}
