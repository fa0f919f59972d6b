// Package core provides the platform-neutral building blocks shared by the
// game and the terminal front end: a character screen buffer, layout
// rectangles, input actions and runtime configuration. It has no external
// dependencies so game code stays testable without a terminal.
package core

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Centered returns a w×h rectangle centered inside an outer area of
// outerW×outerH cells. Offsets never go negative.
func Centered(outerW, outerH, w, h int) Rect {
	return Rect{
		X: max(0, (outerW-w)/2),
		Y: max(0, (outerH-h)/2),
		W: w,
		H: h,
	}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	return max(lo, min(hi, val))
}
