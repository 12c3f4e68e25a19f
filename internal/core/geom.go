// Package core provides fundamental types and utilities shared by the
// simulation and the platform layers. It has no external dependencies
// (especially no Bubble Tea) so the game logic stays pure and testable.
package core

// Box is an axis-aligned bounding box in field space: screen pixels,
// origin top-left, y growing downward.
type Box struct {
	Top, Left, Bottom, Right float64
}

// BoxAt builds a box from its top-left corner and size.
func BoxAt(x, y, w, h float64) Box {
	return Box{Top: y, Left: x, Bottom: y + h, Right: x + w}
}

// Overlaps reports whether two boxes collide. They overlap unless one lies
// strictly left, right, above or below the other, so touching edges count.
func Overlaps(a, b Box) bool {
	return !(b.Left > a.Right ||
		b.Right < a.Left ||
		b.Top > a.Bottom ||
		b.Bottom < a.Top)
}

// Rect is an integer cell rectangle used when drawing into a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
