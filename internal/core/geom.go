// Package core provides fundamental types and utilities shared by the simulation
// and its hosts. It contains no external dependencies (especially no Bubble Tea or
// Ebitengine) to keep game logic pure and testable.
package core

// Vec is a point or displacement in world space (y grows upward).
type Vec struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in world space.
// X, Y is the minimum corner; W and H extend toward +x and +y.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// MaxX returns the x-coordinate of the right edge.
func (r Rect) MaxX() float64 {
	return r.X + r.W
}

// MaxY returns the y-coordinate of the upper edge.
func (r Rect) MaxY() float64 {
	return r.Y + r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the point (x, y) is inside this rectangle.
// The minimum edges are inclusive, the maximum edges exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.MaxX() && y >= r.Y && y < r.MaxY()
}

// Closest returns the point of the rectangle nearest to (x, y).
func (r Rect) Closest(x, y float64) Vec {
	return Vec{
		X: ClampF(x, r.X, r.MaxX()),
		Y: ClampF(y, r.Y, r.MaxY()),
	}
}

// Circle is a disc in world space.
type Circle struct {
	X, Y float64
	R    float64
}

// IntersectsRect reports whether the circle overlaps the rectangle.
// The rectangle point nearest the center is found by clamping; the shapes collide
// when its squared distance to the center is at most R². A circle with no radius
// never collides.
func (c Circle) IntersectsRect(r Rect) bool {
	if c.R <= 0 {
		return false
	}
	p := r.Closest(c.X, c.Y)
	dx := c.X - p.X
	dy := c.Y - p.Y
	return dx*dx+dy*dy <= c.R*c.R
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// MaxF returns the larger of two float64 values.
func MaxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
