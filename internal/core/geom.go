// Package core provides fundamental types and utilities for lavajump.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an integer rectangle in screen cells.
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

// AABB is an axis-aligned bounding box in world units.
// Y grows downward, so a smaller Y is higher up in the world.
type AABB struct {
	X, Y float64
	W, H float64
}

// NewAABB creates a box with the given top-left corner and size.
func NewAABB(x, y, w, h float64) AABB {
	return AABB{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b AABB) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b AABB) Bottom() float64 {
	return b.Y + b.H
}

// CenterX returns the horizontal center of the box.
func (b AABB) CenterX() float64 {
	return b.X + b.W/2
}

// OverlapsX reports whether the horizontal extents overlap.
// The intervals are open: boxes whose edges only touch do not overlap.
func (b AABB) OverlapsX(other AABB) bool {
	return b.Right() > other.X && b.X < other.Right()
}

// OverlapsY reports whether the vertical extents overlap (open intervals).
func (b AABB) OverlapsY(other AABB) bool {
	return b.Bottom() > other.Y && b.Y < other.Bottom()
}

// Intersects reports strict overlap on both axes.
func (b AABB) Intersects(other AABB) bool {
	return b.OverlapsX(other) && b.OverlapsY(other)
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
	return math.Max(min, math.Min(max, val))
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
