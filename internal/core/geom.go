// Package core provides fundamental types and utilities for the ski game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec is a point in world coordinates.
type Vec struct {
	X, Y float64
}

// Add returns the sum of two vectors.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Extent holds the width and height of a visual asset in world units.
type Extent struct {
	Width, Height float64
}

// Rect represents an axis-aligned bounding box in world coordinates.
// Left <= Right and Top <= Bottom for any rect built by this package.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// NewRect creates a rectangle from its four edges.
func NewRect(left, top, right, bottom float64) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// RectFromCenter creates a rectangle of the given size centered on c.
func RectFromCenter(c Vec, size Extent) Rect {
	left := c.X - size.Width/2
	top := c.Y - size.Height/2
	return Rect{Left: left, Top: top, Right: left + size.Width, Bottom: top + size.Height}
}

// HitBox returns the collision rectangle of a sprite centered at pos.
// The box spans the full width and runs from the sprite's top edge down
// to a quarter of its height above the center, leaving the lower part
// of the sprite (skis, feet, trunks) out of collisions.
func HitBox(pos Vec, ext Extent) Rect {
	return Rect{
		Left:   pos.X - ext.Width/2,
		Top:    pos.Y - ext.Height/2,
		Right:  pos.X + ext.Width/2,
		Bottom: pos.Y - ext.Height/4,
	}
}

// Width returns the horizontal size of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical size of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	return Intersects(r, other)
}

// Intersects reports whether a and b overlap. Uses strict inequalities,
// so rectangles that only share an edge do not intersect.
func Intersects(a, b Rect) bool {
	return a.Left < b.Right && a.Right > b.Left && a.Top < b.Bottom && a.Bottom > b.Top
}

// Contains returns true if the point lies inside the rectangle (edges included).
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Expand grows the rectangle by dx on each horizontal side and dy on each vertical side.
func (r Rect) Expand(dx, dy float64) Rect {
	return Rect{Left: r.Left - dx, Top: r.Top - dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// StepToward moves from toward target by at most step, never passing target.
func StepToward(from, target, step float64) float64 {
	d := target - from
	if math.Abs(d) <= step {
		return target
	}
	if d > 0 {
		return from + step
	}
	return from - step
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
