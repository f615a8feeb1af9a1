// Package core provides fundamental types and utilities for the junction game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is a block of screen cells.
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

// Vec2 is a point or displacement in world pixels.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Unit returns v scaled to length 1, or the zero vector.
func (v Vec2) Unit() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

// Box is an axis-aligned bounding box in world pixels.
// Left/Top are inclusive, Right/Bottom exclusive.
type Box struct {
	Left, Top, Right, Bottom float64
}

// BoxAt returns a box of size w×h whose top-left corner is at p.
func BoxAt(p Vec2, w, h float64) Box {
	return Box{Left: p.X, Top: p.Y, Right: p.X + w, Bottom: p.Y + h}
}

// Width returns the box width.
func (b Box) Width() float64 { return b.Right - b.Left }

// Height returns the box height.
func (b Box) Height() float64 { return b.Bottom - b.Top }

// Area returns the box area.
func (b Box) Area() float64 { return b.Width() * b.Height() }

// OverlapArea returns the area shared by two boxes (0 when disjoint).
func (b Box) OverlapArea(o Box) float64 {
	ox := math.Max(0, math.Min(b.Right, o.Right)-math.Max(b.Left, o.Left))
	oy := math.Max(0, math.Min(b.Bottom, o.Bottom)-math.Max(b.Top, o.Top))
	return ox * oy
}

// Touches reports whether the boxes overlap by a positive area.
func (b Box) Touches(o Box) bool {
	return b.Left < o.Right && b.Right > o.Left && b.Top < o.Bottom && b.Bottom > o.Top
}
