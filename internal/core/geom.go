// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box in screen cells.
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

// Box is an axis-aligned rectangle in continuous playfield units (pixels).
// Y grows downward.
type Box struct {
	Left, Top, Right, Bottom float64
}

// NewBox creates a box from a top-left corner and a size.
func NewBox(x, y, w, h float64) Box {
	return Box{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.Bottom - b.Top
}

// Empty reports whether the box has no area.
func (b Box) Empty() bool {
	return b.Right <= b.Left || b.Bottom <= b.Top
}

// Overlaps reports strict overlap: boxes that only share an edge do not overlap.
func (b Box) Overlaps(other Box) bool {
	return b.Left < other.Right &&
		b.Right > other.Left &&
		b.Top < other.Bottom &&
		b.Bottom > other.Top
}

// Inset shrinks the box by fractions of its own size. left and right are
// fractions of the width, top and bottom fractions of the height.
func (b Box) Inset(left, top, right, bottom float64) Box {
	w, h := b.Width(), b.Height()
	return Box{
		Left:   b.Left + w*left,
		Top:    b.Top + h*top,
		Right:  b.Right - w*right,
		Bottom: b.Bottom - h*bottom,
	}
}

// Finite reports whether every edge of the box is a finite number.
func (b Box) Finite() bool {
	for _, v := range [...]float64{b.Left, b.Top, b.Right, b.Bottom} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
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
