package ggfx

import "math"

// Point represents a 2D point or vector in pixel space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Size is the pixel extent of an image.
type Size struct {
	Width, Height int
}

// Sz is a convenience function to create a Size.
func Sz(w, h int) Size {
	return Size{Width: w, Height: h}
}

// Empty reports whether the size covers no pixels.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Pixels returns the number of pixels covered by the size.
func (s Size) Pixels() int {
	if s.Empty() {
		return 0
	}
	return s.Width * s.Height
}

// Center returns the center of the extent in pixel coordinates.
func (s Size) Center() Point {
	return Point{X: float64(s.Width) / 2, Y: float64(s.Height) / 2}
}
