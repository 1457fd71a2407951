// Package geom provides the 2D primitives shared by the measurement engine:
// points and sizes in image-pixel space, and the viewport mapper that moves
// coordinates between image space and the letterboxed display area.
package geom

import "math"

// Point is a position in either image or screen space, depending on context.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dist returns the Euclidean distance to q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Lerp returns the point t of the way from p to q.
func Lerp(p, q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Midpoint returns the point halfway between p and q.
func Midpoint(p, q Point) Point {
	return Lerp(p, q, 0.5)
}

// Size holds width and height in pixels (image) or display units (viewport).
type Size struct {
	W float64 `json:"width"`
	H float64 `json:"height"`
}

// Valid reports whether both dimensions are strictly positive.
func (s Size) Valid() bool {
	return s.W > 0 && s.H > 0
}

// Center returns the size's center point.
func (s Size) Center() Point {
	return Point{X: s.W / 2, Y: s.H / 2}
}
