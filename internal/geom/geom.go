// Package geom holds the small amount of 2D geometry the colony needs:
// vectors, axis-aligned rectangles and heading arithmetic in degrees.
package geom

import "math"

// Vec is a point or displacement in arena coordinates.
type Vec struct {
	X, Y float64
}

// Add returns v+u.
func (v Vec) Add(u Vec) Vec { return Vec{v.X + u.X, v.Y + u.Y} }

// Distance returns the euclidean distance between a and b.
func Distance(a, b Vec) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// FromHeading returns the displacement of length dist along heading
// (degrees, screen coordinates: 90 points down).
func FromHeading(heading, dist float64) Vec {
	rad := heading * math.Pi / 180
	return Vec{X: math.Cos(rad) * dist, Y: math.Sin(rad) * dist}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X      float64 `toml:"x" json:"x"`
	Y      float64 `toml:"y" json:"y"`
	Width  float64 `toml:"width" json:"width"`
	Height float64 `toml:"height" json:"height"`
}

// Box returns the w by h rectangle centered on c.
func Box(c Vec, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, Width: w, Height: h}
}

// Center returns the center point of r.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Overlaps reports whether r and o share any interior area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// Contains reports whether p lies inside r (edges included).
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
