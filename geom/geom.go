// SPDX-License-Identifier: Unlicense OR MIT

/*
Package geom implements the float32 rectangles, circles and angle
helpers used to lay out a radial menu.

The coordinate space has the origin in the top left corner with the
axes extending right and down. Angles are in degrees and increase
clockwise on screen, starting at 3 o'clock.
*/
package geom

import (
	"math"

	"gioui.org/f32"
)

// A Rect contains the points (X, Y) where Min.X <= X <= Max.X,
// Min.Y <= Y <= Max.Y.
type Rect struct {
	Min, Max f32.Point
}

// A Circle is a center and a radius.
type Circle struct {
	Center f32.Point
	Radius float32
}

// R is shorthand for Rect{Min: f32.Pt(x0, y0), Max: f32.Pt(x1, y1)}.
// The returned rectangle has its corners swapped if necessary so that
// it is well-formed.
func R(x0, y0, x1, y1 float32) Rect {
	return Rect{Min: f32.Pt(x0, y0), Max: f32.Pt(x1, y1)}.Canon()
}

// Size returns r's width and height.
func (r Rect) Size() f32.Point {
	return f32.Point{X: r.Dx(), Y: r.Dy()}
}

// Dx returns r's width.
func (r Rect) Dx() float32 {
	return r.Max.X - r.Min.X
}

// Dy returns r's height.
func (r Rect) Dy() float32 {
	return r.Max.Y - r.Min.Y
}

// Center returns the midpoint of r.
func (r Rect) Center() f32.Point {
	return f32.Point{X: (r.Min.X + r.Max.X) * .5, Y: (r.Min.Y + r.Max.Y) * .5}
}

// Intersect returns the intersection of r and s.
func (r Rect) Intersect(s Rect) Rect {
	if r.Min.X < s.Min.X {
		r.Min.X = s.Min.X
	}
	if r.Min.Y < s.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if r.Max.X > s.Max.X {
		r.Max.X = s.Max.X
	}
	if r.Max.Y > s.Max.Y {
		r.Max.Y = s.Max.Y
	}
	return r
}

// Canon returns the canonical version of r, where Min is to
// the upper left of Max.
func (r Rect) Canon() Rect {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Empty reports whether r represents the empty area.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Outset grows r by d on every side.
func (r Rect) Outset(d float32) Rect {
	return Rect{
		Min: f32.Point{X: r.Min.X - d, Y: r.Min.Y - d},
		Max: f32.Point{X: r.Max.X + d, Y: r.Max.Y + d},
	}
}

// Contains reports whether p lies inside r or on its edges.
func (r Rect) Contains(p f32.Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Bounds returns the square enclosing c.
func (c Circle) Bounds() Rect {
	return Rect{
		Min: f32.Point{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius},
		Max: f32.Point{X: c.Center.X + c.Radius, Y: c.Center.Y + c.Radius},
	}
}

// Contains reports whether p lies inside the disk of c.
func (c Circle) Contains(p f32.Point) bool {
	return Dist(c.Center, p) <= float64(c.Radius)
}

// At returns the point of c at angle deg.
func (c Circle) At(deg float64) f32.Point {
	return Polar(c.Center, float64(c.Radius), deg)
}

// Dist returns the euclidean distance between a and b.
func Dist(a, b f32.Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Angle returns the angle in degrees at vertex of the triangle
// (vertex, a, b), computed with the law of cosines. Degenerate
// triangles with a zero length side have angle 0.
func Angle(vertex, a, b f32.Point) float64 {
	va := Dist(vertex, a)
	vb := Dist(vertex, b)
	ab := Dist(a, b)
	if va == 0 || vb == 0 {
		return 0
	}
	cos := (va*va + vb*vb - ab*ab) / (2 * va * vb)
	// Rounding can push the cosine just outside [-1, 1].
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi
}

// Cross returns the z component of the cross product of the vectors
// origin→a and origin→b. With y pointing down, a positive value means b
// is clockwise from a.
func Cross(origin, a, b f32.Point) float64 {
	ax, ay := float64(a.X-origin.X), float64(a.Y-origin.Y)
	bx, by := float64(b.X-origin.X), float64(b.Y-origin.Y)
	return ax*by - bx*ay
}

// Polar returns the point at distance r from center in the direction
// deg.
func Polar(center f32.Point, r, deg float64) f32.Point {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return f32.Point{
		X: center.X + float32(r*cos),
		Y: center.Y + float32(r*sin),
	}
}

// Mid returns the midpoint of a and b.
func Mid(a, b f32.Point) f32.Point {
	return f32.Point{X: (a.X + b.X) * .5, Y: (a.Y + b.Y) * .5}
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
