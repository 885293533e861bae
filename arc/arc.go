// SPDX-License-Identifier: Unlicense OR MIT

/*
Package arc computes the part of a circle that remains visible inside
a bounding rectangle.

A menu centered close to a window edge cannot spread its items around
the full circle. Solve intersects the circle with the edges of the
available area and returns the widest arc that stays inside it.
*/
package arc

import (
	"math"
	"sort"

	"gioui.org/f32"

	"github.com/arcmenu/arcmenu/geom"
)

// Arc is an angular span of a circle in degrees. Angles increase
// clockwise from 3 o'clock. To is always larger than From and may
// exceed 360 when the arc wraps through 0.
type Arc struct {
	From, To float32
}

// Full is the whole circle.
var Full = Arc{From: 0, To: 360}

// tolerance is the distance in pixels under which a circle is
// considered tangent to an edge, and by which a point may lie outside
// the bounds and still count as inside.
const tolerance = 1e-3

// angleTolerance is the difference in degrees under which two arcs
// are considered equally wide. The first one in clockwise order wins.
const angleTolerance = 1e-3

// Span returns the angular length of a.
func (a Arc) Span() float32 {
	return a.To - a.From
}

// IsFull reports whether a covers the whole circle.
func (a Arc) IsFull() bool {
	return a.Span() >= 360
}

// Contains reports whether the direction deg lies in a.
func (a Arc) Contains(deg float32) bool {
	d := math.Mod(float64(deg-a.From), 360)
	if d < 0 {
		d += 360
	}
	return d <= float64(a.Span())
}

// Length returns the length of a along a circle of radius r.
func (a Arc) Length(r float32) float32 {
	return float32(float64(a.Span()) * math.Pi / 180 * float64(r))
}

// AngleAt returns the direction reached after travelling length
// along a, on a circle of radius r.
func (a Arc) AngleAt(r, length float32) float64 {
	if r == 0 {
		return float64(a.From)
	}
	return float64(a.From) + float64(length)/float64(r)*180/math.Pi
}

// PointAt maps a path length along a to a point, on a circle of radius
// r centered at c.
func (a Arc) PointAt(c f32.Point, r, length float32) f32.Point {
	return geom.Polar(c, float64(r), a.AngleAt(r, length))
}

// Solve returns the widest arc of the circle (center, radius) that lies
// inside bounds. It returns Full when the circle does not cross any
// edge of bounds, and for degenerate input. A corner of bounds lying on
// the circle counts as a crossing.
func Solve(center f32.Point, radius float32, bounds geom.Rect) Arc {
	if radius <= 0 || bounds.Empty() {
		return Full
	}
	pts := intersections(center, radius, bounds)
	if len(pts)%2 == 1 {
		pts = withCorners(center, radius, bounds, pts)
	}
	if len(pts) < 2 {
		return Full
	}
	best := -1.0
	var a, b, normal f32.Point
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		angle, m, ok := arcAngle(center, p, q, radius, bounds)
		if !ok || angle <= best+angleTolerance {
			continue
		}
		best, a, b, normal = angle, p, q, m
	}
	if best < 0 {
		return Full
	}
	// Order a and b so that a → normal → b runs clockwise.
	if geom.Cross(center, a, normal) < 0 {
		a, b = b, a
	}
	from := angleOnCircle(center, a, radius)
	to := angleOnCircle(center, b, radius)
	if to <= from {
		to += 360
	}
	return Arc{From: float32(from), To: float32(to)}
}

// intersections returns the points where the circle crosses the edges
// of bounds. The edges are visited clockwise so the points are ordered
// clockwise around the center.
func intersections(center f32.Point, radius float32, bounds geom.Rect) []f32.Point {
	cx, cy, r := float64(center.X), float64(center.Y), float64(radius)
	left, top := float64(bounds.Min.X), float64(bounds.Min.Y)
	right, bottom := float64(bounds.Max.X), float64(bounds.Max.Y)
	// chord returns half the chord cut by a line at distance d from
	// the center.
	chord := func(d float64) (float64, bool) {
		if math.Abs(d) >= r-tolerance {
			return 0, false
		}
		return math.Sqrt(r*r - d*d), true
	}
	var pts []f32.Point
	add := func(x, y float64) {
		pts = append(pts, f32.Point{X: float32(x), Y: float32(y)})
	}
	// Right edge, top to bottom.
	if dy, ok := chord(right - cx); ok {
		if y := cy - dy; y > top {
			add(right, y)
		}
		if y := cy + dy; y < bottom {
			add(right, y)
		}
	}
	// Bottom edge, right to left.
	if dx, ok := chord(bottom - cy); ok {
		if x := cx + dx; x < right {
			add(x, bottom)
		}
		if x := cx - dx; x > left {
			add(x, bottom)
		}
	}
	// Left edge, bottom to top.
	if dy, ok := chord(cx - left); ok {
		if y := cy + dy; y < bottom {
			add(left, y)
		}
		if y := cy - dy; y > top {
			add(left, y)
		}
	}
	// Top edge, left to right.
	if dx, ok := chord(cy - top); ok {
		if x := cx - dx; x > left {
			add(x, top)
		}
		if x := cx + dx; x < right {
			add(x, top)
		}
	}
	return pts
}

// withCorners adds the corners of bounds lying on the circle to pts and
// orders the result clockwise from 3 o'clock. Edge crossings exclude
// the corners, so a circle entering bounds through a corner otherwise
// misses that point.
func withCorners(center f32.Point, radius float32, bounds geom.Rect, pts []f32.Point) []f32.Point {
	corners := [...]f32.Point{
		bounds.Min,
		{X: bounds.Max.X, Y: bounds.Min.Y},
		bounds.Max,
		{X: bounds.Min.X, Y: bounds.Max.Y},
	}
	for _, c := range corners {
		if math.Abs(geom.Dist(center, c)-float64(radius)) > tolerance {
			continue
		}
		dup := false
		for _, p := range pts {
			if geom.Dist(p, c) <= tolerance {
				dup = true
				break
			}
		}
		if !dup {
			pts = append(pts, c)
		}
	}
	sort.Slice(pts, func(i, j int) bool {
		return direction(center, pts[i]) < direction(center, pts[j])
	})
	return pts
}

// direction returns the direction of p seen from center, in [0, 360).
func direction(center, p f32.Point) float64 {
	d := math.Atan2(float64(p.Y-center.Y), float64(p.X-center.X)) * 180 / math.Pi
	if d < 0 {
		d += 360
	}
	return d
}

// arcAngle returns the span of the clockwise arc from a to b together
// with its midnormal point. The arc is usable only if the midnormal
// point lies inside bounds.
func arcAngle(center, a, b f32.Point, radius float32, bounds geom.Rect) (float64, f32.Point, bool) {
	m := midNormalPoint(center, a, b, float64(radius))
	if !bounds.Outset(tolerance).Contains(m) {
		return 0, m, false
	}
	angle := geom.Angle(center, a, b)
	if geom.Dist(geom.Mid(a, b), m) > float64(radius) {
		angle = 360 - angle
	}
	return angle, m, true
}

// midNormalPoint returns the point of the circle on the perpendicular
// bisector of the chord ab, on the side swept when going clockwise
// from a to b.
func midNormalPoint(center, a, b f32.Point, radius float64) f32.Point {
	r := float32(radius)
	switch {
	case a.Y == b.Y:
		if b.X > a.X {
			return f32.Point{X: center.X, Y: center.Y - r}
		}
		return f32.Point{X: center.X, Y: center.Y + r}
	case a.X == b.X:
		if b.Y > a.Y {
			return f32.Point{X: center.X + r, Y: center.Y}
		}
		return f32.Point{X: center.X - r, Y: center.Y}
	}
	slope := float64(a.Y-b.Y) / float64(a.X-b.X)
	sin, cos := math.Sincos(math.Atan(-1 / slope))
	// The clockwise side of a→b is along (dy, -dx).
	dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)
	if cos*dy-sin*dx < 0 {
		sin, cos = -sin, -cos
	}
	return f32.Point{
		X: center.X + float32(radius*cos),
		Y: center.Y + float32(radius*sin),
	}
}

// angleOnCircle returns the direction of p seen from center.
func angleOnCircle(center, p f32.Point, radius float32) float64 {
	ref := f32.Point{X: center.X + radius, Y: center.Y}
	angle := geom.Angle(center, p, ref)
	if p.Y < center.Y {
		angle = 360 - angle
	}
	return angle
}
