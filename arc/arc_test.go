// SPDX-License-Identifier: Unlicense OR MIT

package arc

import (
	"math"
	"math/rand"
	"testing"

	"gioui.org/f32"

	"github.com/arcmenu/arcmenu/geom"
)

const epsilon = 1e-2

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < epsilon
}

func TestSolveFullCircle(t *testing.T) {
	for _, tc := range []struct {
		label  string
		center f32.Point
		radius float32
		bounds geom.Rect
	}{
		{"inside", f32.Pt(100, 100), 50, geom.R(0, 0, 200, 200)},
		{"tangent on every side", f32.Pt(100, 100), 50, geom.R(50, 50, 150, 150)},
		{"fully outside", f32.Pt(500, 500), 10, geom.R(0, 0, 100, 100)},
		{"empty bounds", f32.Pt(0, 0), 10, geom.R(0, 0, 0, 0)},
		{"zero radius", f32.Pt(10, 10), 0, geom.R(0, 0, 20, 20)},
	} {
		t.Run(tc.label, func(t *testing.T) {
			if got := Solve(tc.center, tc.radius, tc.bounds); got != Full {
				t.Errorf("Solve = %v, want %v", got, Full)
			}
		})
	}
}

func TestSolveClippedBottom(t *testing.T) {
	c := f32.Pt(100, 100)
	bounds := geom.R(0, 0, 200, 150)
	a := Solve(c, 80, bounds)
	// The two crossings of y=150 subtend 2·acos(50/80) on the outside.
	outside := 2 * math.Acos(50.0/80) * 180 / math.Pi
	if want := float32(360 - outside); !approx(a.Span(), want) {
		t.Errorf("span = %v, want %v", a.Span(), want)
	}
	half := math.Acos(62.44998/80) * 180 / math.Pi
	if want := float32(180 - half); !approx(a.From, want) {
		t.Errorf("from = %v, want %v", a.From, want)
	}
	if want := float32(360 + half); !approx(a.To, want) {
		t.Errorf("to = %v, want %v", a.To, want)
	}
	if a.Contains(90) {
		t.Error("arc includes the clipped bottom direction")
	}
	for _, deg := range []float32{0, 180, 270} {
		if !a.Contains(deg) {
			t.Errorf("arc excludes %v°", deg)
		}
	}
}

func TestSolveCorner(t *testing.T) {
	// Clipped by the right and the bottom edge.
	a := Solve(f32.Pt(190, 140), 50, geom.R(0, 0, 200, 150))
	if want := float32(168.463); !approx(a.From, want) {
		t.Errorf("from = %v, want %v", a.From, want)
	}
	if want := float32(281.537); !approx(a.To, want) {
		t.Errorf("to = %v, want %v", a.To, want)
	}
}

func TestSolveBand(t *testing.T) {
	// Clipped at the top and the bottom; the left and right arcs tie
	// and the first one in clockwise order from the right edge wins.
	a := Solve(f32.Pt(100, 50), 40, geom.R(0, 20, 200, 80))
	if want := float32(131.41); !approx(a.From, want) {
		t.Errorf("from = %v, want %v", a.From, want)
	}
	if want := float32(228.59); !approx(a.To, want) {
		t.Errorf("to = %v, want %v", a.To, want)
	}
}

func TestSolveFourEdges(t *testing.T) {
	// Only the four corner arcs remain inside.
	a := Solve(f32.Pt(50, 50), 60, geom.R(0, 0, 100, 100))
	half := math.Asin(50.0/60) * 180 / math.Pi
	if want := float32(90 - half); !approx(a.From, want) {
		t.Errorf("from = %v, want %v", a.From, want)
	}
	if want := float32(half); !approx(a.To, want) {
		t.Errorf("to = %v, want %v", a.To, want)
	}
}

func TestSolveCornerOnCircle(t *testing.T) {
	tests := []struct {
		name   string
		center f32.Point
		radius float32
		bounds geom.Rect
		span   float32
	}{
		// Tangent to the left edge, entering through the top left corner.
		{"top left", f32.Pt(32, 0), 32, geom.R(0, 0, 40, 42), float32(180 - math.Acos(8.0/32)*180/math.Pi)},
		// Tangent to the left edge, entering through the bottom left corner.
		{"bottom left", f32.Pt(77, 64), 77, geom.R(0, 0, 121, 64), float32(math.Atan2(64, math.Sqrt(77*77-64*64)) * 180 / math.Pi)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a := Solve(test.center, test.radius, test.bounds)
			if a.IsFull() {
				t.Fatalf("Solve = %v, want a partial arc", a)
			}
			want := sampledSpan(test.center, test.radius, test.bounds)
			if math.Abs(float64(a.Span()-want)) > 0.5 {
				t.Errorf("span = %v, sampled %v", a.Span(), want)
			}
			if math.Abs(float64(a.Span()-test.span)) > 0.5 {
				t.Errorf("span = %v, want %v", a.Span(), test.span)
			}
		})
	}
}

func TestSolveIdempotent(t *testing.T) {
	c, r, b := f32.Pt(37, 211), float32(93), geom.R(0, 10, 320, 240)
	first := Solve(c, r, b)
	for i := 0; i < 10; i++ {
		if got := Solve(c, r, b); got != first {
			t.Fatalf("Solve = %v, want %v", got, first)
		}
	}
}

func TestSolveMatchesSampling(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		bounds := geom.R(0, 0, 50+rnd.Float32()*400, 50+rnd.Float32()*400)
		c := f32.Pt(rnd.Float32()*bounds.Dx(), rnd.Float32()*bounds.Dy())
		r := 5 + rnd.Float32()*200
		got := Solve(c, r, bounds)
		want := sampledSpan(c, r, bounds)
		if math.Abs(float64(got.Span()-want)) > 0.5 {
			t.Errorf("Solve(%v, %v, %v) span = %v, sampled %v", c, r, bounds, got.Span(), want)
		}
	}
}

// sampledSpan walks the circle in small steps and returns the longest
// run of directions that stay inside bounds.
func sampledSpan(c f32.Point, r float32, bounds geom.Rect) float32 {
	const step = 0.05
	const n = int(360 / step)
	inside := make([]bool, n)
	all := true
	for i := range inside {
		inside[i] = bounds.Outset(tolerance).Contains(geom.Polar(c, float64(r), float64(i)*step))
		all = all && inside[i]
	}
	if all {
		return 360
	}
	best, run := 0, 0
	for i := 0; i < 2*n; i++ {
		if inside[i%n] {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return float32(best) * step
}

func TestArcPointAt(t *testing.T) {
	a := Arc{From: 90, To: 270}
	c := f32.Pt(0, 0)
	r := float32(10)
	if got, want := a.Length(r), float32(10*math.Pi); !approx(got, want) {
		t.Errorf("Length = %v, want %v", got, want)
	}
	p := a.PointAt(c, r, a.Length(r)/2)
	if geom.Dist(p, f32.Pt(-10, 0)) > epsilon {
		t.Errorf("PointAt(half) = %v, want (-10, 0)", p)
	}
	if !a.Contains(180) || a.Contains(0) || !a.Contains(-180) {
		t.Error("Contains disagrees with [90, 270]")
	}
	wrap := Arc{From: 300, To: 420}
	if !wrap.Contains(30) || !wrap.Contains(330) || wrap.Contains(90) {
		t.Error("Contains disagrees with wrapping arc")
	}
}
