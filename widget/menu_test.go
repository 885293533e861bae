// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"errors"
	"image"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/io/input"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"

	"github.com/arcmenu/arcmenu/menu"
)

func testOptions() Options {
	o := DefaultOptions()
	o.CollapsedRadius = 20
	o.ExpandedRadius = 100
	o.Center = layout.Inset{Left: 150, Top: 150}
	return o
}

func TestNewMenuRejectsRadii(t *testing.T) {
	o := testOptions()
	o.ExpandedRadius = 10
	if _, err := NewMenu(o); !errors.Is(err, menu.ErrRadius) {
		t.Errorf("NewMenu = %v, want %v", err, menu.ErrRadius)
	}
}

func TestOptionsScale(t *testing.T) {
	o := testOptions()
	o.Padding = layout.Inset{Left: 4, Bottom: 8}
	m := unit.Metric{PxPerDp: 2, PxPerSp: 2}
	cfg := o.Config(m)
	if cfg.CollapsedRadius != 40 || cfg.ExpandedRadius != 200 {
		t.Errorf("radii = %v, %v, want 40, 200", cfg.CollapsedRadius, cfg.ExpandedRadius)
	}
	if cfg.Anchor != (menu.Anchor{Left: 300, Top: 300}) {
		t.Errorf("anchor = %+v", cfg.Anchor)
	}
	if got := o.insets(m); got != (menu.Insets{Left: 8, Bottom: 16}) {
		t.Errorf("insets = %+v", got)
	}
}

func TestLayoutFollowsMetric(t *testing.T) {
	w, err := NewMenu(testOptions())
	if err != nil {
		t.Fatal(err)
	}
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(600, 600)),
		Metric:      unit.Metric{PxPerDp: 2, PxPerSp: 2},
		Now:         time.Unix(0, 0),
	}
	dims := w.Layout(gtx, []image.Point{{X: 10, Y: 10}})
	if dims.Size != image.Pt(600, 600) {
		t.Errorf("size = %v, want 600x600", dims.Size)
	}
	m := w.Menu()
	if got := m.Center(); got != f32.Pt(300, 300) {
		t.Errorf("center = %v, want (300, 300)", got)
	}
	if got := m.ItemRadius(); got != 120 {
		t.Errorf("item radius = %v, want 120", got)
	}
	if got := len(m.Items()); got != 1 {
		t.Errorf("%d items, want 1", got)
	}
}

func TestPressDragRelease(t *testing.T) {
	var r input.Router
	w, err := NewMenu(testOptions())
	if err != nil {
		t.Fatal(err)
	}
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Source:      r.Source(),
		Constraints: layout.Exact(image.Pt(300, 300)),
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Now:         time.Unix(0, 0),
	}
	sizes := []image.Point{{X: 20, Y: 20}, {X: 20, Y: 20}, {X: 20, Y: 20}, {X: 20, Y: 20}}
	frame := func() {
		gtx.Ops.Reset()
		w.Layout(gtx, sizes)
		r.Frame(gtx.Ops)
	}
	frame()

	center := f32.Pt(150, 150)
	r.Queue(pointer.Event{
		Kind:     pointer.Press,
		Source:   pointer.Touch,
		Position: center,
	})
	frame()
	if got := w.Menu().State(); got != menu.Expanded {
		t.Fatalf("state = %v, want %v", got, menu.Expanded)
	}

	gtx.Now = gtx.Now.Add(time.Second)
	frame()
	target := w.Menu().Items()[1].Center()
	r.Queue(
		pointer.Event{
			Kind:     pointer.Drag,
			Source:   pointer.Touch,
			Position: target,
		},
		pointer.Event{
			Kind:     pointer.Release,
			Source:   pointer.Touch,
			Position: target,
		},
	)
	frame()
	c, ok := w.Update(gtx)
	if !ok || c.Index != 1 {
		t.Fatalf("Update = %v, %v, want click on item 1", c, ok)
	}
	if _, ok := w.Update(gtx); ok {
		t.Error("click reported twice")
	}
	if got := w.Menu().State(); got != menu.Collapsed {
		t.Errorf("state = %v, want %v", got, menu.Collapsed)
	}
	if h := w.History(); len(h) != 1 || h[0].Index != 1 {
		t.Errorf("history = %v, want a press on item 1", h)
	}
}

func TestCancelEndsGesture(t *testing.T) {
	var r input.Router
	w, err := NewMenu(testOptions())
	if err != nil {
		t.Fatal(err)
	}
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Source:      r.Source(),
		Constraints: layout.Exact(image.Pt(300, 300)),
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Now:         time.Unix(0, 0),
	}
	frame := func() {
		gtx.Ops.Reset()
		w.Layout(gtx, nil)
		r.Frame(gtx.Ops)
	}
	frame()

	center := f32.Pt(150, 150)
	r.Queue(pointer.Event{
		Kind:      pointer.Press,
		Source:    pointer.Touch,
		PointerID: 3,
		Position:  center,
	})
	frame()
	if got := w.Menu().State(); got != menu.Expanded {
		t.Fatalf("state = %v, want %v", got, menu.Expanded)
	}
	// Cancel events are not tied to a pointer.
	r.Queue(pointer.Event{Kind: pointer.Cancel})
	frame()
	if w.down {
		t.Fatal("pointer still tracked after cancel")
	}

	gtx.Now = gtx.Now.Add(time.Second)
	r.Queue(pointer.Event{
		Kind:      pointer.Press,
		Source:    pointer.Touch,
		PointerID: 4,
		Position:  center,
	})
	frame()
	if got := w.Menu().State(); got != menu.Collapsed {
		t.Errorf("state after second press = %v, want %v", got, menu.Collapsed)
	}
}

func TestLayoutKeepsConfigOnInvalidMetric(t *testing.T) {
	w, err := NewMenu(testOptions())
	if err != nil {
		t.Fatal(err)
	}
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(600, 600)),
		Metric:      unit.Metric{PxPerDp: 2, PxPerSp: 2},
		Now:         time.Unix(0, 0),
	}
	w.Layout(gtx, nil)
	gtx.Ops.Reset()
	gtx.Metric = unit.Metric{PxPerDp: -1, PxPerSp: -1}
	w.Layout(gtx, nil)
	if got := w.Menu().Config().ExpandedRadius; got != 200 {
		t.Errorf("expanded radius = %v, want 200", got)
	}
	if got := w.Menu().Center(); got != f32.Pt(300, 300) {
		t.Errorf("center = %v, want (300, 300)", got)
	}
}

func TestZeroMetricCountsAsOne(t *testing.T) {
	cfg := testOptions().Config(unit.Metric{})
	if cfg.CollapsedRadius != 20 || cfg.ExpandedRadius != 100 {
		t.Errorf("radii = %v, %v, want 20, 100", cfg.CollapsedRadius, cfg.ExpandedRadius)
	}
}
