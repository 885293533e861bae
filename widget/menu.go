// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"time"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"

	"github.com/arcmenu/arcmenu/menu"
)

// Menu is the state of a radial menu covering its container.
type Menu struct {
	// Listener, if set, is notified of selections in addition to
	// the clicks reported by Update.
	Listener menu.Listener

	opts   Options
	menu   *menu.Menu
	metric unit.Metric
	size   image.Point

	// pid is the pointer tracked by the menu while down is set.
	pid  pointer.ID
	down bool

	clicks     []Click
	history    []Press
	invalidate bool
}

// Click is a selected item.
type Click struct {
	Index int
}

// Press is a past press of an item, useful for drawing markers.
type Press struct {
	Index    int
	Position f32.Point
	Time     time.Time
}

// NewMenu returns the state of a collapsed menu. It fails if opts are
// invalid.
func NewMenu(opts Options) (*Menu, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	w := &Menu{opts: opts, metric: unit.Metric{PxPerDp: 1, PxPerSp: 1}}
	m, err := menu.New(opts.Config(w.metric),
		menu.WithHost(w),
		menu.WithListener(menu.ListenerFunc(w.selected)),
	)
	if err != nil {
		return nil, err
	}
	w.menu = m
	return w, nil
}

// Menu returns the layout and interaction state of w.
func (w *Menu) Menu() *menu.Menu {
	return w.menu
}

// Options returns the options of w.
func (w *Menu) Options() Options {
	return w.opts
}

// Update processes pointer events and returns the next selection, if
// any.
func (w *Menu) Update(gtx layout.Context) (Click, bool) {
	w.update(gtx)
	if len(w.clicks) == 0 {
		return Click{}, false
	}
	c := w.clicks[0]
	n := copy(w.clicks, w.clicks[1:])
	w.clicks = w.clicks[:n]
	return c, true
}

// History is the past item presses. History is retained for a short
// duration (about a second).
func (w *Menu) History() []Press {
	return w.history
}

// Expand shows the items with an animation.
func (w *Menu) Expand(gtx layout.Context) {
	w.menu.Expand(true, gtx.Now)
}

// Collapse hides the items with an animation.
func (w *Menu) Collapse(gtx layout.Context) {
	w.menu.Collapse(true, gtx.Now)
}

// Layout processes events, places items of the given sizes, advances
// the animation and registers the menu for pointer input over the
// whole container. Input outside the menu also reaches the widgets
// below.
func (w *Menu) Layout(gtx layout.Context, sizes []image.Point) layout.Dimensions {
	w.update(gtx)
	fsizes := make([]f32.Point, len(sizes))
	for i, sz := range sizes {
		fsizes[i] = layout.FPt(sz)
	}
	w.menu.Layout(fsizes)
	if w.menu.Tick(gtx.Now) || w.invalidate {
		w.invalidate = false
		gtx.Execute(op.InvalidateCmd{})
	}
	for len(w.history) > 0 {
		if gtx.Now.Sub(w.history[0].Time) < time.Second {
			break
		}
		n := copy(w.history, w.history[1:])
		w.history = w.history[:n]
	}

	defer clip.Rect{Max: w.size}.Push(gtx.Ops).Pop()
	defer pointer.PassOp{}.Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, w)
	return layout.Dimensions{Size: w.size}
}

// update resizes the menu to the container and feeds it the pointer
// events since the last frame.
func (w *Menu) update(gtx layout.Context) {
	if m := gtx.Metric; m != w.metric {
		// A metric that invalidates the options, such as a negative
		// scale, keeps the previous configuration.
		if err := w.menu.Configure(w.opts.Config(m)); err == nil {
			w.metric = m
			w.size = image.Point{}
		}
	}
	if size := gtx.Constraints.Max; size != w.size {
		w.size = size
		w.menu.Resize(layout.FPt(size), w.opts.insets(w.metric))
	}
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: w,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
		if e, ok := ev.(pointer.Event); ok {
			w.pointer(gtx, e)
		}
	}
}

// pointer translates e for the menu. Only the first pointer down is
// followed.
func (w *Menu) pointer(gtx layout.Context, e pointer.Event) {
	me := menu.Event{Position: e.Position, Time: gtx.Now}
	switch e.Kind {
	case pointer.Press:
		if w.down {
			return
		}
		if e.Source == pointer.Mouse && e.Buttons != pointer.ButtonPrimary {
			return
		}
		me.Kind = menu.Press
		if w.menu.Event(me) {
			w.pid, w.down = e.PointerID, true
		}
		return
	case pointer.Drag:
		me.Kind = menu.Move
	case pointer.Release:
		me.Kind = menu.Release
	case pointer.Cancel:
		// Cancel carries no pointer ID and ends every gesture.
		if w.down {
			w.down = false
			me.Kind = menu.Cancel
			w.menu.Event(me)
		}
		return
	default:
		return
	}
	if !w.down || e.PointerID != w.pid {
		return
	}
	if me.Kind == menu.Release {
		w.down = false
	}
	w.menu.Event(me)
}

func (w *Menu) selected(it *menu.Item, index int) {
	w.clicks = append(w.clicks, Click{Index: index})
	if w.Listener != nil {
		w.Listener.OnMenuItemClick(it, index)
	}
}

// Dispatch records the press of an item.
func (w *Menu) Dispatch(it *menu.Item, e menu.Event) {
	w.history = append(w.history, Press{Index: it.Index, Position: e.Position, Time: e.Time})
}

// Invalidate requests a new frame.
func (w *Menu) Invalidate() {
	w.invalidate = true
}
