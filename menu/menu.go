// SPDX-License-Identifier: Unlicense OR MIT

/*
Package menu implements the layout and interaction state of a radial
pop-out menu.

A Menu is a button that expands into a disk. Its items are spread
along the part of the disk that is visible inside the container, on
the circle halfway between the collapsed and the expanded radius.
Pointer events select an item by pressing the button, dragging onto
the item and releasing.

A Menu draws nothing. The host measures items, feeds pointer events,
calls Tick every frame while an animation runs and draws from the
state the Menu exposes.
*/
package menu

import (
	"image/color"
	"time"

	"gioui.org/f32"

	"github.com/arcmenu/arcmenu/arc"
	"github.com/arcmenu/arcmenu/geom"
)

// State is the expand state of a menu.
type State uint8

const (
	// Collapsed is the state of a menu at rest.
	Collapsed State = iota
	// Expanded is the state of a menu showing its items.
	Expanded
)

// Listener is notified when the user selects an item.
type Listener interface {
	OnMenuItemClick(it *Item, index int)
}

// ListenerFunc adapts a function to a Listener.
type ListenerFunc func(it *Item, index int)

// Host is the platform side of a menu.
type Host interface {
	// Dispatch forwards the pointer event that started tracking an
	// item to the item's widget.
	Dispatch(it *Item, e Event)
	// Invalidate requests a redraw.
	Invalidate()
}

// Option configures a Menu.
type Option func(m *Menu)

// Menu is the state of a radial menu.
type Menu struct {
	cfg      Config
	listener Listener
	host     Host

	state    State
	progress float32
	button   color.NRGBA

	size   f32.Point
	insets Insets
	center f32.Point
	bounds geom.Rect
	arc    arc.Arc

	items []*Item
	touch touchState
	anim  driver
}

type nopHost struct{}

// WithListener sets the listener for item selections.
func WithListener(l Listener) Option {
	return func(m *Menu) {
		m.listener = l
	}
}

// WithHost sets the host receiving forwarded events and redraw
// requests.
func WithHost(h Host) Option {
	return func(m *Menu) {
		m.host = h
	}
}

// New returns a collapsed menu. It fails if cfg is invalid.
func New(cfg Config, opts ...Option) (*Menu, error) {
	m := &Menu{host: nopHost{}, touch: touchIdle{}, arc: arc.Full}
	if err := m.Configure(cfg); err != nil {
		return nil, err
	}
	m.button = cfg.Primary
	for _, o := range opts {
		o(m)
	}
	return m, nil
}

// Configure replaces the configuration of m, keeping its state and
// items. The new geometry applies from the next Resize.
func (m *Menu) Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg.Anchor = cfg.Anchor.normalize(cfg.CollapsedRadius)
	m.cfg = cfg
	return nil
}

// Config returns the configuration in use, with normalized anchors.
func (m *Menu) Config() Config {
	return m.cfg
}

// Resize recomputes the center, the visible bounds and the arc for a
// container of the given size and padding. Items are placed again with
// their current sizes.
func (m *Menu) Resize(size f32.Point, pad Insets) {
	m.size, m.insets = size, pad
	m.center = m.cfg.Anchor.center(size)
	area := geom.R(pad.Left, pad.Top, size.X-pad.Right, size.Y-pad.Bottom)
	circle := geom.Circle{Center: m.center, Radius: m.cfg.ExpandedRadius}
	m.bounds = area.Intersect(circle.Bounds())
	m.arc = arc.Solve(m.center, m.cfg.ExpandedRadius, m.bounds)
	Place(m.arc, m.ItemRadius(), m.center, m.items)
}

// Attach sets the number of items. Existing items are kept; new items
// start hidden unless the menu is expanded.
func (m *Menu) Attach(n int) {
	if n < len(m.items) {
		m.releasePressed()
		m.items = m.items[:n]
		m.anim.truncate(n)
		return
	}
	var v float32
	if m.state == Expanded {
		v = 1
	}
	for i := len(m.items); i < n; i++ {
		m.items = append(m.items, &Item{Index: i, Alpha: v, Scale: v})
	}
}

// Layout sets the measured item sizes and places the items along the
// arc. The number of items follows len(sizes).
func (m *Menu) Layout(sizes []f32.Point) {
	m.Attach(len(sizes))
	for i, sz := range sizes {
		m.items[i].Size = sz
	}
	Place(m.arc, m.ItemRadius(), m.center, m.items)
}

// Items returns the items in order.
func (m *Menu) Items() []*Item {
	return m.items
}

// Placements returns the bounds of each item.
func (m *Menu) Placements() []geom.Rect {
	r := make([]geom.Rect, len(m.items))
	for i, it := range m.items {
		r[i] = it.Bounds
	}
	return r
}

// Arc returns the arc items are placed on.
func (m *Menu) Arc() arc.Arc {
	return m.arc
}

// Center returns the center of the menu.
func (m *Menu) Center() f32.Point {
	return m.center
}

// Bounds returns the area the expanded menu may cover.
func (m *Menu) Bounds() geom.Rect {
	return m.bounds
}

// State returns the expand state.
func (m *Menu) State() State {
	return m.state
}

// Progress returns the expand progress, 0 when collapsed and 1 when
// expanded. The value briefly exceeds 1 while the expand animation
// overshoots.
func (m *Menu) Progress() float32 {
	return m.progress
}

// Radius returns the current radius of the disk.
func (m *Menu) Radius() float32 {
	return geom.Lerp(m.cfg.CollapsedRadius, m.cfg.ExpandedRadius, m.progress)
}

// ItemRadius returns the radius of the circle items are centered on.
func (m *Menu) ItemRadius() float32 {
	return (m.cfg.CollapsedRadius + m.cfg.ExpandedRadius) / 2
}

// ButtonRadius returns the current radius of the button, which grows
// slightly while the menu expands.
func (m *Menu) ButtonRadius() float32 {
	c := m.cfg.CollapsedRadius
	return c + c*.2*m.progress
}

// DiskAlpha returns the opacity of the expanded disk.
func (m *Menu) DiskAlpha() float32 {
	switch p := m.progress; {
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}

// Primary returns the color of the expanded disk.
func (m *Menu) Primary() color.NRGBA {
	return m.cfg.Primary
}

// ButtonColor returns the current color of the button.
func (m *Menu) ButtonColor() color.NRGBA {
	return m.button
}

// SetPrimary changes the color of the disk and of the collapsed button.
func (m *Menu) SetPrimary(c color.NRGBA) {
	m.cfg.Primary = c
	if m.state == Collapsed && !m.anim.running {
		m.button = c
	}
	m.host.Invalidate()
}

// SetPrimaryDark changes the color of the expanded button.
func (m *Menu) SetPrimaryDark(c color.NRGBA) {
	m.cfg.PrimaryDark = c
	if m.state == Expanded && !m.anim.running {
		m.button = c
	}
	m.host.Invalidate()
}

// Expand shows the items, animated if animate is set.
func (m *Menu) Expand(animate bool, now time.Time) {
	m.state = Expanded
	if animate {
		m.startExpand(now)
	} else {
		m.jump(1, m.cfg.PrimaryDark)
	}
	m.host.Invalidate()
}

// Collapse hides the items, animated if animate is set. A pressed item
// is released.
func (m *Menu) Collapse(animate bool, now time.Time) {
	m.state = Collapsed
	m.releasePressed()
	if animate {
		m.startCollapse(now)
	} else {
		m.jump(0, m.cfg.Primary)
	}
	m.host.Invalidate()
}

// Toggle collapses an expanded menu and expands a collapsed one.
func (m *Menu) Toggle(animate bool, now time.Time) {
	switch m.state {
	case Collapsed:
		m.Expand(animate, now)
	case Expanded:
		m.Collapse(animate, now)
	}
}

func (m *Menu) item(index int) (*Item, bool) {
	if index < 0 || index >= len(m.items) {
		return nil, false
	}
	return m.items[index], true
}

func (f ListenerFunc) OnMenuItemClick(it *Item, index int) {
	f(it, index)
}

func (nopHost) Dispatch(*Item, Event) {}
func (nopHost) Invalidate()           {}

func (s State) String() string {
	switch s {
	case Collapsed:
		return "Collapsed"
	case Expanded:
		return "Expanded"
	default:
		panic("invalid State")
	}
}
