// SPDX-License-Identifier: Unlicense OR MIT

package menu

import (
	"time"

	"gioui.org/f32"

	"github.com/arcmenu/arcmenu/geom"
)

// Event is a pointer event in the coordinates of the menu container.
type Event struct {
	Kind     Kind
	Position f32.Point
	Time     time.Time
}

// Kind of an Event.
type Kind uint8

const (
	// Cancel aborts the current gesture.
	Cancel Kind = iota
	// Press is a pointer going down.
	Press
	// Move is a pointer moving while down.
	Move
	// Release is a pointer going up.
	Release
)

// touchState is the gesture tracking state. It is one of touchIdle,
// touchOutside or touchItem.
type touchState interface {
	isTouchState()
}

// touchIdle is the state outside a gesture.
type touchIdle struct{}

// touchOutside tracks a gesture that is not over any item.
type touchOutside struct{}

// touchItem tracks a gesture over the item at index.
type touchItem struct {
	index int
}

func (touchIdle) isTouchState()    {}
func (touchOutside) isTouchState() {}
func (touchItem) isTouchState()    {}

// Event processes a pointer event and reports whether the menu
// consumed it. Events outside the disk are consumed only to collapse
// an expanded menu.
func (m *Menu) Event(e Event) bool {
	if e.Kind == Cancel {
		m.untrack()
		m.touch = touchIdle{}
		return true
	}
	if disk := (geom.Circle{Center: m.center, Radius: m.Radius()}); !disk.Contains(e.Position) {
		if m.state == Expanded {
			m.Collapse(true, e.Time)
			m.touch = touchIdle{}
			return true
		}
		return false
	}
	switch e.Kind {
	case Press:
		m.Toggle(true, e.Time)
		m.touch = touchOutside{}
	case Move:
		m.move(e)
	case Release:
		m.release(e)
	}
	return true
}

// Tracked returns the item a gesture is currently over.
func (m *Menu) Tracked() (*Item, bool) {
	t, ok := m.touch.(touchItem)
	if !ok {
		return nil, false
	}
	return m.item(t.index)
}

func (m *Menu) move(e Event) {
	switch t := m.touch.(type) {
	case touchItem:
		it, ok := m.item(t.index)
		if !ok {
			m.touch = touchOutside{}
			return
		}
		if !it.Hit(e.Position) {
			it.Pressed = false
			m.touch = touchOutside{}
			m.host.Invalidate()
		}
	case touchIdle, touchOutside:
		it, ok := HitTest(e.Position, m.items)
		if !ok {
			return
		}
		m.touch = touchItem{index: it.Index}
		it.Pressed = true
		m.host.Dispatch(it, e)
		m.host.Invalidate()
	}
}

func (m *Menu) release(e Event) {
	switch t := m.touch.(type) {
	case touchItem:
		m.touch = touchIdle{}
		it, ok := m.item(t.index)
		if !ok {
			return
		}
		it.Pressed = false
		m.Collapse(true, e.Time)
		if m.listener != nil {
			m.listener.OnMenuItemClick(it, it.Index)
		}
	case touchIdle, touchOutside:
		m.touch = touchIdle{}
	}
}

// untrack releases the tracked item, if any.
func (m *Menu) untrack() {
	if it, ok := m.Tracked(); ok {
		it.Pressed = false
		m.host.Invalidate()
	}
}

func (m *Menu) releasePressed() {
	for _, it := range m.items {
		it.Pressed = false
	}
}
