// SPDX-License-Identifier: Unlicense OR MIT

package menu

import (
	"gioui.org/f32"

	"github.com/arcmenu/arcmenu/arc"
	"github.com/arcmenu/arcmenu/geom"
)

// TouchTolerance is the fraction of an item's width added around its
// bounds when hit testing.
const TouchTolerance = .2

// Item is a selectable entry of a menu.
type Item struct {
	// Index is the position of the item in the menu.
	Index int
	// Size is the measured size of the item's widget.
	Size f32.Point
	// Pos is the top-left corner of the item.
	Pos f32.Point
	// Bounds is the area covered by the item.
	Bounds geom.Rect
	// Pressed is set while a pointer drags over the item.
	Pressed bool
	// Alpha and Scale are the animated opacity and scale factor.
	Alpha, Scale float32
}

// Center returns the point on the item path the item is centered on.
func (it *Item) Center() f32.Point {
	return it.Bounds.Center()
}

// Hit reports whether p falls on the item, allowing for the touch
// tolerance. The tolerance is derived from the width alone and added
// on every side.
func (it *Item) Hit(p f32.Point) bool {
	return it.Bounds.Outset(it.Bounds.Dx() * TouchTolerance).Contains(p)
}

// Place distributes items evenly along a, on a circle of radius r
// centered at c. Each item is centered on the midpoint of its share of
// the arc.
func Place(a arc.Arc, r float32, c f32.Point, items []*Item) {
	if len(items) == 0 {
		return
	}
	divider := a.Length(r) / float32(len(items))
	for i, it := range items {
		p := a.PointAt(c, r, divider*(float32(i)+.5))
		it.Pos = p.Sub(it.Size.Mul(.5))
		it.Bounds = geom.Rect{Min: it.Pos, Max: it.Pos.Add(it.Size)}
	}
}

// HitTest returns the first item hit by p.
func HitTest(p f32.Point, items []*Item) (*Item, bool) {
	for _, it := range items {
		if it.Hit(p) {
			return it, true
		}
	}
	return nil, false
}
