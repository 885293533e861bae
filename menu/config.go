// SPDX-License-Identifier: Unlicense OR MIT

package menu

import (
	"errors"
	"fmt"
	"image/color"

	"gioui.org/f32"
)

// Config describes a menu in pixels.
type Config struct {
	// CollapsedRadius is the radius of the button at rest.
	CollapsedRadius float32
	// ExpandedRadius is the outer radius of the expanded menu.
	ExpandedRadius float32
	// Anchor positions the center relative to the container edges.
	Anchor Anchor
	// Primary fills the expanded disk and the button at rest.
	Primary color.NRGBA
	// PrimaryDark fills the button while the menu is expanded.
	PrimaryDark color.NRGBA
}

// Anchor holds the distances from the center to the container edges.
// Of Left and Right only one is used, Left if it is set; likewise for
// Top and Bottom. A zero value means unset.
type Anchor struct {
	Left, Top, Right, Bottom float32
}

// Insets is the padding between the container edges and the area the
// menu may draw into.
type Insets struct {
	Left, Top, Right, Bottom float32
}

// ErrRadius is returned for a configuration whose expanded radius is
// smaller than its collapsed radius.
var ErrRadius = errors.New("expanded radius is smaller than collapsed radius")

var (
	defaultPrimary     = color.NRGBA{R: 0x00, G: 0xdd, B: 0xff, A: 0xff}
	defaultPrimaryDark = color.NRGBA{R: 0x00, G: 0x99, B: 0xcc, A: 0xff}
)

// DefaultConfig returns the configuration of a menu anchored in the top
// left corner, scaled by pxPerDp.
func DefaultConfig(pxPerDp float32) Config {
	return Config{
		CollapsedRadius: 65. / 2 * pxPerDp,
		ExpandedRadius:  65 * 2 * pxPerDp,
		Primary:         defaultPrimary,
		PrimaryDark:     defaultPrimaryDark,
	}
}

// Validate reports configuration mistakes.
func (c Config) Validate() error {
	if c.CollapsedRadius < 0 {
		return fmt.Errorf("menu: negative collapsed radius %v", c.CollapsedRadius)
	}
	if c.ExpandedRadius < c.CollapsedRadius {
		return fmt.Errorf("menu: %w (collapsed %v, expanded %v)", ErrRadius, c.CollapsedRadius, c.ExpandedRadius)
	}
	a := c.Anchor
	if a.Left < 0 || a.Top < 0 || a.Right < 0 || a.Bottom < 0 {
		return fmt.Errorf("menu: negative anchor %+v", a)
	}
	return nil
}

// normalize keeps the button fully inside the container: set anchors
// are at least min, and an axis without anchors is anchored at min
// from the left or top edge.
func (a Anchor) normalize(min float32) Anchor {
	raise := func(v float32) float32 {
		if v != 0 && v < min {
			return min
		}
		return v
	}
	a.Left, a.Top = raise(a.Left), raise(a.Top)
	a.Right, a.Bottom = raise(a.Right), raise(a.Bottom)
	switch {
	case a.Left != 0:
		a.Right = 0
	case a.Right == 0:
		a.Left = min
	}
	switch {
	case a.Top != 0:
		a.Bottom = 0
	case a.Bottom == 0:
		a.Top = min
	}
	return a
}

// center returns the anchored point inside a container of the given
// size.
func (a Anchor) center(size f32.Point) f32.Point {
	c := f32.Point{X: a.Left, Y: a.Top}
	if a.Left == 0 {
		c.X = size.X - a.Right
	}
	if a.Top == 0 {
		c.Y = size.Y - a.Bottom
	}
	return c
}
