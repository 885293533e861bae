// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/unit"

	"github.com/arcmenu/arcmenu/menu"
)

// Options describes a menu in device independent units.
type Options struct {
	CollapsedRadius unit.Dp
	ExpandedRadius  unit.Dp
	// Center anchors the menu center to the edges of its container.
	// Zero fields are unset.
	Center layout.Inset
	// Padding is the space kept free around the expanded menu.
	Padding     layout.Inset
	Primary     color.NRGBA
	PrimaryDark color.NRGBA
}

// DefaultOptions returns the options of a menu anchored in the top
// left corner.
func DefaultOptions() Options {
	cfg := menu.DefaultConfig(1)
	return Options{
		CollapsedRadius: unit.Dp(cfg.CollapsedRadius),
		ExpandedRadius:  unit.Dp(cfg.ExpandedRadius),
		Primary:         cfg.Primary,
		PrimaryDark:     cfg.PrimaryDark,
	}
}

// Validate reports configuration mistakes.
func (o Options) Validate() error {
	return o.Config(unit.Metric{PxPerDp: 1, PxPerSp: 1}).Validate()
}

// Config converts o to pixels. A zero scale counts as 1, as in
// unit.Metric.
func (o Options) Config(m unit.Metric) menu.Config {
	px := func(v unit.Dp) float32 {
		return float32(v) * nonZero(m.PxPerDp)
	}
	return menu.Config{
		CollapsedRadius: px(o.CollapsedRadius),
		ExpandedRadius:  px(o.ExpandedRadius),
		Anchor: menu.Anchor{
			Left:   px(o.Center.Left),
			Top:    px(o.Center.Top),
			Right:  px(o.Center.Right),
			Bottom: px(o.Center.Bottom),
		},
		Primary:     o.Primary,
		PrimaryDark: o.PrimaryDark,
	}
}

// insets converts the padding to pixels.
func (o Options) insets(m unit.Metric) menu.Insets {
	px := func(v unit.Dp) float32 {
		return float32(v) * nonZero(m.PxPerDp)
	}
	p := o.Padding
	return menu.Insets{Left: px(p.Left), Top: px(p.Top), Right: px(p.Right), Bottom: px(p.Bottom)}
}

func nonZero(v float32) float32 {
	if v == 0 {
		return 1
	}
	return v
}
