// SPDX-License-Identifier: Unlicense OR MIT

// Package material draws radial menus in the style of
// gioui.org/widget/material.
package material

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	giowidget "gioui.org/widget"
	giomaterial "gioui.org/widget/material"

	"github.com/arcmenu/arcmenu/menu"
	"github.com/arcmenu/arcmenu/widget"
)

// MenuStyle draws a radial menu and its items.
type MenuStyle struct {
	State *widget.Menu
	// Icon is drawn on the button and turns by 45° as the menu
	// expands.
	Icon      *giowidget.Icon
	IconColor color.NRGBA
	// Ink is drawn behind a pressed item.
	Ink   color.NRGBA
	Items []layout.Widget
}

// Menu returns the style of a menu with the given items.
func Menu(th *giomaterial.Theme, state *widget.Menu, icon *giowidget.Icon, items ...layout.Widget) MenuStyle {
	return MenuStyle{
		State:     state,
		Icon:      icon,
		IconColor: th.Palette.ContrastFg,
		Ink:       mulAlpha(th.Palette.ContrastFg, 0x48),
		Items:     items,
	}
}

func (s MenuStyle) Layout(gtx layout.Context) layout.Dimensions {
	calls := make([]op.CallOp, len(s.Items))
	sizes := make([]image.Point, len(s.Items))
	for i, w := range s.Items {
		macro := op.Record(gtx.Ops)
		cgtx := gtx
		cgtx.Constraints.Min = image.Point{}
		sizes[i] = w(cgtx).Size
		calls[i] = macro.Stop()
	}
	dims := s.State.Layout(gtx, sizes)
	m := s.State.Menu()
	c := m.Center()

	if a := m.DiskAlpha(); a > 0 {
		fillCircle(gtx.Ops, c, m.Radius(), mulAlpha(m.Primary(), uint8(a*0xff)))
	}
	fillCircle(gtx.Ops, c, m.ButtonRadius(), m.ButtonColor())
	if s.Icon != nil {
		s.layoutIcon(gtx, m)
	}
	for i, it := range m.Items() {
		if i >= len(calls) || it.Alpha <= 0 || it.Scale <= 0 {
			continue
		}
		s.layoutItem(gtx, it, calls[i])
	}
	return dims
}

func (s MenuStyle) layoutIcon(gtx layout.Context, m *menu.Menu) {
	sz := int(m.Config().CollapsedRadius)
	c := m.Center()
	angle := float32(math.Pi / 4 * float64(m.Progress()))
	defer op.Affine(f32.Affine2D{}.Rotate(c, angle)).Push(gtx.Ops).Pop()
	origin := c.Sub(f32.Pt(float32(sz), float32(sz)).Mul(.5)).Round()
	defer op.Offset(origin).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(image.Pt(sz, sz))
	s.Icon.Layout(gtx, s.IconColor)
}

func (s MenuStyle) layoutItem(gtx layout.Context, it *menu.Item, call op.CallOp) {
	scale := f32.Affine2D{}.Scale(it.Center(), f32.Pt(it.Scale, it.Scale))
	defer op.Affine(scale).Push(gtx.Ops).Pop()
	defer paint.PushOpacity(gtx.Ops, clamp(it.Alpha)).Pop()
	if it.Pressed {
		r := float32(math.Max(float64(it.Size.X), float64(it.Size.Y))) * .5
		fillCircle(gtx.Ops, it.Center(), r, s.Ink)
	}
	defer op.Offset(it.Pos.Round()).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
}

func fillCircle(ops *op.Ops, c f32.Point, r float32, col color.NRGBA) {
	b := image.Rectangle{
		Min: f32.Pt(c.X-r, c.Y-r).Round(),
		Max: f32.Pt(c.X+r, c.Y+r).Round(),
	}
	paint.FillShape(ops, col, clip.Ellipse(b).Op(ops))
}

func mulAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(alpha) / 0xFF)
	return c
}

func clamp(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
