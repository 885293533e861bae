// SPDX-License-Identifier: Unlicense OR MIT

package main

// A Gio program that shows a radial menu. Drag from the button to an
// item and release to select it.

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	giowidget "gioui.org/widget"
	giomaterial "gioui.org/widget/material"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/arcmenu/arcmenu/config"
	"github.com/arcmenu/arcmenu/menu"
	"github.com/arcmenu/arcmenu/widget"
	"github.com/arcmenu/arcmenu/widget/material"
)

var (
	configFile = flag.String("config", "", "menu description in YAML")
	debug      = flag.Bool("debug", false, "log item presses")
)

// iconData maps icon names to material design icons.
var iconData = map[string][]byte{
	"search":   icons.ActionSearch,
	"filter":   icons.ContentFilterList,
	"star":     icons.ToggleStar,
	"share":    icons.SocialShare,
	"delete":   icons.ActionDelete,
	"settings": icons.ActionSettings,
	"add":      icons.ContentAdd,
	"home":     icons.ActionHome,
}

const defaultConfig = `
center: {right: 48, bottom: 48}
padding: {left: 8, top: 8, right: 8, bottom: 8}
items:
  - {label: search, icon: search}
  - {label: filter, icon: filter}
  - {label: star, icon: star}
  - {label: share, icon: share}
  - {label: delete, icon: delete}
  - {label: settings, icon: settings}
`

func main() {
	flag.Parse()
	logger := newLogger(*debug)
	defer logger.Sync()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}
	logger.Info("menu configured",
		zap.Float32("collapsed_radius", cfg.CollapsedRadius),
		zap.Float32("expanded_radius", cfg.ExpandedRadius),
		zap.Int("items", len(cfg.Items)),
	)
	d, err := newDemo(cfg, logger)
	if err != nil {
		logger.Fatal("menu", zap.Error(err))
	}

	go func() {
		w := new(app.Window)
		w.Option(app.Title("Arc menu"), app.Size(unit.Dp(400), unit.Dp(700)))
		if err := d.loop(w); err != nil {
			logger.Fatal("window", zap.Error(err))
		}
		os.Exit(0)
	}()
	app.Main()
}

func newLogger(debug bool) *zap.Logger {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	zcfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      debug,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	logger, err := zcfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

func loadConfig(path string) (*config.Menu, error) {
	if path == "" {
		return config.Parse([]byte(defaultConfig))
	}
	return config.Load(path)
}

type demo struct {
	logger *zap.Logger
	th     *giomaterial.Theme
	menu   *widget.Menu
	button *giowidget.Icon
	items  []layout.Widget
	labels []string
	last   string
}

func newDemo(cfg *config.Menu, logger *zap.Logger) (*demo, error) {
	th := giomaterial.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	m, err := widget.NewMenu(cfg.Options())
	if err != nil {
		return nil, err
	}
	button, err := giowidget.NewIcon(icons.ContentAdd)
	if err != nil {
		return nil, err
	}
	d := &demo{logger: logger, th: th, menu: m, button: button}
	for _, it := range cfg.Items {
		w, err := d.itemWidget(it)
		if err != nil {
			return nil, err
		}
		label := it.Label
		if label == "" {
			label = it.Icon
		}
		d.items = append(d.items, w)
		d.labels = append(d.labels, label)
	}
	m.Listener = menu.ListenerFunc(func(it *menu.Item, index int) {
		logger.Debug("item released", zap.Int("index", index), zap.Stringer("center", it.Center()))
	})
	return d, nil
}

// itemWidget returns a widget drawing the icon of it, or its label if
// it has no icon.
func (d *demo) itemWidget(it config.Item) (layout.Widget, error) {
	if it.Icon == "" {
		l := giomaterial.Body1(d.th, it.Label)
		l.Color = d.th.Palette.ContrastFg
		return l.Layout, nil
	}
	data, ok := iconData[it.Icon]
	if !ok {
		return nil, fmt.Errorf("unknown icon %q", it.Icon)
	}
	ic, err := giowidget.NewIcon(data)
	if err != nil {
		return nil, err
	}
	return func(gtx layout.Context) layout.Dimensions {
		sz := gtx.Dp(unit.Dp(28))
		gtx.Constraints = layout.Exact(image.Pt(sz, sz))
		return ic.Layout(gtx, d.th.Palette.ContrastFg)
	}, nil
}

func (d *demo) loop(w *app.Window) error {
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			d.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (d *demo) layout(gtx layout.Context) layout.Dimensions {
	for {
		c, ok := d.menu.Update(gtx)
		if !ok {
			break
		}
		d.last = d.labels[c.Index]
		d.logger.Info("item selected", zap.Int("index", c.Index), zap.String("label", d.last))
	}
	paint.Fill(gtx.Ops, color.NRGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff})
	layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		msg := "Nothing selected"
		if d.last != "" {
			msg = "Selected " + d.last
		}
		return giomaterial.H6(d.th, msg).Layout(gtx)
	})
	for _, p := range d.menu.History() {
		r := gtx.Dp(unit.Dp(4))
		pt := p.Position.Round()
		b := image.Rect(pt.X-r, pt.Y-r, pt.X+r, pt.Y+r)
		paint.FillShape(gtx.Ops, color.NRGBA{A: 0x40}, clip.Ellipse(b).Op(gtx.Ops))
	}
	return material.Menu(d.th, d.menu, d.button, d.items...).Layout(gtx)
}
