// SPDX-License-Identifier: Unlicense OR MIT

// Package config reads menu descriptions from YAML.
//
// Sizes are in device independent pixels. Colors are #RRGGBB,
// #AARRGGBB or a CSS color name such as "steelblue".
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"gioui.org/layout"
	"gioui.org/unit"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/arcmenu/arcmenu/widget"
)

// Menu is a menu description.
type Menu struct {
	CollapsedRadius float32 `yaml:"collapsed_radius"`
	ExpandedRadius  float32 `yaml:"expanded_radius"`
	Center          Edges   `yaml:"center"`
	Padding         Edges   `yaml:"padding"`
	Colors          Colors  `yaml:"colors"`
	Items           []Item  `yaml:"items"`
}

// Edges holds one distance per container edge.
type Edges struct {
	Left   float32 `yaml:"left"`
	Top    float32 `yaml:"top"`
	Right  float32 `yaml:"right"`
	Bottom float32 `yaml:"bottom"`
}

// Colors of the menu.
type Colors struct {
	Primary     Color `yaml:"primary"`
	PrimaryDark Color `yaml:"primary_dark"`
}

// Item describes one menu entry.
type Item struct {
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
}

// Color is a color that unmarshals from a hex string or a color name.
type Color color.NRGBA

// Default returns the description of a menu in the top left corner
// without items.
func Default() *Menu {
	o := widget.DefaultOptions()
	return &Menu{
		CollapsedRadius: float32(o.CollapsedRadius),
		ExpandedRadius:  float32(o.ExpandedRadius),
		Colors: Colors{
			Primary:     Color(o.Primary),
			PrimaryDark: Color(o.PrimaryDark),
		},
	}
}

// Parse decodes a menu description. Unset fields keep the values of
// Default. Unknown fields are an error.
func Parse(data []byte) (*Menu, error) {
	m := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Load reads and parses the menu description in the named file.
func Load(path string) (*Menu, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Validate reports inconsistent descriptions.
func (m *Menu) Validate() error {
	if err := m.Options().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	for _, e := range []Edges{m.Center, m.Padding} {
		if e.Left < 0 || e.Top < 0 || e.Right < 0 || e.Bottom < 0 {
			return fmt.Errorf("config: negative distance in %+v", e)
		}
	}
	for i, it := range m.Items {
		if it.Label == "" && it.Icon == "" {
			return fmt.Errorf("config: item %d has neither label nor icon", i)
		}
	}
	return nil
}

// Options converts m to widget options.
func (m *Menu) Options() widget.Options {
	return widget.Options{
		CollapsedRadius: unit.Dp(m.CollapsedRadius),
		ExpandedRadius:  unit.Dp(m.ExpandedRadius),
		Center:          m.Center.inset(),
		Padding:         m.Padding.inset(),
		Primary:         color.NRGBA(m.Colors.Primary),
		PrimaryDark:     color.NRGBA(m.Colors.PrimaryDark),
	}
}

func (e Edges) inset() layout.Inset {
	return layout.Inset{
		Left:   unit.Dp(e.Left),
		Top:    unit.Dp(e.Top),
		Right:  unit.Dp(e.Right),
		Bottom: unit.Dp(e.Bottom),
	}
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	col, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = Color(col)
	return nil
}

func (c Color) MarshalYAML() (interface{}, error) {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), nil
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.A, c.R, c.G, c.B), nil
}

// ParseColor parses #RRGGBB, #AARRGGBB or a color name.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
		}
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		v |= 0xff000000
	}
	return color.NRGBA{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}
