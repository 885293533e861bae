// SPDX-License-Identifier: Unlicense OR MIT

// Package widget adapts radial menus to Gio. A Menu holds the
// persistent state of a menu and turns pointer events into item
// presses and selections. Theme packages such as `widget/material`
// implement drawing of menus.
package widget
