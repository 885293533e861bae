// SPDX-License-Identifier: Unlicense OR MIT

package menu

import (
	"image/color"
	"time"

	"github.com/arcmenu/arcmenu/anim"
)

const (
	// Duration is the length of the expand and collapse animations.
	Duration = 400 * time.Millisecond
	// itemDelay is the delay before the first item animates.
	itemDelay = 100 * time.Millisecond
	// itemStagger is the delay between consecutive items.
	itemStagger = 50 * time.Millisecond
	// overshoot is the tension of the expand and collapse curve.
	overshoot = 2
)

// driver holds the running expand or collapse animation. Geometry is
// never recomputed while it runs; it only moves the progress, the
// button color and the per item opacity and scale.
type driver struct {
	running  bool
	progress anim.Tween
	color    anim.ColorTween
	alpha    []anim.Tween
	scale    []anim.Tween
}

func (m *Menu) startExpand(now time.Time) {
	m.start(now, 1, m.cfg.PrimaryDark)
	delay := itemDelay
	for i, it := range m.items {
		m.anim.alpha[i] = itemTween(now, delay, it.Alpha, 1)
		m.anim.scale[i] = itemTween(now, delay, it.Scale, 1)
		delay += itemStagger
	}
}

// startCollapse hides the items starting from the last one.
func (m *Menu) startCollapse(now time.Time) {
	m.start(now, 0, m.cfg.Primary)
	delay := itemDelay
	for i := len(m.items) - 1; i >= 0; i-- {
		it := m.items[i]
		m.anim.alpha[i] = itemTween(now, delay, it.Alpha, 0)
		m.anim.scale[i] = itemTween(now, delay, it.Scale, 0)
		delay += itemStagger
	}
}

// start supersedes any running animation, continuing from the current
// values.
func (m *Menu) start(now time.Time, progress float32, button color.NRGBA) {
	m.anim = driver{
		running: true,
		progress: anim.Tween{
			From:     m.progress,
			To:       progress,
			Start:    now,
			Duration: Duration,
			Ease:     anim.Overshoot(overshoot),
		},
		color: anim.ColorTween{
			From:     m.button,
			To:       button,
			Start:    now,
			Duration: Duration,
		},
		alpha: make([]anim.Tween, len(m.items)),
		scale: make([]anim.Tween, len(m.items)),
	}
}

func itemTween(now time.Time, delay time.Duration, from, to float32) anim.Tween {
	return anim.Tween{
		From:     from,
		To:       to,
		Start:    now,
		Delay:    delay,
		Duration: Duration,
		Ease:     anim.AccelerateDecelerate,
	}
}

// jump ends any animation and sets the end values directly.
func (m *Menu) jump(progress float32, button color.NRGBA) {
	m.anim = driver{}
	m.progress = progress
	m.button = button
	for _, it := range m.items {
		it.Alpha, it.Scale = progress, progress
	}
}

// Animating reports whether an animation is running.
func (m *Menu) Animating() bool {
	return m.anim.running
}

// Tick advances the running animation to now and reports whether it
// needs further frames.
func (m *Menu) Tick(now time.Time) bool {
	d := &m.anim
	if !d.running {
		return false
	}
	m.progress = d.progress.Value(now)
	m.button = d.color.Value(now)
	done := d.progress.Done(now) && d.color.Done(now)
	for i, it := range m.items {
		if i >= len(d.alpha) {
			break
		}
		it.Alpha = d.alpha[i].Value(now)
		it.Scale = d.scale[i].Value(now)
		done = done && d.alpha[i].Done(now)
	}
	d.running = !done
	m.host.Invalidate()
	return d.running
}

// truncate drops the tweens of removed items.
func (d *driver) truncate(n int) {
	if n < len(d.alpha) {
		d.alpha = d.alpha[:n]
		d.scale = d.scale[:n]
	}
}
