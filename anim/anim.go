// SPDX-License-Identifier: Unlicense OR MIT

// Package anim implements time based tweens and easing curves. Tweens
// hold no goroutines or timers; they are evaluated against the frame
// time and the caller requests new frames while any tween is running.
package anim

import (
	"image/color"
	"math"
	"time"
)

// Easing maps the linear fraction of elapsed time in [0, 1] to the
// fraction of the animated distance.
type Easing func(t float32) float32

// Linear is the identity easing.
func Linear(t float32) float32 {
	return t
}

// AccelerateDecelerate starts and ends slowly and speeds up in the
// middle.
func AccelerateDecelerate(t float32) float32 {
	return float32(math.Cos(float64(t+1)*math.Pi)/2 + .5)
}

// Overshoot returns an easing that flings past the target and settles
// back. A larger tension overshoots further; 0 disables the overshoot.
func Overshoot(tension float32) Easing {
	return func(t float32) float32 {
		t -= 1
		return t*t*((tension+1)*t+tension) + 1
	}
}

// Tween animates a value from From to To. The animation starts Delay
// after Start and lasts for Duration.
type Tween struct {
	From, To float32
	Start    time.Time
	Delay    time.Duration
	Duration time.Duration
	// Ease defaults to Linear.
	Ease Easing
}

// ColorTween animates a color by interpolating each channel.
type ColorTween struct {
	From, To color.NRGBA
	Start    time.Time
	Duration time.Duration
}

// Fraction returns the clamped fraction of elapsed time at now.
func (t Tween) Fraction(now time.Time) float32 {
	return fraction(now.Sub(t.Start)-t.Delay, t.Duration)
}

// Value returns the eased value at now.
func (t Tween) Value(now time.Time) float32 {
	f := t.Fraction(now)
	switch f {
	case 0:
		return t.From
	case 1:
		return t.To
	}
	ease := t.Ease
	if ease == nil {
		ease = Linear
	}
	return t.From + (t.To-t.From)*ease(f)
}

// Done reports whether the tween has reached its end at now.
func (t Tween) Done(now time.Time) bool {
	return t.Fraction(now) >= 1
}

// Value returns the color at now.
func (c ColorTween) Value(now time.Time) color.NRGBA {
	return LerpColor(c.From, c.To, fraction(now.Sub(c.Start), c.Duration))
}

// Done reports whether the tween has reached its end at now.
func (c ColorTween) Done(now time.Time) bool {
	return fraction(now.Sub(c.Start), c.Duration) >= 1
}

// LerpColor interpolates linearly between the channels of a and b.
func LerpColor(a, b color.NRGBA, t float32) color.NRGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*float64(t)))
	}
	return color.NRGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: lerp(a.A, b.A),
	}
}

func fraction(elapsed, total time.Duration) float32 {
	switch {
	case elapsed < 0, elapsed == 0 && total > 0:
		return 0
	case elapsed >= total:
		return 1
	}
	return float32(elapsed) / float32(total)
}
