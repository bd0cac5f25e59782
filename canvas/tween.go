// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"time"

	"stencilui.org/stencil/math32"
)

// Tween is a short transform animation between two states, used for
// animated button zooms. The engine computes the interpolation; the
// presentation layer drives the clock.
type Tween struct {
	From     Transform
	To       Transform
	Duration time.Duration
}

// NewZoomTween captures the viewport's current transform, applies fn to
// reach the target transform, and returns a tween between the two over
// [ZoomAnimationDuration]. The viewport is left at the target state;
// the tween exists purely for presentation.
func (v *Viewport) NewZoomTween(fn func()) Tween {
	from := v.Transform
	fn()
	return Tween{From: from, To: v.Transform, Duration: ZoomAnimationDuration}
}

// At returns the interpolated transform at elapsed time e, eased with
// a smoothstep curve and clamped to the endpoint.
func (tw Tween) At(e time.Duration) Transform {
	if tw.Duration <= 0 || e >= tw.Duration {
		return tw.To
	}
	t := math32.Clamp(float32(e)/float32(tw.Duration), 0, 1)
	t = t * t * (3 - 2*t)
	return Transform{
		TranslateX: lerp(tw.From.TranslateX, tw.To.TranslateX, t),
		TranslateY: lerp(tw.From.TranslateY, tw.To.TranslateY, t),
		Scale:      lerp(tw.From.Scale, tw.To.Scale, t),
	}
}

// Done reports whether the tween has finished at elapsed time e.
func (tw Tween) Done(e time.Duration) bool {
	return e >= tw.Duration
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
