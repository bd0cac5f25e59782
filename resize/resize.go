// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resize implements the per-interaction resize state machine:
// Idle → Resizing(element, handle, start bounds, start pointer) → Idle.
// It converts pointer deltas in document space into a new size and
// position for the element, honoring min/max bounds, aspect lock, and
// edge anchoring, and emits the final geometry exactly once on release.
package resize

import (
	"errors"

	"stencilui.org/stencil/math32"
)

// Default size limits applied when an element specifies none.
const (
	DefaultMinSize = 20
	DefaultMaxSize = 10000
)

// ErrActive is returned when a resize is started while one is already
// in progress; only one resize interaction may be active at a time.
var ErrActive = errors.New("resize: interaction already active")

// ErrLocked is returned when a resize is requested on a locked
// element.
var ErrLocked = errors.New("resize: element locked")

// ErrMultiSelection is returned when a resize is requested while more
// than one element is selected; handles exist only for a single
// selection.
var ErrMultiSelection = errors.New("resize: multi-selection has no handles")

// Limits are the per-axis size bounds for the resized element. Zero
// values fall back to [DefaultMinSize] / [DefaultMaxSize].
type Limits struct {
	MinWidth  float32
	MaxWidth  float32
	MinHeight float32
	MaxHeight float32

	// AspectRatio, when positive, locks width/height to this ratio
	// regardless of the modifier key.
	AspectRatio float32
}

func (l Limits) minW() float32 { return defaultIfZero(l.MinWidth, DefaultMinSize) }
func (l Limits) maxW() float32 { return defaultIfZero(l.MaxWidth, DefaultMaxSize) }
func (l Limits) minH() float32 { return defaultIfZero(l.MinHeight, DefaultMinSize) }
func (l Limits) maxH() float32 { return defaultIfZero(l.MaxHeight, DefaultMaxSize) }

func defaultIfZero(v, def float32) float32 {
	if v <= 0 {
		return def
	}
	return v
}

// Result is the final geometry emitted when a resize ends: the new
// top-left position and size in document space.
type Result struct {
	ElementID string
	Position  math32.Vector2
	Size      math32.Vector2
}

// Resizer is the resize interaction state machine. The zero value is
// an idle resizer.
type Resizer struct {
	active       bool
	elementID    string
	handle       Handle
	startBounds  math32.Box2
	startPointer math32.Vector2
	limits       Limits

	// current is the latest constrained bounds, recomputed on every
	// pointer move; transient and presentation-only until release.
	current math32.Box2
}

// Active returns whether a resize interaction is in progress.
func (r *Resizer) Active() bool {
	return r.active
}

// ElementID returns the id of the element being resized, or empty when
// idle.
func (r *Resizer) ElementID() string {
	if !r.active {
		return ""
	}
	return r.elementID
}

// Start begins a resize of the element with the given document-space
// bounds from the given handle and pointer position. It fails with
// [ErrActive] if a resize is already in progress.
func (r *Resizer) Start(elementID string, h Handle, bounds math32.Box2, pointer math32.Vector2, limits Limits) error {
	if r.active {
		return ErrActive
	}
	r.active = true
	r.elementID = elementID
	r.handle = h
	r.startBounds = bounds.Canon()
	r.startPointer = pointer
	r.limits = limits
	r.current = r.startBounds
	return nil
}

// Move updates the in-progress resize with a new document-space
// pointer position and returns the constrained transient bounds for
// the presentation layer to preview. aspectLock engages the aspect
// constraint, as does a fixed element ratio in the limits.
func (r *Resizer) Move(pointer math32.Vector2, aspectLock bool) math32.Box2 {
	if !r.active {
		return math32.B2Empty()
	}
	delta := pointer.Sub(r.startPointer)
	r.current = r.project(delta, aspectLock)
	return r.current
}

// Release ends the resize at the given pointer position and emits the
// final size/position once, for the caller to apply as a single tree
// update. It returns false if no resize was active.
func (r *Resizer) Release(pointer math32.Vector2, aspectLock bool) (Result, bool) {
	if !r.active {
		return Result{}, false
	}
	final := r.Move(pointer, aspectLock)
	res := Result{
		ElementID: r.elementID,
		Position:  final.Min,
		Size:      final.Size(),
	}
	r.reset()
	return res, true
}

// Cancel aborts the in-progress resize, discarding the transient
// delta. The element is left exactly as it was before the interaction
// began; the caller drops the matching undo checkpoint.
func (r *Resizer) Cancel() {
	r.reset()
}

func (r *Resizer) reset() {
	*r = Resizer{}
}

// project converts the raw pointer delta into constrained bounds,
// applying in order: the handle's projection rule, the min/max clamp,
// the aspect lock, and the anchor-derived position from the final
// constrained dimensions so the anchored edge never drifts.
func (r *Resizer) project(delta math32.Vector2, aspectLock bool) math32.Box2 {
	start := r.startBounds
	w := start.Size().X
	h := start.Size().Y

	// Raw projection: each handle maps (dx, dy) onto the edges it owns.
	switch {
	case r.handle.TouchesRight():
		w += delta.X
	case r.handle.TouchesLeft():
		w -= delta.X
	}
	switch {
	case r.handle.TouchesBottom():
		h += delta.Y
	case r.handle.TouchesTop():
		h -= delta.Y
	}
	w = math32.Finite(w, start.Size().X)
	h = math32.Finite(h, start.Size().Y)

	// Constraint 1: clamp each axis independently.
	w = math32.Clamp(w, r.limits.minW(), r.limits.maxW())
	h = math32.Clamp(h, r.limits.minH(), r.limits.maxH())

	// Constraint 2: aspect lock recomputes the secondary axis from the
	// primary. The primary axis is the one whose unconstrained ratio
	// exceeds the target, so the box always grows to satisfy the lock.
	ratio := r.limits.AspectRatio
	if ratio <= 0 && aspectLock {
		if sh := start.Size().Y; sh > 0 {
			ratio = start.Size().X / sh
		}
	}
	if (aspectLock || r.limits.AspectRatio > 0) && ratio > 0 && h > 0 {
		if w/h > ratio {
			h = w / ratio
		} else {
			w = h * ratio
		}
		w = math32.Clamp(w, r.limits.minW(), r.limits.maxW())
		h = math32.Clamp(h, r.limits.minH(), r.limits.maxH())
	}

	// Constraint 3: re-derive the position from the final dimensions so
	// the opposite (anchor) edge stays fixed in document space.
	pos := start.Min
	if r.handle.TouchesLeft() {
		pos.X = start.Max.X - w
	}
	if r.handle.TouchesTop() {
		pos.Y = start.Max.Y - h
	}
	return math32.B2FromPosSize(pos, math32.Vec2(w, h))
}
