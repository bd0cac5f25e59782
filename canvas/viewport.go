// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package canvas owns the pan/zoom transform of the editing surface and
// all conversions between screen space and document space. The viewport
// transform is the single source of truth for coordinate conversion;
// no other component writes to it.
package canvas

import (
	"time"

	"stencilui.org/stencil/math32"
)

// Scale and interaction constants. These are the compiled defaults;
// [Viewport] fields can override them per instance.
const (
	// ScaleMin is the lowest allowed zoom scale.
	ScaleMin = 0.1

	// ScaleMax is the highest allowed zoom scale.
	ScaleMax = 4

	// ZoomStep is the multiplicative step for the zoom in/out actions.
	ZoomStep = 1.25

	// FitMargin is the screen-pixel margin left around content by
	// fit-to-content.
	FitMargin = 64

	// ZoomAnimationDuration is how long button zooms animate.
	ZoomAnimationDuration = 200 * time.Millisecond
)

// Transform is the viewport's pan/zoom state. A document point d maps
// to screen space as d*Scale + Translate, and back as
// (s - Translate) / Scale.
type Transform struct {
	TranslateX float32 `json:"translateX"`
	TranslateY float32 `json:"translateY"`
	Scale      float32 `json:"scale"`
}

// Identity returns the identity transform at 100% zoom.
func Identity() Transform {
	return Transform{Scale: 1}
}

// ScreenToDocument converts a screen-space point to document space.
func (t Transform) ScreenToDocument(p math32.Vector2) math32.Vector2 {
	return math32.Vec2((p.X-t.TranslateX)/t.Scale, (p.Y-t.TranslateY)/t.Scale)
}

// DocumentToScreen converts a document-space point to screen space.
func (t Transform) DocumentToScreen(p math32.Vector2) math32.Vector2 {
	return math32.Vec2(p.X*t.Scale+t.TranslateX, p.Y*t.Scale+t.TranslateY)
}

// DocumentToScreenBox projects a document-space box to screen space.
func (t Transform) DocumentToScreenBox(b math32.Box2) math32.Box2 {
	return math32.Box2{
		Min: t.DocumentToScreen(b.Min),
		Max: t.DocumentToScreen(b.Max),
	}
}

// ScreenToDocumentBox projects a screen-space box to document space.
func (t Transform) ScreenToDocumentBox(b math32.Box2) math32.Box2 {
	return math32.Box2{
		Min: t.ScreenToDocument(b.Min),
		Max: t.ScreenToDocument(b.Max),
	}
}

// Tool is the active canvas interaction tool.
type Tool int32

const (
	// ToolSelect is the default tool: pointer-down on empty canvas
	// starts a marquee; pointer-down on an element selects or drags it.
	ToolSelect Tool = iota

	// ToolPan pans the transform on pointer-down anywhere.
	ToolPan
)

func (t Tool) String() string {
	if t == ToolPan {
		return "pan"
	}
	return "select"
}

// Viewport owns the transform and the active tool for one editing
// surface. Zero limits fall back to the package constants.
type Viewport struct {

	// Transform is the current pan/zoom state.
	Transform Transform

	// Size is the viewport size in screen pixels.
	Size math32.Vector2

	// Tool is the active interaction tool.
	Tool Tool

	// MinScale and MaxScale clamp the zoom scale; zero means the
	// package defaults.
	MinScale float32
	MaxScale float32

	// Step is the multiplicative zoom step; zero means [ZoomStep].
	Step float32

	// Margin is the fit-to-content screen margin; zero means
	// [FitMargin].
	Margin float32

	// GridCell is the document-unit grid cell size; zero means
	// [GridCellSize].
	GridCell float32

	// tempPan is whether the temporary-pan modifier key is held,
	// switching the select tool to pan for the duration.
	tempPan bool
}

// NewViewport returns a viewport of the given screen size at 100% zoom
// with the select tool active.
func NewViewport(width, height float32) *Viewport {
	return &Viewport{
		Transform: Identity(),
		Size:      math32.Vec2(width, height),
	}
}

func (v *Viewport) minScale() float32 {
	if v.MinScale > 0 {
		return v.MinScale
	}
	return ScaleMin
}

func (v *Viewport) maxScale() float32 {
	if v.MaxScale > 0 {
		return v.MaxScale
	}
	return ScaleMax
}

func (v *Viewport) step() float32 {
	if v.Step > 1 {
		return v.Step
	}
	return ZoomStep
}

func (v *Viewport) margin() float32 {
	if v.Margin > 0 {
		return v.Margin
	}
	return FitMargin
}

func (v *Viewport) gridCell() float32 {
	if v.GridCell > 0 {
		return v.GridCell
	}
	return GridCellSize
}

// ClampScale clamps a scale to the viewport's allowed range, guarding
// against degenerate values.
func (v *Viewport) ClampScale(s float32) float32 {
	return math32.Clamp(math32.Finite(s, 1), v.minScale(), v.maxScale())
}

// SetTemporaryPan sets whether the temporary-pan modifier is held.
func (v *Viewport) SetTemporaryPan(held bool) {
	v.tempPan = held
}

// EffectiveTool returns the tool in effect, accounting for the
// temporary-pan modifier.
func (v *Viewport) EffectiveTool() Tool {
	if v.tempPan {
		return ToolPan
	}
	return v.Tool
}

// Pan translates the viewport by the given screen-space delta.
func (v *Viewport) Pan(delta math32.Vector2) {
	v.Transform.TranslateX += delta.X
	v.Transform.TranslateY += delta.Y
}

// ZoomAt rescales around the given screen-space point so that the
// document point under it stays put.
func (v *Viewport) ZoomAt(screenPoint math32.Vector2, newScale float32) {
	newScale = v.ClampScale(newScale)
	doc := v.Transform.ScreenToDocument(screenPoint)
	v.Transform.Scale = newScale
	v.Transform.TranslateX = screenPoint.X - doc.X*newScale
	v.Transform.TranslateY = screenPoint.Y - doc.Y*newScale
}

// ZoomIn multiplies the scale by the zoom step, re-centered on the
// viewport center.
func (v *Viewport) ZoomIn() {
	v.ZoomAt(v.Center(), v.Transform.Scale*v.step())
}

// ZoomOut divides the scale by the zoom step, re-centered on the
// viewport center.
func (v *Viewport) ZoomOut() {
	v.ZoomAt(v.Center(), v.Transform.Scale/v.step())
}

// ZoomReset restores 100% zoom, re-centered on the viewport center.
func (v *Viewport) ZoomReset() {
	v.ZoomAt(v.Center(), 1)
}

// Wheel applies a wheel/trackpad zoom gesture at the given screen
// position; gestures always zoom regardless of the active tool.
// A positive delta zooms in.
func (v *Viewport) Wheel(screenPoint math32.Vector2, delta float32) {
	factor := float32(1) + delta*0.01
	if factor <= 0 {
		factor = 0.01
	}
	v.ZoomAt(screenPoint, v.Transform.Scale*factor)
}

// Center returns the screen-space center of the viewport.
func (v *Viewport) Center() math32.Vector2 {
	return v.Size.MulScalar(0.5)
}

// FitToContent zooms and pans so that the given document-space content
// box is centered in the viewport with the fit margin around it, never
// upscaling past 100%.
func (v *Viewport) FitToContent(content math32.Box2) {
	if content.IsEmpty() {
		v.Transform = Identity()
		return
	}
	size := content.Size()
	sw := (v.Size.X - v.margin()) / math32.Max(size.X, 1)
	sh := (v.Size.Y - v.margin()) / math32.Max(size.Y, 1)
	scale := v.ClampScale(math32.Min(math32.Min(sw, sh), 1))
	center := content.Center()
	v.Transform.Scale = scale
	v.Transform.TranslateX = v.Size.X/2 - center.X*scale
	v.Transform.TranslateY = v.Size.Y/2 - center.Y*scale
}
