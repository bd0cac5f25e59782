// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render maps an element's effective configuration into
// concrete renderable values for the presentation layer. The compositor
// is a pure function: it never touches the page or the viewport, and
// geometry edge cases are clamped, never propagated as errors.
package render

import (
	"stencilui.org/stencil/element"
	"stencilui.org/stencil/sides"
)

// SizeKind is the resolved meaning of one size axis.
type SizeKind int32

const (
	// SizeFixed is an exact document-unit size in Value.
	SizeFixed SizeKind = iota

	// SizeAuto defers the axis to the flow engine.
	SizeAuto

	// SizeFill occupies the available space on the axis.
	SizeFill

	// SizeHug sizes the axis to its content.
	SizeHug
)

// SizeValue is one resolved size axis.
type SizeValue struct {
	Kind  SizeKind
	Value float32
}

// FillKind is the resolved background fill kind.
type FillKind int32

const (
	// FillNone is a transparent background.
	FillNone FillKind = iota

	// FillSolid is a flat color fill.
	FillSolid

	// FillGradient is a gradient fill.
	FillGradient

	// FillImage is an image fill.
	FillImage
)

// Fill is the resolved background of an element.
type Fill struct {
	Kind     FillKind
	Color    string
	Gradient *element.Gradient
	Image    *element.ImageFill
}

// BorderProps is the resolved per-edge border.
type BorderProps struct {
	Style sides.Sides[element.BorderStyle]
	Width sides.Floats
	Color sides.Sides[string]
}

// Props are the concrete renderable values for one element: everything
// the presentation layer needs to draw it, with all shorthands
// expanded, all modes resolved, and all defaults applied.
type Props struct {
	Width  SizeValue
	Height SizeValue

	MinWidth  float32
	MaxWidth  float32
	MinHeight float32
	MaxHeight float32

	// AspectRatio is width / height; 0 means unconstrained.
	AspectRatio float32

	// Padding and Margin are per-edge in top, right, bottom, left order.
	Padding sides.Floats
	Margin  sides.Floats

	// Radius is per-corner in top-left, top-right, bottom-right,
	// bottom-left order.
	Radius sides.Floats

	Background Fill
	Border     BorderProps
	Shadows    []element.Shadow

	Text element.Typography

	Opacity float32
	Blur    float32

	Overflow    element.Overflow
	Transitions []element.Transition

	// Hidden elements produce no output; carried so the presentation
	// layer can skip them without consulting the element again.
	Hidden bool
}
