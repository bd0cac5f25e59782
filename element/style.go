// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import "stencilui.org/stencil/sides"

// BackgroundKind is the kind of background fill an element has.
type BackgroundKind int32

const (
	// BackgroundNone is a transparent background.
	BackgroundNone BackgroundKind = iota

	// BackgroundSolid is a flat color fill.
	BackgroundSolid

	// BackgroundGradient is a gradient fill.
	BackgroundGradient

	// BackgroundImage is an image fill.
	BackgroundImage
)

var backgroundKindNames = map[BackgroundKind]string{
	BackgroundNone:     "none",
	BackgroundSolid:    "solid",
	BackgroundGradient: "gradient",
	BackgroundImage:    "image",
}

var backgroundKindValues = enumValues(backgroundKindNames)

func (k BackgroundKind) String() string { return backgroundKindNames[k] }

func (k BackgroundKind) MarshalText() ([]byte, error) {
	return marshalEnum(k, backgroundKindNames, "background kind")
}

func (k *BackgroundKind) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, backgroundKindValues, k, "background kind")
}

// GradientStop is one color stop in a gradient, at a normalized
// position in [0, 1].
type GradientStop struct {
	Color    string  `json:"color"`
	Position float32 `json:"position"`
}

// Gradient is a linear or radial gradient fill.
type Gradient struct {

	// Radial selects a radial gradient; otherwise the gradient is linear.
	Radial bool `json:"radial,omitempty"`

	// Angle is the direction of a linear gradient in degrees,
	// 0 pointing up, increasing clockwise.
	Angle float32 `json:"angle,omitempty"`

	// Stops is the ordered list of color stops.
	Stops []GradientStop `json:"stops"`
}

// ImageFill is an image background fill.
type ImageFill struct {
	Source string `json:"source"`

	// Size is the image sizing mode: cover, contain, or auto.
	Size string `json:"size,omitempty"`

	// Position is the image placement, such as "center" or "top left".
	Position string `json:"position,omitempty"`

	// Repeat is the tiling mode: no-repeat, repeat, repeat-x, repeat-y.
	Repeat string `json:"repeat,omitempty"`
}

// Background is the background specification of an element. Exactly one
// of the payload fields corresponding to Kind is meaningful.
type Background struct {
	Kind     BackgroundKind `json:"kind"`
	Color    string         `json:"color,omitempty"`
	Gradient *Gradient      `json:"gradient,omitempty"`
	Image    *ImageFill     `json:"image,omitempty"`
}

// BorderStyle determines how a border edge is drawn.
type BorderStyle int32

const (
	// BorderNone renders no border on the edge.
	BorderNone BorderStyle = iota

	// BorderSolid renders a solid border.
	BorderSolid

	// BorderDashed renders a dashed border.
	BorderDashed

	// BorderDotted renders a dotted border.
	BorderDotted
)

var borderStyleNames = map[BorderStyle]string{
	BorderNone:   "none",
	BorderSolid:  "solid",
	BorderDashed: "dashed",
	BorderDotted: "dotted",
}

var borderStyleValues = enumValues(borderStyleNames)

func (s BorderStyle) String() string { return borderStyleNames[s] }

func (s BorderStyle) MarshalText() ([]byte, error) {
	return marshalEnum(s, borderStyleNames, "border style")
}

func (s *BorderStyle) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, borderStyleValues, s, "border style")
}

// Border contains the border parameters for an element, uniform or
// per-edge via [sides.Sides].
type Border struct {

	// Style specifies how to draw each border edge.
	Style sides.Sides[BorderStyle] `json:"style"`

	// Width specifies the width of each border edge, in document units.
	Width sides.Floats `json:"width"`

	// Color specifies the color of each border edge.
	Color sides.Sides[string] `json:"color"`
}

// Shadow is one drop or inner shadow on an element.
type Shadow struct {

	// OffsetX is the horizontal shadow offset; positive moves it right.
	OffsetX float32 `json:"offsetX"`

	// OffsetY is the vertical shadow offset; positive moves it down.
	OffsetY float32 `json:"offsetY"`

	// Blur is the shadow blur radius.
	Blur float32 `json:"blur"`

	// Spread grows (positive) or shrinks (negative) the shadow.
	Spread float32 `json:"spread"`

	// Color is the shadow color.
	Color string `json:"color"`

	// Inner renders the shadow inside the box instead of outside.
	Inner bool `json:"inner,omitempty"`
}

// Typography contains the text styling parameters for an element.
// Zero values mean unset and are defaulted by the style compositor
// for textual element types.
type Typography struct {
	FontFamily    string  `json:"fontFamily,omitempty"`
	FontSize      float32 `json:"fontSize,omitempty"`
	FontWeight    int     `json:"fontWeight,omitempty"`
	LineHeight    float32 `json:"lineHeight,omitempty"`
	LetterSpacing float32 `json:"letterSpacing,omitempty"`
	Align         Align   `json:"align,omitempty"`
	Color         string  `json:"color,omitempty"`
}

// Overflow determines how an element handles overflowing content.
type Overflow int32

const (
	// OverflowVisible lets content overflow the element's bounds.
	OverflowVisible Overflow = iota

	// OverflowHidden clips content to the element's bounds.
	OverflowHidden

	// OverflowScroll clips content and allows scrolling.
	OverflowScroll
)

var overflowNames = map[Overflow]string{
	OverflowVisible: "visible",
	OverflowHidden:  "hidden",
	OverflowScroll:  "scroll",
}

var overflowValues = enumValues(overflowNames)

func (o Overflow) String() string { return overflowNames[o] }

func (o Overflow) MarshalText() ([]byte, error) {
	return marshalEnum(o, overflowNames, "overflow")
}

func (o *Overflow) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, overflowValues, o, "overflow")
}

// Transition is one animated property transition on an element.
type Transition struct {
	Property string  `json:"property"`
	Duration float32 `json:"duration"` // milliseconds
	Easing   string  `json:"easing,omitempty"`
}

// Style contains the visual styling of an element. Spacing and radius
// use [sides.Floats], which expand a single value to all four
// edges/corners per the CSS shorthand convention.
type Style struct {
	Background Background `json:"background"`

	Border Border `json:"border"`

	// Radius is the corner radius in top-left, top-right, bottom-right,
	// bottom-left order.
	Radius sides.Floats `json:"radius"`

	// Shadows is the ordered shadow list, outermost first.
	Shadows []Shadow `json:"shadows,omitempty"`

	Text Typography `json:"text"`

	// Opacity is in [0, 1]; elements default to 1.
	Opacity float32 `json:"opacity"`

	// Blur is a backdrop blur radius.
	Blur float32 `json:"blur,omitempty"`

	// Padding and Margin are in top, right, bottom, left order.
	Padding sides.Floats `json:"padding"`
	Margin  sides.Floats `json:"margin"`

	Overflow Overflow `json:"overflow"`

	Transitions []Transition `json:"transitions,omitempty"`

	// Color and BackgroundColor are legacy flat shorthands still present
	// in older documents. The style compositor folds them into the
	// structured Text.Color and Background fields; they are never
	// silently dropped.
	Color           string `json:"color,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
}

// StyleOverride is a partial [Style]. Each non-nil field replaces the
// corresponding base field wholly: style merging is one level deep,
// never arbitrarily recursive.
type StyleOverride struct {
	Background      *Background   `json:"background,omitempty"`
	Border          *Border       `json:"border,omitempty"`
	Radius          *sides.Floats `json:"radius,omitempty"`
	Shadows         *[]Shadow     `json:"shadows,omitempty"`
	Text            *Typography   `json:"text,omitempty"`
	Opacity         *float32      `json:"opacity,omitempty"`
	Blur            *float32      `json:"blur,omitempty"`
	Padding         *sides.Floats `json:"padding,omitempty"`
	Margin          *sides.Floats `json:"margin,omitempty"`
	Overflow        *Overflow     `json:"overflow,omitempty"`
	Transitions     *[]Transition `json:"transitions,omitempty"`
	Color           *string       `json:"color,omitempty"`
	BackgroundColor *string       `json:"backgroundColor,omitempty"`
}

// ApplyTo merges the non-nil fields of the override into the given style,
// replacing each present field wholly.
func (o *StyleOverride) ApplyTo(s *Style) {
	if o == nil {
		return
	}
	setIf(&s.Background, o.Background)
	setIf(&s.Border, o.Border)
	setIf(&s.Radius, o.Radius)
	if o.Shadows != nil {
		s.Shadows = append([]Shadow(nil), (*o.Shadows)...)
	}
	setIf(&s.Text, o.Text)
	setIf(&s.Opacity, o.Opacity)
	setIf(&s.Blur, o.Blur)
	setIf(&s.Padding, o.Padding)
	setIf(&s.Margin, o.Margin)
	setIf(&s.Overflow, o.Overflow)
	if o.Transitions != nil {
		s.Transitions = append([]Transition(nil), (*o.Transitions)...)
	}
	setIf(&s.Color, o.Color)
	setIf(&s.BackgroundColor, o.BackgroundColor)
}
