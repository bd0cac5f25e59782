// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

// SizeMode is how one axis of an element's size is determined.
type SizeMode int32

const (
	// Fixed uses the dimension's Value as an exact document-unit size.
	Fixed SizeMode = iota

	// Auto defers the axis to the flow engine.
	Auto

	// FillParent occupies the available space on the axis.
	FillParent

	// HugContent sizes the axis to its content.
	HugContent
)

var sizeModeNames = map[SizeMode]string{
	Fixed:      "fixed",
	Auto:       "auto",
	FillParent: "fill-parent",
	HugContent: "hug-content",
}

var sizeModeValues = enumValues(sizeModeNames)

func (m SizeMode) String() string { return sizeModeNames[m] }

func (m SizeMode) MarshalText() ([]byte, error) {
	return marshalEnum(m, sizeModeNames, "size mode")
}

func (m *SizeMode) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, sizeModeValues, m, "size mode")
}

// Dimension is one axis of an element's size: a mode plus a value
// that is meaningful only for [Fixed].
type Dimension struct {
	Mode  SizeMode `json:"mode"`
	Value float32  `json:"value,omitempty"`
}

// Px returns a [Fixed] dimension with the given document-unit value.
func Px(v float32) Dimension {
	return Dimension{Mode: Fixed, Value: v}
}

// Size is the sizing specification for an element: width and height
// dimensions, optional min/max bounds, and an optional aspect ratio.
// Zero min/max/ratio values mean unset.
type Size struct {
	Width  Dimension `json:"width"`
	Height Dimension `json:"height"`

	MinWidth  float32 `json:"minWidth,omitempty"`
	MaxWidth  float32 `json:"maxWidth,omitempty"`
	MinHeight float32 `json:"minHeight,omitempty"`
	MaxHeight float32 `json:"maxHeight,omitempty"`

	// AspectRatio is width / height. When set, one axis is derived
	// from the other after size mode resolution.
	AspectRatio float32 `json:"aspectRatio,omitempty"`
}

// SizeOverride is a partial [Size]: nil fields leave the base value
// untouched when the override is applied.
type SizeOverride struct {
	Width       *Dimension `json:"width,omitempty"`
	Height      *Dimension `json:"height,omitempty"`
	MinWidth    *float32   `json:"minWidth,omitempty"`
	MaxWidth    *float32   `json:"maxWidth,omitempty"`
	MinHeight   *float32   `json:"minHeight,omitempty"`
	MaxHeight   *float32   `json:"maxHeight,omitempty"`
	AspectRatio *float32   `json:"aspectRatio,omitempty"`
}

// ApplyTo merges the non-nil fields of the override into the given size.
func (o *SizeOverride) ApplyTo(s *Size) {
	if o == nil {
		return
	}
	setIf(&s.Width, o.Width)
	setIf(&s.Height, o.Height)
	setIf(&s.MinWidth, o.MinWidth)
	setIf(&s.MaxWidth, o.MaxWidth)
	setIf(&s.MinHeight, o.MinHeight)
	setIf(&s.MaxHeight, o.MaxHeight)
	setIf(&s.AspectRatio, o.AspectRatio)
}
