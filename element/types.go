// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import "fmt"

// Type is the closed set of element kinds that can appear in a scene graph.
// Every value used in a page must be one of the constants below; there is
// no open-ended string dispatch.
type Type int32

const (
	// Frame is a generic container element.
	Frame Type = iota

	// TextType is a text run element.
	TextType

	// ImageType is a raster or vector image element.
	ImageType

	// VideoType is a video element.
	VideoType

	// ComponentInstance is an instance of a reusable component.
	ComponentInstance

	// Slot is a placeholder inside a component for instance content.
	Slot

	// FormType is a form container element.
	FormType

	// InputType is a form input field element.
	InputType

	// ButtonType is a button element.
	ButtonType

	// LinkType is a hyperlink element.
	LinkType

	// IconType is an icon element.
	IconType

	// Divider is a horizontal or vertical rule element.
	Divider

	// EmbedType is an embedded external document element.
	EmbedType

	// CodeType is a code block element.
	CodeType

	// RawMarkup is a raw HTML markup element.
	RawMarkup
)

// TypeN is the number of valid [Type] values.
const TypeN = RawMarkup + 1

var typeNames = map[Type]string{
	Frame:             "frame",
	TextType:          "text",
	ImageType:         "image",
	VideoType:         "video",
	ComponentInstance: "component-instance",
	Slot:              "slot",
	FormType:          "form",
	InputType:         "input",
	ButtonType:        "button",
	LinkType:          "link",
	IconType:          "icon",
	Divider:           "divider",
	EmbedType:         "embed",
	CodeType:          "code",
	RawMarkup:         "raw-markup",
}

var typeValues = func() map[string]Type {
	m := make(map[string]Type, len(typeNames))
	for t, n := range typeNames {
		m[n] = t
	}
	return m
}()

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("Type(%d)", int32(t))
}

// IsValid returns whether t is one of the defined element types.
func (t Type) IsValid() bool {
	return t >= 0 && t < TypeN
}

// IsContainer returns whether elements of this type are pure containers
// carrying no content payload of their own.
func (t Type) IsContainer() bool {
	switch t {
	case Frame, FormType, Slot, Divider:
		return true
	}
	return false
}

// IsTextual returns whether elements of this type render text and thus
// receive typography defaults from the style compositor.
func (t Type) IsTextual() bool {
	switch t {
	case TextType, ButtonType, LinkType:
		return true
	}
	return false
}

// MarshalText implements [encoding.TextMarshaler].
func (t Type) MarshalText() ([]byte, error) {
	n, ok := typeNames[t]
	if !ok {
		return nil, fmt.Errorf("element: invalid type %d", int32(t))
	}
	return []byte(n), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *Type) UnmarshalText(text []byte) error {
	v, ok := typeValues[string(text)]
	if !ok {
		return fmt.Errorf("element: unknown type %q", string(text))
	}
	*t = v
	return nil
}
