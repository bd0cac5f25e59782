// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

// PositionMode is how an element is placed relative to its parent.
type PositionMode int32

const (
	// Flow places the element in the parent's normal layout flow.
	Flow PositionMode = iota

	// Absolute places the element at fixed offsets within its parent.
	Absolute

	// FixedPosition places the element at fixed offsets within the
	// page viewport.
	FixedPosition

	// Sticky places the element in flow until it reaches its offsets,
	// then pins it.
	Sticky
)

var positionModeNames = map[PositionMode]string{
	Flow:          "flow",
	Absolute:      "absolute",
	FixedPosition: "fixed",
	Sticky:        "sticky",
}

var positionModeValues = enumValues(positionModeNames)

func (m PositionMode) String() string { return positionModeNames[m] }

func (m PositionMode) MarshalText() ([]byte, error) {
	return marshalEnum(m, positionModeNames, "position mode")
}

func (m *PositionMode) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, positionModeValues, m, "position mode")
}

// Anchor describes how one axis of an element responds when its
// parent resizes.
type Anchor int32

const (
	// AnchorStart pins the element to the left or top edge.
	AnchorStart Anchor = iota

	// AnchorEnd pins the element to the right or bottom edge.
	AnchorEnd

	// AnchorCenter keeps the element centered on the axis.
	AnchorCenter

	// AnchorScale scales the element's offset and size proportionally
	// with the parent.
	AnchorScale
)

var anchorNames = map[Anchor]string{
	AnchorStart:  "start",
	AnchorEnd:    "end",
	AnchorCenter: "center",
	AnchorScale:  "scale",
}

var anchorValues = enumValues(anchorNames)

func (a Anchor) String() string { return anchorNames[a] }

func (a Anchor) MarshalText() ([]byte, error) {
	return marshalEnum(a, anchorNames, "anchor")
}

func (a *Anchor) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, anchorValues, a, "anchor")
}

// Constraints are the per-axis resize anchors for an element.
type Constraints struct {
	Horizontal Anchor `json:"horizontal"`
	Vertical   Anchor `json:"vertical"`
}

// Position is the placement of an element: its mode, optional edge
// offsets, stacking order, and resize constraints.
type Position struct {

	// Mode is the placement mode.
	Mode PositionMode `json:"mode"`

	// Left, Top, Right, and Bottom are optional offsets from the
	// corresponding parent edge, in document units. Nil means unset.
	Left   *float32 `json:"left,omitempty"`
	Top    *float32 `json:"top,omitempty"`
	Right  *float32 `json:"right,omitempty"`
	Bottom *float32 `json:"bottom,omitempty"`

	// ZIndex is the stacking order among positioned siblings.
	ZIndex int `json:"zIndex,omitempty"`

	// Constraints describe how the element responds when its parent
	// resizes, independently per axis.
	Constraints Constraints `json:"constraints"`
}

// Offset returns the (left, top) offsets, defaulting unset values to 0.
func (p *Position) Offset() (x, y float32) {
	if p.Left != nil {
		x = *p.Left
	}
	if p.Top != nil {
		y = *p.Top
	}
	return x, y
}

// PositionOverride is a partial [Position]: nil fields leave the base
// value untouched when the override is applied.
type PositionOverride struct {
	Mode        *PositionMode `json:"mode,omitempty"`
	Left        *float32      `json:"left,omitempty"`
	Top         *float32      `json:"top,omitempty"`
	Right       *float32      `json:"right,omitempty"`
	Bottom      *float32      `json:"bottom,omitempty"`
	ZIndex      *int          `json:"zIndex,omitempty"`
	Constraints *Constraints  `json:"constraints,omitempty"`
}

// ApplyTo merges the non-nil fields of the override into the given position.
func (o *PositionOverride) ApplyTo(p *Position) {
	if o == nil {
		return
	}
	setIf(&p.Mode, o.Mode)
	if o.Left != nil {
		v := *o.Left
		p.Left = &v
	}
	if o.Top != nil {
		v := *o.Top
		p.Top = &v
	}
	if o.Right != nil {
		v := *o.Right
		p.Right = &v
	}
	if o.Bottom != nil {
		v := *o.Bottom
		p.Bottom = &v
	}
	setIf(&p.ZIndex, o.ZIndex)
	setIf(&p.Constraints, o.Constraints)
}
