// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

// Display controls how an element lays out its children.
type Display int32

const (
	// Block stacks children vertically in normal flow.
	Block Display = iota

	// Flex lays children out along a main axis with flexible sizing.
	Flex

	// Grid lays children out on a template-defined grid.
	Grid

	// DisplayNone removes the element from layout entirely.
	DisplayNone
)

var displayNames = map[Display]string{
	Block:       "block",
	Flex:        "flex",
	Grid:        "grid",
	DisplayNone: "none",
}

var displayValues = enumValues(displayNames)

func (d Display) String() string { return displayNames[d] }

func (d Display) MarshalText() ([]byte, error) {
	return marshalEnum(d, displayNames, "display")
}

func (d *Display) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, displayValues, d, "display")
}

// Direction specifies the main axis for flex layouts.
type Direction int32

const (
	// Row lays children out horizontally.
	Row Direction = iota

	// Column lays children out vertically.
	Column
)

var directionNames = map[Direction]string{
	Row:    "row",
	Column: "column",
}

var directionValues = enumValues(directionNames)

func (d Direction) String() string { return directionNames[d] }

func (d Direction) MarshalText() ([]byte, error) {
	return marshalEnum(d, directionNames, "direction")
}

func (d *Direction) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, directionValues, d, "direction")
}

// Align has the different types of alignment and justification, along the
// main axis (Justify), the cross axis (Align), or for one child within its
// parent (AlignSelf).
type Align int32

const (
	// Start aligns items to the start (top, left) of the layout.
	Start Align = iota

	// Center aligns items centered around the middle of the layout.
	Center

	// End aligns items to the end (bottom, right) of the layout.
	End

	// Stretch stretches items across the available space.
	Stretch

	// SpaceBetween puts the first and last items flush with the edges
	// and equal space between the remaining items.
	SpaceBetween

	// SpaceAround puts half-space at the edges and full space between items.
	SpaceAround
)

var alignNames = map[Align]string{
	Start:        "start",
	Center:       "center",
	End:          "end",
	Stretch:      "stretch",
	SpaceBetween: "space-between",
	SpaceAround:  "space-around",
}

var alignValues = enumValues(alignNames)

func (a Align) String() string { return alignNames[a] }

func (a Align) MarshalText() ([]byte, error) {
	return marshalEnum(a, alignNames, "align")
}

func (a *Align) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, alignValues, a, "align")
}

// Layout is the abstract flow description for an element: how it displays
// its children and how it participates in its own parent's layout.
type Layout struct {

	// Display controls how the element's children are laid out.
	Display Display `json:"display"`

	// Direction is the main axis for Flex display.
	Direction Direction `json:"direction"`

	// Justify is the distribution of children along the main axis.
	Justify Align `json:"justify"`

	// Align is the cross-axis alignment of children.
	Align Align `json:"align"`

	// Wrap causes flex children to wrap onto additional lines.
	Wrap bool `json:"wrap,omitempty"`

	// Gap is the space added between children, in document units.
	Gap float32 `json:"gap,omitempty"`

	// GridTemplateColumns is the grid column template string for Grid display.
	GridTemplateColumns string `json:"gridTemplateColumns,omitempty"`

	// GridTemplateRows is the grid row template string for Grid display.
	GridTemplateRows string `json:"gridTemplateRows,omitempty"`

	// Grow is the proportional amount this element grows within its
	// parent when extra space is available.
	Grow float32 `json:"grow,omitempty"`

	// Shrink is the proportional amount this element shrinks within its
	// parent when space is constrained.
	Shrink float32 `json:"shrink,omitempty"`

	// Basis is the initial main-axis size of this element within a flex
	// parent, in document units. Zero means content-based.
	Basis float32 `json:"basis,omitempty"`

	// AlignSelf overrides the parent's cross-axis alignment for this
	// element alone.
	AlignSelf Align `json:"alignSelf,omitempty"`
}

// LayoutOverride is a partial [Layout]: nil fields leave the base value
// untouched when the override is applied.
type LayoutOverride struct {
	Display             *Display   `json:"display,omitempty"`
	Direction           *Direction `json:"direction,omitempty"`
	Justify             *Align     `json:"justify,omitempty"`
	Align               *Align     `json:"align,omitempty"`
	Wrap                *bool      `json:"wrap,omitempty"`
	Gap                 *float32   `json:"gap,omitempty"`
	GridTemplateColumns *string    `json:"gridTemplateColumns,omitempty"`
	GridTemplateRows    *string    `json:"gridTemplateRows,omitempty"`
	Grow                *float32   `json:"grow,omitempty"`
	Shrink              *float32   `json:"shrink,omitempty"`
	Basis               *float32   `json:"basis,omitempty"`
	AlignSelf           *Align     `json:"alignSelf,omitempty"`
}

// ApplyTo merges the non-nil fields of the override into the given layout.
func (o *LayoutOverride) ApplyTo(l *Layout) {
	if o == nil {
		return
	}
	setIf(&l.Display, o.Display)
	setIf(&l.Direction, o.Direction)
	setIf(&l.Justify, o.Justify)
	setIf(&l.Align, o.Align)
	setIf(&l.Wrap, o.Wrap)
	setIf(&l.Gap, o.Gap)
	setIf(&l.GridTemplateColumns, o.GridTemplateColumns)
	setIf(&l.GridTemplateRows, o.GridTemplateRows)
	setIf(&l.Grow, o.Grow)
	setIf(&l.Shrink, o.Shrink)
	setIf(&l.Basis, o.Basis)
	setIf(&l.AlignSelf, o.AlignSelf)
}

// setIf assigns *src to *dst when src is non-nil.
func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
