// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

// Breakpoint is a viewport class. The classes are totally ordered:
// Mobile < Tablet < Desktop < Wide.
type Breakpoint int32

const (
	// Mobile is the narrowest viewport class.
	Mobile Breakpoint = iota

	// Tablet is a mid-width viewport class.
	Tablet

	// Desktop is the standard viewport class.
	Desktop

	// Wide is the widest viewport class.
	Wide
)

var breakpointNames = map[Breakpoint]string{
	Mobile:  "mobile",
	Tablet:  "tablet",
	Desktop: "desktop",
	Wide:    "wide",
}

var breakpointValues = enumValues(breakpointNames)

func (b Breakpoint) String() string { return breakpointNames[b] }

// IsValid returns whether b is one of the defined viewport classes.
func (b Breakpoint) IsValid() bool {
	return b >= Mobile && b <= Wide
}

func (b Breakpoint) MarshalText() ([]byte, error) {
	return marshalEnum(b, breakpointNames, "breakpoint")
}

func (b *Breakpoint) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, breakpointValues, b, "breakpoint")
}

// Override is the partial per-breakpoint configuration override of an
// element. Each section merges independently into the base; Hidden is
// a plain override.
type Override struct {
	Layout   *LayoutOverride   `json:"layout,omitempty"`
	Position *PositionOverride `json:"position,omitempty"`
	Size     *SizeOverride     `json:"size,omitempty"`
	Style    *StyleOverride    `json:"style,omitempty"`
	Hidden   *bool             `json:"hidden,omitempty"`
}

// IsZero returns whether the override changes nothing.
func (o Override) IsZero() bool {
	return o.Layout == nil && o.Position == nil && o.Size == nil &&
		o.Style == nil && o.Hidden == nil
}

// Config is the effective configuration of an element for one viewport
// class: the base configuration with the active class's override applied.
type Config struct {
	Type     Type
	Layout   Layout
	Position Position
	Size     Size
	Style    Style
	Hidden   bool
}

// Effective resolves the element's configuration for the given active
// viewport class.
//
// Resolution is deliberately non-cascading: only the override for the
// exact active class applies. An override defined for Tablet has no
// effect while viewing Desktop, even if no Desktop override exists.
// Fields omitted from an override leave the base value untouched; the
// layout, position, size, and style sections each merge independently.
func (e *Element) Effective(active Breakpoint) Config {
	cfg := Config{
		Type:     e.Type,
		Layout:   e.Layout,
		Position: e.Position.clone(),
		Size:     e.Size,
		Style:    e.Style.clone(),
		Hidden:   e.Hidden,
	}
	ov, ok := e.BreakpointOverrides[active]
	if !ok {
		return cfg
	}
	ov.Layout.ApplyTo(&cfg.Layout)
	ov.Position.ApplyTo(&cfg.Position)
	ov.Size.ApplyTo(&cfg.Size)
	ov.Style.ApplyTo(&cfg.Style)
	if ov.Hidden != nil {
		cfg.Hidden = *ov.Hidden
	}
	return cfg
}

// clone returns a copy of the position with its own offset pointers, so
// mutating an effective config never writes through to the base element.
func (p Position) clone() Position {
	c := p
	c.Left = clonePtr(p.Left)
	c.Top = clonePtr(p.Top)
	c.Right = clonePtr(p.Right)
	c.Bottom = clonePtr(p.Bottom)
	return c
}

// clone returns a copy of the style with its own slice backing arrays.
func (s Style) clone() Style {
	c := s
	if s.Shadows != nil {
		c.Shadows = append([]Shadow(nil), s.Shadows...)
	}
	if s.Transitions != nil {
		c.Transitions = append([]Transition(nil), s.Transitions...)
	}
	return c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
