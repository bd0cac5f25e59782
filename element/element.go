// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package element defines the scene-graph node model for the page
// builder: the element data structure, its closed type and content
// variant sets, and per-breakpoint configuration resolution.
//
// Elements reference each other only by id into the page's flat element
// map, never by direct pointer, so a tree snapshot is a map copy and
// reference cycles cannot cause unbounded retention.
package element

import "github.com/google/uuid"

// Interaction is one (trigger, action, animation) tuple carried on an
// element. The engine stores interactions but does not interpret them.
type Interaction struct {
	Trigger   string     `json:"trigger"`
	Action    string     `json:"action"`
	Animation *Animation `json:"animation,omitempty"`
}

// Animation is the optional animation attached to an interaction.
type Animation struct {
	Name     string  `json:"name"`
	Duration float32 `json:"duration,omitempty"` // milliseconds
	Easing   string  `json:"easing,omitempty"`
}

// Element is a node in the scene graph. Structure is expressed through
// ParentID and Children id lists only; the page's element map owns
// every node.
type Element struct {

	// ID is the unique identifier, stable for the node's lifetime.
	ID string `json:"id"`

	// Type is the element kind, from the closed [Type] set.
	Type Type `json:"type"`

	// Name is an optional human-readable label shown in layer lists.
	Name string `json:"name,omitempty"`

	// Layout is the abstract flow description.
	Layout Layout `json:"layout"`

	// Position is the placement mode, offsets, stacking order, and
	// resize constraints.
	Position Position `json:"position"`

	// Size is the width/height specification with bounds and
	// aspect ratio.
	Size Size `json:"size"`

	// Style is the visual styling.
	Style Style `json:"style"`

	// Content is the type-tagged payload, nil for pure containers.
	Content *Content `json:"content,omitempty"`

	// ParentID is the owning parent's id; empty only for the page root.
	ParentID string `json:"parentId,omitempty"`

	// Children is the ordered list of child ids. Order is the
	// render/z-order within the parent.
	Children []string `json:"children"`

	// BreakpointOverrides maps a viewport class to a partial override
	// of layout/position/size/style/hidden for that exact class.
	BreakpointOverrides map[Breakpoint]Override `json:"breakpointOverrides,omitempty"`

	// Interactions is the list of interaction tuples carried on the node.
	Interactions []Interaction `json:"interactions,omitempty"`

	// Locked excludes the element from pointer interaction.
	Locked bool `json:"locked,omitempty"`

	// Hidden excludes the element from rendering and hit-testing.
	Hidden bool `json:"hidden,omitempty"`

	// Collapsed is presentation-only layer-list state.
	Collapsed bool `json:"collapsed,omitempty"`
}

// New returns a fully populated element of the given type with a fresh
// id and complete defaults. Elements must always be created through
// this factory (or [NewWithID]) so they are never partially constructed.
func New(t Type) *Element {
	return NewWithID(t, uuid.NewString())
}

// NewWithID is [New] with a caller-provided id, used when hydrating
// externally produced fragments that already carry ids.
func NewWithID(t Type, id string) *Element {
	e := &Element{
		ID:       id,
		Type:     t,
		Children: []string{},
		Size: Size{
			Width:  Dimension{Mode: Auto},
			Height: Dimension{Mode: Auto},
		},
		Style:   Style{Opacity: 1},
		Content: DefaultContent(t),
	}
	if t == Frame {
		e.Layout.Display = Flex
		e.Layout.Direction = Column
	}
	return e
}

// ApplyDefaults backfills any unset required fields on an element that
// came from an external source, so the rest of the engine never sees a
// partially constructed node. It reports whether anything was changed.
func (e *Element) ApplyDefaults() bool {
	changed := false
	if e.ID == "" {
		e.ID = uuid.NewString()
		changed = true
	}
	if e.Children == nil {
		e.Children = []string{}
		changed = true
	}
	if e.Size.Width.Mode == Fixed && e.Size.Width.Value == 0 {
		e.Size.Width = Dimension{Mode: Auto}
		changed = true
	}
	if e.Size.Height.Mode == Fixed && e.Size.Height.Value == 0 {
		e.Size.Height = Dimension{Mode: Auto}
		changed = true
	}
	if e.Style.Opacity == 0 {
		e.Style.Opacity = 1
		changed = true
	}
	if e.Content == nil && !e.Type.IsContainer() {
		e.Content = DefaultContent(e.Type)
		changed = true
	}
	return changed
}
