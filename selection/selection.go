// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package selection tracks the selected and hovered element ids and
// computes selection bounding geometry. It has no rendering capability
// of its own: element bounds come from the caller, and boxes are
// projected to screen space through the canvas transform.
package selection

import (
	"slices"

	"stencilui.org/stencil/canvas"
	"stencilui.org/stencil/math32"
)

// Mode is how a select operation combines with the current selection.
type Mode int32

const (
	// Replace clears the selection and selects only the given id.
	Replace Mode = iota

	// Add appends the id to the selection if absent.
	Add

	// Toggle removes the id if present, otherwise appends it.
	Toggle
)

// BoundsFunc supplies the document-space bounding box for an element
// id, reporting false for ids with no known geometry.
type BoundsFunc func(id string) (math32.Box2, bool)

// Selection is the ordered set of selected element ids plus the
// independent hover id.
type Selection struct {
	ids   []string
	hover string
}

// New returns an empty selection.
func New() *Selection {
	return &Selection{}
}

// IDs returns the selected ids in selection order. The returned slice
// is a copy.
func (s *Selection) IDs() []string {
	return slices.Clone(s.ids)
}

// Len returns the number of selected elements.
func (s *Selection) Len() int {
	return len(s.ids)
}

// IsEmpty returns whether nothing is selected.
func (s *Selection) IsEmpty() bool {
	return len(s.ids) == 0
}

// Contains returns whether the id is selected.
func (s *Selection) Contains(id string) bool {
	return slices.Contains(s.ids, id)
}

// Single returns the id of the sole selected element, or false when
// the selection is empty or multiple.
func (s *Selection) Single() (string, bool) {
	if len(s.ids) == 1 {
		return s.ids[0], true
	}
	return "", false
}

// Select applies a select operation for the id with the given mode.
func (s *Selection) Select(id string, mode Mode) {
	switch mode {
	case Replace:
		s.ids = []string{id}
	case Add:
		if !s.Contains(id) {
			s.ids = append(s.ids, id)
		}
	case Toggle:
		if i := slices.Index(s.ids, id); i >= 0 {
			s.ids = slices.Delete(s.ids, i, i+1)
		} else {
			s.ids = append(s.ids, id)
		}
	}
}

// SelectAll replaces the selection with the given ids in order,
// dropping duplicates.
func (s *Selection) SelectAll(ids []string) {
	s.ids = s.ids[:0]
	for _, id := range ids {
		if !s.Contains(id) {
			s.ids = append(s.ids, id)
		}
	}
}

// Clear empties the selection, as when clicking empty canvas.
func (s *Selection) Clear() {
	s.ids = nil
}

// Remove drops the id from the selection if present, as after its
// element is deleted.
func (s *Selection) Remove(id string) {
	if i := slices.Index(s.ids, id); i >= 0 {
		s.ids = slices.Delete(s.ids, i, i+1)
	}
	if s.hover == id {
		s.hover = ""
	}
}

// SetHover sets the hovered id, independent of selection.
func (s *Selection) SetHover(id string) {
	s.hover = id
}

// Hover returns the raw hovered id.
func (s *Selection) Hover() string {
	return s.hover
}

// EffectiveHover returns the id that should show a hover outline. A
// hovered id that is already selected is suppressed, to avoid double
// outlines.
func (s *Selection) EffectiveHover() string {
	if s.hover == "" || s.Contains(s.hover) {
		return ""
	}
	return s.hover
}

// Bounds returns the union document-space bounding box of the
// selection (min of mins, max of maxes), using the given bounds
// source. Ids without geometry are skipped; an empty or fully unknown
// selection yields an empty box.
func (s *Selection) Bounds(bounds BoundsFunc) math32.Box2 {
	box := math32.B2Empty()
	for _, id := range s.ids {
		if b, ok := bounds(id); ok {
			box.ExpandByBox(b)
		}
	}
	return box
}

// ScreenBounds is [Selection.Bounds] projected to screen space through
// the given transform, for drawing selection chrome.
func (s *Selection) ScreenBounds(bounds BoundsFunc, t canvas.Transform) math32.Box2 {
	box := s.Bounds(bounds)
	if box.IsEmpty() {
		return box
	}
	return t.DocumentToScreenBox(box)
}
