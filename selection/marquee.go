// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selection

import "stencilui.org/stencil/math32"

// Candidate is one element offered to marquee hit-testing: its id, its
// screen-space box as reported by the presentation layer, and the
// flags that exclude it from pointer selection.
type Candidate struct {
	ID     string
	Bounds math32.Box2
	Root   bool
	Locked bool
	Hidden bool
}

// Marquee is a drag-defined screen-space rectangle used to select all
// intersecting elements. It is created on pointer-down on empty canvas
// and resolved on release.
type Marquee struct {
	Start  math32.Vector2
	End    math32.Vector2
	Active bool
}

// StartMarquee begins a marquee drag at the given screen point.
func StartMarquee(p math32.Vector2) Marquee {
	return Marquee{Start: p, End: p, Active: true}
}

// MoveTo updates the marquee's live corner during the drag.
func (m *Marquee) MoveTo(p math32.Vector2) {
	m.End = p
}

// Box returns the well-formed screen-space rectangle of the marquee.
func (m Marquee) Box() math32.Box2 {
	return math32.Box2{Min: m.Start, Max: m.End}.Canon()
}

// Release resolves the marquee against the candidates and writes the
// result into the selection: every candidate whose screen-space box
// intersects the rectangle with any overlap is selected, excluding the
// root and locked or hidden elements. A zero-area marquee selects
// nothing and simply clears the selection.
func (s *Selection) Release(m Marquee, candidates []Candidate) {
	box := m.Box()
	if box.Area() == 0 {
		s.Clear()
		return
	}
	var hit []string
	for _, c := range candidates {
		if c.Root || c.Locked || c.Hidden {
			continue
		}
		if box.IntersectsBox(c.Bounds) {
			hit = append(hit, c.ID)
		}
	}
	s.SelectAll(hit)
}
