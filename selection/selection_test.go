// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stencilui.org/stencil/canvas"
	"stencilui.org/stencil/math32"
)

func TestSelectModes(t *testing.T) {
	s := New()
	s.Select("a", Replace)
	assert.Equal(t, []string{"a"}, s.IDs())

	s.Select("b", Add)
	s.Select("c", Add)
	assert.Equal(t, []string{"a", "b", "c"}, s.IDs())

	// Add is idempotent.
	s.Select("b", Add)
	assert.Equal(t, []string{"a", "b", "c"}, s.IDs())

	// Toggle removes a present id and appends an absent one.
	s.Select("b", Toggle)
	assert.Equal(t, []string{"a", "c"}, s.IDs())
	s.Select("d", Toggle)
	assert.Equal(t, []string{"a", "c", "d"}, s.IDs())

	s.Select("x", Replace)
	assert.Equal(t, []string{"x"}, s.IDs())
}

func TestSingle(t *testing.T) {
	s := New()
	_, ok := s.Single()
	assert.False(t, ok)

	s.Select("a", Replace)
	id, ok := s.Single()
	assert.True(t, ok)
	assert.Equal(t, "a", id)

	s.Select("b", Add)
	_, ok = s.Single()
	assert.False(t, ok)
}

func TestSelectAllDedupes(t *testing.T) {
	s := New()
	s.SelectAll([]string{"a", "b", "a", "c", "b"})
	assert.Equal(t, []string{"a", "b", "c"}, s.IDs())
}

func TestClearRemove(t *testing.T) {
	s := New()
	s.SelectAll([]string{"a", "b", "c"})
	s.Remove("b")
	assert.Equal(t, []string{"a", "c"}, s.IDs())
	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
}

func TestIDsReturnsCopy(t *testing.T) {
	s := New()
	s.SelectAll([]string{"a", "b"})
	ids := s.IDs()
	ids[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, s.IDs())
}

func TestHoverSuppressedWhenSelected(t *testing.T) {
	s := New()
	s.SetHover("a")
	assert.Equal(t, "a", s.Hover())
	assert.Equal(t, "a", s.EffectiveHover())

	s.Select("a", Replace)
	assert.Equal(t, "a", s.Hover())
	assert.Equal(t, "", s.EffectiveHover())

	s.SetHover("b")
	assert.Equal(t, "b", s.EffectiveHover())
}

func TestBoundsUnion(t *testing.T) {
	boxes := map[string]math32.Box2{
		"a": math32.B2(0, 0, 100, 100),
		"b": math32.B2(200, 50, 300, 150),
	}
	lookup := func(id string) (math32.Box2, bool) {
		b, ok := boxes[id]
		return b, ok
	}

	s := New()
	assert.True(t, s.Bounds(lookup).IsEmpty())

	s.SelectAll([]string{"a", "b", "unknown"})
	b := s.Bounds(lookup)
	assert.Equal(t, math32.Vec2(0, 0), b.Min)
	assert.Equal(t, math32.Vec2(300, 150), b.Max)

	screen := s.ScreenBounds(lookup, canvas.Transform{TranslateX: 10, TranslateY: 20, Scale: 2})
	assert.Equal(t, math32.Vec2(10, 20), screen.Min)
	assert.Equal(t, math32.Vec2(610, 320), screen.Max)
}

func TestMarqueeRelease(t *testing.T) {
	candidates := []Candidate{
		{ID: "root", Bounds: math32.B2(0, 0, 1000, 1000), Root: true},
		{ID: "a", Bounds: math32.B2(0, 0, 100, 100)},
		{ID: "b", Bounds: math32.B2(200, 0, 300, 100)},
		{ID: "locked", Bounds: math32.B2(0, 200, 100, 300), Locked: true},
		{ID: "hidden", Bounds: math32.B2(200, 200, 300, 300), Hidden: true},
		{ID: "far", Bounds: math32.B2(900, 900, 950, 950)},
	}

	m := StartMarquee(math32.Vec2(50, 50))
	m.MoveTo(math32.Vec2(250, 250))

	s := New()
	s.Release(m, candidates)
	// Any overlap selects; root, locked, and hidden are excluded.
	assert.ElementsMatch(t, []string{"a", "b"}, s.IDs())
}

func TestMarqueeDirectionIndependent(t *testing.T) {
	// Dragging up-left produces the same rectangle as down-right.
	m := StartMarquee(math32.Vec2(250, 250))
	m.MoveTo(math32.Vec2(50, 50))
	assert.Equal(t, math32.Vec2(50, 50), m.Box().Min)
	assert.Equal(t, math32.Vec2(250, 250), m.Box().Max)
}

func TestZeroAreaMarqueeClears(t *testing.T) {
	s := New()
	s.SelectAll([]string{"a", "b"})
	m := StartMarquee(math32.Vec2(50, 50))
	s.Release(m, []Candidate{{ID: "a", Bounds: math32.B2(0, 0, 100, 100)}})
	assert.True(t, s.IsEmpty())
}
