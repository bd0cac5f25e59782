// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fragment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stencilui.org/stencil/element"
	"stencilui.org/stencil/page"
)

const heroBlob = `Here is your hero section:

` + "```json" + `
{
  "rootElementId": "hero",
  "elements": {
    "hero": {"id": "hero", "type": "frame", "name": "Hero", "children": ["title", "cta"]},
    "title": {"id": "title", "type": "text", "parentId": "hero", "content": {"kind": "text", "text": "Welcome"}},
    "cta": {"id": "cta", "type": "button", "parentId": "hero"}
  }
}
` + "```" + `

Let me know if you want changes.`

func TestParseExtractsFirstObject(t *testing.T) {
	frag, err := NewIngestor(nil).Parse(heroBlob)
	require.NoError(t, err)
	assert.Equal(t, SourceJSON, frag.Source)
	assert.Equal(t, "hero", frag.RootID)
	assert.Len(t, frag.Elements, 3)
	assert.Equal(t, element.Frame, frag.Elements["hero"].Type)
	require.NotNil(t, frag.Elements["title"].Content)
	assert.Equal(t, "Welcome", frag.Elements["title"].Content.Text)
}

func TestParseSingleElementObject(t *testing.T) {
	frag, err := NewIngestor(nil).Parse(`{"type": "text", "content": {"kind": "text", "text": "hi"}}`)
	require.NoError(t, err)
	require.Len(t, frag.Elements, 1)
	el := frag.Elements[frag.RootID]
	require.NotNil(t, el)
	assert.Equal(t, element.TextType, el.Type)
}

func TestParseTextFallback(t *testing.T) {
	frag, err := NewIngestor(nil).Parse("Sorry, I could not generate a layout this time.")
	require.NoError(t, err)
	assert.Equal(t, SourceText, frag.Source)
	require.Len(t, frag.Elements, 1)
	el := frag.Elements[frag.RootID]
	assert.Equal(t, element.TextType, el.Type)
	require.NotNil(t, el.Content)
	assert.Contains(t, el.Content.Text, "could not generate")
}

func TestParseSkipsInvalidObjects(t *testing.T) {
	blob := `{broken json} and then {"type": "frame"}`
	frag, err := NewIngestor(nil).Parse(blob)
	require.NoError(t, err)
	assert.Equal(t, SourceJSON, frag.Source)
	assert.Equal(t, element.Frame, frag.Elements[frag.RootID].Type)
}

func TestParseEmpty(t *testing.T) {
	_, err := NewIngestor(nil).Parse("   \n  ")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestGraftRemapsIDsAndAttaches(t *testing.T) {
	s := page.NewStore(page.New("Landing"))
	in := NewIngestor(nil)
	frag, err := in.Parse(heroBlob)
	require.NoError(t, err)

	rep, err := in.Graft(s, frag, "")
	require.NoError(t, err)
	assert.Equal(t, SourceJSON, rep.Source)
	assert.Len(t, rep.Grafted, 3)
	assert.Empty(t, rep.Repairs)

	heroID := rep.IDMap["hero"]
	assert.NotEqual(t, "hero", heroID)
	root := s.Page().Root()
	assert.Contains(t, root.Children, heroID)
	hero := s.Element(heroID)
	require.NotNil(t, hero)
	assert.Equal(t, []string{rep.IDMap["title"], rep.IDMap["cta"]}, hero.Children)
	assert.NoError(t, s.Page().Validate())
}

func TestGraftReparentsFragmentOrphan(t *testing.T) {
	s := page.NewStore(page.New("Landing"))
	in := NewIngestor(nil)
	frag := &Fragment{
		RootID: "a",
		Elements: map[string]*element.Element{
			"a": {ID: "a", Type: element.Frame},
			// parent "ghost" is not in the fragment's elements map
			"b": {ID: "b", Type: element.TextType, ParentID: "ghost"},
		},
	}
	in.backfill(frag)

	rep, err := in.Graft(s, frag, "")
	require.NoError(t, err)
	assert.Len(t, rep.Grafted, 2)
	require.NotEmpty(t, rep.Repairs)
	assert.Equal(t, page.RepairReparented, rep.Repairs[0].Kind)
	assert.Equal(t, rep.IDMap["b"], rep.Repairs[0].ElementID)

	b := s.Element(rep.IDMap["b"])
	require.NotNil(t, b)
	assert.Equal(t, s.Page().RootElementID, b.ParentID)
	assert.NoError(t, s.Page().Validate())
}

func TestGraftBreaksParentCycle(t *testing.T) {
	s := page.NewStore(page.New("Landing"))
	in := NewIngestor(nil)
	// a and b point at each other, so no element qualifies as a root.
	frag := &Fragment{
		RootID: "a",
		Elements: map[string]*element.Element{
			"a": {ID: "a", Type: element.Frame, ParentID: "b", Children: []string{"b"}},
			"b": {ID: "b", Type: element.TextType, ParentID: "a", Children: []string{"a"}},
		},
	}
	in.backfill(frag)

	rep, err := in.Graft(s, frag, "")
	require.NoError(t, err)
	assert.Len(t, rep.Grafted, 2)
	require.NotEmpty(t, rep.Repairs)
	assert.Equal(t, page.RepairReparented, rep.Repairs[0].Kind)

	// The cycle entry hangs off the root; its partner stays its child.
	entry := s.Element(rep.Repairs[0].ElementID)
	require.NotNil(t, entry)
	assert.Equal(t, s.Page().RootElementID, entry.ParentID)
	require.Len(t, entry.Children, 1)
	assert.NoError(t, s.Page().Validate())

	// One undo step removes the whole graft.
	require.True(t, s.HasUndo())
	require.True(t, s.Undo())
	assert.Nil(t, s.Element(rep.IDMap["a"]))
	assert.Nil(t, s.Element(rep.IDMap["b"]))
	assert.False(t, s.HasUndo())
}

func TestGraftDropsDanglingChildren(t *testing.T) {
	s := page.NewStore(page.New("Landing"))
	in := NewIngestor(nil)
	frag := &Fragment{
		RootID: "a",
		Elements: map[string]*element.Element{
			"a": {ID: "a", Type: element.Frame, Children: []string{"missing"}},
		},
	}
	in.backfill(frag)

	rep, err := in.Graft(s, frag, "")
	require.NoError(t, err)
	require.Len(t, rep.Repairs, 1)
	assert.Equal(t, page.RepairPrunedChild, rep.Repairs[0].Kind)
	assert.Empty(t, s.Element(rep.IDMap["a"]).Children)
}

func TestGraftInvalidAttachment(t *testing.T) {
	s := page.NewStore(page.New("Landing"))
	in := NewIngestor(nil)
	frag, err := in.Parse(`{"type": "frame"}`)
	require.NoError(t, err)
	_, err = in.Graft(s, frag, "nope")
	assert.ErrorIs(t, err, page.ErrInvalidParent)
}

func TestGraftIsOneUndoStep(t *testing.T) {
	s := page.NewStore(page.New("Landing"))
	in := NewIngestor(nil)
	before := len(s.Page().Elements)

	_, err := in.Ingest(s, heroBlob, "")
	require.NoError(t, err)
	assert.Equal(t, before+3, len(s.Page().Elements))

	require.True(t, s.Undo())
	assert.Equal(t, before, len(s.Page().Elements))
	assert.False(t, s.HasUndo())
}
