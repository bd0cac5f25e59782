// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stencilui.org/stencil/element"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s := newStore(t)
	root := s.Page().RootElementID
	a := addFrame(t, s, root)
	a.Name = "Hero"
	a.Size.Width = element.Px(400)
	txt := element.New(element.TextType)
	txt.Content = element.NewTextContent("Welcome")
	require.NoError(t, s.Add(txt, a.ID))
	s.Page().Settings.CanvasBackground = "#f5f5f5"
	s.Page().SEO.Description = "landing page"

	data, err := Marshal(s.Page())
	require.NoError(t, err)

	got, repairs, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Empty(t, repairs)
	assert.Equal(t, s.Page().ID, got.ID)
	assert.Equal(t, "#f5f5f5", got.Settings.CanvasBackground)
	assert.Equal(t, "landing page", got.SEO.Description)

	hero := got.Element(a.ID)
	require.NotNil(t, hero)
	assert.Equal(t, "Hero", hero.Name)
	assert.Equal(t, element.Px(400), hero.Size.Width)
	assert.Equal(t, "Welcome", got.Element(txt.ID).Content.Text)
	assert.NoError(t, got.Validate())
}

func TestUnmarshalRepairsOrphans(t *testing.T) {
	s := newStore(t)
	orphan := element.New(element.TextType)
	orphan.ParentID = "ghost"
	s.Page().Elements[orphan.ID] = orphan

	data, err := Marshal(s.Page())
	require.NoError(t, err)

	got, repairs, err := Unmarshal(data)
	require.NoError(t, err)
	require.NotEmpty(t, repairs)
	assert.Equal(t, got.RootElementID, got.Element(orphan.ID).ParentID)
	assert.NoError(t, got.Validate())
}

func TestUnmarshalBackfillsDefaults(t *testing.T) {
	blob := `{
		"id": "p1",
		"rootElementId": "r",
		"elements": {
			"r": {"id": "r", "type": "frame", "children": ["t"]},
			"t": {"type": "text", "parentId": "r"}
		}
	}`
	got, repairs, err := Unmarshal([]byte(blob))
	require.NoError(t, err)
	require.NotEmpty(t, repairs)

	txt := got.Element("t")
	require.NotNil(t, txt)
	assert.Equal(t, "t", txt.ID)
	assert.Equal(t, float32(1), txt.Style.Opacity)
	assert.NotNil(t, txt.Children)
	assert.NoError(t, got.Validate())
}

func TestUnmarshalRecreatesMissingRoot(t *testing.T) {
	blob := `{
		"id": "p1",
		"settings": {"title": "Recovered"},
		"elements": {
			"a": {"id": "a", "type": "frame", "parentId": "gone"}
		}
	}`
	got, repairs, err := Unmarshal([]byte(blob))
	require.NoError(t, err)
	require.NotEmpty(t, repairs)
	require.NotNil(t, got.Root())
	assert.Equal(t, got.RootElementID, got.Element("a").ParentID)
	assert.NoError(t, got.Validate())
}

func TestUnmarshalMalformed(t *testing.T) {
	_, _, err := Unmarshal([]byte(`{"elements": [`))
	assert.Error(t, err)
}

func TestCloneIsDeep(t *testing.T) {
	s := newStore(t)
	a := addFrame(t, s, s.Page().RootElementID)
	a.Name = "original"

	c := s.Page().Clone()
	c.Elements[a.ID].Name = "copy"
	c.Elements[a.ID].Children = append(c.Elements[a.ID].Children, "x")

	assert.Equal(t, "original", a.Name)
	assert.Empty(t, a.Children)
}
