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

func newStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(New("Test"))
}

func addFrame(t *testing.T, s *Store, parentID string) *element.Element {
	t.Helper()
	el := element.New(element.Frame)
	require.NoError(t, s.Add(el, parentID))
	return el
}

func TestNewPageHasRoot(t *testing.T) {
	p := New("Landing")
	root := p.Root()
	require.NotNil(t, root)
	assert.Equal(t, element.Frame, root.Type)
	assert.Empty(t, root.ParentID)
	assert.Equal(t, "Landing", p.Settings.Title)
	assert.NoError(t, p.Validate())
}

func TestAddMaintainsInvariants(t *testing.T) {
	s := newStore(t)
	root := s.Page().RootElementID
	a := addFrame(t, s, root)
	b := addFrame(t, s, a.ID)

	assert.Equal(t, a.ID, b.ParentID)
	assert.Equal(t, []string{b.ID}, a.Children)
	assert.NoError(t, s.Page().Validate())
}

func TestAddInvalidParent(t *testing.T) {
	s := newStore(t)
	err := s.Add(element.New(element.Frame), "nope")
	assert.ErrorIs(t, err, ErrInvalidParent)
	assert.NoError(t, s.Page().Validate())
}

func TestAddDuplicateID(t *testing.T) {
	s := newStore(t)
	root := s.Page().RootElementID
	a := addFrame(t, s, root)
	dup := element.NewWithID(element.Frame, a.ID)
	assert.ErrorIs(t, s.Add(dup, root), ErrDuplicateID)
}

func TestAddAtIndex(t *testing.T) {
	s := newStore(t)
	root := s.Page().RootElementID
	a := addFrame(t, s, root)
	b := addFrame(t, s, root)
	c := element.New(element.Frame)
	require.NoError(t, s.AddAt(c, root, 1))
	assert.Equal(t, []string{a.ID, c.ID, b.ID}, s.Page().Root().Children)
}

func TestMoveReorders(t *testing.T) {
	s := newStore(t)
	root := s.Page().RootElementID
	a := addFrame(t, s, root)
	b := addFrame(t, s, root)

	require.NoError(t, s.Move(b.ID, a.ID, 0))
	assert.Equal(t, a.ID, b.ParentID)
	assert.Equal(t, []string{b.ID}, a.Children)
	assert.Equal(t, []string{a.ID}, s.Page().Root().Children)
	assert.NoError(t, s.Page().Validate())
}

func TestBringForwardSendBackward(t *testing.T) {
	s := newStore(t)
	root := s.Page().RootElementID
	a := addFrame(t, s, root)
	b := addFrame(t, s, root)
	c := addFrame(t, s, root)

	require.NoError(t, s.BringForward(a.ID))
	assert.Equal(t, []string{b.ID, a.ID, c.ID}, s.Page().Root().Children)

	require.NoError(t, s.SendBackward(c.ID))
	assert.Equal(t, []string{b.ID, c.ID, a.ID}, s.Page().Root().Children)

	// Edges are no-ops.
	require.NoError(t, s.SendBackward(b.ID))
	require.NoError(t, s.BringForward(a.ID))
	assert.Equal(t, []string{b.ID, c.ID, a.ID}, s.Page().Root().Children)

	assert.ErrorIs(t, s.BringForward(root), ErrRootImmutable)
	assert.ErrorIs(t, s.BringForward("ghost"), ErrNotFound)
}

func TestMoveCyclicRejected(t *testing.T) {
	s := newStore(t)
	root := s.Page().RootElementID
	x := addFrame(t, s, root)
	y := addFrame(t, s, x.ID)
	z := addFrame(t, s, y.ID)

	// Moving x under its own descendant z must fail and leave the
	// tree unchanged.
	err := s.Move(x.ID, z.ID, 0)
	assert.ErrorIs(t, err, ErrCyclicMove)
	assert.ErrorIs(t, s.Move(x.ID, x.ID, 0), ErrCyclicMove)
	assert.Equal(t, root, x.ParentID)
	assert.NoError(t, s.Page().Validate())
}

func TestMoveRootRejected(t *testing.T) {
	s := newStore(t)
	a := addFrame(t, s, s.Page().RootElementID)
	assert.ErrorIs(t, s.Move(s.Page().RootElementID, a.ID, 0), ErrRootImmutable)
}

func TestDuplicateSubtree(t *testing.T) {
	s := newStore(t)
	root := s.Page().RootElementID
	a := addFrame(t, s, root)
	b := addFrame(t, s, a.ID)
	name := "inner"
	s.Update(b.ID, Patch{Name: &name})

	dup, err := s.Duplicate(a.ID)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, dup.ID)
	// Inserted immediately after the original.
	assert.Equal(t, []string{a.ID, dup.ID}, s.Page().Root().Children)
	// Structure preserved with fresh ids throughout.
	require.Len(t, dup.Children, 1)
	child := s.Element(dup.Children[0])
	require.NotNil(t, child)
	assert.NotEqual(t, b.ID, child.ID)
	assert.Equal(t, "inner", child.Name)
	assert.Equal(t, dup.ID, child.ParentID)
	assert.NoError(t, s.Page().Validate())

	// The clone is deep: mutating it leaves the original alone.
	child.Name = "changed"
	assert.Equal(t, "inner", s.Element(b.ID).Name)
}

func TestDuplicateRootRejected(t *testing.T) {
	s := newStore(t)
	_, err := s.Duplicate(s.Page().RootElementID)
	assert.ErrorIs(t, err, ErrRootImmutable)
}

func TestDeleteSubtree(t *testing.T) {
	s := newStore(t)
	root := s.Page().RootElementID
	a := addFrame(t, s, root)
	b := addFrame(t, s, a.ID)

	require.NoError(t, s.Delete(a.ID))
	assert.Nil(t, s.Element(a.ID))
	assert.Nil(t, s.Element(b.ID))
	assert.Empty(t, s.Page().Root().Children)
	assert.NoError(t, s.Page().Validate())
}

func TestDeleteRootRejected(t *testing.T) {
	s := newStore(t)
	assert.ErrorIs(t, s.Delete(s.Page().RootElementID), ErrRootDeletionForbidden)
}

func TestDeleteUnknownIsNoOp(t *testing.T) {
	s := newStore(t)
	assert.NoError(t, s.Delete("ghost"))
}

func TestUpdatePatch(t *testing.T) {
	s := newStore(t)
	a := addFrame(t, s, s.Page().RootElementID)
	name := "Hero"
	locked := true
	s.Update(a.ID, Patch{Name: &name, Locked: &locked})
	assert.Equal(t, "Hero", a.Name)
	assert.True(t, a.Locked)

	// Unknown ids are silently ignored so late presentation callbacks
	// are safe after a delete.
	s.Update("ghost", Patch{Name: &name})
}

func TestUpdateStyleMergesOneLevelDeep(t *testing.T) {
	s := newStore(t)
	a := addFrame(t, s, s.Page().RootElementID)
	s.Update(a.ID, Patch{Style: &element.StyleOverride{
		Opacity: ptrF(0.5),
	}})
	assert.Equal(t, float32(0.5), a.Style.Opacity)
}

func TestUndoRedoPerOperation(t *testing.T) {
	s := newStore(t)
	root := s.Page().RootElementID
	a := addFrame(t, s, root)

	require.True(t, s.Undo())
	assert.Nil(t, s.Element(a.ID))
	require.True(t, s.Redo())
	assert.NotNil(t, s.Element(a.ID))
	assert.NoError(t, s.Page().Validate())
}

func TestInteractionCollapsesIntoOneStep(t *testing.T) {
	s := newStore(t)
	root := s.Page().RootElementID

	s.Begin("build section")
	a := addFrame(t, s, root)
	b := addFrame(t, s, a.ID)
	s.Update(b.ID, Patch{Name: ptrS("inner")})
	s.End()

	require.True(t, s.Undo())
	assert.Nil(t, s.Element(a.ID))
	assert.Nil(t, s.Element(b.ID))
	assert.False(t, s.HasUndo())
}

func TestCancelRestoresPreInteractionState(t *testing.T) {
	s := newStore(t)
	root := s.Page().RootElementID
	a := addFrame(t, s, root)

	s.Begin("aborted drag")
	addFrame(t, s, a.ID)
	s.Cancel()

	restored := s.Element(a.ID)
	require.NotNil(t, restored)
	assert.Empty(t, restored.Children)
	// No empty undo step was left behind beyond the original add.
	require.True(t, s.Undo())
	assert.False(t, s.HasUndo())
}

func TestRedoClearedByNewMutation(t *testing.T) {
	s := newStore(t)
	root := s.Page().RootElementID
	addFrame(t, s, root)
	require.True(t, s.Undo())
	assert.True(t, s.HasRedo())

	addFrame(t, s, root)
	assert.False(t, s.HasRedo())
}

func TestTreeIntegrityUnderOperationSequence(t *testing.T) {
	s := newStore(t)
	root := s.Page().RootElementID
	a := addFrame(t, s, root)
	b := addFrame(t, s, a.ID)
	c := addFrame(t, s, root)

	require.NoError(t, s.Move(b.ID, c.ID, 0))
	assert.NoError(t, s.Page().Validate())
	_, err := s.Duplicate(c.ID)
	require.NoError(t, err)
	assert.NoError(t, s.Page().Validate())
	require.NoError(t, s.Delete(a.ID))
	assert.NoError(t, s.Page().Validate())
	require.True(t, s.Undo())
	assert.NoError(t, s.Page().Validate())
	require.True(t, s.Redo())
	assert.NoError(t, s.Page().Validate())
}

func TestRepairOrphans(t *testing.T) {
	s := newStore(t)
	p := s.Page()
	root := p.RootElementID

	orphan := element.New(element.TextType)
	orphan.ParentID = "ghost"
	p.Elements[orphan.ID] = orphan

	dangling := addFrame(t, s, root)
	dangling.Children = append(dangling.Children, "missing", "missing")

	repairs := s.RepairOrphans()
	require.NotEmpty(t, repairs)
	assert.Equal(t, root, orphan.ParentID)
	assert.Contains(t, p.Root().Children, orphan.ID)
	assert.Empty(t, dangling.Children)
	assert.NoError(t, p.Validate())

	kinds := map[RepairKind]int{}
	for _, r := range repairs {
		kinds[r.Kind]++
	}
	assert.Equal(t, 1, kinds[RepairReparented])
	assert.Equal(t, 2, kinds[RepairPrunedChild])
}

func TestWalkHelpers(t *testing.T) {
	s := newStore(t)
	root := s.Page().RootElementID
	a := addFrame(t, s, root)
	b := addFrame(t, s, a.ID)
	p := s.Page()

	var down []string
	p.WalkDown(root, func(el *element.Element) bool {
		down = append(down, el.ID)
		return Continue
	})
	assert.Equal(t, []string{root, a.ID, b.ID}, down)

	var up []string
	p.WalkUp(b.ID, func(el *element.Element) bool {
		up = append(up, el.ID)
		return Continue
	})
	assert.Equal(t, []string{b.ID, a.ID, root}, up)

	assert.True(t, p.IsDescendant(a.ID, b.ID))
	assert.False(t, p.IsDescendant(b.ID, a.ID))
	assert.Equal(t, []string{a.ID, b.ID}, p.Subtree(a.ID))
	assert.Equal(t, 2, p.Depth(b.ID))
}

func ptrS(s string) *string   { return &s }
func ptrF(f float32) *float32 { return &f }
