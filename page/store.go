// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package page

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"stencilui.org/stencil/element"
	"stencilui.org/stencil/undo"
)

// Store wraps a [Page] with structural mutation operations and
// undo/redo checkpoints. Every mutation either succeeds and leaves the
// tree invariants intact, or fails and leaves the tree unchanged.
//
// A Store is not safe for concurrent use; all mutation happens
// synchronously inside event handlers on a single logical thread.
type Store struct {
	page    *Page
	history undo.Manager[*Page]
	log     *zap.Logger

	// inInteraction is whether an explicit interaction (Begin/End) is
	// open, collapsing per-operation checkpoints into one undo step.
	inInteraction bool
}

// NewStore returns a store over the given page. A nil page gets a
// fresh untitled one.
func NewStore(p *Page) *Store {
	if p == nil {
		p = New("Untitled")
	}
	return &Store{page: p, log: zap.NewNop()}
}

// SetLogger sets the logger used for repair audit trails and
// diagnostics. A nil logger restores the no-op default.
func (s *Store) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	s.log = log
}

// Page returns the live page. Callers must not mutate it directly;
// the store's operations are the only write path.
func (s *Store) Page() *Page {
	return s.page
}

// Element returns the element with the given id, or nil if absent.
func (s *Store) Element(id string) *element.Element {
	return s.page.Element(id)
}

// Interactions and history:

// Begin opens a user-visible interaction, pushing exactly one undo
// snapshot before its first mutation. All mutations until [Store.End]
// collapse into this single undo step.
func (s *Store) Begin(action string) {
	if s.inInteraction {
		return
	}
	s.history.Begin(action, s.page.Clone())
	s.inInteraction = true
}

// End closes the open interaction.
func (s *Store) End() {
	s.history.End()
	s.inInteraction = false
}

// Cancel aborts the open interaction, restoring the page exactly as it
// was before the interaction began and dropping the checkpoint so no
// empty undo step is left behind.
func (s *Store) Cancel() {
	if state, ok := s.history.Drop(); ok {
		s.page = state
	}
	s.inInteraction = false
}

// checkpoint pushes a single-operation undo step unless an explicit
// interaction is already open.
func (s *Store) checkpoint(action string) {
	if s.inInteraction {
		return
	}
	s.history.Begin(action, s.page.Clone())
	s.history.End()
}

// Undo restores the page state from before the most recent interaction.
// It returns false if there is nothing to undo.
func (s *Store) Undo() bool {
	state, ok := s.history.Undo(s.page)
	if !ok {
		return false
	}
	s.page = state
	s.inInteraction = false
	return true
}

// Redo re-applies the most recently undone interaction. It returns
// false if there is nothing to redo.
func (s *Store) Redo() bool {
	state, ok := s.history.Redo(s.page)
	if !ok {
		return false
	}
	s.page = state
	return true
}

// HasUndo returns whether an undo step is available.
func (s *Store) HasUndo() bool { return s.history.HasUndo() }

// HasRedo returns whether a redo step is available.
func (s *Store) HasRedo() bool { return s.history.HasRedo() }

// Structural operations:

// Add inserts the element as the last child of the given parent.
func (s *Store) Add(el *element.Element, parentID string) error {
	return s.AddAt(el, parentID, -1)
}

// AddAt inserts the element as a child of the given parent at the given
// index, clamped to the children list; a negative index appends. It
// fails with [ErrInvalidParent] if the parent does not exist and with
// [ErrDuplicateID] if the element's id is already present.
func (s *Store) AddAt(el *element.Element, parentID string, index int) error {
	parent, ok := s.page.Elements[parentID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidParent, parentID)
	}
	if el.ID == "" {
		el.ID = uuid.NewString()
	}
	if _, exists := s.page.Elements[el.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateID, el.ID)
	}
	s.checkpoint("add " + el.Type.String())
	el.ParentID = parentID
	if el.Children == nil {
		el.Children = []string{}
	}
	s.page.Elements[el.ID] = el
	parent.Children = insertAt(parent.Children, el.ID, index)
	return nil
}

// Patch is a partial update of one element's top-level fields. Non-nil
// fields are shallow-merged in: each present field replaces the base
// field wholly, except Style, which merges one level deep via
// [element.StyleOverride] (a present style sub-field, such as
// background, replaces that sub-field wholly).
type Patch struct {
	Name                *string                                  `json:"name,omitempty"`
	Layout              *element.Layout                          `json:"layout,omitempty"`
	Position            *element.Position                        `json:"position,omitempty"`
	Size                *element.Size                            `json:"size,omitempty"`
	Style               *element.StyleOverride                   `json:"style,omitempty"`
	Content             *element.Content                         `json:"content,omitempty"`
	Interactions        *[]element.Interaction                   `json:"interactions,omitempty"`
	BreakpointOverrides *map[element.Breakpoint]element.Override `json:"breakpointOverrides,omitempty"`
	Locked              *bool                                    `json:"locked,omitempty"`
	Hidden              *bool                                    `json:"hidden,omitempty"`
	Collapsed           *bool                                    `json:"collapsed,omitempty"`
}

// Update shallow-merges the patch into the element's top-level fields.
// It is a silent no-op if the id is absent, so late callbacks from the
// presentation layer are safe after a delete.
func (s *Store) Update(id string, patch Patch) {
	el, ok := s.page.Elements[id]
	if !ok {
		return
	}
	s.checkpoint("update " + el.Type.String())
	if patch.Name != nil {
		el.Name = *patch.Name
	}
	if patch.Layout != nil {
		el.Layout = *patch.Layout
	}
	if patch.Position != nil {
		el.Position = *patch.Position
	}
	if patch.Size != nil {
		el.Size = *patch.Size
	}
	patch.Style.ApplyTo(&el.Style)
	if patch.Content != nil {
		el.Content = patch.Content
	}
	if patch.Interactions != nil {
		el.Interactions = append([]element.Interaction(nil), (*patch.Interactions)...)
	}
	if patch.BreakpointOverrides != nil {
		el.BreakpointOverrides = *patch.BreakpointOverrides
	}
	if patch.Locked != nil {
		el.Locked = *patch.Locked
	}
	if patch.Hidden != nil {
		el.Hidden = *patch.Hidden
	}
	if patch.Collapsed != nil {
		el.Collapsed = *patch.Collapsed
	}
}

// Move detaches the element from its current parent and re-inserts it
// under the new parent at the given index (clamped; negative appends).
// It fails with [ErrCyclicMove] if the new parent is the element itself
// or one of its descendants, which would create a cycle; this check is
// mandatory because ids are referenced, not owned, by position.
func (s *Store) Move(id, newParentID string, newIndex int) error {
	el, ok := s.page.Elements[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if id == s.page.RootElementID {
		return ErrRootImmutable
	}
	newParent, ok := s.page.Elements[newParentID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidParent, newParentID)
	}
	if s.page.IsDescendant(id, newParentID) {
		return fmt.Errorf("%w: %q into %q", ErrCyclicMove, id, newParentID)
	}
	s.checkpoint("move " + el.Type.String())
	if oldParent := s.page.Elements[el.ParentID]; oldParent != nil {
		oldParent.Children = removeID(oldParent.Children, id)
	}
	el.ParentID = newParentID
	newParent.Children = insertAt(newParent.Children, id, newIndex)
	return nil
}

// Duplicate deep-clones the subtree rooted at the given id with freshly
// generated ids for every node, preserving structure, and inserts the
// clone immediately after the original among its siblings. It returns
// the new subtree root.
func (s *Store) Duplicate(id string) (*element.Element, error) {
	el, ok := s.page.Elements[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if id == s.page.RootElementID {
		return nil, ErrRootImmutable
	}
	parent := s.page.Elements[el.ParentID]
	if parent == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidParent, el.ParentID)
	}
	s.checkpoint("duplicate " + el.Type.String())

	// Map old ids to fresh ones first so child lists can be rewritten
	// in a single pass.
	oldIDs := s.page.Subtree(id)
	newID := make(map[string]string, len(oldIDs))
	for _, oid := range oldIDs {
		newID[oid] = uuid.NewString()
	}
	for _, oid := range oldIDs {
		src := s.page.Elements[oid]
		clone := cloneElement(src)
		clone.ID = newID[oid]
		if oid == id {
			clone.ParentID = el.ParentID
		} else {
			clone.ParentID = newID[src.ParentID]
		}
		children := make([]string, 0, len(src.Children))
		for _, cid := range src.Children {
			if nid, ok := newID[cid]; ok {
				children = append(children, nid)
			}
		}
		clone.Children = children
		s.page.Elements[clone.ID] = clone
	}
	origIndex := slices.Index(parent.Children, id)
	parent.Children = insertAt(parent.Children, newID[id], origIndex+1)
	return s.page.Elements[newID[id]], nil
}

// BringForward moves the element one slot later in its parent's child
// list, raising it in z-order. Already-last elements are a no-op.
func (s *Store) BringForward(id string) error {
	return s.shiftSibling(id, 1)
}

// SendBackward moves the element one slot earlier in its parent's
// child list, lowering it in z-order. Already-first elements are a
// no-op.
func (s *Store) SendBackward(id string) error {
	return s.shiftSibling(id, -1)
}

func (s *Store) shiftSibling(id string, dir int) error {
	el, ok := s.page.Elements[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if id == s.page.RootElementID {
		return ErrRootImmutable
	}
	parent := s.page.Elements[el.ParentID]
	if parent == nil {
		return fmt.Errorf("%w: %q", ErrInvalidParent, el.ParentID)
	}
	i := slices.Index(parent.Children, id)
	j := i + dir
	if i < 0 || j < 0 || j >= len(parent.Children) {
		return nil
	}
	s.checkpoint("reorder " + el.Type.String())
	parent.Children[i], parent.Children[j] = parent.Children[j], parent.Children[i]
	return nil
}

// Delete removes the subtree rooted at the given id from the page.
// Deleting the root is rejected with [ErrRootDeletionForbidden];
// deleting an unknown id is a silent no-op.
func (s *Store) Delete(id string) error {
	el, ok := s.page.Elements[id]
	if !ok {
		return nil
	}
	if id == s.page.RootElementID {
		return ErrRootDeletionForbidden
	}
	s.checkpoint("delete " + el.Type.String())
	for _, did := range s.page.Subtree(id) {
		delete(s.page.Elements, did)
	}
	if parent := s.page.Elements[el.ParentID]; parent != nil {
		parent.Children = removeID(parent.Children, id)
	}
	return nil
}

// insertAt inserts the id at the given index, clamped to the list
// bounds; a negative index appends.
func insertAt(ids []string, id string, index int) []string {
	if index < 0 || index > len(ids) {
		index = len(ids)
	}
	return slices.Insert(ids, index, id)
}

// removeID removes every occurrence of the id from the list.
func removeID(ids []string, id string) []string {
	return slices.DeleteFunc(ids, func(s string) bool { return s == id })
}
