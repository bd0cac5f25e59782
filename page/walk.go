// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package page

import "stencilui.org/stencil/element"

const (
	// Continue can be returned from tree iteration functions to continue
	// traversing, as compared to [Break], which stops this branch.
	Continue = true

	// Break can be returned from tree iteration functions to stop
	// traversing this branch of the tree.
	Break = false
)

// WalkDown calls the given function on the element with the given id
// and all of its descendants in depth-first pre-order, following the
// children id lists. It stops walking a branch if the function returns
// [Break] and keeps walking if it returns [Continue]. Unknown ids in
// children lists are skipped.
func (p *Page) WalkDown(id string, fun func(el *element.Element) bool) {
	el, ok := p.Elements[id]
	if !ok {
		return
	}
	if !fun(el) {
		return
	}
	for _, cid := range el.Children {
		p.WalkDown(cid, fun)
	}
}

// WalkUp calls the given function on the element with the given id and
// each of its ancestors up to the root. It stops if the function
// returns [Break].
func (p *Page) WalkUp(id string, fun func(el *element.Element) bool) {
	seen := map[string]bool{} // guards against corrupt parent cycles
	for {
		el, ok := p.Elements[id]
		if !ok || seen[id] {
			return
		}
		seen[id] = true
		if !fun(el) {
			return
		}
		if el.ParentID == "" {
			return
		}
		id = el.ParentID
	}
}

// IsDescendant returns whether the element with the given id is a
// descendant of (or the same element as) the given ancestor.
func (p *Page) IsDescendant(ancestorID, id string) bool {
	found := false
	p.WalkUp(id, func(el *element.Element) bool {
		if el.ID == ancestorID {
			found = true
			return Break
		}
		return Continue
	})
	return found
}

// Subtree returns the ids of the element and all of its descendants in
// depth-first pre-order.
func (p *Page) Subtree(id string) []string {
	var ids []string
	p.WalkDown(id, func(el *element.Element) bool {
		ids = append(ids, el.ID)
		return Continue
	})
	return ids
}

// Depth returns the number of ancestors between the element and the
// root, with the root at depth 0 and -1 for unknown ids.
func (p *Page) Depth(id string) int {
	if _, ok := p.Elements[id]; !ok {
		return -1
	}
	depth := -1
	p.WalkUp(id, func(el *element.Element) bool {
		depth++
		return Continue
	})
	return depth
}
