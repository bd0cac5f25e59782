// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package page

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// RepairKind classifies one auto-repair performed on a page.
type RepairKind int32

const (
	// RepairReparented means an element whose parent was absent was
	// reparented to the root.
	RepairReparented RepairKind = iota

	// RepairPrunedChild means a children entry referencing a
	// nonexistent element was removed.
	RepairPrunedChild

	// RepairDedupedChild means a duplicate children entry was removed.
	RepairDedupedChild

	// RepairRelinked means an element present in a parent's children
	// list had a mismatched ParentID that was corrected.
	RepairRelinked

	// RepairDefaults means missing required fields were backfilled.
	RepairDefaults
)

func (k RepairKind) String() string {
	switch k {
	case RepairReparented:
		return "reparented"
	case RepairPrunedChild:
		return "pruned-child"
	case RepairDedupedChild:
		return "deduped-child"
	case RepairRelinked:
		return "relinked"
	case RepairDefaults:
		return "defaults"
	}
	return "unknown"
}

// Repair is one auto-repair record, returned to the caller as an audit
// trail rather than surfaced as an error.
type Repair struct {
	ElementID string
	Kind      RepairKind
	Detail    string
}

// RepairOrphans restores the structural invariants after external
// grafting (for example AI-generated fragments): orphaned elements are
// reparented to the root, dangling and duplicate children entries are
// removed, and mismatched ParentID back-references are corrected. The
// repairs are returned for observability and logged as suggestions;
// nothing here fails.
func (s *Store) RepairOrphans() []Repair {
	var repairs []Repair
	p := s.page
	root := p.Root()
	if root == nil {
		return nil
	}

	// Children lists first: prune dangling ids, dedupe repeats.
	for _, el := range p.Elements {
		seen := map[string]bool{}
		kept := el.Children[:0]
		for _, cid := range el.Children {
			child, ok := p.Elements[cid]
			switch {
			case !ok:
				repairs = append(repairs, Repair{ElementID: el.ID, Kind: RepairPrunedChild,
					Detail: fmt.Sprintf("removed dangling child %q", cid)})
			case seen[cid]:
				repairs = append(repairs, Repair{ElementID: el.ID, Kind: RepairDedupedChild,
					Detail: fmt.Sprintf("removed duplicate child %q", cid)})
			default:
				seen[cid] = true
				kept = append(kept, cid)
				if child.ParentID != el.ID && cid != p.RootElementID {
					child.ParentID = el.ID
					repairs = append(repairs, Repair{ElementID: cid, Kind: RepairRelinked,
						Detail: fmt.Sprintf("parent corrected to %q", el.ID)})
				}
			}
		}
		el.Children = kept
	}

	// Then orphans: any non-root element whose parent is absent is
	// reparented to the root.
	for id, el := range p.Elements {
		if id == p.RootElementID {
			continue
		}
		if _, ok := p.Elements[el.ParentID]; ok && el.ParentID != "" {
			continue
		}
		el.ParentID = p.RootElementID
		if !slices.Contains(root.Children, id) {
			root.Children = append(root.Children, id)
		}
		repairs = append(repairs, Repair{ElementID: id, Kind: RepairReparented,
			Detail: "orphan reparented to root"})
	}

	for _, r := range repairs {
		s.log.Info("page repair",
			zap.String("element", r.ElementID),
			zap.String("kind", r.Kind.String()),
			zap.String("detail", r.Detail))
	}
	return repairs
}

// Validate checks the four structural invariants of the page and
// returns all violations joined into one error, or nil:
//
//  1. Exactly one root, whose ParentID is empty.
//  2. Every non-root element appears in its parent's children exactly once.
//  3. Children lists contain no duplicates and no dangling ids.
//  4. Every referenced id exists in the element map.
func (p *Page) Validate() error {
	var errs []error
	root, ok := p.Elements[p.RootElementID]
	if !ok {
		errs = append(errs, fmt.Errorf("root element %q missing", p.RootElementID))
	} else if root.ParentID != "" {
		errs = append(errs, fmt.Errorf("root element %q has parent %q", root.ID, root.ParentID))
	}
	for id, el := range p.Elements {
		if el.ID != id {
			errs = append(errs, fmt.Errorf("element keyed %q carries id %q", id, el.ID))
		}
		if id != p.RootElementID {
			if el.ParentID == "" {
				errs = append(errs, fmt.Errorf("non-root element %q has no parent", id))
			} else if parent, ok := p.Elements[el.ParentID]; !ok {
				errs = append(errs, fmt.Errorf("element %q references missing parent %q", id, el.ParentID))
			} else if n := countID(parent.Children, id); n != 1 {
				errs = append(errs, fmt.Errorf("element %q appears %d times in parent %q children", id, n, parent.ID))
			}
		}
		seen := map[string]bool{}
		for _, cid := range el.Children {
			if seen[cid] {
				errs = append(errs, fmt.Errorf("element %q has duplicate child %q", id, cid))
			}
			seen[cid] = true
			if _, ok := p.Elements[cid]; !ok {
				errs = append(errs, fmt.Errorf("element %q has dangling child %q", id, cid))
			}
		}
	}
	return errors.Join(errs...)
}

func countID(ids []string, id string) int {
	n := 0
	for _, v := range ids {
		if v == id {
			n++
		}
	}
	return n
}
