// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fragment ingests generated element subtrees. The generation
// collaborator returns free-form text that should contain one JSON
// fragment; this package extracts the first valid JSON object from the
// blob, backfills missing fields with defaults, and grafts the result
// onto a page under an attachment element, reparenting any orphans and
// returning an audit trail of everything it had to repair.
package fragment

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"stencilui.org/stencil/element"
	"stencilui.org/stencil/page"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrEmpty is returned when the blob contains neither a JSON fragment
// nor any usable text.
var ErrEmpty = errors.New("fragment: empty payload")

// Source records how a fragment was recovered from the raw blob.
type Source int32

const (
	// SourceJSON means a valid JSON object was extracted and decoded.
	SourceJSON Source = iota

	// SourceText means no JSON object was found and the blob was
	// wrapped into a single text element as a fallback.
	SourceText
)

func (s Source) String() string {
	if s == SourceText {
		return "text"
	}
	return "json"
}

// Fragment is a candidate subtree awaiting grafting. Elements reference
// each other by id exactly as a page does; RootID names the intended
// subtree root when the payload declared one.
type Fragment struct {
	RootID   string                      `json:"rootElementId"`
	Elements map[string]*element.Element `json:"elements"`

	// Source records whether the fragment came from extracted JSON or
	// from the raw-text fallback.
	Source Source `json:"-"`
}

// Report is the audit trail of one graft: the ids inserted into the
// page (post-remap), the id remapping applied to avoid collisions, and
// every repair that was needed to restore the structural invariants.
type Report struct {
	Source  Source
	Grafted []string
	IDMap   map[string]string
	Repairs []page.Repair
}

// Ingestor parses and grafts generated fragments. The zero value is
// usable and logs nowhere.
type Ingestor struct {
	log *zap.Logger
}

// NewIngestor returns an Ingestor logging to the given logger; nil
// means no logging.
func NewIngestor(log *zap.Logger) *Ingestor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Ingestor{log: log}
}

func (in *Ingestor) logger() *zap.Logger {
	if in.log == nil {
		return zap.NewNop()
	}
	return in.log
}

// Parse recovers a Fragment from a raw generation blob. It scans for
// the first syntactically valid JSON object and decodes it either as a
// fragment envelope (rootElementId + elements) or as a single inline
// element. When no JSON object can be extracted the whole blob becomes
// one text element, so a plain-prose response still yields something
// the user can see and edit. Missing fields are backfilled with
// defaults. It fails with [ErrEmpty] only for blank input.
func (in *Ingestor) Parse(blob string) (*Fragment, error) {
	trimmed := strings.TrimSpace(blob)
	if trimmed == "" {
		return nil, ErrEmpty
	}

	if raw, ok := extractObject(trimmed); ok {
		if frag, ok := decodeFragment(raw); ok {
			in.backfill(frag)
			frag.Source = SourceJSON
			return frag, nil
		}
	}

	in.logger().Warn("no JSON fragment found, falling back to text",
		zap.Int("blobLen", len(blob)))
	el := element.New(element.TextType)
	el.Content = element.NewTextContent(trimmed)
	return &Fragment{
		RootID:   el.ID,
		Elements: map[string]*element.Element{el.ID: el},
		Source:   SourceText,
	}, nil
}

// backfill applies element defaults and records keys for map entries
// whose elements omitted their own id.
func (in *Ingestor) backfill(f *Fragment) {
	for id, el := range f.Elements {
		if el.ID == "" {
			el.ID = id
		}
		if el.ApplyDefaults() {
			in.logger().Debug("fragment element defaults backfilled",
				zap.String("element", id))
		}
	}
}

// Graft inserts the fragment's elements into the store under the
// attachment element, as one undoable interaction. Every fragment id
// is remapped to a fresh one so generated ids can never collide with
// the page. Elements whose parent is absent from the fragment are
// reparented to the attachment element and the repair is reported.
// attachID empty means the page root.
func (in *Ingestor) Graft(s *page.Store, f *Fragment, attachID string) (Report, error) {
	rep := Report{Source: f.Source, IDMap: map[string]string{}}
	if len(f.Elements) == 0 {
		return rep, ErrEmpty
	}
	if attachID == "" {
		attachID = s.Page().RootElementID
	}
	if s.Element(attachID) == nil {
		return rep, fmt.Errorf("%w: attachment %q", page.ErrInvalidParent, attachID)
	}

	for old := range f.Elements {
		rep.IDMap[old] = uuid.NewString()
	}

	// Roots are elements whose parent is not inside the fragment. The
	// declared root attaches by design; any other root is an orphan the
	// generator failed to link, repaired by attaching it too.
	var roots []string
	for id, el := range f.Elements {
		if _, ok := f.Elements[el.ParentID]; ok {
			continue
		}
		roots = append(roots, id)
		if id != f.RootID && el.ParentID != "" {
			rep.Repairs = append(rep.Repairs, page.Repair{
				ElementID: rep.IDMap[id],
				Kind:      page.RepairReparented,
				Detail:    fmt.Sprintf("fragment parent %q absent, attached to %q", el.ParentID, attachID),
			})
		}
	}
	// The declared root attaches first so it keeps its sibling slot.
	orderRootFirst(roots, f.RootID)

	s.Begin("graft fragment")
	grafted := map[string]bool{}
	for _, rootID := range roots {
		if err := in.graftSubtree(s, f, rootID, attachID, grafted, &rep); err != nil {
			s.Cancel()
			return Report{Source: f.Source}, err
		}
	}
	// Elements the root pass never reached sit in a parent cycle.
	// Break each cycle by attaching one member to the attachment
	// element and graft the rest from there.
	for _, id := range sortedIDs(f.Elements) {
		if grafted[id] {
			continue
		}
		rep.Repairs = append(rep.Repairs, page.Repair{
			ElementID: rep.IDMap[id],
			Kind:      page.RepairReparented,
			Detail:    fmt.Sprintf("fragment parent cycle broken, attached to %q", attachID),
		})
		if err := in.graftSubtree(s, f, id, attachID, grafted, &rep); err != nil {
			s.Cancel()
			return Report{Source: f.Source}, err
		}
	}
	if len(rep.Grafted) == 0 {
		s.Cancel()
		return rep, nil
	}
	rep.Repairs = append(rep.Repairs, s.RepairOrphans()...)
	s.End()
	in.logger().Info("fragment grafted",
		zap.String("source", f.Source.String()),
		zap.Int("elements", len(rep.Grafted)),
		zap.Int("repairs", len(rep.Repairs)))
	return rep, nil
}

// graftSubtree inserts the subtree at oldID depth first so every Add
// sees its parent already present. grafted guards against child links
// that revisit an inserted element.
func (in *Ingestor) graftSubtree(s *page.Store, f *Fragment, oldID, parentID string, grafted map[string]bool, rep *Report) error {
	if grafted[oldID] {
		return nil
	}
	grafted[oldID] = true
	src := f.Elements[oldID]
	el := *src
	el.ID = rep.IDMap[oldID]
	el.ParentID = parentID

	// Children lists are rebuilt from the fragment's own map; dangling,
	// duplicate, and cyclic entries are dropped and reported.
	el.Children = nil
	var childIDs []string
	for _, cid := range src.Children {
		if _, ok := f.Elements[cid]; !ok {
			rep.Repairs = append(rep.Repairs, page.Repair{
				ElementID: el.ID,
				Kind:      page.RepairPrunedChild,
				Detail:    fmt.Sprintf("dropped dangling fragment child %q", cid),
			})
			continue
		}
		if grafted[cid] {
			rep.Repairs = append(rep.Repairs, page.Repair{
				ElementID: el.ID,
				Kind:      page.RepairPrunedChild,
				Detail:    fmt.Sprintf("fragment child %q already placed, dropped", cid),
			})
			continue
		}
		childIDs = append(childIDs, cid)
	}

	if err := s.Add(&el, parentID); err != nil {
		return err
	}
	rep.Grafted = append(rep.Grafted, el.ID)

	for _, cid := range childIDs {
		if err := in.graftSubtree(s, f, cid, el.ID, grafted, rep); err != nil {
			return err
		}
	}
	return nil
}

// sortedIDs returns the fragment's element ids in a stable order.
func sortedIDs(m map[string]*element.Element) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Ingest is Parse followed by Graft.
func (in *Ingestor) Ingest(s *page.Store, blob, attachID string) (Report, error) {
	frag, err := in.Parse(blob)
	if err != nil {
		return Report{}, err
	}
	return in.Graft(s, frag, attachID)
}

// decodeFragment tries the envelope form first, then a single inline
// element carrying a type field.
func decodeFragment(raw string) (*Fragment, bool) {
	var env Fragment
	if err := json.UnmarshalFromString(raw, &env); err == nil && len(env.Elements) > 0 {
		return &env, true
	}
	// The single-element form must carry an explicit type key; the
	// zero Type is a real element type, so decoding alone proves nothing.
	var probe struct {
		Type *element.Type `json:"type"`
	}
	if err := json.UnmarshalFromString(raw, &probe); err != nil || probe.Type == nil {
		return nil, false
	}
	var el element.Element
	if err := json.UnmarshalFromString(raw, &el); err == nil && el.Type.IsValid() {
		if el.ID == "" {
			el.ID = uuid.NewString()
		}
		return &Fragment{
			RootID:   el.ID,
			Elements: map[string]*element.Element{el.ID: &el},
		}, true
	}
	return nil, false
}

// extractObject returns the first balanced, syntactically valid JSON
// object in the blob. Brace depth is tracked outside string literals,
// with escapes honored, so prose around or between objects (markdown
// fences included) is skipped over.
func extractObject(blob string) (string, bool) {
	for start := 0; start < len(blob); {
		open := strings.IndexByte(blob[start:], '{')
		if open < 0 {
			return "", false
		}
		open += start
		if end, ok := matchObject(blob, open); ok {
			candidate := blob[open : end+1]
			if json.Valid([]byte(candidate)) {
				return candidate, true
			}
			start = open + 1
			continue
		}
		start = open + 1
	}
	return "", false
}

// matchObject returns the index of the brace closing the object opened
// at start, or false when the blob ends first.
func matchObject(blob string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(blob); i++ {
		c := blob[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

func orderRootFirst(roots []string, rootID string) {
	for i, id := range roots {
		if id == rootID && i != 0 {
			roots[0], roots[i] = roots[i], roots[0]
			return
		}
	}
}
