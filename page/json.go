// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package page

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"stencilui.org/stencil/element"
)

// json is the configured jsoniter instance used for page snapshots.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Marshal serializes the full page snapshot for the persistence
// collaborator. The engine performs no partial or incremental
// persistence; a snapshot is always the whole page.
func Marshal(p *Page) ([]byte, error) {
	return json.Marshal(p)
}

// MarshalIndent is [Marshal] with human-readable indentation.
func MarshalIndent(p *Page) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// Unmarshal hydrates a page from a stored snapshot, backfills any
// missing element defaults, and repairs structural damage, returning
// the repairs performed. The returned page is guaranteed to satisfy
// [Page.Validate].
func Unmarshal(data []byte) (*Page, []Repair, error) {
	p := &Page{}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, nil, fmt.Errorf("page: unmarshal snapshot: %w", err)
	}
	if p.Elements == nil {
		p.Elements = map[string]*element.Element{}
	}
	repairs := hydrate(p)
	if err := p.Validate(); err != nil {
		return nil, repairs, fmt.Errorf("page: snapshot invalid after repair: %w", err)
	}
	return p, repairs, nil
}

// hydrate re-establishes a loadable page: element ids are keyed
// consistently, required defaults are present, and the structural
// invariants hold.
func hydrate(p *Page) []Repair {
	var repairs []Repair
	for id, el := range p.Elements {
		if el.ID == "" {
			el.ID = id
		}
		if el.ApplyDefaults() {
			repairs = append(repairs, Repair{ElementID: el.ID, Kind: RepairDefaults,
				Detail: "missing fields backfilled"})
		}
	}
	if p.RootElementID == "" || p.Elements[p.RootElementID] == nil {
		// A snapshot without a usable root gets a fresh root frame with
		// every existing element grafted under it by the repair pass.
		np := New(p.Settings.Title)
		root := np.Root()
		p.RootElementID = root.ID
		p.Elements[root.ID] = root
		repairs = append(repairs, Repair{ElementID: root.ID, Kind: RepairDefaults,
			Detail: "missing root recreated"})
	}
	s := NewStore(p)
	repairs = append(repairs, s.RepairOrphans()...)
	return repairs
}
