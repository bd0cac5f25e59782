// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package page implements the canonical mutable scene graph for the
// page builder: the [Page] arena of elements and the [Store] that
// exposes all structural mutation operations with undo checkpoints.
//
// The element map is the single source of truth. Every reference
// between nodes is an id, never a node-to-node pointer, which makes
// snapshots a map copy and rules out retained reference cycles.
package page

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"stencilui.org/stencil/element"
)

// Settings are page-level presentation settings carried on the page.
type Settings struct {
	Title            string `json:"title,omitempty"`
	Favicon          string `json:"favicon,omitempty"`
	CanvasBackground string `json:"canvasBackground,omitempty"`
	CustomCSS        string `json:"customCss,omitempty"`
}

// SEO is the page's search metadata, carried but not interpreted here.
type SEO struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	OGImage     string   `json:"ogImage,omitempty"`
}

// Page is one page document: the sole owner of all of its elements.
type Page struct {
	ID            string                      `json:"id"`
	RootElementID string                      `json:"rootElementId"`
	Elements      map[string]*element.Element `json:"elements"`
	Settings      Settings                    `json:"settings"`
	SEO           SEO                         `json:"seo"`
}

// New returns a new page with a single root frame. The root is created
// once here and is never deleted or reparented.
func New(title string) *Page {
	root := element.New(element.Frame)
	root.Name = "Page"
	root.Size.Width = element.Dimension{Mode: element.FillParent}
	root.Size.Height = element.Dimension{Mode: element.HugContent}
	return &Page{
		ID:            uuid.NewString(),
		RootElementID: root.ID,
		Elements:      map[string]*element.Element{root.ID: root},
		Settings:      Settings{Title: title},
	}
}

// Root returns the page's root element.
func (p *Page) Root() *element.Element {
	return p.Elements[p.RootElementID]
}

// Element returns the element with the given id, or nil if absent.
func (p *Page) Element(id string) *element.Element {
	return p.Elements[id]
}

// Clone returns a deep copy of the page, used for undo snapshots and
// duplication. Cloning is a map copy plus a deep per-element copy; the
// arena design makes this the whole story.
func (p *Page) Clone() *Page {
	np := &Page{
		ID:            p.ID,
		RootElementID: p.RootElementID,
		Elements:      make(map[string]*element.Element, len(p.Elements)),
		Settings:      p.Settings,
		SEO:           p.SEO,
	}
	np.SEO.Keywords = append([]string(nil), p.SEO.Keywords...)
	for id, el := range p.Elements {
		np.Elements[id] = cloneElement(el)
	}
	return np
}

// cloneElement deep-copies one element, including nested pointers,
// slices, and the breakpoint override map.
func cloneElement(el *element.Element) *element.Element {
	ne := &element.Element{}
	if err := copier.CopyWithOption(ne, el, copier.Option{DeepCopy: true}); err != nil {
		// copier only fails on invalid input types, which a populated
		// element can't be; fall back to a shallow copy rather than
		// losing the node.
		cp := *el
		ne = &cp
	}
	if el.Children != nil && ne.Children == nil {
		ne.Children = []string{}
	}
	return ne
}
