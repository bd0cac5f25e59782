// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package editor ties the engine together into one explicit, passable
// editor state object: the page store, the selection, the viewport,
// and the resize engine, driven through a typed command layer and the
// pointer/keyboard contract of the presentation layer. Nothing here is
// a singleton; multiple editors can coexist for multi-document use and
// for tests.
package editor

import (
	"go.uber.org/zap"

	"stencilui.org/stencil/canvas"
	"stencilui.org/stencil/element"
	"stencilui.org/stencil/fragment"
	"stencilui.org/stencil/math32"
	"stencilui.org/stencil/page"
	"stencilui.org/stencil/render"
	"stencilui.org/stencil/resize"
	"stencilui.org/stencil/selection"
	"stencilui.org/stencil/settings"
)

// Editor is the shared mutable state of one editing session. All
// mutation flows through its methods; the presentation layer renders
// from it and reports events and element geometry back into it.
type Editor struct {
	Store     *page.Store
	Selection *selection.Selection
	Viewport  *canvas.Viewport
	Resizer   *resize.Resizer
	Settings  *settings.Settings
	Composer  render.Composer
	Ingestor  *fragment.Ingestor

	// Breakpoint is the responsive class being edited.
	Breakpoint element.Breakpoint

	log *zap.Logger

	// bounds holds the screen-space rectangle of each rendered element,
	// as reported by the presentation layer after every frame. The
	// selection and resize engines have no rendering of their own and
	// rely entirely on these.
	bounds map[string]math32.Box2

	pointer pointerState
	marquee selection.Marquee
	drag    dragState
}

// New returns an editor for the given page with the given settings;
// nil settings means [settings.Defaults], nil logger means no logging.
func New(p *page.Page, cfg *settings.Settings, log *zap.Logger) *Editor {
	if cfg == nil {
		cfg = settings.Defaults()
	}
	if log == nil {
		log = zap.NewNop()
	}
	store := page.NewStore(p)
	store.SetLogger(log)
	vp := canvas.NewViewport(0, 0)
	vp.MinScale = cfg.Zoom.Min
	vp.MaxScale = cfg.Zoom.Max
	vp.Step = cfg.Zoom.Step
	vp.Margin = cfg.Zoom.FitMargin
	vp.GridCell = cfg.Grid.CellSize
	return &Editor{
		Store:      store,
		Selection:  selection.New(),
		Viewport:   vp,
		Resizer:    &resize.Resizer{},
		Settings:   cfg,
		Composer:   render.Composer{Tokens: cfg.Theme},
		Ingestor:   fragment.NewIngestor(log),
		Breakpoint: element.Desktop,
		log:        log,
		bounds:     map[string]math32.Box2{},
	}
}

// SetViewportSize records the screen size of the canvas surface.
func (ed *Editor) SetViewportSize(width, height float32) {
	ed.Viewport.Size = math32.Vec2(width, height)
}

// SetElementBounds records the rendered screen-space rectangle of one
// element, as reported by the presentation layer.
func (ed *Editor) SetElementBounds(id string, b math32.Box2) {
	ed.bounds[id] = b
}

// ClearElementBounds drops the recorded rectangle for an element that
// is no longer rendered.
func (ed *Editor) ClearElementBounds(id string) {
	delete(ed.bounds, id)
}

// ElementBounds returns the last reported screen-space rectangle for
// the element, reporting false when none is known.
func (ed *Editor) ElementBounds(id string) (math32.Box2, bool) {
	b, ok := ed.bounds[id]
	return b, ok
}

// DocumentBounds returns the element's rectangle in document space,
// derived from its reported screen rectangle and the current
// transform.
func (ed *Editor) DocumentBounds(id string) (math32.Box2, bool) {
	b, ok := ed.bounds[id]
	if !ok {
		return math32.B2Empty(), false
	}
	return ed.Viewport.Transform.ScreenToDocumentBox(b), true
}

// ContentBounds returns the union of all reported element rectangles
// in document space, for fit-to-content.
func (ed *Editor) ContentBounds() math32.Box2 {
	union := math32.B2Empty()
	for _, b := range ed.bounds {
		union = union.Union(ed.Viewport.Transform.ScreenToDocumentBox(b))
	}
	return union
}

// HitTest returns the id of the topmost selectable element under the
// screen point, or empty. The root, locked, and hidden elements are
// not hit; among overlapping elements the deepest one wins, matching
// what the user sees in a nested layout.
func (ed *Editor) HitTest(p math32.Vector2) string {
	pg := ed.Store.Page()
	best := ""
	bestDepth := -1
	for id, b := range ed.bounds {
		if !b.ContainsPoint(p) {
			continue
		}
		el := pg.Element(id)
		if el == nil || id == pg.RootElementID || el.Locked || el.Hidden {
			continue
		}
		if d := pg.Depth(id); d > bestDepth {
			best, bestDepth = id, d
		}
	}
	return best
}

// EffectiveProps resolves the element's configuration at the editor's
// active breakpoint and composes it into concrete render properties
// for the presentation layer.
func (ed *Editor) EffectiveProps(id string) (render.Props, bool) {
	el := ed.Store.Element(id)
	if el == nil {
		return render.Props{}, false
	}
	return ed.Composer.Compose(el.Effective(ed.Breakpoint)), true
}

// SelectionScreenBounds returns the union of the selected elements'
// reported screen rectangles, for drawing selection chrome.
func (ed *Editor) SelectionScreenBounds() math32.Box2 {
	union := math32.B2Empty()
	for _, id := range ed.Selection.IDs() {
		if b, ok := ed.bounds[id]; ok {
			union = union.Union(b)
		}
	}
	return union
}

// Marquee returns the live marquee rectangle while one is active.
func (ed *Editor) Marquee() (math32.Box2, bool) {
	if !ed.marquee.Active {
		return math32.B2Empty(), false
	}
	return ed.marquee.Box(), true
}

// IngestFragment parses a generation blob and grafts it under the
// attachment element (empty means the root), selecting the grafted
// subtree so the user can immediately act on it.
func (ed *Editor) IngestFragment(blob, attachID string) (fragment.Report, error) {
	rep, err := ed.Ingestor.Ingest(ed.Store, blob, attachID)
	if err != nil {
		return rep, err
	}
	if len(rep.Grafted) > 0 {
		ed.Selection.SelectAll(rep.Grafted[:1])
	}
	return rep, nil
}

// candidates builds the marquee candidate list from the reported
// bounds and element flags.
func (ed *Editor) candidates() []selection.Candidate {
	pg := ed.Store.Page()
	out := make([]selection.Candidate, 0, len(ed.bounds))
	for id, b := range ed.bounds {
		el := pg.Element(id)
		if el == nil {
			continue
		}
		out = append(out, selection.Candidate{
			ID:     id,
			Bounds: b,
			Root:   id == pg.RootElementID,
			Locked: el.Locked,
			Hidden: el.Hidden,
		})
	}
	return out
}
