// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"go.uber.org/zap"

	"stencilui.org/stencil/canvas"
	"stencilui.org/stencil/element"
	"stencilui.org/stencil/math32"
	"stencilui.org/stencil/page"
	"stencilui.org/stencil/resize"
	"stencilui.org/stencil/selection"
)

// pointerState is the explicit pointer interaction state machine. Each
// interaction runs pointer-down to pointer-up and owns the pointer for
// its duration.
type pointerState int32

const (
	pointerIdle pointerState = iota
	pointerPanning
	pointerMarquee
	pointerDragging
	pointerResizing
)

// dragState tracks an element drag-move: the grabbed element, the
// pointer's document-space start, and the live delta previewed by the
// presentation layer until release commits it.
type dragState struct {
	ids   []string
	start math32.Vector2
	delta math32.Vector2
}

// PointerDown begins a pointer interaction at the screen point. With
// the pan tool (or temporary pan) it starts a pan; with the select
// tool it hits an element and selects it (per the modifiers) and arms
// a drag, or starts a marquee on empty canvas.
func (ed *Editor) PointerDown(p math32.Vector2, mods Modifiers) {
	if ed.pointer != pointerIdle {
		return
	}
	if ed.Viewport.EffectiveTool() == canvas.ToolPan {
		ed.pointer = pointerPanning
		ed.drag.start = p
		return
	}
	id := ed.HitTest(p)
	if id == "" {
		if !mods.Shift && !mods.Mod {
			ed.Selection.Clear()
		}
		ed.marquee = selection.StartMarquee(p)
		ed.pointer = pointerMarquee
		return
	}
	switch {
	case mods.Mod:
		ed.Selection.Select(id, selection.Toggle)
	case mods.Shift:
		ed.Selection.Select(id, selection.Add)
	case !ed.Selection.Contains(id):
		ed.Selection.Select(id, selection.Replace)
	}
	ed.drag = dragState{
		ids:   ed.Selection.IDs(),
		start: ed.Viewport.Transform.ScreenToDocument(p),
	}
	ed.pointer = pointerDragging
}

// PointerMove advances the active interaction with a new screen point.
func (ed *Editor) PointerMove(p math32.Vector2, mods Modifiers) {
	switch ed.pointer {
	case pointerPanning:
		ed.Viewport.Pan(p.Sub(ed.drag.start))
		ed.drag.start = p
	case pointerMarquee:
		ed.marquee.MoveTo(p)
	case pointerDragging:
		ed.drag.delta = ed.Viewport.Transform.ScreenToDocument(p).Sub(ed.drag.start)
	case pointerResizing:
		ed.Resizer.Move(ed.Viewport.Transform.ScreenToDocument(p), mods.Shift)
	default:
		ed.Selection.SetHover(ed.HitTest(p))
	}
}

// PointerUp ends the active interaction. A marquee resolves against
// the rendered elements; a drag commits one position update per moved
// element as a single undo step; a resize commits its final geometry.
func (ed *Editor) PointerUp(p math32.Vector2, mods Modifiers) {
	switch ed.pointer {
	case pointerMarquee:
		ed.marquee.MoveTo(p)
		ed.Selection.Release(ed.marquee, ed.candidates())
		ed.marquee = selection.Marquee{}
	case pointerDragging:
		ed.drag.delta = ed.Viewport.Transform.ScreenToDocument(p).Sub(ed.drag.start)
		ed.commitDrag()
	case pointerResizing:
		ed.finishResize(p, mods)
	}
	ed.pointer = pointerIdle
	ed.drag = dragState{}
}

// DragDelta returns the live document-space delta of an active element
// drag for the presentation layer to preview.
func (ed *Editor) DragDelta() (math32.Vector2, bool) {
	if ed.pointer != pointerDragging {
		return math32.Vector2{}, false
	}
	return ed.drag.delta, true
}

// commitDrag applies the accumulated delta to every dragged element
// with an absolute or fixed position, as one undo step. Flow-, grid-,
// and flex-placed elements keep their computed slot.
func (ed *Editor) commitDrag() {
	d := ed.drag.delta
	if d.X == 0 && d.Y == 0 {
		return
	}
	moved := 0
	ed.Store.Begin("move elements")
	for _, id := range ed.drag.ids {
		el := ed.Store.Element(id)
		if el == nil || el.Locked {
			continue
		}
		mode := el.Position.Mode
		if mode != element.Absolute && mode != element.FixedPosition {
			continue
		}
		ox, oy := el.Position.Offset()
		pos := el.Position
		pos.Left = ptr(ox + d.X)
		pos.Top = ptr(oy + d.Y)
		ed.Store.Update(id, page.Patch{Position: &pos})
		moved++
	}
	if moved == 0 {
		ed.Store.Cancel()
		return
	}
	ed.Store.End()
	ed.log.Debug("drag committed",
		zap.Int("moved", moved),
		zap.Float32("dx", d.X), zap.Float32("dy", d.Y))
}

// StartResize begins resizing the element from the given handle at the
// screen point. The element must be selected, not locked, and have
// reported geometry. It opens one undo step that Release closes and
// Cancel discards.
func (ed *Editor) StartResize(id string, h resize.Handle, p math32.Vector2) error {
	if ed.pointer != pointerIdle {
		return resize.ErrActive
	}
	if ed.Selection.Len() > 1 {
		return resize.ErrMultiSelection
	}
	el := ed.Store.Element(id)
	if el == nil {
		return page.ErrNotFound
	}
	if el.Locked {
		return resize.ErrLocked
	}
	bounds, ok := ed.DocumentBounds(id)
	if !ok {
		return page.ErrNotFound
	}
	limits := resize.Limits{
		MinWidth:    orDefault(el.Size.MinWidth, ed.Settings.Resize.MinSize),
		MaxWidth:    orDefault(el.Size.MaxWidth, ed.Settings.Resize.MaxSize),
		MinHeight:   orDefault(el.Size.MinHeight, ed.Settings.Resize.MinSize),
		MaxHeight:   orDefault(el.Size.MaxHeight, ed.Settings.Resize.MaxSize),
		AspectRatio: el.Size.AspectRatio,
	}
	doc := ed.Viewport.Transform.ScreenToDocument(p)
	if err := ed.Resizer.Start(id, h, bounds, doc, limits); err != nil {
		return err
	}
	ed.Store.Begin("resize " + el.Type.String())
	ed.pointer = pointerResizing
	return nil
}

// finishResize commits the final geometry as one size/position update
// inside the undo step opened by StartResize.
func (ed *Editor) finishResize(p math32.Vector2, mods Modifiers) {
	res, ok := ed.Resizer.Release(ed.Viewport.Transform.ScreenToDocument(p), mods.Shift)
	if !ok {
		ed.Store.Cancel()
		return
	}
	el := ed.Store.Element(res.ElementID)
	if el == nil {
		ed.Store.Cancel()
		return
	}
	size := el.Size
	size.Width = element.Px(res.Size.X)
	size.Height = element.Px(res.Size.Y)
	patch := page.Patch{Size: &size}
	if el.Position.Mode == element.Absolute || el.Position.Mode == element.FixedPosition {
		pos := el.Position
		pos.Left = ptr(res.Position.X)
		pos.Top = ptr(res.Position.Y)
		patch.Position = &pos
	}
	ed.Store.Update(res.ElementID, patch)
	ed.Store.End()
}

// CancelResize aborts an active resize, dropping both the transient
// geometry and the pending undo step.
func (ed *Editor) CancelResize() {
	if ed.pointer != pointerResizing {
		return
	}
	ed.Resizer.Cancel()
	ed.Store.Cancel()
	ed.pointer = pointerIdle
}

// Wheel zooms around the pointer, keeping the document point under the
// cursor fixed.
func (ed *Editor) Wheel(p math32.Vector2, delta float32) {
	ed.Viewport.Wheel(p, delta)
}

func ptr[T any](v T) *T { return &v }

func orDefault(v, def float32) float32 {
	if v <= 0 {
		return def
	}
	return v
}
