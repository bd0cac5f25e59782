// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"errors"

	"go.uber.org/zap"

	"stencilui.org/stencil/canvas"
)

// Command is one editor-level action, invokable from menus, toolbars,
// or the keyboard surface.
type Command int32

const (
	SelectAll Command = iota
	Deselect
	DeleteSelection
	DuplicateSelection
	Undo
	Redo
	ZoomIn
	ZoomOut
	ZoomReset
	ZoomFit
	UseSelectTool
	UsePanTool
)

var commandNames = map[Command]string{
	SelectAll:          "select-all",
	Deselect:           "deselect",
	DeleteSelection:    "delete-selection",
	DuplicateSelection: "duplicate-selection",
	Undo:               "undo",
	Redo:               "redo",
	ZoomIn:             "zoom-in",
	ZoomOut:            "zoom-out",
	ZoomReset:          "zoom-reset",
	ZoomFit:            "zoom-fit",
	UseSelectTool:      "use-select-tool",
	UsePanTool:         "use-pan-tool",
}

func (c Command) String() string {
	if n, ok := commandNames[c]; ok {
		return n
	}
	return "unknown"
}

// ErrUnknownCommand is returned by [Editor.Run] for commands outside
// the defined set.
var ErrUnknownCommand = errors.New("editor: unknown command")

// Run executes one command against the editor state. Commands that
// mutate the tree each form exactly one undo step.
func (ed *Editor) Run(cmd Command) error {
	ed.log.Debug("command", zap.String("name", cmd.String()))
	switch cmd {
	case SelectAll:
		pg := ed.Store.Page()
		var ids []string
		for _, id := range pg.Subtree(pg.RootElementID) {
			el := pg.Element(id)
			if id == pg.RootElementID || el == nil || el.Locked || el.Hidden {
				continue
			}
			ids = append(ids, id)
		}
		ed.Selection.SelectAll(ids)
	case Deselect:
		ed.Selection.Clear()
	case DeleteSelection:
		ids := ed.Selection.IDs()
		if len(ids) == 0 {
			return nil
		}
		ed.Store.Begin("delete selection")
		for _, id := range ids {
			if err := ed.Store.Delete(id); err != nil {
				ed.Store.Cancel()
				return err
			}
			ed.ClearElementBounds(id)
		}
		ed.Store.End()
		ed.Selection.Clear()
	case DuplicateSelection:
		ids := ed.Selection.IDs()
		if len(ids) == 0 {
			return nil
		}
		ed.Store.Begin("duplicate selection")
		var copies []string
		for _, id := range ids {
			dup, err := ed.Store.Duplicate(id)
			if err != nil {
				ed.Store.Cancel()
				return err
			}
			copies = append(copies, dup.ID)
		}
		ed.Store.End()
		ed.Selection.SelectAll(copies)
	case Undo:
		ed.Store.Undo()
		ed.pruneSelection()
	case Redo:
		ed.Store.Redo()
		ed.pruneSelection()
	case ZoomIn:
		ed.Viewport.ZoomIn()
	case ZoomOut:
		ed.Viewport.ZoomOut()
	case ZoomReset:
		ed.Viewport.ZoomReset()
	case ZoomFit:
		ed.Viewport.FitToContent(ed.ContentBounds())
	case UseSelectTool:
		ed.Viewport.Tool = canvas.ToolSelect
	case UsePanTool:
		ed.Viewport.Tool = canvas.ToolPan
	default:
		return ErrUnknownCommand
	}
	return nil
}

// pruneSelection drops selected ids that no longer exist after an
// undo or redo replaced the page.
func (ed *Editor) pruneSelection() {
	for _, id := range ed.Selection.IDs() {
		if ed.Store.Element(id) == nil {
			ed.Selection.Remove(id)
		}
	}
}

// Modifiers are the held modifier keys reported with pointer and
// keyboard events.
type Modifiers struct {
	Shift bool
	// Mod is the platform primary modifier, ctrl or cmd.
	Mod bool
}

// KeyDown maps the keyboard surface onto commands and interaction
// state. Key names follow the DOM convention in lower case ("a", "+",
// "escape", "delete", " "). It reports whether the key was consumed.
func (ed *Editor) KeyDown(key string, mods Modifiers) bool {
	if key == " " {
		ed.Viewport.SetTemporaryPan(true)
		return true
	}
	if mods.Mod {
		switch key {
		case "a":
			return ed.run(SelectAll)
		case "d":
			return ed.run(DuplicateSelection)
		case "z":
			if mods.Shift {
				return ed.run(Redo)
			}
			return ed.run(Undo)
		}
		return false
	}
	switch key {
	case "v":
		return ed.run(UseSelectTool)
	case "h":
		return ed.run(UsePanTool)
	case "escape":
		if ed.Resizer.Active() {
			ed.CancelResize()
			return true
		}
		return ed.run(Deselect)
	case "delete", "backspace":
		return ed.run(DeleteSelection)
	case "+", "=":
		return ed.run(ZoomIn)
	case "-":
		return ed.run(ZoomOut)
	case "0":
		return ed.run(ZoomReset)
	case "1":
		return ed.run(ZoomFit)
	}
	return false
}

// KeyUp releases held-key state; currently only the temporary pan.
func (ed *Editor) KeyUp(key string) bool {
	if key == " " {
		ed.Viewport.SetTemporaryPan(false)
		return true
	}
	return false
}

func (ed *Editor) run(cmd Command) bool {
	if err := ed.Run(cmd); err != nil {
		ed.log.Warn("command failed", zap.String("name", cmd.String()), zap.Error(err))
	}
	return true
}
