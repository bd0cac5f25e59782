// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package undo provides a snapshot-based undo / redo manager.
//
// Snapshots are whole-state values captured before the first mutation of
// a user-visible interaction, so that any number of low-level mutations
// performed as part of one interaction collapse into a single undo step.
package undo

// Record is one undo record: the state before an interaction, plus a
// description of the interaction for the user to see.
type Record[T any] struct {

	// Action describes the interaction, such as "resize" or "delete".
	Action string

	// State is the full state captured before the interaction's
	// first mutation.
	State T
}

// Manager manages the undo / redo stacks. The zero value is ready to use.
// It is not safe for concurrent use; all mutation in the engine happens
// on a single logical thread.
type Manager[T any] struct {
	undos []Record[T]
	redos []Record[T]

	// open is whether an interaction checkpoint is currently open, in
	// which case further checkpoints are collapsed into it.
	open bool
}

// Begin opens an interaction checkpoint, pushing the given pre-mutation
// state as a single undo step. Checkpoints requested while a checkpoint
// is open are collapsed into the open one. Any new checkpoint clears
// the redo stack.
func (m *Manager[T]) Begin(action string, state T) {
	if m.open {
		return
	}
	m.undos = append(m.undos, Record[T]{Action: action, State: state})
	m.redos = nil
	m.open = true
}

// End closes the open interaction checkpoint, if any. Subsequent
// mutations start a new undo step.
func (m *Manager[T]) End() {
	m.open = false
}

// Drop discards the open interaction checkpoint without leaving an
// empty undo step, for interactions that were cancelled. It returns the
// dropped pre-mutation state for the caller to restore, and false if no
// checkpoint was open.
func (m *Manager[T]) Drop() (T, bool) {
	if !m.open || len(m.undos) == 0 {
		var zero T
		return zero, false
	}
	m.open = false
	last := m.undos[len(m.undos)-1]
	m.undos = m.undos[:len(m.undos)-1]
	return last.State, true
}

// HasUndo returns whether there is at least one undo step available.
func (m *Manager[T]) HasUndo() bool {
	return len(m.undos) > 0
}

// HasRedo returns whether there is at least one redo step available.
func (m *Manager[T]) HasRedo() bool {
	return len(m.redos) > 0
}

// Undo pops the most recent undo record, pushing the given current
// state onto the redo stack, and returns the state to restore. It
// returns false if there is nothing to undo.
func (m *Manager[T]) Undo(current T) (T, bool) {
	if len(m.undos) == 0 {
		var zero T
		return zero, false
	}
	m.open = false
	last := m.undos[len(m.undos)-1]
	m.undos = m.undos[:len(m.undos)-1]
	m.redos = append(m.redos, Record[T]{Action: last.Action, State: current})
	return last.State, true
}

// Redo pops the most recent redo record, pushing the given current
// state back onto the undo stack, and returns the state to restore. It
// returns false if there is nothing to redo.
func (m *Manager[T]) Redo(current T) (T, bool) {
	if len(m.redos) == 0 {
		var zero T
		return zero, false
	}
	last := m.redos[len(m.redos)-1]
	m.redos = m.redos[:len(m.redos)-1]
	m.undos = append(m.undos, Record[T]{Action: last.Action, State: current})
	return last.State, true
}

// Len returns the number of undo steps currently stacked.
func (m *Manager[T]) Len() int {
	return len(m.undos)
}
