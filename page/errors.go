// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package page

import "errors"

var (
	// ErrInvalidParent is returned when an operation references a parent
	// id that does not exist in the page. The tree is left unchanged.
	ErrInvalidParent = errors.New("page: invalid parent")

	// ErrCyclicMove is returned when a move would make an element its
	// own ancestor. The tree is left unchanged.
	ErrCyclicMove = errors.New("page: cyclic move")

	// ErrRootDeletionForbidden is returned when a delete targets the
	// page root, which is created once and never deleted.
	ErrRootDeletionForbidden = errors.New("page: root deletion forbidden")

	// ErrRootImmutable is returned when a move or duplicate targets the
	// page root, which is never reparented or copied.
	ErrRootImmutable = errors.New("page: root cannot be moved or duplicated")

	// ErrNotFound is returned when an operation that requires an
	// existing element references an unknown id.
	ErrNotFound = errors.New("page: element not found")

	// ErrDuplicateID is returned when an add would overwrite an element
	// id already present in the page.
	ErrDuplicateID = errors.New("page: duplicate element id")
)
