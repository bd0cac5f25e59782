// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import "stencilui.org/stencil/math32"

// Grid rendering constants.
const (
	// GridCellSize is the document-unit size of one background grid cell.
	GridCellSize = 8

	// GridVisibleSize is the scaled cell size in screen pixels at which
	// the grid becomes fully visible.
	GridVisibleSize = 10

	// GridFadeRange is the scaled-size range below [GridVisibleSize]
	// over which the grid fades in, to avoid visual noise at low zoom.
	GridFadeRange = 4
)

// GridAlpha returns the background grid opacity in [0, 1] for the
// current scale: 0 while the scaled cell size is below the fade range,
// ramping to 1 once it exceeds the visibility threshold.
func (v *Viewport) GridAlpha() float32 {
	cell := v.gridCell() * v.Transform.Scale
	if cell >= GridVisibleSize {
		return 1
	}
	start := float32(GridVisibleSize - GridFadeRange)
	if cell <= start {
		return 0
	}
	return (cell - start) / GridFadeRange
}

// GridVisible returns whether the grid should be drawn at all at the
// current scale.
func (v *Viewport) GridVisible() bool {
	return v.GridAlpha() > 0
}

// VisibleDocumentBox returns the document-space region currently shown
// by the viewport, used to bound grid and content drawing.
func (v *Viewport) VisibleDocumentBox() math32.Box2 {
	return v.Transform.ScreenToDocumentBox(math32.B2(0, 0, v.Size.X, v.Size.Y))
}
