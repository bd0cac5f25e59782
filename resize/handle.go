// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resize

// Handle is one of the eight resize handles around a selected element:
// four corners and four edges.
type Handle int32

const (
	NW Handle = iota
	N
	NE
	E
	SE
	S
	SW
	W
)

var handleNames = map[Handle]string{
	NW: "nw", N: "n", NE: "ne", E: "e",
	SE: "se", S: "s", SW: "sw", W: "w",
}

func (h Handle) String() string { return handleNames[h] }

// TouchesLeft returns whether the handle moves the left edge.
func (h Handle) TouchesLeft() bool {
	return h == NW || h == W || h == SW
}

// TouchesRight returns whether the handle moves the right edge.
func (h Handle) TouchesRight() bool {
	return h == NE || h == E || h == SE
}

// TouchesTop returns whether the handle moves the top edge.
func (h Handle) TouchesTop() bool {
	return h == NW || h == N || h == NE
}

// TouchesBottom returns whether the handle moves the bottom edge.
func (h Handle) TouchesBottom() bool {
	return h == SW || h == S || h == SE
}

// Horizontal returns whether the handle changes width.
func (h Handle) Horizontal() bool {
	return h.TouchesLeft() || h.TouchesRight()
}

// Vertical returns whether the handle changes height.
func (h Handle) Vertical() bool {
	return h.TouchesTop() || h.TouchesBottom()
}

// Cursor returns the CSS cursor affordance owned by the handle.
func (h Handle) Cursor() string {
	switch h {
	case NW, SE:
		return "nwse-resize"
	case NE, SW:
		return "nesw-resize"
	case N, S:
		return "ns-resize"
	default:
		return "ew-resize"
	}
}
