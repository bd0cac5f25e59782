// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sides provides flexible representation of box sides
// or corners, with either a single value for all, or different values
// for subsets.
package sides

import (
	"stencilui.org/stencil/math32"
)

// Sides contains values for each side or corner of a box.
// If Sides contains sides, the struct field names correspond
// directly to the side values (ie: Top = top side value).
// If Sides contains corners, the struct field names correspond
// to the corners as follows: Top = top left, Right = top right,
// Bottom = bottom right, Left = bottom left.
type Sides[T any] struct {

	// top/top-left value
	Top T `json:"top"`

	// right/top-right value
	Right T `json:"right"`

	// bottom/bottom-right value
	Bottom T `json:"bottom"`

	// left/bottom-left value
	Left T `json:"left"`
}

// New is a helper that creates new sides/corners of the given type
// and calls Set on them with the given values.
func New[T any](vals ...T) Sides[T] {
	s := Sides[T]{}
	s.Set(vals...)
	return s
}

// Set sets the values of the sides/corners from the given list of 0 to 4 values.
// If 0 values are provided, all sides/corners are set to the zero value of the type.
// If 1 value is provided, all sides/corners are set to that value.
// If 2 values are provided, the top/top-left and bottom/bottom-right are set to the
// first value and the right/top-right and left/bottom-left are set to the second value.
// If 3 values are provided, the top/top-left is set to the first value,
// the right/top-right and left/bottom-left are set to the second value,
// and the bottom/bottom-right is set to the third value.
// If 4 values are provided, they are used as given in top, right, bottom, left order.
// This behavior is based on the CSS multi-side/corner setting syntax,
// like that with padding and border-radius.
func (s *Sides[T]) Set(vals ...T) *Sides[T] {
	switch len(vals) {
	case 0:
		var zval T
		s.SetAll(zval)
	case 1:
		s.SetAll(vals[0])
	case 2:
		s.SetVertical(vals[0])
		s.SetHorizontal(vals[1])
	case 3:
		s.Top = vals[0]
		s.SetHorizontal(vals[1])
		s.Bottom = vals[2]
	case 4:
		s.Top = vals[0]
		s.Right = vals[1]
		s.Bottom = vals[2]
		s.Left = vals[3]
	default:
		// Extra values beyond the CSS four are ignored.
		s.Top = vals[0]
		s.Right = vals[1]
		s.Bottom = vals[2]
		s.Left = vals[3]
	}
	return s
}

// SetVertical sets the values for the sides/corners in the
// vertical/diagonally descending direction
// (top/top-left and bottom/bottom-right) to the given value.
func (s *Sides[T]) SetVertical(val T) *Sides[T] {
	s.Top = val
	s.Bottom = val
	return s
}

// SetHorizontal sets the values for the sides/corners in the
// horizontal/diagonally ascending direction
// (right/top-right and left/bottom-left) to the given value.
func (s *Sides[T]) SetHorizontal(val T) *Sides[T] {
	s.Right = val
	s.Left = val
	return s
}

// SetAll sets the values for all of the sides/corners
// to the given value.
func (s *Sides[T]) SetAll(val T) *Sides[T] {
	s.Top = val
	s.Right = val
	s.Bottom = val
	s.Left = val
	return s
}

// AreSame returns whether all of the sides/corners are the same.
func AreSame[T comparable](s Sides[T]) bool {
	return s.Right == s.Top && s.Bottom == s.Top && s.Left == s.Top
}

// AreZero returns whether all of the sides/corners are equal to zero.
func AreZero[T comparable](s Sides[T]) bool {
	var zv T
	return s.Top == zv && s.Right == zv && s.Bottom == zv && s.Left == zv
}

// Floats contains float32 values for each side/corner of a box.
type Floats struct {
	Sides[float32]
}

// NewFloats is a helper that creates new side/corner floats
// and calls Set on them with the given values.
func NewFloats(vals ...float32) Floats {
	s := Sides[float32]{}
	s.Set(vals...)
	return Floats{s}
}

// Add adds the side floats to the other side floats and returns the result.
func (sf Floats) Add(other Floats) Floats {
	return NewFloats(
		sf.Top+other.Top,
		sf.Right+other.Right,
		sf.Bottom+other.Bottom,
		sf.Left+other.Left,
	)
}

// Max returns a new side floats containing the
// maximum values of the two side floats.
func (sf Floats) Max(other Floats) Floats {
	return NewFloats(
		math32.Max(sf.Top, other.Top),
		math32.Max(sf.Right, other.Right),
		math32.Max(sf.Bottom, other.Bottom),
		math32.Max(sf.Left, other.Left),
	)
}

// Pos returns the position offset caused by the side values (Left, Top).
func (sf Floats) Pos() math32.Vector2 {
	return math32.Vec2(sf.Left, sf.Top)
}

// Size returns the total size the side values take up
// (Left + Right, Top + Bottom).
func (sf Floats) Size() math32.Vector2 {
	return math32.Vec2(sf.Left+sf.Right, sf.Top+sf.Bottom)
}
