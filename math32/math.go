// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based 2D vector and bounding-box math
// package for canvas geometry.
package math32

import (
	"math"

	"github.com/chewxy/math32"
)

// These are mostly just wrappers around chewxy/math32, which has
// some optimized implementations.

// Infinity is positive infinity.
var Infinity = float32(math.Inf(1))

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Min returns the smaller of the two values.
func Min(x, y float32) float32 {
	return math32.Min(x, y)
}

// Max returns the larger of the two values.
func Max(x, y float32) float32 {
	return math32.Max(x, y)
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float32) float32 {
	return math32.Ceil(x)
}

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 {
	return math32.Floor(x)
}

// Round returns the nearest integer, rounding half away from zero.
func Round(x float32) float32 {
	return math32.Round(x)
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// NaN returns a "not-a-number" value.
func NaN() float32 {
	return math32.NaN()
}

// Inf returns an infinity, according to sign.
func Inf(sign int) float32 {
	return math32.Inf(sign)
}

// IsNaN reports whether x is a "not-a-number" value.
func IsNaN(x float32) bool {
	return math32.IsNaN(x)
}

// IsInf reports whether x is an infinity, according to sign.
func IsInf(x float32, sign int) bool {
	return math32.IsInf(x, sign)
}

// Clamp returns x clamped to the range [min, max].
func Clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

// Finite returns x if it is a finite number, and fallback otherwise.
// It is the standard guard against degenerate geometry values.
func Finite(x, fallback float32) float32 {
	if math32.IsNaN(x) || math32.IsInf(x, 0) {
		return fallback
	}
	return x
}
