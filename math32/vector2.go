// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Vector2 is a 2D vector or point with X and Y components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// Vector2Scalar returns a new [Vector2] with all components set to the
// given scalar value.
func Vector2Scalar(scalar float32) Vector2 {
	return Vector2{scalar, scalar}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// SetScalar sets all components to the given scalar value.
func (v *Vector2) SetScalar(scalar float32) {
	v.X = scalar
	v.Y = scalar
}

// Add adds the other vector to this one and returns the result.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vec2(v.X+other.X, v.Y+other.Y)
}

// AddScalar adds the scalar to each component and returns the result.
func (v Vector2) AddScalar(scalar float32) Vector2 {
	return Vec2(v.X+scalar, v.Y+scalar)
}

// Sub subtracts the other vector from this one and returns the result.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vec2(v.X-other.X, v.Y-other.Y)
}

// SubScalar subtracts the scalar from each component and returns the result.
func (v Vector2) SubScalar(scalar float32) Vector2 {
	return Vec2(v.X-scalar, v.Y-scalar)
}

// Mul multiplies each component by the corresponding component of the
// other vector and returns the result.
func (v Vector2) Mul(other Vector2) Vector2 {
	return Vec2(v.X*other.X, v.Y*other.Y)
}

// MulScalar multiplies each component by the scalar and returns the result.
func (v Vector2) MulScalar(scalar float32) Vector2 {
	return Vec2(v.X*scalar, v.Y*scalar)
}

// Div divides each component by the corresponding component of the
// other vector and returns the result.
func (v Vector2) Div(other Vector2) Vector2 {
	return Vec2(v.X/other.X, v.Y/other.Y)
}

// DivScalar divides each component by the scalar and returns the result.
func (v Vector2) DivScalar(scalar float32) Vector2 {
	return Vec2(v.X/scalar, v.Y/scalar)
}

// Negate returns the vector with each component negated.
func (v Vector2) Negate() Vector2 {
	return Vec2(-v.X, -v.Y)
}

// Min returns a vector with the minimum components of the two vectors.
func (v Vector2) Min(other Vector2) Vector2 {
	return Vec2(Min(v.X, other.X), Min(v.Y, other.Y))
}

// Max returns a vector with the maximum components of the two vectors.
func (v Vector2) Max(other Vector2) Vector2 {
	return Vec2(Max(v.X, other.X), Max(v.Y, other.Y))
}

// SetMin sets each component to the minimum of itself and the
// corresponding component of the other vector.
func (v *Vector2) SetMin(other Vector2) {
	v.X = Min(v.X, other.X)
	v.Y = Min(v.Y, other.Y)
}

// SetMax sets each component to the maximum of itself and the
// corresponding component of the other vector.
func (v *Vector2) SetMax(other Vector2) {
	v.X = Max(v.X, other.X)
	v.Y = Max(v.Y, other.Y)
}

// Clamp clamps each component to the range given by min and max.
func (v *Vector2) Clamp(min, max Vector2) {
	v.X = Clamp(v.X, min.X, max.X)
	v.Y = Clamp(v.Y, min.Y, max.Y)
}

// Abs returns the vector with the absolute value of each component.
func (v Vector2) Abs() Vector2 {
	return Vec2(Abs(v.X), Abs(v.Y))
}

// Length returns the length (magnitude) of the vector.
func (v Vector2) Length() float32 {
	return Sqrt(v.X*v.X + v.Y*v.Y)
}

// DistanceTo returns the distance from this point to the other point.
func (v Vector2) DistanceTo(other Vector2) float32 {
	return v.Sub(other).Length()
}

// IsFinite reports whether both components are finite numbers.
func (v Vector2) IsFinite() bool {
	return !IsNaN(v.X) && !IsInf(v.X, 0) && !IsNaN(v.Y) && !IsInf(v.Y, 0)
}
