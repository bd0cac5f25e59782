// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(5), Clamp(5, 0, 10))
	assert.Equal(t, float32(0), Clamp(-1, 0, 10))
	assert.Equal(t, float32(10), Clamp(11, 0, 10))
}

func TestFinite(t *testing.T) {
	assert.Equal(t, float32(2), Finite(2, 7))
	assert.Equal(t, float32(7), Finite(NaN(), 7))
	assert.Equal(t, float32(7), Finite(Inf(1), 7))
	assert.Equal(t, float32(7), Finite(Inf(-1), 7))
}

func TestVector2Ops(t *testing.T) {
	a := Vec2(1, 2)
	b := Vec2(3, 5)
	assert.Equal(t, Vec2(4, 7), a.Add(b))
	assert.Equal(t, Vec2(-2, -3), a.Sub(b))
	assert.Equal(t, Vec2(3, 10), a.Mul(b))
	assert.Equal(t, Vec2(2, 4), a.MulScalar(2))
	assert.Equal(t, Vec2(1.5, 2.5), b.DivScalar(2))
	assert.Equal(t, float32(5), Vec2(3, 4).Length())
	assert.Equal(t, float32(5), Vec2(0, 0).DistanceTo(Vec2(3, 4)))
	assert.True(t, a.IsFinite())
	assert.False(t, Vec2(NaN(), 0).IsFinite())
}

func TestBox2Basics(t *testing.T) {
	b := B2FromPosSize(Vec2(10, 20), Vec2(30, 40))
	assert.Equal(t, Vec2(10, 20), b.Min)
	assert.Equal(t, Vec2(40, 60), b.Max)
	assert.Equal(t, Vec2(30, 40), b.Size())
	assert.Equal(t, Vec2(25, 40), b.Center())
	assert.Equal(t, float32(1200), b.Area())
	assert.False(t, b.IsEmpty())
	assert.True(t, B2Empty().IsEmpty())
}

func TestBox2Canon(t *testing.T) {
	b := Box2{Min: Vec2(40, 60), Max: Vec2(10, 20)}.Canon()
	assert.Equal(t, Vec2(10, 20), b.Min)
	assert.Equal(t, Vec2(40, 60), b.Max)
}

func TestBox2Contains(t *testing.T) {
	b := B2(0, 0, 100, 100)
	assert.True(t, b.ContainsPoint(Vec2(50, 50)))
	assert.True(t, b.ContainsPoint(Vec2(0, 0)))
	assert.True(t, b.ContainsPoint(Vec2(100, 100)))
	assert.False(t, b.ContainsPoint(Vec2(101, 50)))
	assert.True(t, b.ContainsBox(B2(10, 10, 90, 90)))
	assert.False(t, b.ContainsBox(B2(10, 10, 110, 90)))
}

func TestBox2Intersects(t *testing.T) {
	b := B2(0, 0, 100, 100)
	assert.True(t, b.IntersectsBox(B2(50, 50, 150, 150)))
	// Touching edges count as intersecting.
	assert.True(t, b.IntersectsBox(B2(100, 0, 200, 100)))
	assert.False(t, b.IntersectsBox(B2(101, 0, 200, 100)))
}

func TestBox2UnionIntersect(t *testing.T) {
	a := B2(0, 0, 50, 50)
	b := B2(25, 25, 100, 100)
	assert.Equal(t, B2(0, 0, 100, 100), a.Union(b))
	assert.Equal(t, B2(25, 25, 50, 50), a.Intersect(b))
	assert.Equal(t, a, a.Union(B2Empty()))
	assert.Equal(t, a, B2Empty().Union(a))
}

func TestBox2ExpandByPoint(t *testing.T) {
	b := B2Empty()
	b.ExpandByPoint(Vec2(5, 5))
	b.ExpandByPoint(Vec2(-3, 10))
	assert.Equal(t, Vec2(-3, 5), b.Min)
	assert.Equal(t, Vec2(5, 10), b.Max)
}

func TestBox2Translate(t *testing.T) {
	b := B2(0, 0, 10, 10).Translate(Vec2(5, -5))
	assert.Equal(t, B2(5, -5, 15, 5), b)
}
