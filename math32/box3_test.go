// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox3(t *testing.T) {
	b := B3Empty()
	assert.True(t, b.IsEmpty())

	b.ExpandByPoint(Vec3(1, 2, 3))
	b.ExpandByPoint(Vec3(-1, 0, 5))
	assert.False(t, b.IsEmpty())
	assert.Equal(t, Vec3(-1, 0, 3), b.Min)
	assert.Equal(t, Vec3(1, 2, 5), b.Max)
	assert.Equal(t, Vec3(0, 1, 4), b.Center())
	assert.Equal(t, Vec3(2, 2, 2), b.Size())

	assert.True(t, b.ContainsPoint(Vec3(0, 1, 4)))
	assert.False(t, b.ContainsPoint(Vec3(2, 1, 4)))

	sp := Box3{}
	sp.SetFromPoints([]Vector3{{0, 0, 0}, {2, -1, 1}, {1, 3, -2}})
	assert.Equal(t, Vec3(0, -1, -2), sp.Min)
	assert.Equal(t, Vec3(2, 3, 1), sp.Max)

	cs := Box3{}
	cs.SetFromCenterAndSize(Vec3(1, 1, 1), Vec3(2, 4, 6))
	assert.Equal(t, Vec3(0, -1, -2), cs.Min)
	assert.Equal(t, Vec3(2, 3, 4), cs.Max)

	assert.True(t, b.IntersectsBox(B3(0, 0, 0, 3, 3, 4)))
	assert.False(t, b.IntersectsBox(B3(2, 0, 0, 3, 3, 4)))

	un := b.Union(B3(0, 0, 0, 3, 3, 4))
	assert.Equal(t, Vec3(-1, 0, 0), un.Min)
	assert.Equal(t, Vec3(3, 3, 5), un.Max)

	in := b.Intersect(B3(0, 0, 0, 3, 3, 4))
	assert.Equal(t, Vec3(0, 0, 3), in.Min)
	assert.Equal(t, Vec3(1, 2, 4), in.Max)

	assert.Equal(t, Vec3(1, 1, 4), b.ClampPoint(Vec3(2, 1, 4)))
	assert.Equal(t, float32(1), b.DistanceToPoint(Vec3(2, 1, 4)))
}

func TestBox3Transform(t *testing.T) {
	b := B3(0, 0, 0, 1, 2, 3)

	tb := b.Translate(Vec3(1, 1, 1))
	assert.Equal(t, Vec3(1, 1, 1), tb.Min)
	assert.Equal(t, Vec3(2, 3, 4), tb.Max)

	var tm Matrix4
	tm.SetTranslation(1, 1, 1)
	assert.Equal(t, tb, b.MulMatrix4(&tm))

	// rotating 90 degrees about y swings the z extent into x
	q := NewQuatAxisAngle(Vec3(0, 1, 0), DegToRad(90))
	rb := b.MulQuat(q)
	TolAssertEqualVector(t, StandardTol, Vec3(0, 0, -1), rb.Min)
	TolAssertEqualVector(t, StandardTol, Vec3(3, 2, 0), rb.Max)
}
