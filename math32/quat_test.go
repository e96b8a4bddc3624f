// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/nightcity/citygpu/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestQuat(t *testing.T) {
	var q Quat
	assert.True(t, q.IsNil())
	q.SetIdentity()
	assert.True(t, q.IsIdentity())

	q = NewQuatAxisAngle(Vec3(0, 0, 1), DegToRad(60))
	aa := q.ToAxisAngle()
	tolassert.EqualTol(t, DegToRad(60), aa.W, StandardTol)
	TolAssertEqualVector(t, StandardTol, Vec3(0, 0, 1), Vec3(aa.X, aa.Y, aa.Z))

	n := NewQuat(1, 2, 3, 4)
	n.Normalize()
	tolassert.EqualTol(t, 1, n.Length(), StandardTol)

	// NormalizeFast is only accurate for nearly-normalized quaternions
	nf := n
	nf.X += 0.01
	nf.NormalizeFast()
	tolassert.EqualTol(t, 1, nf.Length(), 1.0e-3)
}

func TestQuatMul(t *testing.T) {
	vx := Vec3(1, 0, 0)

	// two successive 45 degree rotations are one 90 degree rotation
	q45 := NewQuatAxisAngle(Vec3(0, 1, 0), DegToRad(45))
	q90 := NewQuatAxisAngle(Vec3(0, 1, 0), DegToRad(90))
	qc := q45.Mul(q45)
	TolAssertEqualVector(t, StandardTol, vx.MulQuat(q90), vx.MulQuat(qc))

	qi := q90.Mul(q90.Inverse())
	tolassert.EqualTol(t, 1, qi.W, StandardTol)
	tolassert.EqualTol(t, 0, qi.X, StandardTol)
	tolassert.EqualTol(t, 0, qi.Y, StandardTol)
	tolassert.EqualTol(t, 0, qi.Z, StandardTol)

	cj := q90.Conjugate()
	assert.Equal(t, -q90.Y, cj.Y)
	assert.Equal(t, q90.W, cj.W)
}

func TestQuatSetFrom(t *testing.T) {
	vx := Vec3(1, 0, 0)
	vy := Vec3(0, 1, 0)

	var qu Quat
	qu.SetFromUnitVectors(vx, vy)
	TolAssertEqualVector(t, StandardTol, vy, vx.MulQuat(qu))

	var rm Matrix4
	rm.SetRotationX(DegToRad(30))
	var qm Quat
	qm.SetFromRotationMatrix(&rm)
	TolAssertEqualVector(t, StandardTol, vy.MulMatrix4(&rm), vy.MulQuat(qm))

	// a camera on the +z axis looking at the origin has the default orientation
	var lookq Quat
	lookq.SetFromRotationMatrix(NewLookAt(Vec3(0, 0, 5), Vector3{}, vy))
	assert.True(t, lookq.IsIdentity())
}
