// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit citygpu functionality.

package math32

// Triangle is a triangle with three vertex points.
type Triangle struct {
	A Vector3
	B Vector3
	C Vector3
}

// NewTriangle returns a new [Triangle] with the given three vertices.
func NewTriangle(a, b, c Vector3) Triangle {
	return Triangle{a, b, c}
}

// Normal returns the unit normal of the triangle with the given three
// vertices, facing the side from which the vertices wind
// counter-clockwise. It returns the zero vector for a degenerate
// triangle.
func Normal(a, b, c Vector3) Vector3 {
	nv := c.Sub(b).Cross(a.Sub(b))
	lenSq := nv.LengthSquared()
	if lenSq == 0 {
		return Vector3{}
	}
	return nv.MulScalar(1 / Sqrt(lenSq))
}

// BarycoordFromPoint returns the barycentric coordinates of the given
// point in the triangle with the given three vertices. For a
// degenerate triangle, it returns coordinates outside the triangle.
func BarycoordFromPoint(point, a, b, c Vector3) Vector3 {
	v0 := c.Sub(a)
	v1 := b.Sub(a)
	v2 := point.Sub(a)

	dot00 := v0.Dot(v0)
	dot01 := v0.Dot(v1)
	dot02 := v0.Dot(v2)
	dot11 := v1.Dot(v1)
	dot12 := v1.Dot(v2)

	denom := dot00*dot11 - dot01*dot01
	if denom == 0 {
		return Vec3(-2, -1, -1)
	}

	u := (dot11*dot02 - dot01*dot12) / denom
	v := (dot00*dot12 - dot01*dot02) / denom
	return Vec3(1-u-v, v, u)
}

// ContainsPoint returns whether the triangle with the given three
// vertices contains the given point.
func ContainsPoint(point, a, b, c Vector3) bool {
	rv := BarycoordFromPoint(point, a, b, c)
	return rv.X >= 0 && rv.Y >= 0 && rv.X+rv.Y <= 1
}

// Set sets the triangle's three vertices.
func (t *Triangle) Set(a, b, c Vector3) {
	t.A = a
	t.B = b
	t.C = c
}

// SetFromPointsAndIndices sets the triangle's vertices to the points
// at the given indices.
func (t *Triangle) SetFromPointsAndIndices(points []Vector3, i0, i1, i2 int) {
	t.A = points[i0]
	t.B = points[i1]
	t.C = points[i2]
}

// Area returns the area of the triangle.
func (t Triangle) Area() float32 {
	return t.C.Sub(t.B).Cross(t.A.Sub(t.B)).Length() * 0.5
}

// Midpoint returns the center point of the triangle.
func (t Triangle) Midpoint() Vector3 {
	return t.A.Add(t.B).Add(t.C).MulScalar(1.0 / 3)
}

// Normal returns the unit normal of the triangle, per [Normal].
func (t Triangle) Normal() Vector3 {
	return Normal(t.A, t.B, t.C)
}

// BarycoordFromPoint returns the barycentric coordinates of the given
// point in the triangle, per [BarycoordFromPoint].
func (t Triangle) BarycoordFromPoint(point Vector3) Vector3 {
	return BarycoordFromPoint(point, t.A, t.B, t.C)
}

// ContainsPoint returns whether the triangle contains the given point.
func (t Triangle) ContainsPoint(point Vector3) bool {
	return ContainsPoint(point, t.A, t.B, t.C)
}
