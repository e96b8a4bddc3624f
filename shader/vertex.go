// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/nightcity/citygpu/math32"
)

// Vertex is the interleaved per-vertex record in the vertices buffer.
// The field order matches the [VertexAttribute] locations.
type Vertex struct {

	// Position is the vertex position, in model space.
	Position math32.Vector3

	// Normal is the vertex normal, in model space.
	Normal math32.Vector3

	// Color is the vertex RGBA color.
	Color math32.Vector4
}

// VertexSize is the stride in bytes of one [Vertex] in the buffer.
const VertexSize = int(unsafe.Sizeof(Vertex{}))

// Format returns the WebGPU vertex format of this attribute.
func (i VertexAttribute) Format() wgpu.VertexFormat {
	switch i {
	case PositionAttribute, NormalAttribute:
		return wgpu.VertexFormatFloat32x3
	case ColorAttribute:
		return wgpu.VertexFormatFloat32x4
	}
	return wgpu.VertexFormatUndefined
}

// Offset returns the byte offset of this attribute within [Vertex].
func (i VertexAttribute) Offset() uint64 {
	switch i {
	case NormalAttribute:
		return uint64(unsafe.Offsetof(Vertex{}.Normal))
	case ColorAttribute:
		return uint64(unsafe.Offsetof(Vertex{}.Color))
	}
	return 0
}

// Bounds returns the bounding box of the given vertex positions.
func Bounds(vtxs []Vertex) math32.Box3 {
	bb := math32.B3Empty()
	for _, vt := range vtxs {
		bb.ExpandByPoint(vt.Position)
	}
	return bb
}

// SetNormals sets the normal of each vertex to the face normal of the
// triangle containing it, given the triangle indexes, producing the
// flat shading used for the city geometry. Vertices shared between
// triangles get the normal of the last triangle that uses them.
func SetNormals(vtxs []Vertex, idxs []uint32) {
	for i := 0; i+2 < len(idxs); i += 3 {
		a, b, c := idxs[i], idxs[i+1], idxs[i+2]
		nrm := math32.Normal(vtxs[a].Position, vtxs[b].Position, vtxs[c].Position)
		vtxs[a].Normal = nrm
		vtxs[b].Normal = nrm
		vtxs[c].Normal = nrm
	}
}

// VertexLayout returns the vertex buffer layout for the render
// pipeline: one interleaved buffer at slot [VerticesBuffer], with one
// attribute per [VertexAttribute] at its ShaderLocation.
func VertexLayout() []wgpu.VertexBufferLayout {
	attrs := make([]wgpu.VertexAttribute, VertexAttributeN)
	for at := PositionAttribute; at < VertexAttributeN; at++ {
		attrs[at] = wgpu.VertexAttribute{
			Format:         at.Format(),
			Offset:         at.Offset(),
			ShaderLocation: uint32(at),
		}
	}
	return []wgpu.VertexBufferLayout{{
		ArrayStride: uint64(VertexSize),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes:  attrs,
	}}
}
