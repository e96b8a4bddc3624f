// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shader defines the interface contract between the CPU-side
// city renderer and its WGSL shading stage: the buffer binding slots,
// the vertex attribute locations, and the exact byte layout of the
// per-frame uniform data, along with helpers for binding and uploading
// buffers and for generating and verifying the WGSL side of the
// contract. Both sides compile against this package (the shaders via
// the committed city.wgsl interface block), so the definitions here
// are the single source of truth for the renderer's GPU interface.
package shader

//go:generate enumgen

// BufferIndex is the index of a GPU buffer slot shared between the
// CPU-side code and the shaders. The values are a fixed contract with
// the shading stage and must not be reordered.
type BufferIndex int32 //enums:enum

const (
	// VerticesBuffer is the slot of the interleaved vertex buffer,
	// as passed to SetVertexBuffer.
	VerticesBuffer BufferIndex = iota

	// UniformsBuffer is the @binding number of the per-frame uniform
	// buffer within bind group 0.
	UniformsBuffer
)

// VertexAttribute is the location of a per-vertex attribute within
// the vertices buffer (the WGSL @location number). The values are a
// fixed contract with the shading stage and must not be reordered.
type VertexAttribute int32 //enums:enum

const (
	// PositionAttribute is the vertex position, in model space.
	PositionAttribute VertexAttribute = iota

	// NormalAttribute is the vertex normal, in model space.
	NormalAttribute

	// ColorAttribute is the vertex RGBA color.
	ColorAttribute
)
