// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/nightcity/citygpu/base/errors"
)

// UniformsLayoutEntry returns the bind group layout entry for the
// uniform buffer: binding [UniformsBuffer] within bind group 0,
// visible to both the vertex and fragment stages, with the size of
// [Uniforms] as the minimum binding size so layout mismatches fail
// at pipeline creation instead of at draw time.
func UniformsLayoutEntry() wgpu.BindGroupLayoutEntry {
	return wgpu.BindGroupLayoutEntry{
		Binding:    uint32(UniformsBuffer),
		Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
		Buffer: wgpu.BufferBindingLayout{
			Type:           wgpu.BufferBindingTypeUniform,
			MinBindingSize: UniformsSize,
		},
	}
}

// UniformBuffer is the GPU buffer holding the [Uniforms] block.
type UniformBuffer struct {
	buffer *wgpu.Buffer
}

// NewUniformBuffer creates the uniform buffer on the given device,
// sized for one [Uniforms] block.
func NewUniformBuffer(dev *wgpu.Device) (*UniformBuffer, error) {
	buf, err := dev.CreateBuffer(&wgpu.BufferDescriptor{
		Label:            "Uniforms",
		Size:             UniformsSize,
		Usage:            wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		MappedAtCreation: false,
	})
	if errors.Log(err) != nil {
		return nil, err
	}
	return &UniformBuffer{buffer: buf}, nil
}

// SetUniforms copies the given uniform values to the GPU buffer.
func (ub *UniformBuffer) SetUniforms(queue *wgpu.Queue, un *Uniforms) error {
	if ub.buffer == nil {
		return errors.Log(errors.New("shader.UniformBuffer: buffer has been released"))
	}
	return errors.Log(queue.WriteBuffer(ub.buffer, 0, un.Bytes()))
}

// BindGroupEntry returns the bind group entry for this buffer,
// at binding [UniformsBuffer].
func (ub *UniformBuffer) BindGroupEntry() wgpu.BindGroupEntry {
	return wgpu.BindGroupEntry{
		Binding: uint32(UniformsBuffer),
		Buffer:  ub.buffer,
		Offset:  0,
		Size:    wgpu.WholeSize,
	}
}

// Release releases the GPU buffer.
func (ub *UniformBuffer) Release() {
	if ub.buffer == nil {
		return
	}
	ub.buffer.Release()
	ub.buffer = nil
}

// VertexBuffer is the GPU buffer holding the interleaved [Vertex]
// data, bound at slot [VerticesBuffer].
type VertexBuffer struct {
	buffer *wgpu.Buffer

	// NumVertex is the number of vertices in the buffer.
	NumVertex int
}

// NewVertexBuffer creates a vertex buffer on the given device,
// initialized with the given vertex data.
func NewVertexBuffer(dev *wgpu.Device, vtxs []Vertex) (*VertexBuffer, error) {
	buf, err := dev.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Vertices",
		Contents: wgpu.ToBytes(vtxs),
		Usage:    wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if errors.Log(err) != nil {
		return nil, err
	}
	return &VertexBuffer{buffer: buf, NumVertex: len(vtxs)}, nil
}

// SetVertexes copies the given vertex data to the GPU buffer,
// which must have been created with at least len(vtxs) vertices.
func (vb *VertexBuffer) SetVertexes(queue *wgpu.Queue, vtxs []Vertex) error {
	if vb.buffer == nil {
		return errors.Log(errors.New("shader.VertexBuffer: buffer has been released"))
	}
	if len(vtxs) > vb.NumVertex {
		err := errors.Errorf("shader.VertexBuffer: %d vertices do not fit in buffer of %d", len(vtxs), vb.NumVertex)
		return errors.Log(err)
	}
	return errors.Log(queue.WriteBuffer(vb.buffer, 0, wgpu.ToBytes(vtxs)))
}

// BindTo binds this buffer as the vertex data at slot
// [VerticesBuffer] for subsequent draw calls.
func (vb *VertexBuffer) BindTo(rp *wgpu.RenderPassEncoder) {
	rp.SetVertexBuffer(uint32(VerticesBuffer), vb.buffer, 0, wgpu.WholeSize)
}

// Release releases the GPU buffer.
func (vb *VertexBuffer) Release() {
	if vb.buffer == nil {
		return
	}
	vb.buffer.Release()
	vb.buffer = nil
}

// IndexBuffer is the GPU buffer holding triangle indexes into the
// vertex buffer.
type IndexBuffer struct {
	buffer *wgpu.Buffer

	// NumIndex is the number of indexes in the buffer,
	// as passed to DrawIndexed.
	NumIndex int
}

// NewIndexBuffer creates an index buffer on the given device,
// initialized with the given index data.
func NewIndexBuffer(dev *wgpu.Device, idxs []uint32) (*IndexBuffer, error) {
	buf, err := dev.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Indexes",
		Contents: wgpu.ToBytes(idxs),
		Usage:    wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
	})
	if errors.Log(err) != nil {
		return nil, err
	}
	return &IndexBuffer{buffer: buf, NumIndex: len(idxs)}, nil
}

// BindTo binds this buffer as the index data for subsequent
// DrawIndexed calls.
func (ib *IndexBuffer) BindTo(rp *wgpu.RenderPassEncoder) {
	rp.SetIndexBuffer(ib.buffer, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
}

// Release releases the GPU buffer.
func (ib *IndexBuffer) Release() {
	if ib.buffer == nil {
		return
	}
	ib.buffer.Release()
	ib.buffer = nil
}
