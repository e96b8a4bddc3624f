// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"testing"

	"github.com/nightcity/citygpu/enums"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestBufferIndex(t *testing.T) {
	assert.Equal(t, BufferIndex(0), VerticesBuffer)
	assert.Equal(t, BufferIndex(1), UniformsBuffer)
	assert.Equal(t, BufferIndex(2), BufferIndexN)

	assert.Equal(t, "vertices-buffer", VerticesBuffer.String())
	assert.Equal(t, "uniforms-buffer", UniformsBuffer.String())

	var bi BufferIndex
	assert.NoError(t, bi.SetString("uniforms-buffer"))
	assert.Equal(t, UniformsBuffer, bi)
	assert.Error(t, bi.SetString("depth-buffer"))
	assert.Equal(t, UniformsBuffer, bi)

	bi.SetInt64(0)
	assert.Equal(t, VerticesBuffer, bi)
	assert.Equal(t, int64(1), UniformsBuffer.Int64())

	assert.Equal(t, "UniformsBuffer is the @binding number of the per-frame uniform buffer within bind group 0.", UniformsBuffer.Desc())
	assert.Len(t, VerticesBuffer.Values(), 2)
}

func TestVertexAttribute(t *testing.T) {
	assert.Equal(t, VertexAttribute(0), PositionAttribute)
	assert.Equal(t, VertexAttribute(1), NormalAttribute)
	assert.Equal(t, VertexAttribute(2), ColorAttribute)
	assert.Equal(t, VertexAttribute(3), VertexAttributeN)

	assert.Equal(t, "position-attribute", PositionAttribute.String())
	assert.Equal(t, "normal-attribute", NormalAttribute.String())
	assert.Equal(t, "color-attribute", ColorAttribute.String())

	var va VertexAttribute
	assert.NoError(t, va.SetString("color-attribute"))
	assert.Equal(t, ColorAttribute, va)
	assert.Error(t, va.SetString("tangent-attribute"))
	assert.Equal(t, ColorAttribute, va)

	assert.Len(t, PositionAttribute.Values(), 3)
}

func TestEnumMarshal(t *testing.T) {
	b, err := yaml.Marshal(UniformsBuffer)
	assert.NoError(t, err)
	assert.Equal(t, "uniforms-buffer\n", string(b))

	var bi BufferIndex
	assert.NoError(t, enums.UnmarshalYAML(&bi, &yaml.Node{Kind: yaml.ScalarNode, Value: "vertices-buffer"}, "BufferIndex"))
	assert.Equal(t, VerticesBuffer, bi)

	b, err = yaml.Marshal(NormalAttribute)
	assert.NoError(t, err)
	assert.Equal(t, "normal-attribute\n", string(b))

	var va VertexAttribute
	assert.NoError(t, enums.UnmarshalYAML(&va, &yaml.Node{Kind: yaml.ScalarNode, Value: "color-attribute"}, "VertexAttribute"))
	assert.Equal(t, ColorAttribute, va)

	// invalid values are logged, not returned, so the target is simply
	// left unchanged
	assert.NoError(t, enums.UnmarshalYAML(&va, &yaml.Node{Kind: yaml.ScalarNode, Value: "bitangent-attribute"}, "VertexAttribute"))
	assert.Equal(t, ColorAttribute, va)
}
