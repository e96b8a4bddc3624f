// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"testing"

	"github.com/nightcity/citygpu/math32"
	"github.com/stretchr/testify/assert"
)

func TestMemSizeAlign(t *testing.T) {
	assert.Equal(t, 0, MemSizeAlign(0, 16))
	assert.Equal(t, 16, MemSizeAlign(12, 16))
	assert.Equal(t, 16, MemSizeAlign(16, 16))
	assert.Equal(t, 32, MemSizeAlign(17, 16))
	assert.Equal(t, 144, MemSizeAlign(144, 16))
}

func TestUniformLayout(t *testing.T) {
	flds, err := UniformLayout(Uniforms{})
	assert.NoError(t, err)
	want := []FieldLayout{
		{Name: "Projection", WGSLType: "mat4x4<f32>", Size: 64, GoOffset: 0, WGSLOffset: 0},
		{Name: "View", WGSLType: "mat4x4<f32>", Size: 64, GoOffset: 64, WGSLOffset: 64},
		{Name: "LightDirection", WGSLType: "vec3<f32>", Size: 12, GoOffset: 128, WGSLOffset: 128},
		{Name: "AmbientIntensity", WGSLType: "f32", Size: 4, GoOffset: 140, WGSLOffset: 140},
	}
	assert.Equal(t, want, flds)

	flds, err = UniformLayout(&Uniforms{})
	assert.NoError(t, err)
	assert.Equal(t, want, flds)
}

func TestCheckUniformLayout(t *testing.T) {
	assert.NoError(t, CheckUniformLayout(Uniforms{}))
	assert.NoError(t, CheckUniformLayout(&Uniforms{}))

	type misaligned struct {
		Ambient float32
		Light   math32.Vector3
	}
	err := CheckUniformLayout(misaligned{})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "Light")
		assert.Contains(t, err.Error(), "padding")
		assert.Contains(t, err.Error(), "16 bytes in Go but 32 in WGSL")
	}

	type unsupported struct {
		Name string
		Size float64
	}
	err = CheckUniformLayout(unsupported{})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "no WGSL uniform type")
	}

	assert.Error(t, CheckUniformLayout(42))
	assert.Error(t, CheckUniformLayout(nil))
}

func TestLayoutString(t *testing.T) {
	s := LayoutString(Uniforms{})
	assert.Contains(t, s, "Uniforms: 144 bytes")
	assert.Contains(t, s, "Projection")
	assert.Contains(t, s, "mat4x4<f32>")
	assert.Contains(t, s, "AmbientIntensity")
	assert.Contains(t, s, "f32")
}
