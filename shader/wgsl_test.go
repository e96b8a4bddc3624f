// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestWGSLGolden fails when the Go definitions change without
// regenerating city.wgsl (shadergen generate).
func TestWGSLGolden(t *testing.T) {
	assert.Equal(t, InterfaceWGSL, WGSL())
}

func TestVerifyWGSL(t *testing.T) {
	assert.NoError(t, VerifyWGSL(InterfaceWGSL))

	// a full shader with the interface block prepended, the way the
	// renderer assembles its shaders
	src := InterfaceWGSL + `
struct VertexOutput {
	@builtin(position) clipPosition: vec4<f32>,
	@location(0) color: vec4<f32>,
	@location(1) shade: f32,
}

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
	var out: VertexOutput;
	let world = vec4<f32>(in.position, 1.0);
	out.clipPosition = uniforms.projection * uniforms.view * world;
	let diffuse = max(dot(in.normal, -uniforms.lightDirection), 0.0);
	out.shade = min(diffuse + uniforms.ambientIntensity, 1.0);
	out.color = in.color;
	return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
	return vec4<f32>(in.color.rgb * in.shade, in.color.a);
}
`
	assert.NoError(t, VerifyWGSL(src))
}

func TestVerifyWGSLMismatch(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", "no var<uniform>"},
		{"binding", strings.Replace(InterfaceWGSL, "@binding(1)", "@binding(2)", 1), "@binding(1)"},
		{"group", strings.Replace(InterfaceWGSL, "@group(0)", "@group(1)", 1), "@group(0)"},
		{"field type", strings.Replace(InterfaceWGSL, "view: mat4x4<f32>", "view: mat3x3<f32>", 1), "view"},
		{"field name", strings.Replace(InterfaceWGSL, "lightDirection", "lightDir", 1), "lightDirection"},
		{"field order", strings.Replace(InterfaceWGSL, "\tprojection: mat4x4<f32>,\n\tview: mat4x4<f32>,", "\tview: mat4x4<f32>,\n\tprojection: mat4x4<f32>,", 1), "struct Uniforms field 0"},
		{"location", strings.Replace(InterfaceWGSL, "@location(1) normal", "@location(3) normal", 1), "@location(1)"},
		{"attribute type", strings.Replace(InterfaceWGSL, "color: vec4<f32>", "color: vec3<f32>", 1), "color"},
		{"missing attribute", strings.Replace(InterfaceWGSL, "\t@location(2) color: vec4<f32>,\n", "", 1), "missing @location(2)"},
		{"extra attribute", strings.Replace(InterfaceWGSL, "\t@location(2) color: vec4<f32>,\n", "\t@location(2) color: vec4<f32>,\n\t@location(3) uv: vec2<f32>,\n", 1), "extra attribute uv"},
		{"no vertex input", strings.Split(InterfaceWGSL, "struct VertexInput")[0], "no struct VertexInput"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := VerifyWGSL(test.src)
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), test.want)
			}
		})
	}
}
