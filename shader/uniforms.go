// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/nightcity/citygpu/math32"
)

// Uniforms is the per-frame uniform block shared with the shaders.
// The renderer fills it with the current camera and lighting values
// each frame and uploads it as-is to the buffer at [UniformsBuffer].
// Its byte layout is identical to the WGSL Uniforms struct: under the
// uniform address space rules, the trailing f32 packs into the final
// 4 bytes of the vec3's 16-byte slot, so the tightly packed Go struct
// and the WGSL layout agree with no padding on either side.
type Uniforms struct {

	// Projection transforms camera coordinates into clip coordinates.
	Projection math32.Matrix4

	// View transforms world coordinates into camera coordinates.
	View math32.Matrix4

	// LightDirection is the direction the directional light shines in,
	// in world coordinates. Must be normalized.
	LightDirection math32.Vector3

	// AmbientIntensity scales the uniform ambient contribution,
	// in the 0 to 1 range.
	AmbientIntensity float32
}

// UniformsSize is the size in bytes of the [Uniforms] block as the
// shading stage expects it: two 4x4 float32 matrices, a 3 float32
// light direction, and one float32 ambient intensity.
const UniformsSize = 144

// The shaders compile against the exact offsets below (see city.wgsl);
// these declarations do not compile if the Go layout drifts from them.
var (
	_ = [1]struct{}{}[unsafe.Sizeof(Uniforms{})-UniformsSize]
	_ = [1]struct{}{}[unsafe.Offsetof(Uniforms{}.Projection)]
	_ = [1]struct{}{}[unsafe.Offsetof(Uniforms{}.View)-64]
	_ = [1]struct{}{}[unsafe.Offsetof(Uniforms{}.LightDirection)-128]
	_ = [1]struct{}{}[unsafe.Offsetof(Uniforms{}.AmbientIntensity)-140]
)

// NewUniforms returns a new [Uniforms] with default values set.
func NewUniforms() *Uniforms {
	un := &Uniforms{}
	un.Defaults()
	return un
}

// Defaults sets identity matrices, a light shining down at an angle,
// and a dim ambient level suitable for a night scene.
func (un *Uniforms) Defaults() {
	un.Projection.SetIdentity()
	un.View.SetIdentity()
	un.SetLightDirection(math32.Vec3(0.5, -1, 0.25))
	un.AmbientIntensity = 0.25
}

// SetProjection sets the projection matrix to a perspective projection
// with the given vertical field of view in degrees, aspect ratio
// (width / height), and near and far plane distances.
func (un *Uniforms) SetProjection(fov, aspect, near, far float32) {
	un.Projection.SetPerspective(fov, aspect, near, far)
}

// SetView sets the view matrix for a camera at pos facing at target,
// with the given up vector.
func (un *Uniforms) SetView(pos, target, up math32.Vector3) {
	var lookq math32.Quat
	lookq.SetFromRotationMatrix(math32.NewLookAt(pos, target, up))
	scale := math32.Vec3(1, 1, 1)
	var cview math32.Matrix4
	cview.SetTransform(pos, lookq, scale)
	view, _ := cview.Inverse()
	un.View = *view
}

// SetLightDirection sets the light direction, normalizing the given
// vector.
func (un *Uniforms) SetLightDirection(dir math32.Vector3) {
	un.LightDirection = dir.Normal()
}

// SetAmbientIntensity sets the ambient intensity, clamped to
// the 0 to 1 range.
func (un *Uniforms) SetAmbientIntensity(ambient float32) {
	un.AmbientIntensity = math32.Clamp(ambient, 0, 1)
}

// Bytes returns the uniform data as bytes, ready for buffer upload.
func (un *Uniforms) Bytes() []byte {
	return wgpu.ToBytes([]Uniforms{*un})
}
