// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

//go:generate enumgen

// Dims is a list of vector dimension (component) names.
type Dims int32 //enums:enum

const (
	// X is the horizontal axis and the first component.
	X Dims = iota

	// Y is the vertical axis and the second component.
	Y

	// Z is the depth axis and the third component.
	Z

	// W is the fourth component, used for homogeneous coordinates.
	W
)
