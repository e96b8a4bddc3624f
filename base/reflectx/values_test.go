// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToBool(t *testing.T) {
	b, err := ToBool(true)
	assert.NoError(t, err)
	assert.True(t, b)

	b, err = ToBool("true")
	assert.NoError(t, err)
	assert.True(t, b)

	b, err = ToBool(0)
	assert.NoError(t, err)
	assert.False(t, b)

	v := 3
	b, err = ToBool(&v)
	assert.NoError(t, err)
	assert.True(t, b)

	_, err = ToBool("maybe")
	assert.Error(t, err)
}

func TestToInt(t *testing.T) {
	i, err := ToInt(42)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), i)

	i, err = ToInt("0x10")
	assert.NoError(t, err)
	assert.Equal(t, int64(16), i)

	i, err = ToInt(3.7)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), i)

	i, err = ToInt(uint8(5))
	assert.NoError(t, err)
	assert.Equal(t, int64(5), i)

	_, err = ToInt("twelve")
	assert.Error(t, err)
}

func TestToFloat(t *testing.T) {
	f, err := ToFloat("0.25")
	assert.NoError(t, err)
	assert.Equal(t, 0.25, f)

	f, err = ToFloat(3)
	assert.NoError(t, err)
	assert.Equal(t, 3.0, f)

	f32, err := ToFloat32("1.5")
	assert.NoError(t, err)
	assert.Equal(t, float32(1.5), f32)
}

func TestToString(t *testing.T) {
	assert.Equal(t, "city", ToString("city"))
	assert.Equal(t, "42", ToString(42))
	assert.Equal(t, "0.2", ToString(float32(0.2)))
	assert.Equal(t, "true", ToString(true))
	assert.Equal(t, "nil", ToString(nil))
}

func TestSetRobust(t *testing.T) {
	f := float32(0)
	assert.NoError(t, SetRobust(&f, "0.25"))
	assert.Equal(t, float32(0.25), f)

	assert.NoError(t, SetRobust(&f, 2))
	assert.Equal(t, float32(2), f)

	i := 0
	assert.NoError(t, SetRobust(&i, "17"))
	assert.Equal(t, 17, i)

	s := ""
	assert.NoError(t, SetRobust(&s, 3.5))
	assert.Equal(t, "3.5", s)

	b := false
	assert.NoError(t, SetRobust(&b, "true"))
	assert.True(t, b)

	sl := []float32{}
	assert.NoError(t, SetRobust(&sl, "0.25, -0.5, -1"))
	assert.Equal(t, []float32{0.25, -0.5, -1}, sl)

	assert.NoError(t, SetRobust(&sl, "[1, 2]"))
	assert.Equal(t, []float32{1, 2}, sl)

	assert.Error(t, SetRobust(nil, "anything"))
	assert.Error(t, SetRobust(&i, "not a number"))
}
