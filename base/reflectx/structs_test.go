// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type defaultsSub struct {
	Width int `default:"4"`
}

type defaultsTest struct {
	Name    string  `default:"city"`
	Ambient float32 `default:"0.25"`
	Tabs    bool    `default:"true"`
	Levels  []int   `default:"[1,2,3]"`
	Choice  string  `default:"day,night"`
	Sub     defaultsSub
	skip    int
}

func TestSetFromDefaultTags(t *testing.T) {
	dt := &defaultsTest{}
	assert.NoError(t, SetFromDefaultTags(dt))
	assert.Equal(t, "city", dt.Name)
	assert.Equal(t, float32(0.25), dt.Ambient)
	assert.True(t, dt.Tabs)
	assert.Equal(t, []int{1, 2, 3}, dt.Levels)
	assert.Equal(t, "day", dt.Choice)
	assert.Equal(t, 4, dt.Sub.Width)
	assert.Equal(t, 0, dt.skip)
}

func TestFormatDefault(t *testing.T) {
	assert.Equal(t, "", FormatDefault(""))
	assert.Equal(t, "5", FormatDefault("5,10,15"))
	assert.Equal(t, "0", FormatDefault("0:100"))
	assert.Equal(t, `[1,2]`, FormatDefault(`[1,2]`))
	assert.Equal(t, `{"A":1}`, FormatDefault(`{'A':1}`))
}
