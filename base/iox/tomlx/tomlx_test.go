// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testConfig struct {
	Shader  string
	Ambient float32
	Sets    []string
}

func TestOpenFiles(t *testing.T) {
	dir := t.TempDir()
	fa := filepath.Join(dir, "a.toml")
	fb := filepath.Join(dir, "b.toml")
	assert.NoError(t, os.WriteFile(fa, []byte("Shader = \"city\"\nAmbient = 0.1\n"), 0666))
	assert.NoError(t, os.WriteFile(fb, []byte("Ambient = 0.25\nSets = [\"day\", \"night\"]\n"), 0666))

	cfg := &testConfig{}
	assert.NoError(t, OpenFiles(cfg, fa, fb))
	assert.Equal(t, "city", cfg.Shader)
	assert.Equal(t, float32(0.25), cfg.Ambient)
	assert.Equal(t, []string{"day", "night"}, cfg.Sets)
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "config.toml")

	cfg := &testConfig{Shader: "city", Ambient: 0.15, Sets: []string{"dusk"}}
	assert.NoError(t, Save(cfg, fn))

	got := &testConfig{}
	assert.NoError(t, Open(got, fn))
	assert.Equal(t, cfg, got)
}
