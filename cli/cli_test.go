// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testCamera struct {
	FOV  float32 `default:"45"`
	Near float32 `default:"0.1"`
}

type testConfig struct {
	Name     string `default:"city"`
	Output   string `default:"city.wgsl"`
	Level    int    `default:"2"`
	Enable   bool
	Includes []string
	Inputs   []string `posarg:"all"`
	Camera   testCamera
}

func (c *testConfig) IncludesPtr() *[]string { return &c.Includes }

func testCmds() []*Cmd[*testConfig] {
	return []*Cmd[*testConfig]{
		{Func: func(c *testConfig) error { return nil }, Name: "generate", Root: true},
		{Func: func(c *testConfig) error { return nil }, Name: "layout"},
	}
}

func TestSetFromDefaults(t *testing.T) {
	cfg := &testConfig{}
	assert.NoError(t, SetFromDefaults(cfg))
	assert.Equal(t, "city", cfg.Name)
	assert.Equal(t, "city.wgsl", cfg.Output)
	assert.Equal(t, 2, cfg.Level)
	assert.Equal(t, float32(45), cfg.Camera.FOV)
	assert.Equal(t, float32(0.1), cfg.Camera.Near)
}

func TestSetFromArgs(t *testing.T) {
	cfg := &testConfig{}
	cmd, err := SetFromArgs(cfg, []string{"-name", "night", "-output=alt.wgsl", "-camera.fov", "60", "-near", "2.5", "-enable"}, testCmds()...)
	assert.NoError(t, err)
	assert.Equal(t, "", cmd)
	assert.Equal(t, "night", cfg.Name)
	assert.Equal(t, "alt.wgsl", cfg.Output)
	assert.Equal(t, float32(60), cfg.Camera.FOV)
	assert.Equal(t, float32(2.5), cfg.Camera.Near)
	assert.True(t, cfg.Enable)
}

func TestSetFromArgsCmd(t *testing.T) {
	cfg := &testConfig{}
	cmd, err := SetFromArgs(cfg, []string{"layout", "-level", "3"}, testCmds()...)
	assert.NoError(t, err)
	assert.Equal(t, "layout", cmd)
	assert.Equal(t, 3, cfg.Level)

	cfg = &testConfig{}
	cmd, err = SetFromArgs(cfg, []string{"generate", "a.wgsl", "b.wgsl"}, testCmds()...)
	assert.NoError(t, err)
	assert.Equal(t, "generate", cmd)
	assert.Equal(t, []string{"a.wgsl", "b.wgsl"}, cfg.Inputs)

	// non-flag arguments with no command go to posargs
	cfg = &testConfig{}
	cmd, err = SetFromArgs(cfg, []string{"c.wgsl"}, testCmds()...)
	assert.NoError(t, err)
	assert.Equal(t, "", cmd)
	assert.Equal(t, []string{"c.wgsl"}, cfg.Inputs)

	// everything after -- is a positional argument
	cfg = &testConfig{}
	_, err = SetFromArgs(cfg, []string{"--", "-not-a-flag"}, testCmds()...)
	assert.NoError(t, err)
	assert.Equal(t, []string{"-not-a-flag"}, cfg.Inputs)
}

func TestSetFromArgsErrors(t *testing.T) {
	cfg := &testConfig{}
	_, err := SetFromArgs(cfg, []string{"-bogus"}, testCmds()...)
	assert.ErrorContains(t, err, "not recognized")

	_, err = SetFromArgs(cfg, []string{"-name"}, testCmds()...)
	assert.ErrorContains(t, err, "needs a value")

	_, err = SetFromArgs(cfg, []string{"-help"}, testCmds()...)
	assert.ErrorIs(t, err, ErrHelp)
	_, err = SetFromArgs(cfg, []string{"-h"}, testCmds()...)
	assert.ErrorIs(t, err, ErrHelp)
}

func TestSetFromArgsPosArgs(t *testing.T) {
	type posConfig struct {
		First  string `posarg:"0"`
		Second string `posarg:"1"`
	}
	cfg := &posConfig{}
	cmd, err := SetFromArgs(cfg, []string{"x", "y"})
	assert.NoError(t, err)
	assert.Equal(t, "", cmd)
	assert.Equal(t, "x", cfg.First)
	assert.Equal(t, "y", cfg.Second)

	_, err = SetFromArgs(cfg, []string{"x", "y", "z"})
	assert.ErrorContains(t, err, "unexpected positional arguments")
}

func TestMetaConfigFile(t *testing.T) {
	args := []string{"-config", "other.toml", "generate"}
	assert.Equal(t, "other.toml", metaConfigFile(&args))
	assert.Equal(t, []string{"generate"}, args)

	args = []string{"-cfg=x.toml"}
	assert.Equal(t, "x.toml", metaConfigFile(&args))
	assert.Empty(t, args)

	args = []string{"generate", "-output", "o.wgsl"}
	assert.Equal(t, "", metaConfigFile(&args))
	assert.Len(t, args, 3)
}

func TestConfig(t *testing.T) {
	opts := DefaultOptions("testapp")
	opts.Fatal = false
	opts.DefaultFiles = []string{"config.toml"}
	opts.IncludePaths = []string{"testdata"}

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"testapp", "-output", "override.wgsl"}

	cfg := &testConfig{}
	cmd, err := Config(opts, cfg)
	assert.NoError(t, err)
	assert.Equal(t, "", cmd)
	assert.Equal(t, "metro", cfg.Name)
	assert.Equal(t, 7, cfg.Level)
	assert.Equal(t, "override.wgsl", cfg.Output)
	assert.Equal(t, []string{"base.toml"}, cfg.Includes)
	assert.Equal(t, float32(45), cfg.Camera.FOV)
}

func TestConfigMissingFile(t *testing.T) {
	opts := DefaultOptions("testapp")
	opts.Fatal = false
	opts.DefaultFiles = []string{"nothere.toml"}
	opts.NeedConfigFile = true

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"testapp"}

	cfg := &testConfig{}
	_, err := Config(opts, cfg)
	assert.ErrorContains(t, err, "no config file found")
}

func TestRun(t *testing.T) {
	opts := DefaultOptions("testapp")
	opts.Fatal = false
	opts.PrintSuccess = false

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	ran := ""
	cmds := []*Cmd[*testConfig]{
		{Func: func(c *testConfig) error { ran = "root:" + c.Output; return nil }, Name: "generate", Root: true},
		{Func: func(c *testConfig) error { ran = "layout"; return nil }, Name: "layout"},
		{Func: func(c *testConfig) error { return errors.New("boom") }, Name: "fail"},
	}

	os.Args = []string{"testapp"}
	assert.NoError(t, Run(opts, &testConfig{}, cmds...))
	assert.Equal(t, "root:city.wgsl", ran)

	os.Args = []string{"testapp", "layout"}
	assert.NoError(t, Run(opts, &testConfig{}, cmds...))
	assert.Equal(t, "layout", ran)

	os.Args = []string{"testapp", "fail"}
	assert.ErrorContains(t, Run(opts, &testConfig{}, cmds...), "boom")

	// a non-flag argument that is not a command name goes to the posargs
	// of the root command
	cfg := &testConfig{}
	os.Args = []string{"testapp", "sky.wgsl"}
	assert.NoError(t, Run(opts, cfg, cmds...))
	assert.Equal(t, "root:city.wgsl", ran)
	assert.Equal(t, []string{"sky.wgsl"}, cfg.Inputs)

	assert.ErrorContains(t, RunCmd(opts, &testConfig{}, "nothere", cmds...), "not found")
}

func buildCity(c *testConfig) error { return nil }

func TestCmdFromFunc(t *testing.T) {
	cmd, err := CmdFromFunc(buildCity)
	assert.NoError(t, err)
	assert.Equal(t, "build-city", cmd.Name)

	cmds, err := CmdsFromCmdOrFuncs[*testConfig]([]func(*testConfig) error{buildCity})
	assert.NoError(t, err)
	assert.Len(t, cmds, 1)
	assert.Equal(t, "build-city", cmds[0].Name)
}

func TestUsage(t *testing.T) {
	us := Usage(DefaultOptions("testapp", "A test app"), &testConfig{}, testCmds()...)
	assert.Contains(t, us, "testapp")
	assert.Contains(t, us, "A test app")
	assert.Contains(t, us, "generate (default)")
	assert.Contains(t, us, "layout")
	assert.Contains(t, us, "-output")
	assert.Contains(t, us, "-camera.fov")
	assert.Contains(t, us, "-help")
}
