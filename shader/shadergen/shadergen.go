// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shadergen generates and verifies the WGSL side of the GPU
// interface from the Go definitions in the shader package.
package shadergen

import (
	"fmt"
	"os"
	"strings"

	"github.com/nightcity/citygpu/base/errors"
	"github.com/nightcity/citygpu/base/logx"
	"github.com/nightcity/citygpu/shader"
)

// Config contains the configuration information used by shadergen.
type Config struct {

	// the output file to write the generated WGSL interface to
	Output string `default:"city.wgsl"`

	// the WGSL shader files to verify
	Inputs []string `posarg:"all"`
}

// Generate writes the canonical WGSL interface block, generated from
// the Go definitions, to [Config.Output].
func Generate(c *Config) error {
	logx.PrintlnInfo("writing WGSL interface to " + c.Output)
	return errors.Log(os.WriteFile(c.Output, []byte(shader.WGSL()), 0666))
}

// Layout prints the uniform layout and the buffer binding and vertex
// attribute assignments of the GPU interface.
func Layout(c *Config) error {
	var sb strings.Builder
	sb.WriteString(shader.LayoutString(shader.Uniforms{}))
	fmt.Fprintf(&sb, "uniform buffer: group 0, binding %d\n", int(shader.UniformsBuffer))
	fmt.Fprintf(&sb, "vertex buffer: slot %d, stride %d bytes\n", int(shader.VerticesBuffer), shader.VertexSize)
	for at := shader.PositionAttribute; at < shader.VertexAttributeN; at++ {
		fmt.Fprintf(&sb, "    @location(%d) %-20s offset %2d\n", int(at), at.String(), at.Offset())
	}
	fmt.Print(sb.String())
	return nil
}

// Verify checks that the given WGSL shader files declare the
// interface the Go definitions expect, reporting every mismatch.
func Verify(c *Config) error {
	if len(c.Inputs) == 0 {
		return errors.New("no shader files given")
	}
	var errs []error
	for _, fn := range c.Inputs {
		b, err := os.ReadFile(fn)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := shader.VerifyWGSL(string(b)); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", fn, err))
			continue
		}
		logx.PrintlnInfo(fn + ": ok")
	}
	return errors.Join(errs...)
}
