// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command shadergen generates and verifies the WGSL interface of the
// city renderer from the Go definitions in the shader package.
package main

import (
	"github.com/nightcity/citygpu/cli"
	"github.com/nightcity/citygpu/shader/shadergen"
)

func main() {
	opts := cli.DefaultOptions("shadergen", "Shadergen generates and verifies the WGSL interface of the city renderer.")
	opts.DefaultFiles = []string{"shadergen.toml"}
	cli.Run(opts, &shadergen.Config{}, shadergen.Generate, shadergen.Layout, shadergen.Verify)
}
