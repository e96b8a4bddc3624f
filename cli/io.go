// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/nightcity/citygpu/base/errors"
	"github.com/nightcity/citygpu/base/fsx"
	"github.com/nightcity/citygpu/base/iox/tomlx"
	"github.com/nightcity/citygpu/base/logx"
)

// openWithIncludes reads the given config file into the config object,
// looking for it on [Options.IncludePaths]. If the config object is an
// [includer], any include files it names are opened first, from the
// most general to the most specific, and the file itself is reopened
// last, so that includers overwrite what they include.
func openWithIncludes(opts *Options, cfg any, file string) error {
	files := fsx.FindFilesOnPaths(opts.IncludePaths, file)
	if len(files) == 0 {
		return fmt.Errorf("config file %q not found on paths %v", file, opts.IncludePaths)
	}
	if err := tomlx.OpenFiles(cfg, files...); err != nil {
		return err
	}
	incfg, ok := cfg.(includer)
	if !ok {
		return nil
	}
	incs, err := includeStack(opts, incfg)
	if errors.Log(err) != nil {
		return err
	}
	if len(incs) == 0 {
		return nil
	}
	for i := len(incs) - 1; i >= 0; i-- {
		err := tomlx.OpenFiles(cfg, fsx.FindFilesOnPaths(opts.IncludePaths, incs[i])...)
		if err != nil {
			logx.PrintlnWarn(err)
		}
	}
	// the settings in the original file take precedence
	if err := tomlx.OpenFiles(cfg, files...); err != nil {
		return err
	}
	*incfg.IncludesPtr() = incs
	return nil
}
