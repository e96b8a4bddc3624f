// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"reflect"
	"slices"
	"strings"

	"github.com/nightcity/citygpu/base/errors"
	"github.com/nightcity/citygpu/base/fsx"
	"github.com/nightcity/citygpu/base/iox/tomlx"
	"github.com/nightcity/citygpu/base/reflectx"
)

// Config updates the given config object from, in increasing order of
// precedence: `default:` struct tag values, any config files found on
// [Options.IncludePaths], and the command line arguments. It returns
// the name of the command invoked on the command line, if any.
func Config[T any](opts *Options, cfg T, cmds ...*Cmd[T]) (string, error) {
	var errs []error
	if err := SetFromDefaults(cfg); err != nil {
		errs = append(errs, err)
	}

	args := slices.Clone(os.Args[1:])
	files := opts.DefaultFiles
	need := opts.NeedConfigFile
	if mf := metaConfigFile(&args); mf != "" {
		files = []string{mf}
		need = true
	}

	got := false
	for _, fn := range files {
		if len(fsx.FindFilesOnPaths(opts.IncludePaths, fn)) == 0 {
			continue
		}
		if err := openWithIncludes(opts, cfg, fn); err != nil {
			errs = append(errs, err)
		} else {
			got = true
		}
	}
	if need && !got {
		errs = append(errs, fmt.Errorf("no config file found: tried %v on paths %v", files, opts.IncludePaths))
	}

	cmd, err := SetFromArgs(cfg, args, cmds...)
	if err != nil {
		if errors.Is(err, ErrHelp) {
			return cmd, err
		}
		errs = append(errs, err)
	}
	return cmd, errors.Join(errs...)
}

// metaConfigFile returns the config file named with a -config or -cfg
// flag in the given args, removing the flag and its value from the
// args. It returns "" if there is no such flag.
func metaConfigFile(args *[]string) string {
	as := *args
	for i := 0; i < len(as); i++ {
		if !strings.HasPrefix(as[i], "-") {
			continue
		}
		nm, val, has := strings.Cut(as[i], "=")
		nm = strings.ToLower(strings.TrimLeft(nm, "-"))
		if nm != "config" && nm != "cfg" {
			continue
		}
		if has {
			*args = slices.Delete(as, i, i+1)
			return val
		}
		if i+1 < len(as) {
			val = as[i+1]
			*args = slices.Delete(as, i, i+2)
			return val
		}
		*args = slices.Delete(as, i, i+1)
		return ""
	}
	return ""
}

// includer is the interface config objects implement to support
// include files: an Includes []string field listing further config
// files to load under the one naming them.
type includer interface {

	// IncludesPtr returns a pointer to the list of include files.
	IncludesPtr() *[]string
}

// includeStack returns the complete list of config files included by
// the given config object, directly or through nested includes, from
// the most specific to the most general. Opening them in reverse
// order makes includers overwrite what they include. Include cycles
// are broken by keeping the first occurrence of each file.
func includeStack(opts *Options, cfg includer) ([]string, error) {
	typ := reflectx.NonPointerType(reflect.TypeOf(cfg))
	incs := slices.Clone(*cfg.IncludesPtr())
	done := map[string]bool{}
	var errs []error
	for i := 0; i < len(incs); i++ {
		inc := incs[i]
		if done[inc] {
			incs = slices.Delete(incs, i, i+1)
			i--
			continue
		}
		done[inc] = true
		files := fsx.FindFilesOnPaths(opts.IncludePaths, inc)
		if len(files) == 0 {
			errs = append(errs, fmt.Errorf("include file %q not found on paths %v", inc, opts.IncludePaths))
			continue
		}
		sub := reflect.New(typ).Interface()
		if err := tomlx.OpenFiles(sub, files...); err != nil {
			errs = append(errs, err)
			continue
		}
		if subinc, ok := sub.(includer); ok {
			incs = append(incs, *subinc.IncludesPtr()...)
		}
	}
	return incs, errors.Join(errs...)
}
