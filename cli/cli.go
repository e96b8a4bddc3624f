// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli generates command line apps from configuration structs:
// config values are set from `default:` struct tags, TOML config
// files, and command line flags, in that order of precedence, and the
// named command function is run with the resulting config. It is the
// sole command line interface of the citygpu tools.
package cli

import (
	"fmt"
	"os"

	"github.com/nightcity/citygpu/base/errors"
	"github.com/nightcity/citygpu/base/logx"
)

// Run runs the app with the given options, configuration struct, and
// commands, which can be given as [Cmd] pointers or bare command
// functions. It fills the config from defaults, config files, and
// command line flags, and then runs the command named on the command
// line (the root command if none is named). With [Options.Fatal] set,
// errors are printed and the process exits with a nonzero code;
// otherwise they are returned.
func Run[T any, C CmdOrFunc[T]](opts *Options, cfg T, cmds ...C) error {
	cs, err := CmdsFromCmdOrFuncs[T, C](cmds)
	if err != nil {
		return fatal(opts, err)
	}
	root := false
	for _, c := range cs {
		root = root || c.Root
	}
	if !root && len(cs) > 0 {
		cs[0].Root = true
	}
	cmd, err := Config(opts, cfg, cs...)
	if err != nil {
		if errors.Is(err, ErrHelp) {
			fmt.Println(Usage(opts, cfg, cs...))
			if opts.Fatal {
				os.Exit(0)
			}
			return nil
		}
		return fatal(opts, err)
	}
	return fatal(opts, RunCmd(opts, cfg, cmd, cs...))
}

// RunCmd runs the command with the given name on the given config,
// or the root command if the name is empty. When the name is empty
// and there is no root command, it prints usage.
func RunCmd[T any](opts *Options, cfg T, cmd string, cmds ...*Cmd[T]) error {
	for _, c := range cmds {
		if c.Name != cmd && !(cmd == "" && c.Root) {
			continue
		}
		if err := c.Func(cfg); err != nil {
			return fmt.Errorf("%s: %w", c.Name, err)
		}
		if opts.PrintSuccess {
			logx.PrintlnInfo(logx.SuccessColor(opts.AppName + " " + c.Name + " succeeded"))
		}
		return nil
	}
	if cmd == "" {
		fmt.Println(Usage(opts, cfg, cmds...))
		return nil
	}
	return fmt.Errorf("command %q not found; see -help for available commands", cmd)
}

// fatal handles the given error per [Options.Fatal]: non-nil errors
// are printed and exit the process when Fatal is set, and are
// returned otherwise.
func fatal(opts *Options, err error) error {
	if err == nil {
		return nil
	}
	if opts.Fatal {
		logx.PrintlnError(logx.ErrorColor(opts.AppName + ": " + err.Error()))
		os.Exit(1)
	}
	return err
}
