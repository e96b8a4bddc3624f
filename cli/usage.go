// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"strings"

	"github.com/nightcity/citygpu/base/indent"
	"github.com/nightcity/citygpu/base/logx"
	"github.com/nightcity/citygpu/base/reflectx"
)

// Usage returns a usage string for an app with the given options,
// config object, and commands, listing the commands and the flags
// with their types, defaults, and documentation.
func Usage[T any](opts *Options, cfg T, cmds ...*Cmd[T]) string {
	var sb strings.Builder
	sb.WriteString(logx.TitleColor(opts.AppName) + "\n")
	if opts.AppAbout != "" {
		sb.WriteString(opts.AppAbout + "\n")
	}
	sb.WriteString("\nUsage:\n")
	fmt.Fprintf(&sb, "%s%s\n", indent.Spaces(1, 4), logx.CmdColor(opts.AppName+" [command] [flags] [arguments]"))

	if len(cmds) > 0 {
		sb.WriteString("\nCommands:\n")
		for _, c := range cmds {
			nm := c.Name
			if c.Root {
				nm += " (default)"
			}
			fmt.Fprintf(&sb, "%s%s\n", indent.Spaces(1, 4), logx.CmdColor(nm))
			if c.Doc != "" {
				fmt.Fprintf(&sb, "%s%s\n", indent.Spaces(2, 4), c.Doc)
			}
		}
	}

	sb.WriteString("\nFlags:\n")
	for _, ff := range flagFields(cfg) {
		typn := reflectx.NonPointerType(ff.field.Type).String()
		fmt.Fprintf(&sb, "%s%s %s", indent.Spaces(1, 4), logx.CmdColor("-"+ff.name), typn)
		if def := reflectx.FormatDefault(ff.field.Tag.Get("default")); def != "" {
			fmt.Fprintf(&sb, " (default %s)", def)
		}
		sb.WriteString("\n")
	}
	for _, bf := range builtinFlags {
		fmt.Fprintf(&sb, "%s%s\n", indent.Spaces(1, 4), logx.CmdColor(bf[0]))
		fmt.Fprintf(&sb, "%s%s\n", indent.Spaces(2, 4), bf[1])
	}
	return sb.String()
}

// builtinFlags are the flags handled by the cli framework itself.
var builtinFlags = [][2]string{
	{"-config file", "load the given config file"},
	{"-v", "verbose: print informational messages"},
	{"-vv", "very verbose: print debugging messages"},
	{"-q", "quiet: print only errors"},
	{"-h, -help", "show this usage information"},
}
