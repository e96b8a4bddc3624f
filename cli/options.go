// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

// Options contains the options passed to cli that control its behavior.
type Options struct {

	// AppName is the name of the app, used for the executable name in
	// usage and for error messages.
	AppName string

	// AppAbout is the description of the app shown in usage.
	AppAbout string

	// Fatal is whether to, when an error occurs, print it and exit
	// with a nonzero code instead of returning it.
	Fatal bool

	// PrintSuccess is whether to print a message when a command
	// finishes without an error.
	PrintSuccess bool

	// DefaultFiles are the config file names to look for by default.
	DefaultFiles []string

	// IncludePaths are the paths to search for config and include
	// files, in order.
	IncludePaths []string

	// NeedConfigFile is whether a config file must be found for the
	// app to run.
	NeedConfigFile bool
}

// DefaultOptions returns a new [Options] with standard defaults for
// an app with the given name and optional description: errors are
// fatal, success is printed, and config files are looked for in the
// current directory.
func DefaultOptions(name string, about ...string) *Options {
	opts := &Options{
		AppName:      name,
		Fatal:        true,
		PrintSuccess: true,
		IncludePaths: []string{"."},
	}
	if len(about) > 0 {
		opts.AppAbout = about[0]
	}
	return opts
}
