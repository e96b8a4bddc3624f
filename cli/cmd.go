// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/iancoleman/strcase"
)

// Cmd represents a runnable command for an app with a configuration
// struct of type T.
type Cmd[T any] struct {

	// Func is the function that runs the command.
	Func func(T) error

	// Name is the name of the command as given on the command line.
	Name string

	// Doc is the documentation for the command, shown in usage.
	Doc string

	// Root is whether this is the root command, run when no command
	// is named on the command line.
	Root bool
}

// CmdOrFunc is satisfied by either a [Cmd] pointer or a bare command
// function, both of which can be passed to [Run].
type CmdOrFunc[T any] interface {
	*Cmd[T] | func(T) error
}

// CmdFromFunc returns a new [Cmd] for the given function, with the
// command name derived from the function name, converted to kebab-case.
func CmdFromFunc[T any](fn func(T) error) (*Cmd[T], error) {
	fp := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if fp == nil {
		return nil, fmt.Errorf("cli: unable to get the name of command function %v", any(fn))
	}
	name := fp.Name()
	name = name[strings.LastIndex(name, ".")+1:]
	name = strings.TrimSuffix(name, "-fm")
	return &Cmd[T]{Func: fn, Name: strcase.ToKebab(name)}, nil
}

// CmdFromCmdOrFunc returns a [Cmd] for the given [CmdOrFunc] value.
func CmdFromCmdOrFunc[T any, C CmdOrFunc[T]](cmd C) (*Cmd[T], error) {
	switch c := any(cmd).(type) {
	case *Cmd[T]:
		return c, nil
	case func(T) error:
		return CmdFromFunc(c)
	}
	return nil, fmt.Errorf("cli: internal error: %T is not a command or a command function", cmd)
}

// CmdsFromCmdOrFuncs is [CmdFromCmdOrFunc] for a slice.
func CmdsFromCmdOrFuncs[T any, C CmdOrFunc[T]](cmds []C) ([]*Cmd[T], error) {
	cs := make([]*Cmd[T], 0, len(cmds))
	for _, cmd := range cmds {
		c, err := CmdFromCmdOrFunc[T, C](cmd)
		if err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	return cs, nil
}
