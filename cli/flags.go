// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/nightcity/citygpu/base/errors"
	"github.com/nightcity/citygpu/base/logx"
	"github.com/nightcity/citygpu/base/reflectx"
)

// ErrHelp is returned by [SetFromArgs] and [Config] when the command
// line asks for help, so that [Run] prints usage instead of failing.
var ErrHelp = errors.New("help requested")

// flagField is one settable config field addressed by a flag.
type flagField struct {

	// value is a pointer to the field value.
	value reflect.Value

	// field is the struct field.
	field reflect.StructField

	// name is the kebab-case flag name, with nested struct fields
	// separated by dots.
	name string

	// posArg is the value of the posarg struct tag, if any.
	posArg string
}

// flagFields returns the settable flag fields of the given config
// object, which must be a pointer to a struct, recursing into nested
// struct fields.
func flagFields(cfg any) []*flagField {
	var ffs []*flagField
	addFlagFields(reflect.ValueOf(cfg), "", &ffs)
	return ffs
}

func addFlagFields(val reflect.Value, prefix string, ffs *[]*flagField) {
	val = reflectx.NonPointerValue(val)
	if !val.IsValid() || val.Kind() != reflect.Struct {
		return
	}
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		nm := strcase.ToKebab(f.Name)
		if prefix != "" {
			nm = prefix + "." + nm
		}
		fv := val.Field(i)
		if reflectx.NonPointerType(f.Type).Kind() == reflect.Struct {
			addFlagFields(fv, nm, ffs)
			continue
		}
		*ffs = append(*ffs, &flagField{
			value:  reflectx.PointerValue(fv),
			field:  f,
			name:   nm,
			posArg: f.Tag.Get("posarg"),
		})
	}
}

// flagMap returns a lookup map for the given fields, indexing each
// field under its full dotted name and, when unambiguous, its bare
// leaf name.
func flagMap(ffs []*flagField) map[string]*flagField {
	fm := map[string]*flagField{}
	alias := map[string]*flagField{}
	ambig := map[string]bool{}
	for _, ff := range ffs {
		fm[ff.name] = ff
		li := strings.LastIndex(ff.name, ".")
		if li < 0 {
			continue
		}
		leaf := ff.name[li+1:]
		if ambig[leaf] {
			continue
		}
		if _, has := alias[leaf]; has {
			delete(alias, leaf)
			ambig[leaf] = true
			continue
		}
		alias[leaf] = ff
	}
	for nm, ff := range alias {
		if _, has := fm[nm]; !has {
			fm[nm] = ff
		}
	}
	return fm
}

// SetFromArgs sets config values on the given config object from the
// given command line arguments, returning the name of the invoked
// command, if any. The first non-flag argument matching a command
// name selects that command; remaining non-flag arguments are set on
// fields with a `posarg:` struct tag (an argument index, or "all" for
// the whole list). The verbosity flags -v, -vv, and -q set
// [logx.UserLevel] directly, and -h or -help returns [ErrHelp].
func SetFromArgs[T any](cfg T, args []string, cmds ...*Cmd[T]) (string, error) {
	ffs := flagFields(cfg)
	fm := flagMap(ffs)
	var nonFlags []string
	var errs []error
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			nonFlags = append(nonFlags, args[i+1:]...)
			break
		}
		if len(arg) < 2 || arg[0] != '-' {
			nonFlags = append(nonFlags, arg)
			continue
		}
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		name = strings.ToLower(name)
		switch name {
		case "h", "help":
			return "", ErrHelp
		case "v", "verbose":
			logx.UserLevel = logx.LevelFromFlags(false, true, false)
			continue
		case "vv":
			logx.UserLevel = logx.LevelFromFlags(true, false, false)
			continue
		case "q", "quiet":
			logx.UserLevel = logx.LevelFromFlags(false, false, true)
			continue
		}
		ff, ok := fm[name]
		if !ok {
			errs = append(errs, fmt.Errorf("flag %q not recognized; see -help for available flags", arg))
			continue
		}
		if !hasValue {
			if reflectx.NonPointerType(ff.field.Type).Kind() == reflect.Bool {
				value = "true"
			} else if i+1 < len(args) {
				i++
				value = args[i]
			} else {
				errs = append(errs, fmt.Errorf("flag %q needs a value", arg))
				continue
			}
		}
		if err := reflectx.SetRobust(ff.value.Interface(), value); err != nil {
			errs = append(errs, fmt.Errorf("error setting flag %q from %q: %w", arg, value, err))
		}
	}

	cmd := ""
	posArgs := nonFlags
	if len(nonFlags) > 0 {
		for _, c := range cmds {
			if c.Name == nonFlags[0] {
				cmd = nonFlags[0]
				posArgs = nonFlags[1:]
				break
			}
		}
	}
	if len(posArgs) > 0 {
		if err := setPosArgs(ffs, posArgs); err != nil {
			errs = append(errs, err)
		}
	}
	return cmd, errors.Join(errs...)
}

// setPosArgs sets the given positional arguments on fields with a
// posarg struct tag. Arguments not consumed by any field are an error.
func setPosArgs(ffs []*flagField, posArgs []string) error {
	var errs []error
	used := 0
	all := false
	for _, ff := range ffs {
		switch pa := ff.posArg; pa {
		case "":
		case "all":
			all = true
			if err := reflectx.SetRobust(ff.value.Interface(), posArgs); err != nil {
				errs = append(errs, fmt.Errorf("error setting positional arguments on %s: %w", ff.field.Name, err))
			}
		default:
			n, err := strconv.Atoi(pa)
			if err != nil {
				errs = append(errs, fmt.Errorf("invalid posarg tag %q on field %s", pa, ff.field.Name))
				continue
			}
			if n >= len(posArgs) {
				continue
			}
			if err := reflectx.SetRobust(ff.value.Interface(), posArgs[n]); err != nil {
				errs = append(errs, fmt.Errorf("error setting positional argument %d on %s: %w", n, ff.field.Name, err))
			}
			used = max(used, n+1)
		}
	}
	if !all && used < len(posArgs) {
		errs = append(errs, fmt.Errorf("unexpected positional arguments: %v", posArgs[used:]))
	}
	return errors.Join(errs...)
}
