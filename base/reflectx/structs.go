// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/nightcity/citygpu/base/errors"
)

// SetFromDefaultTags sets the values of fields in the given struct based
// on `default:` struct field tag values, recursively descending into
// nested struct fields that do not have their own default.
func SetFromDefaultTags(obj any) error {
	if AnyIsNil(obj) {
		return nil
	}
	val := NonPointerValue(reflect.ValueOf(obj))
	typ := val.Type()
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def := f.Tag.Get("default")
		if NonPointerType(f.Type).Kind() == reflect.Struct && def == "" {
			err := SetFromDefaultTags(PointerValue(fv).Interface())
			if err != nil {
				errs = append(errs, err)
			}
			continue
		}
		err := SetFromDefaultTag(fv, def)
		if err != nil {
			errs = append(errs, fmt.Errorf("error setting field %q in object of type %q: %w", f.Name, typ.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// SetFromDefaultTag sets the given value from the given `default:`
// struct tag value.
func SetFromDefaultTag(v reflect.Value, def string) error {
	def = FormatDefault(def)
	if def == "" {
		return nil
	}
	return SetRobust(UnderlyingPointer(v).Interface(), def)
}

// FormatDefault converts the given `default:` struct tag string into a
// format suitable for [SetRobust]. It returns "" if the default value
// should not be used. Lists and ranges of possible values separated by
// commas and colons resolve to the first item.
func FormatDefault(def string) string {
	if def == "" {
		return ""
	}
	if strings.ContainsAny(def, "{[") {
		return strings.ReplaceAll(def, `'`, `"`)
	}
	def = strings.Split(def, ",")[0]
	def = strings.Split(def, ":")[0]
	return def
}
