// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/nightcity/citygpu/base/errors"
	"github.com/nightcity/citygpu/base/indent"
	"github.com/nightcity/citygpu/base/reflectx"
)

// FieldLayout describes one field of a uniform struct on both sides
// of the CPU / GPU boundary.
type FieldLayout struct {

	// Name is the Go field name.
	Name string

	// WGSLType is the WGSL type the field maps to.
	WGSLType string

	// Size is the size of the field in bytes.
	Size int

	// GoOffset is the byte offset of the field in the Go struct.
	GoOffset int

	// WGSLOffset is the byte offset of the field under the WGSL
	// uniform address space layout rules.
	WGSLOffset int
}

// MemSizeAlign returns the size aligned according to align byte
// increments, e.g., if align = 16 and size = 12, it returns 16.
func MemSizeAlign(size, align int) int {
	if size%align == 0 {
		return size
	}
	nb := size / align
	return (nb + 1) * align
}

// wgslType returns the WGSL uniform type, size, and alignment for the
// given Go type. Float32 vectors are recognized in both struct form
// (fields all float32) and array form.
func wgslType(typ reflect.Type) (name string, size, align int, err error) {
	switch typ.Kind() {
	case reflect.Float32:
		return "f32", 4, 4, nil
	case reflect.Uint32:
		return "u32", 4, 4, nil
	case reflect.Int32:
		return "i32", 4, 4, nil
	case reflect.Array:
		if typ.Elem().Kind() != reflect.Float32 {
			break
		}
		switch typ.Len() {
		case 2:
			return "vec2<f32>", 8, 8, nil
		case 3:
			return "vec3<f32>", 12, 16, nil
		case 4:
			return "vec4<f32>", 16, 16, nil
		case 16:
			return "mat4x4<f32>", 64, 16, nil
		}
	case reflect.Struct:
		nf := typ.NumField()
		if nf < 2 || nf > 4 {
			break
		}
		for i := 0; i < nf; i++ {
			if typ.Field(i).Type.Kind() != reflect.Float32 {
				return "", 0, 0, errors.Errorf("shader: no WGSL uniform type for Go type %s", typ.String())
			}
		}
		switch nf {
		case 2:
			return "vec2<f32>", 8, 8, nil
		case 3:
			return "vec3<f32>", 12, 16, nil
		case 4:
			return "vec4<f32>", 16, 16, nil
		}
	}
	return "", 0, 0, errors.Errorf("shader: no WGSL uniform type for Go type %s", typ.String())
}

// UniformLayout returns the layout of the given uniform struct (or
// pointer to one): for each field, its WGSL type and its byte offsets
// in the Go struct and under the WGSL uniform address space rules.
// Fields with no WGSL uniform equivalent are reported as errors and
// omitted from the result.
func UniformLayout(v any) ([]FieldLayout, error) {
	typ := reflectx.NonPointerType(reflect.TypeOf(v))
	if typ == nil || typ.Kind() != reflect.Struct {
		return nil, errors.Errorf("shader.UniformLayout: %T is not a struct", v)
	}
	var errs []error
	flds := make([]FieldLayout, 0, typ.NumField())
	off := 0
	for i := 0; i < typ.NumField(); i++ {
		fd := typ.Field(i)
		wt, sz, al, err := wgslType(fd.Type)
		if err != nil {
			errs = append(errs, errors.Errorf("field %s: %w", fd.Name, err))
			continue
		}
		off = MemSizeAlign(off, al)
		flds = append(flds, FieldLayout{Name: fd.Name, WGSLType: wt, Size: sz, GoOffset: int(fd.Offset), WGSLOffset: off})
		off += sz
	}
	return flds, errors.Join(errs...)
}

// CheckUniformLayout checks that the given uniform struct has the
// same byte layout in Go as under the WGSL uniform address space
// rules, so it can be uploaded as-is. It returns nil when the layouts
// agree, and an error joining every field offset and total size
// mismatch otherwise.
func CheckUniformLayout(v any) error {
	flds, err := UniformLayout(v)
	if err != nil {
		return err
	}
	typ := reflectx.NonPointerType(reflect.TypeOf(v))
	var errs []error
	end := 0
	for _, fl := range flds {
		if fl.GoOffset != fl.WGSLOffset {
			errs = append(errs, errors.Errorf("shader: field %s of %s is at offset %d in Go but %d in WGSL; add explicit padding", fl.Name, typ.Name(), fl.GoOffset, fl.WGSLOffset))
		}
		end = fl.WGSLOffset + fl.Size
	}
	wsz := MemSizeAlign(end, 16)
	if gsz := int(typ.Size()); gsz != wsz {
		errs = append(errs, errors.Errorf("shader: %s is %d bytes in Go but %d in WGSL", typ.Name(), gsz, wsz))
	}
	return errors.Join(errs...)
}

// LayoutString returns a table of the layout of the given uniform
// struct, for display. Unsupported fields are listed with their error.
func LayoutString(v any) string {
	typ := reflectx.NonPointerType(reflect.TypeOf(v))
	if typ == nil || typ.Kind() != reflect.Struct {
		return fmt.Sprintf("%T is not a struct\n", v)
	}
	flds, _ := UniformLayout(v)
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d bytes\n", typ.Name(), typ.Size())
	ind := indent.Spaces(1, 4)
	for _, fl := range flds {
		fmt.Fprintf(&sb, "%s%-20s %-12s offset %3d  size %3d\n", ind, fl.Name, fl.WGSLType, fl.WGSLOffset, fl.Size)
	}
	return sb.String()
}
