// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	_ "embed"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/nightcity/citygpu/base/errors"
	"github.com/nightcity/citygpu/base/stringsx"
	"golang.org/x/exp/maps"
)

// InterfaceWGSL is the canonical WGSL declaration of the GPU side of
// the interface, generated by shadergen from the Go definitions.
// Renderer shaders prepend this block so that both sides compile from
// the same source of truth.
//
//go:embed city.wgsl
var InterfaceWGSL string

// WGSL generates the WGSL declarations for the GPU side of the
// interface from the Go definitions: the Uniforms struct and its
// binding, and the VertexInput struct with one field per vertex
// attribute. The committed city.wgsl file holds this output.
func WGSL() string {
	var sb strings.Builder
	sb.WriteString("// Code generated by \"shadergen\"; DO NOT EDIT.\n\n")
	sb.WriteString("struct Uniforms {\n")
	flds, err := UniformLayout(Uniforms{})
	errors.Log(err)
	for _, fl := range flds {
		fmt.Fprintf(&sb, "\t%s: %s,\n", strcase.ToLowerCamel(fl.Name), fl.WGSLType)
	}
	sb.WriteString("}\n\n")
	fmt.Fprintf(&sb, "@group(0) @binding(%d) var<uniform> uniforms: Uniforms;\n\n", int(UniformsBuffer))
	sb.WriteString("struct VertexInput {\n")
	typ := reflect.TypeOf(Vertex{})
	for ai := PositionAttribute; ai < VertexAttributeN; ai++ {
		fd := typ.Field(int(ai))
		wt, _, _, err := wgslType(fd.Type)
		errors.Log(err)
		fmt.Fprintf(&sb, "\t@location(%d) %s: %s,\n", int(ai), strcase.ToLowerCamel(fd.Name), wt)
	}
	sb.WriteString("}\n")
	return sb.String()
}

// VerifyWGSL checks that the given WGSL source declares the agreed
// interface: a var<uniform> of type Uniforms at the agreed group and
// binding numbers, a Uniforms struct with the same fields in the same
// order as the Go struct, and a VertexInput struct whose attribute
// locations and types match the vertex layout. It returns nil when
// everything matches, and an error joining every mismatch otherwise.
func VerifyWGSL(src string) error {
	lines := stringsx.TrimmedLines(src)
	var errs []error
	errs = append(errs, verifyUniformVar(lines)...)
	errs = append(errs, verifyUniformStruct(lines)...)
	errs = append(errs, verifyVertexInput(lines)...)
	return errors.Join(errs...)
}

// verifyUniformVar checks the var<uniform> declaration of type Uniforms.
func verifyUniformVar(lines []string) []error {
	for _, ln := range lines {
		_, decl, ok := strings.Cut(ln, "var<uniform>")
		if !ok {
			continue
		}
		_, typn, ok := strings.Cut(decl, ":")
		if !ok || strings.TrimSuffix(strings.TrimSpace(typn), ";") != "Uniforms" {
			continue
		}
		var errs []error
		if g, ok := scanInt(ln, "@group("); !ok || g != 0 {
			errs = append(errs, errors.Errorf("shader: uniform declaration %q needs @group(0)", ln))
		}
		if b, ok := scanInt(ln, "@binding("); !ok || b != int(UniformsBuffer) {
			errs = append(errs, errors.Errorf("shader: uniform declaration %q needs @binding(%d)", ln, int(UniformsBuffer)))
		}
		return errs
	}
	return []error{errors.New("shader: no var<uniform> declaration of type Uniforms")}
}

// verifyUniformStruct checks the struct Uniforms field names, types,
// and order against the Go struct.
func verifyUniformStruct(lines []string) []error {
	want, err := UniformLayout(Uniforms{})
	if err != nil {
		return []error{err}
	}
	flds, ok := structFields(lines, "Uniforms")
	if !ok {
		return []error{errors.New("shader: no struct Uniforms declaration")}
	}
	var errs []error
	for i, wf := range want {
		wname := strcase.ToLowerCamel(wf.Name)
		if i >= len(flds) {
			errs = append(errs, errors.Errorf("shader: struct Uniforms is missing field %s: %s", wname, wf.WGSLType))
			continue
		}
		if gf := flds[i]; gf.name != wname || gf.typ != wf.WGSLType {
			errs = append(errs, errors.Errorf("shader: struct Uniforms field %d is %s: %s, need %s: %s", i, gf.name, gf.typ, wname, wf.WGSLType))
		}
	}
	for _, gf := range flds[min(len(want), len(flds)):] {
		errs = append(errs, errors.Errorf("shader: struct Uniforms has extra field %s", gf.name))
	}
	return errs
}

// verifyVertexInput checks the struct VertexInput attribute names,
// locations, and types against the vertex layout.
func verifyVertexInput(lines []string) []error {
	flds, ok := structFields(lines, "VertexInput")
	if !ok {
		return []error{errors.New("shader: no struct VertexInput declaration")}
	}
	got := make(map[string]wgslField, len(flds))
	for _, gf := range flds {
		got[gf.name] = gf
	}
	var errs []error
	typ := reflect.TypeOf(Vertex{})
	for ai := PositionAttribute; ai < VertexAttributeN; ai++ {
		fd := typ.Field(int(ai))
		wname := strcase.ToLowerCamel(fd.Name)
		wtyp, _, _, err := wgslType(fd.Type)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		gf, ok := got[wname]
		if !ok {
			errs = append(errs, errors.Errorf("shader: struct VertexInput is missing @location(%d) %s: %s", int(ai), wname, wtyp))
			continue
		}
		delete(got, wname)
		if gf.loc != int(ai) {
			errs = append(errs, errors.Errorf("shader: vertex attribute %s is at @location(%d), need @location(%d)", wname, gf.loc, int(ai)))
		}
		if gf.typ != wtyp {
			errs = append(errs, errors.Errorf("shader: vertex attribute %s has type %s, need %s", wname, gf.typ, wtyp))
		}
	}
	extra := maps.Keys(got)
	slices.Sort(extra)
	for _, nm := range extra {
		errs = append(errs, errors.Errorf("shader: struct VertexInput has extra attribute %s", nm))
	}
	return errs
}

// wgslField is one field line of a WGSL struct declaration.
type wgslField struct {
	name string
	typ  string
	loc  int // @location number, -1 if none
}

// structFields returns the body fields of the named struct in the
// given trimmed WGSL source lines, in declaration order, and whether
// the struct declaration was found at all.
func structFields(lines []string, name string) ([]wgslField, bool) {
	inside := false
	var flds []wgslField
	for _, ln := range lines {
		if !inside {
			wds := strings.Fields(ln)
			if len(wds) >= 2 && wds[0] == "struct" && strings.TrimSuffix(wds[1], "{") == name {
				inside = true
			}
			continue
		}
		if strings.HasPrefix(ln, "}") {
			return flds, true
		}
		if fl, ok := parseField(ln); ok {
			flds = append(flds, fl)
		}
	}
	return flds, inside
}

// parseField parses one struct body line of the form
// "@location(0) position: vec3<f32>," into a [wgslField].
// Comment, blank, and @builtin lines report false.
func parseField(ln string) (wgslField, bool) {
	fl := wgslField{loc: -1}
	if ln == "" || strings.HasPrefix(ln, "//") || strings.HasPrefix(ln, "@builtin") {
		return fl, false
	}
	if loc, ok := scanInt(ln, "@location("); ok {
		fl.loc = loc
		if i := strings.Index(ln, ")"); i >= 0 {
			ln = strings.TrimSpace(ln[i+1:])
		}
	}
	name, typ, ok := strings.Cut(ln, ":")
	if !ok {
		return fl, false
	}
	fl.name = strings.TrimSpace(name)
	fl.typ = strings.TrimSuffix(strings.TrimSpace(typ), ",")
	return fl, true
}

// scanInt returns the non-negative integer immediately following the
// first occurrence of prefix in s, as in scanInt(s, "@binding(").
func scanInt(s, prefix string) (int, bool) {
	i := strings.Index(s, prefix)
	if i < 0 {
		return 0, false
	}
	s = s[i+len(prefix):]
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
