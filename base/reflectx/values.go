// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/nightcity/citygpu/enums"
)

// AnyIsNil checks if the given value is nil in any way that would make it
// unusable, including if it is an invalid reflect value or a nil pointer.
func AnyIsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// ToBool robustly converts the given value to a bool, handling all basic
// elemental types directly and falling back on reflection for others.
func ToBool(v any) (bool, error) {
	switch vt := v.(type) {
	case bool:
		return vt, nil
	case int:
		return vt != 0, nil
	case int32:
		return vt != 0, nil
	case int64:
		return vt != 0, nil
	case float32:
		return vt != 0, nil
	case float64:
		return vt != 0, nil
	case string:
		r, err := strconv.ParseBool(vt)
		if err != nil {
			return false, fmt.Errorf("unable to convert string %q to bool: %w", vt, err)
		}
		return r, nil
	}
	uv := Underlying(reflect.ValueOf(v))
	if !uv.IsValid() {
		return false, fmt.Errorf("unable to convert nil value to bool")
	}
	switch uv.Kind() {
	case reflect.Bool:
		return uv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uv.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uv.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return uv.Float() != 0, nil
	case reflect.String:
		r, err := strconv.ParseBool(uv.String())
		if err != nil {
			return false, fmt.Errorf("unable to convert string %q to bool: %w", uv.String(), err)
		}
		return r, nil
	default:
		return false, fmt.Errorf("unable to convert value of type %T to bool", v)
	}
}

// ToInt robustly converts the given value to an int64, handling all basic
// elemental types directly and falling back on reflection for others.
// Strings are parsed with base 0, so hex and octal prefixes work.
func ToInt(v any) (int64, error) {
	switch vt := v.(type) {
	case int:
		return int64(vt), nil
	case int32:
		return int64(vt), nil
	case int64:
		return vt, nil
	case float32:
		return int64(vt), nil
	case float64:
		return int64(vt), nil
	case string:
		r, err := strconv.ParseInt(vt, 0, 64)
		if err != nil {
			return 0, fmt.Errorf("unable to convert string %q to int: %w", vt, err)
		}
		return r, nil
	}
	uv := Underlying(reflect.ValueOf(v))
	if !uv.IsValid() {
		return 0, fmt.Errorf("unable to convert nil value to int")
	}
	switch uv.Kind() {
	case reflect.Bool:
		if uv.Bool() {
			return 1, nil
		}
		return 0, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int64(uv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return int64(uv.Float()), nil
	case reflect.String:
		r, err := strconv.ParseInt(uv.String(), 0, 64)
		if err != nil {
			return 0, fmt.Errorf("unable to convert string %q to int: %w", uv.String(), err)
		}
		return r, nil
	default:
		return 0, fmt.Errorf("unable to convert value of type %T to int", v)
	}
}

// ToFloat robustly converts the given value to a float64, handling all
// basic elemental types directly and falling back on reflection for others.
func ToFloat(v any) (float64, error) {
	switch vt := v.(type) {
	case float64:
		return vt, nil
	case float32:
		return float64(vt), nil
	case int:
		return float64(vt), nil
	case int32:
		return float64(vt), nil
	case int64:
		return float64(vt), nil
	case string:
		r, err := strconv.ParseFloat(vt, 64)
		if err != nil {
			return 0, fmt.Errorf("unable to convert string %q to float: %w", vt, err)
		}
		return r, nil
	}
	uv := Underlying(reflect.ValueOf(v))
	if !uv.IsValid() {
		return 0, fmt.Errorf("unable to convert nil value to float")
	}
	switch uv.Kind() {
	case reflect.Bool:
		if uv.Bool() {
			return 1, nil
		}
		return 0, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(uv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(uv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return uv.Float(), nil
	case reflect.String:
		r, err := strconv.ParseFloat(uv.String(), 64)
		if err != nil {
			return 0, fmt.Errorf("unable to convert string %q to float: %w", uv.String(), err)
		}
		return r, nil
	default:
		return 0, fmt.Errorf("unable to convert value of type %T to float", v)
	}
}

// ToFloat32 robustly converts the given value to a float32,
// using [ToFloat].
func ToFloat32(v any) (float32, error) {
	r, err := ToFloat(v)
	return float32(r), err
}

// ToString robustly converts anything to a string. It never fails,
// returning default formatting when no better conversion is available.
func ToString(v any) string {
	switch vt := v.(type) {
	case string:
		return vt
	case []byte:
		return string(vt)
	}
	if st, ok := v.(fmt.Stringer); ok {
		return st.String()
	}
	uv := Underlying(reflect.ValueOf(v))
	if !uv.IsValid() {
		return "nil"
	}
	switch uv.Kind() {
	case reflect.Float32:
		return strconv.FormatFloat(uv.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(uv.Float(), 'g', -1, 64)
	}
	return fmt.Sprintf("%v", uv.Interface())
}

// SetRobust robustly sets the 'to' value from the 'from' value, where 'to'
// must be a pointer to the target. Matching types are set directly, and
// otherwise conversions are attempted through the To* functions and the
// [enums.EnumSetter] and [encoding.TextUnmarshaler] interfaces. It returns
// an error if no conversion is possible.
func SetRobust(to, from any) error {
	if AnyIsNil(to) {
		return fmt.Errorf("reflectx.SetRobust: 'to' value is nil")
	}
	tp := UnderlyingPointer(reflect.ValueOf(to))
	if !tp.IsValid() || tp.Kind() != reflect.Pointer || !tp.Elem().CanSet() {
		return fmt.Errorf("reflectx.SetRobust: 'to' value of type %T is not a settable pointer", to)
	}
	tpv := tp.Elem()
	typ := tpv.Type()

	fv := reflect.ValueOf(from)
	if fv.IsValid() && fv.Type().AssignableTo(typ) {
		tpv.Set(fv)
		return nil
	}

	if es, ok := tp.Interface().(enums.EnumSetter); ok {
		if fs, ok := from.(string); ok {
			return es.SetString(fs)
		}
		fi, err := ToInt(from)
		if err != nil {
			return err
		}
		es.SetInt64(fi)
		return nil
	}
	if tu, ok := tp.Interface().(encoding.TextUnmarshaler); ok {
		if fs, ok := from.(string); ok {
			return tu.UnmarshalText([]byte(fs))
		}
	}

	switch typ.Kind() {
	case reflect.Bool:
		b, err := ToBool(from)
		if err != nil {
			return err
		}
		tpv.SetBool(b)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := ToInt(from)
		if err != nil {
			return err
		}
		tpv.SetInt(i)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		i, err := ToInt(from)
		if err != nil {
			return err
		}
		tpv.SetUint(uint64(i))
		return nil
	case reflect.Float32, reflect.Float64:
		f, err := ToFloat(from)
		if err != nil {
			return err
		}
		tpv.SetFloat(f)
		return nil
	case reflect.String:
		tpv.SetString(ToString(from))
		return nil
	case reflect.Slice:
		return setSliceRobust(tpv, from)
	}

	fuv := Underlying(fv)
	if fuv.IsValid() && fuv.Type().AssignableTo(typ) {
		tpv.Set(fuv)
		return nil
	}
	if fuv.IsValid() && fuv.Type().ConvertibleTo(typ) {
		tpv.Set(fuv.Convert(typ))
		return nil
	}
	return fmt.Errorf("reflectx.SetRobust: unable to set value of type %T from value %v of type %T", to, from, from)
}

// setSliceRobust sets a settable slice value from the given value,
// element-wise through [SetRobust]. Strings are treated as
// comma-separated element lists, with optional surrounding brackets.
func setSliceRobust(tpv reflect.Value, from any) error {
	typ := tpv.Type()
	if fs, ok := from.(string); ok {
		fs = strings.TrimPrefix(strings.TrimSuffix(strings.TrimSpace(fs), "]"), "[")
		if fs == "" {
			tpv.Set(reflect.MakeSlice(typ, 0, 0))
			return nil
		}
		fields := strings.Split(fs, ",")
		sl := reflect.MakeSlice(typ, len(fields), len(fields))
		for i, f := range fields {
			err := SetRobust(sl.Index(i).Addr().Interface(), strings.TrimSpace(f))
			if err != nil {
				return err
			}
		}
		tpv.Set(sl)
		return nil
	}
	fuv := Underlying(reflect.ValueOf(from))
	if fuv.IsValid() && (fuv.Kind() == reflect.Slice || fuv.Kind() == reflect.Array) {
		n := fuv.Len()
		sl := reflect.MakeSlice(typ, n, n)
		for i := range n {
			err := SetRobust(sl.Index(i).Addr().Interface(), fuv.Index(i).Interface())
			if err != nil {
				return err
			}
		}
		tpv.Set(sl)
		return nil
	}
	return fmt.Errorf("reflectx.SetRobust: unable to set slice from value %v of type %T", from, from)
}
