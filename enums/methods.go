// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

// This file contains the generic helper functions that the methods
// generated by enumgen call. Generated code contains only the type
// specific data; all of the logic lives here.

// EnumConstraint is the generic type constraint that all enum
// types satisfy: they are backed by an integer and implement [Enum].
type EnumConstraint interface {
	Enum
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// BitFlagConstraint is the generic type constraint that all bit flag
// enum types satisfy: they are backed by an int64 and implement
// [BitFlag].
type BitFlagConstraint interface {
	BitFlag
	~int64
}

// String returns the string representation of the given
// enum value with the given map available.
func String[T EnumConstraint](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(i.Int64(), 10)
}

// StringExtended returns the string representation of the given
// enum value with the given map available, with the enum type
// extending the other given enum type.
func StringExtended[T, E EnumConstraint](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return E(i).String()
}

// BitIndexStringExtended returns the bit index string representation
// of the given bit flag value with the given map available, with the
// bit flag type extending the other given bit flag type.
func BitIndexStringExtended[T, E BitFlagConstraint](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return E(i).BitIndexString()
}

// BitFlagString returns the string representation of the given bit
// flag value with the given available values.
func BitFlagString[T BitFlagConstraint](i T, values []T) string {
	str := ""
	for _, ie := range values {
		if i.HasFlag(ie) {
			ies := ie.BitIndexString()
			if str == "" {
				str = ies
			} else {
				str += "|" + ies
			}
		}
	}
	return str
}

// BitFlagStringExtended returns the string representation of the given
// bit flag value with the given available values, with the bit flag
// type extending the other bit flag type that has the given extended
// values.
func BitFlagStringExtended[T, E BitFlagConstraint](i T, values []T, extendedValues []E) string {
	str := ""
	for _, ie := range extendedValues {
		if i.HasFlag(ie) {
			ies := ie.BitIndexString()
			if str == "" {
				str = ies
			} else {
				str += "|" + ies
			}
		}
	}
	for _, ie := range values {
		if i.HasFlag(ie) {
			ies := ie.BitIndexString()
			if str == "" {
				str = ies
			} else {
				str += "|" + ies
			}
		}
	}
	return str
}

// SetString sets the given enum value from its string representation
// with the given map available. It returns an error if the string is
// invalid.
func SetString[T EnumConstraint](i *T, s string, valueMap map[string]T, typeName string) error {
	if v, ok := valueMap[s]; ok {
		*i = v
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// SetStringLower sets the given enum value from its string
// representation with the given map available, also checking the
// lowercase version of the given string. It returns an error if the
// string is invalid.
func SetStringLower[T EnumConstraint](i *T, s string, valueMap map[string]T, typeName string) error {
	if v, ok := valueMap[s]; ok {
		*i = v
		return nil
	}
	if v, ok := valueMap[strings.ToLower(s)]; ok {
		*i = v
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// SetStringExtended sets the given enum value from its string
// representation with the given map available, with the enum type
// extending the other enum type, with the given pointer. It returns
// an error if the string is invalid.
func SetStringExtended[T EnumConstraint](i *T, ip EnumSetter, s string, valueMap map[string]T) error {
	if v, ok := valueMap[s]; ok {
		*i = v
		return nil
	}
	return ip.SetString(s)
}

// SetStringLowerExtended sets the given enum value from its string
// representation with the given map available, also checking the
// lowercase version of the given string, with the enum type extending
// the other enum type, with the given pointer. It returns an error if
// the string is invalid.
func SetStringLowerExtended[T EnumConstraint](i *T, ip EnumSetter, s string, valueMap map[string]T) error {
	if v, ok := valueMap[s]; ok {
		*i = v
		return nil
	}
	if v, ok := valueMap[strings.ToLower(s)]; ok {
		*i = v
		return nil
	}
	return ip.SetString(s)
}

// SetStringOr sets the given bit flag value from its string
// representation, which can contain multiple flags separated by
// pipes, while preserving any existing flags, with the given map
// available. It returns an error if the string is invalid.
func SetStringOr[T BitFlagConstraint](i BitFlagSetter, s string, valueMap map[string]T, typeName string) error {
	flags := strings.Split(s, "|")
	for _, flag := range flags {
		if flag == "" {
			continue
		}
		if v, ok := valueMap[flag]; ok {
			i.SetFlag(true, v)
		} else {
			return fmt.Errorf("%s is not a valid value for type %s", flag, typeName)
		}
	}
	return nil
}

// SetStringOrLower sets the given bit flag value from its string
// representation, which can contain multiple flags separated by
// pipes, while preserving any existing flags, with the given map
// available, also checking the lowercase version of each flag string.
// It returns an error if the string is invalid.
func SetStringOrLower[T BitFlagConstraint](i BitFlagSetter, s string, valueMap map[string]T, typeName string) error {
	flags := strings.Split(s, "|")
	for _, flag := range flags {
		if flag == "" {
			continue
		}
		if v, ok := valueMap[flag]; ok {
			i.SetFlag(true, v)
		} else if v, ok := valueMap[strings.ToLower(flag)]; ok {
			i.SetFlag(true, v)
		} else {
			return fmt.Errorf("%s is not a valid value for type %s", flag, typeName)
		}
	}
	return nil
}

// SetStringOrExtended sets the given bit flag value from its string
// representation, which can contain multiple flags separated by
// pipes, while preserving any existing flags, with the given map
// available, with the bit flag type extending the other bit flag
// type, with the given pointer. It returns an error if the string is
// invalid.
func SetStringOrExtended[T BitFlagConstraint](i BitFlagSetter, ip BitFlagSetter, s string, valueMap map[string]T) error {
	flags := strings.Split(s, "|")
	for _, flag := range flags {
		if flag == "" {
			continue
		}
		if v, ok := valueMap[flag]; ok {
			i.SetFlag(true, v)
		} else if err := ip.SetStringOr(flag); err != nil {
			return err
		}
	}
	return nil
}

// SetStringOrLowerExtended sets the given bit flag value from its
// string representation, which can contain multiple flags separated
// by pipes, while preserving any existing flags, with the given map
// available, also checking the lowercase version of each flag string,
// with the bit flag type extending the other bit flag type, with the
// given pointer. It returns an error if the string is invalid.
func SetStringOrLowerExtended[T BitFlagConstraint](i BitFlagSetter, ip BitFlagSetter, s string, valueMap map[string]T) error {
	flags := strings.Split(s, "|")
	for _, flag := range flags {
		if flag == "" {
			continue
		}
		if v, ok := valueMap[flag]; ok {
			i.SetFlag(true, v)
		} else if v, ok := valueMap[strings.ToLower(flag)]; ok {
			i.SetFlag(true, v)
		} else if err := ip.SetStringOr(flag); err != nil {
			return err
		}
	}
	return nil
}

// Desc returns the description of the given enum value with the
// given map available, falling back on the string representation of
// the value.
func Desc[T EnumConstraint](i T, m map[T]string) string {
	if desc, ok := m[i]; ok {
		return desc
	}
	return i.String()
}

// DescExtended returns the description of the given enum value with
// the given map available, with the enum type extending the other
// given enum type.
func DescExtended[T, E EnumConstraint](i T, m map[T]string) string {
	if desc, ok := m[i]; ok {
		return desc
	}
	return E(i).Desc()
}

// Values returns the [Enum] versions of the given type specific
// enum values.
func Values[T EnumConstraint](values []T) []Enum {
	res := make([]Enum, len(values))
	for i, v := range values {
		res[i] = v
	}
	return res
}

// ValuesExtended returns the [Enum] versions of the given type
// specific enum values, with the enum type extending the other enum
// type that has the given extended values, which are placed first.
func ValuesExtended[T, E EnumConstraint](values []T, extendedValues []E) []Enum {
	res := make([]Enum, len(extendedValues)+len(values))
	for i, v := range extendedValues {
		res[i] = v
	}
	ne := len(extendedValues)
	for i, v := range values {
		res[ne+i] = v
	}
	return res
}

// ValuesGlobalExtended returns the given type specific enum values
// with the given extended values placed first, for the global values
// list of an enum type that extends another enum type.
func ValuesGlobalExtended[T EnumConstraint](values []T, extendedValues []T) []T {
	res := make([]T, len(extendedValues)+len(values))
	copy(res, extendedValues)
	copy(res[len(extendedValues):], values)
	return res
}

// HasFlag returns whether the given flags have the given flag set.
// It is safe to call concurrently.
func HasFlag(i *int64, f BitFlag) bool {
	return atomic.LoadInt64(i)&(1<<uint32(f.Int64())) != 0
}

// SetFlag sets the value of the given flags in the given flags to
// the given value. It is safe to call concurrently.
func SetFlag(i *int64, on bool, f ...BitFlag) {
	var mask int64
	for _, v := range f {
		mask |= 1 << uint32(v.Int64())
	}
	in := atomic.LoadInt64(i)
	if on {
		in |= mask
	} else {
		in &^= mask
	}
	atomic.StoreInt64(i, in)
}

// UnmarshalText loads the given enum from the given text.
// It logs any error instead of returning it to prevent a single
// invalid value from stopping the loading of an entire object.
func UnmarshalText(i EnumSetter, text []byte, typeName string) error {
	if err := i.SetString(string(text)); err != nil {
		slog.Error(typeName + ".UnmarshalText: " + err.Error())
	}
	return nil
}

// UnmarshalJSON loads the given enum from the given JSON-encoded
// string. It logs any error instead of returning it to prevent a
// single invalid value from stopping the loading of an entire object.
func UnmarshalJSON(i EnumSetter, data []byte, typeName string) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("%s.UnmarshalJSON: %w", typeName, err)
	}
	if err := i.SetString(s); err != nil {
		slog.Error(typeName + ".UnmarshalJSON: " + err.Error())
	}
	return nil
}

// UnmarshalYAML loads the given enum from the given YAML node.
// It logs any error instead of returning it to prevent a single
// invalid value from stopping the loading of an entire object.
func UnmarshalYAML(i EnumSetter, n *yaml.Node, typeName string) error {
	if err := i.SetString(n.Value); err != nil {
		slog.Error(typeName + ".UnmarshalYAML: " + err.Error())
	}
	return nil
}

// Scan loads the given enum from the given database value.
func Scan(i EnumSetter, value any, typeName string) error {
	if value == nil {
		return nil
	}
	str, ok := value.(string)
	if !ok {
		b, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("field of type %s cannot be scanned from incompatible database value %v of type %T", typeName, value, value)
		}
		str = string(b)
	}
	return i.SetString(str)
}
