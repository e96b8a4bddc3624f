// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stringsx provides additional string functions
// beyond those in the standard strings package.
package stringsx

import "strings"

// SplitLines is a windows-safe version of [strings.Split] on newlines,
// removing any carriage returns first.
func SplitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

// ByteSplitLines is a windows-safe version of [bytes.Split] on newlines,
// operating on a string converted from bytes.
func ByteSplitLines(bs []byte) []string {
	return SplitLines(string(bs))
}

// TrimmedLines returns the lines of the given string, with any
// leading and trailing whitespace trimmed from each line.
func TrimmedLines(s string) []string {
	sl := SplitLines(s)
	for i, ln := range sl {
		sl[i] = strings.TrimSpace(ln)
	}
	return sl
}
