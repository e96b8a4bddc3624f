// Copyright (c) 2026, The Night City Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of
// numbers with tolerance (in other words, near equality).
package tolassert

import (
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/constraints"
)

// Equal asserts that the two given numbers are within the default
// tolerance (1e-7) of each other.
func Equal[T constraints.Float](t assert.TestingT, expected, actual T, msgAndArgs ...any) bool {
	return EqualTol(t, expected, actual, 1.0e-7, msgAndArgs...)
}

// EqualTol asserts that the two given numbers are within the given
// tolerance of each other.
func EqualTol[T constraints.Float](t assert.TestingT, expected, actual, tol T, msgAndArgs ...any) bool {
	return assert.InDelta(t, expected, actual, float64(tol), msgAndArgs...)
}

// EqualSlice asserts that the elements of the two given slices of numbers
// are within the default tolerance (1e-7) of each other.
func EqualSlice[T constraints.Float](t assert.TestingT, expected, actual []T, msgAndArgs ...any) bool {
	return EqualTolSlice(t, expected, actual, 1.0e-7, msgAndArgs...)
}

// EqualTolSlice asserts that the elements of the two given slices of
// numbers are within the given tolerance of each other.
func EqualTolSlice[T constraints.Float](t assert.TestingT, expected, actual []T, tol T, msgAndArgs ...any) bool {
	if !assert.Equal(t, len(expected), len(actual), msgAndArgs...) {
		return false
	}
	res := true
	for i, ev := range expected {
		if !EqualTol(t, ev, actual[i], tol, msgAndArgs...) {
			res = false
		}
	}
	return res
}
