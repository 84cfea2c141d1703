// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides testify-style assertions for floating-point
// values that only need to match within a tolerance, which is critical
// for 32-bit math that can vary slightly by platform and operation order.
package tolassert

import "math"

// TestingT is a minimal subset of testing.T, allowing other implementations
// including mock ones.
type TestingT interface {
	Errorf(format string, args ...any)
}

// defaultTol is the default tolerance used by Equal.
const defaultTol = 0.001

// Equal asserts that the two floating point numbers are within the
// default tolerance of each other, returning true if so, logging a
// testify-style error via t.Errorf and returning false if not.
func Equal(t TestingT, expected, actual float64) bool {
	return EqualTol(t, expected, actual, defaultTol)
}

// EqualTol asserts that the two floating point numbers are within the
// given tolerance of each other, returning true if so, logging a
// testify-style error via t.Errorf and returning false if not.
func EqualTol(t TestingT, expected, actual, tol float64) bool {
	diff := math.Abs(expected - actual)
	if diff <= tol {
		return true
	}
	t.Errorf("Not equal within tolerance %g: \n expected: %v\n actual  : %v\n diff: %v", tol, expected, actual, diff)
	return false
}
