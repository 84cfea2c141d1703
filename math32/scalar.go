// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 provides float32 vector, matrix and geometric-plane
// primitives for the rasterizer's camera, clipping and projection stages.
package math32

import (
	"github.com/chewxy/math32"
)

// Pi is the float32 value of the mathematical constant pi.
const Pi = math32.Pi

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 { return math32.Sqrt(x) }

// Abs returns the absolute value of x.
func Abs(x float32) float32 { return math32.Abs(x) }

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 { return math32.Floor(x) }

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float32) float32 { return math32.Ceil(x) }

// Round returns the nearest integer, rounding half away from zero.
func Round(x float32) float32 { return math32.Round(x) }

// Tan returns the tangent of x (radians).
func Tan(x float32) float32 { return math32.Tan(x) }

// Sin returns the sine of x (radians).
func Sin(x float32) float32 { return math32.Sin(x) }

// Cos returns the cosine of x (radians).
func Cos(x float32) float32 { return math32.Cos(x) }

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 { return deg * Pi / 180 }

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 { return rad * 180 / Pi }

// Min returns the smaller of a, b.
func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a, b.
func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// MinI returns the smaller of a, b.
func MinI(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// MaxI returns the larger of a, b.
func MaxI(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Clamp restricts x to the range [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Clamp01 restricts x to the range [0, 1].
func Clamp01(x float32) float32 { return Clamp(x, 0, 1) }

// ClampI restricts x to the range [lo, hi].
func ClampI(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float32) float32 { return a + (b-a)*t }
