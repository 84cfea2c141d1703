// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "cogentcore.org/core/math32"

// Color is a straight (non-premultiplied) floating-point RGBA color in
// [0,1] per channel, the type shader Pixel entries return.
type Color struct {
	R, G, B, A float32
}

// Clamp clamps every channel to [0,1].
func (c Color) Clamp() Color {
	return Color{
		R: math32.Clamp01(c.R),
		G: math32.Clamp01(c.G),
		B: math32.Clamp01(c.B),
		A: math32.Clamp01(c.A),
	}
}

// Pack converts the color to the framebuffer's 32-bit ARGB word (A,R,G,B
// byte order inside the u32), clamping each channel first.
func (c Color) Pack() uint32 {
	c = c.Clamp()
	a := uint32(c.A*255 + 0.5)
	r := uint32(c.R*255 + 0.5)
	g := uint32(c.G*255 + 0.5)
	b := uint32(c.B*255 + 0.5)
	return a<<24 | r<<16 | g<<8 | b
}

// UnpackColor reconstructs a Color from a packed 32-bit ARGB word.
func UnpackColor(argb uint32) Color {
	a := float32((argb>>24)&0xff) / 255
	r := float32((argb>>16)&0xff) / 255
	g := float32((argb>>8)&0xff) / 255
	b := float32(argb&0xff) / 255
	return Color{R: r, G: g, B: b, A: a}
}
