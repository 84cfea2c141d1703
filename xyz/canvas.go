// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

// Canvas is the external framebuffer contract the rasterizer core writes
// into. Presenting a Canvas to a window or encoding it to an image file is
// out of scope here — Canvas is only the pixel/depth read-write surface
// the core needs.
type Canvas interface {
	Width() int
	Height() int
	SetPixel(x, y int, c Color)
	GetPixel(x, y int) Color
	GetDepth(x, y int) float32
	SetDepth(x, y int, d float32)
	Clear(c Color, depth float32)
}

// ImageCanvas is an in-memory [Canvas] backed by a packed-ARGB color
// buffer and a float32 depth buffer.
type ImageCanvas struct {
	width, height int
	color         []uint32
	depth         []float32
}

// NewImageCanvas allocates a w x h canvas.
func NewImageCanvas(w, h int) *ImageCanvas {
	return &ImageCanvas{
		width:  w,
		height: h,
		color:  make([]uint32, w*h),
		depth:  make([]float32, w*h),
	}
}

func (c *ImageCanvas) Width() int  { return c.width }
func (c *ImageCanvas) Height() int { return c.height }

func (c *ImageCanvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

func (c *ImageCanvas) SetPixel(x, y int, col Color) {
	if !c.inBounds(x, y) {
		return
	}
	c.color[y*c.width+x] = col.Pack()
}

func (c *ImageCanvas) GetPixel(x, y int) Color {
	if !c.inBounds(x, y) {
		return Color{}
	}
	return UnpackColor(c.color[y*c.width+x])
}

func (c *ImageCanvas) GetDepth(x, y int) float32 {
	if !c.inBounds(x, y) {
		return 1
	}
	return c.depth[y*c.width+x]
}

func (c *ImageCanvas) SetDepth(x, y int, d float32) {
	if !c.inBounds(x, y) {
		return
	}
	c.depth[y*c.width+x] = d
}

// Clear fills every pixel with c and every depth sample with depth.
func (c *ImageCanvas) Clear(col Color, depth float32) {
	packed := col.Pack()
	for i := range c.color {
		c.color[i] = packed
		c.depth[i] = depth
	}
}

// RGBA8 returns the canvas color buffer as a contiguous byte slice in
// R,G,B,A order per pixel, ready for handing to an image encoder.
func (c *ImageCanvas) RGBA8() []byte {
	out := make([]byte, c.width*c.height*4)
	for i, p := range c.color {
		a := byte(p >> 24)
		r := byte(p >> 16)
		g := byte(p >> 8)
		b := byte(p)
		out[i*4+0] = r
		out[i*4+1] = g
		out[i*4+2] = b
		out[i*4+3] = a
	}
	return out
}
