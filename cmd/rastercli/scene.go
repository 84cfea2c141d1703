// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	goColor "image/color"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
)

// canvasImage adapts an [*xyz.ImageCanvas] to the standard [image.Image]
// interface so it can be handed to imagex's format-dispatching encoder.
type canvasImage struct {
	c *xyz.ImageCanvas
}

func (c canvasImage) ColorModel() goColor.Model { return goColor.NRGBAModel }
func (c canvasImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.c.Width(), c.c.Height())
}

func (c canvasImage) At(x, y int) goColor.Color {
	p := c.c.GetPixel(x, y)
	return goColor.NRGBA{
		R: uint8(math32.Clamp01(p.R)*255 + 0.5),
		G: uint8(math32.Clamp01(p.G)*255 + 0.5),
		B: uint8(math32.Clamp01(p.B)*255 + 0.5),
		A: uint8(math32.Clamp01(p.A)*255 + 0.5),
	}
}

// demoCubeMesh returns a cube spanning [-1,1] on each axis with per-vertex normals, 6 faces
// x 2 triangles each, used as the rastercli demo scene.
func demoCubeMesh() *xyz.Mesh {
	faces := []struct {
		normal math32.Vector3
		quad   [4]math32.Vector3
	}{
		{math32.Vec3(0, 0, 1), [4]math32.Vector3{{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1}}},
		{math32.Vec3(0, 0, -1), [4]math32.Vector3{{X: 1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: -1}}},
		{math32.Vec3(1, 0, 0), [4]math32.Vector3{{X: 1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: 1}}},
		{math32.Vec3(-1, 0, 0), [4]math32.Vector3{{X: -1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: 1}, {X: -1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: -1}}},
		{math32.Vec3(0, 1, 0), [4]math32.Vector3{{X: -1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1}}},
		{math32.Vec3(0, -1, 0), [4]math32.Vector3{{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: 1}}},
	}

	mesh := &xyz.Mesh{}
	for _, f := range faces {
		base := uint32(len(mesh.Positions))
		for _, p := range f.quad {
			mesh.Positions = append(mesh.Positions, p)
			mesh.Normals = append(mesh.Normals, f.normal)
		}
		// Quads above are listed counterclockwise toward their outward
		// normal in view space; the projector's NDC->screen Y-flip inverts
		// 2D winding, so triangle indices are reversed here to stay
		// front-facing (and visible under CullBack) in screen space.
		mesh.Indices = append(mesh.Indices,
			base+0, base+2, base+1,
			base+0, base+3, base+2,
		)
	}
	return mesh
}
