// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "cogentcore.org/core/math32"

// wireframeSchema is the minimal varying schema wireframe drawing needs:
// clip-space position only.
var wireframeSchema = func() Schema {
	s, err := NewSchema(Attr{ByteOffset: 0, Semantic: SVPosition, Format: V4})
	if err != nil {
		panic(err)
	}
	return s
}()

// DrawWireframe rasterizes every edge of every triangle in mesh as a line,
// clipping each edge independently against the view frustum. It is a
// supplemental drawing mode alongside the shaded [Pipeline.Draw] path, not
// a replacement for it.
func DrawWireframe(mesh *Mesh, transform math32.Matrix4, color Color, canvas Canvas, camera Camera) {
	buf := NewVaryingDataBuffer(wireframeSchema)
	clipper := NewClipper()
	proj := NewProjector()

	var mvp math32.Matrix4
	view := camera.ViewMatrix()
	projMat := camera.ProjectionMatrix()
	var mv math32.Matrix4
	mv.MulMatrices(&view, &transform)
	mvp.MulMatrices(&projMat, &mv)

	n := mesh.NumVertices()
	buf.InitVertices(n)
	for i := 0; i < n; i++ {
		rec := buf.GetVertex(i)
		p := mesh.Positions[i]
		clip := math32.Vector4{X: p.X, Y: p.Y, Z: p.Z, W: 1}.MulMatrix4(&mvp)
		rec.SetPosition(clip)
		rec.SetClipCode(clipCodeOf(clip))
	}

	width, height := canvas.Width(), canvas.Height()
	numTris := mesh.NumTriangles()
	for t := 0; t < numTris; t++ {
		ai, bi, ci := mesh.Triangle(t)
		v := [3]VaryingData{buf.GetVertex(ai), buf.GetVertex(bi), buf.GetVertex(ci)}
		for e := 0; e < 3; e++ {
			buf.ResetDynamic()
			a, b := v[e], v[(e+1)%3]
			seg, ok := clipper.ClipLine(buf, a, b)
			if !ok {
				continue
			}
			pa := proj.Project(seg.V0.Position(), camera, width, height)
			pb := proj.Project(seg.V1.Position(), camera, width, height)
			DrawLine(canvas, int(pa.X), int(pa.Y), int(pb.X), int(pb.Y), color)
		}
	}
}

// DrawLine rasterizes a single-pixel-wide line from (x0,y0) to (x1,y1)
// using Bresenham's algorithm.
func DrawLine(canvas Canvas, x0, y0, x1, y1 int, color Color) {
	dx := abs(x1 - x0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	dy := -abs(y1 - y0)
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		plot(canvas, x, y, color)
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// DrawSmoothLine rasterizes an antialiased line using Xiaolin Wu's
// algorithm, blending color into the canvas's existing pixel by coverage.
func DrawSmoothLine(canvas Canvas, x0, y0, x1, y1 float32, color Color) {
	steep := math32.Abs(y1-y0) > math32.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := y1 - y0
	gradient := float32(1)
	if dx != 0 {
		gradient = dy / dx
	}

	plotWu := func(x, y int, c float32) {
		w := color
		w.A *= c
		if steep {
			blendPlot(canvas, y, x, w)
		} else {
			blendPlot(canvas, x, y, w)
		}
	}

	y := y0
	for x := int(x0); x <= int(x1); x++ {
		yFloor := math32.Floor(y)
		frac := y - yFloor
		plotWu(x, int(yFloor), 1-frac)
		plotWu(x, int(yFloor)+1, frac)
		y += gradient
	}
}

func blendPlot(canvas Canvas, x, y int, c Color) {
	if x < 0 || x >= canvas.Width() || y < 0 || y >= canvas.Height() {
		return
	}
	dst := canvas.GetPixel(x, y)
	a := c.A
	out := Color{
		R: c.R*a + dst.R*(1-a),
		G: c.G*a + dst.G*(1-a),
		B: c.B*a + dst.B*(1-a),
		A: a + dst.A*(1-a),
	}
	canvas.SetPixel(x, y, out)
}

func plot(canvas Canvas, x, y int, c Color) {
	if x < 0 || x >= canvas.Width() || y < 0 || y >= canvas.Height() {
		return
	}
	canvas.SetPixel(x, y, c)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
