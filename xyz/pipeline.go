// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"errors"
	"log/slog"

	"cogentcore.org/core/math32"
)

// ErrEmptyMesh is returned by [Pipeline.Draw] when the mesh has no
// vertices.
var ErrEmptyMesh = errors.New("xyz: mesh has no vertices")

// Pipeline wires the vertex stage, clipper, projector, and rasterizer core
// around a single shader's varying schema. One Pipeline is built per
// distinct schema and reused across draws.
type Pipeline struct {
	buf   *VaryingDataBuffer
	clip  *Clipper
	proj  *Projector
	raster *RasterizerCore
}

// NewPipeline allocates a Pipeline whose varying arenas are sized for the
// given schema.
func NewPipeline(schema Schema) *Pipeline {
	return &Pipeline{
		buf:    NewVaryingDataBuffer(schema),
		clip:   NewClipper(),
		proj:   NewProjector(),
		raster: NewRasterizerCore(),
	}
}

// Draw runs the full vertex -> clip -> project -> rasterize pipeline for
// mesh against camera, writing into canvas under model transform model.
func (p *Pipeline) Draw(mesh *Mesh, shader Shader, state RenderState, canvas Canvas, camera Camera, model math32.Matrix4) error {
	if mesh.NumVertices() == 0 {
		return ErrEmptyMesh
	}

	view := camera.ViewMatrix()
	projMat := camera.ProjectionMatrix()

	var mv, vp, mvp math32.Matrix4
	mv.MulMatrices(&view, &model)
	vp.MulMatrices(&projMat, &view)
	mvp.MulMatrices(&projMat, &mv)
	mInv, ok := model.Inverse()
	if !ok {
		slog.Debug("xyz: model matrix is not invertible, using identity for MInv", "op", "Pipeline.Draw")
		mInv = math32.Identity4()
	}

	shader.SetUniforms(Uniforms{
		V:              view,
		P:              projMat,
		VP:             vp,
		M:              model,
		MInv:           mInv,
		MV:             mv,
		MVP:            mvp,
		CameraWorldPos: camera.Position(),
	})

	var frustum math32.Frustum
	frustum.SetFromMatrix(&vp)
	worldBounds := mesh.Bounds().MulMatrix4(&model)
	if !frustum.IntersectsBox(worldBounds) {
		return nil
	}

	runVertexStage(p.buf, mesh, shader)

	width, height := canvas.Width(), canvas.Height()
	numTris := mesh.NumTriangles()
	for t := 0; t < numTris; t++ {
		ai, bi, ci := mesh.Triangle(t)
		v0 := p.buf.GetVertex(ai)
		v1 := p.buf.GetVertex(bi)
		v2 := p.buf.GetVertex(ci)

		p.buf.ResetDynamic()
		clipped := p.clip.ClipTriangle(p.buf, v0, v1, v2)
		if len(clipped) == 0 {
			continue
		}

		for _, tri := range clipped {
			proj := Triangle[Projection]{
				V0: p.proj.Project(tri.V0.Position(), camera, width, height),
				V1: p.proj.Project(tri.V1.Position(), camera, width, height),
				V2: p.proj.Project(tri.V2.Position(), camera, width, height),
			}
			p.raster.DrawTriangle(p.buf, proj, tri, shader, state, canvas)
		}
	}
	return nil
}
