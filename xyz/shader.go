// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "cogentcore.org/core/math32"

// Uniforms are the standard per-draw matrices and camera data the engine
// populates before a shader's entry points are invoked.
type Uniforms struct {
	V, P, VP       math32.Matrix4
	M, MInv, MV    math32.Matrix4
	MVP            math32.Matrix4
	CameraWorldPos math32.Vector3
}

// Shader binds a vertex entry, a pixel entry, and a varying schema. A
// shader's entry points are pure functions of their explicit inputs and
// the uniforms last set by [Shader.SetUniforms] — the core never inspects
// a shader beyond these three things.
type Shader interface {
	// Schema describes the shader's varying record layout.
	Schema() Schema
	// SetUniforms is called once per draw before the vertex stage runs.
	SetUniforms(u Uniforms)
	// Vertex reads mesh's index'th vertex and writes into out, including
	// SV_POSITION in clip space.
	Vertex(mesh *Mesh, index int, out VaryingData)
	// Pixel reads lane's interpolated varyings from the quad and returns
	// the color to write. The shader may inspect other lanes in quad to
	// compute screen-space derivatives.
	Pixel(quad *QuadContext, lane int) Color
}

// QuadInfo describes one 2x2 pixel block passed to the pixel stage: the
// top-left pixel coordinate, the 4-bit lane coverage mask, the
// perspective-correct barycentric weights per lane, and the per-lane
// linearized depth.
type QuadInfo struct {
	X, Y     int32
	MaskCode uint8
	Wx, Wy, Wz [4]float32
	Depth    [4]float32
}

// Covered reports whether lane (0-3) is covered by the triangle under the
// fill rule.
func (q *QuadInfo) Covered(lane int) bool { return q.MaskCode&(1<<uint(lane)) != 0 }

// QuadContext bundles a [QuadInfo] with the 4 lanes' interpolated varyings,
// giving a pixel shader everything it needs to sample attributes and
// compute finite-difference screen-space derivatives.
type QuadContext struct {
	Info  QuadInfo
	Lanes [4]VaryingData
}

// DDXF32 returns the finite-difference x-derivative ddx = lane(1)-lane(0)
// of a scalar attribute.
func (q *QuadContext) DDXF32(sem Semantic) float32 {
	return q.Lanes[1].F32(sem) - q.Lanes[0].F32(sem)
}

// DDYF32 returns the finite-difference y-derivative ddy = lane(2)-lane(0)
// of a scalar attribute.
func (q *QuadContext) DDYF32(sem Semantic) float32 {
	return q.Lanes[2].F32(sem) - q.Lanes[0].F32(sem)
}

// DDXV2 is the [QuadContext.DDXF32] analogue for a [math32.Vector2] attribute.
func (q *QuadContext) DDXV2(sem Semantic) math32.Vector2 {
	return q.Lanes[1].V2(sem).Sub(q.Lanes[0].V2(sem))
}

// DDYV2 is the [QuadContext.DDYF32] analogue for a [math32.Vector2] attribute.
func (q *QuadContext) DDYV2(sem Semantic) math32.Vector2 {
	return q.Lanes[2].V2(sem).Sub(q.Lanes[0].V2(sem))
}
