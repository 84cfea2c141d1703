// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
)

// litShader is a demo shader implementing simple Lambertian diffuse
// lighting from a single point light, in the teacher's grounded idiom of
// small ad hoc shaders rather than a full PBR material model (out of
// scope for the rasterizer core itself).
type litShader struct {
	schema    xyz.Schema
	uniforms  xyz.Uniforms
	lightPos  math32.Vector3
	baseColor xyz.Color
}

func newLitShader(lightPos math32.Vector3) *litShader {
	s, err := xyz.NewSchema(
		xyz.Attr{ByteOffset: 0, Semantic: xyz.SVPosition, Format: xyz.V4},
		xyz.Attr{ByteOffset: 16, Semantic: xyz.Normal, Format: xyz.V3},
		xyz.Attr{ByteOffset: 28, Semantic: xyz.Position, Format: xyz.V3},
	)
	if err != nil {
		panic(err)
	}
	return &litShader{schema: s, lightPos: lightPos, baseColor: xyz.Color{R: 0.7, G: 0.75, B: 0.85, A: 1}}
}

func (s *litShader) Schema() xyz.Schema         { return s.schema }
func (s *litShader) SetUniforms(u xyz.Uniforms) { s.uniforms = u }

func (s *litShader) Vertex(mesh *xyz.Mesh, index int, out xyz.VaryingData) {
	p := mesh.Positions[index]
	clip := math32.Vector4{X: p.X, Y: p.Y, Z: p.Z, W: 1}.MulMatrix4(&s.uniforms.MVP)
	out.SetPosition(clip)

	worldPos := p.MulMatrix4(&s.uniforms.M)
	out.SetV3(xyz.Position, worldPos)

	n := mesh.Normals[index]
	normalMat := s.uniforms.MInv.Transpose()
	worldNormal := n.MulMatrix4(&normalMat).Normal()
	out.SetV3(xyz.Normal, worldNormal)
}

func (s *litShader) Pixel(quad *xyz.QuadContext, lane int) xyz.Color {
	rec := quad.Lanes[lane]
	normal := rec.V3(xyz.Normal).Normal()
	worldPos := rec.V3(xyz.Position)

	lightDir := s.lightPos.Sub(worldPos).Normal()
	diffuse := math32.Clamp01(normal.Dot(lightDir))
	ambient := float32(0.15)
	intensity := ambient + (1-ambient)*diffuse

	return xyz.Color{
		R: s.baseColor.R * intensity,
		G: s.baseColor.G * intensity,
		B: s.baseColor.B * intensity,
		A: 1,
	}
}
