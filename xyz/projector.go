// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "cogentcore.org/core/math32"

// Projection is a 2D screen-space vertex produced by the [Projector].
type Projection struct {
	X, Y int32
	// InvW is 1/w_clip, used for perspective-correct barycentric
	// interpolation of varyings.
	InvW float32
	// Depth is the camera-linear depth in [0,1] stored for the Z-test.
	Depth float32
	// InvDepth is 1/Depth, used for the perspective-correct (hyperbolic)
	// interpolation of Depth across a triangle's screen-space area —
	// the same mathematical form the rasterizer core uses for varyings,
	// applied to the one attribute (depth) that must not be interpolated
	// affinely. See DESIGN.md.
	InvDepth float32
}

// Projector converts clip-space positions to fixed-point screen-space
// vertices.
type Projector struct{}

// NewProjector returns a ready-to-use Projector. It holds no state.
func NewProjector() *Projector { return &Projector{} }

// Project converts a clip-space position to a screen-space [Projection]
// against a W x H viewport, using the given camera to linearize depth.
func (p *Projector) Project(clip math32.Vector4, camera Camera, width, height int) Projection {
	invW := 1 / clip.W
	ndcX := clip.X * invW
	ndcY := clip.Y * invW
	ndcZ := clip.Z * invW

	x := math32.Round((ndcX*0.5 + 0.5) * float32(width))
	y := math32.Round((1 - (ndcY*0.5 + 0.5)) * float32(height))

	depth := camera.Linearize(ndcZ)
	invDepth := float32(0)
	if depth != 0 {
		invDepth = 1 / depth
	}

	return Projection{
		X:        int32(x),
		Y:        int32(y),
		InvW:     invW,
		Depth:    depth,
		InvDepth: invDepth,
	}
}
