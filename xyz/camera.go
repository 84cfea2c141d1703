// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "cogentcore.org/core/math32"

// Camera is the external contract the core consumes for view and
// projection matrices and depth linearization.
type Camera interface {
	ViewMatrix() math32.Matrix4
	ProjectionMatrix() math32.Matrix4
	// Linearize converts a post-divide NDC z (range [-1,1]) to a
	// camera-linear depth in [0,1] along the near-far axis.
	Linearize(ndcZ float32) float32
	Position() math32.Vector3
}

// PerspectiveCamera is a concrete [Camera] built from a look-at view and a
// standard perspective projection.
type PerspectiveCamera struct {
	eye, target, up   math32.Vector3
	fovy, aspect      float32
	near, far         float32
	view, projection  math32.Matrix4
}

// NewPerspectiveCamera builds a camera at eye looking at target, with
// vertical field of view fovy in degrees.
func NewPerspectiveCamera(eye, target, up math32.Vector3, fovy, aspect, near, far float32) *PerspectiveCamera {
	c := &PerspectiveCamera{eye: eye, target: target, up: up, fovy: fovy, aspect: aspect, near: near, far: far}
	c.view = math32.NewLookAt(eye, target, up)
	c.projection.SetPerspective(fovy, aspect, near, far)
	return c
}

// SetLookAt repositions the camera.
func (c *PerspectiveCamera) SetLookAt(eye, target, up math32.Vector3) {
	c.eye, c.target, c.up = eye, target, up
	c.view = math32.NewLookAt(eye, target, up)
}

func (c *PerspectiveCamera) ViewMatrix() math32.Matrix4       { return c.view }
func (c *PerspectiveCamera) ProjectionMatrix() math32.Matrix4 { return c.projection }
func (c *PerspectiveCamera) Position() math32.Vector3         { return c.eye }

// Linearize maps NDC z in [-1,1] (as produced by [math32.Matrix4.SetPerspective])
// back to camera-linear view-space depth normalized to [0,1] over [near,far].
func (c *PerspectiveCamera) Linearize(ndcZ float32) float32 {
	z := (2 * c.near * c.far) / (c.far + c.near - ndcZ*(c.far-c.near))
	return (z - c.near) / (c.far - c.near)
}
