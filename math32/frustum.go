// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Frustum is six half-space planes, ordered left, right, bottom, top,
// near, far, with each plane's normal pointing into the visible volume.
type Frustum struct {
	Planes [6]Plane
}

// Set assigns the six frustum planes directly.
func (f *Frustum) Set(left, right, bottom, top, near, far *Plane) {
	f.Planes[0] = *left
	f.Planes[1] = *right
	f.Planes[2] = *bottom
	f.Planes[3] = *top
	f.Planes[4] = *near
	f.Planes[5] = *far
}

// SetFromMatrix extracts the six frustum planes from a combined
// view-projection matrix using the standard Gribb-Hartmann method.
func (f *Frustum) SetFromMatrix(m *Matrix4) {
	r0x, r0y, r0z, r0w := m.row(0)
	r1x, r1y, r1z, r1w := m.row(1)
	r2x, r2y, r2z, r2w := m.row(2)
	r3x, r3y, r3z, r3w := m.row(3)

	f.Planes[0] = NewPlane(Vector3{r3x + r0x, r3y + r0y, r3z + r0z}, r3w+r0w) // left
	f.Planes[1] = NewPlane(Vector3{r3x - r0x, r3y - r0y, r3z - r0z}, r3w-r0w) // right
	f.Planes[2] = NewPlane(Vector3{r3x + r1x, r3y + r1y, r3z + r1z}, r3w+r1w) // bottom
	f.Planes[3] = NewPlane(Vector3{r3x - r1x, r3y - r1y, r3z - r1z}, r3w-r1w) // top
	f.Planes[4] = NewPlane(Vector3{r3x + r2x, r3y + r2y, r3z + r2z}, r3w+r2w) // near
	f.Planes[5] = NewPlane(Vector3{r3x - r2x, r3y - r2y, r3z - r2z}, r3w-r2w) // far
}

// IntersectsBox reports whether the box has any volume inside the frustum,
// using the positive-vertex (p-vertex) test: for each plane, the box's
// farthest corner along the plane normal must not be strictly outside.
func (f *Frustum) IntersectsBox(b Box3) bool {
	for _, p := range f.Planes {
		pv := b.Min
		if p.Norm.X >= 0 {
			pv.X = b.Max.X
		}
		if p.Norm.Y >= 0 {
			pv.Y = b.Max.Y
		}
		if p.Norm.Z >= 0 {
			pv.Z = b.Max.Z
		}
		if p.DistanceToPoint(pv) < 0 {
			return false
		}
	}
	return true
}
