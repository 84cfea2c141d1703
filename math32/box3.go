// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Box3 is an axis-aligned bounding box in 3D.
type Box3 struct {
	Min, Max Vector3
}

// MulMatrix4 transforms all eight corners of the box by m and returns the
// axis-aligned box enclosing them, so the result still contains the
// transformed box after a rotation.
func (b Box3) MulMatrix4(m *Matrix4) Box3 {
	xs := [2]float32{b.Min.X, b.Max.X}
	ys := [2]float32{b.Min.Y, b.Max.Y}
	zs := [2]float32{b.Min.Z, b.Max.Z}
	out := Box3{Min: b.Min.MulMatrix4(m)}
	out.Max = out.Min
	for i := 1; i < 8; i++ {
		p := Vector3{X: xs[i&1], Y: ys[i>>1&1], Z: zs[i>>2]}.MulMatrix4(m)
		out.Min, out.Max = out.Min.Min(p), out.Max.Max(p)
	}
	return out
}

// IsEmpty reports whether the box contains no volume.
func (b Box3) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}
