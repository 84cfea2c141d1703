// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "cogentcore.org/core/math32"

// Mesh is the vertex-stage input contract: parallel per-vertex attribute
// slices plus a triangle-list index buffer. Mesh file parsing and
// procedural mesh generation are out of scope here — Mesh is the already
// -loaded, in-memory contract the pipeline consumes.
type Mesh struct {
	Positions []math32.Vector3
	Normals   []math32.Vector3
	Tangents  []math32.Vector4
	Texcoords []math32.Vector2
	Colors    []Color
	// Indices lists vertices three at a time, one triangle per group. An
	// empty Indices means the positions themselves are already triangle
	// -ordered (vertex i is used directly, not via an index).
	Indices []uint32
}

// NumVertices returns the count of input vertices (len(Positions)).
func (m *Mesh) NumVertices() int { return len(m.Positions) }

// NumTriangles returns the count of triangles implied by Indices, or by
// Positions directly when Indices is empty.
func (m *Mesh) NumTriangles() int {
	if len(m.Indices) > 0 {
		return len(m.Indices) / 3
	}
	return len(m.Positions) / 3
}

// Triangle returns the three vertex indices of the i'th triangle.
func (m *Mesh) Triangle(i int) (a, b, c int) {
	if len(m.Indices) > 0 {
		base := i * 3
		return int(m.Indices[base]), int(m.Indices[base+1]), int(m.Indices[base+2])
	}
	base := i * 3
	return base, base + 1, base + 2
}

// Bounds returns the axis-aligned bounding box of the mesh's object-space
// positions. It returns an empty Box3 (Max < Min) if the mesh has no
// vertices.
func (m *Mesh) Bounds() math32.Box3 {
	if len(m.Positions) == 0 {
		return math32.Box3{Min: math32.Vector3{X: 1, Y: 1, Z: 1}, Max: math32.Vector3{X: -1, Y: -1, Z: -1}}
	}
	min, max := m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}
	return math32.Box3{Min: min, Max: max}
}
