// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "cogentcore.org/core/math32"

// clipCodeOf tests a clip-space position against the 6 view-frustum
// half-spaces (x<-w, x>w, y<-w, y>w, z<-w, z>w) and returns the bitmask of
// violated planes, bit i set meaning the vertex is outside plane i.
func clipCodeOf(p math32.Vector4) uint32 {
	var code uint32
	if p.X < -p.W {
		code |= 1 << 0
	}
	if p.X > p.W {
		code |= 1 << 1
	}
	if p.Y < -p.W {
		code |= 1 << 2
	}
	if p.Y > p.W {
		code |= 1 << 3
	}
	if p.Z < -p.W {
		code |= 1 << 4
	}
	if p.Z > p.W {
		code |= 1 << 5
	}
	return code
}

// runVertexStage invokes the shader's vertex entry for every input vertex,
// writing into the buffer's vertex arena, then computes and stores each
// record's clip code.
func runVertexStage(buf *VaryingDataBuffer, mesh *Mesh, shader Shader) {
	n := len(mesh.Positions)
	buf.InitVertices(n)
	for i := 0; i < n; i++ {
		rec := buf.GetVertex(i)
		shader.Vertex(mesh, i, rec)
		rec.SetClipCode(clipCodeOf(rec.Position()))
	}
}
