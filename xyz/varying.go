// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "cogentcore.org/core/math32"

// dynamicCapacity bounds the dynamic arena. Sutherland-Hodgman clipping of
// a triangle against 6 planes never grows the polygon past 3+6=9 vertices,
// but each plane pass allocates one new record per boundary crossing, and
// a convex polygon crosses a plane at most twice, so clipping one triangle
// allocates at most 6*2=12 records. See DESIGN.md.
const dynamicCapacity = 12

// pixelCapacity is fixed: one record per quad lane.
const pixelCapacity = 4

// VaryingData is a typed handle into one record of a [VaryingDataBuffer]
// arena. It is a thin, copyable view (a float32 slice plus a clip-code
// pointer) — copying a VaryingData does not copy the underlying record.
type VaryingData struct {
	rec    []float32
	clip   *uint32
	schema *Schema
}

// Position returns the record's clip-space position.
func (v VaryingData) Position() math32.Vector4 { return v.V4(SVPosition) }

// SetPosition sets the record's clip-space position.
func (v VaryingData) SetPosition(p math32.Vector4) { v.SetV4(SVPosition, p) }

// ClipCode returns the 6-bit frustum-plane violation mask computed for
// this record.
func (v VaryingData) ClipCode() uint32 { return *v.clip }

// SetClipCode sets the record's clip-code.
func (v VaryingData) SetClipCode(c uint32) { *v.clip = c }

// F32 returns the scalar attribute with the given semantic.
func (v VaryingData) F32(sem Semantic) float32 {
	a := v.schema.find(sem)
	return v.rec[a.floatOffset()]
}

// SetF32 sets the scalar attribute with the given semantic.
func (v VaryingData) SetF32(sem Semantic, x float32) {
	a := v.schema.find(sem)
	v.rec[a.floatOffset()] = x
}

// V2 returns the 2-vector attribute with the given semantic.
func (v VaryingData) V2(sem Semantic) math32.Vector2 {
	a := v.schema.find(sem)
	o := a.floatOffset()
	return math32.Vector2{X: v.rec[o], Y: v.rec[o+1]}
}

// SetV2 sets the 2-vector attribute with the given semantic.
func (v VaryingData) SetV2(sem Semantic, x math32.Vector2) {
	a := v.schema.find(sem)
	o := a.floatOffset()
	v.rec[o], v.rec[o+1] = x.X, x.Y
}

// V3 returns the 3-vector attribute with the given semantic.
func (v VaryingData) V3(sem Semantic) math32.Vector3 {
	a := v.schema.find(sem)
	o := a.floatOffset()
	return math32.Vector3{X: v.rec[o], Y: v.rec[o+1], Z: v.rec[o+2]}
}

// SetV3 sets the 3-vector attribute with the given semantic.
func (v VaryingData) SetV3(sem Semantic, x math32.Vector3) {
	a := v.schema.find(sem)
	o := a.floatOffset()
	v.rec[o], v.rec[o+1], v.rec[o+2] = x.X, x.Y, x.Z
}

// V4 returns the 4-vector attribute with the given semantic.
func (v VaryingData) V4(sem Semantic) math32.Vector4 {
	a := v.schema.find(sem)
	o := a.floatOffset()
	return math32.Vector4{X: v.rec[o], Y: v.rec[o+1], Z: v.rec[o+2], W: v.rec[o+3]}
}

// SetV4 sets the 4-vector attribute with the given semantic.
func (v VaryingData) SetV4(sem Semantic, x math32.Vector4) {
	a := v.schema.find(sem)
	o := a.floatOffset()
	v.rec[o], v.rec[o+1], v.rec[o+2], v.rec[o+3] = x.X, x.Y, x.Z, x.W
}

// arena is a bump-allocated, fixed-capacity block of fixed-size records.
type arena struct {
	data  []float32
	clip  []uint32
	count int
}

// VaryingDataBuffer holds the three arenas that carry interpolated
// attributes between pipeline stages: vertex outputs (one per input
// vertex), dynamic outputs (one per clip-generated vertex, reset per
// primitive), and pixel interpolants (one per quad lane, reset per quad).
type VaryingDataBuffer struct {
	schema       Schema
	recordFloats int
	vertex       arena
	dynamic      arena
	pixel        arena
}

// NewVaryingDataBuffer allocates a buffer bound to the given schema. The
// dynamic and pixel arenas are sized to their analytic bounds up front and
// never reallocate mid-draw.
func NewVaryingDataBuffer(schema Schema) *VaryingDataBuffer {
	rf := schema.RecordSize / 4
	return &VaryingDataBuffer{
		schema:       schema,
		recordFloats: rf,
		dynamic: arena{
			data: make([]float32, rf*dynamicCapacity),
			clip: make([]uint32, dynamicCapacity),
		},
		pixel: arena{
			data: make([]float32, rf*pixelCapacity),
			clip: make([]uint32, pixelCapacity),
		},
	}
}

// Schema returns the buffer's bound schema.
func (b *VaryingDataBuffer) Schema() Schema { return b.schema }

// InitVertices reserves n records for vertex outputs. Idempotent: calling
// it again with the same n is a no-op.
func (b *VaryingDataBuffer) InitVertices(n int) {
	if b.vertex.count == n && len(b.vertex.data) == n*b.recordFloats {
		return
	}
	b.vertex.data = make([]float32, n*b.recordFloats)
	b.vertex.clip = make([]uint32, n)
	b.vertex.count = n
}

func (b *VaryingDataBuffer) wrap(a *arena, i int) VaryingData {
	start := i * b.recordFloats
	return VaryingData{rec: a.data[start : start+b.recordFloats : start+b.recordFloats], clip: &a.clip[i], schema: &b.schema}
}

// GetVertex returns the i'th vertex-arena record.
func (b *VaryingDataBuffer) GetVertex(i int) VaryingData { return b.wrap(&b.vertex, i) }

// GetDynamic returns the i'th dynamic-arena record.
func (b *VaryingDataBuffer) GetDynamic(i int) VaryingData { return b.wrap(&b.dynamic, i) }

// GetPixel returns the i'th pixel-arena record.
func (b *VaryingDataBuffer) GetPixel(i int) VaryingData { return b.wrap(&b.pixel, i) }

// AllocDynamic returns a new slot from the dynamic arena. It panics if the
// clip-generated vertex count exceeds the arena's analytic bound — an
// assertion failure per the pipeline's error-handling design, since it is
// impossible by construction.
func (b *VaryingDataBuffer) AllocDynamic() VaryingData {
	if b.dynamic.count >= dynamicCapacity {
		panic("xyz: dynamic varying arena exhausted")
	}
	v := b.wrap(&b.dynamic, b.dynamic.count)
	b.dynamic.count++
	return v
}

// ResetDynamic logically rewinds the dynamic arena (bump-allocator reset;
// does not free). Call once per primitive before clipping.
func (b *VaryingDataBuffer) ResetDynamic() { b.dynamic.count = 0 }

// AllocPixel returns a new slot from the pixel arena. It panics past the
// fixed 4-lane bound.
func (b *VaryingDataBuffer) AllocPixel() VaryingData {
	if b.pixel.count >= pixelCapacity {
		panic("xyz: pixel varying arena exhausted (max 4 lanes per quad)")
	}
	v := b.wrap(&b.pixel, b.pixel.count)
	b.pixel.count++
	return v
}

// ResetPixel logically rewinds the pixel arena. Call once per quad.
func (b *VaryingDataBuffer) ResetPixel() { b.pixel.count = 0 }
