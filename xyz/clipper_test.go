package xyz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cogentcore.org/core/math32"
)

func positionOnlySchema(t *testing.T) Schema {
	s, err := NewSchema(Attr{ByteOffset: 0, Semantic: SVPosition, Format: V4})
	assert.NoError(t, err)
	return s
}

func makeVertex(buf *VaryingDataBuffer, i int, p math32.Vector4) VaryingData {
	rec := buf.GetVertex(i)
	rec.SetPosition(p)
	rec.SetClipCode(clipCodeOf(p))
	return rec
}

func insideFrustum(p math32.Vector4) bool {
	return p.X >= -p.W && p.X <= p.W && p.Y >= -p.W && p.Y <= p.W && p.Z >= -p.W && p.Z <= p.W
}

func TestClipTriangleFullyInside(t *testing.T) {
	buf := NewVaryingDataBuffer(positionOnlySchema(t))
	buf.InitVertices(3)
	v0 := makeVertex(buf, 0, math32.Vector4{X: 0, Y: 0, Z: 0, W: 1})
	v1 := makeVertex(buf, 1, math32.Vector4{X: 0.5, Y: 0, Z: 0, W: 1})
	v2 := makeVertex(buf, 2, math32.Vector4{X: 0, Y: 0.5, Z: 0, W: 1})

	c := NewClipper()
	buf.ResetDynamic()
	tris := c.ClipTriangle(buf, v0, v1, v2)
	assert.Len(t, tris, 1)
	assert.Equal(t, v0.Position(), tris[0].V0.Position())
}

func TestClipTriangleFullyOutside(t *testing.T) {
	buf := NewVaryingDataBuffer(positionOnlySchema(t))
	buf.InitVertices(3)
	// All three vertices beyond the +x plane (w-x<0) for the same w.
	v0 := makeVertex(buf, 0, math32.Vector4{X: 2, Y: 0, Z: 0, W: 1})
	v1 := makeVertex(buf, 1, math32.Vector4{X: 3, Y: 0, Z: 0, W: 1})
	v2 := makeVertex(buf, 2, math32.Vector4{X: 2, Y: 1, Z: 0, W: 1})

	c := NewClipper()
	buf.ResetDynamic()
	tris := c.ClipTriangle(buf, v0, v1, v2)
	assert.Nil(t, tris)
}

func TestClipTrianglePartial(t *testing.T) {
	buf := NewVaryingDataBuffer(positionOnlySchema(t))
	buf.InitVertices(3)
	v0 := makeVertex(buf, 0, math32.Vector4{X: 0, Y: 0, Z: 0, W: 1})
	v1 := makeVertex(buf, 1, math32.Vector4{X: 2, Y: 0, Z: 0, W: 1})
	v2 := makeVertex(buf, 2, math32.Vector4{X: 0, Y: 2, Z: 0, W: 1})

	c := NewClipper()
	buf.ResetDynamic()
	tris := c.ClipTriangle(buf, v0, v1, v2)
	assert.NotEmpty(t, tris)
	for _, tri := range tris {
		for _, v := range []VaryingData{tri.V0, tri.V1, tri.V2} {
			assert.Equal(t, uint32(0), v.ClipCode())
			assert.True(t, insideFrustum(v.Position()))
		}
	}
}

func TestClipLinePartial(t *testing.T) {
	buf := NewVaryingDataBuffer(positionOnlySchema(t))
	buf.InitVertices(2)
	v0 := makeVertex(buf, 0, math32.Vector4{X: 0, Y: 0, Z: 0, W: 1})
	v1 := makeVertex(buf, 1, math32.Vector4{X: 3, Y: 0, Z: 0, W: 1})

	c := NewClipper()
	buf.ResetDynamic()
	seg, ok := c.ClipLine(buf, v0, v1)
	assert.True(t, ok)
	assert.True(t, insideFrustum(seg.V0.Position()))
	assert.True(t, insideFrustum(seg.V1.Position()))
	assert.InDelta(t, 1, seg.V1.Position().X, 1e-5, "clipped endpoint lands exactly on x=w")
}

func TestClipLineFullyOutside(t *testing.T) {
	buf := NewVaryingDataBuffer(positionOnlySchema(t))
	buf.InitVertices(2)
	v0 := makeVertex(buf, 0, math32.Vector4{X: 2, Y: 0, Z: 0, W: 1})
	v1 := makeVertex(buf, 1, math32.Vector4{X: 3, Y: 0, Z: 0, W: 1})

	c := NewClipper()
	buf.ResetDynamic()
	_, ok := c.ClipLine(buf, v0, v1)
	assert.False(t, ok)
}
