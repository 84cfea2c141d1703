package xyz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cogentcore.org/core/math32"
)

func TestOrient2DSign(t *testing.T) {
	// CCW triangle in a y-up sense has positive orientation.
	assert.True(t, Orient2D(0, 0, 10, 0, 0, 10) > 0)
	// Swapping two vertices flips the sign.
	assert.True(t, Orient2D(0, 0, 0, 10, 10, 0) < 0)
	// Degenerate (collinear) points give zero.
	assert.Equal(t, int32(0), Orient2D(0, 0, 1, 1, 2, 2))
}

// flatColorShader is a minimal [Shader] for rasterizer tests: it passes a
// per-vertex flat color attribute straight through to the pixel stage.
type flatColorShader struct {
	schema Schema
}

func newFlatColorShader(t *testing.T) *flatColorShader {
	s, err := NewSchema(
		Attr{ByteOffset: 0, Semantic: SVPosition, Format: V4},
		Attr{ByteOffset: 16, Semantic: ColorSemantic, Format: V3},
	)
	assert.NoError(t, err)
	return &flatColorShader{schema: s}
}

func (s *flatColorShader) Schema() Schema         { return s.schema }
func (s *flatColorShader) SetUniforms(Uniforms) {}

func (s *flatColorShader) Vertex(mesh *Mesh, index int, out VaryingData) {
	p := mesh.Positions[index]
	out.SetPosition(math32.Vector4{X: p.X, Y: p.Y, Z: p.Z, W: 1})
	if index < len(mesh.Colors) {
		c := mesh.Colors[index]
		out.SetV3(ColorSemantic, math32.Vec3(c.R, c.G, c.B))
	}
}

func (s *flatColorShader) Pixel(quad *QuadContext, lane int) Color {
	rgb := quad.Lanes[lane].V3(ColorSemantic)
	return Color{R: rgb.X, G: rgb.Y, B: rgb.Z, A: 1}
}

func ndcTriangleMesh(a, b, c math32.Vector3, col Color) *Mesh {
	return &Mesh{
		Positions: []math32.Vector3{a, b, c},
		Colors:    []Color{col, col, col},
	}
}

func TestRasterizerCoreFillsTriangle(t *testing.T) {
	shader := newFlatColorShader(t)
	buf := NewVaryingDataBuffer(shader.Schema())
	proj := NewProjector()
	core := NewRasterizerCore()
	canvas := NewImageCanvas(10, 10)

	cam := NewPerspectiveCamera(math32.Vec3(0, 0, 1), math32.Vec3(0, 0, 0), math32.Vec3(0, 1, 0), 90, 1, 0.1, 10)
	canvas.Clear(Color{}, 1)

	// Y is flipped between NDC and screen space by the projector, so a
	// triangle that winds CCW in this NDC listing is front-facing on
	// screen when its last two vertices are swapped relative to the
	// NDC-only CCW order.
	mesh := ndcTriangleMesh(math32.Vec3(-1, -1, 0), math32.Vec3(0, 1, 0), math32.Vec3(1, -1, 0), Color{R: 1, A: 1})
	buf.InitVertices(3)
	for i := range mesh.Positions {
		shader.Vertex(mesh, i, buf.GetVertex(i))
	}

	v0, v1, v2 := buf.GetVertex(0), buf.GetVertex(1), buf.GetVertex(2)
	p0 := proj.Project(v0.Position(), cam, 10, 10)
	p1 := proj.Project(v1.Position(), cam, 10, 10)
	p2 := proj.Project(v2.Position(), cam, 10, 10)

	core.DrawTriangle(buf,
		Triangle[Projection]{p0, p1, p2},
		Triangle[VaryingData]{v0, v1, v2},
		shader, DefaultRenderState(), canvas)

	// The triangle's centroid in screen space should be painted red.
	got := canvas.GetPixel(5, 5)
	assert.Greater(t, got.R, float32(0.5))
}

func TestRasterizerCoreCullBackDiscardsBackface(t *testing.T) {
	shader := newFlatColorShader(t)
	buf := NewVaryingDataBuffer(shader.Schema())
	proj := NewProjector()
	core := NewRasterizerCore()
	canvas := NewImageCanvas(10, 10)
	cam := NewPerspectiveCamera(math32.Vec3(0, 0, 1), math32.Vec3(0, 0, 0), math32.Vec3(0, 1, 0), 90, 1, 0.1, 10)

	// Reverse winding relative to the filled-triangle test: this should cull.
	mesh := ndcTriangleMesh(math32.Vec3(-1, -1, 0), math32.Vec3(1, -1, 0), math32.Vec3(0, 1, 0), Color{R: 1, A: 1})
	buf.InitVertices(3)
	for i := range mesh.Positions {
		shader.Vertex(mesh, i, buf.GetVertex(i))
	}
	v0, v1, v2 := buf.GetVertex(0), buf.GetVertex(1), buf.GetVertex(2)
	p0 := proj.Project(v0.Position(), cam, 10, 10)
	p1 := proj.Project(v1.Position(), cam, 10, 10)
	p2 := proj.Project(v2.Position(), cam, 10, 10)

	canvas.Clear(Color{}, 1)
	core.DrawTriangle(buf, Triangle[Projection]{p0, p1, p2}, Triangle[VaryingData]{v0, v1, v2}, shader, DefaultRenderState(), canvas)

	got := canvas.GetPixel(5, 5)
	assert.Equal(t, Color{}, got, "backface should be culled and leave the canvas untouched")
}

// countingShader records, for every pixel it is asked to shade, how many
// times that pixel was hit — the instrument for the watertight shared-edge
// scenario below.
type countingShader struct {
	counts map[[2]int32]int
}

func (countingShader) Schema() Schema {
	s, _ := NewSchema(Attr{ByteOffset: 0, Semantic: SVPosition, Format: V4})
	return s
}
func (countingShader) SetUniforms(Uniforms)           {}
func (countingShader) Vertex(*Mesh, int, VaryingData) {}
func (s countingShader) Pixel(quad *QuadContext, lane int) Color {
	x := quad.Info.X + int32(lane%2)
	y := quad.Info.Y + int32(lane/2)
	s.counts[[2]int32{x, y}]++
	return Color{A: 1}
}

// TestRasterizerCoreWatertightSharedEdge reproduces spec.md's S2 scenario
// directly: two CCW triangles exactly tiling a 2x2 canvas along their
// shared diagonal. Every pixel must be shaded exactly once — no gaps, no
// double coverage.
func TestRasterizerCoreWatertightSharedEdge(t *testing.T) {
	schema, err := NewSchema(Attr{ByteOffset: 0, Semantic: SVPosition, Format: V4})
	assert.NoError(t, err)
	buf := NewVaryingDataBuffer(schema)
	core := NewRasterizerCore()
	canvas := NewImageCanvas(2, 2)
	canvas.Clear(Color{}, 1)

	shader := countingShader{counts: map[[2]int32]int{}}

	at := func(x, y int32) Projection {
		return Projection{X: x, Y: y, InvW: 1, Depth: 0.5, InvDepth: 2}
	}
	draw := func(p0, p1, p2 Projection) {
		buf.InitVertices(3)
		v0, v1, v2 := buf.GetVertex(0), buf.GetVertex(1), buf.GetVertex(2)
		core.DrawTriangle(buf,
			Triangle[Projection]{p0, p1, p2},
			Triangle[VaryingData]{v0, v1, v2},
			shader, DefaultRenderState(), canvas)
	}

	draw(at(0, 0), at(2, 0), at(0, 2)) // T1
	draw(at(2, 0), at(2, 2), at(0, 2)) // T2

	for y := int32(0); y < 2; y++ {
		for x := int32(0); x < 2; x++ {
			assert.Equal(t, 1, shader.counts[[2]int32{x, y}],
				"pixel (%d,%d) shaded %d times, want exactly 1", x, y, shader.counts[[2]int32{x, y}])
		}
	}
}

func TestRasterizerCoreDepthTestRejectsFartherPixel(t *testing.T) {
	shader := newFlatColorShader(t)
	buf := NewVaryingDataBuffer(shader.Schema())
	proj := NewProjector()
	core := NewRasterizerCore()
	canvas := NewImageCanvas(10, 10)
	cam := NewPerspectiveCamera(math32.Vec3(0, 0, 1), math32.Vec3(0, 0, 0), math32.Vec3(0, 1, 0), 90, 1, 0.1, 10)
	canvas.Clear(Color{}, 1)

	near := ndcTriangleMesh(math32.Vec3(-1, -1, -0.9), math32.Vec3(0, 1, -0.9), math32.Vec3(1, -1, -0.9), Color{R: 1, A: 1})
	far := ndcTriangleMesh(math32.Vec3(-1, -1, 0.9), math32.Vec3(0, 1, 0.9), math32.Vec3(1, -1, 0.9), Color{G: 1, A: 1})

	draw := func(mesh *Mesh) {
		buf.InitVertices(3)
		for i := range mesh.Positions {
			shader.Vertex(mesh, i, buf.GetVertex(i))
		}
		v0, v1, v2 := buf.GetVertex(0), buf.GetVertex(1), buf.GetVertex(2)
		p0 := proj.Project(v0.Position(), cam, 10, 10)
		p1 := proj.Project(v1.Position(), cam, 10, 10)
		p2 := proj.Project(v2.Position(), cam, 10, 10)
		core.DrawTriangle(buf, Triangle[Projection]{p0, p1, p2}, Triangle[VaryingData]{v0, v1, v2}, shader, DefaultRenderState(), canvas)
	}

	draw(near)
	draw(far)

	got := canvas.GetPixel(5, 5)
	assert.Greater(t, got.R, float32(0.5), "the nearer triangle drawn first must survive the farther triangle's depth test")
}
