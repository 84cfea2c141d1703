package xyz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cogentcore.org/core/math32"
)

// mvpShader is a minimal [Shader] that transforms object-space positions
// by the bound MVP uniform and outputs a flat color, exercising the full
// vertex -> clip -> project -> rasterize chain through [Pipeline.Draw].
type mvpShader struct {
	schema Schema
	mvp    math32.Matrix4
	color  Color
}

func newMVPShader(t *testing.T, color Color) *mvpShader {
	s, err := NewSchema(Attr{ByteOffset: 0, Semantic: SVPosition, Format: V4})
	assert.NoError(t, err)
	return &mvpShader{schema: s, color: color}
}

func (s *mvpShader) Schema() Schema           { return s.schema }
func (s *mvpShader) SetUniforms(u Uniforms)   { s.mvp = u.MVP }
func (s *mvpShader) Vertex(mesh *Mesh, index int, out VaryingData) {
	p := mesh.Positions[index]
	clip := math32.Vector4{X: p.X, Y: p.Y, Z: p.Z, W: 1}.MulMatrix4(&s.mvp)
	out.SetPosition(clip)
}
func (s *mvpShader) Pixel(*QuadContext, int) Color { return s.color }

func TestPipelineDrawPaintsFrontFacingTriangle(t *testing.T) {
	shader := newMVPShader(t, Color{R: 1, A: 1})
	pipe := NewPipeline(shader.Schema())
	canvas := NewImageCanvas(20, 20)
	canvas.Clear(Color{}, 1)
	cam := NewPerspectiveCamera(math32.Vec3(0, 0, 5), math32.Vec3(0, 0, 0), math32.Vec3(0, 1, 0), 60, 1, 0.1, 100)

	// Y is flipped between NDC and screen space by the projector, so the
	// last two vertices are swapped relative to a plain NDC-CCW listing to
	// make this triangle front-facing on screen.
	mesh := &Mesh{Positions: []math32.Vector3{
		{X: -1, Y: -1, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 1, Y: -1, Z: 0},
	}}

	err := pipe.Draw(mesh, shader, DefaultRenderState(), canvas, cam, math32.Identity4())
	assert.NoError(t, err)

	got := canvas.GetPixel(10, 10)
	assert.Greater(t, got.R, float32(0.5), "the triangle's centroid should be painted")
}

func TestPipelineDrawEmptyMesh(t *testing.T) {
	shader := newMVPShader(t, Color{R: 1, A: 1})
	pipe := NewPipeline(shader.Schema())
	canvas := NewImageCanvas(4, 4)
	cam := NewPerspectiveCamera(math32.Vec3(0, 0, 5), math32.Vec3(0, 0, 0), math32.Vec3(0, 1, 0), 60, 1, 0.1, 100)

	err := pipe.Draw(&Mesh{}, shader, DefaultRenderState(), canvas, cam, math32.Identity4())
	assert.ErrorIs(t, err, ErrEmptyMesh)
}

func TestPipelineDrawClipsOffscreenTriangle(t *testing.T) {
	shader := newMVPShader(t, Color{R: 1, A: 1})
	pipe := NewPipeline(shader.Schema())
	canvas := NewImageCanvas(20, 20)
	canvas.Clear(Color{}, 1)
	cam := NewPerspectiveCamera(math32.Vec3(0, 0, 5), math32.Vec3(0, 0, 0), math32.Vec3(0, 1, 0), 60, 1, 0.1, 100)

	// Far outside the frustum to either side: should be entirely clipped.
	mesh := &Mesh{Positions: []math32.Vector3{
		{X: 100, Y: 100, Z: 0},
		{X: 101, Y: 100, Z: 0},
		{X: 100, Y: 101, Z: 0},
	}}

	err := pipe.Draw(mesh, shader, DefaultRenderState(), canvas, cam, math32.Identity4())
	assert.NoError(t, err)
	assert.Equal(t, Color{}, canvas.GetPixel(10, 10))
}

func TestPipelineDrawCullsMeshOutsideFrustum(t *testing.T) {
	shader := newMVPShader(t, Color{R: 1, A: 1})
	pipe := NewPipeline(shader.Schema())
	canvas := NewImageCanvas(20, 20)
	canvas.Clear(Color{}, 1)
	cam := NewPerspectiveCamera(math32.Vec3(0, 0, 5), math32.Vec3(0, 0, 0), math32.Vec3(0, 1, 0), 60, 1, 0.1, 100)

	// Entirely behind the camera: the coarse per-mesh frustum cull should
	// skip this draw before any vertex or triangle work runs.
	mesh := &Mesh{Positions: []math32.Vector3{
		{X: -1, Y: -1, Z: 20},
		{X: 1, Y: -1, Z: 20},
		{X: 0, Y: 1, Z: 20},
	}}

	err := pipe.Draw(mesh, shader, DefaultRenderState(), canvas, cam, math32.Identity4())
	assert.NoError(t, err)
	assert.Equal(t, Color{}, canvas.GetPixel(10, 10))
}
