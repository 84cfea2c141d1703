package xyz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cogentcore.org/core/math32"
)

func TestDrawWireframePaintsEdges(t *testing.T) {
	canvas := NewImageCanvas(20, 20)
	canvas.Clear(Color{}, 1)
	cam := NewPerspectiveCamera(math32.Vec3(0, 0, 5), math32.Vec3(0, 0, 0), math32.Vec3(0, 1, 0), 60, 1, 0.1, 100)

	mesh := &Mesh{Positions: []math32.Vector3{
		{X: -1, Y: -1, Z: 0},
		{X: 1, Y: -1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}}

	DrawWireframe(mesh, math32.Identity4(), Color{G: 1, A: 1}, canvas, cam)

	painted := false
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if canvas.GetPixel(x, y).G > 0.5 {
				painted = true
			}
		}
	}
	assert.True(t, painted, "wireframe drawing should paint at least one edge pixel")

	// The triangle's centroid lies strictly inside all three edges, so the
	// interior must remain untouched by a wireframe-only draw.
	assert.Equal(t, Color{}, canvas.GetPixel(10, 10))
}

func TestDrawLineBresenhamEndpoints(t *testing.T) {
	canvas := NewImageCanvas(10, 10)
	canvas.Clear(Color{}, 1)
	DrawLine(canvas, 1, 1, 8, 1, Color{R: 1, A: 1})

	assert.Greater(t, canvas.GetPixel(1, 1).R, float32(0.5))
	assert.Greater(t, canvas.GetPixel(8, 1).R, float32(0.5))
}

func TestDrawSmoothLineBlendsCoverage(t *testing.T) {
	canvas := NewImageCanvas(10, 10)
	canvas.Clear(Color{}, 1)
	DrawSmoothLine(canvas, 0, 4.5, 9, 4.5, Color{R: 1, A: 1})

	got := canvas.GetPixel(5, 4)
	assert.Greater(t, got.R, float32(0))
}
