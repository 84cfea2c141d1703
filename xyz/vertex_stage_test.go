package xyz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cogentcore.org/core/math32"
)

func TestClipCodeOfInsideAndOutside(t *testing.T) {
	assert.Equal(t, uint32(0), clipCodeOf(math32.Vector4{X: 0, Y: 0, Z: 0, W: 1}))

	code := clipCodeOf(math32.Vector4{X: 2, Y: 0, Z: 0, W: 1})
	assert.NotEqual(t, uint32(0), code&(1<<1), "x>w must set bit 1")

	code = clipCodeOf(math32.Vector4{X: -2, Y: 0, Z: 0, W: 1})
	assert.NotEqual(t, uint32(0), code&(1<<0), "x<-w must set bit 0")
}

func TestRunVertexStageSetsClipCodes(t *testing.T) {
	shader := newMVPShaderForVertexStageTest(t)
	buf := NewVaryingDataBuffer(shader.Schema())
	mesh := &Mesh{Positions: []math32.Vector3{{X: 0, Y: 0, Z: 0}, {X: 5, Y: 0, Z: 0}}}

	runVertexStage(buf, mesh, shader)

	assert.Equal(t, uint32(0), buf.GetVertex(0).ClipCode())
	assert.NotEqual(t, uint32(0), buf.GetVertex(1).ClipCode())
}

// newMVPShaderForVertexStageTest builds an identity-transform shader so
// clip position equals object position directly.
func newMVPShaderForVertexStageTest(t *testing.T) *mvpShader {
	s := newMVPShader(t, Color{A: 1})
	s.mvp = math32.Identity4()
	return s
}
