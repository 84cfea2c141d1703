package xyz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cogentcore.org/core/math32"
)

func TestMeshTriangleIndexed(t *testing.T) {
	m := &Mesh{
		Positions: []math32.Vector3{{}, {}, {}, {}},
		Indices:   []uint32{0, 1, 2, 0, 2, 3},
	}
	assert.Equal(t, 2, m.NumTriangles())
	a, b, c := m.Triangle(1)
	assert.Equal(t, 0, a)
	assert.Equal(t, 2, b)
	assert.Equal(t, 3, c)
}

func TestMeshTriangleUnindexed(t *testing.T) {
	m := &Mesh{Positions: []math32.Vector3{{}, {}, {}}}
	assert.Equal(t, 1, m.NumTriangles())
	a, b, c := m.Triangle(0)
	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)
	assert.Equal(t, 2, c)
}

func TestMeshNumVertices(t *testing.T) {
	m := &Mesh{Positions: []math32.Vector3{{}, {}}}
	assert.Equal(t, 2, m.NumVertices())
}

func TestMeshBounds(t *testing.T) {
	m := &Mesh{Positions: []math32.Vector3{
		{X: -1, Y: 2, Z: 0},
		{X: 3, Y: -2, Z: 5},
		{X: 0, Y: 0, Z: -4},
	}}
	b := m.Bounds()
	assert.Equal(t, math32.Vector3{X: -1, Y: -2, Z: -4}, b.Min)
	assert.Equal(t, math32.Vector3{X: 3, Y: 2, Z: 5}, b.Max)
}

func TestMeshBoundsEmpty(t *testing.T) {
	m := &Mesh{}
	assert.True(t, m.Bounds().IsEmpty())
}
