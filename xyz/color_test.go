package xyz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorClamp(t *testing.T) {
	c := Color{R: 1.5, G: -0.5, B: 0.5, A: 2}
	clamped := c.Clamp()
	assert.Equal(t, Color{R: 1, G: 0, B: 0.5, A: 1}, clamped)
}

func TestColorPackUnpackRoundTrip(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0, A: 1}
	packed := c.Pack()
	back := UnpackColor(packed)
	assert.InDelta(t, c.R, back.R, 1.0/255)
	assert.InDelta(t, c.G, back.G, 1.0/255)
	assert.InDelta(t, c.B, back.B, 1.0/255)
	assert.InDelta(t, c.A, back.A, 1.0/255)
}

func TestColorPackKnownValue(t *testing.T) {
	white := Color{R: 1, G: 1, B: 1, A: 1}
	assert.Equal(t, uint32(0xFFFFFFFF), white.Pack())

	black := Color{R: 0, G: 0, B: 0, A: 1}
	assert.Equal(t, uint32(0xFF000000), black.Pack())
}
