// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox3MulMatrix4(t *testing.T) {
	b := Box3{
		Min: Vector3{X: 1, Y: 2, Z: 3},
		Max: Vector3{X: 4, Y: 5, Z: 6},
	}
	m := &Matrix4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}

	expected := Box3{
		Min: Vector3{X: 51, Y: 58, Z: 65},
		Max: Vector3{X: 96, Y: 112, Z: 128},
	}

	result := b.MulMatrix4(m)

	assert.Equal(t, expected, result)
}

func TestBox3IsEmpty(t *testing.T) {
	assert.False(t, Box3{Min: Vec3(-1, -1, -1), Max: Vec3(1, 1, 1)}.IsEmpty())
	assert.True(t, Box3{Min: Vec3(1, -1, -1), Max: Vec3(-1, 1, 1)}.IsEmpty())
}
