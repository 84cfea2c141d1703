// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix4 is a 4x4 float32 matrix stored column-major, matching the layout
// expected by the camera's view and projection matrices and by the vertex
// stage's MVP transform. A literal Matrix4{m00,m10,m20,m30, m01,m11,...}
// lists column 0, then column 1, then column 2, then column 3.
type Matrix4 [16]float32

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// mulVec4 returns m*(x,y,z,w) using the column-major layout: the result is
// the sum of the matrix's columns weighted by the vector's components.
func (m *Matrix4) mulVec4(x, y, z, w float32) (rx, ry, rz, rw float32) {
	rx = m[0]*x + m[4]*y + m[8]*z + m[12]*w
	ry = m[1]*x + m[5]*y + m[9]*z + m[13]*w
	rz = m[2]*x + m[6]*y + m[10]*z + m[14]*w
	rw = m[3]*x + m[7]*y + m[11]*z + m[15]*w
	return
}

// row returns the four entries of row r (0-3) of the column-major matrix.
func (m *Matrix4) row(r int) (a, b, c, d float32) {
	return m[r], m[r+4], m[r+8], m[r+12]
}

// MulMatrices sets m = a*b.
func (m *Matrix4) MulMatrices(a, b *Matrix4) {
	var out Matrix4
	for col := 0; col < 4; col++ {
		bx, by, bz, bw := b[col*4], b[col*4+1], b[col*4+2], b[col*4+3]
		rx, ry, rz, rw := a.mulVec4(bx, by, bz, bw)
		out[col*4], out[col*4+1], out[col*4+2], out[col*4+3] = rx, ry, rz, rw
	}
	*m = out
}

// Mul returns m*o.
func (m Matrix4) Mul(o Matrix4) Matrix4 {
	var out Matrix4
	out.MulMatrices(&m, &o)
	return out
}

// SetPerspective sets m to an OpenGL-style right-handed perspective
// projection with vertical field of view fovy in degrees, aspect ratio
// aspect = width/height, and near/far clip planes mapping to NDC z in
// [-1, 1].
func (m *Matrix4) SetPerspective(fovy, aspect, near, far float32) {
	f := 1 / Tan(DegToRad(fovy)/2)
	nf := 1 / (near - far)
	*m = Matrix4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
}

// SetOrthographic sets m to an orthographic projection over the given
// symmetric width/height extents and near/far clip planes.
func (m *Matrix4) SetOrthographic(width, height, near, far float32) {
	rl, tb, fn := width, height, far-near
	*m = Matrix4{
		2 / rl, 0, 0, 0,
		0, 2 / tb, 0, 0,
		0, 0, -2 / fn, 0,
		0, 0, -(far + near) / fn, 1,
	}
}

// NewLookAt returns a right-handed view matrix for a camera at eye looking
// toward target, with the given world up direction.
func NewLookAt(eye, target, up Vector3) Matrix4 {
	zAxis := eye.Sub(target).Normal()
	xAxis := up.Cross(zAxis).Normal()
	yAxis := zAxis.Cross(xAxis)
	return Matrix4{
		xAxis.X, yAxis.X, zAxis.X, 0,
		xAxis.Y, yAxis.Y, zAxis.Y, 0,
		xAxis.Z, yAxis.Z, zAxis.Z, 0,
		-xAxis.Dot(eye), -yAxis.Dot(eye), -zAxis.Dot(eye), 1,
	}
}

// Inverse returns the inverse of m, and false if m is singular (in which
// case the identity matrix is returned).
func (m Matrix4) Inverse() (Matrix4, bool) {
	a00, a01, a02, a03 := m[0], m[1], m[2], m[3]
	a10, a11, a12, a13 := m[4], m[5], m[6], m[7]
	a20, a21, a22, a23 := m[8], m[9], m[10], m[11]
	a30, a31, a32, a33 := m[12], m[13], m[14], m[15]

	b00 := a00*a11 - a01*a10
	b01 := a00*a12 - a02*a10
	b02 := a00*a13 - a03*a10
	b03 := a01*a12 - a02*a11
	b04 := a01*a13 - a03*a11
	b05 := a02*a13 - a03*a12
	b06 := a20*a31 - a21*a30
	b07 := a20*a32 - a22*a30
	b08 := a20*a33 - a23*a30
	b09 := a21*a32 - a22*a31
	b10 := a21*a33 - a23*a31
	b11 := a22*a33 - a23*a32

	det := b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
	if det == 0 {
		return Identity4(), false
	}
	invDet := 1 / det

	var out Matrix4
	out[0] = (a11*b11 - a12*b10 + a13*b09) * invDet
	out[1] = (a02*b10 - a01*b11 - a03*b09) * invDet
	out[2] = (a31*b05 - a32*b04 + a33*b03) * invDet
	out[3] = (a22*b04 - a21*b05 - a23*b03) * invDet
	out[4] = (a12*b08 - a10*b11 - a13*b07) * invDet
	out[5] = (a00*b11 - a02*b08 + a03*b07) * invDet
	out[6] = (a32*b02 - a30*b05 - a33*b01) * invDet
	out[7] = (a20*b05 - a22*b02 + a23*b01) * invDet
	out[8] = (a10*b10 - a11*b08 + a13*b06) * invDet
	out[9] = (a01*b08 - a00*b10 - a03*b06) * invDet
	out[10] = (a30*b04 - a31*b02 + a33*b00) * invDet
	out[11] = (a21*b02 - a20*b04 - a23*b00) * invDet
	out[12] = (a11*b07 - a10*b09 - a12*b06) * invDet
	out[13] = (a00*b09 - a01*b07 + a02*b06) * invDet
	out[14] = (a31*b01 - a30*b03 - a32*b00) * invDet
	out[15] = (a20*b03 - a21*b01 + a22*b00) * invDet
	return out, true
}

// Transpose returns the transpose of m.
func (m Matrix4) Transpose() Matrix4 {
	return Matrix4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}
