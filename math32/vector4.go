// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Vector4 is a 4D float32 vector. The rasterizer uses it chiefly for
// homogeneous clip-space positions (the varying schema's SV_POSITION slot)
// and for float-valued shader colors.
type Vector4 struct {
	X, Y, Z, W float32
}

// Vec4 returns a new Vector4 with the given components.
func Vec4(x, y, z, w float32) Vector4 { return Vector4{x, y, z, w} }

// Vector4Scalar returns a new Vector4 with all components set to s.
func Vector4Scalar(s float32) Vector4 { return Vector4{s, s, s, s} }

// Vector4FromVector3 returns a Vector4 with xyz from v and w set to w.
func Vector4FromVector3(v Vector3, w float32) Vector4 { return Vector4{v.X, v.Y, v.Z, w} }

func (v *Vector4) Set(x, y, z, w float32) { v.X, v.Y, v.Z, v.W = x, y, z, w }
func (v *Vector4) SetScalar(s float32)    { v.X, v.Y, v.Z, v.W = s, s, s, s }
func (v *Vector4) SetZero()               { v.X, v.Y, v.Z, v.W = 0, 0, 0, 1 }

func (v Vector4) Dim(d Dims) float32 {
	switch d {
	case X:
		return v.X
	case Y:
		return v.Y
	case Z:
		return v.Z
	default:
		return v.W
	}
}

func (v *Vector4) SetDim(d Dims, value float32) {
	switch d {
	case X:
		v.X = value
	case Y:
		v.Y = value
	case Z:
		v.Z = value
	default:
		v.W = value
	}
}

func (v *Vector4) FromSlice(s []float32, idx int) {
	v.X, v.Y, v.Z, v.W = s[idx], s[idx+1], s[idx+2], s[idx+3]
}
func (v Vector4) ToSlice(s []float32, idx int) {
	s[idx], s[idx+1], s[idx+2], s[idx+3] = v.X, v.Y, v.Z, v.W
}

func (v Vector4) Add(o Vector4) Vector4 {
	return Vector4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}
func (v Vector4) AddScalar(s float32) Vector4 {
	return Vector4{v.X + s, v.Y + s, v.Z + s, v.W + s}
}
func (v *Vector4) SetAdd(o Vector4)       { *v = v.Add(o) }
func (v *Vector4) SetAddScalar(s float32) { *v = v.AddScalar(s) }

func (v Vector4) Sub(o Vector4) Vector4 {
	return Vector4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}
func (v Vector4) SubScalar(s float32) Vector4 {
	return Vector4{v.X - s, v.Y - s, v.Z - s, v.W - s}
}
func (v *Vector4) SetSub(o Vector4)       { *v = v.Sub(o) }
func (v *Vector4) SetSubScalar(s float32) { *v = v.SubScalar(s) }

func (v Vector4) Mul(o Vector4) Vector4 {
	return Vector4{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}
func (v Vector4) MulScalar(s float32) Vector4 {
	return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}
func (v *Vector4) SetMul(o Vector4)       { *v = v.Mul(o) }
func (v *Vector4) SetMulScalar(s float32) { *v = v.MulScalar(s) }

func (v Vector4) Div(o Vector4) Vector4 {
	return Vector4{v.X / o.X, v.Y / o.Y, v.Z / o.Z, v.W / o.W}
}
func (v Vector4) DivScalar(s float32) Vector4 {
	return Vector4{v.X / s, v.Y / s, v.Z / s, v.W / s}
}
func (v *Vector4) SetDiv(o Vector4)       { *v = v.Div(o) }
func (v *Vector4) SetDivScalar(s float32) { *v = v.DivScalar(s) }

func (v Vector4) Min(o Vector4) Vector4 {
	return Vector4{Min(v.X, o.X), Min(v.Y, o.Y), Min(v.Z, o.Z), Min(v.W, o.W)}
}
func (v *Vector4) SetMin(o Vector4) { *v = v.Min(o) }

func (v Vector4) Max(o Vector4) Vector4 {
	return Vector4{Max(v.X, o.X), Max(v.Y, o.Y), Max(v.Z, o.Z), Max(v.W, o.W)}
}
func (v *Vector4) SetMax(o Vector4) { *v = v.Max(o) }

func (v *Vector4) Clamp(lo, hi Vector4) {
	v.X = Clamp(v.X, lo.X, hi.X)
	v.Y = Clamp(v.Y, lo.Y, hi.Y)
	v.Z = Clamp(v.Z, lo.Z, hi.Z)
	v.W = Clamp(v.W, lo.W, hi.W)
}

func (v Vector4) Floor() Vector4 { return Vector4{Floor(v.X), Floor(v.Y), Floor(v.Z), Floor(v.W)} }
func (v Vector4) Ceil() Vector4  { return Vector4{Ceil(v.X), Ceil(v.Y), Ceil(v.Z), Ceil(v.W)} }
func (v Vector4) Round() Vector4 { return Vector4{Round(v.X), Round(v.Y), Round(v.Z), Round(v.W)} }

func (v Vector4) Negate() Vector4 { return Vector4{-v.X, -v.Y, -v.Z, -v.W} }

func (v Vector4) Dot(o Vector4) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W }

func (v Vector4) LengthSquared() float32 { return v.Dot(v) }
func (v Vector4) Length() float32        { return Sqrt(v.LengthSquared()) }

func (v Vector4) Normal() Vector4 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.DivScalar(l)
}

func (v Vector4) Lerp(o Vector4, t float32) Vector4 {
	return Vector4{Lerp(v.X, o.X, t), Lerp(v.Y, o.Y, t), Lerp(v.Z, o.Z, t), Lerp(v.W, o.W, t)}
}

// Vector3 returns the xyz components, dropping w.
func (v Vector4) Vector3() Vector3 { return Vector3{v.X, v.Y, v.Z} }

// MulMatrix4 applies the full homogeneous transform m*v, keeping w
// (no perspective division). This is how the vertex stage computes a
// clip-space position from an object-space one via the MVP matrix.
func (v Vector4) MulMatrix4(m *Matrix4) Vector4 {
	x, y, z, w := m.mulVec4(v.X, v.Y, v.Z, v.W)
	return Vector4{x, y, z, w}
}
