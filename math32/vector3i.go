// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Vector3i is a 3D int32 vector.
type Vector3i struct {
	X, Y, Z int32
}

// Vec3i returns a new Vector3i with the given components.
func Vec3i(x, y, z int32) Vector3i { return Vector3i{x, y, z} }

// Vector3iScalar returns a new Vector3i with all components set to s.
func Vector3iScalar(s int32) Vector3i { return Vector3i{s, s, s} }

func (v *Vector3i) Set(x, y, z int32) { v.X, v.Y, v.Z = x, y, z }
func (v *Vector3i) SetScalar(s int32) { v.X, v.Y, v.Z = s, s, s }
func (v *Vector3i) SetFromVector3(o Vector3) {
	v.X, v.Y, v.Z = int32(o.X), int32(o.Y), int32(o.Z)
}
func (v *Vector3i) SetZero() { v.X, v.Y, v.Z = 0, 0, 0 }

func (v Vector3i) Dim(d Dims) int32 {
	switch d {
	case X:
		return v.X
	case Y:
		return v.Y
	default:
		return v.Z
	}
}

func (v *Vector3i) SetDim(d Dims, value int32) {
	switch d {
	case X:
		v.X = value
	case Y:
		v.Y = value
	default:
		v.Z = value
	}
}

func (v *Vector3i) FromSlice(s []int32, idx int) { v.X, v.Y, v.Z = s[idx], s[idx+1], s[idx+2] }
func (v Vector3i) ToSlice(s []int32, idx int)     { s[idx], s[idx+1], s[idx+2] = v.X, v.Y, v.Z }

func (v Vector3i) Add(o Vector3i) Vector3i { return Vector3i{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3i) AddScalar(s int32) Vector3i {
	return Vector3i{v.X + s, v.Y + s, v.Z + s}
}
func (v *Vector3i) SetAdd(o Vector3i)       { *v = v.Add(o) }
func (v *Vector3i) SetAddScalar(s int32)    { *v = v.AddScalar(s) }

func (v Vector3i) Sub(o Vector3i) Vector3i { return Vector3i{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3i) SubScalar(s int32) Vector3i {
	return Vector3i{v.X - s, v.Y - s, v.Z - s}
}
func (v *Vector3i) SetSub(o Vector3i)    { *v = v.Sub(o) }
func (v *Vector3i) SetSubScalar(s int32) { *v = v.SubScalar(s) }

func (v Vector3i) Mul(o Vector3i) Vector3i { return Vector3i{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vector3i) MulScalar(s int32) Vector3i {
	return Vector3i{v.X * s, v.Y * s, v.Z * s}
}
func (v *Vector3i) SetMul(o Vector3i)    { *v = v.Mul(o) }
func (v *Vector3i) SetMulScalar(s int32) { *v = v.MulScalar(s) }

func (v Vector3i) Div(o Vector3i) Vector3i { return Vector3i{v.X / o.X, v.Y / o.Y, v.Z / o.Z} }
func (v Vector3i) DivScalar(s int32) Vector3i {
	return Vector3i{v.X / s, v.Y / s, v.Z / s}
}
func (v *Vector3i) SetDiv(o Vector3i)    { *v = v.Div(o) }
func (v *Vector3i) SetDivScalar(s int32) { *v = v.DivScalar(s) }

func (v Vector3i) Min(o Vector3i) Vector3i {
	x, y, z := v.X, v.Y, v.Z
	if o.X < x {
		x = o.X
	}
	if o.Y < y {
		y = o.Y
	}
	if o.Z < z {
		z = o.Z
	}
	return Vector3i{x, y, z}
}
func (v *Vector3i) SetMin(o Vector3i) { *v = v.Min(o) }

func (v Vector3i) Max(o Vector3i) Vector3i {
	x, y, z := v.X, v.Y, v.Z
	if o.X > x {
		x = o.X
	}
	if o.Y > y {
		y = o.Y
	}
	if o.Z > z {
		z = o.Z
	}
	return Vector3i{x, y, z}
}
func (v *Vector3i) SetMax(o Vector3i) { *v = v.Max(o) }

func (v *Vector3i) Clamp(lo, hi Vector3i) { *v = v.Max(lo).Min(hi) }

func (v Vector3i) Negate() Vector3i { return Vector3i{-v.X, -v.Y, -v.Z} }
