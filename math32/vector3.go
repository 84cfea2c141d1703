// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Vector3 is a 3D float32 vector: positions, normals, tangents, world-space
// directions.
type Vector3 struct {
	X, Y, Z float32
}

// Vec3 returns a new Vector3 with the given components.
func Vec3(x, y, z float32) Vector3 { return Vector3{x, y, z} }

// Vector3Scalar returns a new Vector3 with all components set to s.
func Vector3Scalar(s float32) Vector3 { return Vector3{s, s, s} }

// Vector3FromVector4 returns the xyz components of v, dropping w.
func Vector3FromVector4(v Vector4) Vector3 { return Vector3{v.X, v.Y, v.Z} }

func (v *Vector3) Set(x, y, z float32)  { v.X, v.Y, v.Z = x, y, z }
func (v *Vector3) SetScalar(s float32)  { v.X, v.Y, v.Z = s, s, s }
func (v *Vector3) SetFromVector3i(vi Vector3i) {
	v.X, v.Y, v.Z = float32(vi.X), float32(vi.Y), float32(vi.Z)
}
func (v *Vector3) SetZero() { v.X, v.Y, v.Z = 0, 0, 0 }

func (v Vector3) Dim(d Dims) float32 {
	switch d {
	case X:
		return v.X
	case Y:
		return v.Y
	default:
		return v.Z
	}
}

func (v *Vector3) SetDim(d Dims, value float32) {
	switch d {
	case X:
		v.X = value
	case Y:
		v.Y = value
	default:
		v.Z = value
	}
}

func (v *Vector3) FromSlice(s []float32, idx int) { v.X, v.Y, v.Z = s[idx], s[idx+1], s[idx+2] }
func (v Vector3) ToSlice(s []float32, idx int)     { s[idx], s[idx+1], s[idx+2] = v.X, v.Y, v.Z }

func (v Vector3) Add(o Vector3) Vector3       { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3) AddScalar(s float32) Vector3 { return Vector3{v.X + s, v.Y + s, v.Z + s} }
func (v *Vector3) SetAdd(o Vector3)           { *v = v.Add(o) }
func (v *Vector3) SetAddScalar(s float32)     { *v = v.AddScalar(s) }

func (v Vector3) Sub(o Vector3) Vector3       { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3) SubScalar(s float32) Vector3 { return Vector3{v.X - s, v.Y - s, v.Z - s} }
func (v *Vector3) SetSub(o Vector3)           { *v = v.Sub(o) }
func (v *Vector3) SetSubScalar(s float32)     { *v = v.SubScalar(s) }

func (v Vector3) Mul(o Vector3) Vector3       { return Vector3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vector3) MulScalar(s float32) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }
func (v *Vector3) SetMul(o Vector3)           { *v = v.Mul(o) }
func (v *Vector3) SetMulScalar(s float32)     { *v = v.MulScalar(s) }

func (v Vector3) Div(o Vector3) Vector3       { return Vector3{v.X / o.X, v.Y / o.Y, v.Z / o.Z} }
func (v Vector3) DivScalar(s float32) Vector3 { return Vector3{v.X / s, v.Y / s, v.Z / s} }
func (v *Vector3) SetDiv(o Vector3)           { *v = v.Div(o) }
func (v *Vector3) SetDivScalar(s float32)     { *v = v.DivScalar(s) }

func (v Vector3) Abs() Vector3 { return Vector3{Abs(v.X), Abs(v.Y), Abs(v.Z)} }

func (v Vector3) Min(o Vector3) Vector3 { return Vector3{Min(v.X, o.X), Min(v.Y, o.Y), Min(v.Z, o.Z)} }
func (v *Vector3) SetMin(o Vector3)     { *v = v.Min(o) }
func (v Vector3) Max(o Vector3) Vector3 { return Vector3{Max(v.X, o.X), Max(v.Y, o.Y), Max(v.Z, o.Z)} }
func (v *Vector3) SetMax(o Vector3)     { *v = v.Max(o) }

func (v *Vector3) Clamp(lo, hi Vector3) {
	v.X = Clamp(v.X, lo.X, hi.X)
	v.Y = Clamp(v.Y, lo.Y, hi.Y)
	v.Z = Clamp(v.Z, lo.Z, hi.Z)
}

func (v Vector3) Floor() Vector3 { return Vector3{Floor(v.X), Floor(v.Y), Floor(v.Z)} }
func (v Vector3) Ceil() Vector3  { return Vector3{Ceil(v.X), Ceil(v.Y), Ceil(v.Z)} }
func (v Vector3) Round() Vector3 { return Vector3{Round(v.X), Round(v.Y), Round(v.Z)} }

func (v Vector3) Negate() Vector3 { return Vector3{-v.X, -v.Y, -v.Z} }

func (v Vector3) Dot(o Vector3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vector3) LengthSquared() float32 { return v.Dot(v) }
func (v Vector3) Length() float32        { return Sqrt(v.LengthSquared()) }

func (v Vector3) Normal() Vector3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.DivScalar(l)
}

func (v Vector3) DistanceToSquared(o Vector3) float32 { return v.Sub(o).LengthSquared() }
func (v Vector3) DistanceTo(o Vector3) float32        { return v.Sub(o).Length() }

func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// CosTo returns the cosine of the angle between v and o.
func (v Vector3) CosTo(o Vector3) float32 {
	d := v.Length() * o.Length()
	if d == 0 {
		return 0
	}
	return v.Dot(o) / d
}

func (v Vector3) Lerp(o Vector3, t float32) Vector3 {
	return Vector3{Lerp(v.X, o.X, t), Lerp(v.Y, o.Y, t), Lerp(v.Z, o.Z, t)}
}

// MulMatrix4 applies a point transform: treats v as (x,y,z,1) and returns
// the transformed xyz, discarding w without dividing by it. Used for
// transforming AABB corners and other points where the caller does not
// need perspective division (see [Vector4.MulMatrix4] for that case).
func (v Vector3) MulMatrix4(m *Matrix4) Vector3 {
	x, y, z, _ := m.mulVec4(v.X, v.Y, v.Z, 1)
	return Vector3{x, y, z}
}
