// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Dims enumerates vector components for indexed access.
type Dims int32

const (
	X Dims = iota
	Y
	Z
	W
)

// Vector2 is a 2D float32 vector, used for texture coordinates and
// 2D screen-space quantities.
type Vector2 struct {
	X, Y float32
}

// Vec2 returns a new Vector2 with the given components.
func Vec2(x, y float32) Vector2 { return Vector2{x, y} }

// Vector2Scalar returns a new Vector2 with all components set to s.
func Vector2Scalar(s float32) Vector2 { return Vector2{s, s} }

// Vector2FromVector2i returns a Vector2 from the given Vector2i.
func Vector2FromVector2i(v Vector2i) Vector2 { return Vector2{float32(v.X), float32(v.Y)} }

func (v *Vector2) Set(x, y float32) { v.X, v.Y = x, y }

func (v *Vector2) SetScalar(s float32) { v.X, v.Y = s, s }

func (v *Vector2) SetFromVector2i(vi Vector2i) { v.X, v.Y = float32(vi.X), float32(vi.Y) }

func (v *Vector2) SetZero() { v.X, v.Y = 0, 0 }

func (v Vector2) Dim(d Dims) float32 {
	switch d {
	case X:
		return v.X
	default:
		return v.Y
	}
}

func (v *Vector2) SetDim(d Dims, value float32) {
	switch d {
	case X:
		v.X = value
	default:
		v.Y = value
	}
}

func (v *Vector2) FromSlice(s []float32, idx int) {
	v.X, v.Y = s[idx], s[idx+1]
}

func (v Vector2) ToSlice(s []float32, idx int) {
	s[idx], s[idx+1] = v.X, v.Y
}

func (v Vector2) Add(o Vector2) Vector2       { return Vector2{v.X + o.X, v.Y + o.Y} }
func (v Vector2) AddScalar(s float32) Vector2 { return Vector2{v.X + s, v.Y + s} }
func (v *Vector2) SetAdd(o Vector2)           { *v = v.Add(o) }
func (v *Vector2) SetAddScalar(s float32)     { *v = v.AddScalar(s) }

func (v Vector2) Sub(o Vector2) Vector2       { return Vector2{v.X - o.X, v.Y - o.Y} }
func (v Vector2) SubScalar(s float32) Vector2 { return Vector2{v.X - s, v.Y - s} }
func (v *Vector2) SetSub(o Vector2)           { *v = v.Sub(o) }
func (v *Vector2) SetSubScalar(s float32)     { *v = v.SubScalar(s) }

func (v Vector2) Mul(o Vector2) Vector2       { return Vector2{v.X * o.X, v.Y * o.Y} }
func (v Vector2) MulScalar(s float32) Vector2 { return Vector2{v.X * s, v.Y * s} }
func (v *Vector2) SetMul(o Vector2)           { *v = v.Mul(o) }
func (v *Vector2) SetMulScalar(s float32)     { *v = v.MulScalar(s) }

func (v Vector2) Div(o Vector2) Vector2       { return Vector2{v.X / o.X, v.Y / o.Y} }
func (v Vector2) DivScalar(s float32) Vector2 { return Vector2{v.X / s, v.Y / s} }
func (v *Vector2) SetDiv(o Vector2)           { *v = v.Div(o) }
func (v *Vector2) SetDivScalar(s float32)     { *v = v.DivScalar(s) }

func (v Vector2) Min(o Vector2) Vector2 { return Vector2{Min(v.X, o.X), Min(v.Y, o.Y)} }
func (v *Vector2) SetMin(o Vector2)     { *v = v.Min(o) }
func (v Vector2) Max(o Vector2) Vector2 { return Vector2{Max(v.X, o.X), Max(v.Y, o.Y)} }
func (v *Vector2) SetMax(o Vector2)     { *v = v.Max(o) }

func (v *Vector2) Clamp(lo, hi Vector2) {
	v.X = Clamp(v.X, lo.X, hi.X)
	v.Y = Clamp(v.Y, lo.Y, hi.Y)
}

func (v Vector2) Floor() Vector2 { return Vector2{Floor(v.X), Floor(v.Y)} }
func (v Vector2) Ceil() Vector2  { return Vector2{Ceil(v.X), Ceil(v.Y)} }
func (v Vector2) Round() Vector2 { return Vector2{Round(v.X), Round(v.Y)} }

func (v Vector2) Negate() Vector2 { return Vector2{-v.X, -v.Y} }

func (v Vector2) Dot(o Vector2) float32 { return v.X*o.X + v.Y*o.Y }

func (v Vector2) LengthSquared() float32 { return v.Dot(v) }
func (v Vector2) Length() float32        { return Sqrt(v.LengthSquared()) }

func (v Vector2) Normal() Vector2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.DivScalar(l)
}

func (v Vector2) Lerp(o Vector2, t float32) Vector2 {
	return Vector2{Lerp(v.X, o.X, t), Lerp(v.Y, o.Y, t)}
}
