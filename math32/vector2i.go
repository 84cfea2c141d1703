// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Vector2i is a 2D int32 vector, used for integer pixel coordinates.
type Vector2i struct {
	X, Y int32
}

// Vec2i returns a new Vector2i with the given components.
func Vec2i(x, y int32) Vector2i { return Vector2i{x, y} }

// Vector2iScalar returns a new Vector2i with all components set to s.
func Vector2iScalar(s int32) Vector2i { return Vector2i{s, s} }

func (v *Vector2i) Set(x, y int32) { v.X, v.Y = x, y }
func (v *Vector2i) SetScalar(s int32) { v.X, v.Y = s, s }
func (v *Vector2i) SetFromVector2(o Vector2) { v.X, v.Y = int32(o.X), int32(o.Y) }
func (v *Vector2i) SetZero() { v.X, v.Y = 0, 0 }

func (v Vector2i) Dim(d Dims) int32 {
	if d == X {
		return v.X
	}
	return v.Y
}

func (v *Vector2i) SetDim(d Dims, value int32) {
	if d == X {
		v.X = value
	} else {
		v.Y = value
	}
}

func (v *Vector2i) FromSlice(s []int32, idx int) { v.X, v.Y = s[idx], s[idx+1] }
func (v Vector2i) ToSlice(s []int32, idx int)     { s[idx], s[idx+1] = v.X, v.Y }

func (v Vector2i) Add(o Vector2i) Vector2i       { return Vector2i{v.X + o.X, v.Y + o.Y} }
func (v Vector2i) AddScalar(s int32) Vector2i    { return Vector2i{v.X + s, v.Y + s} }
func (v *Vector2i) SetAdd(o Vector2i)            { *v = v.Add(o) }
func (v *Vector2i) SetAddScalar(s int32)         { *v = v.AddScalar(s) }

func (v Vector2i) Sub(o Vector2i) Vector2i    { return Vector2i{v.X - o.X, v.Y - o.Y} }
func (v Vector2i) SubScalar(s int32) Vector2i { return Vector2i{v.X - s, v.Y - s} }
func (v *Vector2i) SetSub(o Vector2i)         { *v = v.Sub(o) }
func (v *Vector2i) SetSubScalar(s int32)      { *v = v.SubScalar(s) }

func (v Vector2i) Mul(o Vector2i) Vector2i    { return Vector2i{v.X * o.X, v.Y * o.Y} }
func (v Vector2i) MulScalar(s int32) Vector2i { return Vector2i{v.X * s, v.Y * s} }
func (v *Vector2i) SetMul(o Vector2i)         { *v = v.Mul(o) }
func (v *Vector2i) SetMulScalar(s int32)      { *v = v.MulScalar(s) }

func (v Vector2i) Div(o Vector2i) Vector2i    { return Vector2i{v.X / o.X, v.Y / o.Y} }
func (v Vector2i) DivScalar(s int32) Vector2i { return Vector2i{v.X / s, v.Y / s} }
func (v *Vector2i) SetDiv(o Vector2i)         { *v = v.Div(o) }
func (v *Vector2i) SetDivScalar(s int32)      { *v = v.DivScalar(s) }

func (v Vector2i) Min(o Vector2i) Vector2i {
	x, y := v.X, v.Y
	if o.X < x {
		x = o.X
	}
	if o.Y < y {
		y = o.Y
	}
	return Vector2i{x, y}
}
func (v *Vector2i) SetMin(o Vector2i) { *v = v.Min(o) }

func (v Vector2i) Max(o Vector2i) Vector2i {
	x, y := v.X, v.Y
	if o.X > x {
		x = o.X
	}
	if o.Y > y {
		y = o.Y
	}
	return Vector2i{x, y}
}
func (v *Vector2i) SetMax(o Vector2i) { *v = v.Max(o) }

func (v *Vector2i) Clamp(lo, hi Vector2i) {
	*v = v.Max(lo).Min(hi)
}

func (v Vector2i) Negate() Vector2i { return Vector2i{-v.X, -v.Y} }
