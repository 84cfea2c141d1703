// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

// CullMode selects which winding order is discarded.
type CullMode int

const (
	CullOff CullMode = iota
	CullFront
	CullBack
)

// ZTestFunc is the depth-comparison predicate.
type ZTestFunc int

const (
	ZAlways ZTestFunc = iota
	ZLess
	ZGreater
	ZLEqual
	ZGEqual
	ZEqual
	ZNotEqual
)

// passes reports whether newDepth passes the test against the depth
// already stored in the canvas.
func (z ZTestFunc) passes(newDepth, oldDepth float32) bool {
	switch z {
	case ZAlways:
		return true
	case ZLess:
		return newDepth < oldDepth
	case ZGreater:
		return newDepth > oldDepth
	case ZLEqual:
		return newDepth <= oldDepth
	case ZGEqual:
		return newDepth >= oldDepth
	case ZEqual:
		return newDepth == oldDepth
	case ZNotEqual:
		return newDepth != oldDepth
	}
	return false
}

// AlphaBlendMode names a blend operator for a [RenderState]. The rasterizer
// core does not read it: a shaded color always replaces the canvas pixel.
type AlphaBlendMode int

const (
	BlendOff AlphaBlendMode = iota
	BlendSrcAlpha
)

// RenderState is the fixed-function configuration bound for a draw.
type RenderState struct {
	Cull       CullMode
	ZTest      ZTestFunc
	ZWrite     bool
	AlphaBlend AlphaBlendMode
}

// DefaultRenderState is the conventional opaque, depth-tested configuration.
func DefaultRenderState() RenderState {
	return RenderState{Cull: CullBack, ZTest: ZLEqual, ZWrite: true, AlphaBlend: BlendOff}
}
