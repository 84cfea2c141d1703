// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

// Orient2D returns twice the signed area of triangle (a, b, c) in integer
// screen-space coordinates. Its sign is the edge-function building block
// the rasterizer core uses both for backface determination and for the
// per-pixel inside test.
func Orient2D(ax, ay, bx, by, cx, cy int32) int32 {
	return (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
}

// isTopLeft reports whether the directed edge a->b is a top or left edge,
// the fill-rule tie-break for samples exactly on a pixel center. DrawTriangle
// always calls this with the edge's vertices in the same forward order used
// to build that edge's Orient2D value (V(i+1)->V(i+2) against a front-facing,
// i.e. Orient2D(V0,V1,V2) > 0, triangle), so dy==0&&dx>0 (rightward-running
// horizontal edge) and dy<0 (edge running toward decreasing Y) are the two
// inclusive cases here — see DESIGN.md for the derivation against the S2
// shared-edge scenario.
func isTopLeft(ax, ay, bx, by int32) bool {
	dx := bx - ax
	dy := by - ay
	return (dy == 0 && dx > 0) || dy < 0
}

// RasterizerCore walks a clipped, projected triangle's bounding box in 2x2
// quads, computing coverage, perspective-correct varyings, and depth, and
// dispatches the pixel shader per covered lane.
type RasterizerCore struct{}

// NewRasterizerCore returns a ready-to-use core. It holds no state.
func NewRasterizerCore() *RasterizerCore { return &RasterizerCore{} }

func alignDownEven(v int32) int32 {
	if v%2 != 0 {
		v--
	}
	return v
}

func alignUpEven(v int32) int32 {
	if v%2 != 0 {
		v++
	}
	return v
}

func minI32(a, b, c int32) int32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func maxI32(a, b, c int32) int32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func clampI32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// blendVarying writes into out the perspective-correct weighted blend of
// v0, v1, v2 with raw (unnormalized) edge-function weights b0, b1, b2 and
// per-vertex inverse w. The scale common to numerator and denominator
// cancels, so b0..b2 need not be separately normalized to sum to 1.
func blendVarying(out, v0, v1, v2 VaryingData, b0, b1, b2, invW0, invW1, invW2 float32) float32 {
	p0 := b0 * invW0
	p1 := b1 * invW1
	p2 := b2 * invW2
	denom := p0 + p1 + p2
	inv := float32(0)
	if denom != 0 {
		inv = 1 / denom
	}
	for i := range out.rec {
		out.rec[i] = (p0*v0.rec[i] + p1*v1.rec[i] + p2*v2.rec[i]) * inv
	}
	return inv
}

// DrawTriangle rasterizes one already-clipped, already-projected triangle.
// proj gives the three screen-space vertices; vary gives their
// corresponding varying records (post vertex-stage, pre-clip-expansion is
// fine since clipping already produced these exact records).
func (r *RasterizerCore) DrawTriangle(buf *VaryingDataBuffer, proj Triangle[Projection], vary Triangle[VaryingData], shader Shader, state RenderState, canvas Canvas) {
	p0, p1, p2 := proj.V0, proj.V1, proj.V2
	area := Orient2D(p0.X, p0.Y, p1.X, p1.Y, p2.X, p2.Y)
	if area == 0 {
		return
	}

	backFacing := area < 0
	if state.Cull == CullBack && backFacing {
		return
	}
	if state.Cull == CullFront && !backFacing {
		return
	}
	if backFacing {
		p1, p2 = p2, p1
		vary.V1, vary.V2 = vary.V2, vary.V1
		area = -area
	}

	minX := clampI32(alignDownEven(minI32(p0.X, p1.X, p2.X)), 0, int32(canvas.Width()))
	minY := clampI32(alignDownEven(minI32(p0.Y, p1.Y, p2.Y)), 0, int32(canvas.Height()))
	maxX := clampI32(alignUpEven(maxI32(p0.X, p1.X, p2.X)), 0, int32(canvas.Width()))
	maxY := clampI32(alignUpEven(maxI32(p0.Y, p1.Y, p2.Y)), 0, int32(canvas.Height()))
	if minX >= maxX || minY >= maxY {
		return
	}

	top0Left := isTopLeft(p1.X, p1.Y, p2.X, p2.Y)
	top1Left := isTopLeft(p2.X, p2.Y, p0.X, p0.Y)
	top2Left := isTopLeft(p0.X, p0.Y, p1.X, p1.Y)

	stepX0, stepY0 := p1.Y-p2.Y, p2.X-p1.X
	stepX1, stepY1 := p2.Y-p0.Y, p0.X-p2.X
	stepX2, stepY2 := p0.Y-p1.Y, p1.X-p0.X

	rowW0 := Orient2D(p1.X, p1.Y, p2.X, p2.Y, minX, minY)
	rowW1 := Orient2D(p2.X, p2.Y, p0.X, p0.Y, minX, minY)
	rowW2 := Orient2D(p0.X, p0.Y, p1.X, p1.Y, minX, minY)

	// A front-facing triangle (area > 0, enforced by the CullBack check
	// above, and by the swap of back-facing triangles kept under CullFront
	// or CullOff) has all three
	// forward edge values positive strictly inside it, zero exactly on an
	// edge. Top-left edges treat that zero as covered; the other two
	// edges require strict positivity so a shared edge is never painted
	// by both of its triangles.
	inside := func(w int32, topLeft bool) bool {
		if topLeft {
			return w >= 0
		}
		return w > 0
	}

	for y := minY; y < maxY; y += 2 {
		w0 := rowW0
		w1 := rowW1
		w2 := rowW2
		for x := minX; x < maxX; x += 2 {
			var quad QuadInfo
			quad.X, quad.Y = x, y

			lw0 := [4]int32{w0, w0 + stepX0, w0 + stepY0, w0 + stepX0 + stepY0}
			lw1 := [4]int32{w1, w1 + stepX1, w1 + stepY1, w1 + stepX1 + stepY1}
			lw2 := [4]int32{w2, w2 + stepX2, w2 + stepY2, w2 + stepX2 + stepY2}

			var mask uint8
			for lane := 0; lane < 4; lane++ {
				if inside(lw0[lane], top0Left) && inside(lw1[lane], top1Left) && inside(lw2[lane], top2Left) {
					mask |= 1 << uint(lane)
				}
			}
			quad.MaskCode = mask

			if mask != 0 {
				buf.ResetPixel()
				var ctx QuadContext
				ctx.Info = quad
				for lane := 0; lane < 4; lane++ {
					b0 := float32(lw0[lane])
					b1 := float32(lw1[lane])
					b2 := float32(lw2[lane])
					out := buf.AllocPixel()
					inv := blendVarying(out, vary.V0, vary.V1, vary.V2, b0, b1, b2, p0.InvW, p1.InvW, p2.InvW)

					denom := b0*p0.InvDepth + b1*p1.InvDepth + b2*p2.InvDepth
					depth := float32(0)
					if denom != 0 {
						depth = (b0 + b1 + b2) / denom
					}
					ctx.Info.Depth[lane] = depth
					ctx.Info.Wx[lane] = b0 * p0.InvW * inv
					ctx.Info.Wy[lane] = b1 * p1.InvW * inv
					ctx.Info.Wz[lane] = b2 * p2.InvW * inv
					ctx.Lanes[lane] = out
				}

				for lane := 0; lane < 4; lane++ {
					if !ctx.Info.Covered(lane) {
						continue
					}
					px := int(x) + lane%2
					py := int(y) + lane/2
					if px < 0 || px >= canvas.Width() || py < 0 || py >= canvas.Height() {
						continue
					}
					depth := ctx.Info.Depth[lane]
					if state.ZTest != ZAlways {
						old := canvas.GetDepth(px, py)
						if !state.ZTest.passes(depth, old) {
							continue
						}
					}
					color := shader.Pixel(&ctx, lane)
					canvas.SetPixel(px, py, color)
					if state.ZWrite {
						canvas.SetDepth(px, py, depth)
					}
				}
			}

			w0 += stepX0 * 2
			w1 += stepX1 * 2
			w2 += stepX2 * 2
		}
		rowW0 += stepY0 * 2
		rowW1 += stepY1 * 2
		rowW2 += stepY2 * 2
	}
}
