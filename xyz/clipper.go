// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

// Clipper performs homogeneous-space (Sutherland-Hodgman) clipping of
// triangles and lines against the 6 view-frustum planes.
type Clipper struct{}

// NewClipper returns a ready-to-use Clipper. It holds no state of its own;
// all scratch storage comes from the [VaryingDataBuffer] passed to each call.
func NewClipper() *Clipper { return &Clipper{} }

// planeDistance returns the signed distance of a clip-space position to
// one of the 6 canonical clip-volume planes (-w<=x<=w, -w<=y<=w,
// -w<=z<=w); non-negative means inside.
func planeDistance(plane int, x, y, z, w float32) float32 {
	switch plane {
	case 0:
		return w + x
	case 1:
		return w - x
	case 2:
		return w + y
	case 3:
		return w - y
	case 4:
		return w + z
	case 5:
		return w - z
	}
	panic("xyz: invalid clip plane index")
}

func posDistance(plane int, v VaryingData) float32 {
	p := v.Position()
	return planeDistance(plane, p.X, p.Y, p.Z, p.W)
}

// lerpRecord allocates a new dynamic-arena record that is the component-wise
// linear interpolation of a and b at parameter t. Linear interpolation of
// every varying (including the clip-space position) is exact in clip space,
// since clip space is homogeneous.
func lerpRecord(buf *VaryingDataBuffer, a, b VaryingData, t float32) VaryingData {
	out := buf.AllocDynamic()
	for i := range out.rec {
		out.rec[i] = a.rec[i] + (b.rec[i]-a.rec[i])*t
	}
	return out
}

// ClipTriangle clips the triangle (v0,v1,v2) against the 6 view-frustum
// planes, returning zero or more triangles covering the visible portion.
// Fast accept/reject use the clip codes already stored on the records;
// otherwise the triangle-as-polygon is clipped plane by plane and the
// resulting convex polygon is fan-triangulated.
func (c *Clipper) ClipTriangle(buf *VaryingDataBuffer, v0, v1, v2 VaryingData) []Triangle[VaryingData] {
	code0, code1, code2 := v0.ClipCode(), v1.ClipCode(), v2.ClipCode()
	if code0|code1|code2 == 0 {
		return []Triangle[VaryingData]{{v0, v1, v2}}
	}
	if code0&code1&code2 != 0 {
		return nil
	}

	poly := []VaryingData{v0, v1, v2}
	for plane := 0; plane < 6 && len(poly) > 0; plane++ {
		poly = clipPolygonAgainstPlane(buf, poly, plane)
	}
	if len(poly) < 3 {
		return nil
	}

	for _, v := range poly {
		v.SetClipCode(clipCodeOf(v.Position()))
	}

	tris := make([]Triangle[VaryingData], 0, len(poly)-2)
	for i := 1; i < len(poly)-1; i++ {
		tris = append(tris, Triangle[VaryingData]{poly[0], poly[i], poly[i+1]})
	}
	return tris
}

func clipPolygonAgainstPlane(buf *VaryingDataBuffer, poly []VaryingData, plane int) []VaryingData {
	n := len(poly)
	out := make([]VaryingData, 0, n+1)
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		ta := posDistance(plane, a)
		tb := posDistance(plane, b)
		aIn := ta >= 0
		bIn := tb >= 0
		if aIn {
			out = append(out, a)
		}
		if aIn != bIn {
			out = append(out, lerpRecord(buf, a, b, ta/(ta-tb)))
		}
	}
	return out
}

// ClipLine clips the segment (v0,v1) against the 6 view-frustum planes,
// returning the clipped segment and true, or false if it lies entirely
// outside the frustum.
func (c *Clipper) ClipLine(buf *VaryingDataBuffer, v0, v1 VaryingData) (Line[VaryingData], bool) {
	a, b := v0, v1
	haveSegment := true
	for plane := 0; plane < 6 && haveSegment; plane++ {
		ta := posDistance(plane, a)
		tb := posDistance(plane, b)
		aIn := ta >= 0
		bIn := tb >= 0
		switch {
		case aIn && bIn:
			// both endpoints survive this plane unchanged
		case !aIn && !bIn:
			haveSegment = false
		case aIn && !bIn:
			b = lerpRecord(buf, a, b, ta/(ta-tb))
		default:
			a = lerpRecord(buf, a, b, ta/(ta-tb))
		}
	}
	if !haveSegment {
		return Line[VaryingData]{}, false
	}
	return Line[VaryingData]{a, b}, true
}
