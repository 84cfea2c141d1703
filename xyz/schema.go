// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz implements a CPU-only triangle rasterization pipeline:
// vertex shading, homogeneous-space clipping, viewport projection,
// edge-function quad rasterization, and programmable pixel shading.
package xyz

import "fmt"

// Semantic tags an attribute slot in a [Schema].
type Semantic int

const (
	// SVPosition is the mandatory clip-space position attribute. It must
	// be the first attribute in a schema and have format [V4].
	SVPosition Semantic = iota
	Position
	Normal
	Texcoord
	ColorSemantic
	Tangent
)

func (s Semantic) String() string {
	switch s {
	case SVPosition:
		return "SV_POSITION"
	case Position:
		return "POSITION"
	case Normal:
		return "NORMAL"
	case Texcoord:
		return "TEXCOORD"
	case ColorSemantic:
		return "COLOR"
	case Tangent:
		return "TANGENT"
	}
	return "UNKNOWN"
}

// Format is the element format of an attribute slot.
type Format int

const (
	F32 Format = iota
	V2
	V3
	V4
)

// Size returns the byte size of the format.
func (f Format) Size() int {
	switch f {
	case F32:
		return 4
	case V2:
		return 8
	case V3:
		return 12
	case V4:
		return 16
	}
	return 0
}

// Attr is one (byteOffset, semanticTag, elementFormat) record in a [Schema].
type Attr struct {
	ByteOffset int
	Semantic   Semantic
	Format     Format
}

// floatOffset returns the attribute's offset in units of float32, which
// is valid because every [Format] size is a multiple of 4 bytes.
func (a Attr) floatOffset() int { return a.ByteOffset / 4 }

// Schema describes the fixed-size byte layout of a [VaryingData] record:
// an ordered list of attributes plus the record's total size, rounded up
// to a multiple of 16 bytes.
type Schema struct {
	Attrs      []Attr
	RecordSize int
}

// NewSchema validates and builds a [Schema] from the given attributes.
// Exactly one [SVPosition] attribute of format [V4] is mandatory and must
// appear first.
func NewSchema(attrs ...Attr) (Schema, error) {
	if len(attrs) == 0 {
		return Schema{}, fmt.Errorf("xyz: schema must declare at least SV_POSITION")
	}
	if attrs[0].Semantic != SVPosition || attrs[0].Format != V4 || attrs[0].ByteOffset != 0 {
		return Schema{}, fmt.Errorf("xyz: schema's first attribute must be SV_POSITION (V4) at byte offset 0")
	}
	for i := 1; i < len(attrs); i++ {
		if attrs[i].Semantic == SVPosition {
			return Schema{}, fmt.Errorf("xyz: schema declares SV_POSITION more than once")
		}
	}
	maxEnd := 0
	for _, a := range attrs {
		if a.ByteOffset%4 != 0 {
			return Schema{}, fmt.Errorf("xyz: attribute %s has a non-float-aligned byte offset %d", a.Semantic, a.ByteOffset)
		}
		end := a.ByteOffset + a.Format.Size()
		if end > maxEnd {
			maxEnd = end
		}
	}
	recordSize := ((maxEnd + 15) / 16) * 16
	return Schema{Attrs: append([]Attr(nil), attrs...), RecordSize: recordSize}, nil
}

// find returns the attribute with the given semantic.
func (s *Schema) find(sem Semantic) Attr {
	for _, a := range s.Attrs {
		if a.Semantic == sem {
			return a
		}
	}
	panic(fmt.Sprintf("xyz: schema has no attribute with semantic %s", sem))
}
