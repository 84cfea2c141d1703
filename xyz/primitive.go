// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

// Triangle is an ordered triple of T, where T is [VaryingData] or
// [Projection].
type Triangle[T any] struct {
	V0, V1, V2 T
}

// Line is an ordered pair of T, used by the wireframe line clipper.
type Line[T any] struct {
	V0, V1 T
}
