// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import (
	"github.com/gogama/kdtree/geometry"
)

// boundsOf returns the smallest rectangle containing every point, with
// Epsilon added to each point's coordinates when they are compared
// against the upper bounds. Only the upper bounds are inflated.
//
// Panics if points is empty.
func boundsOf(points []geometry.Point) geometry.Bounds {
	if len(points) == 0 {
		textPanic("bounds of empty point set")
	}
	first := points[0]
	b := geometry.Bounds{
		MinX: first.X,
		MinY: first.Y,
		MaxX: first.X + Epsilon,
		MaxY: first.Y + Epsilon,
	}
	for _, p := range points[1:] {
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.X+Epsilon > b.MaxX {
			b.MaxX = p.X + Epsilon
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.Y+Epsilon > b.MaxY {
			b.MaxY = p.Y + Epsilon
		}
	}
	return b
}
