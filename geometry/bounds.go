// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geometry

import "strings"

// Bounds is an axis-aligned bounding rectangle. A well-formed Bounds
// has MinX <= MaxX and MinY <= MaxY. Every edge is part of the
// rectangle.
type Bounds struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Width returns the extent of the rectangle along the X-axis.
func (b *Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the extent of the rectangle along the Y-axis.
func (b *Bounds) Height() float64 {
	return b.MaxY - b.MinY
}

// Valid reports whether the minimum of each axis is no greater than
// its maximum. Any NaN coordinate makes the rectangle invalid.
func (b *Bounds) Valid() bool {
	return b.MinX <= b.MaxX && b.MinY <= b.MaxY
}

// Intersects reports whether b and o overlap on both axes. Rectangles
// which only touch along an edge or at a corner intersect.
func (b *Bounds) Intersects(o *Bounds) bool {
	return b.MinX <= o.MaxX &&
		o.MinX <= b.MaxX &&
		b.MinY <= o.MaxY &&
		o.MinY <= b.MaxY
}

// Contains reports whether o lies entirely within b, including on its
// boundary.
func (b *Bounds) Contains(o *Bounds) bool {
	return b.MinX <= o.MinX &&
		o.MaxX <= b.MaxX &&
		b.MinY <= o.MinY &&
		o.MaxY <= b.MaxY
}

// ContainsPoint reports whether p lies within b or on its boundary.
func (b *Bounds) ContainsPoint(p Point) bool {
	return b.MinX <= p.X &&
		p.X <= b.MaxX &&
		b.MinY <= p.Y &&
		p.Y <= b.MaxY
}

// String returns the rectangle formatted as "[minX,minY,maxX,maxY]".
func (b Bounds) String() string {
	var s strings.Builder
	s.WriteByte('[')
	s.WriteString(formatFloat(b.MinX))
	s.WriteByte(',')
	s.WriteString(formatFloat(b.MinY))
	s.WriteByte(',')
	s.WriteString(formatFloat(b.MaxX))
	s.WriteByte(',')
	s.WriteString(formatFloat(b.MaxY))
	s.WriteByte(']')
	return s.String()
}
