// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flat

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

const (
	nodeDepth = iota
	nodeMinX
	nodeMinY
	nodeMaxX
	nodeMaxY
	nodeLow
	nodeHigh
	nodeByX
	nodeByY
	nodeNumFields
)

// Node is one node of a persisted kdtree. A leaf node has ByX and ByY
// vectors and no children. A branch node has both Low and High
// children and no vectors.
type Node struct {
	_tab flatbuffers.Table
}

// Init positions the Node on the table at offset i of buf.
func (rcv *Node) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

// Table returns the underlying FlatBuffers table.
func (rcv *Node) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *Node) Depth() uint16 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(slot(nodeDepth)))
	if o != 0 {
		return rcv._tab.GetUint16(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Node) MinX() float64 {
	return rcv.float64Field(nodeMinX)
}

func (rcv *Node) MinY() float64 {
	return rcv.float64Field(nodeMinY)
}

func (rcv *Node) MaxX() float64 {
	return rcv.float64Field(nodeMaxX)
}

func (rcv *Node) MaxY() float64 {
	return rcv.float64Field(nodeMaxY)
}

func (rcv *Node) float64Field(field int) float64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(slot(field)))
	if o != 0 {
		return rcv._tab.GetFloat64(o + rcv._tab.Pos)
	}
	return 0.0
}

// Low loads the low child into obj, allocating a new Node if obj is
// nil. Returns nil if the node has no low child.
func (rcv *Node) Low(obj *Node) *Node {
	return rcv.child(nodeLow, obj)
}

// High loads the high child into obj, allocating a new Node if obj is
// nil. Returns nil if the node has no high child.
func (rcv *Node) High(obj *Node) *Node {
	return rcv.child(nodeHigh, obj)
}

func (rcv *Node) child(field int, obj *Node) *Node {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(slot(field)))
	if o != 0 {
		x := rcv._tab.Indirect(o + rcv._tab.Pos)
		if obj == nil {
			obj = new(Node)
		}
		obj.Init(rcv._tab.Bytes, x)
		return obj
	}
	return nil
}

func (rcv *Node) ByX(j int) uint32 {
	return rcv.uint32Element(nodeByX, j)
}

func (rcv *Node) ByXLength() int {
	return rcv.vectorLength(nodeByX)
}

func (rcv *Node) ByY(j int) uint32 {
	return rcv.uint32Element(nodeByY, j)
}

func (rcv *Node) ByYLength() int {
	return rcv.vectorLength(nodeByY)
}

func (rcv *Node) uint32Element(field, j int) uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(slot(field)))
	if o != 0 {
		a := rcv._tab.Vector(o)
		return rcv._tab.GetUint32(a + flatbuffers.UOffsetT(j*flatbuffers.SizeUint32))
	}
	return 0
}

func (rcv *Node) vectorLength(field int) int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(slot(field)))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func NodeStart(builder *flatbuffers.Builder) {
	builder.StartObject(nodeNumFields)
}

func NodeAddDepth(builder *flatbuffers.Builder, depth uint16) {
	builder.PrependUint16Slot(nodeDepth, depth, 0)
}

// NodeAddBounds adds all four bounds fields.
func NodeAddBounds(builder *flatbuffers.Builder, minX, minY, maxX, maxY float64) {
	builder.PrependFloat64Slot(nodeMinX, minX, 0.0)
	builder.PrependFloat64Slot(nodeMinY, minY, 0.0)
	builder.PrependFloat64Slot(nodeMaxX, maxX, 0.0)
	builder.PrependFloat64Slot(nodeMaxY, maxY, 0.0)
}

func NodeAddLow(builder *flatbuffers.Builder, low flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(nodeLow, low, 0)
}

func NodeAddHigh(builder *flatbuffers.Builder, high flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(nodeHigh, high, 0)
}

func NodeAddByX(builder *flatbuffers.Builder, byX flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(nodeByX, byX, 0)
}

func NodeAddByY(builder *flatbuffers.Builder, byY flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(nodeByY, byY, 0)
}

// NodeStartByXVector starts the ByX vector. The caller prepends the
// elements in reverse order and finishes with builder.EndVector.
func NodeStartByXVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(flatbuffers.SizeUint32, numElems, flatbuffers.SizeUint32)
}

// NodeStartByYVector starts the ByY vector. The caller prepends the
// elements in reverse order and finishes with builder.EndVector.
func NodeStartByYVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(flatbuffers.SizeUint32, numElems, flatbuffers.SizeUint32)
}

func NodeEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

// slot converts a field number into its vtable offset.
func slot(field int) flatbuffers.VOffsetT {
	return flatbuffers.VOffsetT(4 + 2*field)
}
