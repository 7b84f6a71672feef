// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flat

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

const (
	indexNumItems = iota
	indexLeafSize
	indexMaxDepth
	indexRoot
	indexNumFields
)

// Index is the root table of a persisted kdtree.
type Index struct {
	_tab flatbuffers.Table
}

// GetRootAsIndex returns the Index whose root offset is stored at
// offset of buf. The buf must not include a size prefix at offset.
func GetRootAsIndex(buf []byte, offset flatbuffers.UOffsetT) *Index {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &Index{}
	x.Init(buf, n+offset)
	return x
}

// GetSizePrefixedRootAsIndex is like GetRootAsIndex for a buffer which
// starts with a four byte size prefix at offset.
func GetSizePrefixedRootAsIndex(buf []byte, offset flatbuffers.UOffsetT) *Index {
	n := flatbuffers.GetUOffsetT(buf[offset+flatbuffers.SizeUint32:])
	x := &Index{}
	x.Init(buf, n+offset+flatbuffers.SizeUint32)
	return x
}

func (rcv *Index) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Index) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *Index) NumItems() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(slot(indexNumItems)))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Index) LeafSize() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(slot(indexLeafSize)))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Index) MaxDepth() uint16 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(slot(indexMaxDepth)))
	if o != 0 {
		return rcv._tab.GetUint16(o + rcv._tab.Pos)
	}
	return 0
}

// Root loads the root node into obj, allocating a new Node if obj is
// nil. Returns nil for the index of an empty tree.
func (rcv *Index) Root(obj *Node) *Node {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(slot(indexRoot)))
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

func IndexStart(builder *flatbuffers.Builder) {
	builder.StartObject(indexNumFields)
}

func IndexAddNumItems(builder *flatbuffers.Builder, numItems uint64) {
	builder.PrependUint64Slot(indexNumItems, numItems, 0)
}

func IndexAddLeafSize(builder *flatbuffers.Builder, leafSize uint32) {
	builder.PrependUint32Slot(indexLeafSize, leafSize, 0)
}

func IndexAddMaxDepth(builder *flatbuffers.Builder, maxDepth uint16) {
	builder.PrependUint16Slot(indexMaxDepth, maxDepth, 0)
}

func IndexAddRoot(builder *flatbuffers.Builder, root flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(indexRoot, root, 0)
}

func IndexEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
