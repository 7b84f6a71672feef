// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import (
	"io"
	"math"

	"github.com/gogama/kdtree/flat"
	"github.com/gogama/kdtree/geometry"
	flatbuffers "github.com/google/flatbuffers/go"
)

// Marshal serializes the tree as a snapshot to a writer, returning the
// number of bytes written. The snapshot is the magic number followed by
// a size-prefixed FlatBuffers index table. It records the shape of the
// tree and the ordinal of each item, but not the items themselves, so
// it can only be unmarshalled against the same items in the same order.
func (t *Tree[T]) Marshal(w io.Writer) (n int, err error) {
	if w == nil {
		textPanic("nil writer")
	}
	if uint64(len(t.items)) > math.MaxUint32 {
		err = textErr("item count overflows uint32")
		return
	}

	// Build the index table. Children must be finished before their
	// parents, so the nodes are written bottom up.
	b := flatbuffers.NewBuilder(1024)
	var root flatbuffers.UOffsetT
	if t.root != nil {
		root = marshalNode(b, t.root)
	}
	flat.IndexStart(b)
	flat.IndexAddNumItems(b, uint64(len(t.items)))
	flat.IndexAddLeafSize(b, uint32(t.leafSize))
	flat.IndexAddMaxDepth(b, uint16(t.maxDepth))
	if t.root != nil {
		flat.IndexAddRoot(b, root)
	}
	b.FinishSizePrefixed(flat.IndexEnd(b))

	// Write the magic number.
	m, err := w.Write(magic[:])
	n += m
	if err != nil {
		err = wrapErr("failed to write magic number", err)
		return
	}

	// Write the index table.
	m, err = writeSizePrefixedTable(w, b.FinishedBytes())
	n += m
	if err != nil {
		err = wrapErr("failed to write index", err)
	}
	return
}

func marshalNode(b *flatbuffers.Builder, n node) flatbuffers.UOffsetT {
	switch n := n.(type) {
	case *branch:
		low := marshalNode(b, n.low)
		high := marshalNode(b, n.high)
		flat.NodeStart(b)
		marshalNodeInfo(b, &n.nodeInfo)
		flat.NodeAddLow(b, low)
		flat.NodeAddHigh(b, high)
		return flat.NodeEnd(b)
	case *leaf:
		flat.NodeStartByXVector(b, len(n.byX))
		for i := len(n.byX) - 1; i >= 0; i-- {
			b.PrependUint32(uint32(n.byX[i]))
		}
		byX := b.EndVector(len(n.byX))
		flat.NodeStartByYVector(b, len(n.byY))
		for i := len(n.byY) - 1; i >= 0; i-- {
			b.PrependUint32(uint32(n.byY[i]))
		}
		byY := b.EndVector(len(n.byY))
		flat.NodeStart(b)
		marshalNodeInfo(b, &n.nodeInfo)
		flat.NodeAddByX(b, byX)
		flat.NodeAddByY(b, byY)
		return flat.NodeEnd(b)
	default:
		fmtPanic("logic error: unexpected node type %T", n)
		return 0
	}
}

func marshalNodeInfo(b *flatbuffers.Builder, info *nodeInfo) {
	flat.NodeAddDepth(b, uint16(info.depth))
	flat.NodeAddBounds(b, info.bounds.MinX, info.bounds.MinY, info.bounds.MaxX, info.bounds.MaxY)
}

// Unmarshal deserializes a snapshot written by Marshal, re-attaching
// the tree to the items it was built from. The items must be the same,
// in the same order, as those originally passed to New or NewSize. The
// items slice is copied.
//
// The snapshot is validated as it is read. An error is returned if the
// snapshot is malformed, if its item count differs from len(items), or
// if any item's point lies outside the leaf which the snapshot places
// it in. Panics if r is nil.
//
// If this function returns without error, the reader will be positioned
// at the first byte after the snapshot.
func Unmarshal[T Item](r io.Reader, items []T) (*Tree[T], error) {
	if r == nil {
		textPanic("nil reader")
	}

	// Read and check the magic number.
	version, err := Magic(r)
	if err != nil {
		return nil, err
	} else if version.Major < MinFormatMajorVersion || version.Major > MaxFormatMajorVersion {
		return nil, fmtErr("unsupported format version %s", version)
	}

	// Read the raw index table.
	buf, err := readSizePrefixedTable(r, indexMaxLen)
	if err != nil {
		return nil, err
	}

	// Decode and validate the index table.
	var t *Tree[T]
	err = safeFlatBuffersInteraction(func() error {
		var err2 error
		t, err2 = unmarshalIndex(flat.GetRootAsIndex(buf, 0), items)
		return err2
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func unmarshalIndex[T Item](index *flat.Index, items []T) (*Tree[T], error) {
	// Validate the tree parameters.
	if index.NumItems() != uint64(len(items)) {
		return nil, fmtErr("item count mismatch (index=%d, items=%d)", index.NumItems(), len(items))
	}
	leafSize := index.LeafSize()
	if leafSize < 1 || uint64(leafSize) > math.MaxInt {
		return nil, fmtErr("invalid index leaf size %d", leafSize)
	}

	// Create the tree without nodes.
	t, err := newTree(items, int(leafSize), int(index.MaxDepth()))
	if err != nil {
		return nil, err
	}

	// Decode the nodes.
	root := index.Root(nil)
	if len(items) == 0 {
		if root != nil {
			return nil, textErr("index of empty tree has a root node")
		}
		return t, nil
	} else if root == nil {
		return nil, textErr("index has no root node")
	}
	u := unmarshaller{
		points:   t.points,
		maxDepth: t.maxDepth,
		owner:    make([]int, len(items)),
		seenY:    make([]bool, len(items)),
	}
	if t.root, err = u.node(root, 0); err != nil {
		return nil, err
	}
	if u.numItems != len(items) {
		return nil, fmtErr("index leaves hold %d of %d items", u.numItems, len(items))
	}

	return t, nil
}

// An unmarshaller carries the state shared by every level of a
// recursive index decode.
type unmarshaller struct {
	points   []geometry.Point
	maxDepth int
	// owner records, by ordinal, the number of the leaf whose ByX
	// vector holds the item. Zero means the item is not yet seen.
	owner []int
	// seenY records, by ordinal, whether the item was seen in a ByY
	// vector.
	seenY []bool
	// numLeaves is the number of leaves decoded so far.
	numLeaves int
	// numItems is the number of items decoded so far.
	numItems int
}

func (u *unmarshaller) node(fn *flat.Node, depth int) (node, error) {
	// Validate the fields common to all nodes.
	if int(fn.Depth()) != depth {
		return nil, fmtErr("node depth %d found at depth %d", fn.Depth(), depth)
	} else if depth > u.maxDepth {
		return nil, fmtErr("node depth %d exceeds max depth %d", depth, u.maxDepth)
	}
	info := nodeInfo{
		depth: depth,
		bounds: geometry.Bounds{
			MinX: fn.MinX(),
			MinY: fn.MinY(),
			MaxX: fn.MaxX(),
			MaxY: fn.MaxY(),
		},
	}
	if !info.bounds.Valid() {
		return nil, fmtErr("node at depth %d has invalid bounds %s", depth, info.bounds)
	}

	// Decode the node as a branch or a leaf.
	low, high := fn.Low(nil), fn.High(nil)
	if low != nil || high != nil {
		return u.branch(info, low, high)
	}
	return u.leaf(info, fn)
}

func (u *unmarshaller) branch(info nodeInfo, low, high *flat.Node) (node, error) {
	if low == nil || high == nil {
		return nil, fmtErr("branch at depth %d has only one child", info.depth)
	}
	b := &branch{nodeInfo: info}
	var err error
	if b.low, err = u.node(low, info.depth+1); err != nil {
		return nil, err
	}
	if b.high, err = u.node(high, info.depth+1); err != nil {
		return nil, err
	}
	for _, child := range []node{b.low, b.high} {
		if !b.bounds.Contains(&child.info().bounds) {
			return nil, fmtErr("%s is not contained by parent %s", child, b)
		}
	}
	return b, nil
}

func (u *unmarshaller) leaf(info nodeInfo, fn *flat.Node) (node, error) {
	n := fn.ByXLength()
	if n == 0 {
		return nil, fmtErr("leaf at depth %d has no items", info.depth)
	} else if fn.ByYLength() != n {
		return nil, fmtErr("leaf at depth %d has %d items by X but %d by Y", info.depth, n, fn.ByYLength())
	} else if n > len(u.points)-u.numItems {
		return nil, fmtErr("leaf at depth %d has %d items but only %d remain", info.depth, n, len(u.points)-u.numItems)
	}
	u.numLeaves++
	l := &leaf{
		nodeInfo: info,
		byX:      make([]int, n),
		byY:      make([]int, n),
	}
	for j := 0; j < n; j++ {
		i := int(fn.ByX(j))
		if i >= len(u.points) {
			return nil, fmtErr("%s refers to item %d of %d", l, i, len(u.points))
		} else if u.owner[i] != 0 {
			return nil, fmtErr("item %d appears in more than one leaf", i)
		} else if !l.bounds.ContainsPoint(u.points[i]) {
			return nil, fmtErr("item %d at %s lies outside %s", i, u.points[i], l)
		}
		u.owner[i] = u.numLeaves
		l.byX[j] = i
	}
	for j := 0; j < n; j++ {
		i := int(fn.ByY(j))
		if i >= len(u.points) || u.owner[i] != u.numLeaves || u.seenY[i] {
			return nil, fmtErr("%s orders its items inconsistently", l)
		}
		u.seenY[i] = true
		l.byY[j] = i
	}
	u.numItems += n
	return l, nil
}
