// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import (
	"math"

	"github.com/gogama/kdtree/geometry"
)

const (
	// DefaultLeafSize is the leaf size used by New. A node holding
	// more items than the leaf size is split unless it is at the
	// maximum depth.
	DefaultLeafSize = 50
	// DefaultMaxDepth is the maximum depth used by New. Nodes at the
	// maximum depth are never split, which bounds construction on
	// degenerate input.
	DefaultMaxDepth = 40
	// Epsilon is added to upper bounds so that an item lying exactly on
	// a node's upper edge is still contained by the node.
	Epsilon = 1e-7
)

// An Item is a value indexed by a Tree. Each item is located at a
// single point, which must have finite coordinates and must not change
// while the item is indexed. Several items may share the same point.
type Item interface {
	Point() geometry.Point
}

// A node is either a *leaf or a *branch.
type node interface {
	info() *nodeInfo
}

// nodeInfo holds the fields common to both node kinds.
type nodeInfo struct {
	// depth is the node's distance from the root, which has depth 0.
	depth int
	// bounds contains the point of every item in the node's subtree.
	bounds geometry.Bounds
}

func (n *nodeInfo) info() *nodeInfo {
	return n
}

// A branch is an internal node. Its items are divided between its two
// children and it holds none itself.
type branch struct {
	nodeInfo
	// low holds the items below the split boundary on the branch's
	// axis, and high holds the rest.
	low, high node
}

// A leaf holds the ordinals of its items in two orders.
type leaf struct {
	nodeInfo
	// byX holds item ordinals sorted by X then Y, ascending.
	byX []int
	// byY holds the same ordinals as byX sorted by Y then X, ascending.
	byY []int
}

// Tree is a static two-dimensional k-d tree over items of type T.
type Tree[T Item] struct {
	// items is a copy of the slice passed when the tree was created.
	// Leaves refer to items by their index, or ordinal, in this slice.
	items []T
	// points caches the point of each item, by ordinal.
	points []geometry.Point
	// leafSize is the largest number of items a node may hold without
	// being split.
	leafSize int
	// maxDepth is the depth at which nodes are no longer split.
	maxDepth int
	// root is the root node, or nil if the tree has no items.
	root node
}

func validateParams(leafSize, maxDepth int) {
	if leafSize < 1 || uint64(leafSize) > math.MaxUint32 {
		fmtPanic("leaf size must be between 1 and %d (got %d)", uint32(math.MaxUint32), leafSize)
	} else if maxDepth < 0 || maxDepth > math.MaxUint16 {
		fmtPanic("max depth must be between 0 and %d (got %d)", math.MaxUint16, maxDepth)
	}
}

// New creates a tree indexing a batch of items using the default leaf
// size and maximum depth. See NewSize.
func New[T Item](items []T) (*Tree[T], error) {
	return NewSize(items, DefaultLeafSize, DefaultMaxDepth)
}

// NewSize creates a tree indexing a batch of items. Nodes holding more
// than leafSize items are split in two until the maximum depth is
// reached. Panics if leafSize is less than 1 or does not fit in a
// uint32, or if maxDepth is negative or does not fit in a uint16.
//
// The items slice is copied, so the caller may reuse it. An error
// wrapping ErrInvalidInput is returned if any item's point has a NaN or
// infinite coordinate.
//
// An empty or nil items slice produces an empty tree, whose Search
// method always returns no items.
func NewSize[T Item](items []T, leafSize, maxDepth int) (*Tree[T], error) {
	validateParams(leafSize, maxDepth)

	t, err := newTree(items, leafSize, maxDepth)
	if err != nil {
		return nil, err
	}
	if len(t.items) == 0 {
		return t, nil
	}

	// Sort the item ordinals along each axis.
	n := len(t.items)
	byX := make([]int, n)
	byY := make([]int, n)
	for i := 0; i < n; i++ {
		byX[i] = i
		byY[i] = i
	}
	sortOrdinals(byX, t.points, compareXY)
	sortOrdinals(byY, t.points, compareYX)

	// Recursively split from the root down.
	b := builder{
		points:   t.points,
		leafSize: leafSize,
		maxDepth: maxDepth,
		marks:    make([]bool, n),
		scratch:  make([]int, n),
	}
	t.root = b.build(0, boundsOf(t.points), byX, byY)

	return t, nil
}

// newTree creates a tree without any nodes, copying the items and
// caching their points.
func newTree[T Item](items []T, leafSize, maxDepth int) (*Tree[T], error) {
	t := &Tree[T]{
		items:    make([]T, len(items)),
		points:   make([]geometry.Point, len(items)),
		leafSize: leafSize,
		maxDepth: maxDepth,
	}
	copy(t.items, items)
	for i := range t.items {
		p := t.items[i].Point()
		if !p.Finite() {
			return nil, detailErr(ErrInvalidInput, "item %d has non-finite point %s", i, p)
		}
		t.points[i] = p
	}
	return t, nil
}

// A builder carries the state shared by every level of a recursive
// tree build.
type builder struct {
	points   []geometry.Point
	leafSize int
	maxDepth int
	// marks flags, by ordinal, the items moving to the low child
	// during a partition. It is all false between partitions.
	marks []bool
	// scratch is working space for partition.
	scratch []int
}

// build creates the node at the given depth which holds the items in
// byX and byY. The node splits if it has too many items, after which
// the two orderings belong to its descendants.
func (b *builder) build(depth int, bounds geometry.Bounds, byX, byY []int) node {
	n := len(byX)
	if n <= b.leafSize || depth >= b.maxDepth {
		return &leaf{
			nodeInfo: nodeInfo{depth: depth, bounds: bounds},
			byX:      byX,
			byY:      byY,
		}
	}

	// The low child gets the first mid items in the active axis order.
	// The boundary is the active coordinate of the first item in the
	// high child, and may be shared by items at the end of the low
	// child. Raising the low child's upper edge by Epsilon keeps those
	// items inside it.
	mid := n / 2
	low, high := bounds, bounds
	if depth%2 == 0 {
		boundary := b.points[byX[mid]].X
		low.MaxX = boundary + Epsilon
		high.MinX = boundary
		b.partition(byY, byX[:mid])
	} else {
		boundary := b.points[byY[mid]].Y
		low.MaxY = boundary + Epsilon
		high.MinY = boundary
		b.partition(byX, byY[:mid])
	}

	// Both orderings now have the low child's items first.
	return &branch{
		nodeInfo: nodeInfo{depth: depth, bounds: bounds},
		low:      b.build(depth+1, low, byX[:mid:mid], byY[:mid:mid]),
		high:     b.build(depth+1, high, byX[mid:], byY[mid:]),
	}
}

// partition stably reorders other so that the ordinals also present in
// lows come first, keeping the relative order within both groups.
func (b *builder) partition(other, lows []int) {
	for _, i := range lows {
		b.marks[i] = true
	}
	tmp := b.scratch[:len(other)]
	l, h := 0, len(lows)
	for _, i := range other {
		if b.marks[i] {
			tmp[l] = i
			l++
		} else {
			tmp[h] = i
			h++
		}
	}
	copy(other, tmp)
	for _, i := range lows {
		b.marks[i] = false
	}
}

// Len returns the number of items indexed by the tree.
func (t *Tree[T]) Len() int {
	return len(t.items)
}

// LeafSize returns the largest number of items a node may hold without
// being split.
func (t *Tree[T]) LeafSize() int {
	return t.leafSize
}

// MaxDepth returns the depth at which nodes are no longer split.
func (t *Tree[T]) MaxDepth() int {
	return t.maxDepth
}

// Bounds returns the bounding rectangle around all items in the tree,
// with the upper edges raised by Epsilon. The second return value is
// false if the tree is empty.
func (t *Tree[T]) Bounds() (geometry.Bounds, bool) {
	if t.root == nil {
		return geometry.Bounds{}, false
	}
	return t.root.info().bounds, true
}

// Depth returns the depth of the deepest leaf. A tree with a single
// leaf, or no items, has depth 0.
func (t *Tree[T]) Depth() int {
	if t.root == nil {
		return 0
	}
	return depth(t.root)
}

func depth(n node) int {
	if b, ok := n.(*branch); ok {
		d1, d2 := depth(b.low), depth(b.high)
		if d1 > d2 {
			return d1
		}
		return d2
	}
	return n.info().depth
}

// Search returns every item whose point lies within the query bounds,
// including on its edges. The order of the results is not defined.
//
// An error wrapping ErrInvalidQuery is returned, before any searching
// is done, if the query bounds are not valid. Searching an empty tree
// returns an empty result.
func (t *Tree[T]) Search(q geometry.Bounds) ([]T, error) {
	if !q.Valid() {
		return nil, detailErr(ErrInvalidQuery, "bounds %s", q)
	}
	r := make([]T, 0)
	if t.root == nil {
		return r, nil
	}
	return t.search(t.root, &q, r), nil
}

func (t *Tree[T]) search(n node, q *geometry.Bounds, r []T) []T {
	if !n.info().bounds.Intersects(q) {
		return r
	}
	switch n := n.(type) {
	case *branch:
		r = t.search(n.low, q, r)
		r = t.search(n.high, q, r)
	case *leaf:
		if q.Contains(&n.bounds) {
			for _, i := range n.byX {
				r = append(r, t.items[i])
			}
		} else {
			for _, i := range n.byX {
				if q.ContainsPoint(t.points[i]) {
					r = append(r, t.items[i])
				}
			}
		}
	}
	return r
}
