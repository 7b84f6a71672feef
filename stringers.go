// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import (
	"fmt"
)

// String returns a summary description of the tree.
func (t *Tree[T]) String() string {
	b, ok := t.Bounds()
	if !ok {
		return "Tree{Bounds:<nil>,NumItems:0,Depth:0}"
	}
	return fmt.Sprintf("Tree{Bounds:%s,NumItems:%d,Depth:%d}", b, len(t.items), t.Depth())
}

// String returns the version formatted as "major.patch".
func (v FormatVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Patch)
}

func (n *leaf) String() string {
	return fmt.Sprintf("leaf{Depth:%d,Bounds:%s,NumItems:%d}", n.depth, n.bounds, len(n.byX))
}

func (n *branch) String() string {
	return fmt.Sprintf("branch{Depth:%d,Bounds:%s}", n.depth, n.bounds)
}
