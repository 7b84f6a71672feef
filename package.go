// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package kdtree provides a static two-dimensional k-d tree which
// indexes a batch of point-bearing items for axis-aligned rectangular
// range search.
//
// A Tree is built once from a slice of items and never changes
// afterward, so any number of goroutines may search it concurrently.
// Nodes split alternately along the X- and Y-axes at the median item
// until a node holds no more than the leaf size or reaches the maximum
// depth.
//
// A built Tree can be persisted with Marshal and re-attached to the
// same items with Unmarshal, avoiding the cost of sorting again.
package kdtree
