// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package geometry provides the two-dimensional point and axis-aligned
// bounding rectangle value types used by the kdtree index.
package geometry
