// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import (
	"sort"

	"github.com/gogama/kdtree/geometry"
)

// compareXY orders points by ascending X-coordinate, breaking ties by
// ascending Y-coordinate.
func compareXY(a, b geometry.Point) int {
	if c := compareFloat(a.X, b.X); c != 0 {
		return c
	}
	return compareFloat(a.Y, b.Y)
}

// compareYX orders points by ascending Y-coordinate, breaking ties by
// ascending X-coordinate.
func compareYX(a, b geometry.Point) int {
	if c := compareFloat(a.Y, b.Y); c != 0 {
		return c
	}
	return compareFloat(a.X, b.X)
}

func compareFloat(a, b float64) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// ordinalSortable is an implementation of sort.Interface which sorts
// item ordinals by their points. Implementing the interface directly
// lets us use the reflection-free sort.Stable instead of
// sort.SliceStable.
type ordinalSortable struct {
	ordinals []int
	points   []geometry.Point
	compare  func(a, b geometry.Point) int
}

func (s *ordinalSortable) Len() int {
	return len(s.ordinals)
}

func (s *ordinalSortable) Less(i, j int) bool {
	return s.compare(s.points[s.ordinals[i]], s.points[s.ordinals[j]]) < 0
}

func (s *ordinalSortable) Swap(i, j int) {
	s.ordinals[i], s.ordinals[j] = s.ordinals[j], s.ordinals[i]
}

// sortOrdinals sorts item ordinals by comparing their points. The sort
// is stable, so ordinals of coincident points keep their input order
// and repeated builds over the same input produce the same tree.
func sortOrdinals(ordinals []int, points []geometry.Point, compare func(a, b geometry.Point) int) {
	sort.Stable(&ordinalSortable{
		ordinals: ordinals,
		points:   points,
		compare:  compare,
	})
}
