// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/gogama/kdtree/geometry"
	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	testCases := []struct {
		name       string
		a, b       geometry.Point
		expectedXY int
		expectedYX int
	}{
		{"Equal", geometry.Point{X: 1, Y: 2}, geometry.Point{X: 1, Y: 2}, 0, 0},
		{"LessX", geometry.Point{X: 0, Y: 2}, geometry.Point{X: 1, Y: 2}, -1, -1},
		{"GreaterX", geometry.Point{X: 2, Y: 2}, geometry.Point{X: 1, Y: 2}, 1, 1},
		{"LessY", geometry.Point{X: 1, Y: 1}, geometry.Point{X: 1, Y: 2}, -1, -1},
		{"GreaterY", geometry.Point{X: 1, Y: 3}, geometry.Point{X: 1, Y: 2}, 1, 1},
		{"LessXGreaterY", geometry.Point{X: 0, Y: 9}, geometry.Point{X: 1, Y: 2}, -1, 1},
		{"GreaterXLessY", geometry.Point{X: 9, Y: 0}, geometry.Point{X: 1, Y: 2}, 1, -1},
		{"NegativeZero", geometry.Point{X: 0, Y: 0}, geometry.Point{X: negativeZero(), Y: 0}, 0, 0},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expectedXY, compareXY(testCase.a, testCase.b))
			assert.Equal(t, -testCase.expectedXY, compareXY(testCase.b, testCase.a))
			assert.Equal(t, testCase.expectedYX, compareYX(testCase.a, testCase.b))
			assert.Equal(t, -testCase.expectedYX, compareYX(testCase.b, testCase.a))
		})
	}
}

func negativeZero() float64 {
	var z float64
	return -z
}

func TestSortOrdinals(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		var ordinals []int

		sortOrdinals(ordinals, nil, compareXY)

		assert.Empty(t, ordinals)
	})

	t.Run("Stable", func(t *testing.T) {
		// ...   ^
		// ...   | [1]       [4,5]
		// ...   |
		// ...   | [0,3]     [2]
		// ...   +-------------------->
		points := []geometry.Point{
			{X: 0, Y: 0},
			{X: 0, Y: 1},
			{X: 1, Y: 0},
			{X: 0, Y: 0},
			{X: 1, Y: 1},
			{X: 1, Y: 1},
		}

		t.Run("XY", func(t *testing.T) {
			ordinals := []int{0, 1, 2, 3, 4, 5}

			sortOrdinals(ordinals, points, compareXY)

			assert.Equal(t, []int{0, 3, 1, 2, 4, 5}, ordinals)
		})

		t.Run("YX", func(t *testing.T) {
			ordinals := []int{0, 1, 2, 3, 4, 5}

			sortOrdinals(ordinals, points, compareYX)

			assert.Equal(t, []int{0, 3, 2, 1, 4, 5}, ordinals)
		})

		t.Run("InputOrderOfTies", func(t *testing.T) {
			ordinals := []int{5, 3, 4, 0}

			sortOrdinals(ordinals, points, compareXY)

			assert.Equal(t, []int{3, 0, 5, 4}, ordinals)
		})
	})

	t.Run("Random", func(t *testing.T) {
		r := rand.New(rand.NewSource(7))
		points := make([]geometry.Point, 500)
		for i := range points {
			points[i] = geometry.Point{X: float64(r.Intn(20)), Y: float64(r.Intn(20))}
		}
		ordinals := make([]int, len(points))
		for i := range ordinals {
			ordinals[i] = i
		}

		sortOrdinals(ordinals, points, compareYX)

		assert.True(t, sort.SliceIsSorted(ordinals, func(i, j int) bool {
			c := compareYX(points[ordinals[i]], points[ordinals[j]])
			return c < 0 || c == 0 && ordinals[i] < ordinals[j]
		}))
	})
}
