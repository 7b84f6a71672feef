// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBounds_String(t *testing.T) {
	testCases := []struct {
		name     string
		input    Bounds
		expected string
	}{
		{"Zero", Bounds{}, "[0,0,0,0]"},
		{"Integers", Bounds{-1, 2, -3, 4}, "[-1,2,-3,4]"},
		{"Exact", Bounds{-100.5, -200.25, 1234.125, 5678.0625}, "[-100.5,-200.25,1234.125,5678.0625]"},
		{"Inflated", Bounds{MinX: 0, MinY: 0, MaxX: 2.0000001, MaxY: 1e-7}, "[0,0,2.0000001,1e-07]"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := testCase.input.String()

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestBounds_Width(t *testing.T) {
	testCases := []struct {
		name     string
		input    Bounds
		expected float64
	}{
		{"Zero", Bounds{}, 0},
		{"One", Bounds{MinX: 0, MaxX: 1}, 1},
		{"Two", Bounds{MinX: -1, MaxX: 1}, 2},
		{"Inverted", Bounds{MinX: 1, MaxX: -1}, -2},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := testCase.input.Width()

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestBounds_Height(t *testing.T) {
	testCases := []struct {
		name     string
		input    Bounds
		expected float64
	}{
		{"Zero", Bounds{}, 0},
		{"One", Bounds{MinY: 0, MaxY: 1}, 1},
		{"Two", Bounds{MinY: -1, MaxY: 1}, 2},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := testCase.input.Height()

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestBounds_Valid(t *testing.T) {
	testCases := []struct {
		name     string
		input    Bounds
		expected bool
	}{
		{"Zero", Bounds{}, true},
		{"Unit", Bounds{0, 0, 1, 1}, true},
		{"Infinite", Bounds{math.Inf(-1), math.Inf(-1), math.Inf(1), math.Inf(1)}, true},
		{"InvertedX", Bounds{MinX: 1, MaxX: 0}, false},
		{"InvertedY", Bounds{MinY: 1, MaxY: 0}, false},
		{"NaN.MinX", Bounds{MinX: math.NaN(), MaxX: 1, MaxY: 1}, false},
		{"NaN.MaxY", Bounds{MaxX: 1, MaxY: math.NaN()}, false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.input.Valid())
		})
	}
}

func TestBounds_Intersects(t *testing.T) {
	testCases := []struct {
		name     string
		b, c     Bounds
		expected bool
	}{
		{"Zero", Bounds{}, Bounds{}, true},
		{"FullyContained", Bounds{-2, -2, 2, 2}, Bounds{-1, -1, 1, 1}, true},
		{"FullyContaining", Bounds{-1, -1, 1, 1}, Bounds{-2, -2, 2, 2}, true},
		{"OverlapLeft", Bounds{-2, -2, 2, 2}, Bounds{-3, -1, -1, 1}, true},
		{"OverlapUp", Bounds{-2, -2, 2, 2}, Bounds{-1, 1, 1, 3}, true},
		{"TouchRightEdge", Bounds{-2, -2, 2, 2}, Bounds{2, -1, 3, 1}, true},
		{"TouchBottomEdge", Bounds{-2, -2, 2, 2}, Bounds{-1, -3, 1, -2}, true},
		{"TouchCorner", Bounds{0, 0, 1, 1}, Bounds{1, 1, 2, 2}, true},
		{"IsLeftOf", Bounds{-2, -2, 0, 0}, Bounds{-100, -2, -50, 0}, false},
		{"IsBelow", Bounds{-2, -2, 0, 0}, Bounds{-2, -100, 0, -50}, false},
		{"IsRightOf", Bounds{-2, -2, 0, 2}, Bounds{50, -2, 100, 1}, false},
		{"IsAbove", Bounds{-2, -2, 2, 2}, Bounds{1, 50, 2, 100}, false},
		{"JustMissesRight", Bounds{0, 0, 1, 1}, Bounds{1.0000001, 0, 2, 1}, false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			b, c := testCase.b, testCase.c

			assert.Equal(t, testCase.expected, b.Intersects(&c))
			assert.Equal(t, testCase.expected, c.Intersects(&b), "Intersects must be symmetric.")
		})
	}
}

func TestBounds_Contains(t *testing.T) {
	testCases := []struct {
		name     string
		b, c     Bounds
		expected bool
	}{
		{"Zero", Bounds{}, Bounds{}, true},
		{"Self", Bounds{-1, -1, 1, 1}, Bounds{-1, -1, 1, 1}, true},
		{"Inside", Bounds{-2, -2, 2, 2}, Bounds{-1, -1, 1, 1}, true},
		{"SharesEdge", Bounds{-2, -2, 2, 2}, Bounds{0, -2, 2, 0}, true},
		{"Outside", Bounds{-1, -1, 1, 1}, Bounds{-2, -2, 2, 2}, false},
		{"Overlaps", Bounds{0, 0, 2, 2}, Bounds{1, 1, 3, 3}, false},
		{"Disjoint", Bounds{0, 0, 1, 1}, Bounds{5, 5, 6, 6}, false},
		{"OverhangsMaxX", Bounds{0, 0, 1, 1}, Bounds{0, 0, 1.0000001, 1}, false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			b, c := testCase.b, testCase.c

			assert.Equal(t, testCase.expected, b.Contains(&c))
		})
	}
}

func TestBounds_ContainsPoint(t *testing.T) {
	b := Bounds{MinX: -1, MinY: -2, MaxX: 3, MaxY: 4}

	testCases := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"Inside", Point{0, 0}, true},
		{"MinCorner", Point{-1, -2}, true},
		{"MaxCorner", Point{3, 4}, true},
		{"LeftEdge", Point{-1, 1}, true},
		{"TopEdge", Point{1, 4}, true},
		{"Left", Point{-1.0001, 0}, false},
		{"Right", Point{3.0001, 0}, false},
		{"Below", Point{0, -2.0001}, false},
		{"Above", Point{0, 4.0001}, false},
		{"NaN", Point{math.NaN(), 0}, false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, b.ContainsPoint(testCase.p))
		})
	}
}
