// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint_String(t *testing.T) {
	testCases := []struct {
		name     string
		input    Point
		expected string
	}{
		{"Zero", Point{}, "(0,0)"},
		{"Integers", Point{-1, 2}, "(-1,2)"},
		{"Exact", Point{-100.5, 1234.125}, "(-100.5,1234.125)"},
		{"Epsilon", Point{2.0000001, 0}, "(2.0000001,0)"},
		{"NaN", Point{math.NaN(), math.Inf(1)}, "(NaN,+Inf)"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := testCase.input.String()

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestPoint_Finite(t *testing.T) {
	testCases := []struct {
		name     string
		input    Point
		expected bool
	}{
		{"Zero", Point{}, true},
		{"Large", Point{math.MaxFloat64, -math.MaxFloat64}, true},
		{"NaN.X", Point{math.NaN(), 0}, false},
		{"NaN.Y", Point{0, math.NaN()}, false},
		{"Inf.X", Point{math.Inf(-1), 0}, false},
		{"Inf.Y", Point{0, math.Inf(1)}, false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.input.Finite())
		})
	}
}
