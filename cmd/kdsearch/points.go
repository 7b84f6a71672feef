// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/gogama/kdtree/geometry"
	"github.com/segmentio/encoding/json"
)

// point is an identified location read from a points file.
type point struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

func (p point) Point() geometry.Point {
	return geometry.Point{X: p.X, Y: p.Y}
}

func loadPointsFile(path string) ([]point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New("opening points file failed").
			WithTag("path", path).
			Wrap(err)
	}
	defer f.Close()

	points, err := loadPoints(f)
	if err != nil {
		return nil, errors.New("loading points failed").
			WithTag("path", path).
			Wrap(err)
	}
	return points, nil
}

// loadPoints decodes a JSON array of points.
func loadPoints(r io.Reader) ([]point, error) {
	var points []point
	if err := json.NewDecoder(r).Decode(&points); err != nil {
		return nil, errors.New("decoding points failed").Wrap(err)
	}
	for i, p := range points {
		if !p.Point().Finite() {
			return nil, errors.New("point is not finite").
				WithTag("index", i).
				WithTag("id", p.ID)
		}
	}
	return points, nil
}
