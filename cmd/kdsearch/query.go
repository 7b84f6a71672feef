// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/gogama/kdtree"
	"github.com/gogama/kdtree/geometry"
	"github.com/segmentio/encoding/json"
	"golang.org/x/sync/errgroup"
)

type query struct {
	text   string
	bounds geometry.Bounds
}

type result struct {
	Query string   `json:"query"`
	Count int      `json:"count"`
	IDs   []string `json:"ids"`
}

func parseQueries(texts []string) ([]query, error) {
	queries := make([]query, 0, len(texts))
	for _, text := range texts {
		q, err := parseQuery(text)
		if err != nil {
			return nil, err
		}
		queries = append(queries, q)
	}
	return queries, nil
}

// parseQuery parses a query formatted as minX:minY:maxX:maxY.
func parseQuery(text string) (query, error) {
	fields := strings.Split(strings.TrimSpace(text), ":")
	if len(fields) != 4 {
		return query{}, errors.New("query must have four coordinates").
			WithTag("query", text)
	}

	var c [4]float64
	for i := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
		if err != nil {
			return query{}, errors.New("invalid query coordinate").
				WithTag("query", text).
				WithTag("coordinate", fields[i]).
				Wrap(err)
		}
		c[i] = v
	}

	b := geometry.Bounds{MinX: c[0], MinY: c[1], MaxX: c[2], MaxY: c[3]}
	if !b.Valid() {
		return query{}, errors.New("query minimum exceeds maximum").
			WithTag("query", text)
	}
	return query{text: text, bounds: b}, nil
}

// runQueries searches the tree with up to parallelism queries at once.
// Results are returned in query order.
func runQueries(ctx context.Context, tree *kdtree.Tree[point], queries []query, parallelism int) ([]result, error) {
	results := make([]result, len(queries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			found, err := tree.Search(q.bounds)
			if err != nil {
				return errors.New("search failed").
					WithTag("query", q.text).
					Wrap(err)
			}

			ids := make([]string, len(found))
			for j := range found {
				ids[j] = found[j].ID
			}
			slices.Sort(ids)
			results[i] = result{Query: q.text, Count: len(ids), IDs: ids}

			logs.WithTag("query", q.text).
				WithTag("count", len(ids)).
				Debug("query done")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func writeResults(w io.Writer, results []result) error {
	enc := json.NewEncoder(w)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return errors.New("writing result failed").
				WithTag("query", r.Query).
				Wrap(err)
		}
	}
	return nil
}
