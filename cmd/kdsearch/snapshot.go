// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/gogama/kdtree"
	"github.com/klauspost/compress/zstd"
)

const zstdSuffix = ".zst"

func compressed(path string) bool {
	return strings.HasSuffix(path, zstdSuffix)
}

func saveSnapshotFile(path string, tree *kdtree.Tree[point]) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.New("creating snapshot file failed").
			WithTag("path", path).
			Wrap(err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.New("closing snapshot file failed").
				WithTag("path", path).
				Wrap(cerr)
		}
	}()

	if err = writeSnapshot(f, tree, compressed(path)); err != nil {
		return errors.New("saving snapshot failed").
			WithTag("path", path).
			Wrap(err)
	}
	return nil
}

func loadSnapshotFile(path string, points []point) (*kdtree.Tree[point], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New("opening snapshot file failed").
			WithTag("path", path).
			Wrap(err)
	}
	defer f.Close()

	tree, err := readSnapshot(f, points, compressed(path))
	if err != nil {
		return nil, errors.New("loading snapshot failed").
			WithTag("path", path).
			Wrap(err)
	}
	return tree, nil
}

// writeSnapshot marshals the tree to w, zstd compressing it if asked.
func writeSnapshot(w io.Writer, tree *kdtree.Tree[point], compress bool) error {
	if !compress {
		_, err := tree.Marshal(w)
		return err
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return errors.New("creating zstd encoder failed").Wrap(err)
	}
	if _, err = tree.Marshal(enc); err != nil {
		enc.Close()
		return err
	}
	if err = enc.Close(); err != nil {
		return errors.New("flushing zstd encoder failed").Wrap(err)
	}
	return nil
}

// readSnapshot unmarshals a tree over points from r, which is zstd
// compressed if compress is true.
func readSnapshot(r io.Reader, points []point, compress bool) (*kdtree.Tree[point], error) {
	if !compress {
		return kdtree.Unmarshal(r, points)
	}

	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, errors.New("creating zstd decoder failed").Wrap(err)
	}
	defer dec.Close()

	return kdtree.Unmarshal(dec, points)
}
