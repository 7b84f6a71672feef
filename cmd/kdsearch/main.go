// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command kdsearch indexes a JSON file of points with a k-d tree and
// runs rectangular range queries against it.
package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"reflect"
	"runtime"
	"syscall"

	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/gogama/kdtree"
	"github.com/segmentio/encoding/json"
)

// The kdsearch version number. Set at build.
var version = "v0.1.0"

// Keeps the config field names intact under obfuscating builds, which
// the cli package needs to generate its options.
var _ = reflect.TypeOf(config{})

type config struct {
	Points      string   `cli:""        env:"KDSEARCH_POINTS"      help:"JSON file holding an array of {\"id\",\"x\",\"y\"} points."`
	Load        string   `cli:""        env:"KDSEARCH_LOAD"        help:"Snapshot file to load the index from instead of building it. A .zst suffix means zstd compressed."`
	Save        string   `cli:""        env:"KDSEARCH_SAVE"        help:"Snapshot file to save the index to. A .zst suffix means zstd compressed."`
	Queries     []string `cli:""        env:"KDSEARCH_QUERIES"     help:"Comma separated range queries, each formatted minX:minY:maxX:maxY."`
	LeafSize    int      `cli:",hidden" env:"KDSEARCH_LEAF_SIZE"   help:"Largest number of points a node holds without being split."`
	MaxDepth    int      `cli:",hidden" env:"KDSEARCH_MAX_DEPTH"   help:"Depth at which nodes are no longer split."`
	Parallelism int      `cli:""        env:"KDSEARCH_PARALLELISM" help:"Number of queries run at once."`
	LogLevel    string   `cli:""        env:"KDSEARCH_LOG_LEVEL"   help:"Log level (debug|info|warning|error)."`
	LogIndent   bool     `cli:""        env:"KDSEARCH_LOG_INDENT"  help:"Indent logs."`
	Version     bool     `cli:""        env:"-"                    help:"Show version."`
	Help        bool     `cli:""        env:"-"                    help:"Show help."`
}

func defaultConfig() config {
	return config{
		LeafSize:    kdtree.DefaultLeafSize,
		MaxDepth:    kdtree.DefaultMaxDepth,
		Parallelism: runtime.NumCPU(),
		LogLevel:    logs.InfoLevel.String(),
	}
}

func main() {
	conf := defaultConfig()

	ctx, cancel := cli.ContextWithSignals(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cli.Register().
		Help("Indexes points with a k-d tree and runs range queries against it.").
		Options(&conf)
	cli.Load()

	if conf.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	logs.SetLevel(logs.ParseLevel(conf.LogLevel))
	logs.Encoder = json.Marshal
	if conf.LogIndent {
		logs.Encoder = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}

	errors.Encoder = json.Marshal

	if err := validateConfig(conf); err != nil {
		logs.Fatal(err)
	}

	if err := run(ctx, conf, os.Stdout); err != nil {
		logs.Fatal(err)
	}
}

func validateConfig(conf config) error {
	if conf.Points == "" {
		return errors.New("points file is required")
	}
	if conf.LeafSize < 1 || uint64(conf.LeafSize) > math.MaxUint32 {
		return errors.New("invalid leaf size").
			WithTag("leaf_size", conf.LeafSize)
	}
	if conf.MaxDepth < 0 || conf.MaxDepth > math.MaxUint16 {
		return errors.New("invalid max depth").
			WithTag("max_depth", conf.MaxDepth)
	}
	if conf.Parallelism < 1 {
		return errors.New("invalid parallelism").
			WithTag("parallelism", conf.Parallelism)
	}
	return nil
}

// run loads the points, builds or loads the index, optionally saves it,
// and writes the result of each query to out as a line of JSON.
func run(ctx context.Context, conf config, out io.Writer) error {
	queries, err := parseQueries(conf.Queries)
	if err != nil {
		return err
	}

	points, err := loadPointsFile(conf.Points)
	if err != nil {
		return err
	}
	logs.WithTag("path", conf.Points).
		WithTag("count", len(points)).
		Debug("points loaded")

	var tree *kdtree.Tree[point]
	if conf.Load != "" {
		if tree, err = loadSnapshotFile(conf.Load, points); err != nil {
			return err
		}
	} else if tree, err = kdtree.NewSize(points, conf.LeafSize, conf.MaxDepth); err != nil {
		return errors.New("building index failed").
			WithTag("path", conf.Points).
			Wrap(err)
	}
	logs.WithTag("items", tree.Len()).
		WithTag("depth", tree.Depth()).
		WithTag("loaded", conf.Load != "").
		Info("index ready")

	if conf.Save != "" {
		if err = saveSnapshotFile(conf.Save, tree); err != nil {
			return err
		}
		logs.WithTag("path", conf.Save).Info("index saved")
	}

	results, err := runQueries(ctx, tree, queries, conf.Parallelism)
	if err != nil {
		return err
	}
	return writeResults(out, results)
}
