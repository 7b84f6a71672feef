// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when an item passed to New or
	// Unmarshal does not have a finite point.
	ErrInvalidInput = textErr("invalid input")
	// ErrInvalidQuery is returned when Search is given bounds whose
	// minimum exceeds the maximum on either axis, or which contain a
	// NaN coordinate.
	ErrInvalidQuery = textErr("invalid query")
)

const packageName = "kdtree: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtErr(format string, a ...interface{}) error {
	return fmt.Errorf(packageName+format, a...)
}

func wrapErr(text string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+text+": %w", append(a, err)...)
}

// detailErr adds detail to one of the package's sentinel errors while
// keeping it matchable with errors.Is.
func detailErr(sentinel error, format string, a ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{sentinel}, a...)...)
}

func textPanic(text string) {
	panic(packageName + text)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
