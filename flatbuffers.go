// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import (
	"io"

	flatbuffers "github.com/google/flatbuffers/go"
)

// safeFlatBuffersInteraction runs a function that interacts with
// FlatBuffers, trapping any panic that occurs and converting it to a
// normal Go error.
//
// This function exists because FlatBuffer's Go code doesn't use
// standard Go error handling, and consequently reading a corrupt or
// truncated buffer may trigger an index out of range panic.
func safeFlatBuffersInteraction(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmtErr("panic: flatbuffers: %v", r)
		}
	}()
	err = f()
	return
}

// writeSizePrefixedTable writes a finished, size-prefixed FlatBuffers
// buffer to an output stream.
func writeSizePrefixedTable(w io.Writer, buf []byte) (n int, err error) {
	var size uint32
	if size, err = tableSize(buf); err != nil {
		return
	} else if uint64(size) > uint64(len(buf)-flatbuffers.SizeUint32) {
		err = fmtErr("FlatBuffers table buffer is smaller than the size prefix (Len=%d, size=%d)", len(buf), size)
		return
	} else {
		n, err = w.Write(buf[0 : flatbuffers.SizeUint32+size])
		return
	}
}

func tableSize(buf []byte) (size uint32, err error) {
	if len(buf) < flatbuffers.SizeUint32 {
		err = fmtErr("FlatBuffers buffer too short for size prefix (Len=%d)", len(buf))
		return
	}
	size = flatbuffers.GetUint32(buf)
	return
}

// readSizePrefixedTable reads a size-prefixed FlatBuffers table from an
// input stream, returning the table bytes without the size prefix.
// Tables larger than maxLen are rejected without being read.
func readSizePrefixedTable(r io.Reader, maxLen uint32) ([]byte, error) {
	prefix := make([]byte, flatbuffers.SizeUint32)
	if _, err := io.ReadFull(r, prefix); err != nil {
		return nil, wrapErr("failed to read index size", err)
	}
	size := flatbuffers.GetUint32(prefix)
	if size < flatbuffers.SizeUOffsetT {
		return nil, fmtErr("index size %d is too small", size)
	} else if size > maxLen {
		return nil, fmtErr("index size %d exceeds maximum %d", size, maxLen)
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, wrapErr("failed to read index bytes", err)
	}
	return buf, nil
}
