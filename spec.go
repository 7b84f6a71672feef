// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import (
	"io"
)

const (
	// magicLen is the length of the snapshot magic number in bytes.
	magicLen = 8
	// MinFormatMajorVersion is the minimum major version of the
	// snapshot format that this package can read.
	MinFormatMajorVersion = 0x01
	// MaxFormatMajorVersion is the maximum major version of the
	// snapshot format that this package can read.
	MaxFormatMajorVersion = 0x01
	// indexMaxLen is an artificial limit on the size of the index
	// table this package will read. It prevents corrupted or malicious
	// snapshots from causing huge and pointless memory allocations.
	indexMaxLen = 1 << 30
)

// magic contains the snapshot magic number.
//
// The fourth byte is the major version of the format written by this
// package, and the last byte is the patch version.
var magic = [magicLen]byte{0x6b, 0x64, 0x74, 0x01, 0x6b, 0x64, 0x74, 0x00}

// FormatVersion is a version of the snapshot format.
type FormatVersion struct {
	// Major is the major version of the snapshot format.
	Major uint8
	// Patch is the patch version of the snapshot format.
	Patch uint8
}

// Magic reads the snapshot magic number from a stream and if it is
// valid, returns the format version. It does not read beyond the magic
// number.
//
// Calling this function will result in 8 bytes being read from the
// stream reader (unless there were fewer than 8 bytes available, in
// which all available bytes in the stream are consumed).
func Magic(r io.Reader) (FormatVersion, error) {
	m := make([]byte, magicLen)
	_, err := io.ReadFull(r, m)
	if err != nil {
		return FormatVersion{}, wrapErr("failed to read magic number", err)
	}
	if m[0] == magic[0] &&
		m[1] == magic[1] &&
		m[2] == magic[2] &&
		m[4] == magic[4] &&
		m[5] == magic[5] &&
		m[6] == magic[6] {
		return FormatVersion{m[3], m[7]}, nil
	}
	return FormatVersion{}, textErr("invalid magic number")
}
