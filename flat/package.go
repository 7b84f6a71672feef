// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package flat contains the FlatBuffers tables used to persist a kdtree
// index. The schema is kdtree.fbs in this directory.
//
// Accessors do not validate the underlying buffer. Reading a corrupt
// buffer may panic, so callers handling untrusted input should trap
// panics around any interaction with these types.
package flat
