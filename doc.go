// Copyright 2014-2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bz2 decompresses bzip2 data held in memory.
//
// A bzip2 stream consists of a header, a sequence of blocks and an
// end-of-stream marker. Every block is decoded independently: the Huffman
// coded symbols are decoded into move-to-front ranks and runs, the
// Burrows-Wheeler transform is reversed and finally the initial run-length
// encoding is expanded.
//
// Decode and DecodeSize decompress a complete stream. Index reports the bit
// offsets of all blocks, which DecodeBlock accepts to decode single blocks
// independently. ReaderAt provides random access to the decompressed data
// on top of that.
//
// The checksums of blocks and streams are ignored unless CheckCRC is set.
// Randomized blocks, a deprecated feature of early bzip2 versions, are not
// supported. Compression is not supported.
package bz2
