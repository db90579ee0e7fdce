// Copyright 2014-2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bz2

// headerMagic stores the magic bytes of the stream header. The byte 'h'
// selects Huffman coding, the only entropy coder of bzip2.
const headerMagic = "BZh"

// headerLen is the length of the stream header in bytes.
const headerLen = 4

// header describes the stream header.
type header struct {
	// block size level in the range [1,9]
	level int
}

// UnmarshalBinary decodes the stream header from the start of data.
func (h *header) UnmarshalBinary(data []byte) error {
	if len(data) < headerLen || string(data[:3]) != headerMagic {
		return formatError("invalid header magic")
	}
	c := data[3]
	if !('1' <= c && c <= '9') {
		return formatError("block size level out of range")
	}
	h.level = int(c - '0')
	return nil
}

// MarshalBinary encodes the stream header.
func (h header) MarshalBinary() (data []byte, err error) {
	if !(1 <= h.level && h.level <= 9) {
		return nil, formatError("block size level out of range")
	}
	return []byte{'B', 'Z', 'h', '0' + byte(h.level)}, nil
}

// blockSize returns the maximum number of symbols of a block after the
// initial run-length encoding.
func (h header) blockSize() int { return h.level * 100000 }
