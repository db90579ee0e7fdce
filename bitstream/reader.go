// Copyright 2014-2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitstream provides a bit reader for bzip2 data held in memory.
// Bits are read most-significant bit first. The reader knows its bit
// position relative to the start of the data, which allows single blocks to
// be located and decoded independently.
package bitstream

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/icza/bitio"
)

// ErrEndOfInput indicates that fewer bits are available than have been
// requested.
var ErrEndOfInput = errors.New("bitstream: end of input")

// Magic values delimiting blocks and the end of a bzip2 stream.
const (
	BlockMagic = 0x314159265359
	EndMagic   = 0x177245385090

	// MagicBits is the length of the magic values in bits.
	MagicBits = 48
)

// Reader reads bits from a byte slice. It doesn't own the byte slice.
type Reader struct {
	cr *bitio.CountReader
	// bit offset of cr relative to the start of the data
	base int64
	size int64
}

// NewReader creates a reader for data that is positioned at the given bit
// offset.
func NewReader(data []byte, offset int64) (*Reader, error) {
	size := int64(len(data)) * 8
	if !(0 <= offset && offset <= size) {
		return nil, fmt.Errorf("bitstream: offset %d out of range [0,%d]",
			offset, size)
	}
	r := &Reader{
		cr:   bitio.NewCountReader(bytes.NewReader(data[offset/8:])),
		base: offset &^ 7,
		size: size,
	}
	if k := uint8(offset & 7); k > 0 {
		if _, err := r.cr.ReadBits(k); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Offset returns the current bit position relative to the start of the
// data.
func (r *Reader) Offset() int64 {
	return r.base + r.cr.BitsCount
}

// Remaining returns the number of bits that can still be read.
func (r *Reader) Remaining() int64 {
	return r.size - r.Offset()
}

// ReadBits reads n bits and returns them in the low bits of the result. The
// value n must be in the range [0,32]. If fewer than n bits are available
// ErrEndOfInput is returned and the position is not changed.
func (r *Reader) ReadBits(n int) (uint32, error) {
	if !(0 <= n && n <= 32) {
		panic("bitstream: bit count out of range")
	}
	if n == 0 {
		return 0, nil
	}
	if int64(n) > r.Remaining() {
		return 0, ErrEndOfInput
	}
	u, err := r.cr.ReadBits(uint8(n))
	if err != nil {
		return 0, ErrEndOfInput
	}
	return uint32(u), nil
}

// ReadBit reads a single bit.
func (r *Reader) ReadBit() (bool, error) {
	if r.Remaining() < 1 {
		return false, ErrEndOfInput
	}
	b, err := r.cr.ReadBool()
	if err != nil {
		return false, ErrEndOfInput
	}
	return b, nil
}

// Magic consumes the next 48 bits. The caller compares the value with
// BlockMagic and EndMagic; any other value is returned unchanged.
func (r *Reader) Magic() (uint64, error) {
	if r.Remaining() < MagicBits {
		return 0, ErrEndOfInput
	}
	u, err := r.cr.ReadBits(MagicBits)
	if err != nil {
		return 0, ErrEndOfInput
	}
	return u, nil
}
