// Copyright 2014-2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bz2

import (
	"fmt"
	"io"

	"github.com/ulikunitz/bz2/bitstream"
	"github.com/ulikunitz/bz2/xlog"
)

// streamDecoder decodes the blocks of a single bzip2 stream held in
// memory. It owns all transient decoding state.
type streamDecoder struct {
	h        header
	checkCRC bool
	blocks   blockDecoder
	// combined checksum of the block CRCs stored in the stream
	streamCRC uint32

	// set by nextBlock at the end of stream; storedCRC is zero if the
	// trailer is truncated
	endOffset int64
	storedCRC uint32
}

// newStreamDecoder checks the stream header of bz and positions the
// decoder at bit offset. For offset 0 the decoder is positioned directly
// after the header.
func newStreamDecoder(bz []byte, offset int64, checkCRC bool,
) (d *streamDecoder, err error) {
	d = &streamDecoder{checkCRC: checkCRC}
	if err = d.h.UnmarshalBinary(bz); err != nil {
		return nil, err
	}
	if offset == 0 {
		offset = 8 * headerLen
	}
	if offset < 8*headerLen {
		return nil, fmt.Errorf("bz2: bit offset %d inside header",
			offset)
	}
	br, err := bitstream.NewReader(bz, offset)
	if err != nil {
		return nil, err
	}
	d.blocks = blockDecoder{br: br, blockSize: d.h.blockSize()}
	return d, nil
}

// blockInfo describes a decoded block.
type blockInfo struct {
	offset int64
	crc    uint32
	size   int
}

// nextBlock decodes the next block and appends its output to s. At the end
// of the stream io.EOF is returned.
func (d *streamDecoder) nextBlock(s sink) (info blockInfo, err error) {
	br := d.blocks.br
	offset := br.Offset()
	magic, err := br.Magic()
	if err != nil {
		return info, err
	}
	switch magic {
	case bitstream.EndMagic:
		d.endOffset = offset
		xlog.Printf(debug, "end of stream at bit %d", offset)
		// A stream cut inside the checksum trailer is complete unless
		// the checksum must be verified.
		crc, err := br.ReadBits(32)
		switch {
		case err == nil:
			d.storedCRC = crc
		case d.checkCRC:
			return info, err
		default:
			xlog.Printf(debug, "stream checksum missing")
		}
		if d.checkCRC && d.storedCRC != d.streamCRC {
			return info, formatError("stream checksum mismatch")
		}
		return info, io.EOF
	case bitstream.BlockMagic:
		return d.readBlock(offset, s)
	default:
		return info, formatError("malformed data")
	}
}

// readBlock decodes the block whose magic at the given offset has already
// been read.
func (d *streamDecoder) readBlock(offset int64, s sink) (info blockInfo,
	err error) {
	h, w, err := d.blocks.decodeBlock()
	if err != nil {
		return info, err
	}
	start := len(s.bytes())
	if err = expandRLE1(w, s); err != nil {
		return info, err
	}
	out := s.bytes()[start:]
	if d.checkCRC && updateCRC(0, out) != h.crc {
		return info, formatError("block checksum mismatch")
	}
	d.streamCRC = combineCRC(d.streamCRC, h.crc)
	return blockInfo{offset: offset, crc: h.crc, size: len(out)}, nil
}
