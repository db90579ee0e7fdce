// Copyright 2014-2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bz2

import (
	"errors"
	"io"
)

// BlockInfo describes a single block of a bzip2 stream.
type BlockInfo struct {
	// Offset is the bit offset of the block magic from the start of the
	// stream. It can be used with DecodeBlock.
	Offset int64
	// CRC is the block checksum stored in the stream.
	CRC uint32
	// UncompressedOffset is the offset of the block data in the
	// decompressed stream.
	UncompressedOffset int64
	// Size is the length of the decompressed block.
	Size int64
}

// StreamInfo describes a bzip2 stream.
type StreamInfo struct {
	// Level is the block size level in the range [1,9].
	Level  int
	Blocks []BlockInfo
	// EndOffset is the bit offset of the end-of-stream magic.
	EndOffset int64
	// CRC is the stream checksum stored in the stream.
	CRC uint32
	// Size is the length of the decompressed stream.
	Size int64
}

// IndexConfig defines the parameters for indexing a bzip2 stream.
type IndexConfig struct {
	// CheckCRC requests the verification of all checksums.
	CheckCRC bool
}

// Verify checks the configuration for errors.
func (c *IndexConfig) Verify() error {
	if c == nil {
		return errors.New("bz2: index parameters are nil")
	}
	return nil
}

// Index decodes the bzip2 stream bz and returns the positions and sizes of
// all its blocks.
func Index(bz []byte) (*StreamInfo, error) {
	return IndexConfig{}.Index(bz)
}

// Index decodes the bzip2 stream bz using the configuration and returns the
// description of the stream. Only a single block is held in memory at any
// time.
func (c IndexConfig) Index(bz []byte) (*StreamInfo, error) {
	if err := c.Verify(); err != nil {
		return nil, err
	}
	d, err := newStreamDecoder(bz, 0, c.CheckCRC)
	if err != nil {
		return nil, err
	}
	info := &StreamInfo{Level: d.h.level}
	var s growSink
	for {
		s.reset()
		b, err := d.nextBlock(&s)
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		info.Blocks = append(info.Blocks, BlockInfo{
			Offset:             b.offset,
			CRC:                b.crc,
			UncompressedOffset: info.Size,
			Size:               int64(b.size),
		})
		info.Size += int64(b.size)
	}
	info.EndOffset = d.endOffset
	info.CRC = d.storedCRC
	return info, nil
}
