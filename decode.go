// Copyright 2014-2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bz2

import (
	"errors"
	"io"

	"github.com/ulikunitz/bz2/bitstream"
)

// DecoderConfig defines the parameters for decoding bzip2 data.
type DecoderConfig struct {
	// Size is the expected size of the decoded data. The output must
	// have exactly this size. A negative value means that the size is
	// unknown.
	Size int64

	// CheckCRC requests the verification of the block and stream
	// checksums. They are ignored by default.
	CheckCRC bool
}

// DecoderDefaults provides the default parameters: the size is unknown and
// checksums are not checked.
var DecoderDefaults = DecoderConfig{Size: -1}

// Verify checks the configuration for errors.
func (c *DecoderConfig) Verify() error {
	if c == nil {
		return errors.New("bz2: decoder parameters are nil")
	}
	if int64(int(c.Size)) != c.Size {
		return errors.New("bz2: size too large")
	}
	return nil
}

// newSink returns the sink for the configured size.
func (c *DecoderConfig) newSink() sink {
	if c.Size < 0 {
		return new(growSink)
	}
	return newFixedSink(int(c.Size))
}

// checkSize compares the length of the output with the expected size.
func (c *DecoderConfig) checkSize(out []byte) error {
	if c.Size >= 0 && int64(len(out)) != c.Size {
		return formatError("decoded size doesn't match expected size")
	}
	return nil
}

// Decode decompresses the complete bzip2 stream bz.
func Decode(bz []byte) ([]byte, error) {
	return DecoderDefaults.Decode(bz)
}

// DecodeSize decompresses the bzip2 stream bz, whose decompressed size must
// be exactly size bytes.
func DecodeSize(bz []byte, size int64) ([]byte, error) {
	c := DecoderConfig{Size: size}
	return c.Decode(bz)
}

// Decode decompresses the complete bzip2 stream bz using the configuration.
// Data following the end of the stream is ignored.
func (c DecoderConfig) Decode(bz []byte) ([]byte, error) {
	if err := c.Verify(); err != nil {
		return nil, err
	}
	d, err := newStreamDecoder(bz, 0, c.CheckCRC)
	if err != nil {
		return nil, err
	}
	s := c.newSink()
	for {
		if _, err = d.nextBlock(s); err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
	}
	out := s.bytes()
	if err = c.checkSize(out); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeBlock decompresses the single block of the bzip2 stream bz whose
// block magic starts at the given bit offset. The block size level is read
// from the stream header at the start of bz. If size is not negative the
// decompressed block must have exactly size bytes. Since all state is
// local, blocks may be decoded concurrently.
func DecodeBlock(bz []byte, offset int64, size int64) ([]byte, error) {
	c := DecoderConfig{Size: size}
	return c.DecodeBlock(bz, offset)
}

// DecodeBlock decompresses the single block at the given bit offset using
// the configuration. The stream checksum is never checked.
func (c DecoderConfig) DecodeBlock(bz []byte, offset int64) ([]byte, error) {
	if err := c.Verify(); err != nil {
		return nil, err
	}
	if offset <= 0 {
		return nil, errors.New("bz2: block offset must be positive")
	}
	d, err := newStreamDecoder(bz, offset, c.CheckCRC)
	if err != nil {
		return nil, err
	}
	magic, err := d.blocks.br.Magic()
	if err != nil {
		return nil, err
	}
	if magic != bitstream.BlockMagic {
		return nil, formatError("no block magic at offset")
	}
	s := c.newSink()
	if _, err = d.readBlock(offset, s); err != nil {
		return nil, err
	}
	out := s.bytes()
	if err = c.checkSize(out); err != nil {
		return nil, err
	}
	return out, nil
}
