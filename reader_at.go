// Copyright 2014-2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bz2

import (
	"errors"
	"io"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ReaderAtConfig defines the parameters for the bz2 ReaderAt.
type ReaderAtConfig struct {
	// CacheBlocks is the number of decoded blocks kept in memory. The
	// value 0 selects the default of 4 blocks.
	CacheBlocks int

	// CheckCRC requests the verification of the checksums.
	CheckCRC bool
}

// Verify checks the reader config for validity. Zero values will be
// replaced by default values.
func (c *ReaderAtConfig) Verify() error {
	if c == nil {
		return errors.New("bz2: ReaderAt parameters are nil")
	}
	if c.CacheBlocks == 0 {
		c.CacheBlocks = 4
	}
	if c.CacheBlocks < 0 {
		return errors.New("bz2: CacheBlocks must be positive")
	}
	return nil
}

// ReaderAt supports random access to the decompressed data of a bzip2
// stream. It is safe for concurrent use.
type ReaderAt struct {
	conf  ReaderAtConfig
	bz    []byte
	info  *StreamInfo
	cache *lru.Cache[int, []byte]
}

// NewReaderAt creates a ReaderAt for the bzip2 stream bz using the default
// parameters. The stream is decoded once to build the block index.
func NewReaderAt(bz []byte) (*ReaderAt, error) {
	return ReaderAtConfig{}.NewReaderAt(bz)
}

// NewReaderAt creates a ReaderAt for the bzip2 stream bz.
func (c ReaderAtConfig) NewReaderAt(bz []byte) (*ReaderAt, error) {
	if err := c.Verify(); err != nil {
		return nil, err
	}
	info, err := IndexConfig{CheckCRC: c.CheckCRC}.Index(bz)
	if err != nil {
		return nil, err
	}
	cache, err := lru.New[int, []byte](c.CacheBlocks)
	if err != nil {
		return nil, err
	}
	r := &ReaderAt{
		conf:  c,
		bz:    bz,
		info:  info,
		cache: cache,
	}
	return r, nil
}

// Size returns the size of the decompressed data.
func (r *ReaderAt) Size() int64 { return r.info.Size }

// Info returns the description of the stream.
func (r *ReaderAt) Info() *StreamInfo { return r.info }

// block returns the decompressed data of block i.
func (r *ReaderAt) block(i int) ([]byte, error) {
	if data, ok := r.cache.Get(i); ok {
		return data, nil
	}
	b := r.info.Blocks[i]
	c := DecoderConfig{Size: b.Size, CheckCRC: r.conf.CheckCRC}
	data, err := c.DecodeBlock(r.bz, b.Offset)
	if err != nil {
		return nil, err
	}
	r.cache.Add(i, data)
	return data, nil
}

// ReadAt reads decompressed data starting at offset off. It implements the
// io.ReaderAt interface.
func (r *ReaderAt) ReadAt(p []byte, off int64) (n int, err error) {
	if off < 0 {
		return 0, errors.New("bz2: negative offset")
	}
	blocks := r.info.Blocks
	i := sort.Search(len(blocks), func(i int) bool {
		b := blocks[i]
		return b.UncompressedOffset+b.Size > off
	})
	for n < len(p) && i < len(blocks) {
		data, err := r.block(i)
		if err != nil {
			return n, err
		}
		k := off + int64(n) - blocks[i].UncompressedOffset
		n += copy(p[n:], data[k:])
		i++
	}
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}
