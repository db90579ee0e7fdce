// Copyright 2014-2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bz2

import (
	"errors"
	"io"
)

// ReaderConfig defines the parameters for the bz2 Reader.
type ReaderConfig struct {
	// CheckCRC requests the verification of the checksums.
	CheckCRC bool
}

// Verify checks the reader parameters for validity.
func (c *ReaderConfig) Verify() error {
	if c == nil {
		return errors.New("bz2: reader parameters are nil")
	}
	return nil
}

// Reader decompresses a bzip2 stream. The compressed data is read completely
// into memory by NewReader; the decompressed data is produced block by
// block while reading.
type Reader struct {
	d   *streamDecoder
	out growSink
	buf []byte
	err error
}

// NewReader creates a new reader for the bzip2 stream provided by bz using
// the default parameters.
func NewReader(bz io.Reader) (*Reader, error) {
	return ReaderConfig{}.NewReader(bz)
}

// NewReader creates a new reader for the bzip2 stream provided by bz. The
// stream header is checked.
func (c ReaderConfig) NewReader(bz io.Reader) (*Reader, error) {
	if err := c.Verify(); err != nil {
		return nil, err
	}
	if bz == nil {
		return nil, errors.New("bz2: reader must be not nil")
	}
	data, err := io.ReadAll(bz)
	if err != nil {
		return nil, err
	}
	d, err := newStreamDecoder(data, 0, c.CheckCRC)
	if err != nil {
		return nil, err
	}
	return &Reader{d: d}, nil
}

// Read reads decompressed data. It returns io.EOF after the end of the
// stream has been reached.
func (r *Reader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if len(r.buf) == 0 {
			if r.err != nil {
				break
			}
			r.out.reset()
			if _, r.err = r.d.nextBlock(&r.out); r.err != nil {
				continue
			}
			r.buf = r.out.bytes()
		}
		k := copy(p[n:], r.buf)
		r.buf = r.buf[k:]
		n += k
	}
	if n > 0 {
		return n, nil
	}
	return 0, r.err
}
