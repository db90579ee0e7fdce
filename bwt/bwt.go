// Copyright 2014-2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bwt implements the inverse Burrows-Wheeler transform as used by
// bzip2.
//
// The transform works in place on a slice of uint32 cells. Initially the low
// byte of every cell holds the last column of the sorted rotation matrix.
// A counting sort stores in the upper 24 bits of cell c[b]+k the position of
// the k-th occurrence of byte b. Following the chain of positions from the
// original pointer delivers the bytes of the original block in order.
package bwt

import "errors"

// MaxLen is the maximum block length supported by the packed cell format.
const MaxLen = 1 << 24

// Errors returned by the package.
var (
	ErrPointer = errors.New("bwt: original pointer out of range")
	ErrLen     = errors.New("bwt: block too long")
	ErrCounts  = errors.New("bwt: byte counts don't match block")
)

// Walker delivers the bytes of the original block.
type Walker struct {
	tt   []uint32
	pos  uint32
	left int
}

// NewWalker links the cells of tt and returns a walker starting at the
// original pointer ptr. The array counts must contain the number of
// occurrences of every byte value in the low bytes of tt; it is used as
// scratch space. The upper 24 bits of all cells must be zero. The content
// of tt is undefined if an error is returned.
func NewWalker(tt []uint32, counts *[256]int, ptr int) (*Walker, error) {
	if len(tt) > MaxLen {
		return nil, ErrLen
	}
	if !(0 <= ptr && ptr < len(tt)) {
		return nil, ErrPointer
	}
	sum := 0
	for b, n := range counts {
		counts[b] = sum
		sum += n
	}
	if sum != len(tt) {
		return nil, ErrCounts
	}
	for i := range tt {
		b := tt[i] & 0xff
		k := counts[b]
		if k >= len(tt) {
			return nil, ErrCounts
		}
		tt[k] |= uint32(i) << 8
		counts[b]++
	}
	return &Walker{tt: tt, pos: tt[ptr] >> 8, left: len(tt)}, nil
}

// Len returns the number of bytes that have not been delivered yet.
func (w *Walker) Len() int { return w.left }

// Next returns the next byte of the original block. The value ok is false
// after all bytes have been returned.
func (w *Walker) Next() (b byte, ok bool) {
	if w.left == 0 {
		return 0, false
	}
	w.left--
	c := w.tt[w.pos]
	w.pos = c >> 8
	return byte(c), true
}

// Inverse reverses the transform for the last column l and the original
// pointer ptr. The argument l is not modified.
func Inverse(l []byte, ptr int) ([]byte, error) {
	tt := make([]uint32, len(l))
	var counts [256]int
	for i, b := range l {
		tt[i] = uint32(b)
		counts[b]++
	}
	w, err := NewWalker(tt, &counts, ptr)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(l))
	for {
		b, ok := w.Next()
		if !ok {
			return out, nil
		}
		out = append(out, b)
	}
}
