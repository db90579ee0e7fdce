// Copyright 2014-2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package huffman builds the canonical Huffman decoding tables of bzip2 and
// decodes prefix codes with them. A table is described by the code length
// of every symbol; no explicit tree is built. Decoding uses the per-length
// limit and base arrays and a permutation from code rank to symbol.
package huffman

import "errors"

// Limits of the bzip2 format.
const (
	// MaxCodeLen is the maximum length of a code in bits.
	MaxCodeLen = 20
	// MaxSymbols is the maximum size of the alphabet. Rank 0 of the
	// move-to-front list is only coded by the two run symbols, so 256
	// byte values need 255 rank symbols, two run symbols and the
	// end-of-block symbol.
	MaxSymbols = 258
)

// Errors returned by the package.
var (
	ErrCodeLen = errors.New("huffman: code length out of range")
	ErrSymbols = errors.New("huffman: invalid number of symbols")
	ErrCode    = errors.New("huffman: invalid code")
)

// BitReader is the interface required for decoding. Bits must be delivered
// most-significant bit first.
type BitReader interface {
	ReadBits(n int) (uint32, error)
}

// Table is a canonical Huffman decoding table. It is immutable after
// construction and may be shared.
type Table struct {
	minLen int
	maxLen int
	n      int
	// limit[l+1] is the largest code value of length l
	limit [MaxCodeLen + 2]int32
	// base[l+1] converts a code value of length l into an index of
	// permute
	base    [MaxCodeLen + 2]int32
	permute [MaxSymbols]uint16
}

// NewTable creates the table for the given code lengths. The value
// lengths[s] is the length of the code for symbol s.
func NewTable(lengths []uint8) (*Table, error) {
	if !(0 < len(lengths) && len(lengths) <= MaxSymbols) {
		return nil, ErrSymbols
	}
	t := &Table{minLen: MaxCodeLen, maxLen: 1, n: len(lengths)}
	var count [MaxCodeLen + 1]int32
	for _, l := range lengths {
		if !(1 <= l && l <= MaxCodeLen) {
			return nil, ErrCodeLen
		}
		count[l]++
		if int(l) < t.minLen {
			t.minLen = int(l)
		}
		if int(l) > t.maxLen {
			t.maxLen = int(l)
		}
	}

	// Symbols are ordered by code length; symbols with the same length
	// keep their index order.
	k := 0
	for l := t.minLen; l <= t.maxLen; l++ {
		for s, sl := range lengths {
			if int(sl) == l {
				t.permute[k] = uint16(s)
				k++
			}
		}
	}

	var pp, cum int32
	for l := t.minLen; l < t.maxLen; l++ {
		pp += count[l]
		t.limit[l+1] = pp - 1
		pp <<= 1
		cum += count[l]
		t.base[l+2] = pp - cum
	}
	t.limit[t.maxLen+1] = pp + count[t.maxLen] - 1
	t.base[t.minLen+1] = 0
	return t, nil
}

// MinLen returns the length of the shortest code.
func (t *Table) MinLen() int { return t.minLen }

// MaxLen returns the length of the longest code.
func (t *Table) MaxLen() int { return t.maxLen }

// Decode reads a single prefix code and returns its symbol. ErrCode is
// returned if the bits read are not a valid code of the table. Errors of
// the bit reader are passed through.
func (t *Table) Decode(r BitReader) (sym int, err error) {
	n := t.minLen
	u, err := r.ReadBits(n)
	if err != nil {
		return 0, err
	}
	v := int32(u)
	for v > t.limit[n+1] {
		n++
		if n > t.maxLen {
			return 0, ErrCode
		}
		if u, err = r.ReadBits(1); err != nil {
			return 0, err
		}
		v = v<<1 | int32(u)
	}
	v -= t.base[n+1]
	if !(0 <= v && int(v) < t.n) {
		return 0, ErrCode
	}
	return int(t.permute[v]), nil
}
