// Copyright 2014-2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mtf implements the move-to-front list used by bzip2 for the
// selector indexes of the Huffman groups and for the block symbols.
package mtf

// List is a move-to-front list of at most 256 byte values. The zero value
// is an empty list.
type List struct {
	a [256]byte
	n int
}

// Init resets the list to the sequence 0, 1, ..., n-1.
func (l *List) Init(n int) {
	if !(0 <= n && n <= len(l.a)) {
		panic("mtf: list length out of range")
	}
	for i := 0; i < n; i++ {
		l.a[i] = byte(i)
	}
	l.n = n
}

// Len returns the length of the list.
func (l *List) Len() int { return l.n }

// Front returns the first value of the list.
func (l *List) Front() byte { return l.a[0] }

// Move moves the value at index i to the front of the list and returns
// it. The other values keep their relative order. The function panics if i
// is outside the list.
func (l *List) Move(i int) byte {
	if !(0 <= i && i < l.n) {
		panic("mtf: index out of range")
	}
	v := l.a[i]
	copy(l.a[1:i+1], l.a[:i])
	l.a[0] = v
	return v
}
