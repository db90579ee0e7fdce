// Copyright 2014-2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bz2

import (
	"os"
	"path/filepath"
	"testing"
)

const testdir = "testdata"

func readFile(t testing.TB, name string) []byte {
	t.Helper()
	path := filepath.Join(testdir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("os.ReadFile(%q) error %s", path, err)
	}
	return data
}

// setBits returns a copy of p with the n bits at bit offset off replaced by
// the low n bits of v.
func setBits(p []byte, off int64, n int, v uint64) []byte {
	q := make([]byte, len(p))
	copy(q, p)
	for i := 0; i < n; i++ {
		k := off + int64(i)
		mask := byte(0x80) >> uint(k%8)
		if v>>uint(n-1-i)&1 != 0 {
			q[k/8] |= mask
		} else {
			q[k/8] &^= mask
		}
	}
	return q
}

// bitWriter builds bzip2 streams bit by bit.
type bitWriter struct {
	p []byte
	n int
}

func (w *bitWriter) writeBits(v uint64, n int) {
	for i := n - 1; i >= 0; i-- {
		if w.n%8 == 0 {
			w.p = append(w.p, 0)
		}
		if v>>uint(i)&1 != 0 {
			w.p[w.n/8] |= 0x80 >> uint(w.n%8)
		}
		w.n++
	}
}

// writeString writes a string of '0' and '1' characters.
func (w *bitWriter) writeString(s string) {
	for _, c := range s {
		switch c {
		case '0':
			w.writeBits(0, 1)
		case '1':
			w.writeBits(1, 1)
		}
	}
}

func newStreamWriter(t testing.TB, level int) *bitWriter {
	t.Helper()
	hdr, err := header{level: level}.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary error %s", err)
	}
	w := new(bitWriter)
	for _, c := range hdr {
		w.writeBits(uint64(c), 8)
	}
	return w
}

func (w *bitWriter) writeBlockHeader(crc uint32, randomized bool, ptr int) {
	w.writeBits(0x314159265359, 48)
	w.writeBits(uint64(crc), 32)
	if randomized {
		w.writeBits(1, 1)
	} else {
		w.writeBits(0, 1)
	}
	w.writeBits(uint64(ptr), 24)
}

func (w *bitWriter) writeEnd(crc uint32) {
	w.writeBits(0x177245385090, 48)
	w.writeBits(uint64(crc), 32)
}
