// Copyright 2014-2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitstream

import (
	"errors"
	"os"
	"testing"
)

func TestReadBits(t *testing.T) {
	data := []byte{0xb5, 0x0f, 0xf0, 0x81}
	r, err := NewReader(data, 0)
	if err != nil {
		t.Fatalf("NewReader error %s", err)
	}
	tests := []struct {
		n    int
		want uint32
	}{
		{1, 1}, {2, 1}, {5, 0x15}, {0, 0}, {4, 0}, {8, 0xff}, {4, 0},
		{8, 0x81},
	}
	for _, tc := range tests {
		u, err := r.ReadBits(tc.n)
		if err != nil {
			t.Fatalf("ReadBits(%d) error %s", tc.n, err)
		}
		if u != tc.want {
			t.Fatalf("ReadBits(%d) returned %#x; want %#x",
				tc.n, u, tc.want)
		}
	}
	if r.Offset() != 32 {
		t.Fatalf("Offset() %d; want %d", r.Offset(), 32)
	}
	if _, err = r.ReadBits(1); !errors.Is(err, ErrEndOfInput) {
		t.Fatalf("ReadBits(1) at end returned error %v; want %v",
			err, ErrEndOfInput)
	}
}

func TestRead32(t *testing.T) {
	data := []byte{0xff, 0xde, 0xad, 0xbe, 0xef}
	r, err := NewReader(data, 8)
	if err != nil {
		t.Fatalf("NewReader error %s", err)
	}
	u, err := r.ReadBits(32)
	if err != nil {
		t.Fatalf("ReadBits(32) error %s", err)
	}
	if u != 0xdeadbeef {
		t.Fatalf("ReadBits(32) returned %#x; want %#x", u, 0xdeadbeef)
	}
}

func TestUnalignedOffset(t *testing.T) {
	data := []byte{0x0f, 0xf0}
	r, err := NewReader(data, 4)
	if err != nil {
		t.Fatalf("NewReader error %s", err)
	}
	u, err := r.ReadBits(8)
	if err != nil {
		t.Fatalf("ReadBits(8) error %s", err)
	}
	if u != 0xff {
		t.Fatalf("ReadBits(8) returned %#x; want %#x", u, 0xff)
	}
	if r.Remaining() != 4 {
		t.Fatalf("Remaining() %d; want %d", r.Remaining(), 4)
	}
	if _, err = r.ReadBits(5); !errors.Is(err, ErrEndOfInput) {
		t.Fatalf("ReadBits(5) error %v; want %v", err, ErrEndOfInput)
	}
	// a failed read doesn't move the position
	if u, err = r.ReadBits(4); err != nil || u != 0 {
		t.Fatalf("ReadBits(4) returned %#x, %v; want 0, nil", u, err)
	}
}

func TestOffsetOutOfRange(t *testing.T) {
	data := make([]byte, 2)
	for _, off := range []int64{-1, 17} {
		if _, err := NewReader(data, off); err == nil {
			t.Errorf("NewReader(data, %d) returned no error", off)
		}
	}
	r, err := NewReader(data, 16)
	if err != nil {
		t.Fatalf("NewReader(data, 16) error %s", err)
	}
	if _, err = r.ReadBit(); !errors.Is(err, ErrEndOfInput) {
		t.Fatalf("ReadBit() error %v; want %v", err, ErrEndOfInput)
	}
}

func TestMagic(t *testing.T) {
	const file = "../testdata/basic.txt.bz2"
	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("os.ReadFile(%q) error %s", file, err)
	}
	r, err := NewReader(data, 32)
	if err != nil {
		t.Fatalf("NewReader error %s", err)
	}
	m, err := r.Magic()
	if err != nil {
		t.Fatalf("Magic() error %s", err)
	}
	if m != BlockMagic {
		t.Fatalf("Magic() returned %#x; want %#x", m, BlockMagic)
	}
	// The end-of-stream marker of the basic file is at bit 354.
	if r, err = NewReader(data, 354); err != nil {
		t.Fatalf("NewReader error %s", err)
	}
	if m, err = r.Magic(); err != nil {
		t.Fatalf("Magic() error %s", err)
	}
	if m != EndMagic {
		t.Fatalf("Magic() returned %#x; want %#x", m, EndMagic)
	}
}
