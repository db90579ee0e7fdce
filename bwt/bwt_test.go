// Copyright 2014-2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bwt

import (
	"bytes"
	"errors"
	"math/rand"
	"sort"
	"testing"
)

// forward computes the transform by sorting all rotations of s.
func forward(s []byte) (l []byte, ptr int) {
	n := len(s)
	rot := make([]int, n)
	for i := range rot {
		rot[i] = i
	}
	less := func(a, b int) bool {
		for k := 0; k < n; k++ {
			x, y := s[(a+k)%n], s[(b+k)%n]
			if x != y {
				return x < y
			}
		}
		return false
	}
	sort.SliceStable(rot, func(i, j int) bool {
		return less(rot[i], rot[j])
	})
	l = make([]byte, n)
	for i, r := range rot {
		l[i] = s[(r+n-1)%n]
		if r == 0 {
			ptr = i
		}
	}
	return l, ptr
}

func TestForward(t *testing.T) {
	l, ptr := forward([]byte("banana"))
	if string(l) != "nnbaaa" || ptr != 3 {
		t.Fatalf("forward(banana) returned %q, %d; want %q, %d",
			l, ptr, "nnbaaa", 3)
	}
}

func TestInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	tests := [][]byte{
		[]byte("x"),
		[]byte("banana"),
		[]byte("abababab"),
		[]byte("aaaaaaaaaa"),
		[]byte("This is a test\n"),
	}
	for _, n := range []int{17, 256, 1000} {
		p := make([]byte, n)
		for i := range p {
			p[i] = byte(rng.Intn(4))
		}
		tests = append(tests, p)
		q := make([]byte, n)
		rng.Read(q)
		tests = append(tests, q)
	}
	for _, s := range tests {
		l, ptr := forward(s)
		got, err := Inverse(l, ptr)
		if err != nil {
			t.Fatalf("Inverse error %s", err)
		}
		if !bytes.Equal(got, s) {
			t.Fatalf("Inverse returned %q; want %q", got, s)
		}
	}
}

// TestWalkerVisitsAll checks that the chain is a single cycle through all
// positions.
func TestWalkerVisitsAll(t *testing.T) {
	s := []byte("the quick brown fox jumps over the lazy dog")
	l, ptr := forward(s)
	tt := make([]uint32, len(l))
	var counts [256]int
	for i, b := range l {
		tt[i] = uint32(b)
		counts[b]++
	}
	w, err := NewWalker(tt, &counts, ptr)
	if err != nil {
		t.Fatalf("NewWalker error %s", err)
	}
	seen := make([]bool, len(tt))
	for w.Len() > 0 {
		pos := w.pos
		if seen[pos] {
			t.Fatalf("position %d visited twice", pos)
		}
		seen[pos] = true
		if _, ok := w.Next(); !ok {
			t.Fatalf("Next returned !ok with Len() %d", w.Len())
		}
	}
	for i, v := range seen {
		if !v {
			t.Fatalf("position %d not visited", i)
		}
	}
	if _, ok := w.Next(); ok {
		t.Fatalf("Next returned ok after the last byte")
	}
}

func TestNewWalkerErrors(t *testing.T) {
	l, _ := forward([]byte("banana"))
	for _, ptr := range []int{-1, len(l)} {
		if _, err := Inverse(l, ptr); !errors.Is(err, ErrPointer) {
			t.Errorf("Inverse(l, %d) error %v; want %v",
				ptr, err, ErrPointer)
		}
	}
	if _, err := Inverse(nil, 0); !errors.Is(err, ErrPointer) {
		t.Errorf("Inverse(nil, 0) error %v; want %v", err, ErrPointer)
	}
	tests := []struct {
		name   string
		counts [256]int
	}{
		{"short", [256]int{'a': 1}},
		{"misplaced", [256]int{'a': 2}},
	}
	for _, tc := range tests {
		tt := []uint32{'a', 'b'}
		counts := tc.counts
		_, err := NewWalker(tt, &counts, 0)
		if !errors.Is(err, ErrCounts) {
			t.Errorf("%s: NewWalker error %v; want %v",
				tc.name, err, ErrCounts)
		}
	}
}
