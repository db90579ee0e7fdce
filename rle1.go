// Copyright 2014-2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bz2

import "github.com/ulikunitz/bz2/bwt"

// sink receives the decoded output.
type sink interface {
	// writeRun appends n copies of byte c.
	writeRun(c byte, n int) error
	// bytes returns all output written so far.
	bytes() []byte
}

// growSink collects the output in a growing slice.
type growSink struct {
	p []byte
}

func (s *growSink) writeRun(c byte, n int) error {
	for ; n > 0; n-- {
		s.p = append(s.p, c)
	}
	return nil
}

func (s *growSink) bytes() []byte { return s.p }

// reset empties the sink but keeps the allocated memory.
func (s *growSink) reset() { s.p = s.p[:0] }

// maxPrealloc limits the memory allocated in advance for a fixed sink.
const maxPrealloc = 1 << 20

// fixedSink collects output up to a fixed size. Writing beyond the size is
// a format error. Memory is allocated while the output grows, so a size
// that is far too large costs nothing.
type fixedSink struct {
	p    []byte
	size int
}

func newFixedSink(size int) *fixedSink {
	return &fixedSink{
		p:    make([]byte, 0, min(size, maxPrealloc)),
		size: size,
	}
}

func (s *fixedSink) writeRun(c byte, n int) error {
	if n > s.size-len(s.p) {
		return formatError("decoded data exceeds expected size")
	}
	for ; n > 0; n-- {
		s.p = append(s.p, c)
	}
	return nil
}

func (s *fixedSink) bytes() []byte { return s.p }

// expandRLE1 reverses the initial run-length encoding while walking the
// block. After four equal bytes the next byte is the number of additional
// copies of that byte.
func expandRLE1(w *bwt.Walker, s sink) error {
	last, run := -1, 0
	for {
		c, ok := w.Next()
		if !ok {
			return nil
		}
		if run == 3 {
			if err := s.writeRun(byte(last), int(c)); err != nil {
				return err
			}
			last, run = -1, 0
			continue
		}
		if int(c) == last {
			run++
		} else {
			last, run = int(c), 0
		}
		if err := s.writeRun(c, 1); err != nil {
			return err
		}
	}
}
