// Copyright 2014-2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xio provides tools to handle I/O operations. It contains the
// [WriteCloserStack] type layering writers, for instance a write buffer
// over an output file, as a single [io.WriteCloser].
package xio

import (
	"bufio"
	"errors"
	"io"
)

// ErrEmptyStack is returned by writes to a stack without writers.
var ErrEmptyStack = errors.New("xio: write to empty stack")

// WriteCloserStack is a stack of writers. Each writer pushed is expected to
// write into the writer below it. Data is written to the top; Close closes
// the stack from the top to the bottom, so buffers are flushed before the
// file below is closed.
type WriteCloserStack struct {
	stack []io.WriteCloser
}

// NewWriteCloserStack creates a stack with the given bottom writer. A nil
// bottom creates an empty stack.
func NewWriteCloserStack(bottom io.WriteCloser) *WriteCloserStack {
	s := new(WriteCloserStack)
	if bottom != nil {
		s.Push(bottom)
	}
	return s
}

// Len returns the number of writers on the stack.
func (s *WriteCloserStack) Len() int { return len(s.stack) }

// top returns the top writer or nil for an empty stack.
func (s *WriteCloserStack) top() io.WriteCloser {
	if len(s.stack) == 0 {
		return nil
	}
	return s.stack[len(s.stack)-1]
}

// Push puts wc on top of the stack. It panics if wc is nil.
func (s *WriteCloserStack) Push(wc io.WriteCloser) {
	if wc == nil {
		panic("xio: cannot push nil WriteCloser onto stack")
	}
	s.stack = append(s.stack, wc)
}

// PushBuffer puts a buffered writer of the given size on top of the stack.
// The buffer writes into the previous top and is flushed by Close. A size
// less or equal zero selects the default size of the bufio package. It
// panics on an empty stack.
func (s *WriteCloserStack) PushBuffer(size int) {
	w := s.top()
	if w == nil {
		panic("xio: no writer for the buffer")
	}
	if size <= 0 {
		s.Push(bufferedWriter{bufio.NewWriter(w)})
		return
	}
	s.Push(bufferedWriter{bufio.NewWriterSize(w, size)})
}

// Write writes p to the top of the stack.
func (s *WriteCloserStack) Write(p []byte) (n int, err error) {
	w := s.top()
	if w == nil {
		return 0, ErrEmptyStack
	}
	return w.Write(p)
}

// Close closes every writer on the stack, even if a writer above fails,
// and returns all errors joined. The stack is empty afterwards.
func (s *WriteCloserStack) Close() error {
	errs := make([]error, 0, len(s.stack))
	for len(s.stack) > 0 {
		k := len(s.stack) - 1
		errs = append(errs, s.stack[k].Close())
		s.stack[k] = nil
		s.stack = s.stack[:k]
	}
	return errors.Join(errs...)
}

// bufferedWriter flushes its buffer on Close without closing the
// underlying writer.
type bufferedWriter struct {
	*bufio.Writer
}

func (bw bufferedWriter) Close() error { return bw.Flush() }

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// NopCloser returns a WriteCloser with a Close method doing nothing. It
// allows writers that must stay open, like standard output, to be used as
// the bottom of a stack.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}
