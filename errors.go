// Copyright 2014-2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bz2

import (
	"errors"

	"github.com/ulikunitz/bz2/bitstream"
)

// ErrEndOfInput indicates that the bzip2 data ended before the end of the
// stream has been reached.
var ErrEndOfInput = bitstream.ErrEndOfInput

// FormatError reports bzip2 data that is structurally invalid. Err stores
// the error of a sub package, if the problem has been detected there.
type FormatError struct {
	Reason string
	Err    error
}

// Error returns the reason with the prefix "bz2: ".
func (e *FormatError) Error() string {
	return "bz2: " + e.Reason
}

// Unwrap returns the underlying error.
func (e *FormatError) Unwrap() error { return e.Err }

// formatError creates a new format error with the given reason.
func formatError(reason string) error {
	return &FormatError{Reason: reason}
}

// wrapError converts errors of the sub packages into format errors.
// ErrEndOfInput and format errors are returned unchanged.
func wrapError(err error) error {
	if err == nil || errors.Is(err, ErrEndOfInput) {
		return err
	}
	var ferr *FormatError
	if errors.As(err, &ferr) {
		return err
	}
	return &FormatError{Reason: err.Error(), Err: err}
}
