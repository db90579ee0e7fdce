// Copyright 2014-2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package xlog provides a Logger interface and supporting functions to control
debug output of the bz2 packages.

The standard log package can't be switched off and calling its methods on a
nil pointer panics. The functions of this package accept a nil Logger and
do nothing then; in particular the arguments are not formatted. The
*log.Logger type implements the Logger interface.
*/
package xlog

import (
	"fmt"
	"io"
	"log"
)

// Logger is the interface required from loggers. It is supported by the
// log.Logger type.
type Logger interface {
	Output(calldepth int, s string) error
}

// New returns a logger writing to w without prefix and flags. If w is nil,
// the nil Logger is returned.
func New(w io.Writer) Logger {
	if w == nil {
		return nil
	}
	return log.New(w, "", 0)
}

// Printf prints the arguments using the format string. If the logger is nil
// nothing will be printed.
func Printf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Println prints the arguments and adds a newline. If the logger is nil
// nothing will be printed.
func Println(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintln(v...))
	}
}
