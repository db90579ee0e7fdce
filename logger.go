// Copyright 2014-2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bz2

import (
	"io"

	"github.com/ulikunitz/bz2/xlog"
)

// debug stores a reference to a logger. It may contain nil for no output.
var debug xlog.Logger

// SetLogger sets the logger for debug output of the package. A nil logger
// switches the output off. The function must not be called while data is
// decoded.
func SetLogger(l xlog.Logger) { debug = l }

// debugOn uses the log.Logger type to write information on the given writer.
// If w is nil no output will be written.
func debugOn(w io.Writer) { debug = xlog.New(w) }

// debugOff switches the debugging output off.
func debugOff() { debug = nil }
