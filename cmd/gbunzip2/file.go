// Copyright 2014-2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/kr/pretty"
	"github.com/spf13/afero"

	"github.com/ulikunitz/bz2"
	"github.com/ulikunitz/bz2/xio"
)

// suffixes maps file name suffixes to the suffixes of the decompressed
// files.
var suffixes = []struct{ from, to string }{
	{".bz2", ""},
	{".bz", ""},
	{".tbz2", ".tar"},
	{".tbz", ".tar"},
}

// targetName computes the name of the decompressed file.
func targetName(path string) (target string, err error) {
	if len(path) == 0 {
		return "", errors.New("empty file name not supported")
	}
	for _, s := range suffixes {
		if !strings.HasSuffix(path, s.from) {
			continue
		}
		base := filepath.Base(path)
		if base == s.from {
			return "", fmt.Errorf("file name %s has no base part",
				path)
		}
		return path[:len(path)-len(s.from)] + s.to, nil
	}
	return "", fmt.Errorf("file name %s has unknown suffix", path)
}

// tmpName returns the name of the temporary file used while
// decompressing.
func tmpName(target string) string { return target + ".decompress" }

// command processes a single file.
type command struct {
	fs     afero.Fs
	opts   *options
	stdin  io.Reader
	stdout io.Writer
}

// readInput reads the complete compressed file.
func (c *command) readInput(path string) (bz []byte, err error) {
	if path == "-" {
		return io.ReadAll(c.stdin)
	}
	fi, err := c.fs.Stat(path)
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", path)
	}
	return afero.ReadFile(c.fs, path)
}

// decompress decodes the stream or, if requested, a single block.
func (c *command) decompress(bz []byte) (data []byte, err error) {
	conf := bz2.DecoderConfig{Size: c.opts.size, CheckCRC: c.opts.crc}
	if c.opts.block > 0 {
		return conf.DecodeBlock(bz, c.opts.block)
	}
	return conf.Decode(bz)
}

// writeTable writes the block table of the stream.
func (c *command) writeTable(path string, bz []byte) error {
	info, err := bz2.IndexConfig{CheckCRC: c.opts.crc}.Index(bz)
	if err != nil {
		return err
	}
	if c.opts.verbose {
		_, err = pretty.Fprintf(c.stdout, "%s: %# v\n", path, info)
		return err
	}
	w := xio.NewWriteCloserStack(xio.NopCloser(c.stdout))
	w.PushBuffer(0)
	fmt.Fprintf(w, "%s: level %d, %d blocks, %d bytes\n", path,
		info.Level, len(info.Blocks), info.Size)
	fmt.Fprintf(w, "%12s %12s %10s %10s\n", "bit offset", "offset",
		"size", "crc")
	for _, b := range info.Blocks {
		fmt.Fprintf(w, "%12d %12d %10d 0x%08x\n", b.Offset,
			b.UncompressedOffset, b.Size, b.CRC)
	}
	fmt.Fprintf(w, "%12d %12d %10s 0x%08x\n", info.EndOffset, info.Size,
		"end", info.CRC)
	return w.Close()
}

// writeStack writes data to the stack and closes it. The errors of the
// write and of closing the stack are joined.
func writeStack(stack *xio.WriteCloserStack, data []byte) error {
	_, err := stack.Write(data)
	return errors.Join(err, stack.Close())
}

// writeOutput writes data through a stack of a buffered writer and the
// output file. The output file is written under a temporary name and
// renamed after all data has been written.
func (c *command) writeOutput(target string, data []byte) (err error) {
	if target == "-" {
		stack := xio.NewWriteCloserStack(xio.NopCloser(c.stdout))
		stack.PushBuffer(0)
		return writeStack(stack, data)
	}

	if _, err = c.fs.Stat(target); err == nil {
		if !c.opts.force {
			return &userPathError{Path: target,
				Err: errors.New("file exists")}
		}
	} else if !os.IsNotExist(err) {
		return err
	}
	tmp := tmpName(target)
	f, err := c.fs.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
	if err != nil {
		return err
	}
	quit := signalHandler(c.fs, tmp)
	defer close(quit)
	stack := xio.NewWriteCloserStack(f)
	stack.PushBuffer(0)
	if err = writeStack(stack, data); err != nil {
		c.fs.Remove(tmp)
		return err
	}
	if c.opts.force {
		if err = c.fs.Remove(target); err != nil &&
			!os.IsNotExist(err) {
			c.fs.Remove(tmp)
			return err
		}
	}
	if err = c.fs.Rename(tmp, target); err != nil {
		c.fs.Remove(tmp)
		return err
	}
	return nil
}

// processFile decompresses a single file or prints its block table.
func (c *command) processFile(path string) error {
	target := "-"
	if !c.opts.stdout && !c.opts.table && path != "-" {
		var err error
		if target, err = targetName(path); err != nil {
			return err
		}
	}
	bz, err := c.readInput(path)
	if err != nil {
		return err
	}
	if c.opts.table {
		return c.writeTable(path, bz)
	}
	data, err := c.decompress(bz)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err = c.writeOutput(target, data); err != nil {
		return err
	}
	if target != "-" && !c.opts.keep {
		return c.fs.Remove(path)
	}
	return nil
}

// signalHandler removes the temporary file if the program is interrupted.
// The returned quit channel must be closed to terminate the handler.
func signalHandler(fsys afero.Fs, tmp string) chan<- struct{} {
	quit := make(chan struct{})
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt)
	go func() {
		select {
		case <-quit:
			signal.Stop(sigch)
		case <-sigch:
			fsys.Remove(tmp)
			os.Exit(7)
		}
	}()
	return quit
}

// userPathError represents a path error presentable to a user. In
// difference to os.PathError it doesn't contain the operation.
type userPathError struct {
	Path string
	Err  error
}

func (e *userPathError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

// userError removes the operation information from path errors.
func userError(err error) error {
	var pe *os.PathError
	if !errors.As(err, &pe) {
		return err
	}
	return &userPathError{Path: pe.Path, Err: pe.Err}
}
