// Copyright 2014-2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gbunzip2 decompresses bzip2 files. It can print the block table
// of a file and decode single blocks given their bit offset.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/ogier/pflag"
	"github.com/spf13/afero"

	"github.com/ulikunitz/bz2"
)

const usageStr = `Usage: gbunzip2 [OPTION]... [FILE]...
Decompress FILEs in the .bz2 format (by default, decompress FILES in
place).

  -c, --stdout       write to standard output and don't delete input files
  -f, --force        force overwrite of output file
  -h, --help         give this help
  -k, --keep         keep (don't delete) input files
  -t, --table        print the block table instead of decompressing
  -v, --verbose      print the complete index with --table
  -b, --block=BIT    decompress only the block at bit offset BIT
  -s, --size=N       expected size of the decompressed data
      --crc          verify block and stream checksums
      --debug        print debug information of the decoder

With no file, or when FILE is -, read standard input.
`

// options contains the command line options.
type options struct {
	stdout  bool
	keep    bool
	force   bool
	table   bool
	verbose bool
	crc     bool
	block   int64
	size    int64
}

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

// run executes the command with the given arguments and returns the exit
// status.
func run(cmdName string, args []string, fsys afero.Fs, stdin io.Reader,
	stdout, stderr io.Writer) int {
	logger := log.New(stderr, cmdName+": ", 0)

	flags := pflag.NewFlagSet(cmdName, pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.SetInterspersed(true)
	var (
		help  = flags.BoolP("help", "h", false, "")
		debug = flags.Bool("debug", false, "")
		opts  options
	)
	flags.BoolVarP(&opts.stdout, "stdout", "c", false, "")
	flags.BoolVarP(&opts.keep, "keep", "k", false, "")
	flags.BoolVarP(&opts.force, "force", "f", false, "")
	flags.BoolVarP(&opts.table, "table", "t", false, "")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "")
	flags.BoolVar(&opts.crc, "crc", false, "")
	flags.Int64VarP(&opts.block, "block", "b", -1, "")
	flags.Int64VarP(&opts.size, "size", "s", -1, "")
	if err := flags.Parse(args); err != nil {
		logger.Print(err)
		usage(stderr)
		return 1
	}
	if *help {
		usage(stdout)
		return 0
	}
	if *debug {
		bz2.SetLogger(logger)
		defer bz2.SetLogger(nil)
	}
	if opts.block == 0 || opts.block < -1 {
		logger.Printf("invalid block offset %d", opts.block)
		return 1
	}

	paths := flags.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	status := 0
	for _, path := range paths {
		c := &command{
			fs:     fsys,
			opts:   &opts,
			stdin:  stdin,
			stdout: stdout,
		}
		if err := c.processFile(path); err != nil {
			logger.Print(userError(err))
			status = 1
		}
	}
	return status
}

func main() {
	cmdName := filepath.Base(os.Args[0])
	os.Exit(run(cmdName, os.Args[1:], afero.NewOsFs(), os.Stdin,
		os.Stdout, os.Stderr))
}
