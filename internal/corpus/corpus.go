// Copyright 2014-2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package corpus provides test data for the bz2 packages: file corpora
// loaded from a file system, generated text and a bzip2 encoder.
package corpus

import (
	"bytes"
	"io/fs"
	"math/rand"

	dsbzip2 "github.com/dsnet/compress/bzip2"
)

// File is a file of a corpus.
type File struct {
	Name string
	Data []byte
}

// Files reads all regular files of the corpus.
func Files(corpus fs.FS) (files []File, err error) {
	err = fs.WalkDir(corpus, ".",
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			data, err := fs.ReadFile(corpus, path)
			if err != nil {
				return err
			}
			files = append(files, File{Name: path, Data: data})
			return nil
		})
	return files, err
}

// Size returns the total size of the files.
func Size(files []File) int64 {
	n := int64(0)
	for _, f := range files {
		n += int64(len(f.Data))
	}
	return n
}

// Compress compresses data with the bzip2 encoder of the
// github.com/dsnet/compress module. The level must be in the range [1,9].
func Compress(data []byte, level int) ([]byte, error) {
	buf := new(bytes.Buffer)
	w, err := dsbzip2.NewWriter(buf, &dsbzip2.WriterConfig{Level: level})
	if err != nil {
		return nil, err
	}
	if _, err = w.Write(data); err != nil {
		w.Close()
		return nil, err
	}
	if err = w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var words = []string{
	"the", "of", "and", "to", "in", "block", "stream", "bit", "table",
	"symbol", "run", "front", "move", "sort", "rotation", "pointer",
	"quick", "brown", "fox", "jumps", "over", "lazy", "dog", "data",
}

// Text returns n bytes of pseudo-random text generated from seed. The text
// consists of lines of words and contains occasional long runs of a single
// character.
func Text(seed int64, n int) []byte {
	rng := rand.New(rand.NewSource(seed))
	buf := make([]byte, 0, n+64)
	col := 0
	for len(buf) < n {
		switch {
		case rng.Intn(40) == 0:
			c := byte('a' + rng.Intn(26))
			for k := 4 + rng.Intn(600); k > 0; k-- {
				buf = append(buf, c)
			}
		case col > 60:
			buf = append(buf, '\n')
			col = 0
		default:
			w := words[rng.Intn(len(words))]
			buf = append(buf, w...)
			buf = append(buf, ' ')
			col += len(w) + 1
		}
	}
	return buf[:n]
}

// Binary returns n pseudo-random bytes generated from seed.
func Binary(seed int64, n int) []byte {
	rng := rand.New(rand.NewSource(seed))
	p := make([]byte, n)
	rng.Read(p)
	return p
}
