// Copyright 2014-2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bz2

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func FuzzDecode(f *testing.F) {
	for _, name := range fixtures {
		bz, err := os.ReadFile(filepath.Join(testdir, name+".bz2"))
		if err != nil {
			f.Fatalf("os.ReadFile error %s", err)
		}
		f.Add(bz)
	}
	f.Add([]byte("BZh1"))
	f.Fuzz(func(t *testing.T, bz []byte) {
		data, err := Decode(bz)
		if err != nil {
			return
		}
		sized, err := DecodeSize(bz, int64(len(data)))
		if err != nil {
			t.Fatalf("DecodeSize error %s", err)
		}
		if !bytes.Equal(data, sized) {
			t.Fatalf("DecodeSize and Decode results differ")
		}
		info, err := Index(bz)
		if err != nil {
			t.Fatalf("Index error %s", err)
		}
		if info.Size != int64(len(data)) {
			t.Fatalf("info.Size %d; want %d", info.Size, len(data))
		}
	})
}
