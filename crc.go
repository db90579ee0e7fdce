// Copyright 2014-2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bz2

import (
	"hash/crc32"
	"math/bits"
)

// updateCRC adds the bytes of p to the bzip2 block checksum crc. The
// checksum uses the CRC-32 polynomial with the most-significant bit first.
// The IEEE implementation of the standard library computes the bit-reversed
// checksum, so input bytes and checksum are reversed.
func updateCRC(crc uint32, p []byte) uint32 {
	crc = bits.Reverse32(crc)
	var buf [4096]byte
	for len(p) > 0 {
		n := copy(buf[:], p)
		p = p[n:]
		for i, b := range buf[:n] {
			buf[i] = bits.Reverse8(b)
		}
		crc = crc32.Update(crc, crc32.IEEETable, buf[:n])
	}
	return bits.Reverse32(crc)
}

// combineCRC adds the checksum of a block to the stream checksum.
func combineCRC(streamCRC, blockCRC uint32) uint32 {
	return bits.RotateLeft32(streamCRC, 1) ^ blockCRC
}
