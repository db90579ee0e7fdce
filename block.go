// Copyright 2014-2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bz2

import (
	"github.com/ulikunitz/bz2/bitstream"
	"github.com/ulikunitz/bz2/bwt"
	"github.com/ulikunitz/bz2/huffman"
	"github.com/ulikunitz/bz2/mtf"
	"github.com/ulikunitz/bz2/xlog"
)

// Constants of the block format.
const (
	// number of symbols coded with the same Huffman table
	groupSize = 50
	minGroups = 2
	maxGroups = 6
	runA      = 0
	runB      = 1
)

// blockHeader stores the fields following the block magic.
type blockHeader struct {
	crc     uint32
	origPtr int
}

// readBlockHeader reads the block header after the block magic.
func readBlockHeader(br *bitstream.Reader, blockSize int) (h blockHeader,
	err error) {
	if h.crc, err = br.ReadBits(32); err != nil {
		return h, err
	}
	randomized, err := br.ReadBit()
	if err != nil {
		return h, err
	}
	if randomized {
		return h, formatError("randomized blocks are not supported")
	}
	u, err := br.ReadBits(24)
	if err != nil {
		return h, err
	}
	h.origPtr = int(u)
	if h.origPtr >= blockSize {
		return h, formatError("original pointer out of range")
	}
	return h, nil
}

// blockDecoder decodes the Huffman, move-to-front and run-length coded
// symbols of a block. The decoded bytes are stored in the low bytes of tt
// and counted in counts.
type blockDecoder struct {
	br        *bitstream.Reader
	blockSize int

	symToByte [256]byte
	symTotal  int
	selectors []byte
	tables    []*huffman.Table

	tt     []uint32
	counts [256]int
}

// readSymbolMap reads the 16x16 bitmap of the byte values used in the
// block.
func (d *blockDecoder) readSymbolMap() error {
	ranges, err := d.br.ReadBits(16)
	if err != nil {
		return err
	}
	d.symTotal = 0
	for i := 0; i < 16; i++ {
		if ranges&(0x8000>>uint(i)) == 0 {
			continue
		}
		used, err := d.br.ReadBits(16)
		if err != nil {
			return err
		}
		for j := 0; j < 16; j++ {
			if used&(0x8000>>uint(j)) != 0 {
				d.symToByte[d.symTotal] = byte(16*i + j)
				d.symTotal++
			}
		}
	}
	if d.symTotal == 0 {
		return formatError("no symbols in block")
	}
	return nil
}

// readSelectors reads the number of Huffman groups and the selector
// sequence. The selectors are unary coded indexes into a move-to-front list
// of the groups.
func (d *blockDecoder) readSelectors() (groups int, err error) {
	u, err := d.br.ReadBits(3)
	if err != nil {
		return 0, err
	}
	groups = int(u)
	if !(minGroups <= groups && groups <= maxGroups) {
		return 0, formatError("number of Huffman groups out of range")
	}
	if u, err = d.br.ReadBits(15); err != nil {
		return 0, err
	}
	if u == 0 {
		return 0, formatError("no selectors")
	}
	d.selectors = make([]byte, u)
	var list mtf.List
	list.Init(groups)
	for i := range d.selectors {
		j := 0
		for {
			b, err := d.br.ReadBit()
			if err != nil {
				return 0, err
			}
			if !b {
				break
			}
			j++
			if j >= groups {
				return 0, formatError("selector out of range")
			}
		}
		d.selectors[i] = list.Move(j)
	}
	return groups, nil
}

// readTables reads the delta coded code lengths of every group and builds
// the Huffman tables. The alphabet consists of the two run symbols, the
// move-to-front ranks 1 to symTotal-1 and the end-of-block symbol.
func (d *blockDecoder) readTables(groups int) error {
	lengths := make([]uint8, d.symTotal+2)
	d.tables = make([]*huffman.Table, groups)
	for g := range d.tables {
		u, err := d.br.ReadBits(5)
		if err != nil {
			return err
		}
		l := int(u)
		for s := range lengths {
			for {
				if !(1 <= l && l <= huffman.MaxCodeLen) {
					return formatError(
						"code length out of range")
				}
				more, err := d.br.ReadBit()
				if err != nil {
					return err
				}
				if !more {
					break
				}
				dec, err := d.br.ReadBit()
				if err != nil {
					return err
				}
				if dec {
					l--
				} else {
					l++
				}
			}
			lengths[s] = uint8(l)
		}
		if d.tables[g], err = huffman.NewTable(lengths); err != nil {
			return wrapError(err)
		}
	}
	return nil
}

// decodeSymbols decodes the symbols of the block until the end-of-block
// symbol is found. It returns the number of bytes stored in tt.
func (d *blockDecoder) decodeSymbols() (n int, err error) {
	if len(d.tt) < d.blockSize {
		d.tt = make([]uint32, d.blockSize)
	}
	tt := d.tt[:d.blockSize]
	d.counts = [256]int{}
	var list mtf.List
	list.Init(256)
	eob := d.symTotal + 1

	var (
		table    *huffman.Table
		left     int
		selector int
		run      int
		runPos   int
	)
	for {
		if left == 0 {
			if selector >= len(d.selectors) {
				return 0, formatError("selectors exhausted")
			}
			table = d.tables[d.selectors[selector]]
			selector++
			left = groupSize
		}
		left--
		sym, err := table.Decode(d.br)
		if err != nil {
			return 0, wrapError(err)
		}

		if sym == runA || sym == runB {
			if runPos == 0 {
				runPos = 1
				run = 0
			}
			run += runPos << uint(sym)
			runPos <<= 1
			if run > d.blockSize {
				return 0, formatError("run exceeds block size")
			}
			continue
		}
		if runPos > 0 {
			runPos = 0
			if n+run > d.blockSize {
				return 0, formatError("run exceeds block size")
			}
			b := d.symToByte[list.Front()]
			d.counts[b] += run
			for i := n; i < n+run; i++ {
				tt[i] = uint32(b)
			}
			n += run
		}
		if sym == eob {
			return n, nil
		}
		if n >= d.blockSize {
			return 0, formatError("data exceeds block size")
		}
		b := d.symToByte[list.Move(sym-1)]
		d.counts[b]++
		tt[n] = uint32(b)
		n++
	}
}

// decodeBlock reads the block following the block magic and returns the
// header and a walker delivering the bytes of the block before the
// initial run-length encoding has been reversed.
func (d *blockDecoder) decodeBlock() (h blockHeader, w *bwt.Walker, err error) {
	offset := d.br.Offset() - bitstream.MagicBits
	if h, err = readBlockHeader(d.br, d.blockSize); err != nil {
		return h, nil, err
	}
	if err = d.readSymbolMap(); err != nil {
		return h, nil, err
	}
	groups, err := d.readSelectors()
	if err != nil {
		return h, nil, err
	}
	if err = d.readTables(groups); err != nil {
		return h, nil, err
	}
	n, err := d.decodeSymbols()
	if err != nil {
		return h, nil, err
	}
	xlog.Printf(debug, "block at bit %d: symbols %d groups %d "+
		"selectors %d length %d pointer %d", offset, d.symTotal,
		groups, len(d.selectors), n, h.origPtr)
	if h.origPtr >= n {
		return h, nil, formatError("original pointer out of range")
	}
	w, err = bwt.NewWalker(d.tt[:n], &d.counts, h.origPtr)
	if err != nil {
		return h, nil, wrapError(err)
	}
	return h, w, nil
}
