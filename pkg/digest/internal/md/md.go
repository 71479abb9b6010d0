// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package md implements the streaming driver and the padding rule shared by
// the 64 byte block Merkle–Damgård hashes.
package md

import (
	"encoding/binary"

	"github.com/ethersphere/mdhash/pkg/digest"
)

const (
	// BlockSize is the compression block size in bytes.
	BlockSize = digest.BlockSize
	// LengthSize is the size of the big-endian bit length footer.
	LengthSize = 8

	// the footer starts at this offset of the last block (448 bits)
	lengthOffset = BlockSize - LengthSize
)

// Compressor consumes p, which always holds a whole number of blocks.
type Compressor func(p []byte)

// Buffer accumulates input into full blocks and hands them to a Compressor.
// The zero value is an empty buffer ready for use.
type Buffer struct {
	x     [BlockSize]byte // pending bytes of the incomplete block
	nx    int             // number of pending bytes, always < BlockSize between calls
	len   uint64          // bytes written since the last Reset
	final bool            // set by Pad, cleared by Reset
}

// Reset empties the buffer and clears the finalized flag.
func (b *Buffer) Reset() {
	b.nx = 0
	b.len = 0
	b.final = false
}

// Len returns the number of bytes written since the last Reset.
func (b *Buffer) Len() uint64 {
	return b.len
}

// Pending returns the number of buffered bytes not yet compressed.
func (b *Buffer) Pending() int {
	return b.nx
}

// Finalized reports whether Pad was called since the last Reset.
func (b *Buffer) Finalized() bool {
	return b.final
}

// Write appends p to the message. Every block completed by p is compressed
// immediately and the trailing partial block is kept for the next call.
func (b *Buffer) Write(p []byte, compress Compressor) (int, error) {
	if b.final {
		return 0, digest.ErrFinalized
	}
	n := len(p)
	b.len += uint64(n)
	b.absorb(p, compress)
	return n, nil
}

// Pad appends the 0x80 marker, zero bytes up to 56 mod 64 and the message
// length in bits as a big-endian uint64, then marks the buffer finalized.
// On return all input has been compressed.
func (b *Buffer) Pad(compress Compressor) error {
	if b.final {
		return digest.ErrFinalized
	}
	var tmp [BlockSize + LengthSize]byte
	tmp[0] = 0x80
	rem := b.len % BlockSize
	var t uint64
	if rem < lengthOffset {
		t = lengthOffset - rem
	} else {
		t = BlockSize + lengthOffset - rem
	}
	binary.BigEndian.PutUint64(tmp[t:], b.len<<3)
	b.absorb(tmp[:t+LengthSize], compress)

	if b.nx != 0 {
		panic("md: pending bytes after padding")
	}
	b.final = true
	return nil
}

func (b *Buffer) absorb(p []byte, compress Compressor) {
	if b.nx > 0 {
		n := copy(b.x[b.nx:], p)
		b.nx += n
		if b.nx == BlockSize {
			compress(b.x[:])
			b.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= BlockSize {
		n := len(p) &^ (BlockSize - 1)
		compress(p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		b.nx = copy(b.x[:], p)
	}
}

// AppendWords appends the big-endian encoding of each word to in.
func AppendWords(in []byte, words ...uint32) []byte {
	var w [4]byte
	for _, v := range words {
		binary.BigEndian.PutUint32(w[:], v)
		in = append(in, w[:]...)
	}
	return in
}
