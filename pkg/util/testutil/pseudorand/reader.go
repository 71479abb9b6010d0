// Copyright 2023 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pseudorand provides a reader that generates a deterministic
// sequence of bytes based on a seed. It is used in tests to
// enable large volumes of pseudorandom data to be hashed
// and compared without having to store the data in memory.
package pseudorand

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ethersphere/mdhash/pkg/digest/sha256"
)

const bufSize = 4096

// Reader is a pseudorandom reader. Segment i of the stream is the SHA-256
// digest of the seed followed by i as a big-endian uint64.
type Reader struct {
	cur  int
	len  int
	seed []byte
	buf  [bufSize]byte
}

// NewReader creates a new pseudorandom reader of l bytes seeded with the given seed.
func NewReader(seed []byte, l int) *Reader {
	r := &Reader{len: l, seed: append([]byte(nil), seed...)}
	r.fill()
	return r
}

// Size returns the size of the reader.
func (r *Reader) Size() int {
	return r.len
}

// Read reads up to len(buf) bytes into buf.
func (r *Reader) Read(buf []byte) (n int, err error) {
	if r.cur >= r.len {
		return 0, io.EOF
	}
	cur := r.cur % bufSize
	toRead := bufSize - cur
	if rem := r.len - r.cur; rem < toRead {
		toRead = rem
	}
	if toRead < len(buf) {
		buf = buf[:toRead]
	}
	n = copy(buf, r.buf[cur:])
	r.cur += n
	if r.cur == r.len {
		return n, io.EOF
	}
	if r.cur%bufSize == 0 {
		r.fill()
	}
	return n, nil
}

// Seek sets the offset for the next Read to offset, interpreted
// according to whence.
func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	cur := r.cur
	switch whence {
	case io.SeekStart:
		cur = int(offset)
	case io.SeekCurrent:
		cur += int(offset)
	case io.SeekEnd:
		cur = r.len + int(offset)
	}
	if cur < 0 || cur > r.len {
		return 0, fmt.Errorf("seek: invalid offset %d", cur)
	}
	r.cur = cur
	r.fill()
	return int64(r.cur), nil
}

// fill fills the buffer with the segments covering the current offset.
func (r *Reader) fill() {
	if r.cur >= r.len {
		return
	}
	first := (r.cur / bufSize) * (bufSize / sha256.Size)
	h := sha256.New()
	ctr := make([]byte, 8)
	for i := 0; i < bufSize; i += sha256.Size {
		binary.BigEndian.PutUint64(ctr, uint64(first+i/sha256.Size))
		h.Reset()
		_, _ = h.Write(r.seed)
		_, _ = h.Write(ctr)
		copy(r.buf[i:], h.Sum(nil))
	}
}
