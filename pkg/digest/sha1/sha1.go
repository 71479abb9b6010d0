// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sha1 implements the 160-bit SHA-1 hash as a streaming context.
package sha1

import (
	"github.com/ethersphere/mdhash/pkg/digest"
	"github.com/ethersphere/mdhash/pkg/digest/internal/md"
)

const (
	// Size is the digest size in bytes.
	Size = 20
	// BlockSize is the input block size in bytes.
	BlockSize = md.BlockSize
)

const (
	init0 = 0x67452301
	init1 = 0xefcdab89
	init2 = 0x98badcfe
	init3 = 0x10325476
	init4 = 0xc3d2e1f0
)

var _ digest.Hash = (*Context)(nil)

// Context is the running state of one SHA-1 computation.
//
// The same context must not be used concurrently. It is synchronously
// reusable after Reset.
type Context struct {
	h   [5]uint32
	buf md.Buffer
}

// New returns a context in the initial state.
func New() *Context {
	c := new(Context)
	c.Reset()
	return c
}

// Reset restores the initial state so the context can hash a new message.
func (c *Context) Reset() {
	c.h[0] = init0
	c.h[1] = init1
	c.h[2] = init2
	c.h[3] = init3
	c.h[4] = init4
	c.buf.Reset()
}

// Size returns the digest size.
func (c *Context) Size() int { return Size }

// BlockSize returns the block size.
func (c *Context) BlockSize() int { return BlockSize }

// Len returns the number of bytes written since the last Reset.
func (c *Context) Len() uint64 { return c.buf.Len() }

// Write absorbs p. It returns digest.ErrFinalized if Final was called
// since the last Reset.
func (c *Context) Write(p []byte) (int, error) {
	return c.buf.Write(p, c.compress)
}

// Final pads the message and returns the digest.
func (c *Context) Final() ([]byte, error) {
	if err := c.buf.Pad(c.compress); err != nil {
		return nil, err
	}
	return md.AppendWords(make([]byte, 0, Size), c.h[:]...), nil
}

// Sum appends the digest of the data written so far to b
// without changing the context.
func (c *Context) Sum(b []byte) []byte {
	if c.buf.Finalized() {
		panic(digest.ErrFinalized)
	}
	d := *c
	sum := d.checkSum()
	return append(b, sum[:]...)
}

func (c *Context) checkSum() (sum [Size]byte) {
	// a fresh copy is never finalized
	_ = c.buf.Pad(c.compress)
	md.AppendWords(sum[:0], c.h[:]...)
	return sum
}

func (c *Context) compress(p []byte) {
	block(&c.h, p)
}

// Sum returns the SHA-1 digest of data.
func Sum(data []byte) [Size]byte {
	var c Context
	c.Reset()
	_, _ = c.Write(data)
	return c.checkSum()
}
