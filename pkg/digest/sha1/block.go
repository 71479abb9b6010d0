// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha1

import (
	"encoding/binary"
	"math/bits"
)

// rounds is the length of the expanded message schedule.
const rounds = 80

const (
	_K0 = 0x5a827999
	_K1 = 0x6ed9eba1
	_K2 = 0x8f1bbcdc
	_K3 = 0xca62c1d6
)

func ch(x, y, z uint32) uint32 { return (x & y) ^ (^x & z) }

func parity(x, y, z uint32) uint32 { return x ^ y ^ z }

func maj(x, y, z uint32) uint32 { return (x & y) ^ (x & z) ^ (y & z) }

// block compresses every 64 byte block of p into h.
func block(h *[5]uint32, p []byte) {
	var w [rounds]uint32

	h0, h1, h2, h3, h4 := h[0], h[1], h[2], h[3], h[4]
	for len(p) >= BlockSize {
		for i := 0; i < 16; i++ {
			w[i] = binary.BigEndian.Uint32(p[i*4:])
		}
		for i := 16; i < rounds; i++ {
			w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
		}

		a, b, c, d, e := h0, h1, h2, h3, h4

		// The four 20 round stages differ only in the
		// logical function and the additive constant.
		for i := 0; i < rounds; i++ {
			var f, k uint32
			switch {
			case i < 20:
				f, k = ch(b, c, d), _K0
			case i < 40:
				f, k = parity(b, c, d), _K1
			case i < 60:
				f, k = maj(b, c, d), _K2
			default:
				f, k = parity(b, c, d), _K3
			}
			t := bits.RotateLeft32(a, 5) + f + e + k + w[i]
			a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
		}

		h0 += a
		h1 += b
		h2 += c
		h3 += d
		h4 += e

		p = p[BlockSize:]
	}
	h[0], h[1], h[2], h[3], h[4] = h0, h1, h2, h3, h4
}
