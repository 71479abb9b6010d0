// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha256_test

import (
	stdsha256 "crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"testing"

	"github.com/ethersphere/mdhash/pkg/digest"
	"github.com/ethersphere/mdhash/pkg/digest/digesttest"
	"github.com/ethersphere/mdhash/pkg/digest/sha256"
)

var vectors = []digesttest.Vector{
	{
		Name:   "empty",
		Input:  nil,
		Digest: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
	},
	{
		Name:   "abc",
		Input:  []byte("abc"),
		Digest: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
	},
	{
		Name:   "two blocks",
		Input:  []byte("abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq"),
		Digest: "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1",
	},
	{
		Name:   "million a",
		Input:  []byte("aaaaaaaaaa"),
		Repeat: 100000,
		Digest: "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0",
	},
}

func TestContext(t *testing.T) {
	digesttest.TestHash(t,
		func() digest.Hash { return sha256.New() },
		func() hash.Hash { return stdsha256.New() },
		vectors,
	)
}

func TestSum(t *testing.T) {
	for _, v := range vectors[:3] {
		sum := sha256.Sum(v.Input)
		if got := hex.EncodeToString(sum[:]); got != v.Digest {
			t.Errorf("%s: got %s, want %s", v.Name, got, v.Digest)
		}
	}
}

// The length field must be the full 64-bit message length in bits for
// a 64 byte block, also for messages whose length is close to a block.
func TestLengthFooter(t *testing.T) {
	for _, n := range []int{111, 112, 119, 120, 239, 240} {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i * 7)
		}
		got := sha256.Sum(data)
		want := stdsha256.Sum256(data)
		if got != want {
			t.Errorf("%d bytes: got %x, want %x", n, got, want)
		}
	}
}

func BenchmarkWrite(b *testing.B) {
	for _, size := range []int{64, 1024, 8192} {
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			data := make([]byte, size)
			c := sha256.New()
			b.SetBytes(int64(size))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c.Reset()
				_, _ = c.Write(data)
				_ = c.Sum(nil)
			}
		})
	}
}
