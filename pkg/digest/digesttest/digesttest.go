// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package digesttest provides a conformance suite for digest.Hash
// implementations.
package digesttest

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"math/bits"
	"math/rand"
	"testing"

	"github.com/ethersphere/mdhash/pkg/digest"
)

// Vector is a known answer test.
type Vector struct {
	Name   string
	Input  []byte
	Repeat int    // number of times Input is written, 0 means once
	Digest string // lowercase hex
}

// TestHash runs the full suite against contexts returned by newHash, using
// newRef as the reference implementation for randomized comparisons.
func TestHash(t *testing.T, newHash func() digest.Hash, newRef func() hash.Hash, vectors []Vector) {
	t.Helper()

	t.Run("vectors", func(t *testing.T) { testVectors(t, newHash, vectors) })
	t.Run("size", func(t *testing.T) { testSize(t, newHash, newRef) })
	t.Run("chunking", func(t *testing.T) { testChunking(t, newHash, newRef) })
	t.Run("boundaries", func(t *testing.T) { testBoundaries(t, newHash, newRef) })
	t.Run("reset", func(t *testing.T) { testReset(t, newHash, vectors) })
	t.Run("finalized", func(t *testing.T) { testFinalized(t, newHash) })
	t.Run("sum", func(t *testing.T) { testSum(t, newHash, newRef) })
	t.Run("avalanche", func(t *testing.T) { testAvalanche(t, newHash) })
}

func final(t *testing.T, h digest.Hash) []byte {
	t.Helper()

	d, err := h.Final()
	if err != nil {
		t.Fatalf("final: %v", err)
	}
	return d
}

func write(t *testing.T, h io.Writer, p []byte) {
	t.Helper()

	n, err := h.Write(p)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if n != len(p) {
		t.Fatalf("wrote %d bytes, want %d", n, len(p))
	}
}

func refSum(newRef func() hash.Hash, data []byte) []byte {
	r := newRef()
	_, _ = r.Write(data)
	return r.Sum(nil)
}

func testVectors(t *testing.T, newHash func() digest.Hash, vectors []Vector) {
	for _, v := range vectors {
		v := v
		t.Run(v.Name, func(t *testing.T) {
			h := newHash()
			for i := 0; i < repeats(v); i++ {
				write(t, h, v.Input)
			}
			if got := hex.EncodeToString(final(t, h)); got != v.Digest {
				t.Fatalf("got digest %s, want %s", got, v.Digest)
			}
		})
	}
}

func testSize(t *testing.T, newHash func() digest.Hash, newRef func() hash.Hash) {
	size := newRef().Size()
	for _, n := range []int{0, 1, 64, 1000} {
		h := newHash()
		if h.Size() != size {
			t.Fatalf("got size %d, want %d", h.Size(), size)
		}
		if h.BlockSize() != digest.BlockSize {
			t.Fatalf("got block size %d, want %d", h.BlockSize(), digest.BlockSize)
		}
		write(t, h, make([]byte, n))
		if got := len(final(t, h)); got != size {
			t.Fatalf("%d byte input: got %d byte digest, want %d", n, got, size)
		}
	}
}

// testChunking writes the same data split at random offsets and expects the
// digest of a single write.
func testChunking(t *testing.T, newHash func() digest.Hash, newRef func() hash.Hash) {
	seed := int64(1)
	r := rand.New(rand.NewSource(seed))
	data := make([]byte, 4096)
	_, _ = r.Read(data)

	for i := 0; i < 200; i++ {
		n := r.Intn(len(data) + 1)
		want := refSum(newRef, data[:n])

		h := newHash()
		for from := 0; from < n; {
			to := from + r.Intn(150) + 1
			if to > n {
				to = n
			}
			write(t, h, data[from:to])
			if r.Intn(4) == 0 {
				write(t, h, nil)
			}
			from = to
		}
		if got := final(t, h); !bytes.Equal(got, want) {
			t.Fatalf("seed %d: %d bytes: got %x, want %x", seed, n, got, want)
		}
	}

	t.Run("byte by byte", func(t *testing.T) {
		h := newHash()
		for i := 0; i < 300; i++ {
			write(t, h, data[i:i+1])
		}
		if got, want := final(t, h), refSum(newRef, data[:300]); !bytes.Equal(got, want) {
			t.Fatalf("got %x, want %x", got, want)
		}
	})
}

func testBoundaries(t *testing.T, newHash func() digest.Hash, newRef func() hash.Hash) {
	data := bytes.Repeat([]byte("0123456789abcdef"), 16)
	for _, n := range []int{55, 56, 57, 63, 64, 65, 119, 120, 121, 127, 128, 129, 192} {
		n := n
		t.Run(fmt.Sprintf("%d_bytes", n), func(t *testing.T) {
			want := refSum(newRef, data[:n])
			for split := 0; split <= n; split++ {
				h := newHash()
				write(t, h, data[:split])
				write(t, h, data[split:n])
				if got := final(t, h); !bytes.Equal(got, want) {
					t.Fatalf("split at %d: got %x, want %x", split, got, want)
				}
			}
		})
	}
}

func testReset(t *testing.T, newHash func() digest.Hash, vectors []Vector) {
	if len(vectors) == 0 {
		t.Skip("no vectors")
	}
	v := vectors[len(vectors)-1]
	h := newHash()

	// a finalized context
	write(t, h, []byte("a previous message that spans more than one block of input data......"))
	_ = final(t, h)
	h.Reset()
	for i := 0; i < repeats(v); i++ {
		write(t, h, v.Input)
	}
	if got := hex.EncodeToString(final(t, h)); got != v.Digest {
		t.Fatalf("after final and reset: got %s, want %s", got, v.Digest)
	}

	// a context in the middle of a message
	h.Reset()
	write(t, h, []byte("partial"))
	h.Reset()
	for i := 0; i < repeats(v); i++ {
		write(t, h, v.Input)
	}
	if got := hex.EncodeToString(final(t, h)); got != v.Digest {
		t.Fatalf("after partial write and reset: got %s, want %s", got, v.Digest)
	}
}

func testFinalized(t *testing.T, newHash func() digest.Hash) {
	h := newHash()
	write(t, h, []byte("abc"))
	first := final(t, h)

	if _, err := h.Write([]byte("d")); !errors.Is(err, digest.ErrFinalized) {
		t.Fatalf("write after final: got error %v, want %v", err, digest.ErrFinalized)
	}
	if _, err := h.Final(); !errors.Is(err, digest.ErrFinalized) {
		t.Fatalf("second final: got error %v, want %v", err, digest.ErrFinalized)
	}

	func() {
		defer func() {
			r := recover()
			if err, ok := r.(error); !ok || !errors.Is(err, digest.ErrFinalized) {
				t.Fatalf("sum after final: got panic %v, want %v", r, digest.ErrFinalized)
			}
		}()
		h.Sum(nil)
	}()

	h.Reset()
	write(t, h, []byte("abc"))
	if got := final(t, h); !bytes.Equal(got, first) {
		t.Fatalf("got %x, want %x", got, first)
	}
}

// testSum checks that Sum leaves the context untouched.
func testSum(t *testing.T, newHash func() digest.Hash, newRef func() hash.Hash) {
	data := bytes.Repeat([]byte{0x5a}, 200)
	h := newHash()
	write(t, h, data[:70])

	prefix := []byte("prefix")
	got := h.Sum(prefix)
	if !bytes.HasPrefix(got, prefix) {
		t.Fatal("sum did not append to its argument")
	}
	if want := refSum(newRef, data[:70]); !bytes.Equal(got[len(prefix):], want) {
		t.Fatalf("got %x, want %x", got[len(prefix):], want)
	}
	if again := h.Sum(nil); !bytes.Equal(again, got[len(prefix):]) {
		t.Fatal("repeated sum differs")
	}

	write(t, h, data[70:])
	if got, want := final(t, h), refSum(newRef, data); !bytes.Equal(got, want) {
		t.Fatalf("final after sum: got %x, want %x", got, want)
	}
}

// testAvalanche is a smoke test catching gross errors such as a truncated
// schedule. It is not a statement about the strength of the hash.
func testAvalanche(t *testing.T, newHash func() digest.Hash) {
	r := rand.New(rand.NewSource(2))
	data := make([]byte, 100)
	var changed, total int
	for i := 0; i < 64; i++ {
		_, _ = r.Read(data)
		h := newHash()
		write(t, h, data)
		a := final(t, h)

		bit := r.Intn(len(data) * 8)
		data[bit/8] ^= 1 << (bit % 8)
		h.Reset()
		write(t, h, data)
		b := final(t, h)

		for j := range a {
			changed += bits.OnesCount8(a[j] ^ b[j])
		}
		total += len(a) * 8
	}
	if ratio := float64(changed) / float64(total); ratio < 0.45 || ratio > 0.55 {
		t.Fatalf("single bit flips changed %.3f of the output bits", ratio)
	}
}

func repeats(v Vector) int {
	if v.Repeat == 0 {
		return 1
	}
	return v.Repeat
}
