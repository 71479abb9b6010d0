// Copyright 2023 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pseudorand_test

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"testing"

	"github.com/ethersphere/mdhash/pkg/util/testutil/pseudorand"
)

func TestReader(t *testing.T) {
	size := 42000
	seed := make([]byte, 32)
	r := pseudorand.NewReader(seed, size)
	content, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(content) != size {
		t.Fatalf("got %d bytes, want %d", len(content), size)
	}
	t.Run("deterministicity", func(t *testing.T) {
		r2 := pseudorand.NewReader(seed, size)
		content2, err := io.ReadAll(r2)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(content, content2) {
			t.Fatal("content mismatch")
		}
	})
	t.Run("randomness", func(t *testing.T) {
		bufSize := 4096
		if bytes.Equal(content[:bufSize], content[bufSize:2*bufSize]) {
			t.Fatal("buffers should not match")
		}
		other, err := io.ReadAll(pseudorand.NewReader([]byte("other"), size))
		if err != nil {
			t.Fatal(err)
		}
		if bytes.Equal(content, other) {
			t.Fatal("different seeds should not produce the same content")
		}
	})
	t.Run("re-readability", func(t *testing.T) {
		ns, err := r.Seek(0, io.SeekStart)
		if err != nil {
			t.Fatal(err)
		}
		if ns != 0 {
			t.Fatal("seek mismatch")
		}
		var read []byte
		buf := make([]byte, 8200)
		for {
			s := rand.Intn(820)
			n, err := r.Read(buf[:s])
			read = append(read, buf[:n]...)
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				t.Fatal(err)
			}
		}
		if !bytes.Equal(content, read) {
			t.Fatal("content mismatch")
		}
	})
	t.Run("seek", func(t *testing.T) {
		for _, off := range []int{1, 4095, 4096, 10000, size - 1} {
			if _, err := r.Seek(int64(off), io.SeekStart); err != nil {
				t.Fatal(err)
			}
			rest, err := io.ReadAll(r)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(content[off:], rest) {
				t.Fatalf("offset %d: content mismatch", off)
			}
		}
		if _, err := r.Seek(int64(size+1), io.SeekStart); err == nil {
			t.Fatal("expected error seeking past the end")
		}
	})
}
