// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hasher_test

import (
	"fmt"
	"testing"

	"github.com/ethersphere/mdhash/pkg/hasher"
	"golang.org/x/sync/errgroup"
)

func TestPool(t *testing.T) {
	p, err := hasher.NewPool(hasher.SHA256, 2)
	if err != nil {
		t.Fatal(err)
	}

	h1 := p.Get()
	h2 := p.Get()
	h3 := p.Get()
	if r := p.Rented(); r != 3 {
		t.Fatalf("got %d rented, want 3", r)
	}

	// a context put back dirty must come out reset
	if _, err := h1.Write([]byte("dirty")); err != nil {
		t.Fatal(err)
	}
	p.Put(h1)
	p.Put(h2)
	p.Put(h3)

	if s := p.Size(); s != 2 {
		t.Fatalf("got size %d, want 2", s)
	}
	if r := p.Rented(); r != 0 {
		t.Fatalf("got %d rented, want 0", r)
	}

	h := p.Get()
	sum, err := h.Final()
	if err != nil {
		t.Fatal(err)
	}
	if got := hasher.Hex(sum); got != sha256Nil {
		t.Fatalf("pooled context not reset: got %s", got)
	}
	p.Put(h)

	if _, err := hasher.NewPool(0, 1); err == nil {
		t.Fatal("expected error for unknown variant")
	}
}

func TestDefaultPoolConcurrent(t *testing.T) {
	for _, v := range hasher.Variants {
		v := v
		t.Run(v.String(), func(t *testing.T) {
			eg := new(errgroup.Group)
			for i := 0; i < 64; i++ {
				i := i
				eg.Go(func() error {
					data := []byte(fmt.Sprintf("input %d", i))
					h, err := hasher.Get(v)
					if err != nil {
						return err
					}
					defer hasher.Put(v, h)
					if _, err := h.Write(data); err != nil {
						return err
					}
					got, err := h.Final()
					if err != nil {
						return err
					}
					want, err := hasher.Sum(v, data)
					if err != nil {
						return err
					}
					if !hasher.Equal(got, want) {
						return fmt.Errorf("input %d: got %x, want %x", i, got, want)
					}
					return nil
				})
			}
			if err := eg.Wait(); err != nil {
				t.Fatal(err)
			}
		})
	}
}
