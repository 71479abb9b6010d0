// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hasher

import (
	"fmt"
	"sync"

	"github.com/ethersphere/mdhash/pkg/digest"
)

// defaultPoolMinimum is the number of idle contexts kept by the default pools.
const defaultPoolMinimum = 8

var defaultPools = func() map[Variant]*Pool {
	pools := make(map[Variant]*Pool, len(Variants))
	for _, v := range Variants {
		p, err := NewPool(v, defaultPoolMinimum)
		if err != nil {
			panic(err)
		}
		pools[v] = p
	}
	return pools
}()

// Get returns a reset context of the variant from the default pool.
func Get(v Variant) (digest.Hash, error) {
	p, ok := defaultPools[v]
	if !ok {
		return nil, fmt.Errorf("%v: %w", v, ErrUnknownVariant)
	}
	return p.Get(), nil
}

// Put returns a context obtained with Get to the default pool.
func Put(v Variant, h digest.Hash) {
	if p, ok := defaultPools[v]; ok {
		p.Put(h)
	}
}

// Pool pools contexts of one variant.
// It provides the ability for the number of contexts to grow
// according to demand, but will shrink once the minimum defined
// contexts are put back into the pool.
type Pool struct {
	variant Variant
	p       sync.Pool
	mtx     sync.Mutex
	minimum int // minimum number of instances the pool should have
	size    int // size of the pool (only accounted for when items are put back)
	rented  int // number of contexts handed out and not yet returned
}

// NewPool returns a pool of contexts of the variant.
func NewPool(v Variant, minimum int) (*Pool, error) {
	if _, err := New(v); err != nil {
		return nil, err
	}
	return &Pool{
		variant: v,
		p: sync.Pool{
			New: func() interface{} {
				h, _ := New(v)
				return h
			},
		},
		minimum: minimum,
	}, nil
}

// Variant returns the variant of the pooled contexts.
func (p *Pool) Variant() Variant {
	return p.variant
}

// Get returns a context in its initial state.
func (p *Pool) Get() digest.Hash {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	h := p.p.Get().(digest.Hash)
	p.rented++

	if p.size > 0 {
		p.size--
	}

	return h
}

// Put puts a context back into the pool.
// It discards the instance if the minimum number of instances
// has been reached.
// The context is reset before being put back into the pool.
func (p *Pool) Put(h digest.Hash) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	p.rented--

	// only put back if we're not exceeding the minimum capacity
	if p.size+1 > p.minimum {
		return
	}

	h.Reset()
	p.p.Put(h)
	p.size++
}

// Size of the pool.
func (p *Pool) Size() int {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.size
}

// Rented returns the number of contexts currently handed out.
func (p *Pool) Rented() int {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.rented
}
