// Copyright 2023 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testutil holds helpers shared by mdhash tests.
package testutil

import (
	"io"
	"math/rand"
	"testing"
)

// RandBytesWithSeed returns bytes slice of specified size filled with random values generated using seed.
func RandBytesWithSeed(tb testing.TB, size int, seed int64) []byte {
	tb.Helper()

	buf := make([]byte, size)

	r := rand.New(rand.NewSource(seed))
	n, err := io.ReadFull(r, buf)
	if err != nil {
		tb.Fatal(err)
	}
	if n != size {
		tb.Fatalf("expected to read %d, got %d", size, n)
	}

	return buf
}
