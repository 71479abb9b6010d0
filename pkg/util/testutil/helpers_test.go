// Copyright 2023 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testutil_test

import (
	"bytes"
	"testing"

	"github.com/ethersphere/mdhash/pkg/util/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRandBytesWithSeed(t *testing.T) {
	t.Parallel()

	a := testutil.RandBytesWithSeed(t, 32, 1)
	b := testutil.RandBytesWithSeed(t, 32, 1)
	c := testutil.RandBytesWithSeed(t, 32, 2)
	assert.Len(t, a, 32)
	assert.Equal(t, a, b)
	assert.False(t, bytes.Equal(a, c))
}
