// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package digest

import (
	"hash"
)

// BlockSize is the size of the input block of both variants in bytes.
const BlockSize = 64

// Hash extends hash.Hash with the consuming finalization step.
//
// Write returns ErrFinalized once Final has been called. Sum does not change
// the state of the context and panics if the context was already finalized.
type Hash interface {
	hash.Hash

	// Final pads the message, runs the last compression and returns the
	// digest. Calling it a second time without Reset returns ErrFinalized.
	Final() ([]byte, error)
}
