// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package digest defines the interface shared by the Merkle–Damgård hash
// implementations in its subpackages.
//
// Two variants are provided:
//
// sha1 produces a 160-bit digest from a five word state.
//
// sha256 produces a 256-bit digest from an eight word state.
//
// Both consume input in 64 byte blocks, keep partial blocks buffered across
// writes and pad the message with a single 1 bit, zero bits and the 64-bit
// big-endian message length in bits. Splitting the same input into different
// writes never changes the digest.
//
// Implementations satisfy the standard golang hash.Hash interface and add an
// explicit Final step that consumes the context. A context that has been
// finalized must be Reset before it accepts more input.
package digest
