// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hasher selects between the digest variants and builds the
// caller facing operations on top of them: one-shot hashing, hex encoding,
// pooled contexts, streaming of readers and files and verification of
// checksum lists.
package hasher
