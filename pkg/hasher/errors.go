// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hasher

import (
	"errors"
)

var (
	// ErrUnknownVariant is returned for an algorithm name or value that is not supported.
	ErrUnknownVariant = errors.New("unknown hash algorithm")
	// ErrUnsupportedSize is returned when no variant produces a digest of the requested size.
	ErrUnsupportedSize = errors.New("unsupported digest size")
	// ErrInvalidDigest is returned when a hex digest cannot be decoded for a variant.
	ErrInvalidDigest = errors.New("invalid digest")
	// ErrChecksumMismatch is returned when data does not hash to the expected digest.
	ErrChecksumMismatch = errors.New("checksum mismatch")
	// ErrMalformedLine is returned for a checksum list line that cannot be parsed.
	ErrMalformedLine = errors.New("malformed checksum line")
)
