// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hasher

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/ethersphere/mdhash/pkg/digest/sha1"
	"github.com/ethersphere/mdhash/pkg/digest/sha256"
)

// Sum returns the digest of data.
func Sum(v Variant, data []byte) ([]byte, error) {
	switch v {
	case SHA1:
		s := sha1.Sum(data)
		return s[:], nil
	case SHA256:
		s := sha256.Sum(data)
		return s[:], nil
	}
	return nil, fmt.Errorf("%v: %w", v, ErrUnknownVariant)
}

// SumString hashes input with the variant whose digest is size bytes long.
func SumString(input string, size int) ([]byte, error) {
	v, err := VariantForSize(size)
	if err != nil {
		return nil, err
	}
	return Sum(v, []byte(input))
}

// Equal reports whether two digests are identical.
// The comparison is not constant time.
func Equal(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// Hex returns the lowercase hexadecimal representation of a digest.
func Hex(d []byte) string {
	return hex.EncodeToString(d)
}

// ParseHex decodes a hex digest and checks its length against the variant.
func ParseHex(s string, v Variant) ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%v: %w", v, ErrUnknownVariant)
	}
	d, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDigest, err)
	}
	if len(d) != v.Size() {
		return nil, fmt.Errorf("%w: got %d bytes for %v, want %d", ErrInvalidDigest, len(d), v, v.Size())
	}
	return d, nil
}
