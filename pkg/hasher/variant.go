// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hasher

import (
	"fmt"
	"strings"

	"github.com/ethersphere/mdhash/pkg/digest"
	"github.com/ethersphere/mdhash/pkg/digest/sha1"
	"github.com/ethersphere/mdhash/pkg/digest/sha256"
)

// Variant selects one of the supported hash algorithms.
type Variant int

const (
	SHA1 Variant = iota + 1
	SHA256
)

// Variants lists all supported variants.
var Variants = []Variant{SHA1, SHA256}

func (v Variant) String() string {
	switch v {
	case SHA1:
		return "sha1"
	case SHA256:
		return "sha256"
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// Size returns the digest size of the variant in bytes, or 0 if the variant
// is not supported.
func (v Variant) Size() int {
	switch v {
	case SHA1:
		return sha1.Size
	case SHA256:
		return sha256.Size
	}
	return 0
}

// Valid reports whether v is a supported variant.
func (v Variant) Valid() bool {
	return v.Size() != 0
}

// ParseVariant parses an algorithm name such as "sha256" or "SHA-1".
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sha1", "sha-1":
		return SHA1, nil
	case "sha256", "sha-256":
		return SHA256, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownVariant)
}

// VariantForSize returns the variant producing digests of size bytes.
func VariantForSize(size int) (Variant, error) {
	for _, v := range Variants {
		if v.Size() == size {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%d bytes: %w", size, ErrUnsupportedSize)
}

// New returns a fresh context for the variant.
func New(v Variant) (digest.Hash, error) {
	switch v {
	case SHA1:
		return sha1.New(), nil
	case SHA256:
		return sha256.New(), nil
	}
	return nil, fmt.Errorf("%v: %w", v, ErrUnknownVariant)
}
