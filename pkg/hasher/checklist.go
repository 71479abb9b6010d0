// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hasher

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// maxChecklistLine bounds the length of a single checksum list line.
const maxChecklistLine = 1024 * 1024

// Entry is a single line of a checksum list.
type Entry struct {
	Variant Variant
	Digest  []byte
	Path    string
	Binary  bool
}

// FormatEntry formats an entry as a checksum list line without the trailing
// newline.
func FormatEntry(e Entry) string {
	sep := "  "
	if e.Binary {
		sep = " *"
	}
	return Hex(e.Digest) + sep + e.Path
}

// ParseChecklist reads checksum list lines of the form "<hex>  <path>" or
// "<hex> *<path>". Blank lines and lines starting with '#' are skipped.
// When v is zero the variant of each line is inferred from its digest length.
func ParseChecklist(r io.Reader, v Variant) ([]Entry, error) {
	if v != 0 && !v.Valid() {
		return nil, fmt.Errorf("%v: %w", v, ErrUnknownVariant)
	}

	var entries []Entry
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4*1024), maxChecklistLine)
	n := 1
	for ; s.Scan(); n++ {
		line := strings.TrimRight(s.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		e, err := parseEntry(line, v)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		entries = append(entries, e)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", n, err)
	}
	return entries, nil
}

func parseEntry(line string, v Variant) (Entry, error) {
	i := strings.IndexByte(line, ' ')
	if i <= 0 || i+2 > len(line) {
		return Entry{}, ErrMalformedLine
	}
	var binary bool
	switch line[i+1] {
	case ' ':
	case '*':
		binary = true
	default:
		return Entry{}, ErrMalformedLine
	}
	path := line[i+2:]
	if path == "" {
		return Entry{}, ErrMalformedLine
	}

	d, err := hex.DecodeString(line[:i])
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	if v == 0 {
		if v, err = VariantForSize(len(d)); err != nil {
			return Entry{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
		}
	} else if len(d) != v.Size() {
		return Entry{}, fmt.Errorf("%w: digest length %d for %v", ErrMalformedLine, len(d), v)
	}

	return Entry{
		Variant: v,
		Digest:  d,
		Path:    path,
		Binary:  binary,
	}, nil
}
