// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package digest

import (
	"errors"
)

// ErrFinalized is returned when a context is written to or finalized again
// after Final without an intervening Reset.
var ErrFinalized = errors.New("digest: context already finalized")
