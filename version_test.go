// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdhash

import "testing"

func TestVersionString(t *testing.T) {
	for _, tc := range []struct {
		commit string
		want   string
	}{
		{commit: "", want: "0.1.0-dev"},
		{commit: "a1b2c3d", want: "0.1.0-a1b2c3d"},
		{commit: "a1b2c3d4e5f60718293a4b5c6d7e8f9012345678", want: "0.1.0-a1b2c3d"},
	} {
		if got := versionString("0.1.0", tc.commit); got != tc.want {
			t.Errorf("commit %q: got %q, want %q", tc.commit, got, tc.want)
		}
	}
}
