// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mdhash holds build information shared by the mdsum command and the
// HTTP API.
package mdhash

// Set with -ldflags "-X github.com/ethersphere/mdhash.commitHash=...".
var (
	version    = "0.1.0"
	commitHash string
)

// Version is the semantic version of the build, suffixed with the commit hash
// it was built from or with "dev" for builds without one.
var Version = versionString(version, commitHash)

func versionString(v, commit string) string {
	if commit == "" {
		return v + "-dev"
	}
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return v + "-" + commit
}
