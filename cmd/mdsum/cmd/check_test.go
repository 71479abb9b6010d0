// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/ethersphere/mdhash/cmd/mdsum/cmd"
	"github.com/ethersphere/mdhash/pkg/hasher"
)

func TestCheckCmd(t *testing.T) {
	fs := afero.NewMemMapFs()
	for name, data := range map[string]string{
		"abc.txt":  "abc",
		"good.txt": "",
		"bad.txt":  "tampered",
	} {
		if err := afero.WriteFile(fs, name, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("all ok", func(t *testing.T) {
		list := sha1Abc + "  abc.txt\n" + sha256Nil + " *good.txt\n"
		if err := afero.WriteFile(fs, "ok.sums", []byte(list), 0644); err != nil {
			t.Fatal(err)
		}

		var out bytes.Buffer
		if err := newCommand(t,
			cmd.WithFs(fs),
			cmd.WithArgs("check", "ok.sums"),
			cmd.WithOutput(&out),
		).Execute(); err != nil {
			t.Fatal(err)
		}
		want := "abc.txt: OK\ngood.txt: OK\n"
		if got := out.String(); got != want {
			t.Errorf("got output %q, want %q", got, want)
		}
	})

	t.Run("failures", func(t *testing.T) {
		list := strings.Join([]string{
			sha256Abc + "  abc.txt",
			sha256Abc + "  bad.txt",
			sha256Abc + "  gone.txt",
		}, "\n")

		var out, errOut bytes.Buffer
		err := newCommand(t,
			cmd.WithFs(fs),
			cmd.WithArgs("check", "-"),
			cmd.WithInput(strings.NewReader(list)),
			cmd.WithOutput(&out),
			cmd.WithErrorOutput(&errOut),
		).Execute()
		if !errors.Is(err, hasher.ErrChecksumMismatch) {
			t.Fatalf("got error %v, want %v", err, hasher.ErrChecksumMismatch)
		}
		want := "abc.txt: OK\nbad.txt: FAILED\ngone.txt: FAILED open or read\n"
		if got := out.String(); got != want {
			t.Errorf("got output %q, want %q", got, want)
		}
		for _, warning := range []string{
			"1 listed files could not be read",
			"1 computed checksums did NOT match",
		} {
			if !strings.Contains(errOut.String(), warning) {
				t.Errorf("error output %q does not contain %q", errOut.String(), warning)
			}
		}
	})

	t.Run("explicit algorithm", func(t *testing.T) {
		err := newCommand(t,
			cmd.WithFs(fs),
			cmd.WithArgs("check", "--algorithm", "sha256", "-"),
			cmd.WithInput(strings.NewReader(sha1Abc+"  abc.txt\n")),
			cmd.WithOutput(new(bytes.Buffer)),
		).Execute()
		if !errors.Is(err, hasher.ErrMalformedLine) {
			t.Fatalf("got error %v, want %v", err, hasher.ErrMalformedLine)
		}
	})

	t.Run("missing list", func(t *testing.T) {
		err := newCommand(t,
			cmd.WithFs(fs),
			cmd.WithArgs("check", "nope.sums"),
			cmd.WithOutput(new(bytes.Buffer)),
		).Execute()
		if err == nil {
			t.Fatal("expected error")
		}
	})
}
