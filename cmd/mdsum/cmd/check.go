// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ethersphere/mdhash/pkg/hasher"
)

func (c *command) initCheckCmd() {
	cmd := &cobra.Command{
		Use:   "check <list>",
		Short: "Verify files against a checksum list",
		Long: `Verify files against a checksum list produced by the sum command.

The algorithm of each line is inferred from the digest length unless
--algorithm is set explicitly. A list of - is read from standard input.`,
		Args:    cobra.ExactArgs(1),
		PreRunE: c.bindFlags,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var v hasher.Variant
			if c.config.IsSet(optionNameAlgorithm) {
				if v, err = c.variant(); err != nil {
					return err
				}
			}
			s, logger, err := c.newService(cmd)
			if err != nil {
				return err
			}

			var r io.Reader
			if args[0] == "-" {
				r = cmd.InOrStdin()
			} else {
				f, err := c.fs.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			entries, err := hasher.ParseChecklist(r, v)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			results, checkErr := s.Check(context.Background(), entries, c.config.GetInt(optionNameConcurrency))
			if checkErr != nil && results == nil {
				return checkErr
			}

			var mismatched, unreadable int
			for _, res := range results {
				switch {
				case res.OK:
					fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", res.Entry.Path)
				case errors.Is(res.Err, hasher.ErrChecksumMismatch):
					mismatched++
					fmt.Fprintf(cmd.OutOrStdout(), "%s: FAILED\n", res.Entry.Path)
				default:
					unreadable++
					logger.Debugf("check: %v", res.Err)
					fmt.Fprintf(cmd.OutOrStdout(), "%s: FAILED open or read\n", res.Entry.Path)
				}
			}
			if unreadable > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "mdsum: WARNING: %d listed files could not be read\n", unreadable)
			}
			if mismatched > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "mdsum: WARNING: %d computed checksums did NOT match\n", mismatched)
			}
			return checkErr
		},
	}

	c.root.AddCommand(cmd)
}
