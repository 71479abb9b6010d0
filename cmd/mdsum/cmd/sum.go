// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/ethersphere/mdhash/pkg/hasher"
)

// errNoInput is returned when sum has neither files nor piped input to read.
var errNoInput = errors.New("no input: pass files, --string or pipe data to stdin")

func (c *command) initSumCmd() {
	cmd := &cobra.Command{
		Use:   "sum [file ...]",
		Short: "Print message digests of files, stdin or a string",
		Long: `Print message digests of files, stdin or a string.

With no file, or when file is -, standard input is read, unless it is a terminal.
The output can be verified with the check command.`,
		PreRunE: c.bindFlags,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			v, err := c.variant()
			if err != nil {
				return err
			}
			s, logger, err := c.newService(cmd)
			if err != nil {
				return err
			}
			ctx := context.Background()
			binary := c.config.GetBool(optionNameBinary)

			if cmd.Flags().Changed(optionNameString) {
				str := c.config.GetString(optionNameString)
				d, err := hasher.Sum(v, []byte(str))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), hasher.FormatEntry(hasher.Entry{Digest: d, Path: strconv.Quote(str)}))
				return nil
			}

			if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
				in := cmd.InOrStdin()
				if len(args) == 0 && isTerminal(in) {
					return errNoInput
				}
				d, err := s.SumReader(ctx, v, in)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), hasher.FormatEntry(hasher.Entry{Digest: d.Sum, Path: "-", Binary: binary}))
				return nil
			}

			results, err := s.SumFiles(ctx, v, args, c.config.GetInt(optionNameConcurrency))
			if err != nil {
				return err
			}
			var failed *multierror.Error
			for _, r := range results {
				if r.Err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "mdsum: %v\n", r.Err)
					failed = multierror.Append(failed, r.Err)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), hasher.FormatEntry(hasher.Entry{Digest: r.Digest.Sum, Path: r.Path, Binary: binary}))
			}
			logger.Debugf("sum: %d files hashed with %v", len(results), v)
			return failed.ErrorOrNil()
		},
	}

	cmd.Flags().String(optionNameString, "", "hash the given string instead of files")
	cmd.Flags().Bool(optionNameBinary, false, "mark entries as binary with a '*' before the file name")

	c.root.AddCommand(cmd)
}
