// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ethersphere/mdhash"
	"github.com/ethersphere/mdhash/pkg/api"
	m "github.com/ethersphere/mdhash/pkg/metrics"
)

func (c *command) initServeCmd() {
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve the hashing HTTP API",
		PreRunE: c.bindFlags,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if len(args) > 0 {
				return cmd.Help()
			}

			s, logger, err := c.newService(cmd)
			if err != nil {
				return err
			}

			registry := m.NewRegistry(mdhash.Version)
			apiService := api.New(s, logger, api.Options{
				MaxBodySize:     c.config.GetInt64(optionNameMaxBodySize),
				MetricsRegistry: registry,
			})
			// register metrics from components
			m.MustRegisterAll(registry, logger, s, apiService)

			apiListener, err := net.Listen("tcp", c.config.GetString(optionNameAPIAddr))
			if err != nil {
				return fmt.Errorf("api listener: %w", err)
			}

			errorLogWriter := logger.WriterLevel(logrus.ErrorLevel)
			defer errorLogWriter.Close()

			apiServer := &http.Server{
				Handler:           apiService,
				ReadHeaderTimeout: 3 * time.Second,
				ErrorLog:          log.New(errorLogWriter, "", 0),
			}

			go func() {
				logger.Infof("api address: %s", apiListener.Addr())

				if err := apiServer.Serve(apiListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Debugf("api server: %v", err)
					logger.Error("unable to serve api")
				}
			}()

			// Wait for termination or interrupt signals.
			// We want to clean up things at the end.
			interruptChannel := make(chan os.Signal, 1)
			signal.Notify(interruptChannel, syscall.SIGINT, syscall.SIGTERM)

			// Block main goroutine until it is interrupted
			sig := <-interruptChannel

			logger.Debugf("received signal: %v", sig)
			logger.Info("shutting down")

			// Shutdown
			done := make(chan struct{})
			go func() {
				defer close(done)

				ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
				defer cancel()

				if err := apiServer.Shutdown(ctx); err != nil {
					logger.Errorf("api server shutdown: %v", err)
				}
			}()

			// If shutdown function is blocking too long,
			// allow process termination by receiving another signal.
			select {
			case sig := <-interruptChannel:
				logger.Debugf("received signal: %v", sig)
			case <-done:
			}

			return nil
		},
	}

	cmd.Flags().String(optionNameAPIAddr, ":1633", "HTTP API listen address")
	cmd.Flags().Int64(optionNameMaxBodySize, api.DefaultMaxBodySize, "maximal request body size in bytes")

	c.root.AddCommand(cmd)
}
