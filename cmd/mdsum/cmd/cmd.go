// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/ethersphere/mdhash/pkg/hasher"
	"github.com/ethersphere/mdhash/pkg/logging"
)

const (
	optionNameAlgorithm   = "algorithm"
	optionNameVerbosity   = "verbosity"
	optionNameConcurrency = "concurrency"
	optionNameAPIAddr     = "api-addr"
	optionNameMaxBodySize = "max-body-size"
	optionNameString      = "string"
	optionNameBinary      = "binary"
)

func init() {
	cobra.EnableCommandSorting = false
}

type command struct {
	root    *cobra.Command
	config  *viper.Viper
	fs      afero.Fs
	cfgFile string
	homeDir string
}

type option func(*command)

func newCommand(opts ...option) (c *command, err error) {
	c = &command{
		root: &cobra.Command{
			Use:           "mdsum",
			Short:         "Compute and check SHA-1 and SHA-256 message digests",
			SilenceErrors: true,
			SilenceUsage:  true,
			PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
				return c.initConfig()
			},
		},
	}

	for _, o := range opts {
		o(c)
	}
	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}

	// Find home directory.
	if err := c.setHomeDir(); err != nil {
		return nil, err
	}

	c.initGlobalFlags()

	c.initSumCmd()
	c.initCheckCmd()
	c.initServeCmd()
	c.initVersionCmd()

	return c, nil
}

func (c *command) Execute() (err error) {
	return c.root.Execute()
}

// Execute parses command line arguments and runs appropriate functions.
func Execute() (err error) {
	c, err := newCommand()
	if err != nil {
		return err
	}
	return c.Execute()
}

func (c *command) initGlobalFlags() {
	globalFlags := c.root.PersistentFlags()
	globalFlags.StringVar(&c.cfgFile, "config", c.cfgFile, "config file (default is $HOME/.mdsum.yaml)")
	globalFlags.String(optionNameAlgorithm, "sha256", "hash algorithm, sha1 or sha256")
	globalFlags.String(optionNameVerbosity, "warn", "log verbosity level 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=trace")
	globalFlags.Int(optionNameConcurrency, runtime.NumCPU(), "maximal number of files hashed in parallel")
}

func (c *command) initConfig() (err error) {
	config := viper.New()
	configName := ".mdsum"
	if c.cfgFile != "" {
		// Use config file from the flag.
		config.SetConfigFile(c.cfgFile)
	} else {
		// Search config in home directory with name ".mdsum" (without extension).
		config.AddConfigPath(c.homeDir)
		config.SetConfigName(configName)
	}

	// Environment
	config.SetEnvPrefix("mdsum")
	config.AutomaticEnv() // read in environment variables that match
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if c.homeDir != "" && c.cfgFile == "" {
		c.cfgFile = filepath.Join(c.homeDir, configName+".yaml")
	}

	// If a config file is found, read it in.
	if err := config.ReadInConfig(); err != nil {
		var e viper.ConfigFileNotFoundError
		if !errors.As(err, &e) {
			return err
		}
	}
	c.config = config
	return nil
}

// bindFlags binds the flags of the command, including the inherited global
// ones, to the configuration. It runs after initConfig.
func (c *command) bindFlags(cmd *cobra.Command, _ []string) error {
	return c.config.BindPFlags(cmd.Flags())
}

func (c *command) setHomeDir() (err error) {
	if c.homeDir != "" {
		return
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	c.homeDir = dir
	return nil
}

func (c *command) variant() (hasher.Variant, error) {
	return hasher.ParseVariant(c.config.GetString(optionNameAlgorithm))
}

func (c *command) newService(cmd *cobra.Command) (*hasher.Service, logging.Logger, error) {
	logger, err := newLogger(cmd, c.config.GetString(optionNameVerbosity))
	if err != nil {
		return nil, nil, err
	}
	return hasher.NewService(hasher.Options{
		Fs:     c.fs,
		Logger: logger,
	}), logger, nil
}

func newLogger(cmd *cobra.Command, verbosity string) (logging.Logger, error) {
	var logger logging.Logger
	switch verbosity {
	case "0", "silent":
		logger = logging.New(io.Discard, 0)
	case "1", "error":
		logger = logging.New(cmd.ErrOrStderr(), logrus.ErrorLevel)
	case "2", "warn":
		logger = logging.New(cmd.ErrOrStderr(), logrus.WarnLevel)
	case "3", "info":
		logger = logging.New(cmd.ErrOrStderr(), logrus.InfoLevel)
	case "4", "debug":
		logger = logging.New(cmd.ErrOrStderr(), logrus.DebugLevel)
	case "5", "trace":
		logger = logging.New(cmd.ErrOrStderr(), logrus.TraceLevel)
	default:
		return nil, fmt.Errorf("unknown verbosity level %q", verbosity)
	}
	return logger, nil
}

// isTerminal reports whether r is a file attached to a terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
